package pattern

import "golang.org/x/text/unicode/norm"

// TagId is the alternative's index within its Union. It fits in a machine
// word and is stable for the lifetime of a single check call.
type TagId int

// CtorName identifies a constructor: either a user-facing tag name or an
// opaque (nominal) symbol. Both are treated as opaque equatable tokens —
// this package never inspects their contents beyond equality.
type CtorName struct {
	IsOpaque bool
	Name     string
}

// Tag builds a CtorName for a user-visible tag, e.g. "Some" or "Cons".
func Tag(name string) CtorName { return CtorName{Name: name} }

// Opaque builds a CtorName for a nominal/opaque type's single constructor.
func Opaque(symbol string) CtorName { return CtorName{IsOpaque: true, Name: symbol} }

// Ctor describes one alternative of a Union: its name, its stable tag id
// within that union, and how many argument positions it carries.
type Ctor struct {
	Name  CtorName
	TagID TagId
	Arity int
}

// RenderAs is a hint for how a Union's constructors should be rendered by
// the (external) diagnostics pretty-printer. This package never renders
// anything itself; it only carries the hint through.
type RenderAs uint8

const (
	RenderTag RenderAs = iota
	RenderOpaque
	RenderRecord
	RenderGuard
)

// Union describes the full, complete set of constructors available at a
// type position: every constructor of the scrutinee type is listed exactly
// once, in canonical (source) order.
type Union struct {
	Alternatives []Ctor
	RenderAs     RenderAs
	// FieldNames holds the record field names when RenderAs == RenderRecord.
	// WithFieldNames NFC-normalizes names for this field, for the same reason
	// string literals are normalized: stable equality across Unicode forms.
	FieldNames []string
}

// WithFieldNames returns a copy of names with each one NFC-normalized, for
// use as a Union's FieldNames, so field-name equality is insensitive to
// Unicode composition.
func WithFieldNames(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		b := []byte(n)
		if !norm.NFC.IsNormal(b) {
			b = norm.NFC.Bytes(b)
		}
		out[i] = string(b)
	}
	return out
}

// NewtypeWrapper builds the complete Union for an opaque/newtype type: a
// single alternative with TagId 0 wrapping arity argument positions.
func NewtypeWrapper(name CtorName, arity int) Union {
	return Union{
		Alternatives: []Ctor{{Name: name, TagID: TagId(0), Arity: arity}},
		RenderAs:     RenderTag,
	}
}

// Guard tag ids for the synthetic two-alternative union injected at a guard
// column: the guard-passed side carries the user's pattern onward, the
// guard-else side is the implicit "guard failed" catch-all.
const (
	GuardPassedTag TagId = 0
	GuardElseTag   TagId = 1
)

// GuardUnion returns the synthetic Union modeling a pattern guard: two
// alternatives, guard-passed (arity 1, wrapping the user pattern) and
// guard-else (arity 0). A guarded branch is represented by wrapping its
// leading column in a CtorPattern over this union with TagID
// GuardPassedTag; this prevents the branch from completing a constructor's
// coverage on its own, since the guard-else alternative is never listed by
// any branch.
func GuardUnion() Union {
	return Union{
		RenderAs: RenderGuard,
		Alternatives: []Ctor{
			{Name: Tag("guard-passed"), TagID: GuardPassedTag, Arity: 1},
			{Name: Tag("guard-else"), TagID: GuardElseTag, Arity: 0},
		},
	}
}

// WrapGuarded wraps a branch's pattern in the synthetic Guard union so a
// guard on that branch cannot by itself prove exhaustiveness of the
// underlying constructor.
func WrapGuarded(p Pattern) Pattern {
	return CtorPattern{
		Union: GuardUnion(),
		TagID: GuardPassedTag,
		Args:  []Pattern{p},
	}
}
