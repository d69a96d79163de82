package pattern

// ListArityKind discriminates the two shapes a list pattern's length
// constraint can take.
type ListArityKind uint8

const (
	// ArityExact matches a list of exactly N elements.
	ArityExact ListArityKind = iota
	// ArityOpenSlice matches a list of at least Before+After elements: the
	// first Before and last After positions are pinned, with a
	// variable-length gap between them.
	ArityOpenSlice
)

// ListArity is the arity of a list pattern, either an exact length or an
// open slice with pinned head/tail lengths.
//
//	[]            -> Exact(0)
//	[a]           -> Exact(1)
//	[..]          -> Slice(0, 0)
//	[a, .., b]    -> Slice(1, 1)
//	[a, b, ..]    -> Slice(2, 0)
//	[.., a, b]    -> Slice(0, 2)
type ListArity struct {
	Kind   ListArityKind
	Before int // meaningful for both kinds: exact length, or slice's fixed-head length
	After  int // meaningful only for ArityOpenSlice: slice's fixed-tail length
}

// Exact builds an exact-length list arity.
func Exact(n int) ListArity { return ListArity{Kind: ArityExact, Before: n} }

// Slice builds an open-slice list arity with before/after fixed lengths.
func Slice(before, after int) ListArity {
	return ListArity{Kind: ArityOpenSlice, Before: before, After: after}
}

// MinLen is the minimum number of elements a list must have to satisfy this
// arity: n for Exact(n), before+after for Slice(before, after).
func (a ListArity) MinLen() int {
	switch a.Kind {
	case ArityExact:
		return a.Before
	default:
		return a.Before + a.After
	}
}

// Covers reports whether every list shape matched by other is also matched
// by a:
//
//	self \ other   Exact(m)          Slice(bl, br)
//	Exact(n)       n == m            n == bl+br
//	Slice(al, ar)  al+ar <= m        al+ar <= bl+br
func (a ListArity) Covers(other ListArity) bool {
	switch a.Kind {
	case ArityExact:
		switch other.Kind {
		case ArityExact:
			return a.Before == other.Before
		default:
			return a.Before == other.Before+other.After
		}
	default: // ArityOpenSlice
		switch other.Kind {
		case ArityExact:
			return a.MinLen() <= other.Before
		default:
			return a.MinLen() <= other.MinLen()
		}
	}
}
