// Package pattern defines the data model of the exhaustiveness core: the
// pattern sum type, literal values, constructor/union descriptors, and list
// arities. Everything here is a value type; nothing in this package mutates
// once constructed.
package pattern

// Pattern is a finite tree describing the shape a value must have to match
// a branch. It has exactly four variants: Anything, a Literal, a Ctor, or a
// List. Callers never implement this interface themselves — the type
// checker and desugarer only ever construct the concrete types below.
type Pattern interface {
	patternNode()
}

// Anything is the wildcard pattern: it matches any value.
type Anything struct{}

func (Anything) patternNode() {}

// AnythingPattern is the canonical wildcard value, handed out so callers
// don't need to allocate one every time they need a filler pattern.
var AnythingPattern Pattern = Anything{}

// LiteralPattern matches values whose runtime representation equals Value.
type LiteralPattern struct {
	Value Literal
}

func (LiteralPattern) patternNode() {}

// CtorPattern matches a value whose outermost shape is the constructor
// identified by TagID within Union, with each argument recursively matched
// by the corresponding element of Args.
//
// Invariant: len(Args) == Union.Alternatives[TagID's position].Arity.
type CtorPattern struct {
	Union Union
	TagID TagId
	Args  []Pattern
}

func (CtorPattern) patternNode() {}

// ListPattern matches a list whose shape satisfies Arity and whose present
// element positions recursively match Args.
type ListPattern struct {
	Arity ListArity
	Args  []Pattern
}

func (ListPattern) patternNode() {}

// Row is a single pattern sequence: one branch's patterns at the columns
// still under consideration. Matrix is an ordered sequence of rows; every
// row in a given Matrix shares the same width. By convention the *last*
// element of a row is the column currently being dispatched on.
type Row []Pattern
type Matrix []Row

// Width reports the common column count of every row in m, or 0 for an
// empty matrix. Rows are assumed uniform width; callers must not pass
// ragged matrices.
func (m Matrix) Width() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}
