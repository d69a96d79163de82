package exhaustive

import (
	"github.com/patcheck/exhaustive/internal/diag"
	"github.com/patcheck/exhaustive/internal/pattern"
)

// The three specialization kernels transform an N-column matrix into an
// (N-1+k)-column matrix, where k is the specializer's arity, keeping only
// rows whose last pattern is compatible with the specializer. A matrix
// reaching these functions is assumed to already be well-typed, so a
// literal or list colliding with a constructor specializer (or vice versa),
// or an empty row, means the caller violated that assumption and the
// function aborts rather than returning a wrong answer.

// SpecializeByCtor specializes matrix by the constructor (tagID, arity):
// "what remains to match if the scrutinee's head is this constructor".
func SpecializeByCtor(tagID pattern.TagId, arity int, matrix pattern.Matrix) pattern.Matrix {
	out := make(pattern.Matrix, 0, len(matrix))
	for _, row := range matrix {
		if specialized, ok := specializeRowByCtor(tagID, arity, row); ok {
			out = append(out, specialized)
		}
	}
	return out
}

func specializeRowByCtor(tagID pattern.TagId, arity int, row pattern.Row) (pattern.Row, bool) {
	if len(row) == 0 {
		diag.Abort(diag.EXH004, "specialize by ctor: empty row")
	}
	last := row[len(row)-1]
	rest := row[:len(row)-1]

	switch p := last.(type) {
	case pattern.CtorPattern:
		if p.TagID != tagID {
			return nil, false
		}
		if len(p.Args) != arity {
			diag.Abort(diag.EXH004, "specialize by ctor: arity mismatch, ctor has %d args, specializer expects %d", len(p.Args), arity)
		}
		out := make(pattern.Row, 0, len(rest)+arity)
		out = append(out, p.Args...)
		out = append(out, rest...)
		return out, true
	case pattern.Anything:
		out := make(pattern.Row, 0, len(rest)+arity)
		for i := 0; i < arity; i++ {
			out = append(out, pattern.AnythingPattern)
		}
		out = append(out, rest...)
		return out, true
	case pattern.ListPattern, pattern.LiteralPattern:
		diag.Abort(diag.EXH004, "specialize by ctor: list or literal pattern aligned with a constructor column; the type checker should have prevented this")
	}
	diag.Abort(diag.EXH004, "specialize by ctor: unreachable pattern kind %T", last)
	return nil, false
}

// SpecializeByList specializes matrix by the list arity spec: "what remains
// to match if the scrutinee's head is a list of this shape".
func SpecializeByList(spec pattern.ListArity, matrix pattern.Matrix) pattern.Matrix {
	out := make(pattern.Matrix, 0, len(matrix))
	for _, row := range matrix {
		if specialized, ok := specializeRowByList(spec, row); ok {
			out = append(out, specialized)
		}
	}
	return out
}

func specializeRowByList(spec pattern.ListArity, row pattern.Row) (pattern.Row, bool) {
	if len(row) == 0 {
		diag.Abort(diag.EXH004, "specialize by list: empty row")
	}
	last := row[len(row)-1]
	rest := row[:len(row)-1]

	switch p := last.(type) {
	case pattern.ListPattern:
		if !p.Arity.Covers(spec) {
			return nil, false
		}
		if p.Arity.MinLen() == spec.MinLen() {
			out := make(pattern.Row, 0, len(rest)+len(p.Args))
			out = append(out, p.Args...)
			out = append(out, rest...)
			return out, true
		}
		// p.Arity must be an open slice with a smaller minimum length than
		// spec; instantiate the middle gap with wildcards to reach spec's
		// length.
		if p.Arity.Kind != pattern.ArityOpenSlice {
			diag.Abort(diag.EXH004, "specialize by list: exact-sized list cannot cover a list of a different minimum length")
		}
		before := p.Args[:p.Arity.Before]
		after := p.Args[len(p.Args)-p.Arity.After:]
		extra := spec.MinLen() - p.Arity.MinLen()

		out := make(pattern.Row, 0, len(rest)+len(before)+extra+len(after))
		out = append(out, before...)
		for i := 0; i < extra; i++ {
			out = append(out, pattern.AnythingPattern)
		}
		out = append(out, after...)
		out = append(out, rest...)
		return out, true
	case pattern.Anything:
		out := make(pattern.Row, 0, len(rest)+spec.MinLen())
		for i := 0; i < spec.MinLen(); i++ {
			out = append(out, pattern.AnythingPattern)
		}
		out = append(out, rest...)
		return out, true
	case pattern.CtorPattern, pattern.LiteralPattern:
		diag.Abort(diag.EXH004, "specialize by list: constructor or literal pattern aligned with a list column; the type checker should have prevented this")
	}
	diag.Abort(diag.EXH004, "specialize by list: unreachable pattern kind %T", last)
	return nil, false
}

// SpecializeByAnything drops the last column of every row whose last
// pattern is Anything, and drops every other row outright.
func SpecializeByAnything(matrix pattern.Matrix) pattern.Matrix {
	out := make(pattern.Matrix, 0, len(matrix))
	for _, row := range matrix {
		if specialized, ok := specializeRowByAnything(row); ok {
			out = append(out, specialized)
		}
	}
	return out
}

func specializeRowByAnything(row pattern.Row) (pattern.Row, bool) {
	// Unlike the ctor and list kernels, an empty row is not a programmer
	// error here: it simply fails to match Anything, same as any other
	// pattern kind would.
	if len(row) == 0 {
		return nil, false
	}
	if _, ok := row[len(row)-1].(pattern.Anything); ok {
		return row[:len(row)-1], true
	}
	return nil, false
}
