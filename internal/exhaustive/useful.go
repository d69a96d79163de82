package exhaustive

import (
	"github.com/patcheck/exhaustive/internal/diag"
	"github.com/patcheck/exhaustive/internal/pattern"
)

// IsUseful decides whether vector, a candidate new row, can match some
// value that no row of matrix already matches.
//
// It works by popping the last pattern off vector and specializing both
// matrix and vector in tandem, one column at a time, until either matrix
// runs out of rows (vector is useful: nothing else matches what it
// matches) or vector runs out of patterns while matrix still has rows
// (vector is not useful: some earlier row generalizes it).
func IsUseful(matrix pattern.Matrix, vector pattern.Row) bool {
	cur := matrix
	vec := append(pattern.Row(nil), vector...)

	for {
		if len(cur) == 0 {
			return true
		}
		if len(vec) == 0 {
			return false
		}

		head := vec[len(vec)-1]
		vec = vec[:len(vec)-1]

		switch p := head.(type) {
		case pattern.CtorPattern:
			cur = specializeMatrixByCtorTandem(p.TagID, len(p.Args), cur)
			vec = append(vec, p.Args...)

		case pattern.ListPattern:
			cur = specializeMatrixByListTandem(p.Arity, cur)
			vec = append(vec, p.Args...)

		case pattern.LiteralPattern:
			cur = specializeByLiteralTandem(p.Value, cur)

		case pattern.Anything:
			completeness := IsComplete(cur)
			if !completeness.IsCompleteYes() {
				// This Anything is useful if some constructor is missing,
				// unless an earlier row already had an Anything here.
				cur = SpecializeByAnything(cur)
				continue
			}

			// All constructors are covered, so this Anything adds nothing
			// *to the heads* — but a covered constructor might still have
			// subpatterns that are less general than vector's. Check each
			// alternative independently; useful if any is.
			for _, c := range completeness.Alternatives() {
				specialized := specializeMatrixByCtorTandem(c.TagID, c.Arity, cur)
				extended := append(pattern.Row(nil), vec...)
				for i := 0; i < c.Arity; i++ {
					extended = append(extended, pattern.AnythingPattern)
				}
				if IsUseful(specialized, extended) {
					return true
				}
			}
			return false
		}
	}
}

// specializeByLiteralTandem keeps rows whose last pattern is the same
// literal (by value) or Anything, popping their last column.
func specializeByLiteralTandem(lit pattern.Literal, matrix pattern.Matrix) pattern.Matrix {
	out := make(pattern.Matrix, 0, len(matrix))
	for _, row := range matrix {
		if len(row) == 0 {
			diag.Abort(diag.EXH004, "usefulness: empty row reached literal specialization")
		}
		last := row[len(row)-1]
		rest := row[:len(row)-1]

		switch lp := last.(type) {
		case pattern.LiteralPattern:
			if lp.Value.Equal(lit) {
				out = append(out, rest)
			}
		case pattern.Anything:
			out = append(out, rest)
		case pattern.ListPattern, pattern.CtorPattern:
			diag.Abort(diag.EXH004, "usefulness: constructor or list pattern aligned with a literal column; the type checker should have prevented this")
		}
	}
	return out
}

// specializeMatrixByCtorTandem specializes matrix in tandem with a popped
// vector head of the same constructor: unlike SpecializeByCtor (used by
// IsExhaustive, which puts the new fields first since nothing else in the
// matrix still needs to line up positionally with the vector), this kernel
// appends the constructor's fields *after* the row's remaining columns, so
// column i of the specialized matrix keeps corresponding to column i of the
// vector after IsUseful extends it with the same fields in the same order.
// Getting this order wrong silently misaligns sibling columns whenever a
// specialized constructor has arity >= 1 and the row still has columns
// to its left.
func specializeMatrixByCtorTandem(tagID pattern.TagId, arity int, matrix pattern.Matrix) pattern.Matrix {
	out := make(pattern.Matrix, 0, len(matrix))
	for _, row := range matrix {
		if len(row) == 0 {
			diag.Abort(diag.EXH004, "usefulness: empty row reached ctor specialization")
		}
		last := row[len(row)-1]
		rest := row[:len(row)-1]

		switch p := last.(type) {
		case pattern.CtorPattern:
			if p.TagID != tagID {
				continue
			}
			if len(p.Args) != arity {
				diag.Abort(diag.EXH004, "usefulness: arity mismatch, ctor has %d args, specializer expects %d", len(p.Args), arity)
			}
			specialized := make(pattern.Row, 0, len(rest)+arity)
			specialized = append(specialized, rest...)
			specialized = append(specialized, p.Args...)
			out = append(out, specialized)
		case pattern.Anything:
			specialized := make(pattern.Row, 0, len(rest)+arity)
			specialized = append(specialized, rest...)
			for i := 0; i < arity; i++ {
				specialized = append(specialized, pattern.AnythingPattern)
			}
			out = append(out, specialized)
		case pattern.ListPattern, pattern.LiteralPattern:
			diag.Abort(diag.EXH004, "usefulness: list or literal pattern aligned with a constructor column; the type checker should have prevented this")
		}
	}
	return out
}

// specializeMatrixByListTandem is specializeMatrixByCtorTandem's list
// counterpart: same rest-first ordering, so the matrix stays column-aligned
// with a vector that IsUseful is extending with a popped list pattern's
// element patterns.
func specializeMatrixByListTandem(spec pattern.ListArity, matrix pattern.Matrix) pattern.Matrix {
	out := make(pattern.Matrix, 0, len(matrix))
	for _, row := range matrix {
		if len(row) == 0 {
			diag.Abort(diag.EXH004, "usefulness: empty row reached list specialization")
		}
		last := row[len(row)-1]
		rest := row[:len(row)-1]

		switch p := last.(type) {
		case pattern.ListPattern:
			if !p.Arity.Covers(spec) {
				continue
			}
			if p.Arity.MinLen() == spec.MinLen() {
				specialized := make(pattern.Row, 0, len(rest)+len(p.Args))
				specialized = append(specialized, rest...)
				specialized = append(specialized, p.Args...)
				out = append(out, specialized)
				continue
			}
			if p.Arity.Kind != pattern.ArityOpenSlice {
				diag.Abort(diag.EXH004, "usefulness: exact-sized list cannot cover a list of a different minimum length")
			}
			before := p.Args[:p.Arity.Before]
			after := p.Args[len(p.Args)-p.Arity.After:]
			extra := spec.MinLen() - p.Arity.MinLen()

			specialized := make(pattern.Row, 0, len(rest)+len(before)+extra+len(after))
			specialized = append(specialized, rest...)
			specialized = append(specialized, before...)
			for i := 0; i < extra; i++ {
				specialized = append(specialized, pattern.AnythingPattern)
			}
			specialized = append(specialized, after...)
			out = append(out, specialized)
		case pattern.Anything:
			specialized := make(pattern.Row, 0, len(rest)+spec.MinLen())
			specialized = append(specialized, rest...)
			for i := 0; i < spec.MinLen(); i++ {
				specialized = append(specialized, pattern.AnythingPattern)
			}
			out = append(out, specialized)
		case pattern.CtorPattern, pattern.LiteralPattern:
			diag.Abort(diag.EXH004, "usefulness: constructor or literal pattern aligned with a list column; the type checker should have prevented this")
		}
	}
	return out
}
