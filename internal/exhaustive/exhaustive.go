package exhaustive

import (
	"github.com/patcheck/exhaustive/internal/config"
	"github.com/patcheck/exhaustive/internal/pattern"
)

// IsExhaustive returns the set of witness rows, each of width n, that
// matrix fails to cover. An empty result means matrix is exhaustive over
// the n remaining columns.
//
// Invariants on the initial call: n == 1 and every row of matrix has width
// 1. Recursive calls relax both: n tracks the remaining column budget, and
// rows shrink or grow as specialization consumes and reconstructs columns.
func IsExhaustive(matrix pattern.Matrix, n int) []pattern.Row {
	rows, _ := isExhaustiveEngine(matrix, n, 0, config.Unlimited)
	return rows
}

// isExhaustiveEngine is IsExhaustive's implementation, additionally
// threading a recursion depth and an optional depth limit so
// CheckWithLimits can bound the cost of analysis. IsExhaustive calls this
// with config.Unlimited, under which depth never exceeds and the exceeded
// return is always false.
func isExhaustiveEngine(matrix pattern.Matrix, n, depth int, limits config.Limits) ([]pattern.Row, bool) {
	if limits.Exceeded(depth) {
		return []pattern.Row{wildcardRow(n)}, true
	}

	switch {
	case len(matrix) == 0:
		// Nothing rules anything out: one witness, a row of n wildcards.
		return []pattern.Row{wildcardRow(n)}, false
	case n == 0:
		// Matrix is non-empty but there's nothing left to witness.
		return nil, false
	}

	ctors := CollectCtors(matrix)
	if len(ctors) == 0 {
		if arities := collectListArities(matrix); len(arities) > 0 && !hasAnythingRow(matrix) {
			return exhaustiveListColumn(matrix, n, depth, limits, arities)
		}
		return exhaustiveNoCtorsSeen(matrix, n, depth, limits)
	}

	var union pattern.Union
	for _, u := range ctors {
		union = u
		break
	}
	alts := union.Alternatives

	if len(ctors) < len(alts) {
		return exhaustivePartialCoverage(matrix, n, depth, limits, ctors, union)
	}
	return exhaustiveFullCoverage(matrix, n, depth, limits, union)
}

func wildcardRow(n int) pattern.Row {
	row := make(pattern.Row, n)
	for i := range row {
		row[i] = pattern.AnythingPattern
	}
	return row
}

// exhaustiveNoCtorsSeen handles the case where the last column has no
// constructor heads at all — every row is Anything, or the column holds
// literal patterns over an infinite domain: specialize by wildcard and
// recurse on n-1, then re-append an Anything column to every witness
// found.
func exhaustiveNoCtorsSeen(matrix pattern.Matrix, n, depth int, limits config.Limits) ([]pattern.Row, bool) {
	specialized := SpecializeByAnything(matrix)
	rest, exceeded := isExhaustiveEngine(specialized, n-1, depth+1, limits)
	for i := range rest {
		rest[i] = append(rest[i], pattern.AnythingPattern)
	}
	return rest, exceeded
}

// exhaustivePartialCoverage handles the case where some but not all
// alternatives of the column's Union are seen: the wildcard-derived
// witnesses are Cartesian-extended with one witness column per missing
// alternative.
func exhaustivePartialCoverage(matrix pattern.Matrix, n, depth int, limits config.Limits, seen map[pattern.TagId]pattern.Union, union pattern.Union) ([]pattern.Row, bool) {
	specialized := SpecializeByAnything(matrix)
	rest, exceeded := isExhaustiveEngine(specialized, n-1, depth+1, limits)

	var missing []pattern.Pattern
	for _, c := range union.Alternatives {
		if _, ok := seen[c.TagID]; ok {
			continue
		}
		args := make([]pattern.Pattern, c.Arity)
		for i := range args {
			args[i] = pattern.AnythingPattern
		}
		missing = append(missing, pattern.CtorPattern{Union: union, TagID: c.TagID, Args: args})
	}

	result := make([]pattern.Row, 0, len(missing)*len(rest))
	for _, missingOption := range missing {
		for _, r := range rest {
			extended := make(pattern.Row, len(r), len(r)+1)
			copy(extended, r)
			extended = append(extended, missingOption)
			result = append(result, extended)
		}
	}
	return result, exceeded
}

// exhaustiveFullCoverage handles the case where every alternative of the
// column's Union is represented: specialize by each alternative in turn,
// recurse with the widened column budget, and reconstruct the
// constructor's column in every witness that comes back.
func exhaustiveFullCoverage(matrix pattern.Matrix, n, depth int, limits config.Limits, union pattern.Union) ([]pattern.Row, bool) {
	var result []pattern.Row
	exceededAny := false
	for _, c := range union.Alternatives {
		specialized := SpecializeByCtor(c.TagID, c.Arity, matrix)
		rest, exceeded := isExhaustiveEngine(specialized, c.Arity+n-1, depth+1, limits)
		exceededAny = exceededAny || exceeded
		for _, r := range rest {
			result = append(result, recoverCtor(union, c, r))
		}
	}
	return result, exceededAny
}

// recoverCtor consumes the first c.Arity patterns of row as the
// constructor's arguments and wraps them back into a single Ctor pattern
// over union, leaving the remaining columns untouched.
func recoverCtor(union pattern.Union, c pattern.Ctor, row pattern.Row) pattern.Row {
	args := append(pattern.Row(nil), row[:c.Arity]...)
	rest := row[c.Arity:]
	out := make(pattern.Row, 0, len(rest)+1)
	out = append(out, rest...)
	out = append(out, pattern.CtorPattern{Union: union, TagID: c.TagID, Args: args})
	return out
}
