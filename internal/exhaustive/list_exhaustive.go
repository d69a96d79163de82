package exhaustive

import "github.com/patcheck/exhaustive/internal/config"
import "github.com/patcheck/exhaustive/internal/pattern"

// Lists never register in CollectCtors — they have no Union, no TagId, no
// fixed alternative count — so is_exhaustive's constructor machinery can't
// see them at all. A column of ListPattern rows with no literal Anything
// row needs its own completeness test: does the set of arities present
// cover every possible length, not just the specific lengths someone
// happened to write down?

// hasAnythingRow reports whether any row's last pattern is the literal
// wildcard, as opposed to a list or literal pattern that merely behaves
// like one in some cases.
func hasAnythingRow(matrix pattern.Matrix) bool {
	for _, r := range matrix {
		if len(r) == 0 {
			continue
		}
		if _, ok := r[len(r)-1].(pattern.Anything); ok {
			return true
		}
	}
	return false
}

// collectListArities gathers the distinct ListArity values appearing as
// the last pattern across matrix's rows, in first-seen order.
func collectListArities(matrix pattern.Matrix) []pattern.ListArity {
	seen := make(map[pattern.ListArity]bool)
	var out []pattern.ListArity
	for _, r := range matrix {
		if len(r) == 0 {
			continue
		}
		lp, ok := r[len(r)-1].(pattern.ListPattern)
		if !ok {
			continue
		}
		if seen[lp.Arity] {
			continue
		}
		seen[lp.Arity] = true
		out = append(out, lp.Arity)
	}
	return out
}

// listArityCompleteness reports whether arities, taken together, cover
// every list length from zero to infinity. Exact(k) covers only length k;
// an open slice with minimum length s covers every length >= s. The set is
// complete iff at least one open slice is present and every length below
// its minimum is covered by some Exact arity — lengths below the smallest
// slice's reach are otherwise never matched, no matter how many Exact
// arities pile up, since no finite set of exact lengths reaches infinity.
func listArityCompleteness(arities []pattern.ListArity) bool {
	minSlice := -1
	exactLens := make(map[int]bool)
	for _, a := range arities {
		switch a.Kind {
		case pattern.ArityOpenSlice:
			if minSlice == -1 || a.MinLen() < minSlice {
				minSlice = a.MinLen()
			}
		case pattern.ArityExact:
			exactLens[a.MinLen()] = true
		}
	}
	if minSlice == -1 {
		return false
	}
	for i := 0; i < minSlice; i++ {
		if !exactLens[i] {
			return false
		}
	}
	return true
}

// exhaustiveListColumn is is_exhaustive's counterpart to
// exhaustiveFullCoverage/exhaustivePartialCoverage for a column made of
// list patterns with no literal wildcard row. It is only reached once the
// caller has confirmed the column actually holds list patterns.
func exhaustiveListColumn(matrix pattern.Matrix, n, depth int, limits config.Limits, arities []pattern.ListArity) ([]pattern.Row, bool) {
	if !listArityCompleteness(arities) {
		return exhaustiveListIncomplete(matrix, n, depth, limits)
	}

	var result []pattern.Row
	exceededAny := false
	for _, a := range arities {
		specialized := SpecializeByList(a, matrix)
		rest, exceeded := isExhaustiveEngine(specialized, a.MinLen()+n-1, depth+1, limits)
		exceededAny = exceededAny || exceeded
		for _, r := range rest {
			result = append(result, recoverList(a, r))
		}
	}
	return result, exceededAny
}

// exhaustiveListIncomplete handles a list column whose arities leave some
// length uncovered. Rather than compute the exact missing length — the
// covered lengths can be an arbitrary mix of finite exact points and slice
// ranges — it reports the generic catch-all witness `[..]`, which is
// itself evidence that not every list is handled.
func exhaustiveListIncomplete(matrix pattern.Matrix, n, depth int, limits config.Limits) ([]pattern.Row, bool) {
	specialized := SpecializeByAnything(matrix)
	rest, exceeded := isExhaustiveEngine(specialized, n-1, depth+1, limits)

	missing := pattern.ListPattern{Arity: pattern.Slice(0, 0), Args: nil}
	result := make([]pattern.Row, 0, len(rest))
	for _, r := range rest {
		extended := make(pattern.Row, len(r), len(r)+1)
		copy(extended, r)
		extended = append(extended, missing)
		result = append(result, extended)
	}
	return result, exceeded
}

// recoverList is recoverCtor's counterpart for list arities: it consumes
// the first a.MinLen() patterns of row as the list's fixed positions and
// wraps them back into a single ListPattern of arity a.
func recoverList(a pattern.ListArity, row pattern.Row) pattern.Row {
	k := a.MinLen()
	args := append(pattern.Row(nil), row[:k]...)
	rest := row[k:]
	out := make(pattern.Row, 0, len(rest)+1)
	out = append(out, rest...)
	out = append(out, pattern.ListPattern{Arity: a, Args: args})
	return out
}
