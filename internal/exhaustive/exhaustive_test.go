package exhaustive

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/patcheck/exhaustive/internal/pattern"
)

// witnessHeads extracts the single-column head pattern from each witness
// row returned by IsExhaustive(matrix, 1), for comparisons that don't care
// about row wrapping.
func witnessHeads(t *testing.T, rows []pattern.Row) []pattern.Pattern {
	t.Helper()
	heads := make([]pattern.Pattern, 0, len(rows))
	for _, r := range rows {
		assert.Len(t, r, 1)
		heads = append(heads, r[0])
	}
	return heads
}

func TestIsExhaustive_BoolComplete(t *testing.T) {
	u := boolUnion()
	m := matrix(row(boolPattern(u, true)), row(boolPattern(u, false)))
	assert.Empty(t, IsExhaustive(m, 1))
}

func TestIsExhaustive_BoolMissingFalse(t *testing.T) {
	u := boolUnion()
	m := matrix(row(boolPattern(u, true)))
	got := witnessHeads(t, IsExhaustive(m, 1))
	want := []pattern.Pattern{boolPattern(u, false)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestIsExhaustive_OptionNestedWitness(t *testing.T) {
	u := boolUnion()
	ou := optionUnion()
	m := matrix(row(somePattern(ou, boolPattern(u, true))), row(nonePattern(ou)))
	got := witnessHeads(t, IsExhaustive(m, 1))
	want := []pattern.Pattern{somePattern(ou, boolPattern(u, false))}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestIsExhaustive_OptionComplete(t *testing.T) {
	u := boolUnion()
	ou := optionUnion()
	m := matrix(
		row(somePattern(ou, boolPattern(u, true))),
		row(somePattern(ou, boolPattern(u, false))),
		row(nonePattern(ou)),
	)
	assert.Empty(t, IsExhaustive(m, 1))
}

func TestIsExhaustive_LiteralIntNeverExhaustiveWithoutWildcard(t *testing.T) {
	m := matrix(row(intLit(1)), row(intLit(2)))
	got := witnessHeads(t, IsExhaustive(m, 1))
	want := []pattern.Pattern{pattern.AnythingPattern}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestIsExhaustive_LiteralIntCoveredByWildcard(t *testing.T) {
	m := matrix(row(intLit(1)), row(intLit(2)), row(wc()))
	assert.Empty(t, IsExhaustive(m, 1))
}

func TestIsExhaustive_ListSliceAloneIsExhaustive(t *testing.T) {
	m := matrix(row(pattern.ListPattern{Arity: pattern.Slice(0, 0)}))
	assert.Empty(t, IsExhaustive(m, 1))
}

func TestIsExhaustive_ListExactZeroAndOpenHeadCoverAllLengths(t *testing.T) {
	m := matrix(
		row(pattern.ListPattern{Arity: pattern.Exact(0)}),
		row(pattern.ListPattern{Arity: pattern.Slice(1, 0), Args: []pattern.Pattern{wc()}}),
	)
	assert.Empty(t, IsExhaustive(m, 1))
}

func TestIsExhaustive_ListMissingExactZeroLeavesGap(t *testing.T) {
	m := matrix(
		row(pattern.ListPattern{Arity: pattern.Slice(1, 0), Args: []pattern.Pattern{wc()}}),
	)
	got := witnessHeads(t, IsExhaustive(m, 1))
	want := []pattern.Pattern{pattern.ListPattern{Arity: pattern.Slice(0, 0)}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestIsExhaustive_ListMissingSliceLeavesGap(t *testing.T) {
	m := matrix(
		row(pattern.ListPattern{Arity: pattern.Exact(0)}),
	)
	got := witnessHeads(t, IsExhaustive(m, 1))
	want := []pattern.Pattern{pattern.ListPattern{Arity: pattern.Slice(0, 0)}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestIsExhaustive_ListWildcardRowCoversRegardlessOfOtherArities(t *testing.T) {
	m := matrix(
		row(pattern.ListPattern{Arity: pattern.Exact(0)}),
		row(wc()),
	)
	assert.Empty(t, IsExhaustive(m, 1))
}

// IsExhaustive should never report a covered matrix as exhaustive-but-wrong
// for non-trivial widths; this checks the width-2 recursion plumbs the
// column budget through both the ctor and the wildcard branches correctly.
func TestIsExhaustive_TwoColumnsBothBool(t *testing.T) {
	u := boolUnion()
	m := matrix(
		row(boolPattern(u, true), boolPattern(u, true)),
		row(boolPattern(u, true), boolPattern(u, false)),
		row(boolPattern(u, false), wc()),
	)
	assert.Empty(t, IsExhaustive(m, 2))
}

func TestIsExhaustive_TwoColumnsMissingCombination(t *testing.T) {
	u := boolUnion()
	m := matrix(
		row(boolPattern(u, true), boolPattern(u, true)),
		row(boolPattern(u, false), wc()),
	)
	assert.NotEmpty(t, IsExhaustive(m, 2))
}
