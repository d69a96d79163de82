package exhaustive

import (
	"github.com/patcheck/exhaustive/internal/diag"
	"github.com/patcheck/exhaustive/internal/pattern"
)

// Region is an opaque source-location handle, supplied and interpreted
// entirely by the caller's location tracker. This package never inspects
// it; it only threads it through to CheckError for the diagnostics
// renderer to use.
type Region any

// Context names why exhaustiveness is being checked, so the diagnostics
// renderer can phrase the message appropriately ("this function argument",
// "this destructuring let", "this case expression").
type Context int

const (
	BadArg Context = iota
	BadDestruct
	BadCase
)

func (c Context) String() string {
	switch c {
	case BadArg:
		return "BadArg"
	case BadDestruct:
		return "BadDestruct"
	case BadCase:
		return "BadCase"
	default:
		return "BadCase"
	}
}

// Guard records whether a branch carries a pattern guard. A guarded branch
// still participates in the matrix (wrapped in the synthetic Guard union
// via pattern.WrapGuarded), so it cannot alone prove a constructor's
// coverage.
type Guard int

const (
	NoGuard Guard = iota
	HasGuard
)

// CheckError is one of the three diagnostic kinds this package produces.
// Exactly one of Incomplete, Redundant, or Unmatchable is populated,
// discriminated by Kind.
type CheckError struct {
	Kind ErrorKind

	// Incomplete fields.
	Region    Region
	Context   Context
	Witnesses []pattern.Pattern

	// Redundant / Unmatchable fields.
	OverallRegion Region
	BranchRegion  Region
	Index         int
}

// ErrorKind discriminates CheckError's variant.
type ErrorKind int

const (
	ErrIncomplete ErrorKind = iota
	ErrRedundant
	ErrUnmatchable
)

// Check runs the exhaustiveness procedure over matrix (one row per branch,
// already wrapped in the synthetic Guard union where a guard exists) and
// returns the diagnostics it produces. A nil/empty result means every
// value of the scrutinee's type is covered.
//
// Redundancy detection (Redundant / Unmatchable) is not run automatically
// here — the surrounding compiler drives IsUseful itself, once per branch
// prefix, since only it knows each branch's source region. See IsUseful.
func Check(region Region, ctx Context, matrix pattern.Matrix) []CheckError {
	witnesses := IsExhaustive(matrix, 1)
	if len(witnesses) == 0 {
		return nil
	}

	heads := make([]pattern.Pattern, 0, len(witnesses))
	for _, w := range witnesses {
		if len(w) != 1 {
			diag.Abort(diag.EXH004, "check: expected width-1 witness row, got width %d", len(w))
		}
		heads = append(heads, w[0])
	}

	return []CheckError{{
		Kind:      ErrIncomplete,
		Region:    region,
		Context:   ctx,
		Witnesses: heads,
	}}
}

// NewRedundant builds the Redundant diagnostic for the branch at index,
// given the branch is useless against the matrix of all earlier branches.
// Callers obtain that verdict by calling IsUseful themselves; this
// constructor only assembles the error record.
func NewRedundant(overallRegion, branchRegion Region, index int) CheckError {
	return CheckError{
		Kind:          ErrRedundant,
		OverallRegion: overallRegion,
		BranchRegion:  branchRegion,
		Index:         index,
	}
}

// Encode renders a CheckError as a diag.Encoded diagnostic, ready for JSON
// output. render converts a witness pattern to display text (callers pass
// session.Render or their own printer); sid is an opaque session id for
// correlating diagnostics across a run, same as the caller threads to
// diag.New directly.
func (e CheckError) Encode(sid string, render func(pattern.Pattern) string) diag.Encoded {
	switch e.Kind {
	case ErrIncomplete:
		missing := make([]string, len(e.Witnesses))
		for i, w := range e.Witnesses {
			missing[i] = render(w)
		}
		return diag.New(sid, diag.EXH001, "non-exhaustive match", map[string]any{
			"context": e.Context.String(),
			"missing": missing,
		})
	case ErrRedundant:
		return diag.New(sid, diag.EXH002, "redundant branch", map[string]any{
			"index": e.Index,
		})
	default:
		return diag.New(sid, diag.EXH003, "unmatchable branch", map[string]any{
			"index": e.Index,
		})
	}
}

// NewUnmatchable builds the Unmatchable diagnostic for the branch at index.
// This package has no producer for it in practice (its shape is typically
// impossible after type checking); it is reserved for callers that want to
// flag it conservatively, and this package never emits it itself.
func NewUnmatchable(overallRegion, branchRegion Region, index int) CheckError {
	return CheckError{
		Kind:          ErrUnmatchable,
		OverallRegion: overallRegion,
		BranchRegion:  branchRegion,
		Index:         index,
	}
}
