package exhaustive

import (
	"github.com/patcheck/exhaustive/internal/config"
	"github.com/patcheck/exhaustive/internal/diag"
	"github.com/patcheck/exhaustive/internal/pattern"
)

// CheckWithLimits is Check, but aborts the recursion once limits.MaxDepth is
// exceeded rather than running unbounded. Wherever the recursion is cut off
// it yields a row of Anything patterns as a witness, rebuilt into the
// enclosing constructors on the way back up, so the match is reported as
// non-exhaustive; it also reports depthExceeded so the caller can attach an
// EXH005 diagnostic. It never reports a match as exhaustive when it isn't.
func CheckWithLimits(region Region, ctx Context, matrix pattern.Matrix, limits config.Limits) (errs []CheckError, depthExceeded bool) {
	witnesses, exceeded := isExhaustiveEngine(matrix, 1, 0, limits)
	if len(witnesses) == 0 {
		return nil, exceeded
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
	}}, exceeded
}
