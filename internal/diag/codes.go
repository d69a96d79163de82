// Package diag provides structured, AI-friendly error reporting for the
// exhaustiveness core: every diagnostic carries a stable code, a phase, and
// a machine-parseable JSON encoding, rather than a bare error string.
package diag

// Error code constants for this module's phase of the pipeline (EXH###).
const (
	// EXH001 indicates a match is non-exhaustive: some value of the
	// scrutinee's type is not covered by any branch.
	EXH001 = "EXH001"

	// EXH002 indicates a branch is redundant: every value it would match is
	// already matched by an earlier branch.
	EXH002 = "EXH002"

	// EXH003 indicates a branch is unmatchable: its shape cannot occur at
	// all given the scrutinee's type. Reserved; see the documentation of
	// NewUnmatchable in internal/exhaustive for why this is never emitted in
	// practice.
	EXH003 = "EXH003"

	// EXH004 indicates an internal invariant was violated while analyzing a
	// matrix (e.g. an empty row reached specialization, or a literal
	// collided with a list or constructor head at the same column). This
	// always means the caller handed this package an ill-typed matrix; it
	// is never a user-facing diagnostic.
	EXH004 = "EXH004"

	// EXH005 indicates the configured recursion depth limit was reached
	// before the analysis could complete; the result conservatively reports
	// non-exhaustive rather than risk a false "exhaustive".
	EXH005 = "EXH005"
)

// Info describes one error code: its pipeline phase, category, and a short
// human-readable description.
type Info struct {
	Code        string
	Phase       string
	Category    string
	Description string
}

// Registry maps error codes to their descriptive Info.
var Registry = map[string]Info{
	EXH001: {EXH001, "exhaustiveness", "coverage", "Non-exhaustive pattern match"},
	EXH002: {EXH002, "exhaustiveness", "reachability", "Redundant branch"},
	EXH003: {EXH003, "exhaustiveness", "reachability", "Unmatchable branch"},
	EXH004: {EXH004, "exhaustiveness", "invariant", "Internal invariant violation"},
	EXH005: {EXH005, "exhaustiveness", "limit", "Analysis depth limit reached"},
}
