package diag

import "fmt"

// InternalError marks a violated invariant: the caller handed this package
// a matrix the type checker should never have produced (an empty row
// reaching specialization, a literal aligned with a constructor or list at
// the same column, and so on). These are programmer errors, not user-facing
// diagnostics — they abort the call rather than being reported as a
// CheckError.
type InternalError struct {
	Code    string
	Message string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Abort panics with an *InternalError built from code and the formatted
// message. Callers in internal/exhaustive use this for every ill-typed
// matrix they detect; it is the one place in this module that panics.
func Abort(code, format string, args ...any) {
	panic(&InternalError{Code: code, Message: fmt.Sprintf(format, args...)})
}
