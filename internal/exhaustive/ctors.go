// Package exhaustive implements the pattern-matrix exhaustiveness and
// usefulness algorithm described by Maranget, "Warnings for pattern
// matching" (2007): a recursive procedure over a matrix of branch patterns,
// driven by specialization per constructor head.
package exhaustive

import "github.com/patcheck/exhaustive/internal/pattern"

// CollectCtors iterates the rows of matrix and, for each row whose last
// pattern is a Ctor, records TagID -> Union. Later rows overwrite earlier
// entries for the same TagID; by invariant they always agree (the same
// TagID implies the same Union at a given column position, guaranteed by
// the type checker). Rows whose last pattern is not a Ctor are ignored.
// Order within the result is immaterial.
func CollectCtors(matrix pattern.Matrix) map[pattern.TagId]pattern.Union {
	ctors := make(map[pattern.TagId]pattern.Union)
	for _, row := range matrix {
		if len(row) == 0 {
			continue
		}
		if c, ok := row[len(row)-1].(pattern.CtorPattern); ok {
			ctors[c.TagID] = c.Union
		}
	}
	return ctors
}

// Completeness is the result of IsComplete: either every constructor of the
// column's type is represented in the matrix (Yes, carrying the full
// alternative list), or at least one is missing (No).
type Completeness struct {
	complete     bool
	alternatives []pattern.Ctor
}

// IsCompleteYes reports whether c represents full coverage.
func (c Completeness) IsCompleteYes() bool { return c.complete }

// Alternatives returns the full alternative list when c.IsCompleteYes() is
// true; it is nil otherwise.
func (c Completeness) Alternatives() []pattern.Ctor { return c.alternatives }

// IsComplete decides whether matrix's last column already covers every
// constructor of its type. A matrix mixing different Unions at the column
// is ill-formed and must not occur (guaranteed by the type checker); this
// function does not re-validate that guarantee.
func IsComplete(matrix pattern.Matrix) Completeness {
	ctors := CollectCtors(matrix)
	if len(ctors) == 0 {
		return Completeness{}
	}
	var alts []pattern.Ctor
	for _, u := range ctors {
		alts = u.Alternatives
		break
	}
	if len(ctors) == len(alts) {
		return Completeness{complete: true, alternatives: alts}
	}
	return Completeness{}
}
