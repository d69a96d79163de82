// Package fixture loads declarative exhaustiveness scenarios from YAML so
// the CLI and golden tests can exercise internal/exhaustive without a full
// language front end: a scenario names a union's alternatives once, then
// lists the branch patterns to check for completeness against it.
package fixture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/patcheck/exhaustive/internal/pattern"
)

// CtorSpec describes one alternative of a union fixture.
type CtorSpec struct {
	Name  string `yaml:"name"`
	Arity int    `yaml:"arity"`
}

// UnionSpec describes the complete set of alternatives at a scrutinee's
// type, in the vocabulary a fixture file writes them in.
type UnionSpec struct {
	RenderAs     string     `yaml:"render_as"`
	Alternatives []CtorSpec `yaml:"alternatives"`
}

// PatternSpec is one node of a fixture's pattern tree. Exactly one of the
// fields relevant to Kind should be set:
//
//	any                     -> Anything
//	lit with Int/Str set    -> LiteralPattern
//	ctor with Name/Args     -> CtorPattern, resolved against the scenario's union
//	list with Arity/Args    -> ListPattern
type PatternSpec struct {
	Kind string `yaml:"kind"`

	Int *int64  `yaml:"int,omitempty"`
	Str *string `yaml:"str,omitempty"`

	Name string        `yaml:"name,omitempty"`
	Args []PatternSpec `yaml:"args,omitempty"`

	// List-only fields. ArityKind is "exact" or "slice"; Before/After mirror
	// pattern.Slice's parameters. For "exact" (and any value other than
	// "slice") After is ignored and Before is the exact length.
	ArityKind string `yaml:"arity_kind,omitempty"`
	Before    int    `yaml:"before,omitempty"`
	After     int    `yaml:"after,omitempty"`
}

// Scenario is one fixture file: a union plus the branch patterns to check
// for exhaustiveness/usefulness over it.
type Scenario struct {
	Name     string        `yaml:"name"`
	Decl     UnionSpec     `yaml:"union"`
	Branches []PatternSpec `yaml:"branches"`
}

// Load reads and parses a scenario fixture from path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: read %s: %w", path, err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("fixture: parse %s: %w", path, err)
	}
	return &s, nil
}

// Union converts s's declarative alternatives into a pattern.Union,
// assigning TagIds in declaration order.
func (s *Scenario) Union() pattern.Union {
	renderAs := pattern.RenderTag
	switch s.Decl.RenderAs {
	case "opaque":
		renderAs = pattern.RenderOpaque
	case "record":
		renderAs = pattern.RenderRecord
	}
	alts := make([]pattern.Ctor, len(s.Decl.Alternatives))
	for i, c := range s.Decl.Alternatives {
		alts[i] = pattern.Ctor{Name: pattern.Tag(c.Name), TagID: pattern.TagId(i), Arity: c.Arity}
	}
	return pattern.Union{Alternatives: alts, RenderAs: renderAs}
}

// Matrix builds the branch matrix described by the scenario, resolving
// each ctor-kind pattern's Name against the scenario's declared union.
func (s *Scenario) Matrix() (pattern.Matrix, error) {
	u := s.Union()
	tagByName := make(map[string]pattern.TagId, len(u.Alternatives))
	for _, c := range u.Alternatives {
		tagByName[c.Name.Name] = c.TagID
	}

	rows := make(pattern.Matrix, 0, len(s.Branches))
	for i, branchSpec := range s.Branches {
		p, err := build(branchSpec, u, tagByName)
		if err != nil {
			return nil, fmt.Errorf("fixture: branch %d: %w", i, err)
		}
		rows = append(rows, pattern.Row{p})
	}
	return rows, nil
}

func build(spec PatternSpec, u pattern.Union, tagByName map[string]pattern.TagId) (pattern.Pattern, error) {
	switch spec.Kind {
	case "any", "":
		return pattern.AnythingPattern, nil

	case "lit":
		switch {
		case spec.Int != nil:
			var b [16]byte
			v := *spec.Int
			for i := 0; i < 8; i++ {
				b[i] = byte(v >> (8 * i))
			}
			return pattern.LiteralPattern{Value: pattern.Literal{Kind: pattern.LitInt, Int: b}}, nil
		case spec.Str != nil:
			return pattern.LiteralPattern{Value: pattern.NewStrLiteral(*spec.Str)}, nil
		default:
			return nil, fmt.Errorf("literal pattern needs int or str")
		}

	case "ctor":
		tagID, ok := tagByName[spec.Name]
		if !ok {
			return nil, fmt.Errorf("unknown constructor %q", spec.Name)
		}
		args := make([]pattern.Pattern, len(spec.Args))
		for i, a := range spec.Args {
			p, err := build(a, u, tagByName)
			if err != nil {
				return nil, err
			}
			args[i] = p
		}
		return pattern.CtorPattern{Union: u, TagID: tagID, Args: args}, nil

	case "list":
		var arity pattern.ListArity
		switch spec.ArityKind {
		case "slice":
			arity = pattern.Slice(spec.Before, spec.After)
		default:
			arity = pattern.Exact(spec.Before)
		}
		args := make([]pattern.Pattern, len(spec.Args))
		for i, a := range spec.Args {
			p, err := build(a, u, tagByName)
			if err != nil {
				return nil, err
			}
			args[i] = p
		}
		return pattern.ListPattern{Arity: arity, Args: args}, nil
	}
	return nil, fmt.Errorf("unknown pattern kind %q", spec.Kind)
}
