package exhaustive

import "github.com/patcheck/exhaustive/internal/pattern"

// Shared fixtures for the scenario-style tests in this package: Bool,
// Option, and list arities.

func boolUnion() pattern.Union {
	return pattern.Union{
		RenderAs: pattern.RenderTag,
		Alternatives: []pattern.Ctor{
			{Name: pattern.Tag("True"), TagID: 0, Arity: 0},
			{Name: pattern.Tag("False"), TagID: 1, Arity: 0},
		},
	}
}

func boolPattern(u pattern.Union, isTrue bool) pattern.Pattern {
	tag := pattern.TagId(1)
	if isTrue {
		tag = 0
	}
	return pattern.CtorPattern{Union: u, TagID: tag, Args: nil}
}

// optionUnion describes Option = { Some(1), None(0) }.
func optionUnion() pattern.Union {
	return pattern.Union{
		RenderAs: pattern.RenderTag,
		Alternatives: []pattern.Ctor{
			{Name: pattern.Tag("Some"), TagID: 0, Arity: 1},
			{Name: pattern.Tag("None"), TagID: 1, Arity: 0},
		},
	}
}

func somePattern(u pattern.Union, arg pattern.Pattern) pattern.Pattern {
	return pattern.CtorPattern{Union: u, TagID: 0, Args: []pattern.Pattern{arg}}
}

func nonePattern(u pattern.Union) pattern.Pattern {
	return pattern.CtorPattern{Union: u, TagID: 1, Args: nil}
}

// pairUnion describes a single-alternative tuple/record type: Pair(_, _),
// arity 2. Used to exercise IsUseful's column alignment for constructors
// with more than one field.
func pairUnion() pattern.Union {
	return pattern.Union{
		RenderAs: pattern.RenderRecord,
		Alternatives: []pattern.Ctor{
			{Name: pattern.Tag("Pair"), TagID: 0, Arity: 2},
		},
	}
}

func pairPattern(u pattern.Union, first, second pattern.Pattern) pattern.Pattern {
	return pattern.CtorPattern{Union: u, TagID: 0, Args: []pattern.Pattern{first, second}}
}

func intLit(v byte) pattern.Pattern {
	var b [16]byte
	b[0] = v
	return pattern.LiteralPattern{Value: pattern.Literal{Kind: pattern.LitInt, Int: b}}
}

func wc() pattern.Pattern { return pattern.AnythingPattern }

func row(ps ...pattern.Pattern) pattern.Row         { return pattern.Row(ps) }
func matrix(rows ...pattern.Row) pattern.Matrix     { return pattern.Matrix(rows) }
