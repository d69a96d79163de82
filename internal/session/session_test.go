package session

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patcheck/exhaustive/internal/pattern"
)

func boolUnion() pattern.Union {
	return pattern.Union{
		RenderAs: pattern.RenderTag,
		Alternatives: []pattern.Ctor{
			{Name: pattern.Tag("True"), TagID: 0, Arity: 0},
			{Name: pattern.Tag("False"), TagID: 1, Arity: 0},
		},
	}
}

func optionUnion() pattern.Union {
	return pattern.Union{
		RenderAs: pattern.RenderTag,
		Alternatives: []pattern.Ctor{
			{Name: pattern.Tag("Some"), TagID: 0, Arity: 1},
			{Name: pattern.Tag("None"), TagID: 1, Arity: 0},
		},
	}
}

func TestSession_ScriptedBoolIncomplete(t *testing.T) {
	s := New(boolUnion())
	var out bytes.Buffer
	err := s.Start(strings.NewReader("True\n"), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "incomplete")
}

func TestSession_ScriptedBoolComplete(t *testing.T) {
	s := New(boolUnion())
	var out bytes.Buffer
	err := s.Start(strings.NewReader("True\nFalse\n"), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "exhaustive")
}

func TestSession_ScriptedRedundantBranch(t *testing.T) {
	s := New(boolUnion())
	var out bytes.Buffer
	err := s.Start(strings.NewReader("_\nTrue\n"), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "redundant")
}

func TestSession_NestedOptionPattern(t *testing.T) {
	s := New(optionUnion())
	var out bytes.Buffer
	err := s.Start(strings.NewReader("Some(_)\nNone\n"), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "exhaustive")
}

func TestSession_QuitStopsEarly(t *testing.T) {
	s := New(boolUnion())
	var out bytes.Buffer
	err := s.Start(strings.NewReader("True\n:quit\nFalse\n"), &out)
	require.NoError(t, err)
	assert.NotContains(t, out.String(), "patcheck[1]> False")
}

func TestSession_ResetClearsBranches(t *testing.T) {
	s := New(boolUnion())
	var out bytes.Buffer
	err := s.Start(strings.NewReader("True\n:reset\n"), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "cleared")
}

func TestParsePattern_UnknownConstructor(t *testing.T) {
	_, err := parsePattern("Frobnicate", map[string]pattern.TagId{}, boolUnion())
	assert.Error(t, err)
}

func TestParsePattern_ListSlice(t *testing.T) {
	p, err := parsePattern("[ _ , .. , _ ]", map[string]pattern.TagId{}, boolUnion())
	require.NoError(t, err)
	lp, ok := p.(pattern.ListPattern)
	require.True(t, ok)
	assert.Equal(t, pattern.Slice(1, 1), lp.Arity)
	assert.Len(t, lp.Args, 2)
}

func TestParsePattern_ListExact(t *testing.T) {
	p, err := parsePattern("[]", map[string]pattern.TagId{}, boolUnion())
	require.NoError(t, err)
	lp, ok := p.(pattern.ListPattern)
	require.True(t, ok)
	assert.Equal(t, pattern.Exact(0), lp.Arity)
}
