package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewtypeWrapper(t *testing.T) {
	u := NewtypeWrapper(Opaque("Wrapper"), 2)
	assert.Len(t, u.Alternatives, 1)
	assert.Equal(t, TagId(0), u.Alternatives[0].TagID)
	assert.Equal(t, 2, u.Alternatives[0].Arity)
	assert.Equal(t, RenderTag, u.RenderAs)
}

func TestGuardUnion_HasTwoAlternatives(t *testing.T) {
	u := GuardUnion()
	assert.Len(t, u.Alternatives, 2)
	assert.Equal(t, GuardPassedTag, u.Alternatives[0].TagID)
	assert.Equal(t, 1, u.Alternatives[0].Arity)
	assert.Equal(t, GuardElseTag, u.Alternatives[1].TagID)
	assert.Equal(t, 0, u.Alternatives[1].Arity)
	assert.Equal(t, RenderGuard, u.RenderAs)
}

func TestWrapGuarded_WrapsInGuardPassedCtor(t *testing.T) {
	inner := LiteralPattern{Value: Literal{Kind: LitBit, Bit: true}}
	wrapped := WrapGuarded(inner)

	ctor, ok := wrapped.(CtorPattern)
	if !ok {
		t.Fatalf("expected CtorPattern, got %T", wrapped)
	}
	assert.Equal(t, GuardPassedTag, ctor.TagID)
	assert.Equal(t, []Pattern{inner}, ctor.Args)
}

func TestWithFieldNames_NormalizesEach(t *testing.T) {
	names := WithFieldNames([]string{"café", "plain"})
	assert.Equal(t, []string{"café", "plain"}, names)
}
