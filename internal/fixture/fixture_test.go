package fixture

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patcheck/exhaustive/internal/exhaustive"
)

func TestLoad_BoolIncomplete(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "bool_incomplete.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "bool-missing-false", s.Name)

	m, err := s.Matrix()
	require.NoError(t, err)
	witnesses := exhaustive.IsExhaustive(m, 1)
	assert.Len(t, witnesses, 1)
}

func TestLoad_OptionComplete(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "option_complete.yaml"))
	require.NoError(t, err)

	m, err := s.Matrix()
	require.NoError(t, err)
	assert.Empty(t, exhaustive.IsExhaustive(m, 1))
}

func TestLoad_UnknownConstructorErrors(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "bad_ctor.yaml"))
	require.NoError(t, err)

	_, err = s.Matrix()
	assert.Error(t, err)
}
