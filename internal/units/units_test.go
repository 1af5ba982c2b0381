package units

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	lookup, err := Load(filepath.Join("testdata", "kinds.ttl"))
	require.NoError(t, err)

	assert.Equal(t, []string{"GM", "KiloGM", "MilliGM"}, lookup.Units("Mass"))
	assert.Equal(t, []string{"M"}, lookup.Units("Length"))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "missing.ttl"))
	assert.Error(t, err)
}

func TestKindsSortedWithCustomLast(t *testing.T) {
	lookup, err := Load(filepath.Join("testdata", "kinds.ttl"))
	require.NoError(t, err)

	kinds := lookup.Kinds()
	assert.Equal(t, []string{"Dimensionless", "Length", "Mass", CustomUnit}, kinds)
}

func TestUnitsFallbacks(t *testing.T) {
	lookup, err := Load(filepath.Join("testdata", "kinds.ttl"))
	require.NoError(t, err)

	// A kind without applicable units, and an unknown kind, both offer
	// the custom entry.
	assert.Equal(t, []string{CustomUnit}, lookup.Units("Dimensionless"))
	assert.Equal(t, []string{CustomUnit}, lookup.Units("Voltage"))
}
