package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValiditySetKind(t *testing.T) {
	v := DefaultValidity()

	assert.ErrorIs(t, v.SetKind("forever"), ErrInvalidValidityKind)
	assert.Equal(t, ValidityUntilRevoked, v.Kind)

	require.NoError(t, v.SetKind(ValiditySpecificTime))
	assert.Equal(t, ValiditySpecificTime, v.Kind)

	// Switching kinds keeps the other branch's fields so the editor can
	// switch back without losing entered dates.
	require.NoError(t, v.SetKind(ValidityTimeAfterDispatch))
	assert.False(t, v.SpecificDate.IsZero())
}

func TestParseDate(t *testing.T) {
	got := ParseDate("2024-03-15")
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), got)

	// Malformed dates fall back to today instead of failing the import.
	fallback := ParseDate("15.03.2024")
	assert.Equal(t, Today(), fallback)
}

func TestStatementSet(t *testing.T) {
	set := NewStatementSet()

	assert.ErrorIs(t, set.SetOfficial("shippingNote", Statement{}), ErrUnknownStatement)

	require.NoError(t, set.SetOfficial(StatementIntendedUse, Statement{Content: "Calibration."}))
	assert.Equal(t, "Calibration.", set.Official[StatementIntendedUse].Content)

	set.AddCustom(Statement{Name: "A"})
	set.AddCustom(Statement{Name: "B"})
	require.NoError(t, set.RemoveCustom(0))
	require.Len(t, set.Custom, 1)
	assert.Equal(t, "B", set.Custom[0].Name)
	assert.ErrorIs(t, set.RemoveCustom(1), ErrIndexOutOfRange)
}

func TestOfficialStatementKeysCoverLabels(t *testing.T) {
	assert.Len(t, OfficialStatementKeys, 9)
	for _, key := range OfficialStatementKeys {
		assert.True(t, OfficialStatementKey(key), key)
		assert.NotEmpty(t, OfficialStatementLabels[key], key)
	}
	assert.False(t, OfficialStatementKey(CustomStatementTag))
}

func TestQuantityRowUncertainty(t *testing.T) {
	assert.False(t, QuantityRow{Value: Float(1)}.HasUncertainty())
	assert.True(t, QuantityRow{Uncertainty: Float(0.1)}.HasUncertainty())
	assert.True(t, QuantityRow{CoverageFactor: Float(2)}.HasUncertainty())
	assert.True(t, QuantityRow{CoverageProbability: Float(0.95)}.HasUncertainty())
	assert.True(t, QuantityRow{Distribution: "normal"}.HasUncertainty())

	row := NewQuantityRow()
	assert.True(t, row.HasUncertainty())
	assert.Equal(t, DefaultCoverageFactor, *row.CoverageFactor)
	assert.Equal(t, DefaultCoverageProbability, *row.CoverageProbability)
	assert.Equal(t, DefaultDistribution, row.Distribution)
}
