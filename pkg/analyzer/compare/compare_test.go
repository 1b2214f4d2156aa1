package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareMergesAllSections(t *testing.T) {
	left := table([]string{"ID", "Amount"}, row(1, 10), row(2, 20))
	right := table([]string{"ID", "Amount"}, row(2, 20), row(1, 15))

	res, err := Compare(left, right, Options{KeyColumn: "ID"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Amount", "ID"}, res.Structure.Common)
	assert.Zero(t, res.Shape.RowDiff)
	require.NotNil(t, res.RowMatch)
	assert.Equal(t, ModeKeyed, res.RowMatch.Mode)
	require.NotNil(t, res.Cells)
	assert.Equal(t, 1, res.Cells.Total)
	require.Len(t, res.Stats, 2)
}

func TestCompareNoCommonColumns(t *testing.T) {
	left := table([]string{"A"}, row(1))
	right := table([]string{"B"}, row(2))

	res, err := Compare(left, right, DefaultOptions())
	assert.ErrorIs(t, err, ErrNoCommonColumns)

	// Structure and shape are still reported.
	require.NotNil(t, res)
	assert.Equal(t, []string{"A"}, res.Structure.OnlyLeft)
	assert.Nil(t, res.Cells)
	assert.Nil(t, res.RowMatch)
}

func TestCompareStatsDisabled(t *testing.T) {
	left := table([]string{"Amount"}, row(1))
	right := table([]string{"Amount"}, row(2))

	off := false
	res, err := Compare(left, right, Options{IncludeStats: &off})
	require.NoError(t, err)
	assert.Nil(t, res.Stats)
}

func TestCompareKeyFallbackObservable(t *testing.T) {
	left := table([]string{"A"}, row(1))
	right := table([]string{"A"}, row(1))

	res, err := Compare(left, right, Options{KeyColumn: "nope"})
	require.NoError(t, err)
	require.NotNil(t, res.RowMatch)
	assert.Equal(t, ModePositional, res.RowMatch.Mode)
	assert.True(t, res.RowMatch.KeyFallback)
}

func TestCompareFreshResultPerInvocation(t *testing.T) {
	left := table([]string{"A"}, row(1))
	right := table([]string{"A"}, row(2))

	r1, err := Compare(left, right, DefaultOptions())
	require.NoError(t, err)
	r2, err := Compare(left, right, DefaultOptions())
	require.NoError(t, err)
	assert.NotSame(t, r1, r2)
	assert.Equal(t, r1.Cells.Total, r2.Cells.Total)
}
