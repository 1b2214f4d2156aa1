package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pktikkani/excelanalyzer/pkg/analyzer/models"
)

func row(vals ...any) []models.Value {
	out := make([]models.Value, len(vals))
	for i, v := range vals {
		switch x := v.(type) {
		case nil:
			out[i] = models.Null()
		case int:
			out[i] = models.Int(int64(x))
		case float64:
			out[i] = models.Float(x)
		case string:
			out[i] = models.Text(x)
		default:
			panic("unsupported fixture value")
		}
	}
	return out
}

func TestMatchRowsPositional(t *testing.T) {
	left := table([]string{"ID", "Amount"}, row(1, 10), row(2, 20), row(3, 30))
	right := table([]string{"ID", "Amount"}, row(1, 10))

	m := MatchRows(left, right, "")
	assert.Equal(t, ModePositional, m.Mode)
	assert.False(t, m.KeyFallback)
	assert.Equal(t, 1, m.RowsCompared)
	require.Len(t, m.Pairs, 1)
	assert.Equal(t, RowPair{Left: 0, Right: 0}, m.Pairs[0])

	require.NotNil(t, m.ExtraLeft)
	assert.Equal(t, 2, m.ExtraLeft.NumRows())
	assert.Equal(t, "2", m.ExtraLeft.Cell(0, 0).Canonical())
	assert.Nil(t, m.ExtraRight)
}

func TestMatchRowsKeyFallback(t *testing.T) {
	left := table([]string{"ID"}, row(1))
	right := table([]string{"ID"}, row(1))

	m := MatchRows(left, right, "Missing")
	assert.Equal(t, ModePositional, m.Mode)
	assert.True(t, m.KeyFallback)
	assert.Empty(t, m.KeyColumn)
}

func TestMatchRowsKeyed(t *testing.T) {
	left := table([]string{"ID", "Amount"}, row(2, 20), row(1, 10))
	right := table([]string{"ID", "Amount"}, row(1, 15), row(3, 5))

	m := MatchRows(left, right, "ID")
	assert.Equal(t, ModeKeyed, m.Mode)
	assert.Equal(t, "ID", m.KeyColumn)

	require.Len(t, m.CommonKeys, 1)
	assert.Equal(t, "1", m.CommonKeys[0].Canonical())
	require.Len(t, m.KeysOnlyLeft, 1)
	assert.Equal(t, "2", m.KeysOnlyLeft[0].Canonical())
	require.Len(t, m.KeysOnlyRight, 1)
	assert.Equal(t, "3", m.KeysOnlyRight[0].Canonical())

	// Pair references the matching rows by original index.
	require.Len(t, m.Pairs, 1)
	assert.Equal(t, 1, m.Pairs[0].Left)
	assert.Equal(t, 0, m.Pairs[0].Right)

	require.NotNil(t, m.ExtraLeft)
	assert.Equal(t, 1, m.ExtraLeft.NumRows())
	assert.Equal(t, "2", m.ExtraLeft.Cell(0, 0).Canonical())
}

func TestMatchRowsKeyedDuplicateKeys(t *testing.T) {
	left := table([]string{"ID", "Amount"}, row(1, 10), row(1, 99), row(2, 7))
	right := table([]string{"ID", "Amount"}, row(1, 10), row(3, 1), row(3, 2))

	m := MatchRows(left, right, "ID")

	// First occurrence participates in the correspondence.
	require.Len(t, m.Pairs, 1)
	assert.Equal(t, 0, m.Pairs[0].Left)

	// All duplicate rows stay in the extra-row report.
	require.NotNil(t, m.ExtraRight)
	assert.Equal(t, 2, m.ExtraRight.NumRows())
	require.Len(t, m.KeysOnlyRight, 1)
	assert.Equal(t, "3", m.KeysOnlyRight[0].Canonical())
}

func TestMatchRowsCommonKeysCarryFirstTableKind(t *testing.T) {
	left := table([]string{"ID"}, row(1))
	right := table([]string{"ID"}, row(1.0))

	m := MatchRows(left, right, "ID")
	require.Len(t, m.CommonKeys, 1)
	// Canonical text matches across kinds; the reported value is the first
	// table's, so it stays an integer.
	assert.Equal(t, models.KindInt, m.CommonKeys[0].Kind())
	assert.Equal(t, "1", m.CommonKeys[0].Canonical())
}

func TestMatchRowsKeyedSortedByCanonicalKey(t *testing.T) {
	left := table([]string{"K"}, row("b"), row("a"), row(10), row(2))
	right := table([]string{"K"}, row("a"), row("b"), row(10), row(2))

	m := MatchRows(left, right, "K")
	var order []string
	for _, k := range m.CommonKeys {
		order = append(order, k.Canonical())
	}
	// String sort is the authoritative order: "10" < "2" < "a" < "b".
	assert.Equal(t, []string{"10", "2", "a", "b"}, order)
}
