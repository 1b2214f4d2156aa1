package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pktikkani/excelanalyzer/pkg/analyzer/models"
)

func inspectSession() *Session {
	orders := models.MustNewTable(
		[]string{"ID", "Amount", "Region"},
		[][]models.Value{
			{models.Int(1), models.Int(10), models.Text("East")},
			{models.Int(2), models.Int(30), models.Text("west")},
			{models.Int(3), models.Int(30), models.Text("East")},
			{models.Int(4), models.Null(), models.Text("North-East")},
		},
	)
	s := NewSession()
	s.Add(models.NewWorkbook("a.xlsx", []string{"Orders"}, map[string]*models.Table{"Orders": orders}))
	return s
}

func TestUnique(t *testing.T) {
	s := inspectSession()

	uniques, err := s.Unique("a.xlsx", "Orders", "Region")
	require.NoError(t, err)
	// First-occurrence order, not sorted.
	assert.Equal(t, []string{"East", "west", "North-East"}, uniques)

	amounts, err := s.Unique("a.xlsx", "Orders", "Amount")
	require.NoError(t, err)
	assert.Equal(t, []string{"10", "30", ""}, amounts)
}

func TestValueCounts(t *testing.T) {
	s := inspectSession()

	counts, err := s.ValueCounts("a.xlsx", "Orders", "Region")
	require.NoError(t, err)
	require.Len(t, counts, 3)
	assert.Equal(t, ValueCount{Value: "East", Count: 2}, counts[0])
	// Ties broken by ascending value.
	assert.Equal(t, ValueCount{Value: "North-East", Count: 1}, counts[1])
	assert.Equal(t, ValueCount{Value: "west", Count: 1}, counts[2])
}

func TestInspectUnknownColumn(t *testing.T) {
	s := inspectSession()

	_, err := s.Unique("a.xlsx", "Orders", "Missing")
	assert.ErrorIs(t, err, ErrColumnNotFound)

	_, err = s.ValueCounts("a.xlsx", "Orders", "Missing")
	assert.ErrorIs(t, err, ErrColumnNotFound)

	_, err = s.Filter("a.xlsx", "Orders", "Missing", "==", "1")
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

func TestFilterNumericOperators(t *testing.T) {
	s := inspectSession()

	tests := []struct {
		op    string
		value string
		ids   []string
	}{
		{">", "10", []string{"2", "3"}},
		{">=", "10", []string{"1", "2", "3"}},
		{"<", "30", []string{"1"}},
		{"<=", "10", []string{"1"}},
		{"!=", "30", []string{"1"}},
		{"==", "30", []string{"2", "3"}},
	}
	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			filtered, err := s.Filter("a.xlsx", "Orders", "Amount", tt.op, tt.value)
			require.NoError(t, err)
			var ids []string
			for _, row := range filtered.Rows() {
				ids = append(ids, row[0].Canonical())
			}
			// The null Amount in row 4 never matches.
			assert.Equal(t, tt.ids, ids)
		})
	}
}

func TestFilterTextOperators(t *testing.T) {
	s := inspectSession()

	filtered, err := s.Filter("a.xlsx", "Orders", "Region", "==", "East")
	require.NoError(t, err)
	assert.Equal(t, 2, filtered.NumRows())

	// Case-insensitive substring.
	filtered, err = s.Filter("a.xlsx", "Orders", "Region", "contains", "east")
	require.NoError(t, err)
	assert.Equal(t, 3, filtered.NumRows())

	filtered, err = s.Filter("a.xlsx", "Orders", "Region", "contains", "nomatch")
	require.NoError(t, err)
	assert.Zero(t, filtered.NumRows())
}

func TestFilterBadOperator(t *testing.T) {
	s := inspectSession()

	_, err := s.Filter("a.xlsx", "Orders", "Amount", "~", "10")
	assert.ErrorContains(t, err, "unsupported operator")

	_, err = s.Filter("a.xlsx", "Orders", "Amount", ">", "abc")
	assert.ErrorContains(t, err, "needs a numeric value")
}
