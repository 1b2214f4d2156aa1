package qa

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pktikkani/excelanalyzer/pkg/analyzer"
	"github.com/pktikkani/excelanalyzer/pkg/analyzer/models"
)

func testSession() *analyzer.Session {
	sales := models.MustNewTable(
		[]string{"ID", "Amount"},
		[][]models.Value{
			{models.Int(1), models.Int(10)},
			{models.Int(2), models.Int(30)},
			{models.Int(2), models.Int(30)},
			{models.Int(3), models.Null()},
		},
	)
	s := analyzer.NewSession()
	s.Add(models.NewWorkbook("a.xlsx", []string{"Sales"}, map[string]*models.Table{"Sales": sales}))
	return s
}

func TestAnswerNoFiles(t *testing.T) {
	r := New(analyzer.NewSession())
	assert.Contains(t, r.Answer("how many rows?"), "No Excel files loaded")
}

func TestAnswerRouting(t *testing.T) {
	r := New(testSession())

	tests := []struct {
		question string
		contains string
	}{
		{"How many rows are in each sheet?", "4 rows"},
		{"What columns are available?", "ID, Amount"},
		{"Give me a summary of the data", "4 rows x 2 columns"},
		{"What's the average of the numeric columns?", "Average values"},
		{"What is the maximum value?", "Maximum values"},
		{"Show me the minimum values", "Minimum values"},
		{"Are there any null or missing values?", "1 missing"},
		{"Are there any duplicate rows?", "1 duplicate rows"},
		{"Tell me a joke", "I can help with questions like"},
	}
	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			assert.Contains(t, r.Answer(tt.question), tt.contains)
		})
	}
}

func TestAnswerCompareNeedsTwoFiles(t *testing.T) {
	r := New(testSession())
	assert.Contains(t, r.Answer("compare the files"), "Need at least 2 files")
}

func TestAnswerCompareOverview(t *testing.T) {
	s := testSession()
	other := models.MustNewTable([]string{"X"}, [][]models.Value{{models.Int(1)}})
	s.Add(models.NewWorkbook("b.xlsx", []string{"Sales", "Extra"}, map[string]*models.Table{
		"Sales": other,
		"Extra": other,
	}))

	r := New(s)
	answer := r.Answer("compare the two files")
	assert.Contains(t, answer, "Common sheets: Sales")
	assert.Contains(t, answer, "Sheets only in b.xlsx: Extra")
}
