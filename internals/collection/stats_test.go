package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Skenario daftar fatwa: dua record, satu Approved satu Pending.
func TestComputeStatsFatwaScenario(t *testing.T) {
	s := testSchema()
	st := NewStore(s)
	st.Load([]testRecord{
		{ID: "1", Title: "Hukum zakat", Status: "Approved"},
		{ID: "2", Title: "Puasa musafir", Status: "Pending"},
	})

	stats := st.Stats()
	assert.Equal(t, map[string]int{
		"total":    2,
		"approved": 1,
		"pending":  1,
		"rejected": 0,
	}, stats)
}

func TestStatsIndependentFromFilter(t *testing.T) {
	s := testSchema()
	st := NewStore(s)
	st.Load(sampleRecords())

	before := st.Stats()

	// filter hanya mengubah view, bukan stats
	visible := st.Apply(FilterState{Filters: map[string]string{"status": "Approved"}})
	require.Len(t, visible, 1)

	after := st.Stats()
	assert.Equal(t, before, after)
	assert.Equal(t, 3, after["total"])
}

func TestComputeStatsEmptyCollection(t *testing.T) {
	s := testSchema()
	stats := ComputeStats(s, nil)
	assert.Equal(t, map[string]int{
		"total":    0,
		"approved": 0,
		"pending":  0,
		"rejected": 0,
	}, stats)
}

func TestCountBy(t *testing.T) {
	got := CountBy(sampleRecords(), func(r testRecord) string { return r.Category })
	assert.Equal(t, map[string]int{"Fiqh": 1, "Worship": 1, "Finance": 1}, got)
}

func TestPercentageZeroDenominator(t *testing.T) {
	assert.Equal(t, 0, Percentage(5, 0))
	assert.Equal(t, 50, Percentage(1, 2))
	assert.Equal(t, 100, Percentage(3, 3))
}

func TestAverageByEmpty(t *testing.T) {
	assert.Equal(t, 0.0, AverageBy(nil, func(r testRecord) int { return r.Amount }))

	recs := []testRecord{{Amount: 80}, {Amount: 90}}
	assert.InDelta(t, 85.0, AverageBy(recs, func(r testRecord) int { return r.Amount }), 0.0001)
}
