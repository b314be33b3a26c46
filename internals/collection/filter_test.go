package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []testRecord {
	return []testRecord{
		{ID: "1", Title: "Hukum zakat fitrah", Body: validBody(), Author: "Ust. Ahmad", Status: "Approved", Category: "Fiqh"},
		{ID: "2", Title: "Puasa bagi musafir", Body: validBody(), Author: "Ust. Budi", Status: "Pending", Category: "Worship"},
		{ID: "3", Title: "Riba dalam jual beli", Body: validBody(), Author: "Ust. Ahmad", Status: "Rejected", Category: "Finance"},
	}
}

func TestMatchesSearchCaseInsensitive(t *testing.T) {
	s := testSchema()
	recs := sampleRecords()

	tests := []struct {
		name   string
		fs     FilterState
		wantID []string
	}{
		{"empty search matches all", FilterState{}, []string{"1", "2", "3"}},
		{"lowercase query", FilterState{Search: "zakat"}, []string{"1"}},
		{"uppercase query", FilterState{Search: "ZAKAT"}, []string{"1"}},
		{"match on author field", FilterState{Search: "ahmad"}, []string{"1", "3"}},
		{"no match", FilterState{Search: "tidak ada"}, nil},
		{"whitespace-only search matches all", FilterState{Search: "   "}, []string{"1", "2", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(s, recs, tt.fs)
			ids := idsOf(got)
			assert.Equal(t, tt.wantID, ids)
		})
	}
}

func TestMatchesCategoricalFilters(t *testing.T) {
	s := testSchema()
	recs := sampleRecords()

	// exact match, casing kanonik
	got := Apply(s, recs, FilterState{Filters: map[string]string{"status": "Approved"}})
	assert.Equal(t, []string{"1"}, idsOf(got))

	// equality filter kategori case-sensitive: casing salah tidak match
	got = Apply(s, recs, FilterState{Filters: map[string]string{"status": "approved"}})
	assert.Empty(t, got)

	// sentinel All tidak membatasi
	got = Apply(s, recs, FilterState{Filters: map[string]string{"status": All}})
	assert.Len(t, got, 3)

	// filter yang tidak dikonfigurasi schema diabaikan
	got = Apply(s, recs, FilterState{Filters: map[string]string{"language": "Arabic"}})
	assert.Len(t, got, 3)

	// AND antar filter + search
	got = Apply(s, recs, FilterState{
		Search:  "ahmad",
		Filters: map[string]string{"status": "Rejected", "category": "Finance"},
	})
	assert.Equal(t, []string{"3"}, idsOf(got))
}

func TestFilterIdempotent(t *testing.T) {
	s := testSchema()
	fs := FilterState{Search: "ust", Filters: map[string]string{"status": "Pending"}}

	once := Apply(s, sampleRecords(), fs)
	twice := Apply(s, once, fs)
	assert.Equal(t, once, twice)
}

func TestFilterEmptyStore(t *testing.T) {
	s := testSchema()
	got := Apply(s, nil, FilterState{Search: "apa saja"})
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterStateFromQuery(t *testing.T) {
	s := testSchema()
	q := map[string]string{"search": "zakat", "status": "Approved"}
	fs := FilterStateFromQuery(s, func(key string, def ...string) string {
		if v, ok := q[key]; ok {
			return v
		}
		if len(def) > 0 {
			return def[0]
		}
		return ""
	})

	assert.Equal(t, "zakat", fs.Search)
	assert.Equal(t, "Approved", fs.Filters["status"])
	// filter yang tidak dikirim default ke All
	assert.Equal(t, All, fs.Filters["category"])
}

func idsOf(recs []testRecord) []string {
	var ids []string
	for _, r := range recs {
		ids = append(ids, r.ID)
	}
	return ids
}
