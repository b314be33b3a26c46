package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	st := NewStore(testSchema())

	rec := testRecord{ID: "f1", Title: "Hukum zakat", Body: validBody(), Status: "Pending"}
	require.NoError(t, st.Insert(rec))

	got, found := st.Find("f1")
	require.True(t, found)
	assert.Equal(t, rec, got)

	// replace mempertahankan id meski payload membawa id berbeda
	require.NoError(t, st.Replace("f1", testRecord{ID: "lain", Title: "Hukum puasa", Body: validBody()}))
	got, found = st.Find("f1")
	require.True(t, found)
	assert.Equal(t, "f1", got.ID)
	assert.Equal(t, "Hukum puasa", got.Title)

	st.Remove("f1")
	_, found = st.Find("f1")
	assert.False(t, found)
}

func TestStoreInsertDuplicateID(t *testing.T) {
	st := NewStore(testSchema())
	require.NoError(t, st.Insert(testRecord{ID: "f1", Title: "a"}))
	assert.ErrorIs(t, st.Insert(testRecord{ID: "f1", Title: "b"}), ErrDuplicateID)
	assert.Equal(t, 1, st.Len())
}

func TestStoreReplaceMissing(t *testing.T) {
	st := NewStore(testSchema())
	assert.ErrorIs(t, st.Replace("ghost", testRecord{}), ErrNotFound)
}

func TestStoreRemoveIdempotent(t *testing.T) {
	st := NewStore(testSchema())
	require.NoError(t, st.Insert(testRecord{ID: "f1"}))
	st.Remove("ghost") // no-op
	st.Remove("f1")
	st.Remove("f1") // no-op kedua
	assert.Equal(t, 0, st.Len())
}

func TestStoreLoadLastWins(t *testing.T) {
	st := NewStore(testSchema())
	st.Load([]testRecord{{ID: "a"}, {ID: "b"}})
	require.Equal(t, 2, st.Len())

	// load kedua mengganti total, tanpa merge
	st.Load([]testRecord{{ID: "c"}})
	assert.Equal(t, 1, st.Len())
	_, found := st.Find("a")
	assert.False(t, found)
	_, found = st.Find("c")
	assert.True(t, found)
}

func TestStoreLoadSkipsDuplicateIDs(t *testing.T) {
	st := NewStore(testSchema())
	st.Load([]testRecord{{ID: "a", Title: "pertama"}, {ID: "a", Title: "kedua"}})
	require.Equal(t, 1, st.Len())
	got, _ := st.Find("a")
	assert.Equal(t, "pertama", got.Title)
}

func TestStoreOnChangeFiresPerMutation(t *testing.T) {
	st := NewStore(testSchema())
	calls := 0
	st.OnChange = func() { calls++ }

	st.Load([]testRecord{{ID: "a"}})
	require.NoError(t, st.Insert(testRecord{ID: "b"}))
	require.NoError(t, st.Replace("b", testRecord{Title: "x"}))
	st.Remove("a")
	assert.Equal(t, 4, calls)

	// mutasi gagal tidak memicu recompute
	_ = st.Insert(testRecord{ID: "b"})
	st.Remove("ghost")
	assert.Equal(t, 4, calls)
}

func TestStoreAllPreservesOrder(t *testing.T) {
	st := NewStore(testSchema())
	st.Load([]testRecord{{ID: "a"}, {ID: "b"}, {ID: "c"}})
	st.Remove("b")
	require.NoError(t, st.Insert(testRecord{ID: "d"}))

	all := st.All()
	ids := make([]string, 0, len(all))
	for _, r := range all {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"a", "c", "d"}, ids)

	// Find tetap konsisten setelah index di-reshuffle oleh Remove
	got, found := st.Find("c")
	require.True(t, found)
	assert.Equal(t, "c", got.ID)
}

func TestPaginateWindows(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, Paginate(items, 0, 2))
	assert.Equal(t, []int{3, 4}, Paginate(items, 2, 2))
	// halaman terakhir sebagian
	assert.Equal(t, []int{5}, Paginate(items, 4, 2))
	// offset melewati akhir koleksi
	assert.Empty(t, Paginate(items, 10, 2))
	// input aneh di-clamp, bukan panic
	assert.Equal(t, []int{1, 2}, Paginate(items, -3, 2))
	assert.Equal(t, items, Paginate(items, 0, -1))
	assert.Empty(t, Paginate([]int(nil), 0, 20))
}
