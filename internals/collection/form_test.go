package collection

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormOpenBlankSeedsDefaults(t *testing.T) {
	f := NewFormSession(testSchema())
	f.Open(nil)

	require.True(t, f.IsOpen())
	assert.False(t, f.Editing())
	assert.Equal(t, "Pending", f.Record().Status)
	assert.Empty(t, f.Record().ID)
}

func TestFormOpenEditIsShallowCopy(t *testing.T) {
	st := NewStore(testSchema())
	orig := testRecord{ID: "f1", Title: "Hukum zakat", Body: validBody(), Status: "Approved"}
	require.NoError(t, st.Insert(orig))

	f := NewFormSession(testSchema())
	rec, _ := st.Find("f1")
	f.Open(&rec)
	f.Set(func(r *testRecord) { r.Title = "Diubah" })

	// buffer berubah, record di store tidak tersentuh sebelum submit
	assert.Equal(t, "Diubah", f.Record().Title)
	inStore, _ := st.Find("f1")
	assert.Equal(t, "Hukum zakat", inStore.Title)
}

func TestFormTransientListDedup(t *testing.T) {
	f := NewFormSession(testSchema())
	f.Open(nil)

	f.AddToList("tags", "zakat")
	f.AddToList("tags", "zakat") // duplikat exact → diabaikan
	f.AddToList("tags", "Zakat") // beda casing → nilai baru (dedup case-sensitive)
	f.AddToList("tags", "")      // kosong → diabaikan
	f.AddToList("tags", "   ")   // whitespace → diabaikan
	assert.Equal(t, []string{"zakat", "Zakat"}, f.List("tags"))

	f.RemoveFromList("tags", "tidak-ada") // no-op
	f.RemoveFromList("tags", "zakat")
	assert.Equal(t, []string{"Zakat"}, f.List("tags"))
}

func TestFormValidateCollectsAllErrors(t *testing.T) {
	f := NewFormSession(testSchema())
	f.Open(nil)
	// title dan body dua-duanya kosong → tepat dua field error
	errs := f.Validate()
	require.Len(t, errs, 2)
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "body")
}

func TestFormValidateBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		body    string
		wantErr []string
	}{
		{"title exactly 200 valid", strings.Repeat("a", 200), validBody(), nil},
		{"title 201 invalid", strings.Repeat("a", 201), validBody(), []string{"title"}},
		{"body exactly 10 valid", "judul", strings.Repeat("b", 10), nil},
		{"body 9 invalid", "judul", strings.Repeat("b", 9), []string{"body"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFormSession(testSchema())
			f.Open(nil)
			f.Set(func(r *testRecord) {
				r.Title = tt.title
				r.Body = tt.body
			})
			errs := f.Validate()
			if tt.wantErr == nil {
				assert.Empty(t, errs)
				return
			}
			require.Len(t, errs, len(tt.wantErr))
			for _, field := range tt.wantErr {
				assert.Contains(t, errs, field)
			}
		})
	}
}

func TestFormValidateEmailFormat(t *testing.T) {
	f := NewFormSession(testSchema())
	f.Open(nil)
	f.Set(func(r *testRecord) {
		r.Title = "judul"
		r.Body = validBody()
		r.Email = "bukan-email"
	})
	errs := f.Validate()
	require.Contains(t, errs, "email")

	f.Set(func(r *testRecord) { r.Email = "admin@annur.or.id" })
	assert.Empty(t, f.Validate())
}

func TestFormSubmitInvalidLeavesStoreUntouched(t *testing.T) {
	s := testSchema()
	st := NewStore(s)
	d := NewDispatcher(st, s, nil, false, &recordingNotifier{})

	f := NewFormSession(s)
	f.Open(nil) // title & body kosong → invalid

	_, errs, err := f.Submit(context.Background(), d)
	require.NoError(t, err)
	require.NotEmpty(t, errs)
	assert.Equal(t, 0, st.Len())
	assert.True(t, f.IsOpen()) // form tetap terbuka untuk koreksi
}

func TestFormSubmitCreateCommitsTransientLists(t *testing.T) {
	s := testSchema()
	st := NewStore(s)
	d := NewDispatcher(st, s, nil, false, &recordingNotifier{})

	f := NewFormSession(s)
	f.Open(nil)
	f.Set(func(r *testRecord) {
		r.Title = "Hukum zakat"
		r.Body = validBody()
	})
	f.AddToList("tags", "zakat")
	f.AddToList("tags", "fiqh")

	saved, errs, err := f.Submit(context.Background(), d)
	require.NoError(t, err)
	require.Empty(t, errs)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, []string{"zakat", "fiqh"}, saved.Tags)
	assert.Equal(t, 1, st.Len())
	assert.False(t, f.IsOpen())
}

func TestFormSubmitEditPreservesID(t *testing.T) {
	s := testSchema()
	st := NewStore(s)
	d := NewDispatcher(st, s, nil, false, &recordingNotifier{})
	require.NoError(t, st.Insert(testRecord{ID: "f1", Title: "Lama", Body: validBody()}))

	f := NewFormSession(s)
	rec, _ := st.Find("f1")
	f.Open(&rec)
	f.Set(func(r *testRecord) {
		r.ID = "diganti" // id di payload diabaikan store
		r.Title = "Baru"
	})

	saved, errs, err := f.Submit(context.Background(), d)
	require.NoError(t, err)
	require.Empty(t, errs)
	assert.Equal(t, "f1", saved.ID)
	got, _ := st.Find("f1")
	assert.Equal(t, "Baru", got.Title)
}

func TestFormDiscard(t *testing.T) {
	f := NewFormSession(testSchema())
	f.Open(nil)
	f.Set(func(r *testRecord) { r.Title = "draft" })
	f.AddToList("tags", "x")

	f.Discard()
	assert.False(t, f.IsOpen())
	assert.Empty(t, f.Record().Title)
	assert.Empty(t, f.List("tags"))
}
