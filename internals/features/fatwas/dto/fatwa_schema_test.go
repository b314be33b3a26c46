package dto

import (
	"testing"

	"annur_backend/internals/collection"
	"annur_backend/internals/features/fatwas/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFatwa(id string) model.FatwaModel {
	m := FatwaSchema.Defaults()
	FatwaSchema.SetID(&m, id)
	m.FatwaTitle = "Hukum zakat profesi"
	m.FatwaQuestion = "Bagaimana hukum zakat atas penghasilan bulanan?"
	return m
}

func TestFatwaDefaults(t *testing.T) {
	m := FatwaSchema.Defaults()

	assert.Equal(t, model.FatwaStatusPending, m.FatwaStatus)
	assert.Equal(t, "Fiqh", m.FatwaCategory)
	assert.Equal(t, "Indonesian", m.FatwaLanguage)
	assert.False(t, m.FatwaIsPublic)
}

func TestFatwaValidationCollectsAllViolations(t *testing.T) {
	m := model.FatwaModel{
		FatwaStatus:   "Archived", // bukan status yang dikenal
		FatwaCategory: "Fiqh",
		FatwaLanguage: "Indonesian",
		FatwaQuestion: "singkat",
	}

	errs := collection.ValidateRecord(FatwaSchema, m)

	require.NotEmpty(t, errs)
	assert.Contains(t, errs["fatwa_title"], "Title is required")
	assert.Contains(t, errs["fatwa_question"], "Question must be at least 10 characters")
	assert.Contains(t, errs["fatwa_status"], "Status is not in the allowed set")
}

func TestFatwaValidRecordPasses(t *testing.T) {
	errs := collection.ValidateRecord(FatwaSchema, validFatwa("00000000-0000-0000-0000-000000000001"))
	assert.Empty(t, errs)
}

func TestFatwaStatsScenario(t *testing.T) {
	a := validFatwa("00000000-0000-0000-0000-000000000001")
	a.FatwaStatus = model.FatwaStatusApproved
	b := validFatwa("00000000-0000-0000-0000-000000000002")

	st := collection.NewStore(FatwaSchema)
	st.Load([]model.FatwaModel{a, b})

	assert.Equal(t, map[string]int{
		"total":    2,
		"approved": 1,
		"pending":  1,
		"rejected": 0,
	}, st.Stats())
}

func TestFatwaFilterByStatusAndSearch(t *testing.T) {
	a := validFatwa("00000000-0000-0000-0000-000000000001")
	a.FatwaStatus = model.FatwaStatusApproved
	b := validFatwa("00000000-0000-0000-0000-000000000002")
	b.FatwaTitle = "Puasa bagi musafir"

	st := collection.NewStore(FatwaSchema)
	st.Load([]model.FatwaModel{a, b})

	visible := st.Apply(collection.FilterState{
		Filters: map[string]string{"status": model.FatwaStatusApproved},
	})
	require.Len(t, visible, 1)
	assert.Equal(t, a.FatwaID, visible[0].FatwaID)

	// search case-insensitive atas title/question/answer/scholar
	visible = st.Apply(collection.FilterState{Search: "MUSAFIR"})
	require.Len(t, visible, 1)
	assert.Equal(t, b.FatwaID, visible[0].FatwaID)
}

func TestFatwaListsRoundTrip(t *testing.T) {
	m := validFatwa("00000000-0000-0000-0000-000000000001")
	m.FatwaTags = []string{"zakat", "harta"}

	lists := FatwaSchema.SeedLists(m)
	assert.Equal(t, []string{"zakat", "harta"}, lists["tags"])

	lists["tags"] = append(lists["tags"], "profesi")
	FatwaSchema.CommitLists(&m, lists)
	assert.Equal(t, []string{"zakat", "harta", "profesi"}, []string(m.FatwaTags))
}
