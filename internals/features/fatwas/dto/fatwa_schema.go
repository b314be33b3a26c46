package dto

import (
	"annur_backend/internals/collection"
	"annur_backend/internals/features/fatwas/model"

	"github.com/google/uuid"
)

// FatwaSchema mengikat FatwaModel ke managed-collection generic:
// field pencarian, filter kategori, defaults, transient list, rule validasi,
// dan counter statistik — satu sumber untuk list admin, form, dan stats.
var FatwaSchema = collection.Schema[model.FatwaModel]{
	Name: "fatwa",
	GetID: func(m model.FatwaModel) string {
		if m.FatwaID == uuid.Nil {
			return ""
		}
		return m.FatwaID.String()
	},
	SetID: func(m *model.FatwaModel, id string) {
		if u, err := uuid.Parse(id); err == nil {
			m.FatwaID = u
		}
	},
	SearchText: func(m model.FatwaModel) []string {
		return []string{m.FatwaTitle, m.FatwaQuestion, m.FatwaAnswer, m.FatwaScholar}
	},
	Filters: map[string]func(model.FatwaModel) string{
		"status":   func(m model.FatwaModel) string { return m.FatwaStatus },
		"category": func(m model.FatwaModel) string { return m.FatwaCategory },
		"language": func(m model.FatwaModel) string { return m.FatwaLanguage },
	},
	Defaults: func() model.FatwaModel {
		return model.FatwaModel{
			FatwaStatus:   model.FatwaStatusPending,
			FatwaCategory: "Fiqh",
			FatwaLanguage: "Indonesian",
			FatwaIsPublic: false,
		}
	},
	SeedLists: func(m model.FatwaModel) map[string][]string {
		return map[string][]string{
			"tags":       m.FatwaTags,
			"references": m.FatwaReferences,
		}
	},
	CommitLists: func(m *model.FatwaModel, lists map[string][]string) {
		m.FatwaTags = append([]string(nil), lists["tags"]...)
		m.FatwaReferences = append([]string(nil), lists["references"]...)
	},
	Rules: []collection.Rule[model.FatwaModel]{
		collection.Required("fatwa_title", func(m model.FatwaModel) string { return m.FatwaTitle }, "Title is required"),
		collection.MaxLen("fatwa_title", 200, func(m model.FatwaModel) string { return m.FatwaTitle }, "Title must be less than 200 characters"),
		collection.Required("fatwa_question", func(m model.FatwaModel) string { return m.FatwaQuestion }, "Question is required"),
		collection.MinLen("fatwa_question", 10, func(m model.FatwaModel) string { return m.FatwaQuestion }, "Question must be at least 10 characters"),
		collection.OneOf("fatwa_status", model.FatwaStatuses, func(m model.FatwaModel) string { return m.FatwaStatus }, "Status is not in the allowed set"),
		collection.OneOf("fatwa_category", model.FatwaCategories, func(m model.FatwaModel) string { return m.FatwaCategory }, "Category is not in the allowed set"),
		collection.OneOf("fatwa_language", model.FatwaLanguages, func(m model.FatwaModel) string { return m.FatwaLanguage }, "Language is not in the allowed set"),
	},
	Counters: []collection.Counter[model.FatwaModel]{
		{Name: "approved", Match: func(m model.FatwaModel) bool { return m.FatwaStatus == model.FatwaStatusApproved }},
		{Name: "pending", Match: func(m model.FatwaModel) bool { return m.FatwaStatus == model.FatwaStatusPending }},
		{Name: "rejected", Match: func(m model.FatwaModel) bool { return m.FatwaStatus == model.FatwaStatusRejected }},
	},
}
