package dto

import (
	"annur_backend/internals/collection"
	"annur_backend/internals/features/khutbas/model"

	"github.com/google/uuid"
)

var KhutbaSchema = collection.Schema[model.KhutbaModel]{
	Name: "khutba",
	GetID: func(m model.KhutbaModel) string {
		if m.KhutbaID == uuid.Nil {
			return ""
		}
		return m.KhutbaID.String()
	},
	SetID: func(m *model.KhutbaModel, id string) {
		if u, err := uuid.Parse(id); err == nil {
			m.KhutbaID = u
		}
	},
	SearchText: func(m model.KhutbaModel) []string {
		return []string{m.KhutbaTitle, m.KhutbaSpeaker, m.KhutbaSummary}
	},
	Filters: map[string]func(model.KhutbaModel) string{
		"status":   func(m model.KhutbaModel) string { return m.KhutbaStatus },
		"language": func(m model.KhutbaModel) string { return m.KhutbaLanguage },
	},
	Defaults: func() model.KhutbaModel {
		return model.KhutbaModel{
			KhutbaStatus:   model.KhutbaStatusDraft,
			KhutbaLanguage: "Indonesian",
		}
	},
	SeedLists: func(m model.KhutbaModel) map[string][]string {
		return map[string][]string{"tags": m.KhutbaTags}
	},
	CommitLists: func(m *model.KhutbaModel, lists map[string][]string) {
		m.KhutbaTags = append([]string(nil), lists["tags"]...)
	},
	Rules: []collection.Rule[model.KhutbaModel]{
		collection.Required("khutba_title", func(m model.KhutbaModel) string { return m.KhutbaTitle }, "Title is required"),
		collection.MaxLen("khutba_title", 200, func(m model.KhutbaModel) string { return m.KhutbaTitle }, "Title must be less than 200 characters"),
		collection.Required("khutba_speaker", func(m model.KhutbaModel) string { return m.KhutbaSpeaker }, "Speaker is required"),
		collection.MinLen("khutba_summary", 10, func(m model.KhutbaModel) string { return m.KhutbaSummary }, "Summary must be at least 10 characters"),
		collection.OneOf("khutba_status", model.KhutbaStatuses, func(m model.KhutbaModel) string { return m.KhutbaStatus }, "Status is not in the allowed set"),
		collection.OneOf("khutba_language", model.KhutbaLanguages, func(m model.KhutbaModel) string { return m.KhutbaLanguage }, "Language is not in the allowed set"),
		{Field: "khutba_date", Check: func(m model.KhutbaModel) string {
			if m.KhutbaDate.IsZero() {
				return "Date is required"
			}
			return ""
		}},
	},
	Counters: []collection.Counter[model.KhutbaModel]{
		{Name: "published", Match: func(m model.KhutbaModel) bool { return m.KhutbaStatus == model.KhutbaStatusPublished }},
		{Name: "draft", Match: func(m model.KhutbaModel) bool { return m.KhutbaStatus == model.KhutbaStatusDraft }},
		{Name: "with_audio", Match: func(m model.KhutbaModel) bool { return m.KhutbaAudioURL != "" }},
	},
}
