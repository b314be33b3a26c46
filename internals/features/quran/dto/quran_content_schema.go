package dto

import (
	"annur_backend/internals/collection"
	"annur_backend/internals/features/quran/model"

	"github.com/google/uuid"
)

var QuranContentSchema = collection.Schema[model.QuranContentModel]{
	Name: "quran_content",
	GetID: func(m model.QuranContentModel) string {
		if m.QuranContentID == uuid.Nil {
			return ""
		}
		return m.QuranContentID.String()
	},
	SetID: func(m *model.QuranContentModel, id string) {
		if u, err := uuid.Parse(id); err == nil {
			m.QuranContentID = u
		}
	},
	SearchText: func(m model.QuranContentModel) []string {
		return []string{m.QuranContentSurahName, m.QuranContentTranslation, m.QuranContentTafsir}
	},
	Filters: map[string]func(model.QuranContentModel) string{
		"status": func(m model.QuranContentModel) string { return m.QuranContentStatus },
		"surah":  func(m model.QuranContentModel) string { return m.QuranContentSurahName },
	},
	Defaults: func() model.QuranContentModel {
		return model.QuranContentModel{
			QuranContentStatus: model.QuranStatusDraft,
		}
	},
	SeedLists: func(m model.QuranContentModel) map[string][]string {
		return map[string][]string{"themes": m.QuranContentThemes}
	},
	CommitLists: func(m *model.QuranContentModel, lists map[string][]string) {
		m.QuranContentThemes = append([]string(nil), lists["themes"]...)
	},
	Rules: []collection.Rule[model.QuranContentModel]{
		collection.Required("quran_content_surah_name", func(m model.QuranContentModel) string { return m.QuranContentSurahName }, "Surah name is required"),
		collection.IntRange("quran_content_surah_number", 1, 114, func(m model.QuranContentModel) int { return m.QuranContentSurahNumber }, "Surah number must be between 1 and 114"),
		collection.Positive("quran_content_ayah_number", func(m model.QuranContentModel) int { return m.QuranContentAyahNumber }, "Ayah number must be greater than 0"),
		collection.Required("quran_content_arabic_text", func(m model.QuranContentModel) string { return m.QuranContentArabicText }, "Arabic text is required"),
		collection.MinLen("quran_content_translation", 10, func(m model.QuranContentModel) string { return m.QuranContentTranslation }, "Translation must be at least 10 characters"),
		collection.OneOf("quran_content_status", model.QuranStatuses, func(m model.QuranContentModel) string { return m.QuranContentStatus }, "Status is not in the allowed set"),
	},
	Counters: []collection.Counter[model.QuranContentModel]{
		{Name: "published", Match: func(m model.QuranContentModel) bool { return m.QuranContentStatus == model.QuranStatusPublished }},
		{Name: "draft", Match: func(m model.QuranContentModel) bool { return m.QuranContentStatus == model.QuranStatusDraft }},
		{Name: "with_tafsir", Match: func(m model.QuranContentModel) bool { return m.QuranContentTafsir != "" }},
	},
}
