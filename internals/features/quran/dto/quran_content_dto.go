package dto

import (
	"annur_backend/internals/features/quran/model"

	"github.com/google/uuid"
)

// ================== REQUEST ==================
type QuranContentRequest struct {
	QuranContentSurahName   string   `json:"quran_content_surah_name"`
	QuranContentSurahNumber int      `json:"quran_content_surah_number"`
	QuranContentAyahNumber  int      `json:"quran_content_ayah_number"`
	QuranContentArabicText  string   `json:"quran_content_arabic_text"`
	QuranContentTranslation string   `json:"quran_content_translation"`
	QuranContentTafsir      string   `json:"quran_content_tafsir"`
	QuranContentStatus      string   `json:"quran_content_status"`
	QuranContentThemes      []string `json:"quran_content_themes"`
}

type QuranContentUpdateRequest struct {
	QuranContentSurahName   *string   `json:"quran_content_surah_name"`
	QuranContentSurahNumber *int      `json:"quran_content_surah_number"`
	QuranContentAyahNumber  *int      `json:"quran_content_ayah_number"`
	QuranContentArabicText  *string   `json:"quran_content_arabic_text"`
	QuranContentTranslation *string   `json:"quran_content_translation"`
	QuranContentTafsir      *string   `json:"quran_content_tafsir"`
	QuranContentStatus      *string   `json:"quran_content_status"`
	QuranContentThemes      *[]string `json:"quran_content_themes"`
}

func (r *QuranContentRequest) ApplyScalar(m *model.QuranContentModel) {
	m.QuranContentSurahName = r.QuranContentSurahName
	m.QuranContentSurahNumber = r.QuranContentSurahNumber
	m.QuranContentAyahNumber = r.QuranContentAyahNumber
	m.QuranContentArabicText = r.QuranContentArabicText
	m.QuranContentTranslation = r.QuranContentTranslation
	m.QuranContentTafsir = r.QuranContentTafsir
	if r.QuranContentStatus != "" {
		m.QuranContentStatus = r.QuranContentStatus
	}
}

func (r *QuranContentUpdateRequest) ApplyScalar(m *model.QuranContentModel) {
	if r.QuranContentSurahName != nil {
		m.QuranContentSurahName = *r.QuranContentSurahName
	}
	if r.QuranContentSurahNumber != nil {
		m.QuranContentSurahNumber = *r.QuranContentSurahNumber
	}
	if r.QuranContentAyahNumber != nil {
		m.QuranContentAyahNumber = *r.QuranContentAyahNumber
	}
	if r.QuranContentArabicText != nil {
		m.QuranContentArabicText = *r.QuranContentArabicText
	}
	if r.QuranContentTranslation != nil {
		m.QuranContentTranslation = *r.QuranContentTranslation
	}
	if r.QuranContentTafsir != nil {
		m.QuranContentTafsir = *r.QuranContentTafsir
	}
	if r.QuranContentStatus != nil {
		m.QuranContentStatus = *r.QuranContentStatus
	}
}

// ================== RESPONSE ==================
type QuranContentResponse struct {
	QuranContentID          uuid.UUID `json:"quran_content_id"`
	QuranContentCenterID    uuid.UUID `json:"quran_content_center_id"`
	QuranContentSurahName   string    `json:"quran_content_surah_name"`
	QuranContentSurahNumber int       `json:"quran_content_surah_number"`
	QuranContentAyahNumber  int       `json:"quran_content_ayah_number"`
	QuranContentArabicText  string    `json:"quran_content_arabic_text"`
	QuranContentTranslation string    `json:"quran_content_translation"`
	QuranContentTafsir      string    `json:"quran_content_tafsir"`
	QuranContentStatus      string    `json:"quran_content_status"`
	QuranContentThemes      []string  `json:"quran_content_themes"`
	QuranContentCreatedAt   string    `json:"quran_content_created_at"`
	QuranContentUpdatedAt   string    `json:"quran_content_updated_at"`
}

func ToQuranContentResponse(m *model.QuranContentModel) *QuranContentResponse {
	return &QuranContentResponse{
		QuranContentID:          m.QuranContentID,
		QuranContentCenterID:    m.QuranContentCenterID,
		QuranContentSurahName:   m.QuranContentSurahName,
		QuranContentSurahNumber: m.QuranContentSurahNumber,
		QuranContentAyahNumber:  m.QuranContentAyahNumber,
		QuranContentArabicText:  m.QuranContentArabicText,
		QuranContentTranslation: m.QuranContentTranslation,
		QuranContentTafsir:      m.QuranContentTafsir,
		QuranContentStatus:      m.QuranContentStatus,
		QuranContentThemes:      m.QuranContentThemes,
		QuranContentCreatedAt:   m.QuranContentCreatedAt.Format("2006-01-02 15:04:05"),
		QuranContentUpdatedAt:   m.QuranContentUpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToQuranContentResponseList(models []model.QuranContentModel) []QuranContentResponse {
	result := make([]QuranContentResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToQuranContentResponse(&m))
	}
	return result
}
