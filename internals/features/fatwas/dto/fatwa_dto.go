package dto

import (
	"annur_backend/internals/features/fatwas/model"

	"github.com/google/uuid"
)

// ================== REQUEST ==================
type FatwaRequest struct {
	FatwaTitle      string   `json:"fatwa_title"`
	FatwaQuestion   string   `json:"fatwa_question"`
	FatwaAnswer     string   `json:"fatwa_answer"`
	FatwaScholar    string   `json:"fatwa_scholar"`
	FatwaCategory   string   `json:"fatwa_category"`
	FatwaLanguage   string   `json:"fatwa_language"`
	FatwaStatus     string   `json:"fatwa_status"`
	FatwaReferences []string `json:"fatwa_references"`
	FatwaTags       []string `json:"fatwa_tags"`
	FatwaIsPublic   bool     `json:"fatwa_is_public"`
}

type FatwaUpdateRequest struct {
	FatwaTitle      *string   `json:"fatwa_title"`
	FatwaQuestion   *string   `json:"fatwa_question"`
	FatwaAnswer     *string   `json:"fatwa_answer"`
	FatwaScholar    *string   `json:"fatwa_scholar"`
	FatwaCategory   *string   `json:"fatwa_category"`
	FatwaLanguage   *string   `json:"fatwa_language"`
	FatwaStatus     *string   `json:"fatwa_status"`
	FatwaReferences *[]string `json:"fatwa_references"`
	FatwaTags       *[]string `json:"fatwa_tags"`
	FatwaIsPublic   *bool     `json:"fatwa_is_public"`
}

// ApplyScalar menimpa field skalar buffer edit (transient list diurus form session).
func (r *FatwaRequest) ApplyScalar(m *model.FatwaModel) {
	m.FatwaTitle = r.FatwaTitle
	m.FatwaQuestion = r.FatwaQuestion
	m.FatwaAnswer = r.FatwaAnswer
	m.FatwaScholar = r.FatwaScholar
	if r.FatwaCategory != "" {
		m.FatwaCategory = r.FatwaCategory
	}
	if r.FatwaLanguage != "" {
		m.FatwaLanguage = r.FatwaLanguage
	}
	if r.FatwaStatus != "" {
		m.FatwaStatus = r.FatwaStatus
	}
	m.FatwaIsPublic = r.FatwaIsPublic
}

func (r *FatwaUpdateRequest) ApplyScalar(m *model.FatwaModel) {
	if r.FatwaTitle != nil {
		m.FatwaTitle = *r.FatwaTitle
	}
	if r.FatwaQuestion != nil {
		m.FatwaQuestion = *r.FatwaQuestion
	}
	if r.FatwaAnswer != nil {
		m.FatwaAnswer = *r.FatwaAnswer
	}
	if r.FatwaScholar != nil {
		m.FatwaScholar = *r.FatwaScholar
	}
	if r.FatwaCategory != nil {
		m.FatwaCategory = *r.FatwaCategory
	}
	if r.FatwaLanguage != nil {
		m.FatwaLanguage = *r.FatwaLanguage
	}
	if r.FatwaStatus != nil {
		m.FatwaStatus = *r.FatwaStatus
	}
	if r.FatwaIsPublic != nil {
		m.FatwaIsPublic = *r.FatwaIsPublic
	}
}

// ================== RESPONSE ==================
type FatwaResponse struct {
	FatwaID         uuid.UUID `json:"fatwa_id"`
	FatwaCenterID   uuid.UUID `json:"fatwa_center_id"`
	FatwaTitle      string    `json:"fatwa_title"`
	FatwaQuestion   string    `json:"fatwa_question"`
	FatwaAnswer     string    `json:"fatwa_answer"`
	FatwaScholar    string    `json:"fatwa_scholar"`
	FatwaCategory   string    `json:"fatwa_category"`
	FatwaLanguage   string    `json:"fatwa_language"`
	FatwaStatus     string    `json:"fatwa_status"`
	FatwaReferences []string  `json:"fatwa_references"`
	FatwaTags       []string  `json:"fatwa_tags"`
	FatwaIsPublic   bool      `json:"fatwa_is_public"`
	FatwaCreatedAt  string    `json:"fatwa_created_at"`
	FatwaUpdatedAt  string    `json:"fatwa_updated_at"`
}

func ToFatwaResponse(m *model.FatwaModel) *FatwaResponse {
	return &FatwaResponse{
		FatwaID:         m.FatwaID,
		FatwaCenterID:   m.FatwaCenterID,
		FatwaTitle:      m.FatwaTitle,
		FatwaQuestion:   m.FatwaQuestion,
		FatwaAnswer:     m.FatwaAnswer,
		FatwaScholar:    m.FatwaScholar,
		FatwaCategory:   m.FatwaCategory,
		FatwaLanguage:   m.FatwaLanguage,
		FatwaStatus:     m.FatwaStatus,
		FatwaReferences: m.FatwaReferences,
		FatwaTags:       m.FatwaTags,
		FatwaIsPublic:   m.FatwaIsPublic,
		FatwaCreatedAt:  m.FatwaCreatedAt.Format("2006-01-02 15:04:05"),
		FatwaUpdatedAt:  m.FatwaUpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToFatwaResponseList(models []model.FatwaModel) []FatwaResponse {
	result := make([]FatwaResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToFatwaResponse(&m))
	}
	return result
}
