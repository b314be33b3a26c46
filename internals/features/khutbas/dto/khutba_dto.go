package dto

import (
	"time"

	"annur_backend/internals/features/khutbas/model"

	"github.com/google/uuid"
)

// ================== REQUEST ==================
type KhutbaRequest struct {
	KhutbaTitle    string   `json:"khutba_title"`
	KhutbaSpeaker  string   `json:"khutba_speaker"`
	KhutbaSummary  string   `json:"khutba_summary"`
	KhutbaDate     string   `json:"khutba_date"` // "2006-01-02"
	KhutbaLanguage string   `json:"khutba_language"`
	KhutbaStatus   string   `json:"khutba_status"`
	KhutbaAudioURL string   `json:"khutba_audio_url"`
	KhutbaVideoURL string   `json:"khutba_video_url"`
	KhutbaTags     []string `json:"khutba_tags"`
}

type KhutbaUpdateRequest struct {
	KhutbaTitle    *string   `json:"khutba_title"`
	KhutbaSpeaker  *string   `json:"khutba_speaker"`
	KhutbaSummary  *string   `json:"khutba_summary"`
	KhutbaDate     *string   `json:"khutba_date"`
	KhutbaLanguage *string   `json:"khutba_language"`
	KhutbaStatus   *string   `json:"khutba_status"`
	KhutbaAudioURL *string   `json:"khutba_audio_url"`
	KhutbaVideoURL *string   `json:"khutba_video_url"`
	KhutbaTags     *[]string `json:"khutba_tags"`
}

func (r *KhutbaRequest) ApplyScalar(m *model.KhutbaModel) {
	m.KhutbaTitle = r.KhutbaTitle
	m.KhutbaSpeaker = r.KhutbaSpeaker
	m.KhutbaSummary = r.KhutbaSummary
	if t, err := time.Parse("2006-01-02", r.KhutbaDate); err == nil {
		m.KhutbaDate = t
	}
	if r.KhutbaLanguage != "" {
		m.KhutbaLanguage = r.KhutbaLanguage
	}
	if r.KhutbaStatus != "" {
		m.KhutbaStatus = r.KhutbaStatus
	}
	m.KhutbaAudioURL = r.KhutbaAudioURL
	m.KhutbaVideoURL = r.KhutbaVideoURL
}

func (r *KhutbaUpdateRequest) ApplyScalar(m *model.KhutbaModel) {
	if r.KhutbaTitle != nil {
		m.KhutbaTitle = *r.KhutbaTitle
	}
	if r.KhutbaSpeaker != nil {
		m.KhutbaSpeaker = *r.KhutbaSpeaker
	}
	if r.KhutbaSummary != nil {
		m.KhutbaSummary = *r.KhutbaSummary
	}
	if r.KhutbaDate != nil {
		if t, err := time.Parse("2006-01-02", *r.KhutbaDate); err == nil {
			m.KhutbaDate = t
		}
	}
	if r.KhutbaLanguage != nil {
		m.KhutbaLanguage = *r.KhutbaLanguage
	}
	if r.KhutbaStatus != nil {
		m.KhutbaStatus = *r.KhutbaStatus
	}
	if r.KhutbaAudioURL != nil {
		m.KhutbaAudioURL = *r.KhutbaAudioURL
	}
	if r.KhutbaVideoURL != nil {
		m.KhutbaVideoURL = *r.KhutbaVideoURL
	}
}

// ================== RESPONSE ==================
type KhutbaResponse struct {
	KhutbaID       uuid.UUID `json:"khutba_id"`
	KhutbaCenterID uuid.UUID `json:"khutba_center_id"`
	KhutbaTitle    string    `json:"khutba_title"`
	KhutbaSpeaker  string    `json:"khutba_speaker"`
	KhutbaSummary  string    `json:"khutba_summary"`
	KhutbaDate     string    `json:"khutba_date"`
	KhutbaLanguage string    `json:"khutba_language"`
	KhutbaStatus   string    `json:"khutba_status"`
	KhutbaAudioURL string    `json:"khutba_audio_url"`
	KhutbaVideoURL string    `json:"khutba_video_url"`
	KhutbaTags     []string  `json:"khutba_tags"`
	KhutbaCreatedAt string   `json:"khutba_created_at"`
	KhutbaUpdatedAt string   `json:"khutba_updated_at"`
}

func ToKhutbaResponse(m *model.KhutbaModel) *KhutbaResponse {
	return &KhutbaResponse{
		KhutbaID:        m.KhutbaID,
		KhutbaCenterID:  m.KhutbaCenterID,
		KhutbaTitle:     m.KhutbaTitle,
		KhutbaSpeaker:   m.KhutbaSpeaker,
		KhutbaSummary:   m.KhutbaSummary,
		KhutbaDate:      m.KhutbaDate.Format("2006-01-02"),
		KhutbaLanguage:  m.KhutbaLanguage,
		KhutbaStatus:    m.KhutbaStatus,
		KhutbaAudioURL:  m.KhutbaAudioURL,
		KhutbaVideoURL:  m.KhutbaVideoURL,
		KhutbaTags:      m.KhutbaTags,
		KhutbaCreatedAt: m.KhutbaCreatedAt.Format("2006-01-02 15:04:05"),
		KhutbaUpdatedAt: m.KhutbaUpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToKhutbaResponseList(models []model.KhutbaModel) []KhutbaResponse {
	result := make([]KhutbaResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToKhutbaResponse(&m))
	}
	return result
}
