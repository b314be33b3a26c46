package dto

import (
	"annur_backend/internals/features/donations/campaigns/model"

	"github.com/google/uuid"
)

// ================== REQUEST ==================
type CampaignRequest struct {
	CampaignTitle       string `json:"campaign_title"`
	CampaignDescription string `json:"campaign_description"`
	CampaignGoalAmount  int64  `json:"campaign_goal_amount"`
	CampaignStatus      string `json:"campaign_status"`
	CampaignIsFeatured  bool   `json:"campaign_is_featured"`
}

type CampaignUpdateRequest struct {
	CampaignTitle       *string `json:"campaign_title"`
	CampaignDescription *string `json:"campaign_description"`
	CampaignGoalAmount  *int64  `json:"campaign_goal_amount"`
	CampaignStatus      *string `json:"campaign_status"`
	CampaignIsFeatured  *bool   `json:"campaign_is_featured"`
}

func (r *CampaignRequest) ApplyScalar(m *model.CampaignModel) {
	m.CampaignTitle = r.CampaignTitle
	m.CampaignDescription = r.CampaignDescription
	m.CampaignGoalAmount = r.CampaignGoalAmount
	if r.CampaignStatus != "" {
		m.CampaignStatus = r.CampaignStatus
	}
	m.CampaignIsFeatured = r.CampaignIsFeatured
}

func (r *CampaignUpdateRequest) ApplyScalar(m *model.CampaignModel) {
	if r.CampaignTitle != nil {
		m.CampaignTitle = *r.CampaignTitle
	}
	if r.CampaignDescription != nil {
		m.CampaignDescription = *r.CampaignDescription
	}
	if r.CampaignGoalAmount != nil {
		m.CampaignGoalAmount = *r.CampaignGoalAmount
	}
	if r.CampaignStatus != nil {
		m.CampaignStatus = *r.CampaignStatus
	}
	if r.CampaignIsFeatured != nil {
		m.CampaignIsFeatured = *r.CampaignIsFeatured
	}
}

// ================== RESPONSE ==================
type CampaignResponse struct {
	CampaignID           uuid.UUID `json:"campaign_id"`
	CampaignCenterID     uuid.UUID `json:"campaign_center_id"`
	CampaignTitle        string    `json:"campaign_title"`
	CampaignDescription  string    `json:"campaign_description"`
	CampaignGoalAmount   int64     `json:"campaign_goal_amount"`
	CampaignRaisedAmount int64     `json:"campaign_raised_amount"`
	CampaignProgress     int       `json:"campaign_progress"` // persen, 0..100+
	CampaignStatus       string    `json:"campaign_status"`
	CampaignIsFeatured   bool      `json:"campaign_is_featured"`
	CampaignImageURL     string    `json:"campaign_image_url"`
	CampaignCreatedAt    string    `json:"campaign_created_at"`
	CampaignUpdatedAt    string    `json:"campaign_updated_at"`
}

func ToCampaignResponse(m *model.CampaignModel) *CampaignResponse {
	progress := 0
	if m.CampaignGoalAmount > 0 {
		progress = int(m.CampaignRaisedAmount * 100 / m.CampaignGoalAmount)
	}
	return &CampaignResponse{
		CampaignID:           m.CampaignID,
		CampaignCenterID:     m.CampaignCenterID,
		CampaignTitle:        m.CampaignTitle,
		CampaignDescription:  m.CampaignDescription,
		CampaignGoalAmount:   m.CampaignGoalAmount,
		CampaignRaisedAmount: m.CampaignRaisedAmount,
		CampaignProgress:     progress,
		CampaignStatus:       m.CampaignStatus,
		CampaignIsFeatured:   m.CampaignIsFeatured,
		CampaignImageURL:     m.CampaignImageURL,
		CampaignCreatedAt:    m.CampaignCreatedAt.Format("2006-01-02 15:04:05"),
		CampaignUpdatedAt:    m.CampaignUpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToCampaignResponseList(models []model.CampaignModel) []CampaignResponse {
	result := make([]CampaignResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToCampaignResponse(&m))
	}
	return result
}
