package dto

import (
	"annur_backend/internals/features/centers/model"

	"github.com/google/uuid"
)

// ================== REQUEST ==================
type CenterRequest struct {
	CenterName        string `json:"center_name" validate:"required,max=150"`
	CenterDescription string `json:"center_description"`
	CenterAddress     string `json:"center_address" validate:"max=255"`
	CenterCity        string `json:"center_city" validate:"max=100"`
	CenterPhone       string `json:"center_phone" validate:"max=30"`
	CenterEmail       string `json:"center_email" validate:"omitempty,email"`
}

type CenterUpdateRequest struct {
	CenterName        *string `json:"center_name" validate:"omitempty,max=150"`
	CenterDescription *string `json:"center_description"`
	CenterAddress     *string `json:"center_address" validate:"omitempty,max=255"`
	CenterCity        *string `json:"center_city" validate:"omitempty,max=100"`
	CenterPhone       *string `json:"center_phone" validate:"omitempty,max=30"`
	CenterEmail       *string `json:"center_email" validate:"omitempty,email"`
}

func (r *CenterUpdateRequest) Apply(m *model.CenterModel) {
	if r.CenterName != nil {
		m.CenterName = *r.CenterName
	}
	if r.CenterDescription != nil {
		m.CenterDescription = *r.CenterDescription
	}
	if r.CenterAddress != nil {
		m.CenterAddress = *r.CenterAddress
	}
	if r.CenterCity != nil {
		m.CenterCity = *r.CenterCity
	}
	if r.CenterPhone != nil {
		m.CenterPhone = *r.CenterPhone
	}
	if r.CenterEmail != nil {
		m.CenterEmail = *r.CenterEmail
	}
}

// ================== RESPONSE ==================
type CenterResponse struct {
	CenterID          uuid.UUID `json:"center_id"`
	CenterName        string    `json:"center_name"`
	CenterSlug        string    `json:"center_slug"`
	CenterDescription string    `json:"center_description"`
	CenterAddress     string    `json:"center_address"`
	CenterCity        string    `json:"center_city"`
	CenterPhone       string    `json:"center_phone"`
	CenterEmail       string    `json:"center_email"`
	CenterLogoURL     string    `json:"center_logo_url"`
	CenterIsVerified  bool      `json:"center_is_verified"`
	CenterCreatedAt   string    `json:"center_created_at"`
}

func ToCenterResponse(m *model.CenterModel) *CenterResponse {
	return &CenterResponse{
		CenterID:          m.CenterID,
		CenterName:        m.CenterName,
		CenterSlug:        m.CenterSlug,
		CenterDescription: m.CenterDescription,
		CenterAddress:     m.CenterAddress,
		CenterCity:        m.CenterCity,
		CenterPhone:       m.CenterPhone,
		CenterEmail:       m.CenterEmail,
		CenterLogoURL:     m.CenterLogoURL,
		CenterIsVerified:  m.CenterIsVerified,
		CenterCreatedAt:   m.CenterCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToCenterResponseList(models []model.CenterModel) []CenterResponse {
	result := make([]CenterResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToCenterResponse(&m))
	}
	return result
}
