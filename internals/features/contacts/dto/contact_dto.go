package dto

import (
	"annur_backend/internals/features/contacts/model"

	"github.com/google/uuid"
)

// ================== REQUEST ==================
type ContactRequest struct {
	ContactName     string `json:"contact_name"`
	ContactRole     string `json:"contact_role"`
	ContactEmail    string `json:"contact_email"`
	ContactPhone    string `json:"contact_phone"`
	ContactIsPublic *bool  `json:"contact_is_public"`
}

type ContactUpdateRequest struct {
	ContactName     *string `json:"contact_name"`
	ContactRole     *string `json:"contact_role"`
	ContactEmail    *string `json:"contact_email"`
	ContactPhone    *string `json:"contact_phone"`
	ContactIsPublic *bool   `json:"contact_is_public"`
}

func (r *ContactRequest) ApplyScalar(m *model.ContactModel) {
	m.ContactName = r.ContactName
	if r.ContactRole != "" {
		m.ContactRole = r.ContactRole
	}
	m.ContactEmail = r.ContactEmail
	m.ContactPhone = r.ContactPhone
	if r.ContactIsPublic != nil {
		m.ContactIsPublic = *r.ContactIsPublic
	}
}

func (r *ContactUpdateRequest) ApplyScalar(m *model.ContactModel) {
	if r.ContactName != nil {
		m.ContactName = *r.ContactName
	}
	if r.ContactRole != nil {
		m.ContactRole = *r.ContactRole
	}
	if r.ContactEmail != nil {
		m.ContactEmail = *r.ContactEmail
	}
	if r.ContactPhone != nil {
		m.ContactPhone = *r.ContactPhone
	}
	if r.ContactIsPublic != nil {
		m.ContactIsPublic = *r.ContactIsPublic
	}
}

// ================== RESPONSE ==================
type ContactResponse struct {
	ContactID        uuid.UUID `json:"contact_id"`
	ContactCenterID  uuid.UUID `json:"contact_center_id"`
	ContactName      string    `json:"contact_name"`
	ContactRole      string    `json:"contact_role"`
	ContactEmail     string    `json:"contact_email"`
	ContactPhone     string    `json:"contact_phone"`
	ContactIsPublic  bool      `json:"contact_is_public"`
	ContactCreatedAt string    `json:"contact_created_at"`
	ContactUpdatedAt string    `json:"contact_updated_at"`
}

func ToContactResponse(m *model.ContactModel) *ContactResponse {
	return &ContactResponse{
		ContactID:        m.ContactID,
		ContactCenterID:  m.ContactCenterID,
		ContactName:      m.ContactName,
		ContactRole:      m.ContactRole,
		ContactEmail:     m.ContactEmail,
		ContactPhone:     m.ContactPhone,
		ContactIsPublic:  m.ContactIsPublic,
		ContactCreatedAt: m.ContactCreatedAt.Format("2006-01-02 15:04:05"),
		ContactUpdatedAt: m.ContactUpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToContactResponseList(models []model.ContactModel) []ContactResponse {
	result := make([]ContactResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToContactResponse(&m))
	}
	return result
}
