package dto

import (
	"annur_backend/internals/features/notifications/model"

	"github.com/google/uuid"
)

// ================== REQUEST ==================
type NotificationRequest struct {
	NotificationTitle       string   `json:"notification_title"`
	NotificationDescription string   `json:"notification_description"`
	NotificationType        string   `json:"notification_type"`
	NotificationPriority    string   `json:"notification_priority"`
	NotificationTags        []string `json:"notification_tags"`
	NotificationIsPublic    bool     `json:"notification_is_public"`
}

type NotificationUpdateRequest struct {
	NotificationTitle       *string   `json:"notification_title"`
	NotificationDescription *string   `json:"notification_description"`
	NotificationType        *string   `json:"notification_type"`
	NotificationPriority    *string   `json:"notification_priority"`
	NotificationTags        *[]string `json:"notification_tags"`
	NotificationIsPublic    *bool     `json:"notification_is_public"`
}

func (r *NotificationRequest) ApplyScalar(m *model.NotificationModel) {
	m.NotificationTitle = r.NotificationTitle
	m.NotificationDescription = r.NotificationDescription
	if r.NotificationType != "" {
		m.NotificationType = r.NotificationType
	}
	if r.NotificationPriority != "" {
		m.NotificationPriority = r.NotificationPriority
	}
	m.NotificationIsPublic = r.NotificationIsPublic
}

func (r *NotificationUpdateRequest) ApplyScalar(m *model.NotificationModel) {
	if r.NotificationTitle != nil {
		m.NotificationTitle = *r.NotificationTitle
	}
	if r.NotificationDescription != nil {
		m.NotificationDescription = *r.NotificationDescription
	}
	if r.NotificationType != nil {
		m.NotificationType = *r.NotificationType
	}
	if r.NotificationPriority != nil {
		m.NotificationPriority = *r.NotificationPriority
	}
	if r.NotificationIsPublic != nil {
		m.NotificationIsPublic = *r.NotificationIsPublic
	}
}

// ================== RESPONSE ==================
type NotificationResponse struct {
	NotificationID          uuid.UUID `json:"notification_id"`
	NotificationCenterID    uuid.UUID `json:"notification_center_id"`
	NotificationTitle       string    `json:"notification_title"`
	NotificationDescription string    `json:"notification_description"`
	NotificationType        string    `json:"notification_type"`
	NotificationPriority    string    `json:"notification_priority"`
	NotificationTags        []string  `json:"notification_tags"`
	NotificationIsPublic    bool      `json:"notification_is_public"`
	NotificationCreatedAt   string    `json:"notification_created_at"`
	NotificationUpdatedAt   string    `json:"notification_updated_at"`
}

func ToNotificationResponse(m *model.NotificationModel) *NotificationResponse {
	return &NotificationResponse{
		NotificationID:          m.NotificationID,
		NotificationCenterID:    m.NotificationCenterID,
		NotificationTitle:       m.NotificationTitle,
		NotificationDescription: m.NotificationDescription,
		NotificationType:        m.NotificationType,
		NotificationPriority:    m.NotificationPriority,
		NotificationTags:        m.NotificationTags,
		NotificationIsPublic:    m.NotificationIsPublic,
		NotificationCreatedAt:   m.NotificationCreatedAt.Format("2006-01-02 15:04:05"),
		NotificationUpdatedAt:   m.NotificationUpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToNotificationResponseList(models []model.NotificationModel) []NotificationResponse {
	result := make([]NotificationResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToNotificationResponse(&m))
	}
	return result
}
