package dto

import (
	"time"

	"annur_backend/internals/features/events/model"

	"github.com/google/uuid"
)

// ================== REQUEST ==================
type EventRequest struct {
	EventTitle       string `json:"event_title" validate:"required,max=200"`
	EventDescription string `json:"event_description" validate:"required,min=10"`
	EventLocation    string `json:"event_location" validate:"max=200"`
	EventDate        string `json:"event_date" validate:"required"` // "2006-01-02" atau RFC3339
	EventCategory    string `json:"event_category"`
	EventIsPublished bool   `json:"event_is_published"`
}

type EventUpdateRequest struct {
	EventTitle       *string `json:"event_title" validate:"omitempty,max=200"`
	EventDescription *string `json:"event_description" validate:"omitempty,min=10"`
	EventLocation    *string `json:"event_location" validate:"omitempty,max=200"`
	EventDate        *string `json:"event_date"`
	EventCategory    *string `json:"event_category"`
	EventIsPublished *bool   `json:"event_is_published"`
}

// ParseDate menerima tanggal saja atau timestamp penuh.
func ParseDate(s string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func (r *EventRequest) ToModel(centerID uuid.UUID) *model.EventModel {
	m := &model.EventModel{
		EventCenterID:    centerID,
		EventTitle:       r.EventTitle,
		EventDescription: r.EventDescription,
		EventLocation:    r.EventLocation,
		EventCategory:    r.EventCategory,
		EventIsPublished: r.EventIsPublished,
	}
	if m.EventCategory == "" {
		m.EventCategory = "Kajian"
	}
	if t, ok := ParseDate(r.EventDate); ok {
		m.EventDate = t
	}
	return m
}

func (r *EventUpdateRequest) Apply(m *model.EventModel) {
	if r.EventTitle != nil {
		m.EventTitle = *r.EventTitle
	}
	if r.EventDescription != nil {
		m.EventDescription = *r.EventDescription
	}
	if r.EventLocation != nil {
		m.EventLocation = *r.EventLocation
	}
	if r.EventDate != nil {
		if t, ok := ParseDate(*r.EventDate); ok {
			m.EventDate = t
		}
	}
	if r.EventCategory != nil {
		m.EventCategory = *r.EventCategory
	}
	if r.EventIsPublished != nil {
		m.EventIsPublished = *r.EventIsPublished
	}
}

// ================== RESPONSE ==================
type EventResponse struct {
	EventID          uuid.UUID `json:"event_id"`
	EventCenterID    uuid.UUID `json:"event_center_id"`
	EventTitle       string    `json:"event_title"`
	EventSlug        string    `json:"event_slug"`
	EventDescription string    `json:"event_description"`
	EventLocation    string    `json:"event_location"`
	EventDate        string    `json:"event_date"`
	EventCategory    string    `json:"event_category"`
	EventImageURL    string    `json:"event_image_url"`
	EventIsPublished bool      `json:"event_is_published"`
	EventCreatedAt   string    `json:"event_created_at"`
	EventUpdatedAt   string    `json:"event_updated_at"`
}

func ToEventResponse(m *model.EventModel) *EventResponse {
	return &EventResponse{
		EventID:          m.EventID,
		EventCenterID:    m.EventCenterID,
		EventTitle:       m.EventTitle,
		EventSlug:        m.EventSlug,
		EventDescription: m.EventDescription,
		EventLocation:    m.EventLocation,
		EventDate:        m.EventDate.Format(time.RFC3339),
		EventCategory:    m.EventCategory,
		EventImageURL:    m.EventImageURL,
		EventIsPublished: m.EventIsPublished,
		EventCreatedAt:   m.EventCreatedAt.Format("2006-01-02 15:04:05"),
		EventUpdatedAt:   m.EventUpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToEventResponseList(models []model.EventModel) []EventResponse {
	result := make([]EventResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToEventResponse(&m))
	}
	return result
}
