package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var EventCategories = []string{"Kajian", "Tabligh Akbar", "Pengajian Rutin", "Santunan", "Pelatihan", "Ramadhan", "Other"}

type EventModel struct {
	EventID       uuid.UUID `gorm:"column:event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_id"`
	EventCenterID uuid.UUID `gorm:"column:event_center_id;type:uuid;not null;index:idx_events_center_id;uniqueIndex:uq_events_center_slug,priority:1" json:"event_center_id"`

	EventTitle string `gorm:"column:event_title;type:varchar(200);not null" json:"event_title"`
	// slug unik per center, dipakai permukaan publik
	EventSlug        string `gorm:"column:event_slug;type:varchar(120);not null;uniqueIndex:uq_events_center_slug,priority:2" json:"event_slug"`
	EventDescription string `gorm:"column:event_description;type:text" json:"event_description"`
	EventLocation    string `gorm:"column:event_location;type:varchar(200)" json:"event_location"`

	EventDate     time.Time `gorm:"column:event_date;type:timestamptz;not null" json:"event_date"`
	EventCategory string    `gorm:"column:event_category;type:varchar(50);default:'Kajian'" json:"event_category"`

	EventImageURL    string `gorm:"column:event_image_url;type:text" json:"event_image_url"`
	EventIsPublished bool   `gorm:"column:event_is_published;default:false" json:"event_is_published"`

	EventCreatedAt time.Time      `gorm:"column:event_created_at;type:timestamptz;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt time.Time      `gorm:"column:event_updated_at;type:timestamptz;autoUpdateTime" json:"event_updated_at"`
	EventDeletedAt gorm.DeletedAt `gorm:"column:event_deleted_at;type:timestamptz;index" json:"event_deleted_at,omitempty"`
}

func (EventModel) TableName() string {
	return "events"
}
