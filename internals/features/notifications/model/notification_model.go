package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	NotificationPriorityLow    = "Low"
	NotificationPriorityNormal = "Normal"
	NotificationPriorityHigh   = "High"
)

var (
	NotificationTypes      = []string{"Info", "Announcement", "Event", "Urgent"}
	NotificationPriorities = []string{NotificationPriorityLow, NotificationPriorityNormal, NotificationPriorityHigh}
)

type NotificationModel struct {
	NotificationID       uuid.UUID `gorm:"column:notification_id;type:uuid;default:gen_random_uuid();primaryKey" json:"notification_id"`
	NotificationCenterID uuid.UUID `gorm:"column:notification_center_id;type:uuid;not null;index:idx_notifications_center_id" json:"notification_center_id"`

	NotificationTitle       string `gorm:"column:notification_title;type:varchar(200);not null" json:"notification_title"`
	NotificationDescription string `gorm:"column:notification_description;type:text" json:"notification_description"`

	NotificationType     string `gorm:"column:notification_type;type:varchar(30);default:'Info'" json:"notification_type"`
	NotificationPriority string `gorm:"column:notification_priority;type:varchar(10);default:'Normal'" json:"notification_priority"`

	NotificationTags     pq.StringArray `gorm:"column:notification_tags;type:text[]" json:"notification_tags"`
	NotificationIsPublic bool           `gorm:"column:notification_is_public;default:false" json:"notification_is_public"`

	NotificationCreatedAt time.Time      `gorm:"column:notification_created_at;type:timestamptz;autoCreateTime" json:"notification_created_at"`
	NotificationUpdatedAt time.Time      `gorm:"column:notification_updated_at;type:timestamptz;autoUpdateTime" json:"notification_updated_at"`
	NotificationDeletedAt gorm.DeletedAt `gorm:"column:notification_deleted_at;type:timestamptz;index" json:"notification_deleted_at,omitempty"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
