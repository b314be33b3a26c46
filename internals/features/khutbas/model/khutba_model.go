package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	KhutbaStatusDraft     = "Draft"
	KhutbaStatusPublished = "Published"
)

var (
	KhutbaStatuses  = []string{KhutbaStatusDraft, KhutbaStatusPublished}
	KhutbaLanguages = []string{"Arabic", "English", "Indonesian"}
)

type KhutbaModel struct {
	KhutbaID       uuid.UUID `gorm:"column:khutba_id;type:uuid;default:gen_random_uuid();primaryKey" json:"khutba_id"`
	KhutbaCenterID uuid.UUID `gorm:"column:khutba_center_id;type:uuid;not null;index:idx_khutbas_center_id" json:"khutba_center_id"`

	KhutbaTitle   string `gorm:"column:khutba_title;type:varchar(200);not null" json:"khutba_title"`
	KhutbaSpeaker string `gorm:"column:khutba_speaker;type:varchar(100)" json:"khutba_speaker"`
	KhutbaSummary string `gorm:"column:khutba_summary;type:text" json:"khutba_summary"`

	// khutbah Jumat — tanggal disimpan per hari, jam tidak relevan
	KhutbaDate time.Time `gorm:"column:khutba_date;type:date;not null" json:"khutba_date"`

	KhutbaLanguage string `gorm:"column:khutba_language;type:varchar(20);default:'Indonesian'" json:"khutba_language"`
	KhutbaStatus   string `gorm:"column:khutba_status;type:varchar(20);default:'Draft'" json:"khutba_status"`

	KhutbaAudioURL string `gorm:"column:khutba_audio_url;type:text" json:"khutba_audio_url"`
	KhutbaVideoURL string `gorm:"column:khutba_video_url;type:text" json:"khutba_video_url"`

	KhutbaTags pq.StringArray `gorm:"column:khutba_tags;type:text[]" json:"khutba_tags"`

	KhutbaCreatedAt time.Time      `gorm:"column:khutba_created_at;type:timestamptz;autoCreateTime" json:"khutba_created_at"`
	KhutbaUpdatedAt time.Time      `gorm:"column:khutba_updated_at;type:timestamptz;autoUpdateTime" json:"khutba_updated_at"`
	KhutbaDeletedAt gorm.DeletedAt `gorm:"column:khutba_deleted_at;type:timestamptz;index" json:"khutba_deleted_at,omitempty"`
}

func (KhutbaModel) TableName() string {
	return "khutbas"
}
