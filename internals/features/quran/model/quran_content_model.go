package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	QuranStatusDraft     = "Draft"
	QuranStatusPublished = "Published"
)

var QuranStatuses = []string{QuranStatusDraft, QuranStatusPublished}

// Satu record = satu ayat beserta terjemahan dan cuplikan tafsirnya.
type QuranContentModel struct {
	QuranContentID       uuid.UUID `gorm:"column:quran_content_id;type:uuid;default:gen_random_uuid();primaryKey" json:"quran_content_id"`
	QuranContentCenterID uuid.UUID `gorm:"column:quran_content_center_id;type:uuid;not null;index:idx_quran_contents_center_id" json:"quran_content_center_id"`

	QuranContentSurahName   string `gorm:"column:quran_content_surah_name;type:varchar(100);not null" json:"quran_content_surah_name"`
	QuranContentSurahNumber int    `gorm:"column:quran_content_surah_number;type:smallint;not null" json:"quran_content_surah_number"`
	QuranContentAyahNumber  int    `gorm:"column:quran_content_ayah_number;type:smallint;not null" json:"quran_content_ayah_number"`

	QuranContentArabicText  string `gorm:"column:quran_content_arabic_text;type:text;not null" json:"quran_content_arabic_text"`
	QuranContentTranslation string `gorm:"column:quran_content_translation;type:text" json:"quran_content_translation"`
	QuranContentTafsir      string `gorm:"column:quran_content_tafsir;type:text" json:"quran_content_tafsir"`

	QuranContentStatus string         `gorm:"column:quran_content_status;type:varchar(20);default:'Draft'" json:"quran_content_status"`
	QuranContentThemes pq.StringArray `gorm:"column:quran_content_themes;type:text[]" json:"quran_content_themes"`

	QuranContentCreatedAt time.Time      `gorm:"column:quran_content_created_at;type:timestamptz;autoCreateTime" json:"quran_content_created_at"`
	QuranContentUpdatedAt time.Time      `gorm:"column:quran_content_updated_at;type:timestamptz;autoUpdateTime" json:"quran_content_updated_at"`
	QuranContentDeletedAt gorm.DeletedAt `gorm:"column:quran_content_deleted_at;type:timestamptz;index" json:"quran_content_deleted_at,omitempty"`
}

func (QuranContentModel) TableName() string {
	return "quran_contents"
}
