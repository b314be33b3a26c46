package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Closed set status/kategori/bahasa — filter UI dan record memakai set yang sama.
const (
	FatwaStatusPending  = "Pending"
	FatwaStatusApproved = "Approved"
	FatwaStatusRejected = "Rejected"
)

var (
	FatwaStatuses   = []string{FatwaStatusPending, FatwaStatusApproved, FatwaStatusRejected}
	FatwaCategories = []string{"Aqeedah", "Fiqh", "Worship", "Family", "Finance", "Other"}
	FatwaLanguages  = []string{"Arabic", "English", "Indonesian"}
)

type FatwaModel struct {
	FatwaID       uuid.UUID `gorm:"column:fatwa_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fatwa_id"`
	FatwaCenterID uuid.UUID `gorm:"column:fatwa_center_id;type:uuid;not null;index:idx_fatwas_center_id" json:"fatwa_center_id"`

	FatwaTitle    string `gorm:"column:fatwa_title;type:varchar(200);not null" json:"fatwa_title"`
	FatwaQuestion string `gorm:"column:fatwa_question;type:text;not null" json:"fatwa_question"`
	FatwaAnswer   string `gorm:"column:fatwa_answer;type:text" json:"fatwa_answer"`
	FatwaScholar  string `gorm:"column:fatwa_scholar;type:varchar(100)" json:"fatwa_scholar"`

	FatwaCategory string `gorm:"column:fatwa_category;type:varchar(50);default:'Fiqh'" json:"fatwa_category"`
	FatwaLanguage string `gorm:"column:fatwa_language;type:varchar(20);default:'Indonesian'" json:"fatwa_language"`
	FatwaStatus   string `gorm:"column:fatwa_status;type:varchar(20);default:'Pending'" json:"fatwa_status"`

	FatwaReferences pq.StringArray `gorm:"column:fatwa_references;type:text[]" json:"fatwa_references"`
	FatwaTags       pq.StringArray `gorm:"column:fatwa_tags;type:text[]" json:"fatwa_tags"`

	FatwaIsPublic bool `gorm:"column:fatwa_is_public;default:false" json:"fatwa_is_public"`

	FatwaCreatedAt time.Time      `gorm:"column:fatwa_created_at;type:timestamptz;autoCreateTime" json:"fatwa_created_at"`
	FatwaUpdatedAt time.Time      `gorm:"column:fatwa_updated_at;type:timestamptz;autoUpdateTime" json:"fatwa_updated_at"`
	FatwaDeletedAt gorm.DeletedAt `gorm:"column:fatwa_deleted_at;type:timestamptz;index" json:"fatwa_deleted_at,omitempty"`
}

func (FatwaModel) TableName() string {
	return "fatwas"
}
