package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Center = tenant platform (masjid / islamic center).
type CenterModel struct {
	CenterID uuid.UUID `gorm:"column:center_id;type:uuid;default:gen_random_uuid();primaryKey" json:"center_id"`

	CenterName string `gorm:"column:center_name;type:varchar(150);not null" json:"center_name"`
	CenterSlug string `gorm:"column:center_slug;type:varchar(120);not null;uniqueIndex:uq_centers_slug" json:"center_slug"`

	CenterDescription string `gorm:"column:center_description;type:text" json:"center_description"`
	CenterAddress     string `gorm:"column:center_address;type:varchar(255)" json:"center_address"`
	CenterCity        string `gorm:"column:center_city;type:varchar(100)" json:"center_city"`
	CenterPhone       string `gorm:"column:center_phone;type:varchar(30)" json:"center_phone"`
	CenterEmail       string `gorm:"column:center_email;type:varchar(120)" json:"center_email"`
	CenterLogoURL     string `gorm:"column:center_logo_url;type:text" json:"center_logo_url"`

	CenterIsVerified bool `gorm:"column:center_is_verified;default:false" json:"center_is_verified"`

	CenterCreatedAt time.Time      `gorm:"column:center_created_at;type:timestamptz;autoCreateTime" json:"center_created_at"`
	CenterUpdatedAt time.Time      `gorm:"column:center_updated_at;type:timestamptz;autoUpdateTime" json:"center_updated_at"`
	CenterDeletedAt gorm.DeletedAt `gorm:"column:center_deleted_at;type:timestamptz;index" json:"center_deleted_at,omitempty"`
}

func (CenterModel) TableName() string {
	return "centers"
}
