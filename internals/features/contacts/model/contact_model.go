package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ContactRoles = []string{"Imam", "Chairman", "Secretary", "Treasurer", "Teacher", "Staff", "Other"}

type ContactModel struct {
	ContactID       uuid.UUID `gorm:"column:contact_id;type:uuid;default:gen_random_uuid();primaryKey" json:"contact_id"`
	ContactCenterID uuid.UUID `gorm:"column:contact_center_id;type:uuid;not null;index:idx_contacts_center_id" json:"contact_center_id"`

	ContactName  string `gorm:"column:contact_name;type:varchar(100);not null" json:"contact_name"`
	ContactRole  string `gorm:"column:contact_role;type:varchar(50);default:'Staff'" json:"contact_role"`
	ContactEmail string `gorm:"column:contact_email;type:varchar(120)" json:"contact_email"`
	ContactPhone string `gorm:"column:contact_phone;type:varchar(30)" json:"contact_phone"`

	ContactIsPublic bool `gorm:"column:contact_is_public;default:true" json:"contact_is_public"`

	ContactCreatedAt time.Time      `gorm:"column:contact_created_at;type:timestamptz;autoCreateTime" json:"contact_created_at"`
	ContactUpdatedAt time.Time      `gorm:"column:contact_updated_at;type:timestamptz;autoUpdateTime" json:"contact_updated_at"`
	ContactDeletedAt gorm.DeletedAt `gorm:"column:contact_deleted_at;type:timestamptz;index" json:"contact_deleted_at,omitempty"`
}

func (ContactModel) TableName() string {
	return "contacts"
}
