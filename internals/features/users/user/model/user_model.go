package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID       uuid.UUID  `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserCenterID *uuid.UUID `gorm:"column:user_center_id;type:uuid;index:idx_users_center_id" json:"user_center_id"`

	UserName  string `gorm:"column:user_name;type:varchar(100);not null" json:"user_name"`
	UserEmail string `gorm:"column:user_email;type:varchar(120);not null;uniqueIndex:uq_users_email" json:"user_email"`

	// bcrypt hash; kosong untuk akun Google-only
	UserPassword string `gorm:"column:user_password;type:varchar(100)" json:"-"`

	UserRole      string  `gorm:"column:user_role;type:varchar(20);default:'user'" json:"user_role"`
	UserGoogleSub *string `gorm:"column:user_google_sub;type:varchar(60);uniqueIndex:uq_users_google_sub" json:"-"`
	UserIsActive  bool    `gorm:"column:user_is_active;default:true" json:"user_is_active"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;type:timestamptz;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;type:timestamptz;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;type:timestamptz;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}
