package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CampaignStatusActive = "Active"
	CampaignStatusClosed = "Closed"
)

var CampaignStatuses = []string{CampaignStatusActive, CampaignStatusClosed}

type CampaignModel struct {
	CampaignID       uuid.UUID `gorm:"column:campaign_id;type:uuid;default:gen_random_uuid();primaryKey" json:"campaign_id"`
	CampaignCenterID uuid.UUID `gorm:"column:campaign_center_id;type:uuid;not null;index:idx_campaigns_center_id" json:"campaign_center_id"`

	CampaignTitle       string `gorm:"column:campaign_title;type:varchar(200);not null" json:"campaign_title"`
	CampaignDescription string `gorm:"column:campaign_description;type:text;not null" json:"campaign_description"`

	// nominal rupiah, tanpa pecahan
	CampaignGoalAmount   int64 `gorm:"column:campaign_goal_amount;type:bigint;not null" json:"campaign_goal_amount"`
	CampaignRaisedAmount int64 `gorm:"column:campaign_raised_amount;type:bigint;default:0" json:"campaign_raised_amount"`

	CampaignStatus     string `gorm:"column:campaign_status;type:varchar(20);default:'Active'" json:"campaign_status"`
	CampaignIsFeatured bool   `gorm:"column:campaign_is_featured;default:false" json:"campaign_is_featured"`
	CampaignImageURL   string `gorm:"column:campaign_image_url;type:text" json:"campaign_image_url"`

	CampaignCreatedAt time.Time      `gorm:"column:campaign_created_at;type:timestamptz;autoCreateTime" json:"campaign_created_at"`
	CampaignUpdatedAt time.Time      `gorm:"column:campaign_updated_at;type:timestamptz;autoUpdateTime" json:"campaign_updated_at"`
	CampaignDeletedAt gorm.DeletedAt `gorm:"column:campaign_deleted_at;type:timestamptz;index" json:"campaign_deleted_at,omitempty"`
}

func (CampaignModel) TableName() string {
	return "donation_campaigns"
}
