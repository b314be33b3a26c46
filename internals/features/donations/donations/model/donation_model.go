package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DonationStatusPending  = "pending"
	DonationStatusPaid     = "paid"
	DonationStatusExpired  = "expired"
	DonationStatusCanceled = "canceled"
)

var DonationTypes = []string{"campaign", "infaq", "zakat", "waqf", "other"}

type DonationModel struct {
	DonationID       uuid.UUID  `gorm:"column:donation_id;type:uuid;default:gen_random_uuid();primaryKey" json:"donation_id"`
	DonationCenterID uuid.UUID  `gorm:"column:donation_center_id;type:uuid;not null;index:idx_donations_center_id" json:"donation_center_id"`
	DonationCampaignID *uuid.UUID `gorm:"column:donation_campaign_id;type:uuid;index" json:"donation_campaign_id"`

	// order id unik yang dikirim ke gateway, kunci pencarian webhook
	DonationOrderID string `gorm:"column:donation_order_id;type:varchar(60);not null;uniqueIndex:uq_donations_order_id" json:"donation_order_id"`

	DonationDonorName  string `gorm:"column:donation_donor_name;type:varchar(100)" json:"donation_donor_name"`
	DonationDonorEmail string `gorm:"column:donation_donor_email;type:varchar(120)" json:"donation_donor_email"`
	DonationMessage    string `gorm:"column:donation_message;type:text" json:"donation_message"`

	DonationAmountIDR int64  `gorm:"column:donation_amount_idr;type:bigint;not null" json:"donation_amount_idr"`
	DonationType      string `gorm:"column:donation_type;type:varchar(20);default:'infaq'" json:"donation_type"`
	DonationStatus    string `gorm:"column:donation_status;type:varchar(20);default:'pending'" json:"donation_status"`

	DonationPaymentToken string     `gorm:"column:donation_payment_token;type:text" json:"donation_payment_token,omitempty"`
	DonationGatewayRef   string     `gorm:"column:donation_gateway_ref;type:varchar(80)" json:"donation_gateway_ref,omitempty"`
	DonationPaidAt       *time.Time `gorm:"column:donation_paid_at;type:timestamptz" json:"donation_paid_at"`

	DonationCreatedAt time.Time      `gorm:"column:donation_created_at;type:timestamptz;autoCreateTime" json:"donation_created_at"`
	DonationUpdatedAt time.Time      `gorm:"column:donation_updated_at;type:timestamptz;autoUpdateTime" json:"donation_updated_at"`
	DonationDeletedAt gorm.DeletedAt `gorm:"column:donation_deleted_at;type:timestamptz;index" json:"donation_deleted_at,omitempty"`
}

func (DonationModel) TableName() string {
	return "donations"
}
