package dto

import (
	"annur_backend/internals/features/donations/donations/model"

	"github.com/google/uuid"
)

// ================== REQUEST ==================
type CreateOrderRequest struct {
	Amount     int64      `json:"amount" validate:"required,gt=0"`
	Type       string     `json:"type" validate:"omitempty,oneof=campaign infaq zakat waqf other"`
	DonorName  string     `json:"donorName" validate:"required,max=100"`
	DonorEmail string     `json:"donorEmail" validate:"required,email"`
	Message    string     `json:"message" validate:"max=500"`
	CenterID   uuid.UUID  `json:"centerId" validate:"required"`
	CampaignID *uuid.UUID `json:"campaignId"`
}

// Payload notifikasi Midtrans; dipakai webhook dan endpoint verify.
type MidtransNotification struct {
	TransactionTime   string `json:"transaction_time"`
	TransactionStatus string `json:"transaction_status"` // capture, settlement, pending, deny, cancel, expire
	StatusCode        string `json:"status_code"`
	SignatureKey      string `json:"signature_key"`
	OrderID           string `json:"order_id"`
	GrossAmount       string `json:"gross_amount"`
	PaymentType       string `json:"payment_type"`
	FraudStatus       string `json:"fraud_status"`
	TransactionID     string `json:"transaction_id"`
	SettlementTime    string `json:"settlement_time"`
}

// ================== RESPONSE ==================
type OrderResponse struct {
	Demo        bool   `json:"demo"`
	Key         string `json:"key,omitempty"`
	OrderID     string `json:"order_id"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Token       string `json:"token,omitempty"`
	RedirectURL string `json:"redirect_url,omitempty"`
}

type DonationResponse struct {
	DonationID         uuid.UUID  `json:"donation_id"`
	DonationCenterID   uuid.UUID  `json:"donation_center_id"`
	DonationCampaignID *uuid.UUID `json:"donation_campaign_id"`
	DonationOrderID    string     `json:"donation_order_id"`
	DonationDonorName  string     `json:"donation_donor_name"`
	DonationDonorEmail string     `json:"donation_donor_email"`
	DonationMessage    string     `json:"donation_message"`
	DonationAmountIDR  int64      `json:"donation_amount_idr"`
	DonationType       string     `json:"donation_type"`
	DonationStatus     string     `json:"donation_status"`
	DonationPaidAt     string     `json:"donation_paid_at,omitempty"`
	DonationCreatedAt  string     `json:"donation_created_at"`
}

func ToDonationResponse(m *model.DonationModel) *DonationResponse {
	resp := &DonationResponse{
		DonationID:         m.DonationID,
		DonationCenterID:   m.DonationCenterID,
		DonationCampaignID: m.DonationCampaignID,
		DonationOrderID:    m.DonationOrderID,
		DonationDonorName:  m.DonationDonorName,
		DonationDonorEmail: m.DonationDonorEmail,
		DonationMessage:    m.DonationMessage,
		DonationAmountIDR:  m.DonationAmountIDR,
		DonationType:       m.DonationType,
		DonationStatus:     m.DonationStatus,
		DonationCreatedAt:  m.DonationCreatedAt.Format("2006-01-02 15:04:05"),
	}
	if m.DonationPaidAt != nil {
		resp.DonationPaidAt = m.DonationPaidAt.Format("2006-01-02 15:04:05")
	}
	return resp
}

func ToDonationResponseList(models []model.DonationModel) []DonationResponse {
	result := make([]DonationResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToDonationResponse(&m))
	}
	return result
}
