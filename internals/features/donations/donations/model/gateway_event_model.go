package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Setiap notifikasi webhook dicatat mentah: header, payload, signature, hasil
// pemrosesan. Midtrans bisa retry; log ini yang jadi jejak auditnya.
type GatewayEventModel struct {
	GatewayEventID uuid.UUID `gorm:"column:gateway_event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"gateway_event_id"`

	GatewayEventOrderID   string `gorm:"column:gateway_event_order_id;type:varchar(60);index:idx_gateway_events_order_id" json:"gateway_event_order_id"`
	GatewayEventTxStatus  string `gorm:"column:gateway_event_tx_status;type:varchar(30)" json:"gateway_event_tx_status"`
	GatewayEventSignature string `gorm:"column:gateway_event_signature;type:varchar(160)" json:"gateway_event_signature"`

	GatewayEventHeaders datatypes.JSON `gorm:"column:gateway_event_headers;type:jsonb" json:"gateway_event_headers"`
	GatewayEventPayload datatypes.JSON `gorm:"column:gateway_event_payload;type:jsonb" json:"gateway_event_payload"`

	GatewayEventStatus string `gorm:"column:gateway_event_status;type:varchar(20);default:'received'" json:"gateway_event_status"` // received | processed | failed
	GatewayEventNote   string `gorm:"column:gateway_event_note;type:text" json:"gateway_event_note"`

	GatewayEventCreatedAt time.Time `gorm:"column:gateway_event_created_at;type:timestamptz;autoCreateTime" json:"gateway_event_created_at"`
}

func (GatewayEventModel) TableName() string {
	return "payment_gateway_events"
}
