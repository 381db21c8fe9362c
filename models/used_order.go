package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// UsedOrder records every PayPal order that has already granted credits.
// The unique index on OrderID is the replay guard for verify-purchase.
type UsedOrder struct {
	gorm.Model

	OrderID  string          `gorm:"uniqueIndex;size:128;not null" json:"order_id"`
	DeviceID string          `gorm:"size:255;index" json:"device_id"`
	Package  string          `gorm:"size:64" json:"package"`
	Amount   decimal.Decimal `gorm:"type:numeric(10,2);default:0" json:"amount"`
	Currency string          `gorm:"size:8" json:"currency"`
}
