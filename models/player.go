package models

import (
	"time"

	"gorm.io/gorm"
)

type Player struct {
	gorm.Model

	DeviceID     string    `gorm:"uniqueIndex;size:255;not null" json:"device_id"`
	DisplayName  string    `gorm:"size:64;default:'Anonymous'" json:"display_name"`
	AccountID    *uint     `gorm:"index" json:"account_id"`
	LocalCredits int       `json:"local_credits"`
	LastActiveAt time.Time `json:"last_active_at"`
}
