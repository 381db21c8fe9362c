package models

import (
	"time"

	"gorm.io/gorm"
)

type OtpCode struct {
	gorm.Model

	Email     string     `gorm:"index;size:255;not null" json:"email"`
	Code      string     `gorm:"size:6;not null" json:"-"`
	DeviceID  string     `gorm:"size:255" json:"device_id"`
	ExpiresAt time.Time  `gorm:"index" json:"expires_at"`
	UsedAt    *time.Time `json:"used_at"`
}
