package models

import (
	"gorm.io/gorm"
)

type Account struct {
	gorm.Model

	Email       string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	DisplayName string `gorm:"size:64" json:"display_name"`
	Credits     int    `json:"credits"`
	IsVerified  bool   `gorm:"default:false" json:"is_verified"`

	Players []Player `gorm:"foreignKey:AccountID"`
}
