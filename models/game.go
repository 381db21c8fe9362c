package models

import (
	"gorm.io/gorm"
)

type Game struct {
	gorm.Model

	Slug string `gorm:"uniqueIndex;size:32;not null" json:"slug"`
	Name string `gorm:"size:64" json:"name"`
}
