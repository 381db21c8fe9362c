package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CreditTransaction struct {
	gorm.Model

	AccountID *uint  `gorm:"index" json:"account_id"`
	PlayerID  *uint  `gorm:"index" json:"player_id"`
	TrxType   string `gorm:"size:16" json:"trx_type"`
	Amount    int    `json:"amount"`

	Metadata datatypes.JSON `gorm:"type:jsonb" json:"metadata"`
}
