// Package menurepo stores the catalog menus the order services price line items against.
package menurepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MenuDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name      string          `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:numeric(19,2);not null"`
	Displayed bool            `gorm:"not null"`
}

func (MenuDTO) TableName() string {
	return "menus"
}
