// Package orderrepo persists the three order aggregates. Each channel has its own
// orders table and a child table holding the line items in creation order.
package orderrepo

import (
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LineItemDTO is the shape shared by the per-channel line item tables.
type LineItemDTO struct {
	OrderID  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Seq      int             `gorm:"primaryKey;autoIncrement:false"`
	MenuID   uuid.UUID       `gorm:"type:uuid;not null"`
	Price    decimal.Decimal `gorm:"type:numeric(19,2);not null"`
	Quantity int64           `gorm:"not null"`
}

type EatInOrderDTO struct {
	ID            uuid.UUID               `gorm:"type:uuid;primaryKey"`
	Type          int                     `gorm:"not null"`
	Status        int                     `gorm:"not null;index"`
	OrderDateTime time.Time               `gorm:"not null"`
	TableID       uuid.UUID               `gorm:"type:uuid;not null;index"`
	LineItems     []EatInOrderLineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (EatInOrderDTO) TableName() string {
	return "eat_in_orders"
}

type EatInOrderLineItemDTO struct {
	LineItemDTO
}

func (EatInOrderLineItemDTO) TableName() string {
	return "eat_in_order_line_items"
}

type TakeoutOrderDTO struct {
	ID            uuid.UUID                 `gorm:"type:uuid;primaryKey"`
	Type          int                       `gorm:"not null"`
	Status        int                       `gorm:"not null;index"`
	OrderDateTime time.Time                 `gorm:"not null"`
	LineItems     []TakeoutOrderLineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (TakeoutOrderDTO) TableName() string {
	return "takeout_orders"
}

type TakeoutOrderLineItemDTO struct {
	LineItemDTO
}

func (TakeoutOrderLineItemDTO) TableName() string {
	return "takeout_order_line_items"
}

type DeliveryOrderDTO struct {
	ID              uuid.UUID                  `gorm:"type:uuid;primaryKey"`
	Type            int                        `gorm:"not null"`
	Status          int                        `gorm:"not null;index"`
	OrderDateTime   time.Time                  `gorm:"not null"`
	DeliveryAddress string                     `gorm:"not null;default:''"`
	LineItems       []DeliveryOrderLineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (DeliveryOrderDTO) TableName() string {
	return "delivery_orders"
}

type DeliveryOrderLineItemDTO struct {
	LineItemDTO
}

func (DeliveryOrderLineItemDTO) TableName() string {
	return "delivery_order_line_items"
}

// Models lists every table this package owns, parents first, for AutoMigrate.
func Models() []any {
	return []any{
		&EatInOrderDTO{}, &EatInOrderLineItemDTO{},
		&TakeoutOrderDTO{}, &TakeoutOrderLineItemDTO{},
		&DeliveryOrderDTO{}, &DeliveryOrderLineItemDTO{},
	}
}

func lineItemsFromDomain(orderID kernel.UUID, items []order.LineItem) []LineItemDTO {
	dtos := make([]LineItemDTO, len(items))
	for i, item := range items {
		dtos[i] = LineItemDTO{
			OrderID:  orderID.Bytes(),
			Seq:      i,
			MenuID:   item.MenuID().Bytes(),
			Price:    item.Price().Amount(),
			Quantity: item.Quantity(),
		}
	}
	return dtos
}

func lineItemsToDomain(dtos []LineItemDTO) ([]order.LineItem, error) {
	items := make([]order.LineItem, 0, len(dtos))
	for _, dto := range dtos {
		menuID, err := kernel.UUIDFromBytes(dto.MenuID[:])
		if err != nil {
			return nil, err
		}
		price, err := kernel.NewPrice(dto.Price)
		if err != nil {
			return nil, err
		}
		item, err := order.NewLineItem(menuID, price, dto.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// wrap converts the shared rows to a channel's line item type.
func wrap[T any](dtos []LineItemDTO, as func(LineItemDTO) T) []T {
	out := make([]T, len(dtos))
	for i, dto := range dtos {
		out[i] = as(dto)
	}
	return out
}

func unwrap[T any](rows []T, get func(T) LineItemDTO) []LineItemDTO {
	out := make([]LineItemDTO, len(rows))
	for i, row := range rows {
		out[i] = get(row)
	}
	return out
}

func orderedLineItems(db *gorm.DB) *gorm.DB {
	return db.Order("seq")
}
