package orderrepo

import (
	"context"
	"errors"

	"kitchenpos/internal/core/domain/model/deliveryorder"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDeliveryOrderRepository implements ports.DeliveryOrderRepository using GORM.
type GormDeliveryOrderRepository struct {
	db *gorm.DB
}

func NewGormDeliveryOrderRepository(db *gorm.DB) *GormDeliveryOrderRepository {
	return &GormDeliveryOrderRepository{db: db}
}

func (r *GormDeliveryOrderRepository) Add(ctx context.Context, aggregate deliveryorder.DeliveryOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := deliveryFromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormDeliveryOrderRepository) Update(ctx context.Context, aggregate deliveryorder.DeliveryOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&DeliveryOrderDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Update("status", int(aggregate.Status()))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("delivery order", aggregate.ID().String())
	}

	return nil
}

// Get locks the row until the surrounding transaction ends.
func (r *GormDeliveryOrderRepository) Get(ctx context.Context, id kernel.UUID) (deliveryorder.DeliveryOrder, error) {
	if err := id.Validate(); err != nil {
		return deliveryorder.DeliveryOrder{}, err
	}

	var dto DeliveryOrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("LineItems", orderedLineItems).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return deliveryorder.DeliveryOrder{}, errs.NewObjectNotFoundError("delivery order", id.String())
		}
		return deliveryorder.DeliveryOrder{}, err
	}

	return deliveryToDomain(dto)
}

func (r *GormDeliveryOrderRepository) GetAll(ctx context.Context) ([]deliveryorder.DeliveryOrder, error) {
	var dtos []DeliveryOrderDTO
	err := r.db.WithContext(ctx).
		Preload("LineItems", orderedLineItems).
		Order("order_date_time").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]deliveryorder.DeliveryOrder, 0, len(dtos))
	for _, dto := range dtos {
		o, err := deliveryToDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *GormDeliveryOrderRepository) CountByStatusNot(ctx context.Context, status deliveryorder.Status) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&DeliveryOrderDTO{}).Where("status <> ?", int(status)).Count(&n).Error
	return n, err
}

func deliveryFromDomain(aggregate deliveryorder.DeliveryOrder) DeliveryOrderDTO {
	return DeliveryOrderDTO{
		ID:              aggregate.ID().Bytes(),
		Type:            int(aggregate.Type()),
		Status:          int(aggregate.Status()),
		OrderDateTime:   aggregate.OrderDateTime(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		LineItems: wrap(lineItemsFromDomain(aggregate.ID(), aggregate.LineItems()), func(d LineItemDTO) DeliveryOrderLineItemDTO {
			return DeliveryOrderLineItemDTO{LineItemDTO: d}
		}),
	}
}

func deliveryToDomain(dto DeliveryOrderDTO) (deliveryorder.DeliveryOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return deliveryorder.DeliveryOrder{}, err
	}

	items, err := lineItemsToDomain(unwrap(dto.LineItems, func(row DeliveryOrderLineItemDTO) LineItemDTO {
		return row.LineItemDTO
	}))
	if err != nil {
		return deliveryorder.DeliveryOrder{}, err
	}

	return deliveryorder.RestoreDeliveryOrder(
		id,
		order.Type(dto.Type),
		deliveryorder.Status(dto.Status),
		dto.OrderDateTime,
		items,
		dto.DeliveryAddress,
	)
}
