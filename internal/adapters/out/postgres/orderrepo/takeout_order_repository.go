package orderrepo

import (
	"context"
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/takeoutorder"
	"kitchenpos/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTakeoutOrderRepository implements ports.TakeoutOrderRepository using GORM.
type GormTakeoutOrderRepository struct {
	db *gorm.DB
}

func NewGormTakeoutOrderRepository(db *gorm.DB) *GormTakeoutOrderRepository {
	return &GormTakeoutOrderRepository{db: db}
}

func (r *GormTakeoutOrderRepository) Add(ctx context.Context, aggregate takeoutorder.TakeoutOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := takeoutFromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormTakeoutOrderRepository) Update(ctx context.Context, aggregate takeoutorder.TakeoutOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&TakeoutOrderDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Update("status", int(aggregate.Status()))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("takeout order", aggregate.ID().String())
	}

	return nil
}

// Get locks the row until the surrounding transaction ends.
func (r *GormTakeoutOrderRepository) Get(ctx context.Context, id kernel.UUID) (takeoutorder.TakeoutOrder, error) {
	if err := id.Validate(); err != nil {
		return takeoutorder.TakeoutOrder{}, err
	}

	var dto TakeoutOrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("LineItems", orderedLineItems).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return takeoutorder.TakeoutOrder{}, errs.NewObjectNotFoundError("takeout order", id.String())
		}
		return takeoutorder.TakeoutOrder{}, err
	}

	return takeoutToDomain(dto)
}

func (r *GormTakeoutOrderRepository) GetAll(ctx context.Context) ([]takeoutorder.TakeoutOrder, error) {
	var dtos []TakeoutOrderDTO
	err := r.db.WithContext(ctx).
		Preload("LineItems", orderedLineItems).
		Order("order_date_time").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]takeoutorder.TakeoutOrder, 0, len(dtos))
	for _, dto := range dtos {
		o, err := takeoutToDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *GormTakeoutOrderRepository) CountByStatusNot(ctx context.Context, status takeoutorder.Status) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&TakeoutOrderDTO{}).Where("status <> ?", int(status)).Count(&n).Error
	return n, err
}

func takeoutFromDomain(aggregate takeoutorder.TakeoutOrder) TakeoutOrderDTO {
	return TakeoutOrderDTO{
		ID:            aggregate.ID().Bytes(),
		Type:          int(aggregate.Type()),
		Status:        int(aggregate.Status()),
		OrderDateTime: aggregate.OrderDateTime(),
		LineItems: wrap(lineItemsFromDomain(aggregate.ID(), aggregate.LineItems()), func(d LineItemDTO) TakeoutOrderLineItemDTO {
			return TakeoutOrderLineItemDTO{LineItemDTO: d}
		}),
	}
}

func takeoutToDomain(dto TakeoutOrderDTO) (takeoutorder.TakeoutOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return takeoutorder.TakeoutOrder{}, err
	}

	items, err := lineItemsToDomain(unwrap(dto.LineItems, func(row TakeoutOrderLineItemDTO) LineItemDTO {
		return row.LineItemDTO
	}))
	if err != nil {
		return takeoutorder.TakeoutOrder{}, err
	}

	return takeoutorder.RestoreTakeoutOrder(
		id,
		order.Type(dto.Type),
		takeoutorder.Status(dto.Status),
		dto.OrderDateTime,
		items,
	)
}
