package orderrepo

import (
	"context"
	"errors"

	"kitchenpos/internal/core/domain/model/eatinorder"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormEatInOrderRepository implements ports.EatInOrderRepository using GORM.
type GormEatInOrderRepository struct {
	db *gorm.DB
}

func NewGormEatInOrderRepository(db *gorm.DB) *GormEatInOrderRepository {
	return &GormEatInOrderRepository{db: db}
}

// Add inserts the order and its line items.
func (r *GormEatInOrderRepository) Add(ctx context.Context, aggregate eatinorder.EatInOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := eatInFromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update writes the status. Everything else about an order is fixed at creation.
func (r *GormEatInOrderRepository) Update(ctx context.Context, aggregate eatinorder.EatInOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&EatInOrderDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Update("status", int(aggregate.Status()))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("eat-in order", aggregate.ID().String())
	}

	return nil
}

// Get reads the order with SELECT ... FOR UPDATE, holding the row until the
// surrounding transaction ends.
func (r *GormEatInOrderRepository) Get(ctx context.Context, id kernel.UUID) (eatinorder.EatInOrder, error) {
	if err := id.Validate(); err != nil {
		return eatinorder.EatInOrder{}, err
	}

	var dto EatInOrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("LineItems", orderedLineItems).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return eatinorder.EatInOrder{}, errs.NewObjectNotFoundError("eat-in order", id.String())
		}
		return eatinorder.EatInOrder{}, err
	}

	return eatInToDomain(dto)
}

func (r *GormEatInOrderRepository) GetAll(ctx context.Context) ([]eatinorder.EatInOrder, error) {
	var dtos []EatInOrderDTO
	err := r.db.WithContext(ctx).
		Preload("LineItems", orderedLineItems).
		Order("order_date_time").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]eatinorder.EatInOrder, 0, len(dtos))
	for _, dto := range dtos {
		o, err := eatInToDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *GormEatInOrderRepository) ExistsByTableAndStatusNot(
	ctx context.Context,
	tableID kernel.UUID,
	status eatinorder.Status,
) (bool, error) {
	var exists bool
	err := r.db.WithContext(ctx).Raw(`
		SELECT EXISTS (
			SELECT 1
			FROM eat_in_orders
			WHERE table_id = ? AND status <> ?
		)
	`, tableID.Bytes(), int(status)).Scan(&exists).Error
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *GormEatInOrderRepository) CountByStatusNot(ctx context.Context, status eatinorder.Status) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&EatInOrderDTO{}).Where("status <> ?", int(status)).Count(&n).Error
	return n, err
}

func eatInFromDomain(aggregate eatinorder.EatInOrder) EatInOrderDTO {
	return EatInOrderDTO{
		ID:            aggregate.ID().Bytes(),
		Type:          int(aggregate.Type()),
		Status:        int(aggregate.Status()),
		OrderDateTime: aggregate.OrderDateTime(),
		TableID:       aggregate.TableID().Bytes(),
		LineItems: wrap(lineItemsFromDomain(aggregate.ID(), aggregate.LineItems()), func(d LineItemDTO) EatInOrderLineItemDTO {
			return EatInOrderLineItemDTO{LineItemDTO: d}
		}),
	}
}

func eatInToDomain(dto EatInOrderDTO) (eatinorder.EatInOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return eatinorder.EatInOrder{}, err
	}

	tableID, err := kernel.UUIDFromBytes(dto.TableID[:])
	if err != nil {
		return eatinorder.EatInOrder{}, err
	}

	items, err := lineItemsToDomain(unwrap(dto.LineItems, func(row EatInOrderLineItemDTO) LineItemDTO {
		return row.LineItemDTO
	}))
	if err != nil {
		return eatinorder.EatInOrder{}, err
	}

	return eatinorder.RestoreEatInOrder(
		id,
		order.Type(dto.Type),
		eatinorder.Status(dto.Status),
		dto.OrderDateTime,
		items,
		tableID,
	)
}
