package tablerepo

import (
	"context"
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/table"
	"kitchenpos/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormTableRepository struct {
	db *gorm.DB
}

func NewGormTableRepository(db *gorm.DB) *GormTableRepository {
	return &GormTableRepository{db: db}
}

func (r *GormTableRepository) Add(ctx context.Context, t *table.RestaurantTable) error {
	if err := t.Validate(); err != nil {
		return err
	}

	dto := DomainToDTO(t)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update uses Select("*") so that clearing a table writes occupied=false and zero guests.
func (r *GormTableRepository) Update(ctx context.Context, t *table.RestaurantTable) error {
	if err := t.Validate(); err != nil {
		return err
	}

	dto := DomainToDTO(t)
	result := r.db.WithContext(ctx).Model(&RestaurantTableDTO{ID: dto.ID}).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("restaurant table", t.ID().String())
	}

	return nil
}

// Get locks the row for the rest of the transaction.
func (r *GormTableRepository) Get(ctx context.Context, id kernel.UUID) (*table.RestaurantTable, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantTableDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurant table", id.String())
		}
		return nil, err
	}

	return DTOToDomain(dto)
}

func DomainToDTO(t *table.RestaurantTable) RestaurantTableDTO {
	return RestaurantTableDTO{
		ID:             t.ID().Bytes(),
		Name:           t.Name(),
		Occupied:       t.IsOccupied(),
		NumberOfGuests: t.NumberOfGuests(),
	}
}

func DTOToDomain(dto RestaurantTableDTO) (*table.RestaurantTable, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return table.NewRestaurantTable(id, dto.Name, dto.Occupied, dto.NumberOfGuests)
}
