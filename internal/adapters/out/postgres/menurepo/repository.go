package menurepo

import (
	"context"
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GormMenuRepository struct {
	db *gorm.DB
}

func NewGormMenuRepository(db *gorm.DB) *GormMenuRepository {
	return &GormMenuRepository{db: db}
}

func (r *GormMenuRepository) Add(ctx context.Context, m *menu.Menu) error {
	if err := m.Validate(); err != nil {
		return err
	}

	dto := DomainToDTO(m)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormMenuRepository) Get(ctx context.Context, id kernel.UUID) (*menu.Menu, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu", id.String())
		}
		return nil, err
	}

	return DTOToDomain(dto)
}

// GetAllByIDs returns at most one menu per distinct id.
func (r *GormMenuRepository) GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.Menu, error) {
	if len(ids) == 0 {
		return []*menu.Menu{}, nil
	}

	keys := make([]uuid.UUID, len(ids))
	for i, id := range ids {
		keys[i] = id.Bytes()
	}

	var dtos []MenuDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", keys).Find(&dtos).Error; err != nil {
		return nil, err
	}

	menus := make([]*menu.Menu, 0, len(dtos))
	for _, dto := range dtos {
		m, err := DTOToDomain(dto)
		if err != nil {
			return nil, err
		}
		menus = append(menus, m)
	}

	return menus, nil
}

func DomainToDTO(m *menu.Menu) MenuDTO {
	return MenuDTO{
		ID:        m.ID().Bytes(),
		Name:      m.Name(),
		Price:     m.Price().Amount(),
		Displayed: m.IsDisplayed(),
	}
}

func DTOToDomain(dto MenuDTO) (*menu.Menu, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}

	return menu.NewMenu(id, dto.Name, price, dto.Displayed)
}
