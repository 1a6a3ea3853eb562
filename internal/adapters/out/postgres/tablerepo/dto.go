// Package tablerepo stores the dining tables eat-in orders are placed at.
package tablerepo

import "github.com/google/uuid"

type RestaurantTableDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"not null"`
	Occupied       bool      `gorm:"not null"`
	NumberOfGuests int       `gorm:"not null"`
}

func (RestaurantTableDTO) TableName() string {
	return "restaurant_tables"
}
