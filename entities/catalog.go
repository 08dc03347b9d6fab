package entities

import (
	"github.com/google/uuid"
)

// Tag and Ingredient are immutable reference data, seeded outside the API.

type Tag struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name string    `gorm:"uniqueIndex;not null" json:"name"`
	Slug string    `gorm:"uniqueIndex;not null" json:"slug"`

	Recipes []*Recipe `gorm:"many2many:recipe_tags" json:"-"`
}

type Ingredient struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name            string    `gorm:"uniqueIndex:idx_name_unit;not null" json:"name"`
	MeasurementUnit string    `gorm:"uniqueIndex:idx_name_unit;not null" json:"measurement_unit"`
}
