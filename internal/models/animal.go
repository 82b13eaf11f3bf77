package models

import (
	"time"

	"gorm.io/datatypes"
)

type Animal struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string          `gorm:"size:255;not null" json:"name"`
	Species   string          `gorm:"size:100;not null" json:"species"`
	Breed     *string         `gorm:"size:100" json:"breed"`
	Age       *int            `json:"age"`
	Weight    *float64        `gorm:"type:decimal(10,2)" json:"weight"`
	BirthDate *datatypes.Date `gorm:"type:date" json:"birth_date"`
	Notes     *string         `gorm:"type:text" json:"notes"`

	VeterinarianID *uint         `gorm:"index" json:"veterinarian_id"`
	Veterinarian   *Veterinarian `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"veterinarian,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
