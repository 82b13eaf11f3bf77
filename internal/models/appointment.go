package models

import (
	"time"

	"gorm.io/datatypes"
)

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date        datatypes.Date `gorm:"type:date;not null" json:"date"`
	Time        datatypes.Time `gorm:"not null" json:"time"`
	Description *string        `gorm:"type:text" json:"description"`
	Status      string         `gorm:"size:20;not null;default:'scheduled'" json:"status"`

	AnimalID uint    `gorm:"not null;index" json:"animal_id"`
	Animal   *Animal `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"animal,omitempty"`

	VeterinarianID *uint         `gorm:"index" json:"veterinarian_id"`
	Veterinarian   *Veterinarian `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"veterinarian,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
