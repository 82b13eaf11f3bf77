package models

import "time"

type Veterinarian struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string  `gorm:"size:255;not null" json:"name"`
	Crmv      string  `gorm:"size:50;uniqueIndex;not null" json:"crmv"`
	Specialty *string `gorm:"size:255" json:"specialty"`
	Phone     *string `gorm:"size:20" json:"phone"`
	Email     *string `gorm:"size:255;uniqueIndex" json:"email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
