package dto

import (
	"strings"
	"time"

	"gorm.io/datatypes"

	"github.com/BruksfildServices01/vet-clinic/internal/models"
	"github.com/BruksfildServices01/vet-clinic/internal/timezone"
	"github.com/BruksfildServices01/vet-clinic/internal/validators"
)

// ======================================================
// REQUEST
// ======================================================

type AnimalRequest struct {
	Name           string   `json:"name" validate:"required,max=255"`
	Species        string   `json:"species" validate:"required,max=100"`
	Breed          *string  `json:"breed" validate:"omitnil,max=100"`
	Age            *int     `json:"age" validate:"omitnil,min=0,max=30"`
	Weight         *float64 `json:"weight" validate:"omitnil,min=0.1,max=99999999.99"`
	BirthDate      *string  `json:"birthDate" validate:"omitnil,calendardate"`
	Notes          *string  `json:"notes"`
	VeterinarianID *uint    `json:"veterinarianId"`
}

func (r *AnimalRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Species = strings.TrimSpace(r.Species)
	r.Breed = optional(r.Breed)
	r.BirthDate = optional(r.BirthDate)
	r.Notes = optional(r.Notes)
	r.VeterinarianID = optionalID(r.VeterinarianID)
}

func (AnimalRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"name.required":    "O nome do animal é obrigatório.",
		"name":             "O nome deve ter no máximo 255 caracteres.",
		"species.required": "A espécie do animal é obrigatória.",
		"species":          "A espécie deve ter no máximo 100 caracteres.",
		"breed":            "A raça deve ter no máximo 100 caracteres.",
		"age":              "A idade deve ser um número inteiro entre 0 e 30.",
		"weight":           "O peso deve ser um número decimal entre 0.1 e 99999999.99.",
		"birthDate":        "Formato de data de nascimento inválido. Use AAAA-MM-DD.",
		"notes":            "As observações devem ser texto.",
		"veterinarianId":   "O ID do veterinário deve ser um número inteiro.",
	}
}

// Apply copies a validated request onto a. Optional fields absent from the
// request are cleared.
func (r AnimalRequest) Apply(a *models.Animal) {
	a.Name = r.Name
	a.Species = r.Species
	a.Breed = r.Breed
	a.Age = r.Age
	a.Weight = r.Weight
	a.Notes = r.Notes
	a.VeterinarianID = r.VeterinarianID
	a.Veterinarian = nil

	a.BirthDate = nil
	if r.BirthDate != nil {
		if d, err := validators.ParseCalendarDate(*r.BirthDate); err == nil {
			bd := datatypes.Date(d)
			a.BirthDate = &bd
		}
	}
}

// ======================================================
// RESPONSE
// ======================================================

type AnimalResponse struct {
	ID             uint                 `json:"id"`
	Name           string               `json:"name"`
	Species        string               `json:"species"`
	Breed          *string              `json:"breed"`
	Age            *int                 `json:"age"`
	Weight         *float64             `json:"weight"`
	BirthDate      *string              `json:"birthDate"`
	Notes          *string              `json:"notes"`
	VeterinarianID *uint                `json:"veterinarianId"`
	Veterinarian   *VeterinarianSummary `json:"veterinarian"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}

type AnimalSummary struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Species string `json:"species"`
}

func NewAnimalResponse(a *models.Animal) AnimalResponse {
	res := AnimalResponse{
		ID:             a.ID,
		Name:           a.Name,
		Species:        a.Species,
		Breed:          a.Breed,
		Age:            a.Age,
		Weight:         a.Weight,
		Notes:          a.Notes,
		VeterinarianID: a.VeterinarianID,
		Veterinarian:   newVeterinarianSummary(a.Veterinarian),
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}

	if a.BirthDate != nil {
		s := time.Time(*a.BirthDate).Format(timezone.DateLayout)
		res.BirthDate = &s
	}

	return res
}

func NewAnimalList(as []models.Animal) []AnimalResponse {
	out := make([]AnimalResponse, 0, len(as))
	for i := range as {
		out = append(out, NewAnimalResponse(&as[i]))
	}
	return out
}

func newAnimalSummary(a *models.Animal) *AnimalSummary {
	if a == nil {
		return nil
	}
	return &AnimalSummary{ID: a.ID, Name: a.Name, Species: a.Species}
}
