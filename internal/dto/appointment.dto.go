package dto

import (
	"strings"
	"time"

	"gorm.io/datatypes"

	"github.com/BruksfildServices01/vet-clinic/internal/domain/appointment"
	"github.com/BruksfildServices01/vet-clinic/internal/models"
	"github.com/BruksfildServices01/vet-clinic/internal/timezone"
	"github.com/BruksfildServices01/vet-clinic/internal/validators"
)

// ======================================================
// REQUEST
// ======================================================

type AppointmentRequest struct {
	Date           string  `json:"date" validate:"required,calendardate"`
	Time           string  `json:"time" validate:"required,clocktime"`
	Description    *string `json:"description"`
	Status         string  `json:"status" validate:"appointmentstatus"`
	AnimalID       *uint   `json:"animalId" validate:"required"`
	VeterinarianID *uint   `json:"veterinarianId"`
}

func (r *AppointmentRequest) Normalize() {
	r.Date = strings.TrimSpace(r.Date)
	r.Time = strings.TrimSpace(r.Time)
	r.Description = optional(r.Description)
	r.VeterinarianID = optionalID(r.VeterinarianID)

	if s, ok := appointment.ParseStatus(r.Status); ok {
		r.Status = string(s)
	}
}

func (AppointmentRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"date.required":     "A data da consulta é obrigatória.",
		"date":              "Formato de data da consulta inválido. Use AAAA-MM-DD.",
		"time.required":     "A hora da consulta é obrigatória.",
		"time":              "Formato de hora inválido. Use HH:MM ou HH:MM:SS.",
		"description":       "A descrição deve ser texto.",
		"status":            `Status da consulta inválido. Use "agendada", "concluida" ou "cancelada".`,
		"animalId.required": "O ID do animal é obrigatório para a consulta.",
		"animalId":          "O ID do animal deve ser um número inteiro.",
		"veterinarianId":    "O ID do veterinário deve ser um número inteiro.",
	}
}

// Apply copies a validated request onto ap.
func (r AppointmentRequest) Apply(ap *models.Appointment) {
	if d, err := validators.ParseCalendarDate(r.Date); err == nil {
		ap.Date = datatypes.Date(d)
	}
	if t, err := validators.NormalizeClockTime(r.Time); err == nil {
		if parsed, err := time.Parse("15:04:05", t); err == nil {
			ap.Time = datatypes.NewTime(parsed.Hour(), parsed.Minute(), parsed.Second(), 0)
		}
	}

	ap.Description = r.Description
	ap.Status = r.Status
	if r.AnimalID != nil {
		ap.AnimalID = *r.AnimalID
	}
	ap.VeterinarianID = r.VeterinarianID

	ap.Animal = nil
	ap.Veterinarian = nil
}

// ======================================================
// RESPONSE
// ======================================================

type AppointmentResponse struct {
	ID             uint                 `json:"id"`
	Date           string               `json:"date"`
	Time           string               `json:"time"`
	Description    *string              `json:"description"`
	Status         string               `json:"status"`
	AnimalID       uint                 `json:"animalId"`
	Animal         *AnimalSummary       `json:"animal"`
	VeterinarianID *uint                `json:"veterinarianId"`
	Veterinarian   *VeterinarianSummary `json:"veterinarian"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}

func NewAppointmentResponse(ap *models.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:             ap.ID,
		Date:           time.Time(ap.Date).Format(timezone.DateLayout),
		Time:           ap.Time.String(),
		Description:    ap.Description,
		Status:         ap.Status,
		AnimalID:       ap.AnimalID,
		Animal:         newAnimalSummary(ap.Animal),
		VeterinarianID: ap.VeterinarianID,
		Veterinarian:   newVeterinarianSummary(ap.Veterinarian),
		CreatedAt:      ap.CreatedAt,
		UpdatedAt:      ap.UpdatedAt,
	}
}

func NewAppointmentList(aps []models.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(aps))
	for i := range aps {
		out = append(out, NewAppointmentResponse(&aps[i]))
	}
	return out
}
