package dto

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/vet-clinic/internal/models"
)

// ======================================================
// REQUEST
// ======================================================

type VeterinarianRequest struct {
	Name      string  `json:"name" validate:"required,max=255"`
	Crmv      string  `json:"crmv" validate:"required,max=50"`
	Specialty *string `json:"specialty" validate:"omitnil,max=255"`
	Phone     *string `json:"phone" validate:"omitnil,max=20"`
	Email     *string `json:"email" validate:"omitnil,email,max=255"`
}

func (r *VeterinarianRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Crmv = strings.TrimSpace(r.Crmv)
	r.Specialty = optional(r.Specialty)
	r.Phone = optional(r.Phone)
	r.Email = optional(r.Email)
}

func (VeterinarianRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"name.required": "O nome do veterinário é obrigatório.",
		"name":          "O nome deve ter no máximo 255 caracteres.",
		"crmv.required": "O CRMV é obrigatório.",
		"crmv":          "O CRMV deve ter no máximo 50 caracteres.",
		"specialty":     "A especialidade deve ter no máximo 255 caracteres.",
		"phone":         "O telefone deve ter no máximo 20 caracteres.",
		"email":         "Formato de e-mail inválido.",
	}
}

// Apply copies the request onto v. Optional fields absent from the
// request are cleared.
func (r VeterinarianRequest) Apply(v *models.Veterinarian) {
	v.Name = r.Name
	v.Crmv = r.Crmv
	v.Specialty = r.Specialty
	v.Phone = r.Phone
	v.Email = r.Email
}

// ======================================================
// RESPONSE
// ======================================================

type VeterinarianResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Crmv      string    `json:"crmv"`
	Specialty *string   `json:"specialty"`
	Phone     *string   `json:"phone"`
	Email     *string   `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type VeterinarianSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Crmv string `json:"crmv"`
}

func NewVeterinarianResponse(v *models.Veterinarian) VeterinarianResponse {
	return VeterinarianResponse{
		ID:        v.ID,
		Name:      v.Name,
		Crmv:      v.Crmv,
		Specialty: v.Specialty,
		Phone:     v.Phone,
		Email:     v.Email,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func NewVeterinarianList(vs []models.Veterinarian) []VeterinarianResponse {
	out := make([]VeterinarianResponse, 0, len(vs))
	for i := range vs {
		out = append(out, NewVeterinarianResponse(&vs[i]))
	}
	return out
}

func newVeterinarianSummary(v *models.Veterinarian) *VeterinarianSummary {
	if v == nil {
		return nil
	}
	return &VeterinarianSummary{ID: v.ID, Name: v.Name, Crmv: v.Crmv}
}
