package animal

import "github.com/BruksfildServices01/vet-clinic/internal/httperr"

var (
	ErrNotFound             = httperr.NewNotFound("Animal não encontrado.")
	ErrVeterinarianNotFound = httperr.NewReferenceNotFound("veterinarianId", "Veterinário responsável não encontrado.")
)
