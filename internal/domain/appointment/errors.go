package appointment

import "github.com/BruksfildServices01/vet-clinic/internal/httperr"

var (
	ErrNotFound             = httperr.NewNotFound("Consulta não encontrada.")
	ErrAnimalNotFound       = httperr.NewReferenceNotFound("animalId", "Animal não encontrado.")
	ErrVeterinarianNotFound = httperr.NewReferenceNotFound("veterinarianId", "Veterinário não encontrado.")
)
