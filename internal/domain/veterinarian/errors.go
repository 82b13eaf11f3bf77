package veterinarian

import "github.com/BruksfildServices01/vet-clinic/internal/httperr"

var (
	ErrNotFound   = httperr.NewNotFound("Veterinário não encontrado.")
	ErrCrmvTaken  = httperr.NewConflict("crmv", "Este CRMV já está cadastrado.")
	ErrEmailTaken = httperr.NewConflict("email", "Este e-mail já está cadastrado.")
)
