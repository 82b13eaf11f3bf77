package veterinarian

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/vet-clinic/internal/audit"
	domain "github.com/BruksfildServices01/vet-clinic/internal/domain/veterinarian"
	"github.com/BruksfildServices01/vet-clinic/internal/dto"
	"github.com/BruksfildServices01/vet-clinic/internal/models"
	"github.com/BruksfildServices01/vet-clinic/internal/validators"
)

// ======================================================
// USE CASE
// ======================================================

type CreateVeterinarian struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateVeterinarian(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateVeterinarian {
	return &CreateVeterinarian{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateVeterinarian) Execute(
	ctx context.Context,
	in dto.VeterinarianRequest,
) (*models.Veterinarian, error) {

	in.Normalize()
	if err := validators.Struct(in); err != nil {
		return nil, err
	}

	v := &models.Veterinarian{}
	in.Apply(v)

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		if err := assertUnique(ctx, tx, v.Crmv, v.Email, 0); err != nil {
			return err
		}
		return tx.Create(ctx, v)
	})
	if err != nil {
		return nil, fmt.Errorf("create veterinarian: %w", err)
	}

	uc.audit.Dispatch(ctx, audit.Event{
		Action:   "veterinarian_created",
		Entity:   "veterinarian",
		EntityID: &v.ID,
		Metadata: map[string]string{"crmv": v.Crmv},
	})

	return v, nil
}
