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

type UpdateVeterinarian struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateVeterinarian(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateVeterinarian {
	return &UpdateVeterinarian{
		repo:  repo,
		audit: audit,
	}
}

// Execute replaces every field of veterinarian id with in.
func (uc *UpdateVeterinarian) Execute(
	ctx context.Context,
	id uint,
	in dto.VeterinarianRequest,
) (*models.Veterinarian, error) {

	in.Normalize()
	if err := validators.Struct(in); err != nil {
		return nil, err
	}

	var updated *models.Veterinarian

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		v, err := tx.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if err := assertUnique(ctx, tx, in.Crmv, in.Email, v.ID); err != nil {
			return err
		}

		in.Apply(v)
		if err := tx.Update(ctx, v); err != nil {
			return err
		}

		updated = v
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update veterinarian %d: %w", id, err)
	}

	uc.audit.Dispatch(ctx, audit.Event{
		Action:   "veterinarian_updated",
		Entity:   "veterinarian",
		EntityID: &updated.ID,
	})

	return updated, nil
}
