package animal

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/vet-clinic/internal/audit"
	domain "github.com/BruksfildServices01/vet-clinic/internal/domain/animal"
	"github.com/BruksfildServices01/vet-clinic/internal/dto"
	"github.com/BruksfildServices01/vet-clinic/internal/models"
	"github.com/BruksfildServices01/vet-clinic/internal/validators"
)

type UpdateAnimal struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAnimal(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAnimal {
	return &UpdateAnimal{
		repo:  repo,
		audit: audit,
	}
}

// Execute replaces the animal with in. The veterinarian is only looked up
// when the reference actually changes.
func (uc *UpdateAnimal) Execute(
	ctx context.Context,
	id uint,
	in dto.AnimalRequest,
) (*models.Animal, error) {

	in.Normalize()
	if err := validators.Struct(in); err != nil {
		return nil, err
	}

	var updated *models.Animal

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		a, err := tx.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if refChanged(a.VeterinarianID, in.VeterinarianID) {
			if err := assertVeterinarian(ctx, tx, in.VeterinarianID); err != nil {
				return err
			}
		}

		in.Apply(a)
		if err := tx.Update(ctx, a); err != nil {
			return err
		}

		reloaded, err := tx.GetByID(ctx, id)
		if err != nil {
			return err
		}
		updated = reloaded
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update animal %d: %w", id, err)
	}

	uc.audit.Dispatch(ctx, audit.Event{
		Action:   "animal_updated",
		Entity:   "animal",
		EntityID: &updated.ID,
	})

	return updated, nil
}
