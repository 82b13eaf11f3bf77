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

// ======================================================
// USE CASE
// ======================================================

type CreateAnimal struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAnimal(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAnimal {
	return &CreateAnimal{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAnimal) Execute(
	ctx context.Context,
	in dto.AnimalRequest,
) (*models.Animal, error) {

	in.Normalize()
	if err := validators.Struct(in); err != nil {
		return nil, err
	}

	var created *models.Animal

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		if err := assertVeterinarian(ctx, tx, in.VeterinarianID); err != nil {
			return err
		}

		a := &models.Animal{}
		in.Apply(a)
		if err := tx.Create(ctx, a); err != nil {
			return err
		}

		// reload for the veterinarian summary
		reloaded, err := tx.GetByID(ctx, a.ID)
		if err != nil {
			return err
		}
		created = reloaded
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create animal: %w", err)
	}

	uc.audit.Dispatch(ctx, audit.Event{
		Action:   "animal_created",
		Entity:   "animal",
		EntityID: &created.ID,
	})

	return created, nil
}
