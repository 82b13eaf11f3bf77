package veterinarian

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/vet-clinic/internal/audit"
	domain "github.com/BruksfildServices01/vet-clinic/internal/domain/veterinarian"
)

type DeleteResult struct {
	AnimalsDetached      int64 `json:"animals_detached"`
	AppointmentsDetached int64 `json:"appointments_detached"`
}

type DeleteVeterinarian struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteVeterinarian(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteVeterinarian {
	return &DeleteVeterinarian{
		repo:  repo,
		audit: audit,
	}
}

// Execute removes the veterinarian. Animals and appointments that
// referenced it are kept with the reference cleared, in the same
// transaction.
func (uc *DeleteVeterinarian) Execute(ctx context.Context, id uint) (*DeleteResult, error) {
	res := &DeleteResult{}

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		if _, err := tx.GetByID(ctx, id); err != nil {
			return err
		}

		animals, appointments, err := tx.Detach(ctx, id)
		if err != nil {
			return err
		}
		res.AnimalsDetached = animals
		res.AppointmentsDetached = appointments

		return tx.Delete(ctx, id)
	})
	if err != nil {
		return nil, fmt.Errorf("delete veterinarian %d: %w", id, err)
	}

	uc.audit.Dispatch(ctx, audit.Event{
		Action:   "veterinarian_deleted",
		Entity:   "veterinarian",
		EntityID: &id,
		Metadata: res,
	})

	return res, nil
}
