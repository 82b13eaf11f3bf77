package animal

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/vet-clinic/internal/audit"
	domain "github.com/BruksfildServices01/vet-clinic/internal/domain/animal"
)

type DeleteResult struct {
	AppointmentsDeleted int64 `json:"appointments_deleted"`
}

type DeleteAnimal struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAnimal(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAnimal {
	return &DeleteAnimal{
		repo:  repo,
		audit: audit,
	}
}

// Execute removes the animal together with all of its appointments.
func (uc *DeleteAnimal) Execute(ctx context.Context, id uint) (*DeleteResult, error) {
	res := &DeleteResult{}

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		if _, err := tx.GetByID(ctx, id); err != nil {
			return err
		}

		n, err := tx.DeleteAppointments(ctx, id)
		if err != nil {
			return err
		}
		res.AppointmentsDeleted = n

		return tx.Delete(ctx, id)
	})
	if err != nil {
		return nil, fmt.Errorf("delete animal %d: %w", id, err)
	}

	uc.audit.Dispatch(ctx, audit.Event{
		Action:   "animal_deleted",
		Entity:   "animal",
		EntityID: &id,
		Metadata: res,
	})

	return res, nil
}
