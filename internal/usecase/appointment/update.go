package appointment

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/vet-clinic/internal/audit"
	domain "github.com/BruksfildServices01/vet-clinic/internal/domain/appointment"
	"github.com/BruksfildServices01/vet-clinic/internal/dto"
	"github.com/BruksfildServices01/vet-clinic/internal/models"
	"github.com/BruksfildServices01/vet-clinic/internal/validators"
)

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute replaces the appointment with in. Any status may follow any
// other; references are looked up only when they change.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	id uint,
	in dto.AppointmentRequest,
) (*models.Appointment, error) {

	in.Normalize()
	if err := validators.Struct(in); err != nil {
		return nil, err
	}

	var (
		updated    *models.Appointment
		fromStatus string
	)

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		ap, err := tx.GetByID(ctx, id)
		if err != nil {
			return err
		}
		fromStatus = ap.Status

		if ap.AnimalID != *in.AnimalID {
			if err := assertAnimal(ctx, tx, *in.AnimalID); err != nil {
				return err
			}
		}
		if refChanged(ap.VeterinarianID, in.VeterinarianID) {
			if err := assertVeterinarian(ctx, tx, in.VeterinarianID); err != nil {
				return err
			}
		}

		in.Apply(ap)
		if err := tx.Update(ctx, ap); err != nil {
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
		return nil, fmt.Errorf("update appointment %d: %w", id, err)
	}

	ev := audit.Event{
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &updated.ID,
	}
	if fromStatus != updated.Status {
		ev.Metadata = map[string]string{"from": fromStatus, "to": updated.Status}
	}
	uc.audit.Dispatch(ctx, ev)

	return updated, nil
}
