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

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in dto.AppointmentRequest,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Campos
	// --------------------------------------------------
	in.Normalize()
	if err := validators.Struct(in); err != nil {
		return nil, err
	}

	var created *models.Appointment

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		// --------------------------------------------------
		// 2️⃣ Referências
		// --------------------------------------------------
		if err := assertAnimal(ctx, tx, *in.AnimalID); err != nil {
			return err
		}
		if err := assertVeterinarian(ctx, tx, in.VeterinarianID); err != nil {
			return err
		}

		// --------------------------------------------------
		// 3️⃣ Gravação
		// --------------------------------------------------
		ap := &models.Appointment{}
		in.Apply(ap)
		if err := tx.Create(ctx, ap); err != nil {
			return err
		}

		reloaded, err := tx.GetByID(ctx, ap.ID)
		if err != nil {
			return err
		}
		created = reloaded
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	// --------------------------------------------------
	// 4️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(ctx, audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &created.ID,
		Metadata: map[string]any{
			"animal_id": created.AnimalID,
			"status":    created.Status,
		},
	})

	return created, nil
}
