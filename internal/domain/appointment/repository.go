package appointment

import (
	"context"

	"github.com/BruksfildServices01/vet-clinic/internal/models"
)

type Repository interface {
	// Transaction runs fn against a repository bound to one transaction.
	Transaction(ctx context.Context, fn func(Repository) error) error

	// -------- Reads --------
	List(ctx context.Context) ([]models.Appointment, error)

	// GetByID returns ErrNotFound on a miss.
	GetByID(ctx context.Context, id uint) (*models.Appointment, error)

	// -------- References --------
	AnimalExists(ctx context.Context, id uint) (bool, error)
	VeterinarianExists(ctx context.Context, id uint) (bool, error)

	// -------- Writes --------
	Create(ctx context.Context, ap *models.Appointment) error
	Update(ctx context.Context, ap *models.Appointment) error

	// Delete returns ErrNotFound when no row was removed.
	Delete(ctx context.Context, id uint) error
}
