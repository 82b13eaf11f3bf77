package veterinarian

import (
	"context"

	"github.com/BruksfildServices01/vet-clinic/internal/models"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error

	// -------- Reads --------
	List(ctx context.Context) ([]models.Veterinarian, error)
	GetByID(ctx context.Context, id uint) (*models.Veterinarian, error)

	// -------- Uniqueness (excludeID 0 checks every row) --------
	ExistsByCrmv(ctx context.Context, crmv string, excludeID uint) (bool, error)
	ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error)

	// -------- Writes --------
	Create(ctx context.Context, v *models.Veterinarian) error
	Update(ctx context.Context, v *models.Veterinarian) error

	// Detach clears the veterinarian reference on animals and appointments.
	Detach(ctx context.Context, id uint) (animals int64, appointments int64, err error)
	Delete(ctx context.Context, id uint) error
}
