package animal

import (
	"context"

	"github.com/BruksfildServices01/vet-clinic/internal/models"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error

	// -------- Reads --------
	List(ctx context.Context) ([]models.Animal, error)
	GetByID(ctx context.Context, id uint) (*models.Animal, error)

	// -------- References --------
	VeterinarianExists(ctx context.Context, id uint) (bool, error)

	// -------- Writes --------
	Create(ctx context.Context, a *models.Animal) error
	Update(ctx context.Context, a *models.Animal) error

	// DeleteAppointments removes every appointment of the animal and
	// reports how many went.
	DeleteAppointments(ctx context.Context, animalID uint) (int64, error)
	Delete(ctx context.Context, id uint) error
}
