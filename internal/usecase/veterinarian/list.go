package veterinarian

import (
	"context"
	"fmt"

	domain "github.com/BruksfildServices01/vet-clinic/internal/domain/veterinarian"
	"github.com/BruksfildServices01/vet-clinic/internal/models"
)

type ListVeterinarians struct {
	repo domain.Repository
}

func NewListVeterinarians(repo domain.Repository) *ListVeterinarians {
	return &ListVeterinarians{repo: repo}
}

func (uc *ListVeterinarians) Execute(ctx context.Context) ([]models.Veterinarian, error) {
	vets, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list veterinarians: %w", err)
	}
	return vets, nil
}
