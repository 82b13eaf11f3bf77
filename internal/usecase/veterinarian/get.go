package veterinarian

import (
	"context"
	"fmt"

	domain "github.com/BruksfildServices01/vet-clinic/internal/domain/veterinarian"
	"github.com/BruksfildServices01/vet-clinic/internal/models"
)

type GetVeterinarian struct {
	repo domain.Repository
}

func NewGetVeterinarian(repo domain.Repository) *GetVeterinarian {
	return &GetVeterinarian{repo: repo}
}

func (uc *GetVeterinarian) Execute(ctx context.Context, id uint) (*models.Veterinarian, error) {
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get veterinarian %d: %w", id, err)
	}
	return v, nil
}
