package animal

import (
	"context"
	"fmt"

	domain "github.com/BruksfildServices01/vet-clinic/internal/domain/animal"
	"github.com/BruksfildServices01/vet-clinic/internal/models"
)

type GetAnimal struct {
	repo domain.Repository
}

func NewGetAnimal(repo domain.Repository) *GetAnimal {
	return &GetAnimal{repo: repo}
}

func (uc *GetAnimal) Execute(ctx context.Context, id uint) (*models.Animal, error) {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get animal %d: %w", id, err)
	}
	return a, nil
}
