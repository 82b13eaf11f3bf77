package animal

import (
	"context"
	"fmt"

	domain "github.com/BruksfildServices01/vet-clinic/internal/domain/animal"
	"github.com/BruksfildServices01/vet-clinic/internal/models"
)

type ListAnimals struct {
	repo domain.Repository
}

func NewListAnimals(repo domain.Repository) *ListAnimals {
	return &ListAnimals{repo: repo}
}

func (uc *ListAnimals) Execute(ctx context.Context) ([]models.Animal, error) {
	animals, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list animals: %w", err)
	}
	return animals, nil
}
