package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/vet-clinic/internal/domain/appointment"
)

func assertAnimal(ctx context.Context, repo domain.Repository, id uint) error {
	ok, err := repo.AnimalExists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrAnimalNotFound
	}
	return nil
}

func assertVeterinarian(ctx context.Context, repo domain.Repository, id *uint) error {
	if id == nil {
		return nil
	}

	ok, err := repo.VeterinarianExists(ctx, *id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrVeterinarianNotFound
	}
	return nil
}

// refChanged reports whether next points somewhere other than current.
// Clearing a reference is a change that needs no existence check.
func refChanged(current, next *uint) bool {
	if next == nil {
		return false
	}
	return current == nil || *current != *next
}
