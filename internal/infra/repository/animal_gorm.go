package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/vet-clinic/internal/domain/animal"
	"github.com/BruksfildServices01/vet-clinic/internal/httperr"
	"github.com/BruksfildServices01/vet-clinic/internal/models"
)

type AnimalGormRepository struct {
	db *gorm.DB
}

func NewAnimalGormRepository(db *gorm.DB) *AnimalGormRepository {
	return &AnimalGormRepository{db: db}
}

var animalRefs = map[string]*httperr.ReferenceNotFoundError{
	"veterinarian": domain.ErrVeterinarianNotFound,
}

func (r *AnimalGormRepository) Transaction(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&AnimalGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *AnimalGormRepository) List(ctx context.Context) ([]models.Animal, error) {
	var animals []models.Animal
	if err := r.db.WithContext(ctx).
		Preload("Veterinarian", selectVeterinarianSummary).
		Order("id ASC").
		Find(&animals).Error; err != nil {
		return nil, err
	}
	return animals, nil
}

func (r *AnimalGormRepository) GetByID(ctx context.Context, id uint) (*models.Animal, error) {
	var a models.Animal
	if err := r.db.WithContext(ctx).
		Preload("Veterinarian", selectVeterinarianSummary).
		First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *AnimalGormRepository) VeterinarianExists(ctx context.Context, id uint) (bool, error) {
	return veterinarianExists(ctx, r.db, id)
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (r *AnimalGormRepository) Create(ctx context.Context, a *models.Animal) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(a).Error
	return translateReferenceErr(err, animalRefs, "veterinarian")
}

func (r *AnimalGormRepository) Update(ctx context.Context, a *models.Animal) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(a).Error
	return translateReferenceErr(err, animalRefs, "veterinarian")
}

func (r *AnimalGormRepository) DeleteAppointments(ctx context.Context, animalID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("animal_id = ?", animalID).
		Delete(&models.Appointment{})
	return res.RowsAffected, res.Error
}

func (r *AnimalGormRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Animal{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*AnimalGormRepository)(nil)
