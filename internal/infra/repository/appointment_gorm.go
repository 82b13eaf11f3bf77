package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/vet-clinic/internal/domain/appointment"
	"github.com/BruksfildServices01/vet-clinic/internal/httperr"
	"github.com/BruksfildServices01/vet-clinic/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

var appointmentRefs = map[string]*httperr.ReferenceNotFoundError{
	"animal":       domain.ErrAnimalNotFound,
	"veterinarian": domain.ErrVeterinarianNotFound,
}

func (r *AppointmentGormRepository) Transaction(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&AppointmentGormRepository{db: tx})
	})
}

func (r *AppointmentGormRepository) withSummaries(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Animal", selectAnimalSummary).
		Preload("Veterinarian", selectVeterinarianSummary)
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *AppointmentGormRepository) List(ctx context.Context) ([]models.Appointment, error) {
	var apps []models.Appointment
	if err := r.withSummaries(ctx).
		Order("id ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	var ap models.Appointment
	if err := r.withSummaries(ctx).First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &ap, nil
}

// --------------------------------------------------
// References
// --------------------------------------------------

func (r *AppointmentGormRepository) AnimalExists(ctx context.Context, id uint) (bool, error) {
	return existsByID(ctx, r.db, &models.Animal{}, id)
}

func (r *AppointmentGormRepository) VeterinarianExists(ctx context.Context, id uint) (bool, error) {
	return veterinarianExists(ctx, r.db, id)
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (r *AppointmentGormRepository) Create(ctx context.Context, ap *models.Appointment) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(ap).Error
	return translateReferenceErr(err, appointmentRefs, "animal", "veterinarian")
}

func (r *AppointmentGormRepository) Update(ctx context.Context, ap *models.Appointment) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(ap).Error
	return translateReferenceErr(err, appointmentRefs, "animal", "veterinarian")
}

func (r *AppointmentGormRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
