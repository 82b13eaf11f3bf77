package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/vet-clinic/internal/domain/veterinarian"
	"github.com/BruksfildServices01/vet-clinic/internal/models"
)

type VeterinarianGormRepository struct {
	db *gorm.DB
}

func NewVeterinarianGormRepository(db *gorm.DB) *VeterinarianGormRepository {
	return &VeterinarianGormRepository{db: db}
}

func (r *VeterinarianGormRepository) Transaction(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&VeterinarianGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *VeterinarianGormRepository) List(ctx context.Context) ([]models.Veterinarian, error) {
	var vets []models.Veterinarian
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&vets).Error; err != nil {
		return nil, err
	}
	return vets, nil
}

func (r *VeterinarianGormRepository) GetByID(ctx context.Context, id uint) (*models.Veterinarian, error) {
	var v models.Veterinarian
	if err := r.db.WithContext(ctx).First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

// --------------------------------------------------
// Uniqueness
// --------------------------------------------------

func (r *VeterinarianGormRepository) ExistsByCrmv(ctx context.Context, crmv string, excludeID uint) (bool, error) {
	return r.existsBy(ctx, "crmv", crmv, excludeID)
}

func (r *VeterinarianGormRepository) ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error) {
	return r.existsBy(ctx, "email", email, excludeID)
}

func (r *VeterinarianGormRepository) existsBy(ctx context.Context, column, value string, excludeID uint) (bool, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Veterinarian{}).
		Where(clause.Eq{Column: clause.Column{Name: column}, Value: value})

	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (r *VeterinarianGormRepository) Create(ctx context.Context, v *models.Veterinarian) error {
	return translateVeterinarianErr(r.db.WithContext(ctx).Create(v).Error)
}

func (r *VeterinarianGormRepository) Update(ctx context.Context, v *models.Veterinarian) error {
	return translateVeterinarianErr(r.db.WithContext(ctx).Save(v).Error)
}

func (r *VeterinarianGormRepository) Detach(ctx context.Context, id uint) (int64, int64, error) {
	animals := r.db.WithContext(ctx).
		Model(&models.Animal{}).
		Where("veterinarian_id = ?", id).
		Update("veterinarian_id", gorm.Expr("NULL"))
	if animals.Error != nil {
		return 0, 0, animals.Error
	}

	appointments := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("veterinarian_id = ?", id).
		Update("veterinarian_id", gorm.Expr("NULL"))
	if appointments.Error != nil {
		return 0, 0, appointments.Error
	}

	return animals.RowsAffected, appointments.RowsAffected, nil
}

func (r *VeterinarianGormRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Veterinarian{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*VeterinarianGormRepository)(nil)
