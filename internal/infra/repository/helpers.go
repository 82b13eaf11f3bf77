package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/vet-clinic/internal/models"
)

func existsByID(ctx context.Context, db *gorm.DB, model any, id uint) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).
		Model(model).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func veterinarianExists(ctx context.Context, db *gorm.DB, id uint) (bool, error) {
	return existsByID(ctx, db, &models.Veterinarian{}, id)
}

// summary columns loaded alongside animals and appointments
func selectVeterinarianSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "crmv")
}

func selectAnimalSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "species")
}
