package testutil

import (
	"errors"
	"testing"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/vet-clinic/internal/config"
	"github.com/BruksfildServices01/vet-clinic/internal/db"
	"github.com/BruksfildServices01/vet-clinic/internal/models"
)

// NewDB returns a migrated in-memory sqlite database private to t.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		DBDriver:   config.DriverSQLite,
		DBUrl:      "file::memory:",
		DBLogLevel: "silent",
		Timezone:   "UTC",
	}

	gdb, err := db.Open(cfg)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return gdb
}

func Ptr[T any](v T) *T {
	return &v
}

func SeedVeterinarian(t *testing.T, gdb *gorm.DB, name, crmv string) models.Veterinarian {
	t.Helper()

	v := models.Veterinarian{Name: name, Crmv: crmv}
	if err := gdb.Create(&v).Error; err != nil {
		t.Fatalf("seed veterinarian: %v", err)
	}
	return v
}

func SeedAnimal(t *testing.T, gdb *gorm.DB, name string, vetID *uint) models.Animal {
	t.Helper()

	a := models.Animal{Name: name, Species: "cão", VeterinarianID: vetID}
	if err := gdb.Omit("Veterinarian").Create(&a).Error; err != nil {
		t.Fatalf("seed animal: %v", err)
	}
	return a
}

func SeedAppointment(t *testing.T, gdb *gorm.DB, animalID uint, vetID *uint) models.Appointment {
	t.Helper()

	ap := models.Appointment{
		Date:           datatypes.Date(time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)),
		Time:           datatypes.NewTime(14, 30, 0, 0),
		AnimalID:       animalID,
		VeterinarianID: vetID,
		Status:         "scheduled",
	}
	if err := gdb.Omit("Animal", "Veterinarian").Create(&ap).Error; err != nil {
		t.Fatalf("seed appointment: %v", err)
	}
	return ap
}

// ErrInjected is returned by deletes blocked with FailDeletes.
var ErrInjected = errors.New("injected delete failure")

// FailDeletes makes every DELETE on table fail with ErrInjected before it
// reaches the database.
func FailDeletes(t *testing.T, gdb *gorm.DB, table string) {
	t.Helper()

	err := gdb.Callback().Delete().Before("gorm:delete").
		Register("testutil:fail_deletes_"+table, func(tx *gorm.DB) {
			if tx.Statement.Table == table {
				_ = tx.AddError(ErrInjected)
			}
		})
	if err != nil {
		t.Fatalf("register delete callback: %v", err)
	}
}
