package repository

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/vet-clinic/internal/config"
	"github.com/BruksfildServices01/vet-clinic/internal/db"
	"github.com/BruksfildServices01/vet-clinic/internal/domain/animal"
	"github.com/BruksfildServices01/vet-clinic/internal/domain/veterinarian"
	"github.com/BruksfildServices01/vet-clinic/internal/models"
	"github.com/BruksfildServices01/vet-clinic/internal/testutil"
)

func newPostgres(t *testing.T) *gorm.DB {
	t.Helper()

	if os.Getenv("INTEGRATION_TESTS") != "1" {
		t.Skip("set INTEGRATION_TESTS=1 to run postgres integration tests")
	}

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("petshow"),
		tcpostgres.WithUsername("petshow"),
		tcpostgres.WithPassword("petshow"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("start postgres: %v", err)
	}
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("terminate postgres: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("connection string: %v", err)
	}

	gdb, err := db.Open(&config.Config{
		DBDriver:          config.DriverPostgres,
		DBUrl:             dsn,
		DBMaxOpenConns:    5,
		DBMaxIdleConns:    2,
		DBConnMaxLifetime: time.Minute,
		DBLogLevel:        "silent",
		Timezone:          "UTC",
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return gdb
}

func TestPostgres_ConstraintTranslation(t *testing.T) {
	gdb := newPostgres(t)
	ctx := context.Background()

	vets := NewVeterinarianGormRepository(gdb)
	if err := vets.Create(ctx, &models.Veterinarian{Name: "Ana", Crmv: "CRMV123"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := vets.Create(ctx, &models.Veterinarian{Name: "Bia", Crmv: "CRMV123"}); !errors.Is(err, veterinarian.ErrCrmvTaken) {
		t.Fatalf("expected ErrCrmvTaken, got %v", err)
	}

	email := "ana@clinica.test"
	if err := vets.Create(ctx, &models.Veterinarian{Name: "Ana", Crmv: "A1", Email: &email}); err != nil {
		t.Fatalf("create with email: %v", err)
	}
	if err := vets.Create(ctx, &models.Veterinarian{Name: "Caio", Crmv: "A2", Email: &email}); !errors.Is(err, veterinarian.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	animals := NewAnimalGormRepository(gdb)
	err := animals.Create(ctx, &models.Animal{Name: "Rex", Species: "cão", VeterinarianID: testutil.Ptr(uint(999))})
	if !errors.Is(err, animal.ErrVeterinarianNotFound) {
		t.Fatalf("expected ErrVeterinarianNotFound, got %v", err)
	}
}

func TestPostgres_SchemaCascadeAndNullify(t *testing.T) {
	gdb := newPostgres(t)

	vet := testutil.SeedVeterinarian(t, gdb, "Ana", "A1")
	rex := testutil.SeedAnimal(t, gdb, "Rex", &vet.ID)
	testutil.SeedAppointment(t, gdb, rex.ID, &vet.ID)

	// raw deletes rely on the declared foreign keys alone
	if err := gdb.Exec("DELETE FROM veterinarians WHERE id = ?", vet.ID).Error; err != nil {
		t.Fatalf("delete vet: %v", err)
	}

	var reloaded models.Animal
	gdb.First(&reloaded, rex.ID)
	if reloaded.VeterinarianID != nil {
		t.Fatalf("expected ON DELETE SET NULL, got %v", *reloaded.VeterinarianID)
	}

	if err := gdb.Exec("DELETE FROM animals WHERE id = ?", rex.ID).Error; err != nil {
		t.Fatalf("delete animal: %v", err)
	}

	var left int64
	gdb.Model(&models.Appointment{}).Count(&left)
	if left != 0 {
		t.Fatalf("expected ON DELETE CASCADE, got %d appointments", left)
	}
}
