package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/BruksfildServices01/vet-clinic/internal/domain/animal"
	"github.com/BruksfildServices01/vet-clinic/internal/domain/appointment"
	"github.com/BruksfildServices01/vet-clinic/internal/domain/veterinarian"
	"github.com/BruksfildServices01/vet-clinic/internal/httperr"
	"github.com/BruksfildServices01/vet-clinic/internal/models"
	"github.com/BruksfildServices01/vet-clinic/internal/testutil"
)

func TestVeterinarianRepository_UniqueIndexTranslated(t *testing.T) {
	gdb := testutil.NewDB(t)
	repo := NewVeterinarianGormRepository(gdb)
	ctx := context.Background()

	if err := repo.Create(ctx, &models.Veterinarian{Name: "Ana", Crmv: "CRMV123"}); err != nil {
		t.Fatalf("first create: %v", err)
	}

	err := repo.Create(ctx, &models.Veterinarian{Name: "Bia", Crmv: "CRMV123"})
	if !errors.Is(err, veterinarian.ErrCrmvTaken) {
		t.Fatalf("expected ErrCrmvTaken, got %v", err)
	}

	email := "ana@clinica.test"
	if err := repo.Create(ctx, &models.Veterinarian{Name: "Ana", Crmv: "A1", Email: &email}); err != nil {
		t.Fatalf("create with email: %v", err)
	}
	err = repo.Create(ctx, &models.Veterinarian{Name: "Caio", Crmv: "A2", Email: testutil.Ptr(email)})
	if !errors.Is(err, veterinarian.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestVeterinarianRepository_NullEmailsDoNotCollide(t *testing.T) {
	gdb := testutil.NewDB(t)
	repo := NewVeterinarianGormRepository(gdb)
	ctx := context.Background()

	for _, crmv := range []string{"A1", "A2"} {
		if err := repo.Create(ctx, &models.Veterinarian{Name: "Vet", Crmv: crmv}); err != nil {
			t.Fatalf("create %s: %v", crmv, err)
		}
	}
}

func TestVeterinarianRepository_ExistsExcludesSelf(t *testing.T) {
	gdb := testutil.NewDB(t)
	repo := NewVeterinarianGormRepository(gdb)
	ctx := context.Background()

	v := testutil.SeedVeterinarian(t, gdb, "Ana", "CRMV123")

	taken, err := repo.ExistsByCrmv(ctx, "CRMV123", 0)
	if err != nil || !taken {
		t.Fatalf("expected crmv taken, got %v, %v", taken, err)
	}

	taken, err = repo.ExistsByCrmv(ctx, "CRMV123", v.ID)
	if err != nil || taken {
		t.Fatalf("expected own crmv to be free, got %v, %v", taken, err)
	}
}

func TestVeterinarianRepository_DetachAndDelete(t *testing.T) {
	gdb := testutil.NewDB(t)
	repo := NewVeterinarianGormRepository(gdb)
	ctx := context.Background()

	v := testutil.SeedVeterinarian(t, gdb, "Ana", "CRMV123")
	a := testutil.SeedAnimal(t, gdb, "Rex", &v.ID)
	testutil.SeedAppointment(t, gdb, a.ID, &v.ID)
	testutil.SeedAppointment(t, gdb, a.ID, &v.ID)

	animals, apps, err := repo.Detach(ctx, v.ID)
	if err != nil {
		t.Fatalf("detach: %v", err)
	}
	if animals != 1 || apps != 2 {
		t.Errorf("expected 1 animal and 2 appointments detached, got %d and %d", animals, apps)
	}

	if err := repo.Delete(ctx, v.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, v.ID); !errors.Is(err, veterinarian.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestAnimalRepository_ForeignKeyTranslated(t *testing.T) {
	gdb := testutil.NewDB(t)
	repo := NewAnimalGormRepository(gdb)

	err := repo.Create(context.Background(), &models.Animal{
		Name:           "Rex",
		Species:        "cão",
		VeterinarianID: testutil.Ptr(uint(999)),
	})
	if !errors.Is(err, animal.ErrVeterinarianNotFound) {
		t.Fatalf("expected ErrVeterinarianNotFound, got %v", err)
	}

	var count int64
	gdb.Model(&models.Animal{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no animal persisted, got %d", count)
	}
}

func TestAnimalRepository_GetByIDPreloadsSummary(t *testing.T) {
	gdb := testutil.NewDB(t)
	repo := NewAnimalGormRepository(gdb)

	v := testutil.SeedVeterinarian(t, gdb, "Ana", "CRMV123")
	a := testutil.SeedAnimal(t, gdb, "Rex", &v.ID)

	got, err := repo.GetByID(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Veterinarian == nil || got.Veterinarian.Crmv != "CRMV123" {
		t.Fatalf("expected veterinarian summary, got %+v", got.Veterinarian)
	}

	if _, err := repo.GetByID(context.Background(), a.ID+100); !errors.Is(err, animal.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAppointmentRepository_ForeignKeyTranslated(t *testing.T) {
	gdb := testutil.NewDB(t)
	repo := NewAppointmentGormRepository(gdb)

	ap := testutil.SeedAppointment(t, gdb, testutil.SeedAnimal(t, gdb, "Rex", nil).ID, nil)
	ap.AnimalID = 999

	err := repo.Update(context.Background(), &ap)

	var ref *httperr.ReferenceNotFoundError
	if !errors.As(err, &ref) {
		t.Fatalf("expected reference error, got %v", err)
	}
	if !errors.Is(err, appointment.ErrAnimalNotFound) {
		t.Errorf("expected animal reference to be blamed first, got %v", err)
	}
}

func TestAppointmentRepository_DeleteMissing(t *testing.T) {
	gdb := testutil.NewDB(t)
	repo := NewAppointmentGormRepository(gdb)

	if err := repo.Delete(context.Background(), 42); !errors.Is(err, appointment.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClassify_Postgres(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "crmv",
			err:  &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "idx_veterinarians_crmv"},
			want: veterinarian.ErrCrmvTaken,
		},
		{
			name: "email",
			err:  &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "idx_veterinarians_email"},
			want: veterinarian.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := translateVeterinarianErr(tt.err); !errors.Is(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	fk := &pgconn.PgError{
		Code:           pgForeignKeyViolation,
		ConstraintName: "fk_appointments_veterinarian",
		Detail:         `Key (veterinarian_id)=(9) is not present in table "veterinarians".`,
	}
	got := translateReferenceErr(fk, appointmentRefs, "animal", "veterinarian")
	if !errors.Is(got, appointment.ErrVeterinarianNotFound) {
		t.Errorf("expected veterinarian reference error, got %v", got)
	}

	other := &pgconn.PgError{Code: "40001"}
	if got := translateVeterinarianErr(other); got != other {
		t.Errorf("expected unrelated error to pass through, got %v", got)
	}
}
