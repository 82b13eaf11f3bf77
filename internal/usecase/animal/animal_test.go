package animal

import (
	"context"
	"errors"
	"testing"

	domain "github.com/BruksfildServices01/vet-clinic/internal/domain/animal"
	"github.com/BruksfildServices01/vet-clinic/internal/dto"
	"github.com/BruksfildServices01/vet-clinic/internal/httperr"
	"github.com/BruksfildServices01/vet-clinic/internal/infra/repository"
	"github.com/BruksfildServices01/vet-clinic/internal/models"
	"github.com/BruksfildServices01/vet-clinic/internal/testutil"
)

func TestCreateAnimal_RoundTrip(t *testing.T) {
	gdb := testutil.NewDB(t)
	repo := repository.NewAnimalGormRepository(gdb)
	vet := testutil.SeedVeterinarian(t, gdb, "Ana", "CRMV123")

	created, err := NewCreateAnimal(repo, nil).Execute(context.Background(), dto.AnimalRequest{
		Name:           "Rex",
		Species:        "cão",
		Age:            testutil.Ptr(5),
		Weight:         testutil.Ptr(3.25),
		BirthDate:      testutil.Ptr("2020-01-01"),
		VeterinarianID: &vet.ID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := NewGetAnimal(repo).Execute(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	res := dto.NewAnimalResponse(got)
	if res.Age == nil || *res.Age != 5 {
		t.Errorf("age = %v, want 5", res.Age)
	}
	if res.Weight == nil || *res.Weight != 3.25 {
		t.Errorf("weight = %v, want 3.25", res.Weight)
	}
	if res.BirthDate == nil || *res.BirthDate != "2020-01-01" {
		t.Errorf("birthDate = %v, want 2020-01-01", res.BirthDate)
	}
	if res.Veterinarian == nil || res.Veterinarian.Crmv != "CRMV123" {
		t.Errorf("expected veterinarian summary, got %+v", res.Veterinarian)
	}
}

func TestCreateAnimal_UnknownVeterinarian(t *testing.T) {
	gdb := testutil.NewDB(t)
	uc := NewCreateAnimal(repository.NewAnimalGormRepository(gdb), nil)

	_, err := uc.Execute(context.Background(), dto.AnimalRequest{
		Name:           "Rex",
		Species:        "cão",
		VeterinarianID: testutil.Ptr(uint(999)),
	})

	var ref *httperr.ReferenceNotFoundError
	if !errors.As(err, &ref) || ref.Field != "veterinarianId" {
		t.Fatalf("expected veterinarianId reference error, got %v", err)
	}

	var count int64
	gdb.Model(&models.Animal{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no row persisted, got %d", count)
	}
}

func TestCreateAnimal_Validation(t *testing.T) {
	gdb := testutil.NewDB(t)
	uc := NewCreateAnimal(repository.NewAnimalGormRepository(gdb), nil)

	tests := []struct {
		name  string
		in    dto.AnimalRequest
		field string
	}{
		{"missing name", dto.AnimalRequest{Species: "cão"}, "name"},
		{"missing species", dto.AnimalRequest{Name: "Rex"}, "species"},
		{"negative age", dto.AnimalRequest{Name: "Rex", Species: "cão", Age: testutil.Ptr(-1)}, "age"},
		{"age over 30", dto.AnimalRequest{Name: "Rex", Species: "cão", Age: testutil.Ptr(31)}, "age"},
		{"zero weight", dto.AnimalRequest{Name: "Rex", Species: "cão", Weight: testutil.Ptr(0.0)}, "weight"},
		{"weight beyond column precision", dto.AnimalRequest{Name: "Rex", Species: "cão", Weight: testutil.Ptr(1e12)}, "weight"},
		{"impossible birth date", dto.AnimalRequest{Name: "Rex", Species: "cão", BirthDate: testutil.Ptr("2021-02-30")}, "birthDate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.in)

			var ve *httperr.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected validation error, got %v", err)
			}
			found := false
			for _, f := range ve.Fields {
				if f.Field == tt.field {
					found = true
				}
			}
			if !found {
				t.Errorf("expected field %q in %+v", tt.field, ve.Fields)
			}
		})
	}

	boundary := dto.AnimalRequest{Name: "Rex", Species: "cão", Age: testutil.Ptr(30), Weight: testutil.Ptr(0.1)}
	if _, err := uc.Execute(context.Background(), boundary); err != nil {
		t.Fatalf("expected boundary values to pass, got %v", err)
	}

	boundary.Weight = testutil.Ptr(99999999.99)
	if _, err := uc.Execute(context.Background(), boundary); err != nil {
		t.Fatalf("expected boundary values to pass, got %v", err)
	}
}

// countingRepo counts veterinarian lookups, including those made inside
// transactions.
type countingRepo struct {
	domain.Repository
	vetChecks *int
}

func (r countingRepo) Transaction(ctx context.Context, fn func(domain.Repository) error) error {
	return r.Repository.Transaction(ctx, func(tx domain.Repository) error {
		return fn(countingRepo{Repository: tx, vetChecks: r.vetChecks})
	})
}

func (r countingRepo) VeterinarianExists(ctx context.Context, id uint) (bool, error) {
	*r.vetChecks++
	return r.Repository.VeterinarianExists(ctx, id)
}

func TestUpdateAnimal_UnchangedReferenceNotRechecked(t *testing.T) {
	gdb := testutil.NewDB(t)
	checks := 0
	repo := countingRepo{Repository: repository.NewAnimalGormRepository(gdb), vetChecks: &checks}
	uc := NewUpdateAnimal(repo, nil)
	ctx := context.Background()

	vet := testutil.SeedVeterinarian(t, gdb, "Ana", "A1")
	other := testutil.SeedVeterinarian(t, gdb, "Bia", "B2")
	rex := testutil.SeedAnimal(t, gdb, "Rex", &vet.ID)

	updated, err := uc.Execute(ctx, rex.ID, dto.AnimalRequest{
		Name:           "Rex II",
		Species:        "cão",
		VeterinarianID: &vet.ID,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Rex II" {
		t.Errorf("expected name updated, got %q", updated.Name)
	}
	if checks != 0 {
		t.Fatalf("expected no lookup for an unchanged veterinarian, got %d", checks)
	}

	if _, err := uc.Execute(ctx, rex.ID, dto.AnimalRequest{
		Name:           "Rex",
		Species:        "cão",
		VeterinarianID: &other.ID,
	}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if checks != 1 {
		t.Fatalf("expected one lookup for a changed veterinarian, got %d", checks)
	}

	if _, err := uc.Execute(ctx, rex.ID, dto.AnimalRequest{Name: "Rex", Species: "cão"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if checks != 1 {
		t.Fatalf("expected no lookup when clearing the veterinarian, got %d", checks)
	}

	_, err = uc.Execute(ctx, rex.ID, dto.AnimalRequest{
		Name:           "Rex",
		Species:        "cão",
		VeterinarianID: testutil.Ptr(uint(999)),
	})
	if !errors.Is(err, domain.ErrVeterinarianNotFound) {
		t.Fatalf("expected changed reference to be checked, got %v", err)
	}
}

func TestUpdateAnimal_AbsentReferenceClears(t *testing.T) {
	gdb := testutil.NewDB(t)
	uc := NewUpdateAnimal(repository.NewAnimalGormRepository(gdb), nil)

	vet := testutil.SeedVeterinarian(t, gdb, "Ana", "A1")
	rex := testutil.SeedAnimal(t, gdb, "Rex", &vet.ID)

	updated, err := uc.Execute(context.Background(), rex.ID, dto.AnimalRequest{Name: "Rex", Species: "cão"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.VeterinarianID != nil || updated.Veterinarian != nil {
		t.Errorf("expected veterinarian cleared, got %v", updated.VeterinarianID)
	}
}

func TestDeleteAnimal_CascadesAppointments(t *testing.T) {
	gdb := testutil.NewDB(t)
	uc := NewDeleteAnimal(repository.NewAnimalGormRepository(gdb), nil)

	rex := testutil.SeedAnimal(t, gdb, "Rex", nil)
	mia := testutil.SeedAnimal(t, gdb, "Mia", nil)
	for i := 0; i < 3; i++ {
		testutil.SeedAppointment(t, gdb, rex.ID, nil)
	}
	testutil.SeedAppointment(t, gdb, mia.ID, nil)

	res, err := uc.Execute(context.Background(), rex.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if res.AppointmentsDeleted != 3 {
		t.Errorf("expected 3 appointments deleted, got %d", res.AppointmentsDeleted)
	}

	var left int64
	gdb.Model(&models.Appointment{}).Count(&left)
	if left != 1 {
		t.Errorf("expected only the other animal's appointment left, got %d", left)
	}

	if _, err := uc.Execute(context.Background(), rex.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestDeleteAnimal_RollsBackCascadeWhenDeleteFails(t *testing.T) {
	gdb := testutil.NewDB(t)
	uc := NewDeleteAnimal(repository.NewAnimalGormRepository(gdb), nil)

	rex := testutil.SeedAnimal(t, gdb, "Rex", nil)
	for i := 0; i < 2; i++ {
		testutil.SeedAppointment(t, gdb, rex.ID, nil)
	}

	testutil.FailDeletes(t, gdb, "animals")

	if _, err := uc.Execute(context.Background(), rex.ID); !errors.Is(err, testutil.ErrInjected) {
		t.Fatalf("expected injected failure, got %v", err)
	}

	var appointments, animals int64
	gdb.Model(&models.Appointment{}).Count(&appointments)
	gdb.Model(&models.Animal{}).Count(&animals)
	if appointments != 2 || animals != 1 {
		t.Errorf("expected nothing removed, got %d animals and %d appointments", animals, appointments)
	}
}
