package coordinator

import (
	"context"
	"errors"
	"testing"

	"fasttrackLogistics/models"
)

func TestPersonnelLifecycle(t *testing.T) {
	env := newTestEnv(t, "personnel_lifecycle")
	ctx := context.Background()

	p, err := env.coord.AddPersonnel(ctx, PersonnelInput{
		EmployeeID:    "EMP-100",
		Name:          "Omar Khalil",
		ContactNumber: "555-0700",
		Email:         "omar@example.com",
		VehicleType:   "Motorbike",
	})
	if err != nil {
		t.Fatalf("AddPersonnel: %v", err)
	}
	if p.PersonnelID == "" || p.AvailabilityStatus != models.AvailabilityAvailable {
		t.Fatalf("unexpected personnel: %+v", p)
	}

	// Duplicate employee id conflicts.
	if _, err := env.coord.AddPersonnel(ctx, PersonnelInput{
		EmployeeID:    "EMP-100",
		Name:          "Someone Else",
		ContactNumber: "555-0800",
		Email:         "else@example.com",
	}); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got: %v", err)
	}

	// Missing fields fail validation.
	if _, err := env.coord.AddPersonnel(ctx, PersonnelInput{Name: "No ID"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got: %v", err)
	}

	updated, err := env.coord.UpdatePersonnel(ctx, p.PersonnelID, PersonnelInput{
		EmployeeID:         "EMP-100",
		Name:               "Omar Khalil",
		ContactNumber:      "555-0700",
		Email:              "omar@example.com",
		VehicleType:        "Van",
		AvailabilityStatus: string(models.AvailabilityOffDuty),
	})
	if err != nil {
		t.Fatalf("UpdatePersonnel: %v", err)
	}
	if updated.VehicleType != "Van" || updated.AvailabilityStatus != models.AvailabilityOffDuty {
		t.Fatalf("update not applied: %+v", updated)
	}

	if _, err := env.coord.UpdatePersonnel(ctx, "missing", PersonnelInput{
		EmployeeID: "EMP-101", Name: "X", ContactNumber: "1", Email: "x@example.com",
	}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}

	available, err := env.coord.AvailablePersonnel(ctx)
	if err != nil || len(available) != 0 {
		t.Fatalf("expected no available drivers: %v %+v", err, available)
	}
	all, err := env.coord.ListPersonnel(ctx)
	if err != nil || len(all) != 1 {
		t.Fatalf("ListPersonnel: %v len=%d", err, len(all))
	}

	if err := env.coord.DeletePersonnel(ctx, p.PersonnelID); err != nil {
		t.Fatalf("DeletePersonnel: %v", err)
	}
	if err := env.coord.DeletePersonnel(ctx, p.PersonnelID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}
