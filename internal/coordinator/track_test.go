package coordinator

import (
	"context"
	"errors"
	"testing"
)

func TestTrackShipment(t *testing.T) {
	env := newTestEnv(t, "track")
	ctx := context.Background()

	s := env.seedShipment(t, "FT-8001", false)
	p := env.seedPersonnel(t, "Driver Fifteen")

	// Before any delivery: shipment only.
	result, err := env.coord.TrackShipment(ctx, "FT-8001")
	if err != nil {
		t.Fatalf("TrackShipment: %v", err)
	}
	if result.Shipment.ShipmentID != s.ShipmentID || result.Delivery != nil || result.Personnel != nil {
		t.Fatalf("unexpected result before delivery: %+v", result)
	}

	if err := env.coord.AssignDriver(ctx, s.ShipmentID, p.PersonnelID); err != nil {
		t.Fatalf("assign: %v", err)
	}
	result, err = env.coord.TrackShipment(ctx, "FT-8001")
	if err != nil {
		t.Fatalf("TrackShipment after assign: %v", err)
	}
	if result.Delivery == nil || result.Personnel == nil || result.Personnel.PersonnelID != p.PersonnelID {
		t.Fatalf("expected delivery and driver joined: %+v", result)
	}

	if _, err := env.coord.TrackShipment(ctx, "FT-NOPE"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
	if _, err := env.coord.TrackShipment(ctx, ""); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got: %v", err)
	}
}
