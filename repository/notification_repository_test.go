package repository

import (
	"context"
	"strings"
	"testing"

	"fasttrackLogistics/internal/db"
	"fasttrackLogistics/models"
)

func TestNotificationRepository_Insert_Filters(t *testing.T) {
	d, err := db.Open("file:notifrepo?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	notifications := NewNotificationRepository(d)
	ctx := context.Background()

	n := &models.Notification{
		RecipientType: models.RecipientCustomer,
		RecipientID:   "SHP-AAAA1111",
		Message:       "Your shipment 'FT-4001' has been successfully created and is now Pending. Current Location: Warehouse A",
	}
	if err := notifications.Insert(ctx, n); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if !strings.HasPrefix(n.NotificationID, "NOT-") {
		t.Fatalf("expected NOT- prefixed id, got %q", n.NotificationID)
	}
	if n.Status != models.NotificationStatusSent || n.Timestamp == "" {
		t.Fatalf("expected SENT status and timestamp, got: %+v", n)
	}

	urgent := &models.Notification{
		RecipientType: models.RecipientPersonnel,
		RecipientID:   "SHP-AAAA1111",
		Message:       "URGENT: New shipment 'FT-4001' (Box) added on route 'North Loop'.",
		IsUrgent:      true,
	}
	if err := notifications.Insert(ctx, urgent); err != nil {
		t.Fatalf("insert urgent: %v", err)
	}

	all, err := notifications.FindAll(ctx)
	if err != nil || len(all) != 2 {
		t.Fatalf("FindAll: %v len=%d", err, len(all))
	}

	customers, err := notifications.FindByRecipientType(ctx, models.RecipientCustomer)
	if err != nil || len(customers) != 1 || customers[0].NotificationID != n.NotificationID {
		t.Fatalf("FindByRecipientType customer: %v %+v", err, customers)
	}

	urgents, err := notifications.FindByUrgency(ctx, true)
	if err != nil || len(urgents) != 1 || !urgents[0].IsUrgent {
		t.Fatalf("FindByUrgency: %v %+v", err, urgents)
	}
}
