package db

import "testing"

func TestOpenAppliesMigrations(t *testing.T) {
	d, err := Open("file:dbmigrate?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	for _, table := range []string{"shipments", "delivery_personnel", "deliveries", "notifications"} {
		var name string
		err := d.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		if err != nil {
			t.Fatalf("table %s missing: %v", table, err)
		}
	}

	var count int
	if err := d.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&count); err != nil || count == 0 {
		t.Fatalf("schema_migrations: %v count=%d", err, count)
	}

	// Reopening against the same database applies nothing new.
	d2, err := Open("file:dbmigrate?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	t.Cleanup(func() { _ = d2.Close() })
	var count2 int
	if err := d2.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&count2); err != nil || count2 != count {
		t.Fatalf("expected migrations idempotent: %v %d vs %d", err, count2, count)
	}
}

func TestForeignKeysEnforced(t *testing.T) {
	d, err := Open("file:dbfk?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	_, err = d.Exec(`INSERT INTO deliveries
(delivery_id, shipment_id, scheduled_date, scheduled_time_slot, estimated_arrival_time)
VALUES ('DEL-X', 'SHP-DOES-NOT-EXIST', '2026-01-01', 'Any Time', '2026-01-01 10:00')`)
	if err == nil {
		t.Fatalf("expected foreign key violation")
	}
}
