package ids

import (
	"strings"
	"testing"
)

func TestPrefixesAndShape(t *testing.T) {
	cases := []struct {
		gen    func() string
		prefix string
	}{
		{NewShipmentID, "SHP-"},
		{NewDeliveryID, "DEL-"},
		{NewNotificationID, "NOT-"},
	}
	for _, c := range cases {
		id := c.gen()
		if !strings.HasPrefix(id, c.prefix) {
			t.Fatalf("expected prefix %q, got %q", c.prefix, id)
		}
		tok := strings.TrimPrefix(id, c.prefix)
		if len(tok) != 8 || tok != strings.ToUpper(tok) {
			t.Fatalf("expected 8-char uppercase token, got %q", tok)
		}
	}

	if id := NewPersonnelID(); strings.Contains(id, "-") == false || len(id) != 36 {
		t.Fatalf("expected plain uuid personnel id, got %q", id)
	}
	if id := NewEmployeeID(); len(id) != 8 {
		t.Fatalf("expected 8-char employee id, got %q", id)
	}
}

func TestUniqueness(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewShipmentID()
		if seen[id] {
			t.Fatalf("duplicate id generated: %q", id)
		}
		seen[id] = true
	}
}
