package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Database.Path != "fasttrack.db" {
		t.Fatalf("default db path: %q", cfg.Database.Path)
	}
	if cfg.HTTP.Address != ":8080" {
		t.Fatalf("default http address: %q", cfg.HTTP.Address)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DB_PATH", "/tmp/test.db")
	t.Setenv("HTTP_ADDRESS", ":9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Database.Path != "/tmp/test.db" || cfg.HTTP.Address != ":9090" {
		t.Fatalf("env not applied: %+v", cfg)
	}
}
