package config

import (
	"os"
	"testing"
)

func TestValidate_InvalidPort(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 0},
		Database: DatabaseConfig{
			Addrs: []string{"localhost:6379"},
		},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_MissingDatabaseAddrs(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
		Database: DatabaseConfig{
			Addrs: []string{},
		},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing database addrs")
	}
}

func TestValidate_NegativeThresholds(t *testing.T) {
	cfg := Config{
		HTTP:       HTTPConfig{Port: 8080},
		Database:   DatabaseConfig{Addrs: []string{"localhost:6379"}},
		Thresholds: ThresholdsConfig{MinScoreRID: -1},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for negative threshold")
	}
}

func TestValidate_ZeroThresholdsOK(t *testing.T) {
	cfg := Config{
		HTTP:     HTTPConfig{Port: 8080},
		Database: DatabaseConfig{Addrs: []string{"localhost:6379"}},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("zero thresholds should validate (defaults apply later): %v", err)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 10 {
		t.Errorf("expected WriteTimeoutSec=10, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Database.ReadinessTimeout != 10 {
		t.Errorf("expected ReadinessTimeout=10, got %d", cfg.Database.ReadinessTimeout)
	}
	if cfg.Index.Name != "events" {
		t.Errorf("expected index name 'events', got %q", cfg.Index.Name)
	}
	if cfg.Index.MaxBatchSize != 1000 {
		t.Errorf("expected MaxBatchSize=1000, got %d", cfg.Index.MaxBatchSize)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP:     HTTPConfig{ReadTimeoutSec: 30, WriteTimeoutSec: 60, ShutdownSec: 5},
		Database: DatabaseConfig{ReadinessTimeout: 15},
		Index:    IndexConfig{Name: "custom-events", MaxBatchSize: 50},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 30 {
		t.Errorf("expected ReadTimeoutSec=30, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 60 {
		t.Errorf("expected WriteTimeoutSec=60, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.Index.Name != "custom-events" {
		t.Errorf("expected index name 'custom-events', got %q", cfg.Index.Name)
	}
	if cfg.Index.MaxBatchSize != 50 {
		t.Errorf("expected MaxBatchSize=50, got %d", cfg.Index.MaxBatchSize)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("EVENTDEX_TEST_PASSWORD", "s3cret")

	in := []byte("password: ${EVENTDEX_TEST_PASSWORD}\nname: ${EVENTDEX_TEST_MISSING:-events}\n")
	out := string(expandEnvVars(in))

	if out != "password: s3cret\nname: events\n" {
		t.Errorf("expanded = %q", out)
	}
}

func TestGetEnv(t *testing.T) {
	old, had := os.LookupEnv("ENV")
	defer func() {
		if had {
			os.Setenv("ENV", old)
		} else {
			os.Unsetenv("ENV")
		}
	}()

	os.Unsetenv("ENV")
	if got := GetEnv(); got != "local" {
		t.Errorf("default env = %q, want local", got)
	}

	os.Setenv("ENV", "prod")
	if got := GetEnv(); got != "prod" {
		t.Errorf("env = %q, want prod", got)
	}
}
