package app

import (
	"testing"

	"github.com/garagekit/motodb/pkg/logging"
)

func TestNew(t *testing.T) {
	application, err := New("1.2.3", "abc123", "2026-01-01")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if application.Version() != "1.2.3" {
		t.Errorf("Version() = %s, want 1.2.3", application.Version())
	}
	if application.Commit() != "abc123" {
		t.Errorf("Commit() = %s, want abc123", application.Commit())
	}
	if application.Config() == nil {
		t.Error("Config() returned nil")
	}
	if application.Logger() == nil {
		t.Error("Logger() returned nil")
	}
}

func TestNewWithOptions(t *testing.T) {
	config := &Config{
		SourceDir:  "bikes",
		OutputDir:  "out",
		SchemaFile: "bike.schema.json",
	}

	application, err := New("dev", "", "", WithConfig(config), WithLogger(&logging.Nop))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if application.SourceDir() != "bikes" {
		t.Errorf("SourceDir() = %s, want bikes", application.SourceDir())
	}
	if application.OutputDir() != "out" {
		t.Errorf("OutputDir() = %s, want out", application.OutputDir())
	}
}

func TestBuilderIsSingleton(t *testing.T) {
	application, err := New("dev", "", "", WithConfig(&Config{
		SourceDir:  t.TempDir(),
		OutputDir:  "out",
		SchemaFile: "motorcycle.schema.json",
	}), WithLogger(&logging.Nop))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	first, err := application.Builder()
	if err != nil {
		t.Fatalf("Builder() failed: %v", err)
	}
	second, err := application.Builder()
	if err != nil {
		t.Fatalf("Builder() failed: %v", err)
	}
	if first != second {
		t.Error("Builder() created a second instance")
	}
}
