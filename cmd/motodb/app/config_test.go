package app

import (
	"testing"
)

// TestLoadConfig verifies basic config loading and defaults.
func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if config == nil {
		t.Fatal("LoadConfig() returned nil config")
	}

	if config.SourceDir == "" {
		t.Error("SourceDir not set to default")
	}
	if config.OutputDir == "" {
		t.Error("OutputDir not set to default")
	}
	if config.SchemaFile == "" {
		t.Error("SchemaFile not set to default")
	}
	if config.LogFormat == "" {
		t.Error("LogFormat not set to default")
	}
}

// TestConfig_EnvironmentVariables verifies environment variable loading.
func TestConfig_EnvironmentVariables(t *testing.T) {
	t.Setenv("MOTODB_SOURCE_DIR", "/srv/bikes")
	t.Setenv("MOTODB_OUTPUT_DIR", "/srv/out")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.SourceDir != "/srv/bikes" {
		t.Errorf("SourceDir = %s, want /srv/bikes", config.SourceDir)
	}
	if config.OutputDir != "/srv/out" {
		t.Errorf("OutputDir = %s, want /srv/out", config.OutputDir)
	}
}

// TestConfig_UpdateFromFlags verifies flag precedence.
func TestConfig_UpdateFromFlags(t *testing.T) {
	config := &Config{LogLevel: "info"}

	config.UpdateFromFlags(true, false, true, "debug")

	if !config.Verbose {
		t.Error("Verbose not updated from flags")
	}
	if !config.NoColor {
		t.Error("NoColor not updated from flags")
	}
	if config.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug", config.LogLevel)
	}

	// Empty log level leaves the existing value alone.
	config.UpdateFromFlags(false, true, false, "")
	if config.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug after empty flag", config.LogLevel)
	}
}
