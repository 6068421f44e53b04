package config

import (
	"os"
	"testing"

	"github.com/clearclaim/fnol-triage/internal/claims"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level to be 'info', got '%s'", cfg.LogLevel)
	}

	if cfg.MaxFileSize != 100*1024*1024 {
		t.Errorf("Expected default max file size to be 100MB, got %d", cfg.MaxFileSize)
	}

	if cfg.FastTrackThreshold != 25000.00 {
		t.Errorf("Expected default fast-track threshold to be 25000.00, got %.2f", cfg.FastTrackThreshold)
	}

	if cfg.MaxDescriptionLength != 500 {
		t.Errorf("Expected default description length to be 500, got %d", cfg.MaxDescriptionLength)
	}

	if cfg.ServerName != "fnol-triage" {
		t.Errorf("Expected default server name to be 'fnol-triage', got '%s'", cfg.ServerName)
	}

	if len(cfg.MandatoryFields) != len(claims.DefaultMandatoryFields) {
		t.Errorf("Expected %d mandatory fields, got %d",
			len(claims.DefaultMandatoryFields), len(cfg.MandatoryFields))
	}

	if len(cfg.FraudKeywords) == 0 || len(cfg.InjuryKeywords) == 0 || len(cfg.CollisionKeywords) == 0 {
		t.Error("Expected default keyword lists to be populated")
	}

	// Claims directory defaults to the current working directory
	currentDir, _ := os.Getwd()
	if cfg.ClaimsDirectory != currentDir {
		t.Errorf("Expected default claims directory to be '%s', got '%s'", currentDir, cfg.ClaimsDirectory)
	}
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		cfg := DefaultConfig()
		cfg.ClaimsDirectory = t.TempDir()
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "empty claims directory",
			mutate:  func(c *Config) { c.ClaimsDirectory = "" },
			wantErr: true,
		},
		{
			name:    "zero max file size",
			mutate:  func(c *Config) { c.MaxFileSize = 0 },
			wantErr: true,
		},
		{
			name:    "negative fast-track threshold",
			mutate:  func(c *Config) { c.FastTrackThreshold = -1 },
			wantErr: true,
		},
		{
			name:    "zero fast-track threshold is allowed",
			mutate:  func(c *Config) { c.FastTrackThreshold = 0 },
			wantErr: false,
		},
		{
			name:    "no mandatory fields",
			mutate:  func(c *Config) { c.MandatoryFields = nil },
			wantErr: true,
		},
		{
			name:    "negative description length",
			mutate:  func(c *Config) { c.MaxDescriptionLength = -1 },
			wantErr: true,
		},
		{
			name:    "invalid log level",
			mutate:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Expected error but got none")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestConfigValidateCreatesMissingDirectory(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ClaimsDirectory = t.TempDir() + "/claims/incoming"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	info, err := os.Stat(cfg.ClaimsDirectory)
	if err != nil {
		t.Fatalf("Expected claims directory to be created: %v", err)
	}
	if !info.IsDir() {
		t.Error("Expected created path to be a directory")
	}
}

func TestClaimsConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FastTrackThreshold = 10000
	cfg.MandatoryFields = []string{"policy_number", "incident_date"}
	cfg.FraudKeywords = []string{"staged"}

	pipeline := cfg.ClaimsConfig()

	if pipeline.FastTrackThreshold != 10000 {
		t.Errorf("FastTrackThreshold = %.2f, want 10000", pipeline.FastTrackThreshold)
	}
	want := []claims.FieldName{claims.FieldPolicyNumber, claims.FieldIncidentDate}
	if len(pipeline.MandatoryFields) != len(want) {
		t.Fatalf("MandatoryFields = %v, want %v", pipeline.MandatoryFields, want)
	}
	for i, f := range want {
		if pipeline.MandatoryFields[i] != f {
			t.Errorf("MandatoryFields[%d] = %s, want %s", i, pipeline.MandatoryFields[i], f)
		}
	}
	if len(pipeline.FraudKeywords) != 1 || pipeline.FraudKeywords[0] != "staged" {
		t.Errorf("FraudKeywords = %v, want [staged]", pipeline.FraudKeywords)
	}
}

func TestConfigString(t *testing.T) {
	cfg := DefaultConfig()
	s := cfg.String()
	if s == "" {
		t.Error("Expected non-empty string representation")
	}
}

func TestIsDebug(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.IsDebug() {
		t.Error("Expected IsDebug to be false for info level")
	}
	cfg.LogLevel = "debug"
	if !cfg.IsDebug() {
		t.Error("Expected IsDebug to be true for debug level")
	}
}
