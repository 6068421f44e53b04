package config

import (
	"os"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Helper function to reset pflag.CommandLine for testing
func resetFlags() {
	pflag.CommandLine = pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	viper.Reset()
}

// Helper function to set os.Args for testing
func setArgs(args []string) {
	os.Args = args
}

// Helper function to clear environment variables
func clearEnvVars() {
	os.Unsetenv("FNOL_DIR")
	os.Unsetenv("FNOL_LOGLEVEL")
	os.Unsetenv("FNOL_MAXFILESIZE")
	os.Unsetenv("FNOL_FASTTRACK")
	os.Unsetenv("FNOL_MANDATORY")
	os.Unsetenv("FNOL_FRAUDKEYWORDS")
	os.Unsetenv("FNOL_MAXDESCRIPTION")
}

func TestLoadFromFlags_DefaultConfig(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
		resetFlags()
		clearEnvVars()
	}()

	setArgs([]string{"fnol-mcp"})
	resetFlags()
	clearEnvVars()

	cfg, err := LoadFromFlags()
	if err != nil {
		t.Fatalf("LoadFromFlags() unexpected error: %v", err)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("LoadFromFlags() LogLevel = %v, want %v", cfg.LogLevel, "info")
	}
	if cfg.MaxFileSize != 100*1024*1024 {
		t.Errorf("LoadFromFlags() MaxFileSize = %v, want %v", cfg.MaxFileSize, 100*1024*1024)
	}
	if cfg.FastTrackThreshold != DefaultFastTrackThreshold {
		t.Errorf("LoadFromFlags() FastTrackThreshold = %v, want %v", cfg.FastTrackThreshold, DefaultFastTrackThreshold)
	}
	if cfg.MaxDescriptionLength != DefaultMaxDescriptionLength {
		t.Errorf("LoadFromFlags() MaxDescriptionLength = %v, want %v", cfg.MaxDescriptionLength, DefaultMaxDescriptionLength)
	}
	if len(cfg.MandatoryFields) == 0 {
		t.Error("LoadFromFlags() MandatoryFields should not be empty")
	}
	// ClaimsDirectory should be current working directory
	if cfg.ClaimsDirectory == "" {
		t.Error("LoadFromFlags() ClaimsDirectory should not be empty")
	}
}

func TestLoadFromFlags_ValidFlags(t *testing.T) {
	tests := []struct {
		name               string
		argsTemplate       []string
		wantLogLevel       string
		wantMaxFileSize    int64
		wantFastTrack      float64
		wantMaxDescription int
	}{
		{
			name:               "custom directory only",
			argsTemplate:       []string{"fnol-mcp", "--dir=%s"},
			wantLogLevel:       "info",
			wantMaxFileSize:    100 * 1024 * 1024,
			wantFastTrack:      25000.00,
			wantMaxDescription: 500,
		},
		{
			name:               "debug logging",
			argsTemplate:       []string{"fnol-mcp", "--loglevel=debug", "--dir=%s"},
			wantLogLevel:       "debug",
			wantMaxFileSize:    100 * 1024 * 1024,
			wantFastTrack:      25000.00,
			wantMaxDescription: 500,
		},
		{
			name:               "custom max file size",
			argsTemplate:       []string{"fnol-mcp", "--maxfilesize=52428800", "--dir=%s"},
			wantLogLevel:       "info",
			wantMaxFileSize:    50 * 1024 * 1024,
			wantFastTrack:      25000.00,
			wantMaxDescription: 500,
		},
		{
			name:               "lowered fast-track threshold",
			argsTemplate:       []string{"fnol-mcp", "--fasttrack=10000.50", "--dir=%s"},
			wantLogLevel:       "info",
			wantMaxFileSize:    100 * 1024 * 1024,
			wantFastTrack:      10000.50,
			wantMaxDescription: 500,
		},
		{
			name:               "shorter descriptions",
			argsTemplate:       []string{"fnol-mcp", "--maxdescription=120", "--dir=%s"},
			wantLogLevel:       "info",
			wantMaxFileSize:    100 * 1024 * 1024,
			wantFastTrack:      25000.00,
			wantMaxDescription: 120,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			originalArgs := os.Args
			defer func() {
				os.Args = originalArgs
				resetFlags()
				clearEnvVars()
			}()

			tempDir := t.TempDir()
			args := make([]string, len(tt.argsTemplate))
			for i, arg := range tt.argsTemplate {
				if arg == "--dir=%s" {
					args[i] = "--dir=" + tempDir
				} else {
					args[i] = arg
				}
			}

			setArgs(args)
			resetFlags()
			clearEnvVars()

			cfg, err := LoadFromFlags()
			if err != nil {
				t.Fatalf("LoadFromFlags() unexpected error: %v", err)
			}

			if cfg.LogLevel != tt.wantLogLevel {
				t.Errorf("LoadFromFlags() LogLevel = %v, want %v", cfg.LogLevel, tt.wantLogLevel)
			}
			if cfg.MaxFileSize != tt.wantMaxFileSize {
				t.Errorf("LoadFromFlags() MaxFileSize = %v, want %v", cfg.MaxFileSize, tt.wantMaxFileSize)
			}
			if cfg.FastTrackThreshold != tt.wantFastTrack {
				t.Errorf("LoadFromFlags() FastTrackThreshold = %v, want %v", cfg.FastTrackThreshold, tt.wantFastTrack)
			}
			if cfg.MaxDescriptionLength != tt.wantMaxDescription {
				t.Errorf("LoadFromFlags() MaxDescriptionLength = %v, want %v", cfg.MaxDescriptionLength, tt.wantMaxDescription)
			}
			if cfg.ClaimsDirectory != tempDir {
				t.Errorf("LoadFromFlags() ClaimsDirectory = %v, want %v", cfg.ClaimsDirectory, tempDir)
			}
		})
	}
}

func TestLoadFromFlags_MandatoryFieldOverride(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
		resetFlags()
		clearEnvVars()
	}()

	tempDir := t.TempDir()
	setArgs([]string{"fnol-mcp", "--dir=" + tempDir, "--mandatory=policy_number,incident_date"})
	resetFlags()
	clearEnvVars()

	cfg, err := LoadFromFlags()
	if err != nil {
		t.Fatalf("LoadFromFlags() unexpected error: %v", err)
	}

	want := []string{"policy_number", "incident_date"}
	if len(cfg.MandatoryFields) != len(want) {
		t.Fatalf("LoadFromFlags() MandatoryFields = %v, want %v", cfg.MandatoryFields, want)
	}
	for i, field := range want {
		if cfg.MandatoryFields[i] != field {
			t.Errorf("LoadFromFlags() MandatoryFields[%d] = %v, want %v", i, cfg.MandatoryFields[i], field)
		}
	}
}

func TestLoadFromFlags_EnvironmentVariables(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name:    "log level from env",
			envVars: map[string]string{"FNOL_LOGLEVEL": "debug"},
			validate: func(t *testing.T, cfg *Config) {
				if cfg.LogLevel != "debug" {
					t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
				}
			},
		},
		{
			name:    "fast-track threshold from env",
			envVars: map[string]string{"FNOL_FASTTRACK": "5000"},
			validate: func(t *testing.T, cfg *Config) {
				if cfg.FastTrackThreshold != 5000 {
					t.Errorf("FastTrackThreshold = %v, want 5000", cfg.FastTrackThreshold)
				}
			},
		},
		{
			name:    "max file size from env",
			envVars: map[string]string{"FNOL_MAXFILESIZE": "1048576"},
			validate: func(t *testing.T, cfg *Config) {
				if cfg.MaxFileSize != 1048576 {
					t.Errorf("MaxFileSize = %v, want 1048576", cfg.MaxFileSize)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			originalArgs := os.Args
			defer func() {
				os.Args = originalArgs
				resetFlags()
				clearEnvVars()
			}()

			setArgs([]string{"fnol-mcp", "--dir=" + t.TempDir()})
			resetFlags()
			clearEnvVars()
			for key, value := range tt.envVars {
				os.Setenv(key, value)
			}

			cfg, err := LoadFromFlags()
			if err != nil {
				t.Fatalf("LoadFromFlags() unexpected error: %v", err)
			}

			tt.validate(t, cfg)
		})
	}
}

func TestLoadFromFlags_FlagOverridesEnvironment(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
		resetFlags()
		clearEnvVars()
	}()

	setArgs([]string{"fnol-mcp", "--dir=" + t.TempDir(), "--fasttrack=15000"})
	resetFlags()
	clearEnvVars()
	os.Setenv("FNOL_FASTTRACK", "5000")

	cfg, err := LoadFromFlags()
	if err != nil {
		t.Fatalf("LoadFromFlags() unexpected error: %v", err)
	}

	if cfg.FastTrackThreshold != 15000 {
		t.Errorf("FastTrackThreshold = %v, want flag value 15000", cfg.FastTrackThreshold)
	}
}

func TestLoadFromFlags_InvalidConfiguration(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{
			name: "invalid log level",
			args: []string{"fnol-mcp", "--loglevel=verbose"},
		},
		{
			name: "zero max file size",
			args: []string{"fnol-mcp", "--maxfilesize=0"},
		},
		{
			name: "negative fast-track threshold",
			args: []string{"fnol-mcp", "--fasttrack=-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			originalArgs := os.Args
			defer func() {
				os.Args = originalArgs
				resetFlags()
				clearEnvVars()
			}()

			setArgs(append(tt.args, "--dir="+t.TempDir()))
			resetFlags()
			clearEnvVars()

			if _, err := LoadFromFlags(); err == nil {
				t.Error("LoadFromFlags() expected error, got nil")
			}
		})
	}
}

func TestCheckVersionFlag(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{name: "no version flag", args: []string{"fnol-mcp"}, wantErr: false},
		{name: "long version flag", args: []string{"fnol-mcp", "--version"}, wantErr: true},
		{name: "short version flag", args: []string{"fnol-mcp", "-v"}, wantErr: true},
		{name: "single dash version flag", args: []string{"fnol-mcp", "-version"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			originalArgs := os.Args
			defer func() { os.Args = originalArgs }()

			setArgs(tt.args)
			err := checkVersionFlag()
			if (err != nil) != tt.wantErr {
				t.Errorf("checkVersionFlag() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
