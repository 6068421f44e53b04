package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/clearclaim/fnol-triage/internal/claims"
)

const (
	// Default values
	DefaultLogLevel             = "info"
	DefaultMaxFileSize          = 100 * 1024 * 1024 // 100MB
	DefaultFastTrackThreshold   = 25000.00
	DefaultMaxDescriptionLength = 500

	// Directory permissions
	DefaultDirPerm = 0o750
)

// Config holds all configuration for the FNOL triage tools
type Config struct {
	// Document configuration
	ClaimsDirectory string
	MaxFileSize     int64 // Maximum claim document size in bytes

	// Routing configuration
	FastTrackThreshold   float64
	MandatoryFields      []string
	FraudKeywords        []string
	InjuryKeywords       []string
	CollisionKeywords    []string
	MaxDescriptionLength int

	// Application configuration
	Version    string
	ServerName string
	LogLevel   string
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	currentDir, err := os.Getwd()
	if err != nil {
		// Fallback to current directory if working directory cannot be determined
		currentDir = "."
	}

	return &Config{
		ClaimsDirectory:      currentDir,
		MaxFileSize:          DefaultMaxFileSize,
		FastTrackThreshold:   DefaultFastTrackThreshold,
		MandatoryFields:      mandatoryFieldNames(),
		FraudKeywords:        append([]string(nil), claims.DefaultFraudKeywords...),
		InjuryKeywords:       append([]string(nil), claims.DefaultInjuryKeywords...),
		CollisionKeywords:    append([]string(nil), claims.DefaultCollisionKeywords...),
		MaxDescriptionLength: DefaultMaxDescriptionLength,
		Version:              "1.0.0",
		ServerName:           "fnol-triage",
		LogLevel:             DefaultLogLevel,
	}
}

// LoadFromFlags parses command line flags and returns a configuration
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	// Check for version flag before parsing
	if err := checkVersionFlag(); err != nil {
		return nil, err
	}

	pflag.Parse()

	populateConfigFromViper(cfg)

	// Expand paths if needed
	if cfg.ClaimsDirectory != "" {
		if expandedPath, err := filepath.Abs(cfg.ClaimsDirectory); err == nil {
			cfg.ClaimsDirectory = expandedPath
		}
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults
func setupViperEnvironment(cfg *Config) {
	// Set environment variable prefix
	viper.SetEnvPrefix("FNOL")
	viper.AutomaticEnv()

	viper.SetDefault("dir", cfg.ClaimsDirectory)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
	viper.SetDefault("fasttrack", cfg.FastTrackThreshold)
	viper.SetDefault("mandatory", cfg.MandatoryFields)
	viper.SetDefault("fraudkeywords", cfg.FraudKeywords)
	viper.SetDefault("injurykeywords", cfg.InjuryKeywords)
	viper.SetDefault("collisionkeywords", cfg.CollisionKeywords)
	viper.SetDefault("maxdescription", cfg.MaxDescriptionLength)
}

// defineCommandLineFlags sets up all command line flags
func defineCommandLineFlags(cfg *Config) {
	pflag.String("dir", cfg.ClaimsDirectory, "Directory containing claim documents")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum claim document size in bytes")
	pflag.Float64("fasttrack", cfg.FastTrackThreshold, "Damage estimate below which claims are fast-tracked")
	pflag.StringSlice("mandatory", cfg.MandatoryFields, "Mandatory claim fields checked during validation")
	pflag.StringSlice("fraudkeywords", cfg.FraudKeywords, "Keywords that flag a claim for investigation")
	pflag.StringSlice("injurykeywords", cfg.InjuryKeywords, "Keywords that classify a claim as injury")
	pflag.StringSlice("collisionkeywords", cfg.CollisionKeywords, "Keywords that classify a vehicle claim as collision")
	pflag.Int("maxdescription", cfg.MaxDescriptionLength, "Maximum length of the extracted incident description")
}

// bindFlagsToViper binds command line flags to viper configuration
func bindFlagsToViper() {
	_ = viper.BindPFlag("dir", pflag.Lookup("dir"))
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
	_ = viper.BindPFlag("maxfilesize", pflag.Lookup("maxfilesize"))
	_ = viper.BindPFlag("fasttrack", pflag.Lookup("fasttrack"))
	_ = viper.BindPFlag("mandatory", pflag.Lookup("mandatory"))
	_ = viper.BindPFlag("fraudkeywords", pflag.Lookup("fraudkeywords"))
	_ = viper.BindPFlag("injurykeywords", pflag.Lookup("injurykeywords"))
	_ = viper.BindPFlag("collisionkeywords", pflag.Lookup("collisionkeywords"))
	_ = viper.BindPFlag("maxdescription", pflag.Lookup("maxdescription"))
}

// setupUsageMessage configures the custom usage message
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nFNOL Triage - first notice of loss claim extraction and routing\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                                  # stdio mode, current directory (default)\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --dir=/path/to/claims            # stdio mode with custom directory\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --fasttrack=10000                # lower the fast-track threshold\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  FNOL_DIR                Claims directory\n")
		fmt.Fprintf(os.Stderr, "  FNOL_LOGLEVEL           Log level\n")
		fmt.Fprintf(os.Stderr, "  FNOL_MAXFILESIZE        Maximum file size\n")
		fmt.Fprintf(os.Stderr, "  FNOL_FASTTRACK          Fast-track damage threshold\n")
		fmt.Fprintf(os.Stderr, "  FNOL_FRAUDKEYWORDS      Fraud keywords (comma separated)\n")
	}
}

// checkVersionFlag checks if version flag was requested
func checkVersionFlag() error {
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			return fmt.Errorf("version requested")
		}
	}
	return nil
}

// populateConfigFromViper fills the config struct with values from viper
func populateConfigFromViper(cfg *Config) {
	cfg.ClaimsDirectory = viper.GetString("dir")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
	cfg.FastTrackThreshold = viper.GetFloat64("fasttrack")
	cfg.MandatoryFields = viper.GetStringSlice("mandatory")
	cfg.FraudKeywords = viper.GetStringSlice("fraudkeywords")
	cfg.InjuryKeywords = viper.GetStringSlice("injurykeywords")
	cfg.CollisionKeywords = viper.GetStringSlice("collisionkeywords")
	cfg.MaxDescriptionLength = viper.GetInt("maxdescription")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.ClaimsDirectory == "" {
		return errors.New("claims directory cannot be empty")
	}

	// Check if claims directory exists, create if it doesn't
	if _, err := os.Stat(c.ClaimsDirectory); os.IsNotExist(err) {
		if err := os.MkdirAll(c.ClaimsDirectory, DefaultDirPerm); err != nil {
			return fmt.Errorf("cannot create claims directory %s: %w", c.ClaimsDirectory, err)
		}
	} else if err != nil {
		return fmt.Errorf("cannot access claims directory %s: %w", c.ClaimsDirectory, err)
	}

	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	if c.FastTrackThreshold < 0 {
		return errors.New("fast-track threshold cannot be negative")
	}

	if len(c.MandatoryFields) == 0 {
		return errors.New("mandatory field list cannot be empty")
	}

	if c.MaxDescriptionLength < 0 {
		return errors.New("maximum description length cannot be negative")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// ClaimsConfig builds the pipeline configuration from the loaded settings
func (c *Config) ClaimsConfig() claims.Config {
	mandatory := make([]claims.FieldName, 0, len(c.MandatoryFields))
	for _, name := range c.MandatoryFields {
		mandatory = append(mandatory, claims.FieldName(name))
	}

	return claims.Config{
		FastTrackThreshold:   c.FastTrackThreshold,
		MandatoryFields:      mandatory,
		FraudKeywords:        c.FraudKeywords,
		InjuryKeywords:       c.InjuryKeywords,
		CollisionKeywords:    c.CollisionKeywords,
		MaxDescriptionLength: c.MaxDescriptionLength,
	}
}

// IsDebug returns true if debug logging is enabled
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{ClaimsDirectory: %s, LogLevel: %s, MaxFileSize: %d, FastTrackThreshold: %.2f}",
		c.ClaimsDirectory, c.LogLevel, c.MaxFileSize, c.FastTrackThreshold)
}

func mandatoryFieldNames() []string {
	fields := claims.DefaultMandatoryFields
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, string(f))
	}
	return names
}
