package timemath

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// Config represents the timemath CLI configuration
type Config struct {
	Output OutputConfig `yaml:"output"`
	// Now pins the base time for every evaluation (RFC 3339). Empty
	// means the current time is used.
	Now string `yaml:"now"`
}

// OutputConfig represents result rendering settings
type OutputConfig struct {
	// Format is "rfc3339", "rfc3339nano" or "unix".
	Format string `yaml:"format"`
}

// Output format names accepted in configuration and on the command line.
const (
	FormatRFC3339     = "rfc3339"
	FormatRFC3339Nano = "rfc3339nano"
	FormatUnix        = "unix"
)

// LoadConfig loads configuration from the given path. A missing file
// yields the default configuration.
func LoadConfig(configPath string) (*Config, error) {
	// Load .env files first
	if err := loadEnvFiles(); err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := getDefaultConfig()
		expandConfigEnvVars(config)

		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML with strict mode to detect unknown fields
	var config Config

	err = yaml.UnmarshalWithOptions(data, &config, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&config)
	expandConfigEnvVars(&config)

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// validateConfig validates the configuration for common errors
func validateConfig(config *Config) error {
	validFormats := map[string]bool{
		FormatRFC3339:     true,
		FormatRFC3339Nano: true,
		FormatUnix:        true,
	}
	if !validFormats[config.Output.Format] {
		return fmt.Errorf("%w: invalid output format '%s': must be one of rfc3339, rfc3339nano, unix", ErrConfigValidation, config.Output.Format)
	}

	if config.Now != "" {
		if _, err := time.Parse(time.RFC3339, config.Now); err != nil {
			return fmt.Errorf("%w: %q is not RFC 3339: %w", ErrInvalidBaseTime, config.Now, err)
		}
	}

	return nil
}

// BaseTime returns the pinned base time, or ok=false when the clock
// should be used instead.
func (c *Config) BaseTime() (t time.Time, ok bool, err error) {
	if c.Now == "" {
		return time.Time{}, false, nil
	}
	t, err = time.Parse(time.RFC3339, c.Now)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%w: %q is not RFC 3339: %w", ErrInvalidBaseTime, c.Now, err)
	}
	return t.UTC(), true, nil
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format: FormatRFC3339,
		},
	}
}

// applyDefaults fills in missing values
func applyDefaults(config *Config) {
	if config.Output.Format == "" {
		config.Output.Format = FormatRFC3339
	}
}

// loadEnvFiles loads .env files if they exist
func loadEnvFiles() error {
	if fileExists(".env") {
		if err := godotenv.Load(".env"); err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	return nil
}

// expandEnvVars expands environment variables in the format ${VAR} or $VAR
func expandEnvVars(s string) string {
	re1 := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re1.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})

	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[1:])
	})

	return s
}

// expandConfigEnvVars expands environment variables in config
func expandConfigEnvVars(config *Config) {
	config.Output.Format = expandEnvVars(config.Output.Format)
	config.Now = expandEnvVars(config.Now)
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
