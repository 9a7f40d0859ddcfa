package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Report  ReportConfig  `yaml:"report" envconfig:"REPORT"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Format   string `yaml:"format" envconfig:"FORMAT"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// ReportConfig contains report generation configuration
type ReportConfig struct {
	// TopN is the number of entries in the top-performers section.
	TopN int `yaml:"top_n" envconfig:"TOP_N"`
	// FilenamePrefix is the prefix of the exported CSV filename; the
	// run timestamp is appended to it.
	FilenamePrefix string `yaml:"filename_prefix" envconfig:"FILENAME_PREFIX"`
	// OutputDir overrides the default reports directory when set.
	OutputDir string `yaml:"output_dir" envconfig:"OUTPUT_DIR"`
	// ExcelCompatible prefixes exported CSV files with a UTF-8 BOM so
	// Excel opens them correctly.
	ExcelCompatible bool `yaml:"excel_compatible" envconfig:"EXCEL_COMPATIBLE"`
}

// DefaultConfig returns the configuration used when neither the config file
// nor the environment overrides a value.
func DefaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: "logs/stockcli.log",
		},
		Report: ReportConfig{
			TopN:            5,
			FilenamePrefix:  "stock_report",
			ExcelCompatible: true,
		},
	}
}

// Load loads configuration in three layers: built-in defaults, then an
// optional YAML config file, then environment variables. Later layers win.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	configFile := getConfigFilePath()
	if _, err := os.Stat(configFile); err == nil {
		if err := loadFromFile(configFile, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := envconfig.Process("STOCKCLI", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile overlays configuration from a YAML file; keys absent from
// the file keep their current values.
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// getConfigFilePath returns the config file location, overridable via
// STOCKCLI_CONFIG.
func getConfigFilePath() string {
	if path := os.Getenv("STOCKCLI_CONFIG"); path != "" {
		return path
	}
	return "config.yaml"
}

// validate checks configuration invariants
func (c *Config) validate() error {
	if c.Report.TopN <= 0 {
		return fmt.Errorf("report.top_n must be positive, got %d", c.Report.TopN)
	}
	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("logging.format must be json or text, got %q", c.Logging.Format)
	}
	switch c.Logging.Output {
	case "console", "file", "both":
	default:
		return fmt.Errorf("logging.output must be console, file or both, got %q", c.Logging.Output)
	}
	return nil
}
