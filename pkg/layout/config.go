package layout

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config holds the tunables of the reconstruction pipeline
type Config struct {
	Columns             int     `yaml:"-"`                     // 1 or 2, given on the command line
	IndentHeadRate      float64 `yaml:"indent_head_rate"`      // head gap, in character heights, that marks an indent
	IndentTailRate      float64 `yaml:"indent_tail_rate"`      // tail gap, in character heights, that ends a paragraph
	EmptyLineRate       float64 `yaml:"empty_line_rate"`       // line gap, in median widths, that marks a blank line
	BaselinePrefixPages int     `yaml:"baseline_prefix_pages"` // pages sampled for the column baseline
	BodyType            string  `yaml:"body_type"`             // fragment category treated as body text
	Workers             int     `yaml:"workers"`               // parallel page preparation, 0 = unbounded
}

// DefaultConfig returns a config matching the measured behavior on NDL OCR output
func DefaultConfig() Config {
	return Config{
		Columns:             2,
		IndentHeadRate:      0.7,
		IndentTailRate:      1.5,
		EmptyLineRate:       2.0,
		BaselinePrefixPages: 5,
		BodyType:            BodyText,
		Workers:             runtime.NumCPU(),
	}
}

// LoadConfig reads a YAML file over the defaults. Keys missing from the file keep
// their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the tunables are usable
func (c Config) Validate() error {
	if c.Columns != 1 && c.Columns != 2 {
		return fmt.Errorf("column count must be 1 or 2, got %d", c.Columns)
	}
	if c.IndentHeadRate <= 0 || c.IndentTailRate <= 0 || c.EmptyLineRate <= 0 {
		return fmt.Errorf("rates must be positive (head %v, tail %v, empty line %v)",
			c.IndentHeadRate, c.IndentTailRate, c.EmptyLineRate)
	}
	if c.BaselinePrefixPages < 1 {
		return fmt.Errorf("baseline prefix pages must be at least 1, got %d", c.BaselinePrefixPages)
	}
	if c.BodyType == "" {
		return fmt.Errorf("body type must not be empty")
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}
