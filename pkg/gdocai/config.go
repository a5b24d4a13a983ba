package gdocai

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config identifies the Document AI processor to call
type Config struct {
	ProjectID   string `yaml:"project_id"`
	Location    string `yaml:"location"` // e.g. "us" or "eu"
	ProcessorID string `yaml:"processor_id"`
}

// LoadConfig reads a YAML file with the Document AI settings
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse Document AI config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid Document AI config %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks every field is set
func (c *Config) Validate() error {
	switch {
	case c.ProjectID == "":
		return fmt.Errorf("project_id is required")
	case c.Location == "":
		return fmt.Errorf("location is required")
	case c.ProcessorID == "":
		return fmt.Errorf("processor_id is required")
	}
	return nil
}

// ProcessorName returns the resource name of the processor
func (c *Config) ProcessorName() string {
	return fmt.Sprintf("projects/%s/locations/%s/processors/%s", c.ProjectID, c.Location, c.ProcessorID)
}

// Endpoint returns the regional API endpoint
func (c *Config) Endpoint() string {
	return fmt.Sprintf("%s-documentai.googleapis.com:443", c.Location)
}
