package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// DefaultConfigFile is the application config looked up when no --app-config flag is given.
const DefaultConfigFile = "vulturediff.yml"

// Built-in defaults applied when neither flags nor config file provide a value.
const DefaultVultureBin = "vulture"

var (
	DefaultProdPaths = []string{"src"}
	DefaultTestPaths = []string{"tests"}
)

// Config is the application-level configuration. All directives are optional;
// zero values fall back to built-in defaults.
type Config struct {
	Logger  Logger  `yaml:"logger"`
	Vulture Vulture `yaml:"vulture"`
}

type Logger struct {
	Level string `yaml:"level"`
}

// Vulture holds overridable defaults for the external scanner invocation.
type Vulture struct {
	Bin       string   `yaml:"bin"`
	ProdPaths []string `yaml:"prod_paths"`
	TestPaths []string `yaml:"test_paths"`
}

// ValidateConfigPath checks that the given path points at a readable regular file.
func ValidateConfigPath(path string) error {
	s, err := os.Stat(path)
	if err != nil {
		return err
	}
	if s.IsDir() {
		return fmt.Errorf("'%s' is a directory, not a file", path)
	}
	return nil
}

// LoadYAML decodes a YAML file into the given structure.
func LoadYAML(configPath string, data interface{}) error {
	if err := ValidateConfigPath(configPath); err != nil {
		return err
	}

	file, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	if err := d.Decode(data); err != nil {
		return fmt.Errorf("failed to decode config file %q: %w", configPath, err)
	}

	return nil
}

// LoadConfig loads the application config from the given path. When path is
// empty the default file is used and its absence is not an error; an explicitly
// requested file must exist.
func LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	config := &Config{}
	if err := LoadYAML(path, config); err != nil {
		if !explicit && os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	return config, nil
}

// VultureBin returns the configured scanner binary or the built-in default.
func (c *Config) VultureBin() string {
	if c != nil && c.Vulture.Bin != "" {
		return c.Vulture.Bin
	}
	return DefaultVultureBin
}

// ProdPaths returns the configured production path set or the built-in default.
func (c *Config) ProdPaths() []string {
	if c != nil && len(c.Vulture.ProdPaths) > 0 {
		return c.Vulture.ProdPaths
	}
	return DefaultProdPaths
}

// TestPaths returns the configured test path set or the built-in default.
func (c *Config) TestPaths() []string {
	if c != nil && len(c.Vulture.TestPaths) > 0 {
		return c.Vulture.TestPaths
	}
	return DefaultTestPaths
}
