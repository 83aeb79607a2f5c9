package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config represents the complete pacplan configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Policy  PolicyConfig  `toml:"policy"`
	Output  OutputConfig  `toml:"output"`
}

// GeneralConfig contains general pacplan settings.
type GeneralConfig struct {
	// AutoConfirm skips the pre-execution confirmation prompt when true
	// (like the -y flag).
	AutoConfirm bool `toml:"auto_confirm"`

	// DryRun prints the plan without executing it when true.
	DryRun bool `toml:"dry_run"`

	// MaxIterations overrides the resolve/probe iteration cap when
	// positive.
	MaxIterations int `toml:"max_iterations"`

	// History records executed plans to the history database.
	History bool `toml:"history"`
}

// PolicyConfig contains the default conflict resolution policy. Both
// values are validated at startup, not at first use.
type PolicyConfig struct {
	// Conflict governs conflicts with a removal proposal: yes, no, prompt.
	Conflict string `toml:"conflict"`

	// Prefer governs conflicts between two requested targets:
	// installed, target, first, or package=<name>.
	Prefer string `toml:"prefer"`
}

// OutputConfig contains output formatting settings.
type OutputConfig struct {
	// Color enables colored output (respects NO_COLOR env var).
	Color bool `toml:"color"`

	// Unicode enables unicode symbols in output.
	Unicode bool `toml:"unicode"`

	// Verbose enables detailed output, including per-iteration planning
	// logs.
	Verbose bool `toml:"verbose"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			AutoConfirm:   false,
			DryRun:        false,
			MaxIterations: 0, // use the built-in cap
			History:       true,
		},
		Policy: PolicyConfig{
			Conflict: "prompt",
			Prefer:   "first",
		},
		Output: OutputConfig{
			Color:   true,
			Unicode: true,
			Verbose: false,
		},
	}
}

// Load loads the configuration from the default path.
// If the config file doesn't exist, it returns the default configuration.
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom loads the configuration from a specific path.
// If the config file doesn't exist, it returns the default configuration.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(ConfigPath())
}

// SaveTo writes the configuration to a specific path.
func (c *Config) SaveTo(path string) error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(c)
}

// ShouldUseColor returns true if colored output should be used.
// Respects the NO_COLOR environment variable.
func (c *Config) ShouldUseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return c.Output.Color
}
