package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/primitive/pkg/check"
	"github.com/pseudomuto/primitive/pkg/consts"
	"github.com/pseudomuto/primitive/pkg/utils"
	"gopkg.in/yaml.v3"
)

// Mode selects how the equal command compares documents.
type Mode string

const (
	// ModeBitwise compares floats by their bit pattern (compare.Equal).
	ModeBitwise Mode = "bitwise"
	// ModeValue compares floats within the configured epsilon (compare.ValueEqual).
	ModeValue Mode = "value"
	// ModeFold compares strings ignoring case (compare.EqualFold).
	ModeFold Mode = "fold"
)

type (
	// Equality holds the defaults of the equal command.
	Equality struct {
		// Mode is one of bitwise, value or fold
		Mode Mode `yaml:"mode,omitempty"`

		// Tolerance is the epsilon used by value mode. Unset means
		// consts.DefaultEpsilon, while an explicit 0 demands exact values.
		Tolerance *float64 `yaml:"epsilon,omitempty"`
	}

	// Search holds the defaults of the bound command.
	Search struct {
		// VerifySorted makes the CLI reject unsorted input before searching
		VerifySorted bool `yaml:"verify_sorted,omitempty"`
	}

	// Config represents the primitive CLI configuration.
	Config struct {
		Equality Equality `yaml:"equality"`
		Search   Search   `yaml:"search"`
	}
)

// Epsilon returns the configured tolerance or consts.DefaultEpsilon.
func (e Equality) Epsilon() float64 {
	return utils.Deref(e.Tolerance, consts.DefaultEpsilon)
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig parses a configuration from the provided io.Reader.
//
// The reader must hold a YAML document. Missing fields are filled with the
// defaults from pkg/consts, and the result is validated.
//
// Example:
//
//	cfg, err := config.LoadConfig(strings.NewReader(`
//	equality:
//	  mode: value
//	  epsilon: 0.001
//	search:
//	  verify_sorted: true
//	`))
//	if err != nil {
//		return err
//	}
//
//	fmt.Println(cfg.Equality.Epsilon()) // 0.001
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &cfg, nil
}

// LoadConfigFile loads a configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

// ParseMode converts s into a Mode, failing for unknown names.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	switch m {
	case ModeBitwise, ModeValue, ModeFold:
		return m, nil
	}

	return "", check.Argument(false, "unknown equality mode %q (want bitwise, value or fold)", s)
}

func (c *Config) applyDefaults() {
	if c.Equality.Mode == "" {
		c.Equality.Mode = Mode(consts.DefaultEqualityMode)
	}
}

func (c *Config) validate() error {
	if _, err := ParseMode(string(c.Equality.Mode)); err != nil {
		return err
	}

	return check.Argument(c.Equality.Epsilon() >= 0, "epsilon must not be negative: %v", c.Equality.Epsilon())
}
