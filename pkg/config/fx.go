package config

import (
	"os"

	"github.com/pseudomuto/primitive/pkg/consts"
	"go.uber.org/fx"
)

var Module = fx.Module("config", fx.Provide(
	// Loads the file named by $PRIMITIVE_CONFIG, or primitive.yaml from the
	// working directory. Only a missing primitive.yaml falls back to the
	// defaults, so the CLI works without any setup.
	func() (*Config, error) {
		if path := os.Getenv(consts.ConfigEnvVar); path != "" {
			return LoadConfigFile(path)
		}

		if _, err := os.Stat(consts.ConfigFile); os.IsNotExist(err) {
			return Default(), nil
		}

		return LoadConfigFile(consts.ConfigFile)
	},
))
