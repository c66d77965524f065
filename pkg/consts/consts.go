package consts

import "os"

const (
	// ConfigFile is the config file looked up in the working directory
	ConfigFile = "primitive.yaml"

	// ConfigEnvVar overrides the location of the config file
	ConfigEnvVar = "PRIMITIVE_CONFIG"

	// DefaultEqualityMode is used when the config does not set equality.mode
	DefaultEqualityMode = "bitwise"

	// DefaultEpsilon is the tolerance for value equality when the config does not set one
	DefaultEpsilon = 1e-9

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)
)
