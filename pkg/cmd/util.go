package cmd

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// loadDocument reads a single YAML document from path. A path of "-" reads
// from standard input.
func loadDocument(path string) (any, error) {
	var (
		content []byte
		err     error
	)

	if path == "-" {
		content, err = io.ReadAll(os.Stdin)
	} else {
		content, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read file: %s", path)
	}

	var doc any
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, errors.Wrapf(err, "failed to parse YAML in file: %s", path)
	}

	return doc, nil
}

// parseScalar types a command line argument with the YAML decoder, so keys
// compare against decoded sequences the way their elements were typed: "7" is
// an int, "0x10" an int, ".inf" a float and "'7'" the string "7". Arguments
// that don't decode to a scalar are returned as given.
func parseScalar(arg string) any {
	var v any
	if err := yaml.Unmarshal([]byte(arg), &v); err != nil {
		return arg
	}

	switch v.(type) {
	case int, int64, uint64, float64, string, bool:
		return v
	default:
		return arg
	}
}

// requireArgs fails unless exactly n positional arguments were given.
func requireArgs(n int, usage string) func(context.Context, *cli.Command) (context.Context, error) {
	return func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
		if cmd.Args().Len() != n {
			return ctx, errors.Errorf("expected %d arguments: %s", n, usage)
		}

		return ctx, nil
	}
}
