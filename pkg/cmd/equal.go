package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/pseudomuto/primitive/pkg/compare"
	"github.com/pseudomuto/primitive/pkg/config"
	"github.com/urfave/cli/v3"
)

// ErrDocumentsDiffer is returned by the equal command when --exit-code is set
// and the documents are not equal.
var ErrDocumentsDiffer = errors.New("documents differ")

// equal creates a CLI command that compares two YAML documents structurally
// and prints true or false.
//
// Modes:
//   - bitwise: floats must have identical bits (compare.Equal)
//   - value: floats may differ by at most --epsilon (compare.ValueEqual)
//   - fold: strings are compared ignoring case (compare.EqualFold)
//
// The defaults for --mode and --epsilon come from the equality section of
// primitive.yaml.
//
// Flags:
//   - --mode, -m: the comparison mode
//   - --epsilon: tolerance used by value mode
//   - --exit-code: exit with status 1 when the documents differ
//
// Examples:
//
//	# Exact comparison
//	primitive equal expected.yaml actual.yaml
//
//	# Allow small rounding differences
//	primitive equal --mode value --epsilon 0.001 expected.yaml actual.yaml
//
//	# Compare against standard input
//	generate-report | primitive equal expected.yaml -
func equal(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "equal",
		Usage:     "Compare two YAML documents structurally",
		ArgsUsage: "<a> <b>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "mode",
				Aliases: []string{"m"},
				Usage:   "comparison mode: bitwise, value or fold",
				Value:   string(cfg.Equality.Mode),
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.FloatFlag{
				Name:  "epsilon",
				Usage: "maximum difference between floats in value mode",
				Value: cfg.Equality.Epsilon(),
			},
			&cli.BoolFlag{
				Name:  "exit-code",
				Usage: "exit with status 1 when the documents differ",
			},
		},
		Before: requireArgs(2, "<a> <b>"),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			mode, err := config.ParseMode(cmd.String("mode"))
			if err != nil {
				return err
			}

			a, err := loadDocument(cmd.Args().Get(0))
			if err != nil {
				return err
			}

			b, err := loadDocument(cmd.Args().Get(1))
			if err != nil {
				return err
			}

			epsilon := cmd.Float("epsilon")
			slog.Debug("Comparing documents",
				"a", cmd.Args().Get(0),
				"b", cmd.Args().Get(1),
				"mode", mode,
				"epsilon", epsilon,
			)

			result := equalDocuments(a, b, mode, epsilon)
			if _, err := fmt.Fprintln(cmd.Root().Writer, result); err != nil {
				return errors.Wrap(err, "failed to write result")
			}

			if !result && cmd.Bool("exit-code") {
				return ErrDocumentsDiffer
			}

			return nil
		},
	}
}

func equalDocuments(a, b any, mode config.Mode, epsilon float64) bool {
	switch mode {
	case config.ModeValue:
		return compare.ValueEqual(a, b, epsilon)
	case config.ModeFold:
		return compare.EqualFold(a, b)
	default:
		return compare.Equal(a, b)
	}
}
