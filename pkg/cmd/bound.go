package cmd

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/pkg/errors"
	"github.com/pseudomuto/primitive/pkg/config"
	"github.com/pseudomuto/primitive/pkg/search"
	"github.com/pseudomuto/primitive/pkg/utils"
	"github.com/urfave/cli/v3"
)

type (
	boundOp string

	// boundQuery describes one search over a decoded sequence.
	boundQuery struct {
		op     boundOp
		begin  int
		end    int
		verify bool
	}

	elementKind int
)

const (
	opLower boundOp = "lower"
	opUpper boundOp = "upper"
	opRange boundOp = "range"
)

const (
	kindEmpty elementKind = iota
	kindInt
	kindFloat
	kindString
)

// bound creates the command group for binary searching a sorted YAML
// sequence. The file must hold a single sequence of numbers or of strings.
//
// Subcommands:
//   - lower: index of the first element not less than value
//   - upper: index of the first element greater than value
//   - range: both bounds, separated by a space
//
// Flags:
//   - --begin, -b: first index of the searched range (default 0)
//   - --end, -e: index one past the searched range (default: sequence length)
//   - --verify-sorted: reject input that is not sorted ascending
//
// Examples:
//
//	# Where would 42 be inserted?
//	primitive bound lower ids.yaml 42
//
//	# Search only the first 10 elements
//	primitive bound range --end 10 ids.yaml 42
//
// The value is typed by the YAML decoder, exactly like the elements: "7" and
// "0x10" are integers, "7.5" and ".inf" floats, and quoting ("'7'") forces a
// string. Integer sequences searched with a float value are widened to floats.
func bound(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "bound",
		Usage: "Binary search a sorted YAML sequence",
		Commands: []*cli.Command{
			boundCmd(cfg, opLower, "Print the index of the first element not less than value"),
			boundCmd(cfg, opUpper, "Print the index of the first element greater than value"),
			boundCmd(cfg, opRange, "Print the lower and upper bound of value"),
		},
	}
}

func boundCmd(cfg *config.Config, op boundOp, usage string) *cli.Command {
	return &cli.Command{
		Name:      string(op),
		Usage:     usage,
		ArgsUsage: "<file> <value>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "begin",
				Aliases: []string{"b"},
				Usage:   "first index of the searched range",
			},
			&cli.IntFlag{
				Name:        "end",
				Aliases:     []string{"e"},
				Usage:       "index one past the searched range",
				DefaultText: "length of the sequence",
			},
			&cli.BoolFlag{
				Name:  "verify-sorted",
				Usage: "fail when the searched range is not sorted ascending",
				Value: cfg.Search.VerifySorted,
			},
		},
		Before: requireArgs(2, "<file> <value>"),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().Get(0)
			doc, err := loadDocument(path)
			if err != nil {
				return err
			}

			items, ok := doc.([]any)
			if !ok {
				return errors.Errorf("file does not hold a YAML sequence: %s", path)
			}

			q := boundQuery{
				op:     op,
				begin:  int(cmd.Int("begin")),
				end:    len(items),
				verify: cmd.Bool("verify-sorted"),
			}
			if cmd.IsSet("end") {
				q.end = int(cmd.Int("end"))
			}

			slog.Debug("Searching sequence",
				"file", path,
				"op", op,
				"begin", q.begin,
				"end", q.end,
				"length", len(items),
			)

			result, err := runBound(items, cmd.Args().Get(1), q)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.Root().Writer, result)
			return errors.Wrap(err, "failed to write result")
		},
	}
}

// runBound narrows items to a single ordered element type and searches it
// for arg.
func runBound(items []any, arg string, q boundQuery) (string, error) {
	kind, err := kindOf(items)
	if err != nil {
		return "", err
	}

	key := parseScalar(arg)

	switch kind {
	case kindEmpty:
		return searchBound([]string{}, arg, q)
	case kindInt:
		if n, ok := key.(int); ok {
			return searchBound(convert(items, func(v any) int { return v.(int) }), n, q)
		}
		fallthrough
	case kindFloat:
		f, ok := toFloat(key)
		if !ok {
			if utils.IsNumericValue(arg) {
				return "", errors.Errorf("value %q is not a YAML number (spell infinities and NaN as .inf, -.inf and .nan)", arg)
			}
			return "", errors.Errorf("value %q is not a number", arg)
		}
		return searchBound(convert(items, func(v any) float64 { x, _ := toFloat(v); return x }), f, q)
	default:
		s, ok := key.(string)
		if !ok {
			s = arg
		}
		return searchBound(convert(items, func(v any) string { return v.(string) }), s, q)
	}
}

func searchBound[T cmp.Ordered](s []T, key T, q boundQuery) (string, error) {
	if q.verify {
		sorted, err := search.IsSorted(s, q.begin, q.end)
		if err != nil {
			return "", errors.Wrap(err, "invalid search range")
		}
		if !sorted {
			return "", errors.New("sequence is not sorted in ascending order")
		}
	}

	switch q.op {
	case opLower:
		i, err := search.LowerBound(s, q.begin, q.end, key)
		if err != nil {
			return "", errors.Wrap(err, "invalid search range")
		}
		return strconv.Itoa(i), nil
	case opUpper:
		i, err := search.UpperBound(s, q.begin, q.end, key)
		if err != nil {
			return "", errors.Wrap(err, "invalid search range")
		}
		return strconv.Itoa(i), nil
	default:
		lower, upper, err := search.EqualRange(s, q.begin, q.end, key)
		if err != nil {
			return "", errors.Wrap(err, "invalid search range")
		}
		return fmt.Sprintf("%d %d", lower, upper), nil
	}
}

var kindNames = map[elementKind]string{
	kindInt:    "numbers",
	kindFloat:  "numbers",
	kindString: "strings",
}

// kindOf returns the element type shared by items. Integers mixed with floats
// are widened to floats.
func kindOf(items []any) (elementKind, error) {
	kind := kindEmpty
	for i, v := range items {
		var k elementKind
		switch v.(type) {
		case int:
			k = kindInt
		case float64:
			k = kindFloat
		case string:
			k = kindString
		default:
			return kindEmpty, errors.Errorf("element %d (%v) is %s; sequences must hold only numbers or only strings", i, v, describe(v))
		}

		switch {
		case kind == kindEmpty || kind == k:
			kind = k
		case kind != kindString && k != kindString:
			kind = kindFloat
		default:
			return kindEmpty, errors.Errorf("element %d (%v) is %s but earlier elements are %s; sequences must hold only numbers or only strings",
				i, v, describe(v), kindNames[kind])
		}
	}

	return kind, nil
}

// describe names the YAML type of a decoded value.
func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "a boolean"
	case int, float64:
		return "a number"
	case int64, uint64:
		return "an integer out of range"
	case string:
		return "a string"
	case []any:
		return "a sequence"
	case map[string]any, map[any]any:
		return "a mapping"
	default:
		return fmt.Sprintf("a %T", v)
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func convert[T any](items []any, fn func(any) T) []T {
	out := make([]T, len(items))
	for i, v := range items {
		out[i] = fn(v)
	}

	return out
}
