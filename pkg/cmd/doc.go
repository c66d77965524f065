// Package cmd provides the CLI commands of the primitive tool.
//
// # Available Commands
//
//   - bound lower|upper|range: binary search a sorted YAML sequence
//   - equal: compare two YAML documents structurally
//
// # Command Structure
//
// Each command is built by a function that receives the loaded
// *config.Config and returns a *cli.Command. The functions are registered
// with fx in the "commands" value group, and Run mounts the group under the
// root command.
//
// # Global Options
//
//   - --verbose, -v: Log debug output
//   - --help, -h: Display command help
//   - --version: Display version information
//
// # Output
//
// Results are written to the root command's writer, one line per result,
// which keeps the commands easy to script:
//
//	$ primitive bound range ids.yaml 3
//	1 4
//	$ primitive equal --mode fold a.yaml b.yaml
//	true
package cmd
