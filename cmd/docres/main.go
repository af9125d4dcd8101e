package main

import (
	"fmt"
	"os"
	"slices"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Configure GOMAXPROCS with conditional logging.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	verbose := slices.Contains(os.Args, "-v") || slices.Contains(os.Args, "--verbose")
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(run(os.Args[1:], DefaultDeps()))
}

// run dispatches to a subcommand and maps the outcome to an exit code.
func run(args []string, deps *Dependencies) int {
	if len(args) == 0 {
		printUsage(deps.Stderr)
		return ExitUsage
	}

	switch args[0] {
	case "export":
		flags, err := parseExportFlags(args[1:])
		if err != nil {
			return ExitUsage
		}
		if err := runExport(flags, deps); err != nil {
			fmt.Fprintln(deps.Stderr, err)
			return exitCodeFor(err)
		}
		return ExitSuccess
	case "list":
		flags, err := parseListFlags(args[1:])
		if err != nil {
			return ExitUsage
		}
		if err := runList(flags, deps); err != nil {
			fmt.Fprintln(deps.Stderr, err)
			return exitCodeFor(err)
		}
		return ExitSuccess
	case "version", "--version":
		fmt.Fprintf(deps.Stdout, "docres %s\n", Version)
		return ExitSuccess
	case "help", "--help", "-h":
		runHelp(args[1:], deps)
		return ExitSuccess
	default:
		fmt.Fprintf(deps.Stderr, "unknown command: %s\n\n", args[0])
		printUsage(deps.Stderr)
		return ExitUsage
	}
}
