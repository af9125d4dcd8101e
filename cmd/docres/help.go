package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docres <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  export     Export template bundles and apply themes")
	fmt.Fprintln(w, "  list       List the merged template resource paths")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'docres help <command>' for details on a specific command.")
}

// printExportUsage prints usage for the export command.
func printExportUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docres export [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Export template bundles into an output directory (overwriting), then")
	fmt.Fprintln(w, "apply theme bundles under the --overwrite-themes policy.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Bundles:")
	fmt.Fprintln(w, "  -t, --template <name>     Template bundle (repeatable, ordered)")
	fmt.Fprintln(w, "      --theme <name>        Theme bundle (repeatable, ordered)")
	fmt.Fprintln(w, "  -b, --base-dir <dir>      User search directory (default: working directory)")
	fmt.Fprintln(w, "      --install-root <dir>  Install search root (default: executable directory)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory")
	fmt.Fprintln(w, "  -f, --filter <glob>       Only export matching relative paths")
	fmt.Fprintln(w, "      --overwrite-themes    Overwrite existing files when applying themes")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Common:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show warnings and errors")
	fmt.Fprintln(w, "  -v, --verbose             Show phase markers and debug detail")
}

// printListUsage prints usage for the list command.
func printListUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docres list [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Resolve the configured template bundles and print the merged entry")
	fmt.Fprintln(w, "paths, one per line. Nothing is written to disk.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -t, --template <name>     Template bundle (repeatable, ordered)")
	fmt.Fprintln(w, "  -b, --base-dir <dir>      User search directory (default: working directory)")
	fmt.Fprintln(w, "      --install-root <dir>  Install search root (default: executable directory)")
	fmt.Fprintln(w, "  -f, --filter <glob>       Only list matching relative paths")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
}

// runHelp shows help for a command.
func runHelp(args []string, deps *Dependencies) {
	if len(args) == 0 {
		printUsage(deps.Stdout)
		return
	}
	switch args[0] {
	case "export":
		printExportUsage(deps.Stdout)
	case "list":
		printListUsage(deps.Stdout)
	default:
		printUsage(deps.Stdout)
	}
}
