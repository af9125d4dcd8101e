package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// bundleFlags holds bundle selection and search path flags.
type bundleFlags struct {
	templates   []string
	themes      []string
	baseDir     string
	installRoot string
}

// exportFlags holds all flags for the export command.
type exportFlags struct {
	common  commonFlags
	bundles bundleFlags

	output             string
	filter             string
	overwriteThemes    bool
	overwriteThemesSet bool // whether --overwrite-themes appeared on the command line
}

// listFlags holds all flags for the list command.
type listFlags struct {
	common  commonFlags
	bundles bundleFlags

	filter string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show warnings and errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show phase markers and debug detail")
}

// addBundleFlags adds bundle selection flags to a FlagSet.
func addBundleFlags(fs *flag.FlagSet, f *bundleFlags) {
	fs.StringArrayVarP(&f.templates, "template", "t", nil, "template bundle name (repeatable, ordered)")
	fs.StringArrayVar(&f.themes, "theme", nil, "theme bundle name (repeatable, ordered)")
	fs.StringVarP(&f.baseDir, "base-dir", "b", "", "user search directory (default: working directory)")
	fs.StringVar(&f.installRoot, "install-root", "", "install search root (default: executable directory)")
}

// parseExportFlags parses export command flags.
func parseExportFlags(args []string) (*exportFlags, error) {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	f := &exportFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.StringVarP(&f.filter, "filter", "f", "", "glob filter on relative paths (e.g. \"**/*.css\")")
	fs.BoolVar(&f.overwriteThemes, "overwrite-themes", false, "overwrite existing files when applying themes")

	addCommonFlags(fs, &f.common)
	addBundleFlags(fs, &f.bundles)

	fs.Usage = func() { printExportUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	f.overwriteThemesSet = fs.Changed("overwrite-themes")

	return f, nil
}

// parseListFlags parses list command flags.
func parseListFlags(args []string) (*listFlags, error) {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	f := &listFlags{}

	fs.StringVarP(&f.filter, "filter", "f", "", "glob filter on relative paths")

	addCommonFlags(fs, &f.common)
	addBundleFlags(fs, &f.bundles)

	fs.Usage = func() { printListUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return f, nil
}
