package main

import (
	"fmt"
	"io"
	"log/slog"

	docres "github.com/alnah/go-docres"
	"github.com/alnah/go-docres/internal/config"
	"github.com/alnah/go-docres/internal/fileutil"
)

// defaultConfigName is looked up in the working directory when no --config
// flag is given. Absence is not an error.
const defaultConfigName = "docres"

// exportParams groups the fully merged (config file + flags) parameters.
type exportParams struct {
	templates       []string
	themes          []string
	baseDir         string
	installRoot     string
	output          string
	filter          string
	overwriteThemes bool
}

// runExport resolves parameters, exports template bundles into the output
// directory, then applies any configured themes.
func runExport(flags *exportFlags, deps *Dependencies) error {
	params, err := resolveExportParams(flags)
	if err != nil {
		return err
	}

	mgr, err := newManager(params, newLogger(deps.Stderr, flags.common))
	if err != nil {
		return err
	}

	wrote, err := mgr.ExportTemplates(params.output, params.filter)
	if err != nil {
		return err
	}
	if err := mgr.ApplyThemes(params.output, params.overwriteThemes); err != nil {
		return err
	}

	if wrote {
		fmt.Fprintf(deps.Stdout, "Exported resources to %s\n", params.output)
	}
	return nil
}

// newManager builds the resource manager from merged parameters.
func newManager(params *exportParams, log *slog.Logger) (*docres.Manager, error) {
	return docres.New(params.templates,
		docres.WithThemes(params.themes...),
		docres.WithBaseDir(params.baseDir),
		docres.WithInstallRoot(params.installRoot),
		docres.WithLogger(log),
	)
}

// newLogger builds a text logger on w at the level selected by the
// quiet/verbose flags.
func newLogger(w io.Writer, f commonFlags) *slog.Logger {
	level := slog.LevelInfo
	if f.quiet {
		level = slog.LevelWarn
	}
	if f.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// resolveExportParams merges the config file and command-line flags.
// Flags win wherever both are set.
func resolveExportParams(flags *exportFlags) (*exportParams, error) {
	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return nil, err
	}

	params := &exportParams{
		templates:       firstNonEmptyList(flags.bundles.templates, cfg.Templates),
		themes:          firstNonEmptyList(flags.bundles.themes, cfg.Themes),
		baseDir:         firstNonEmpty(flags.bundles.baseDir, cfg.BaseDir),
		installRoot:     firstNonEmpty(flags.bundles.installRoot, cfg.InstallRoot),
		output:          firstNonEmpty(flags.output, cfg.Output.Dir),
		filter:          firstNonEmpty(flags.filter, cfg.Output.Filter),
		overwriteThemes: cfg.Output.OverwriteThemes,
	}
	if flags.overwriteThemesSet {
		params.overwriteThemes = flags.overwriteThemes
	}
	return params, nil
}

// loadConfig loads the named config, or the default one when present.
// With an explicit name every failure is fatal; the implicit default is
// only loaded if the file exists in the working directory.
func loadConfig(nameOrPath string) (*config.Config, error) {
	if nameOrPath != "" {
		return config.LoadConfig(nameOrPath)
	}
	for _, ext := range []string{".yaml", ".yml"} {
		if fileutil.FileExists(defaultConfigName + ext) {
			return config.LoadConfig("./" + defaultConfigName + ext)
		}
	}
	return config.DefaultConfig(), nil
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// firstNonEmptyList returns the first non-empty slice.
func firstNonEmptyList(lists ...[]string) []string {
	for _, l := range lists {
		if len(l) > 0 {
			return l
		}
	}
	return nil
}
