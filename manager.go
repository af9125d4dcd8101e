package docres

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
)

// Manager is the facade over resolution, merging, and export. It holds the
// configured template and theme bundle names and the search roots, and is
// immutable after construction: build it once, run exports, dispose of any
// resource sets it handed out.
type Manager struct {
	templates   []string
	themes      []string
	baseDir     string
	installRoot string
	log         *slog.Logger

	resolver *Resolver
	exporter *Exporter
}

// Option customizes a Manager.
type Option func(*Manager)

// WithThemes sets the ordered theme bundle names. Themes are optional;
// without them ApplyThemes is a no-op.
func WithThemes(names ...string) Option {
	return func(m *Manager) { m.themes = slices.Clone(names) }
}

// WithBaseDir sets the user-level search directory checked as the second
// tier for every bundle name. Defaults to the process working directory,
// resolved once at construction.
func WithBaseDir(dir string) Option {
	return func(m *Manager) { m.baseDir = dir }
}

// WithInstallRoot sets the installation root whose "templates" subdirectory
// is checked as the first tier. Defaults to the directory of the running
// executable; an empty root disables the tier.
func WithInstallRoot(dir string) Option {
	return func(m *Manager) { m.installRoot = dir }
}

// WithLogger sets the logger receiving resolution warnings, per-file skip
// notices, and phase markers. Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) { m.log = log }
}

// New creates a Manager for the given ordered template bundle names.
// Returns ErrNoTemplates when the list is empty and ErrInvalidBaseDir when
// the configured (or default) base directory is not an existing directory.
func New(templates []string, opts ...Option) (*Manager, error) {
	if len(templates) == 0 {
		return nil, ErrNoTemplates
	}

	m := &Manager{templates: slices.Clone(templates)}
	for _, opt := range opts {
		opt(m)
	}

	if m.log == nil {
		m.log = slog.Default()
	}
	if m.baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolving working directory: %w", err)
		}
		m.baseDir = wd
	}
	info, err := os.Stat(m.baseDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidBaseDir, m.baseDir)
	}
	if m.installRoot == "" {
		m.installRoot = defaultInstallRoot()
	}

	m.resolver = NewResolver(m.installRoot, m.log)
	m.exporter = NewExporter(m.log)
	return m, nil
}

// ExportTemplates resolves the template bundles and writes their merged
// entries into outputDir, overwriting conflicting files. filter optionally
// narrows the exported paths (doublestar glob, empty = all). Returns true
// iff at least one file was written.
func (m *Manager) ExportTemplates(outputDir, filter string) (bool, error) {
	m.log.Debug("exporting template resources", "templates", m.templates, "output", outputDir)
	set := m.TemplateResources()
	defer func() { _ = set.Close() }()

	wrote, err := m.exporter.Export(set, outputDir, true, filter)
	if err != nil {
		return wrote, err
	}
	m.log.Debug("template resource export finished", "wrote", wrote)
	return wrote, nil
}

// TemplateResources returns the merged resource set for the template
// bundles. Ownership transfers to the caller, which must Close it.
func (m *Manager) TemplateResources() *ResourceSet {
	return NewResourceSet(m.resolver.Resolve(m.templates, m.baseDir))
}

// ApplyThemes exports the configured theme bundles into outputDir under the
// caller's overwrite policy. A no-op when no themes are configured.
func (m *Manager) ApplyThemes(outputDir string, overwrite bool) error {
	if len(m.themes) == 0 {
		return nil
	}

	m.log.Debug("applying themes", "themes", m.themes, "output", outputDir)
	set := NewResourceSet(m.resolver.Resolve(m.themes, m.baseDir))
	defer func() { _ = set.Close() }()

	if _, err := m.exporter.Export(set, outputDir, overwrite, ""); err != nil {
		return err
	}
	m.log.Info("themes applied", "themes", m.themes)
	m.log.Debug("theme application finished")
	return nil
}

// defaultInstallRoot returns the directory of the running executable, or
// empty (disabling the install tier) when it cannot be determined.
func defaultInstallRoot() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Dir(exe)
}
