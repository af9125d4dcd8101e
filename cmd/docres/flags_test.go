package main

import (
	"testing"
)

func TestParseExportFlags(t *testing.T) {
	t.Parallel()

	t.Run("all flags", func(t *testing.T) {
		t.Parallel()

		f, err := parseExportFlags([]string{
			"-t", "default", "-t", "extra",
			"--theme", "dark",
			"-b", "/srv/templates",
			"--install-root", "/opt/docres",
			"-o", "_site",
			"-f", "**/*.css",
			"--overwrite-themes",
			"-c", "myconfig",
			"-q",
		})
		if err != nil {
			t.Fatalf("parseExportFlags() error = %v", err)
		}

		if len(f.bundles.templates) != 2 || f.bundles.templates[0] != "default" || f.bundles.templates[1] != "extra" {
			t.Errorf("templates = %v, want [default extra] in order", f.bundles.templates)
		}
		if len(f.bundles.themes) != 1 || f.bundles.themes[0] != "dark" {
			t.Errorf("themes = %v, want [dark]", f.bundles.themes)
		}
		if f.bundles.baseDir != "/srv/templates" {
			t.Errorf("baseDir = %q", f.bundles.baseDir)
		}
		if f.bundles.installRoot != "/opt/docres" {
			t.Errorf("installRoot = %q", f.bundles.installRoot)
		}
		if f.output != "_site" || f.filter != "**/*.css" {
			t.Errorf("output = %q, filter = %q", f.output, f.filter)
		}
		if !f.overwriteThemes || !f.overwriteThemesSet {
			t.Error("overwrite-themes flag not recorded as set")
		}
		if f.common.config != "myconfig" || !f.common.quiet {
			t.Errorf("common = %+v", f.common)
		}
	})

	t.Run("overwrite-themes default is recorded as unset", func(t *testing.T) {
		t.Parallel()

		f, err := parseExportFlags([]string{"-t", "default"})
		if err != nil {
			t.Fatalf("parseExportFlags() error = %v", err)
		}
		if f.overwriteThemesSet {
			t.Error("overwriteThemesSet = true, want false when flag absent")
		}
	})

	t.Run("unknown flag fails", func(t *testing.T) {
		t.Parallel()

		if _, err := parseExportFlags([]string{"--bogus"}); err == nil {
			t.Error("parseExportFlags(--bogus) = nil, want error")
		}
	})
}

func TestParseListFlags(t *testing.T) {
	t.Parallel()

	f, err := parseListFlags([]string{"-t", "default", "-f", "*.html", "-v"})
	if err != nil {
		t.Fatalf("parseListFlags() error = %v", err)
	}
	if len(f.bundles.templates) != 1 || f.bundles.templates[0] != "default" {
		t.Errorf("templates = %v, want [default]", f.bundles.templates)
	}
	if f.filter != "*.html" {
		t.Errorf("filter = %q, want *.html", f.filter)
	}
	if !f.common.verbose {
		t.Error("verbose = false, want true")
	}
}
