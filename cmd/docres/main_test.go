package main

import (
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("no arguments prints usage and fails", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newTestDeps()
		if code := run(nil, deps); code != ExitUsage {
			t.Errorf("run() = %d, want ExitUsage", code)
		}
		if !strings.Contains(stderr.String(), "Usage:") {
			t.Errorf("stderr %q does not contain usage", stderr.String())
		}
	})

	t.Run("unknown command fails with usage", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newTestDeps()
		if code := run([]string{"bogus"}, deps); code != ExitUsage {
			t.Errorf("run(bogus) = %d, want ExitUsage", code)
		}
		if !strings.Contains(stderr.String(), "unknown command") {
			t.Errorf("stderr %q does not mention the unknown command", stderr.String())
		}
	})

	t.Run("version prints the version", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newTestDeps()
		if code := run([]string{"version"}, deps); code != ExitSuccess {
			t.Errorf("run(version) = %d, want ExitSuccess", code)
		}
		if !strings.Contains(stdout.String(), "docres") {
			t.Errorf("stdout %q does not contain version output", stdout.String())
		}
	})

	t.Run("help for export shows export usage", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newTestDeps()
		if code := run([]string{"help", "export"}, deps); code != ExitSuccess {
			t.Errorf("run(help export) = %d, want ExitSuccess", code)
		}
		if !strings.Contains(stdout.String(), "docres export") {
			t.Errorf("stdout %q does not contain export usage", stdout.String())
		}
	})

	t.Run("export with invalid flag fails with usage", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := newTestDeps()
		if code := run([]string{"export", "--bogus"}, deps); code != ExitUsage {
			t.Errorf("run(export --bogus) = %d, want ExitUsage", code)
		}
	})
}
