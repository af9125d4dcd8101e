package docres

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Exporter materializes ResourceSet entries into an output directory.
type Exporter struct {
	log *slog.Logger
}

// NewExporter creates an Exporter. A nil logger falls back to slog.Default().
func NewExporter(log *slog.Logger) *Exporter {
	if log == nil {
		log = slog.Default()
	}
	return &Exporter{log: log}
}

// Export copies the set's entries (optionally narrowed by filter) into
// outputDir, creating intermediate directories as needed. With overwrite,
// destinations are created or truncated; without it, existing files are
// left untouched. Because duplicate relative paths are exported in
// resolution order, overwrite=true means the last-resolved directory wins
// a conflict and overwrite=false means the first-resolved one does.
//
// Failures on the destination side of a single file (an existing file with
// overwrite disabled, a directory that cannot be created, a failed write)
// are logged at info level and that file is skipped; the rest of the batch
// proceeds. Failures reading the source or walking the resource trees are
// fatal and abort the export. The boolean result reports whether at least
// one file was written, not whether every attempt succeeded.
func (e *Exporter) Export(set *ResourceSet, outputDir string, overwrite bool, filter string) (bool, error) {
	if outputDir == "" {
		return false, ErrOutputDirRequired
	}

	if set.IsEmpty() {
		e.log.Warn("no resources to export", "dirs", len(set.Dirs()))
		return false, nil
	}

	wrote := false
	err := set.Walk(filter, func(entry Entry) error {
		src, err := entry.Open()
		if err != nil {
			return err
		}
		defer func() { _ = src.Close() }()

		dest := filepath.Join(outputDir, filepath.FromSlash(entry.Path))
		if err := writeFile(src, dest, overwrite); err != nil {
			if errors.Is(err, fs.ErrExist) {
				e.log.Info("resource already exists, skipping", "path", entry.Path)
			} else {
				e.log.Info("skipping resource", "path", entry.Path, "error", err)
			}
			return nil
		}
		wrote = true
		return nil
	})
	if err != nil {
		return wrote, err
	}
	return wrote, nil
}

// writeFile streams src into dest under the overwrite policy, creating the
// parent directory if missing (idempotent via MkdirAll).
func writeFile(src io.Reader, dest string, overwrite bool) error {
	if err := os.MkdirAll(filepath.Dir(dest), dirPermissions); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	f, err := os.OpenFile(dest, flags, filePermissions) // #nosec G304 -- dest derives from the caller's output directory
	if err != nil {
		return err
	}

	if _, err := io.Copy(f, src); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	return f.Close()
}
