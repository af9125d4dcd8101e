package docres

import (
	"log/slog"
	"path/filepath"

	"github.com/alnah/go-docres/internal/fileutil"
)

// templatesSegment is the fixed subdirectory checked under the install root.
const templatesSegment = "templates"

// ResolvedDir is a physical directory matched for a bundle name.
// Multiple directories may be resolved for the same name (overlay).
type ResolvedDir struct {
	Name string // bundle name that produced this directory
	Path string // directory path on disk
}

// Resolver maps bundle names to physical directories across a two-tier
// search path: <installRoot>/templates/<name> first, then <baseDir>/<name>.
type Resolver struct {
	installRoot string
	log         *slog.Logger
}

// NewResolver creates a Resolver rooted at installRoot. An empty installRoot
// disables the install tier, leaving only the base directory tier.
// A nil logger falls back to slog.Default().
func NewResolver(installRoot string, log *slog.Logger) *Resolver {
	if log == nil {
		log = slog.Default()
	}
	return &Resolver{installRoot: installRoot, log: log}
}

// Resolve probes both search tiers for each name, preserving input order.
// Within a name the install tier is checked before the base directory tier.
// Either, neither, or both tiers may match; every match is kept, including
// same-named directories from different tiers. Non-existence of a candidate
// is not an error, but a name matching neither tier logs a warning.
func (r *Resolver) Resolve(names []string, baseDir string) []ResolvedDir {
	dirs := make([]ResolvedDir, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		found := false
		if r.installRoot != "" {
			candidate := filepath.Join(r.installRoot, templatesSegment, name)
			if fileutil.DirExists(candidate) {
				dirs = append(dirs, ResolvedDir{Name: name, Path: candidate})
				found = true
			}
		}
		if baseDir != "" {
			candidate := filepath.Join(baseDir, name)
			if fileutil.DirExists(candidate) {
				dirs = append(dirs, ResolvedDir{Name: name, Path: candidate})
				found = true
			}
		}
		if !found {
			r.log.Warn("no directory found for resource bundle", "name", name)
		}
	}
	return dirs
}
