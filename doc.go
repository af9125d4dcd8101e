// Package docres resolves named resource bundles (templates and themes) to
// directories on disk, merges them into one logical namespace, and exports
// selected resources into an output directory.
//
// # Quick Start
//
// Create a manager for the template bundles you want, then export:
//
//	mgr, err := docres.New([]string{"default"},
//	    docres.WithBaseDir("/path/to/custom/templates"),
//	    docres.WithThemes("dark"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	wrote, err := mgr.ExportTemplates("_site", "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := mgr.ApplyThemes("_site", false); err != nil {
//	    log.Fatal(err)
//	}
//
// # Search Path
//
// Every bundle name is probed against two tiers, in order:
//
//  1. <installRoot>/templates/<name>  - installed defaults
//  2. <baseDir>/<name>                - user overrides
//
// Either, neither, or both may exist; all existing directories are kept as
// overlay layers, in name order then tier order. A name that matches
// neither tier contributes nothing and logs a warning.
//
// # Overlay Semantics
//
// The merged ResourceSet yields every entry from every layer, duplicates
// included. File-level precedence falls out of the export overwrite policy:
// with overwrite enabled the last-resolved layer wins (user overrides beat
// installed defaults), with it disabled the first-resolved layer wins.
//
// # Failure Tolerance
//
// Export treats per-file destination failures (most commonly an existing
// file with overwrite disabled) as skips, logged at info level; only source
// read and tree walk failures abort the batch. Export reports whether at
// least one file was written.
//
// # Resource Lifetime
//
// A ResourceSet is scoped to a single export or processing call. Readers it
// vends are tracked, and Close releases whatever is still open, so aborted
// enumerations never leak file handles.
//
// # Logging
//
// Components log through log/slog: warnings for bundles that resolve to
// nothing, info for per-file skips and applied themes, debug for phase
// markers. Pass a logger with WithLogger; nil means slog.Default().
package docres
