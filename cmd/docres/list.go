package main

import (
	"fmt"

	docres "github.com/alnah/go-docres"
)

// runList resolves the configured template bundles and prints the merged
// entry paths, one per line, without writing anything.
func runList(flags *listFlags, deps *Dependencies) error {
	params, err := resolveExportParams(&exportFlags{
		common:  flags.common,
		bundles: flags.bundles,
		filter:  flags.filter,
	})
	if err != nil {
		return err
	}

	mgr, err := newManager(params, newLogger(deps.Stderr, flags.common))
	if err != nil {
		return err
	}

	set := mgr.TemplateResources()
	defer func() { _ = set.Close() }()

	return set.Walk(params.filter, func(e docres.Entry) error {
		fmt.Fprintln(deps.Stdout, e.Path)
		return nil
	})
}
