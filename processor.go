package docres

import "fmt"

// TemplateProcessor consumes a merged template resource set, typically a
// template compilation or rendering stage further down a documentation
// pipeline. The processor receives the set and a parallelism hint; any
// build context it needs is its own construction-time concern. It may
// parallelize its reads, but must not Close the set.
type TemplateProcessor interface {
	Process(set *ResourceSet, parallelism int) error
}

// ProcessAndTheme hands the merged template resources to p, then applies
// the configured themes into outputDir under the given overwrite policy.
// The resource set is released when processing completes, whether or not
// it succeeds.
func (m *Manager) ProcessAndTheme(p TemplateProcessor, outputDir string, overwrite bool, parallelism int) error {
	set := m.TemplateResources()
	defer func() { _ = set.Close() }()

	if err := p.Process(set, parallelism); err != nil {
		return fmt.Errorf("processing templates: %w", err)
	}
	return m.ApplyThemes(outputDir, overwrite)
}
