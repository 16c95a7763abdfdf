package checker

import (
	"fmt"

	"checkwire/pkg/buildgraph"
)

// MergeConfigurations applies the dependency spec table against the
// project's configuration registry, in table order.
//
// A configuration the user already declared is extended: the framework
// coordinate is appended after the existing dependencies, which survive
// untouched. An absent configuration is created non-visible with the spec's
// description and the coordinate attached as a default dependency, so a
// later explicit user dependency overrides it.
//
// Merging is meant to run once per project; running it twice would append
// the coordinates to pre-existing configurations a second time. The
// activation gate guarantees the single invocation.
func MergeConfigurations(p *buildgraph.Project, table []DependencySpec) error {
	registry := p.Configurations()

	for _, spec := range table {
		if existing := registry.FindByName(spec.Name); existing != nil {
			existing.AddDependency(spec.Coordinate)
			continue
		}

		config, err := registry.Create(spec.Name)
		if err != nil {
			return fmt.Errorf("failed to create configuration %s: %w", spec.Name, err)
		}

		config.SetDescription(spec.Description)
		config.SetVisible(false)
		config.AddDefaultDependency(spec.Coordinate)
	}

	return nil
}
