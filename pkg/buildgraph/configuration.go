package buildgraph

import (
	"fmt"
)

// Configuration represents a named bucket of dependency coordinates managed
// by the project's configuration registry. Its combined classpath can be
// resolved through the owning project.
type Configuration struct {
	name        string
	description string
	visible     bool
	deps        []string
	defaults    []string
}

// Name returns the configuration's name, which is also its identity within
// the registry.
func (c *Configuration) Name() string {
	return c.name
}

// Description returns the human-readable description of the configuration
func (c *Configuration) Description() string {
	return c.description
}

// SetDescription sets the human-readable description of the configuration
func (c *Configuration) SetDescription(description string) {
	c.description = description
}

// Visible reports whether the configuration should appear in user-facing
// dependency reports
func (c *Configuration) Visible() bool {
	return c.visible
}

// SetVisible controls whether the configuration appears in user-facing
// dependency reports
func (c *Configuration) SetVisible(visible bool) {
	c.visible = visible
}

// AddDependency appends an explicitly declared dependency coordinate.
// The first explicit dependency clears any pending default dependencies.
func (c *Configuration) AddDependency(coordinate string) {
	c.defaults = nil
	c.deps = append(c.deps, coordinate)
}

// AddDefaultDependency attaches a coordinate that only materializes if the
// configuration still has no explicitly declared dependencies when its
// dependency set is read.
func (c *Configuration) AddDefaultDependency(coordinate string) {
	c.defaults = append(c.defaults, coordinate)
}

// Dependencies returns the materialized dependency coordinates in
// declaration order: the explicit dependencies if any exist, otherwise the
// pending defaults.
func (c *Configuration) Dependencies() []string {
	if len(c.deps) > 0 {
		return c.deps
	}
	return c.defaults
}

// HasExplicitDependencies reports whether any dependency was declared
// directly rather than attached as a default
func (c *Configuration) HasExplicitDependencies() bool {
	return len(c.deps) > 0
}

// ConfigurationRegistry holds a project's named configurations in creation
// order. Names are unique within a registry.
type ConfigurationRegistry struct {
	configs []*Configuration
	byName  map[string]*Configuration
}

// NewConfigurationRegistry creates a new empty registry
func NewConfigurationRegistry() *ConfigurationRegistry {
	return &ConfigurationRegistry{
		byName: make(map[string]*Configuration),
	}
}

// FindByName returns the configuration with the given name, or nil if no
// configuration with that name exists.
func (r *ConfigurationRegistry) FindByName(name string) *Configuration {
	return r.byName[name]
}

// Create adds a new visible configuration with the given name.
// It returns an error if a configuration with that name already exists.
func (r *ConfigurationRegistry) Create(name string) (*Configuration, error) {
	if _, exists := r.byName[name]; exists {
		return nil, fmt.Errorf("configuration with name %s already exists", name)
	}

	config := &Configuration{
		name:    name,
		visible: true,
	}
	r.configs = append(r.configs, config)
	r.byName[name] = config

	return config, nil
}

// All returns every configuration in creation order
func (r *ConfigurationRegistry) All() []*Configuration {
	return r.configs
}
