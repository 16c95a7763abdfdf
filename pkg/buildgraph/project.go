package buildgraph

import (
	"errors"
	"fmt"
)

// Project models the surface of a single project in the host build graph:
// its named configurations, its compile tasks, the set of active project
// kinds and the after-evaluate callback queue.
//
// All mutation happens in a single configuration phase; the host guarantees
// serial execution, so no locking is needed.
type Project struct {
	name     string
	runtime  Runtime
	resolver ClasspathResolver

	sourceCompatibility        string
	androidSourceCompatibility string

	kinds         map[string]bool
	kindListeners map[string][]func() error

	extensions     map[string]interface{}
	configurations *ConfigurationRegistry
	tasks          []*CompileTask

	afterEvaluate []func(*Project) error
}

// NewProject creates a new project backed by the given runtime probe and
// classpath resolver
func NewProject(name string, runtime Runtime, resolver ClasspathResolver) *Project {
	return &Project{
		name:           name,
		runtime:        runtime,
		resolver:       resolver,
		kinds:          make(map[string]bool),
		kindListeners:  make(map[string][]func() error),
		extensions:     make(map[string]interface{}),
		configurations: NewConfigurationRegistry(),
	}
}

// Name returns the project's name
func (p *Project) Name() string {
	return p.name
}

// Runtime returns the JVM runtime the project builds against
func (p *Project) Runtime() Runtime {
	return p.runtime
}

// Configurations returns the project's configuration registry
func (p *Project) Configurations() *ConfigurationRegistry {
	return p.configurations
}

// SourceCompatibility returns the project-level declared source language
// version, or "" if none was declared
func (p *Project) SourceCompatibility() string {
	return p.sourceCompatibility
}

// SetSourceCompatibility declares the project-level source language version
func (p *Project) SetSourceCompatibility(version string) {
	p.sourceCompatibility = version
}

// AndroidSourceCompatibility returns the source language version declared in
// the android compile options, or "" if none was declared
func (p *Project) AndroidSourceCompatibility() string {
	return p.androidSourceCompatibility
}

// SetAndroidSourceCompatibility declares the android compile options source
// language version
func (p *Project) SetAndroidSourceCompatibility(version string) {
	p.androidSourceCompatibility = version
}

// SetExtension registers a named extension object on the project
func (p *Project) SetExtension(name string, extension interface{}) {
	p.extensions[name] = extension
}

// Extension returns the extension registered under the given name, or nil
// if none exists
func (p *Project) Extension(name string) interface{} {
	return p.extensions[name]
}

// AddCompileTask adds a compile task to the project
func (p *Project) AddCompileTask(task *CompileTask) {
	p.tasks = append(p.tasks, task)
}

// CompileTasks returns all compile tasks in the project
func (p *Project) CompileTasks() []*CompileTask {
	return p.tasks
}

// HasKind reports whether the given project kind is active
func (p *Project) HasKind(id string) bool {
	return p.kinds[id]
}

// Kinds returns the active project kinds
func (p *Project) Kinds() []string {
	var kinds []string
	for id := range p.kinds {
		kinds = append(kinds, id)
	}
	return kinds
}

// ApplyKind activates a project kind and fires any listeners registered for
// it. Activating an already-active kind is a no-op.
func (p *Project) ApplyKind(id string) error {
	if p.kinds[id] {
		return nil
	}
	p.kinds[id] = true

	listeners := p.kindListeners[id]
	delete(p.kindListeners, id)

	for _, listener := range listeners {
		if err := listener(); err != nil {
			return fmt.Errorf("failed to configure project for kind %s: %w", id, err)
		}
	}

	return nil
}

// WithKind runs fn once when the given kind is or becomes active. If the
// kind is already active fn runs immediately; otherwise it is registered and
// fires on activation. Kinds that never activate never run fn.
func (p *Project) WithKind(id string, fn func() error) error {
	if p.kinds[id] {
		return fn()
	}

	p.kindListeners[id] = append(p.kindListeners[id], fn)
	return nil
}

// AfterEvaluate registers a callback that runs once the whole project has
// been evaluated, after all tasks, kinds and configurations are known
func (p *Project) AfterEvaluate(fn func(*Project) error) {
	p.afterEvaluate = append(p.afterEvaluate, fn)
}

// Evaluate marks the project graph complete and flushes the after-evaluate
// callback queue in registration order. Callbacks registered during the
// flush also run. The queue is drained, so a second Evaluate with no new
// callbacks is a no-op.
func (p *Project) Evaluate() error {
	for len(p.afterEvaluate) > 0 {
		fn := p.afterEvaluate[0]
		p.afterEvaluate = p.afterEvaluate[1:]

		if err := fn(p); err != nil {
			return err
		}
	}

	return nil
}

// ResolveClasspath resolves the named configuration's materialized
// dependencies to a path-separator-joined classpath string. A missing
// configuration or a resolution failure yields an
// UnresolvedConfigurationError.
func (p *Project) ResolveClasspath(name string) (string, error) {
	config := p.configurations.FindByName(name)
	if config == nil {
		return "", &UnresolvedConfigurationError{
			Configuration: name,
			Err:           errors.New("configuration not found"),
		}
	}

	classpath, err := p.resolver.Resolve(config.Dependencies())
	if err != nil {
		return "", &UnresolvedConfigurationError{
			Configuration: name,
			Err:           err,
		}
	}

	return classpath, nil
}
