// Package manifest loads the checkwire.toml project manifest: the project
// kinds, source compatibility, compile tasks and user-declared
// configurations that describe a project to the build graph.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"checkwire/pkg/buildgraph"
)

// FileName is the manifest file read from the project directory
const FileName = "checkwire.toml"

// Manifest is the decoded checkwire.toml project manifest
type Manifest struct {
	Name                string              `toml:"name"`
	Kinds               []string            `toml:"kinds"`
	SourceCompatibility string              `toml:"sourceCompatibility"`
	Android             *AndroidOptions     `toml:"android"`
	CheckerFramework    CheckerOptions      `toml:"checkerFramework"`
	Configurations      []ConfigurationDecl `toml:"configurations"`
	Tasks               []TaskDecl          `toml:"tasks"`
}

// AndroidOptions mirrors the android compile options block
type AndroidOptions struct {
	SourceCompatibility string `toml:"sourceCompatibility"`
}

// CheckerOptions is the user-facing checker configuration block
type CheckerOptions struct {
	Checkers []string `toml:"checkers"`
}

// ConfigurationDecl pre-declares a named configuration with its dependency
// coordinates
type ConfigurationDecl struct {
	Name         string   `toml:"name"`
	Dependencies []string `toml:"dependencies"`
}

// TaskDecl declares a compile task of the project
type TaskDecl struct {
	Name          string `toml:"name"`
	BootClasspath string `toml:"bootClasspath"`
}

// Load reads and decodes the manifest from the given project directory.
// Missing fields get defaults: the project name falls back to the directory
// name, the kinds to the generic "java" kind, and the task list to a single
// "compileJava" task.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project manifest %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if m.Name == "" {
		m.Name = filepath.Base(dir)
	}
	if len(m.Kinds) == 0 {
		m.Kinds = []string{"java"}
	}
	if len(m.Tasks) == 0 {
		m.Tasks = []TaskDecl{{Name: "compileJava"}}
	}

	return &m, nil
}

// Project materializes the manifest into a build graph project: it declares
// the user's configurations and compile tasks. Project kinds are not applied
// here; the caller activates them after plugin registration, matching the
// host's plugin-then-kind ordering.
func (m *Manifest) Project(runtime buildgraph.Runtime, resolver buildgraph.ClasspathResolver) (*buildgraph.Project, error) {
	p := buildgraph.NewProject(m.Name, runtime, resolver)
	p.SetSourceCompatibility(m.SourceCompatibility)
	if m.Android != nil {
		p.SetAndroidSourceCompatibility(m.Android.SourceCompatibility)
	}

	for _, decl := range m.Configurations {
		config, err := p.Configurations().Create(decl.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to declare configuration %s: %w", decl.Name, err)
		}
		for _, coordinate := range decl.Dependencies {
			config.AddDependency(coordinate)
		}
	}

	for _, decl := range m.Tasks {
		task := buildgraph.NewCompileTask(decl.Name)
		if decl.BootClasspath != "" {
			task.SetBootClasspath(decl.BootClasspath)
		}
		p.AddCompileTask(task)
	}

	return p, nil
}
