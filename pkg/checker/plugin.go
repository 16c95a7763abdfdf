// Package checker wires the Checker Framework toolchain into every compile
// task of a project: it resolves which annotated JDK artifact matches the
// project's source version, merges the framework's dependency declarations
// into the project's configuration registry without clobbering user setup,
// and defers a final argument-injection pass over all compile tasks until
// the full project graph is known.
package checker

import (
	"checkwire/pkg/buildgraph"
)

// GenericKind is the fallback project kind for plain JVM source projects
const GenericKind = "java"

// AndroidKinds are the android build front-end project kinds. Projects with
// any of these additionally get their compile tasks' boot classpath chain
// rebuilt around the replacement javac.
var AndroidKinds = []string{
	"com.android.application",
	"com.android.library",
	"com.android.test",
}

// RecognizedKinds returns every project kind the plugin activates on
func RecognizedKinds() []string {
	return append([]string{GenericKind}, AndroidKinds...)
}

// Apply wires the plugin into a project. It registers the user extension
// immediately, then arranges for the configuration routine to run as soon as
// any recognized project kind is active. Listeners are registered per kind,
// so kinds that activate after Apply are not missed; the routine still runs
// at most once per project.
func Apply(p *buildgraph.Project) error {
	p.SetExtension(ExtensionName, &Extension{})

	configured := false
	configure := func() error {
		if configured {
			return nil
		}
		configured = true
		return configureProject(p)
	}

	for _, kind := range RecognizedKinds() {
		if err := p.WithKind(kind, configure); err != nil {
			return err
		}
	}

	return nil
}

// configureProject runs the one-shot configuration routine: resolve the
// version tag, merge the dependency spec table, and defer task augmentation
// until the project is fully evaluated.
func configureProject(p *buildgraph.Project) error {
	tag, err := ResolveVersion(p)
	if err != nil {
		return err
	}

	if err := MergeConfigurations(p, SpecTable(tag)); err != nil {
		return err
	}

	p.AfterEvaluate(AugmentTasks)
	return nil
}

// hasAndroidKind reports whether any android project kind is active
func hasAndroidKind(p *buildgraph.Project) bool {
	for _, kind := range AndroidKinds {
		if p.HasKind(kind) {
			return true
		}
	}
	return false
}
