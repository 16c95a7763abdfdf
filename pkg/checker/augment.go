package checker

import (
	"os"
	"strings"

	"checkwire/pkg/buildgraph"
)

const (
	// bootClasspathPrependPrefix prepends a classpath ahead of the platform
	// classes during compilation
	bootClasspathPrependPrefix = "-Xbootclasspath/p:"
	// processorFlag selects the annotation processors to run
	processorFlag = "-processor"
)

// AugmentTasks rewrites every compile task of the project to run the checker
// toolchain. It must run after the whole project graph has been evaluated,
// because classpath values and the complete task set are only stable then;
// the plugin registers it as an after-evaluate callback.
//
// Per task it appends a boot-classpath-prepend argument carrying the
// annotated JDK classpath, appends a -processor pair when the user listed
// checkers, rebuilds the boot classpath for android project kinds, and
// enables forked compilation. Running it twice on the same project appends
// the arguments twice; callers are expected to run it once per build.
func AugmentTasks(p *buildgraph.Project) error {
	annotatedJdk, err := p.ResolveClasspath(AnnotatedJdkConfiguration)
	if err != nil {
		return err
	}

	android := hasAndroidKind(p)
	var javac string
	if android {
		javac, err = p.ResolveClasspath(JavacConfiguration)
		if err != nil {
			return err
		}
	}

	checkers := extensionFor(p).Checkers
	separator := string(os.PathListSeparator)

	for _, task := range p.CompileTasks() {
		task.AppendArgs(bootClasspathPrependPrefix + annotatedJdk)

		if len(checkers) > 0 {
			task.AppendArgs(processorFlag, strings.Join(checkers, ","))
		}

		if android {
			// Platform classes first, then the replacement compiler's
			// support classes, then whatever the task already had.
			parts := []string{p.Runtime().BootClasspath(), javac}
			if existing := task.BootClasspath(); existing != "" {
				parts = append(parts, existing)
			}
			task.SetBootClasspath(strings.Join(parts, separator))
		}

		// The custom boot classpath and javac combination requires an
		// out-of-process compiler invocation.
		task.SetFork(true)
	}

	return nil
}
