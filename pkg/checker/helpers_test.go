package checker

import (
	"strings"

	"checkwire/pkg/buildgraph"
)

// testRuntime is a buildgraph.Runtime with fixed values
type testRuntime struct {
	version       string
	bootClasspath string
}

func (r *testRuntime) Version() string {
	return r.version
}

func (r *testRuntime) BootClasspath() string {
	return r.bootClasspath
}

// testResolver joins coordinates with a comma so tests can assert which
// artifacts ended up on a resolved classpath
type testResolver struct {
	err error
}

func (r *testResolver) Resolve(coordinates []string) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	return strings.Join(coordinates, ","), nil
}

// newTestProject creates a project on a Java 8 runtime with a fake resolver
func newTestProject() *buildgraph.Project {
	return buildgraph.NewProject("test", &testRuntime{version: "1.8", bootClasspath: "platform.jar"}, &testResolver{})
}
