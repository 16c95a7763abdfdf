package buildgraph

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Runtime describes the JVM the build runs on
type Runtime interface {
	// Version returns the runtime's Java version (e.g. "1.8.0_181")
	Version() string

	// BootClasspath returns the platform boot classpath as a
	// path-separator-joined string
	BootClasspath() string
}

// LocalRuntime derives runtime information from the local JVM installation.
// JavaHome and JavaVersion can be set directly for testing.
type LocalRuntime struct {
	JavaHome    string
	JavaVersion string
}

// NewLocalRuntime creates a runtime probe from the JAVA_HOME and JAVA_VERSION
// environment variables. The version defaults to 1.8 when unset.
func NewLocalRuntime() *LocalRuntime {
	version := os.Getenv("JAVA_VERSION")
	if version == "" {
		version = "1.8"
	}

	return &LocalRuntime{
		JavaHome:    os.Getenv("JAVA_HOME"),
		JavaVersion: version,
	}
}

// Version returns the runtime's Java version
func (r *LocalRuntime) Version() string {
	return r.JavaVersion
}

// BootClasspath returns the platform boot classpath assembled from the
// runtime library jars under JAVA_HOME. JDK installations keep them under
// jre/lib, JRE installations directly under lib. Returns "" if JAVA_HOME is
// not set or contains no jars.
func (r *LocalRuntime) BootClasspath() string {
	if r.JavaHome == "" {
		return ""
	}

	for _, libDir := range []string{filepath.Join(r.JavaHome, "jre", "lib"), filepath.Join(r.JavaHome, "lib")} {
		jars, err := filepath.Glob(filepath.Join(libDir, "*.jar"))
		if err != nil || len(jars) == 0 {
			continue
		}

		// Sort for a deterministic classpath
		sort.Strings(jars)
		return strings.Join(jars, string(os.PathListSeparator))
	}

	return ""
}
