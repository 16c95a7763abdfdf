package checker

import (
	"fmt"
	"strings"

	"checkwire/pkg/buildgraph"
)

// VersionTag identifies which annotated JDK artifact matches a project's
// source language version
type VersionTag string

const (
	// JDK7 selects the annotated JDK artifact for Java 7 sources
	JDK7 VersionTag = "jdk7"
	// JDK8 selects the annotated JDK artifact for Java 8 sources
	JDK8 VersionTag = "jdk8"
)

// UnsupportedVersionError indicates that the detected Java source version is
// outside the supported set. It aborts project configuration before any
// configuration or dependency mutation occurs.
type UnsupportedVersionError struct {
	Version string
}

// Error returns a message naming the unsupported version
func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported Java version %q: the Checker Framework requires Java 7 or 8", e.Version)
}

// ResolveVersion derives the version tag for a project. The source language
// version is taken from, in priority order: the android compile options
// source compatibility, the project-level source compatibility, and finally
// the runtime's own version. The first non-empty value wins.
func ResolveVersion(p *buildgraph.Project) (VersionTag, error) {
	version := p.AndroidSourceCompatibility()
	if version == "" {
		version = p.SourceCompatibility()
	}
	if version == "" {
		version = p.Runtime().Version()
	}

	switch majorVersion(version) {
	case "7":
		return JDK7, nil
	case "8":
		return JDK8, nil
	}

	return "", &UnsupportedVersionError{Version: version}
}

// majorVersion extracts the major Java version from declaration forms like
// "7", "1.8" and "1.8.0_181"
func majorVersion(version string) string {
	v := strings.TrimSpace(version)
	v = strings.TrimPrefix(v, "1.")

	// Cut off minor version and update suffixes
	if i := strings.IndexAny(v, "._-"); i >= 0 {
		v = v[:i]
	}

	return v
}
