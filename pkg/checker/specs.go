package checker

import (
	"fmt"
)

// FrameworkVersion is the Checker Framework release wired into every
// generated dependency coordinate
const FrameworkVersion = "2.1.14"

// frameworkGroup is the maven group all framework artifacts are published
// under
const frameworkGroup = "org.checkerframework"

// Names of the configurations the plugin manages
const (
	// AnnotatedJdkConfiguration holds the annotated JDK variant matching the
	// project's source version
	AnnotatedJdkConfiguration = "checkerFrameworkAnnotatedJdk"
	// JavacConfiguration holds the replacement javac with type annotation
	// support
	JavacConfiguration = "checkerFrameworkJavac"
	// FrameworkConfiguration holds the Checker Framework itself
	FrameworkConfiguration = "checkerFramework"
	// CompileConfiguration is the legacy compile bucket that receives the
	// qualifier annotations
	CompileConfiguration = "compile"
	// AptConfiguration is the annotation processor bucket
	AptConfiguration = "apt"
	// TestAptConfiguration is the test annotation processor bucket
	TestAptConfiguration = "testApt"
)

const (
	annotatedJdkDescription = "a copy of JDK classes with Checker Framework type qualifiers inserted"
	javacDescription        = "a customized version of javac compiler with extra support for type annotations"
	frameworkDescription    = "the Checker Framework: custom pluggable types for Java"
)

// ConfigurationSpec names a configuration the plugin materializes in the
// project's registry. Identity is Name.
type ConfigurationSpec struct {
	Name        string
	Description string
}

// DependencySpec pairs a configuration spec with the dependency coordinate
// merged into it
type DependencySpec struct {
	ConfigurationSpec
	Coordinate string
}

// SpecTable builds the ordered dependency spec table for a resolved version
// tag. Only the annotated JDK entry is parameterized by the tag; the other
// entries are constant. Order is fixed for deterministic merging.
func SpecTable(tag VersionTag) []DependencySpec {
	return []DependencySpec{
		{ConfigurationSpec{AnnotatedJdkConfiguration, annotatedJdkDescription}, frameworkCoordinate(string(tag))},
		{ConfigurationSpec{JavacConfiguration, javacDescription}, frameworkCoordinate("compiler")},
		{ConfigurationSpec{FrameworkConfiguration, frameworkDescription}, frameworkCoordinate("checker")},
		{ConfigurationSpec{CompileConfiguration, annotatedJdkDescription}, frameworkCoordinate("checker-qual")},
		{ConfigurationSpec{AptConfiguration, ""}, frameworkCoordinate("checker")},
		{ConfigurationSpec{TestAptConfiguration, ""}, frameworkCoordinate("checker")},
	}
}

// frameworkCoordinate builds the full coordinate for a framework artifact
func frameworkCoordinate(name string) string {
	return fmt.Sprintf("%s:%s:%s", frameworkGroup, name, FrameworkVersion)
}
