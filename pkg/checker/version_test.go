package checker

import (
	"errors"
	"testing"

	"checkwire/pkg/buildgraph"
)

func TestResolveVersion_SupportedVersions(t *testing.T) {
	tests := []struct {
		version  string
		expected VersionTag
	}{
		{"7", JDK7},
		{"8", JDK8},
		{"1.7", JDK7},
		{"1.8", JDK8},
		{"1.8.0_181", JDK8},
		{"1.7.0-u80", JDK7},
	}

	for _, test := range tests {
		project := newTestProject()
		project.SetSourceCompatibility(test.version)

		tag, err := ResolveVersion(project)
		if err != nil {
			t.Errorf("ResolveVersion(%q) failed: %v", test.version, err)
			continue
		}
		if tag != test.expected {
			t.Errorf("ResolveVersion(%q): expected %s, got %s", test.version, test.expected, tag)
		}
	}
}

func TestResolveVersion_UnsupportedVersions(t *testing.T) {
	for _, version := range []string{"6", "1.6", "9", "11", "17", "banana"} {
		project := newTestProject()
		project.SetSourceCompatibility(version)

		_, err := ResolveVersion(project)
		if err == nil {
			t.Errorf("ResolveVersion(%q): expected error", version)
			continue
		}

		var unsupported *UnsupportedVersionError
		if !errors.As(err, &unsupported) {
			t.Errorf("ResolveVersion(%q): expected UnsupportedVersionError, got %T", version, err)
			continue
		}
		if unsupported.Version != version {
			t.Errorf("ResolveVersion(%q): error names version '%s'", version, unsupported.Version)
		}
	}
}

func TestResolveVersion_AndroidTakesPriority(t *testing.T) {
	project := newTestProject()
	project.SetAndroidSourceCompatibility("1.7")
	project.SetSourceCompatibility("1.8")

	tag, err := ResolveVersion(project)
	if err != nil {
		t.Fatalf("ResolveVersion failed: %v", err)
	}
	if tag != JDK7 {
		t.Errorf("Expected android source compatibility to win, got %s", tag)
	}
}

func TestResolveVersion_ProjectBeforeRuntime(t *testing.T) {
	project := buildgraph.NewProject("test", &testRuntime{version: "1.8"}, &testResolver{})
	project.SetSourceCompatibility("1.7")

	tag, err := ResolveVersion(project)
	if err != nil {
		t.Fatalf("ResolveVersion failed: %v", err)
	}
	if tag != JDK7 {
		t.Errorf("Expected project source compatibility to win over runtime, got %s", tag)
	}
}

func TestResolveVersion_FallsBackToRuntime(t *testing.T) {
	project := buildgraph.NewProject("test", &testRuntime{version: "1.8.0_181"}, &testResolver{})

	tag, err := ResolveVersion(project)
	if err != nil {
		t.Fatalf("ResolveVersion failed: %v", err)
	}
	if tag != JDK8 {
		t.Errorf("Expected runtime version fallback to yield JDK8, got %s", tag)
	}
}
