package checker

import (
	"errors"
	"testing"
)

func TestApply_RegistersExtension(t *testing.T) {
	project := newTestProject()

	if err := Apply(project); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	ext, ok := project.Extension(ExtensionName).(*Extension)
	if !ok {
		t.Fatalf("Expected checker extension to be registered under %s", ExtensionName)
	}
	if len(ext.Checkers) != 0 {
		t.Errorf("Expected empty checker list, got %v", ext.Checkers)
	}
}

func TestApply_NoRecognizedKindDoesNothing(t *testing.T) {
	project := newTestProject()

	if err := Apply(project); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if err := project.ApplyKind("cpp"); err != nil {
		t.Fatalf("ApplyKind failed: %v", err)
	}
	if err := project.Evaluate(); err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	if len(project.Configurations().All()) != 0 {
		t.Errorf("Expected no configurations without a recognized kind, got %d", len(project.Configurations().All()))
	}
}

func TestApply_ConfiguresOnceForMultipleKinds(t *testing.T) {
	project := newTestProject()

	if err := Apply(project); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if err := project.ApplyKind(GenericKind); err != nil {
		t.Fatalf("ApplyKind failed: %v", err)
	}
	if err := project.ApplyKind("com.android.application"); err != nil {
		t.Fatalf("ApplyKind failed: %v", err)
	}

	// A second recognized kind must not re-merge the spec table
	config := project.Configurations().FindByName(FrameworkConfiguration)
	if config == nil {
		t.Fatalf("Expected %s configuration to exist", FrameworkConfiguration)
	}
	if deps := config.Dependencies(); len(deps) != 1 {
		t.Errorf("Expected 1 dependency after double activation, got %d: %v", len(deps), deps)
	}
	if len(project.Configurations().All()) != 6 {
		t.Errorf("Expected 6 configurations, got %d", len(project.Configurations().All()))
	}
}

func TestApply_KindActiveBeforeApply(t *testing.T) {
	project := newTestProject()

	if err := project.ApplyKind(GenericKind); err != nil {
		t.Fatalf("ApplyKind failed: %v", err)
	}
	if err := Apply(project); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if len(project.Configurations().All()) != 6 {
		t.Errorf("Expected configuration to run for already-active kind, got %d configurations",
			len(project.Configurations().All()))
	}
}

func TestApply_UnsupportedVersionAbortsActivation(t *testing.T) {
	project := newTestProject()
	project.SetSourceCompatibility("11")

	if err := Apply(project); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	err := project.ApplyKind(GenericKind)
	if err == nil {
		t.Fatalf("Expected activation to fail for unsupported version")
	}

	var unsupported *UnsupportedVersionError
	if !errors.As(err, &unsupported) {
		t.Fatalf("Expected UnsupportedVersionError, got %T: %v", err, err)
	}

	// The failure happens before any registry mutation
	if len(project.Configurations().All()) != 0 {
		t.Errorf("Expected no configurations after version failure, got %d", len(project.Configurations().All()))
	}
}

func TestRecognizedKinds(t *testing.T) {
	kinds := RecognizedKinds()
	if len(kinds) != 4 {
		t.Fatalf("Expected 4 recognized kinds, got %d: %v", len(kinds), kinds)
	}
	if kinds[0] != GenericKind {
		t.Errorf("Expected generic kind first, got '%s'", kinds[0])
	}
}
