package checker

import (
	"checkwire/pkg/buildgraph"
)

// ExtensionName is the name under which the user-facing extension is
// registered on the project
const ExtensionName = "checkerFramework"

// Extension is the user-facing configuration surface of the plugin.
// Checkers lists the fully qualified checker classes to run as annotation
// processors; an empty list injects no processor arguments.
type Extension struct {
	Checkers []string
}

// extensionFor returns the project's checker extension, or an empty one if
// none was registered
func extensionFor(p *buildgraph.Project) *Extension {
	if ext, ok := p.Extension(ExtensionName).(*Extension); ok {
		return ext
	}
	return &Extension{}
}
