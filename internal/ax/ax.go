package ax

import "errors"

var (
	// ErrNotAvailable reports that an element does not expose the
	// requested attribute, or that the element vanished mid-walk. The
	// walker treats it as "no contribution" and keeps going.
	ErrNotAvailable = errors.New("attribute not available")

	// ErrUnsupported reports that live menu introspection is not possible
	// on this platform or build.
	ErrUnsupported = errors.New("accessibility introspection not supported on this platform")
)

// Accessibility attribute names consulted by the walker.
const (
	AttrTitle        = "AXTitle"
	AttrChildren     = "AXChildren"
	AttrMenuBar      = "AXMenuBar"
	AttrCmdChar      = "AXMenuItemCmdChar"
	AttrCmdModifiers = "AXMenuItemCmdModifiers"
)

// Element is one node of an application's accessibility tree. Attribute
// lookups may fail per element; implementations return ErrNotAvailable
// (or any error) rather than panicking, and the walker converts every
// failure into a skipped node.
type Element interface {
	Attribute(name string) (interface{}, error)
}

// Process identifies one running application.
type Process struct {
	PID  int32
	Name string
}

// Provider is the platform adapter the collector depends on: process
// enumeration, per-process tree roots, and the focused-application query.
type Provider interface {
	// Processes returns the visible running applications.
	Processes() ([]Process, error)

	// AppElement returns the accessibility root element for a process.
	// Processes that cannot be introspected return an error and are
	// skipped entirely.
	AppElement(pid int32) (Element, error)

	// FrontmostApp returns the display name of the application that
	// currently owns input focus, or false if it cannot be determined.
	FrontmostApp() (string, bool)
}
