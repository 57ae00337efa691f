package ax

import "errors"

// RoleAttribute is the attribute read during a bootstrap warm-up. Reading it
// is the cheapest call that makes the accessibility daemon materialize and
// cache an application's element tree for the rest of the session.
const RoleAttribute = "AXRole"

// Code is a raw accessibility API error code. Zero means success.
type Code int

const (
	// CodeSuccess is returned when the attribute read completed.
	CodeSuccess Code = 0
	// CodeCannotComplete is the "cannot complete at this time" code that
	// lazily initializing applications return on the first read. It marks a
	// tree that is mid-initialization, not one that is broken.
	CodeCannotComplete Code = -25212
	// CodeAPIDisabled is returned when the accessibility API is switched off
	// for the calling process.
	CodeAPIDisabled Code = -25211
)

// AppInfo describes one running application instance as reported by the
// platform workspace service. Name may be empty when the platform cannot
// resolve a display name; callers filter those out.
type AppInfo struct {
	Name     string
	PID      int
	BundleID string
}

// Element is an opaque handle to an application's accessibility root.
type Element uintptr

// Convention selects the attribute-read calling form. Different bridge
// versions of the accessibility API expose either an out-parameter form or
// a direct-return form; a binding implements at least one of them.
type Convention int

const (
	// ConventionOutParam is the three-argument form where the value is
	// written through an out parameter.
	ConventionOutParam Convention = iota
	// ConventionDirect is the older two-argument form where the value is
	// returned directly.
	ConventionDirect
)

var (
	// ErrConvention reports that the binding does not speak the requested
	// calling convention. Callers retry with the alternate convention.
	ErrConvention = errors.New("ax: calling convention not supported")
	// ErrUnsupported reports that no accessibility binding exists on this
	// platform.
	ErrUnsupported = errors.New("ax: accessibility binding unavailable on this platform")
)

// Binding is the platform accessibility surface the tool depends on.
type Binding interface {
	// Trusted reports whether the current process holds accessibility
	// permission. Implementations never fail outward; a failed query reads
	// as not trusted.
	Trusted() bool
	// RunningApplications enumerates current application instances known to
	// the workspace service.
	RunningApplications() ([]AppInfo, error)
	// AppElement creates an accessibility root handle for a process id.
	// Handles must be released with Release.
	AppElement(pid int) (Element, error)
	// CopyAttribute reads one named attribute from an element using the
	// requested calling convention. The returned Code is the raw platform
	// error code; err is reserved for binding-level problems such as a
	// convention mismatch.
	CopyAttribute(el Element, attr string, conv Convention) (string, Code, error)
	// Release frees an element handle. Releasing the zero Element is a no-op.
	Release(el Element)
}
