//go:build !darwin || !cgo

package ax

// platformBinding is the stub used where the accessibility API does not
// exist. It reads as untrusted so the permission gate stops a run before
// any enumeration is attempted.
type platformBinding struct{}

// NewBinding returns the accessibility binding for this platform.
func NewBinding() Binding {
	return platformBinding{}
}

func (platformBinding) Trusted() bool { return false }

func (platformBinding) RunningApplications() ([]AppInfo, error) {
	return nil, ErrUnsupported
}

func (platformBinding) AppElement(int) (Element, error) {
	return 0, ErrUnsupported
}

func (platformBinding) CopyAttribute(Element, string, Convention) (string, Code, error) {
	return "", CodeSuccess, ErrUnsupported
}

func (platformBinding) Release(Element) {}
