package testsupport

import "axwarm/internal/ax"

// Binding is a scripted ax.Binding serving canned results keyed by pid. The
// zero value is trusted, reports no running applications, and returns empty
// attribute values.
type Binding struct {
	// Untrusted flips the accessibility permission gate closed.
	Untrusted bool

	Apps    []ax.AppInfo
	ListErr error

	Roles      map[int]string
	Codes      map[int]ax.Code
	ElementErr map[int]error
	ReadErr    map[int]error

	// Reads counts attribute reads so tests can assert on read activity.
	Reads    int
	Released int
}

func (b *Binding) Trusted() bool { return !b.Untrusted }

func (b *Binding) RunningApplications() ([]ax.AppInfo, error) {
	return b.Apps, b.ListErr
}

func (b *Binding) AppElement(pid int) (ax.Element, error) {
	if err := b.ElementErr[pid]; err != nil {
		return 0, err
	}
	return ax.Element(pid), nil
}

func (b *Binding) CopyAttribute(el ax.Element, _ string, _ ax.Convention) (string, ax.Code, error) {
	b.Reads++
	pid := int(el)
	if err := b.ReadErr[pid]; err != nil {
		return "", 0, err
	}
	return b.Roles[pid], b.Codes[pid], nil
}

func (b *Binding) Release(ax.Element) { b.Released++ }
