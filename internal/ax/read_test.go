package ax

import (
	"errors"
	"testing"
)

type conventionBinding struct {
	supported Convention
	hardErr   error
	value     string
	code      Code
	calls     []Convention
}

func (b *conventionBinding) Trusted() bool { return true }

func (b *conventionBinding) RunningApplications() ([]AppInfo, error) { return nil, nil }

func (b *conventionBinding) AppElement(int) (Element, error) { return Element(1), nil }

func (b *conventionBinding) CopyAttribute(_ Element, _ string, conv Convention) (string, Code, error) {
	b.calls = append(b.calls, conv)
	if b.hardErr != nil {
		return "", 0, b.hardErr
	}
	if conv != b.supported {
		return "", 0, ErrConvention
	}
	return b.value, b.code, nil
}

func (b *conventionBinding) Release(Element) {}

func TestReadAttributePrefersOutParamConvention(t *testing.T) {
	binding := &conventionBinding{supported: ConventionOutParam, value: "AXApplication"}

	value, code, err := ReadAttribute(binding, Element(1), RoleAttribute)
	if err != nil {
		t.Fatalf("ReadAttribute returned error: %v", err)
	}
	if value != "AXApplication" || code != CodeSuccess {
		t.Fatalf("unexpected result: value=%q code=%d", value, code)
	}
	if len(binding.calls) != 1 || binding.calls[0] != ConventionOutParam {
		t.Fatalf("expected a single out-param call, got %v", binding.calls)
	}
}

func TestReadAttributeFallsBackToDirectConvention(t *testing.T) {
	binding := &conventionBinding{supported: ConventionDirect, value: "AXApplication"}

	value, _, err := ReadAttribute(binding, Element(1), RoleAttribute)
	if err != nil {
		t.Fatalf("ReadAttribute returned error: %v", err)
	}
	if value != "AXApplication" {
		t.Fatalf("unexpected value: %q", value)
	}
	want := []Convention{ConventionOutParam, ConventionDirect}
	if len(binding.calls) != 2 || binding.calls[0] != want[0] || binding.calls[1] != want[1] {
		t.Fatalf("expected fallback call order %v, got %v", want, binding.calls)
	}
}

func TestReadAttributeSurfacesDoubleConventionMismatch(t *testing.T) {
	binding := &conventionBinding{supported: Convention(-1)}

	_, _, err := ReadAttribute(binding, Element(1), RoleAttribute)
	if !errors.Is(err, ErrConvention) {
		t.Fatalf("expected ErrConvention, got %v", err)
	}
	if len(binding.calls) != 2 {
		t.Fatalf("expected exactly two attempts, got %d", len(binding.calls))
	}
}

func TestReadAttributeDoesNotRetryHardErrors(t *testing.T) {
	hard := errors.New("binding exploded")
	binding := &conventionBinding{supported: ConventionOutParam, hardErr: hard}

	_, _, err := ReadAttribute(binding, Element(1), RoleAttribute)
	if !errors.Is(err, hard) {
		t.Fatalf("expected hard error, got %v", err)
	}
	if len(binding.calls) != 1 {
		t.Fatalf("hard errors must not be retried, got %d calls", len(binding.calls))
	}
}
