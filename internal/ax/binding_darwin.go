//go:build darwin && cgo

package ax

/*
#cgo CFLAGS: -mmacosx-version-min=11.0
#cgo LDFLAGS: -mmacosx-version-min=11.0 -framework ApplicationServices -framework AppKit -framework CoreFoundation
#include <stdlib.h>
#include "ax_darwin.h"
*/
import "C"

import (
	"errors"
	"fmt"
	"unsafe"
)

// platformBinding talks to ApplicationServices and AppKit directly.
type platformBinding struct{}

// NewBinding returns the accessibility binding for this platform.
func NewBinding() Binding {
	return platformBinding{}
}

func (platformBinding) Trusted() bool {
	return C.axwarm_trusted() != 0
}

func (platformBinding) RunningApplications() ([]AppInfo, error) {
	var count C.int
	infos := C.axwarm_copy_running_apps(&count)
	if infos == nil {
		return nil, errors.New("workspace enumeration failed")
	}
	defer C.axwarm_free_apps(infos, count)

	out := make([]AppInfo, 0, int(count))
	for _, info := range unsafe.Slice(infos, int(count)) {
		out = append(out, AppInfo{
			Name:     C.GoString(&info.name[0]),
			PID:      int(info.pid),
			BundleID: C.GoString(&info.bundle_id[0]),
		})
	}
	return out, nil
}

func (platformBinding) AppElement(pid int) (Element, error) {
	ref := C.axwarm_create_app_element(C.int(pid))
	if ref == nil {
		return 0, fmt.Errorf("create accessibility element for pid %d", pid)
	}
	return Element(uintptr(ref)), nil
}

// CopyAttribute ignores the requested convention: the C API exposes a single
// signature, so both forms resolve to the same call. The convention split
// only matters for bridge-level bindings that reject one of the forms.
func (platformBinding) CopyAttribute(el Element, attr string, conv Convention) (string, Code, error) {
	_ = conv
	if el == 0 {
		return "", CodeSuccess, errors.New("nil accessibility element")
	}

	cattr := C.CString(attr)
	defer C.free(unsafe.Pointer(cattr))

	buf := make([]C.char, C.AXWARM_NAME_MAX)
	code := C.axwarm_copy_attr(unsafe.Pointer(el), cattr, &buf[0], C.size_t(len(buf)))
	return C.GoString(&buf[0]), Code(code), nil
}

func (platformBinding) Release(el Element) {
	if el != 0 {
		C.axwarm_release(unsafe.Pointer(el))
	}
}
