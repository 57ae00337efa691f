// Package ax is the thin binding over the macOS accessibility API.
//
// It exposes the four operations the rest of the tool needs: the process
// trust check, workspace enumeration of running applications, creation of
// an application's accessibility root element, and a single attribute read
// against that element. The darwin implementation talks to
// ApplicationServices and AppKit through cgo; every other platform gets a
// stub binding that reports itself as untrusted and unavailable.
//
// Attribute reads go through ReadAttribute, which hides the calling
// convention split that exists across API bridge versions: a binding that
// rejects the requested convention with ErrConvention is retried once with
// the alternate form before the failure is surfaced.
package ax
