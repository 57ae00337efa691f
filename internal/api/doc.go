// Package api exposes the CLI-facing workflows: listing running
// applications and running a warm-up pass. The command layer stays thin;
// everything testable lives here, behind request/result structs that take
// the accessibility binding and logger as explicit dependencies.
package api
