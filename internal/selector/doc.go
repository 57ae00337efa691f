// Package selector picks warm-up targets from a directory snapshot.
//
// Selection runs in two stages: a mode-specific candidate match (explicit
// name fragments, every running application, or the built-in set of
// commonly affected applications), then a uniform helper filter that sets
// aside background subprocesses. Helpers share a main application's name
// but have no independently useful accessibility surface, so warming them
// only wastes attempts. Excluded records are kept for reporting rather
// than silently dropped.
package selector
