// Package warmup performs the bootstrap attribute reads that make the
// accessibility daemon materialize and cache element trees.
//
// One warm-up is exactly one read of the role attribute against an
// application's accessibility root; the returned value is discarded. The
// read's side effect on the daemon's cache is the point. Outcomes are
// classified three ways: success, partial (the tree is mid-initialization),
// and failure. Batches run strictly sequentially with fixed pacing between
// targets; issuing concurrent accessibility calls against the daemon is
// unsupported and unreliable.
package warmup
