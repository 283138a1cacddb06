// Package dirstat walks a directory tree and aggregates file and directory statistics.
//
// The walk is depth-first and single-threaded, driven by an explicit stack so that
// arbitrarily deep trees do not grow the goroutine stack. Each directory owns its own
// Result, which is merged into its parent's once the directory has been fully visited.
// Unreadable directories, unresolvable entries and files whose size cannot be read are
// logged and skipped; they never abort the walk.
package dirstat
