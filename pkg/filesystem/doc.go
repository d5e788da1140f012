// Package filesystem provides filesystem implementations for gradlepatch.
//
// This package contains implementations of the types.FS interface,
// the standard OS filesystem and an afero backed one used by tests.
package filesystem
