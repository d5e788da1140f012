// Package types defines the core types and interfaces used throughout gradlepatch.
// This includes the read-only query interfaces a Gradle module handle exposes
// (configurations, dependencies, applied plugins), the Dependency value, the
// injection Directive and the FS abstraction used by the patch applier.
package types
