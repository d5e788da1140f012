// Package inject runs the three ensure steps against an application
// module, in order:
//
//  1. EnsureSdkDependency puts the SDK on the module's classpath by copying
//     the SDK descriptor fragment next to the build file and appending an
//     apply statement for it.
//  2. EnsureBuildscriptDependency puts the Gradle plugin on the buildscript
//     classpath, rewriting the existing buildscript block or appending a
//     new one.
//  3. EnsurePluginApplied copies the plugin fragment and appends its apply
//     statement.
//
// Every step first asks the oracle whether the module model already has
// what the step would add, then checks the comment-masked descriptor text:
// an apply statement for the fragment in any quoting, or the plugin
// coordinate inside the buildscript block. Either check makes the step a
// no-op. A failing step aborts the run; steps
// already applied stay applied.
package inject
