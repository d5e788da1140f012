package types

// Directive describes one injection: which dependency it provides and the
// auxiliary descriptor fragment that declares it. Directives are values and
// are never modified once built from configuration.
type Directive struct {
	Dependency Dependency
	// FragmentFile is the name of the auxiliary descriptor file copied into
	// the module directory and referenced by an apply statement
	FragmentFile string
}

// BuildscriptDirective describes the buildscript classpath injection
type BuildscriptDirective struct {
	Dependency Dependency
	// Keyword names the block to augment, "buildscript" for Gradle
	Keyword string
	// Configuration is the buildscript configuration receiving the dependency
	Configuration string
	// Repositories are repository function names such as "google"
	Repositories []string
}
