// Package dialect selects the Gradle descriptor syntax of a build file and
// renders the literal fragments gradlepatch writes in that syntax.
package dialect

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/arthur-debert/gradlepatch/pkg/errors"
)

// Dialect is one of the two supported descriptor syntaxes
type Dialect int

const (
	// Groovy is the build.gradle syntax
	Groovy Dialect = iota + 1
	// Kotlin is the build.gradle.kts syntax
	Kotlin
)

const (
	GroovySuffix = ".gradle"
	KotlinSuffix = ".kts"
)

// ForPath picks the dialect from the file name suffix. Any suffix other
// than .kts or .gradle is an ErrUnknownDialect error.
func ForPath(path string) (Dialect, error) {
	switch {
	case strings.HasSuffix(path, KotlinSuffix):
		return Kotlin, nil
	case strings.HasSuffix(path, GroovySuffix):
		return Groovy, nil
	}
	return 0, errors.Newf(errors.ErrUnknownDialect, "could not determine language for %s", path).
		WithDetail("path", path)
}

func (d Dialect) String() string {
	switch d {
	case Groovy:
		return "groovy"
	case Kotlin:
		return "kotlin"
	}
	return fmt.Sprintf("Dialect(%d)", int(d))
}

// ApplyStatement returns the fragment appended to a descriptor to apply
// another descriptor file. It starts with a newline so it can be appended
// to a file whatever its last byte is.
func (d Dialect) ApplyStatement(file string) string {
	if d == Kotlin {
		return fmt.Sprintf("\napply(%q)", file)
	}
	return fmt.Sprintf("\napply from: %q", file)
}

// Applies reports whether text holds a statement applying file, in any
// dialect and quote style: apply from: "f", apply from: 'f', apply("f"),
// apply(from = "f") and apply(from: 'f'). Comments are not skipped, callers
// pass masked text.
func Applies(text, file string) bool {
	re := regexp.MustCompile(`\bapply\s*\(?\s*(?:from\s*[:=]\s*)?["']` + regexp.QuoteMeta(file) + `["']`)
	return re.MatchString(text)
}

// ClasspathStatement returns the statement adding coordinate to the given
// buildscript configuration. The method-call form is valid in both
// dialects; Kotlin only accepts double quoted strings.
func (d Dialect) ClasspathStatement(configuration, coordinate string) string {
	if d == Kotlin {
		return fmt.Sprintf("dependencies.add(%q, %q)", configuration, coordinate)
	}
	return fmt.Sprintf("dependencies.add('%s', '%s')", configuration, coordinate)
}

// RepositoryCall renders a repository declaration such as google()
func (d Dialect) RepositoryCall(name string) string {
	return name + "()"
}
