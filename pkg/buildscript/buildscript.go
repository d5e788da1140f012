// Package buildscript finds a named top-level block such as
// "buildscript {" in a Gradle descriptor and injects a dependency
// declaration and repository declarations into it, or renders a new block
// when the descriptor has none.
//
// Searching happens on comment-masked text, so a commented-out block is
// never augmented. This is not a parser: the rewrite only locates the
// opening brace of the block, and Body matches braces by counting them.
package buildscript

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/gradlepatch/pkg/comments"
	"github.com/arthur-debert/gradlepatch/pkg/dialect"
)

// DefaultKeyword is the block gradlepatch augments
const DefaultKeyword = "buildscript"

const indent = "    "

// BlockSpec describes what to put into the block
type BlockSpec struct {
	// Keyword names the block, DefaultKeyword when empty
	Keyword string
	// Injection is the literal statement placed first in the block
	Injection string
	// Repositories are repository function names, rendered as calls
	Repositories []string
	Dialect      dialect.Dialect
}

func (s BlockSpec) keyword() string {
	if s.Keyword == "" {
		return DefaultKeyword
	}
	return s.Keyword
}

func opener(keyword string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(keyword) + `[ \t\n\r]*\{`)
}

// Locate returns the byte range of the leftmost block opener for keyword
// in masked. Later blocks with the same keyword are never considered.
func Locate(masked, keyword string) (start, end int, ok bool) {
	loc := opener(keyword).FindStringIndex(masked)
	if loc == nil {
		return 0, 0, false
	}
	return loc[0], loc[1], true
}

// Body returns the content of the leftmost block for keyword in masked,
// between its opening brace and the matching closing brace. Braces are
// counted without regard to string literals. An unterminated block runs to
// the end of masked. An empty keyword means DefaultKeyword.
func Body(masked, keyword string) (string, bool) {
	_, end, ok := Locate(masked, BlockSpec{Keyword: keyword}.keyword())
	if !ok {
		return "", false
	}
	depth := 1
	for i := end; i < len(masked); i++ {
		switch masked[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return masked[end:i], true
			}
		}
	}
	return masked[end:], true
}

// Rewrite masks the comments out of text and, when the block exists,
// returns the masked text with the block opener expanded to carry the
// injection and the repositories. The result is the complete new content
// of the file: comments anywhere in the file are gone. When the block does
// not exist Rewrite returns "" and false and the caller falls back to
// appending NewBlock.
func Rewrite(text string, spec BlockSpec) (string, bool) {
	masked := comments.MaskText(text)
	start, end, ok := Locate(masked, spec.keyword())
	if !ok {
		return "", false
	}

	var b strings.Builder
	b.Grow(len(masked) + len(spec.Injection) + 64)
	b.WriteString(masked[:start])
	b.WriteString(spec.keyword())
	b.WriteString(" {\n")
	b.WriteString(indent + spec.Injection + "\n")
	writeRepositories(&b, spec)
	b.WriteString(masked[end:])
	return b.String(), true
}

// NewBlock renders a complete block to append at the end of a descriptor.
// It starts with a newline so it never joins the file's last line.
func NewBlock(spec BlockSpec) string {
	var b strings.Builder
	b.WriteString("\n" + spec.keyword() + " {\n")
	b.WriteString(indent + spec.Injection + "\n")
	writeRepositories(&b, spec)
	b.WriteString("\n}")
	return b.String()
}

func writeRepositories(b *strings.Builder, spec BlockSpec) {
	b.WriteString(indent + "repositories {\n")
	for _, r := range spec.Repositories {
		b.WriteString(indent + indent + spec.Dialect.RepositoryCall(r) + "\n")
	}
	b.WriteString(indent + "}")
}
