package comments

import (
	"regexp"
	"strings"
)

const (
	LineComment = "//"
	BlockOpen   = "/*"
	BlockClose  = "*/"
)

// blockSpan matches a complete block comment within a single line.
// Non-greedy, and '.' does not cross newlines.
var blockSpan = regexp.MustCompile(`/\*.*?\*/`)

// RemoveBlockSpans removes every complete /* ... */ span from line
func RemoveBlockSpans(line string) string {
	return blockSpan.ReplaceAllString(line, "")
}

// StripLine removes comments from one line. inBlock tells whether the line
// starts inside an open block comment; the second result is the state for
// the next line.
func StripLine(line string, inBlock bool) (string, bool) {
	reduced := RemoveBlockSpans(line)

	if i := strings.Index(reduced, BlockClose); i >= 0 {
		reduced = reduced[i+len(BlockClose):]
		inBlock = false
	} else if inBlock {
		return "", true
	}

	lc := strings.Index(reduced, LineComment)
	bo := strings.Index(reduced, BlockOpen)
	if cut := SmallestNonNegative(lc, bo); cut >= 0 {
		if cut == bo {
			inBlock = true
		}
		reduced = reduced[:cut]
	}
	return reduced, inBlock
}

// Mask returns lines with comments removed. The result has the same length
// as lines. An unterminated block comment swallows the remaining lines.
func Mask(lines []string) []string {
	masked := make([]string, len(lines))
	inBlock := false
	for i, line := range lines {
		masked[i], inBlock = StripLine(line, inBlock)
	}
	return masked
}

// MaskText masks a whole descriptor. Every resulting line, the last one
// included, is terminated by a newline.
func MaskText(text string) string {
	lines := SplitLines(text)
	var b strings.Builder
	b.Grow(len(text) + 1)
	for _, l := range Mask(lines) {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}

// SplitLines splits text into lines. A trailing newline does not produce an
// extra empty line and a "\r\n" ending is treated as "\n".
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// SmallestNonNegative returns the smallest of nums that is >= 0, or -1 when
// there is none.
func SmallestNonNegative(nums ...int) int {
	smallest := -1
	for _, n := range nums {
		if n >= 0 && (smallest < 0 || n < smallest) {
			smallest = n
		}
	}
	return smallest
}
