// Package comments masks comments out of Gradle descriptor text so that
// structural pattern matching ignores commented-out code.
//
// The scanner is a two state machine, Normal and InBlockComment, run line
// by line. The state is threaded across lines by the caller (see Mask) and
// is never part of a line's value. A masked text always has as many lines as
// its source: a line that lies entirely inside a block comment becomes an
// empty line rather than disappearing.
//
// The scanner is not a lexer. It does not know about string literals and it
// does not nest block comments: the first closer ends the comment.
package comments
