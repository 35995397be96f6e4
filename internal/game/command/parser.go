package command

import (
	"strings"
	"unicode/utf8"
)

// ParseResult holds the command key read from a line of input.
type ParseResult struct {
	// Key is the first character of the line. Zero when the line is empty.
	Key rune
	// Raw is the line without its line terminator.
	Raw string
}

// Empty reports whether the line carried no command at all.
func (p ParseResult) Empty() bool {
	return p.Raw == ""
}

// Parse extracts the command key from a line. Only the line terminator is
// removed; the key is the first character as typed, case-sensitive.
//
// Postcondition: Returns a ParseResult. If the line is empty, Key is zero.
func Parse(line string) ParseResult {
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return ParseResult{}
	}
	key, _ := utf8.DecodeRuneInString(line)
	return ParseResult{Key: key, Raw: line}
}
