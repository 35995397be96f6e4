// Package render provides ANSI styling for terminal output.
package render

import "fmt"

// ANSI escape codes used by the session output.
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
	White  = "\033[37m"

	BrightYellow = "\033[93m"
	BrightWhite  = "\033[97m"
)

// Colorize wraps text with the given ANSI color code and a reset suffix.
//
// Postcondition: Returns text wrapped with the color code and Reset.
func Colorize(color, text string) string {
	return color + text + Reset
}

// Colorf wraps a formatted string with the given ANSI color code.
func Colorf(color, format string, args ...interface{}) string {
	return color + fmt.Sprintf(format, args...) + Reset
}

// Styler applies colors only when enabled, so plain output stays byte-exact.
type Styler struct {
	enabled bool
}

// NewStyler returns a Styler that colors output when enabled is true.
func NewStyler(enabled bool) Styler {
	return Styler{enabled: enabled}
}

// Enabled reports whether the styler emits escape codes.
func (s Styler) Enabled() bool {
	return s.enabled
}

// Style colors text, or returns it unchanged when disabled.
func (s Styler) Style(color, text string) string {
	if !s.enabled {
		return text
	}
	return Colorize(color, text)
}

// StripANSI removes all ANSI escape sequences from a string.
//
// Postcondition: Returns text with all \033[...m sequences removed.
func StripANSI(s string) string {
	result := make([]byte, 0, len(s))
	i := 0
	for i < len(s) {
		if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && s[j] != 'm' {
				j++
			}
			if j < len(s) {
				i = j + 1
				continue
			}
		}
		result = append(result, s[i])
		i++
	}
	return string(result)
}
