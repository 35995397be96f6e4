package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestColorize(t *testing.T) {
	assert.Equal(t, "\033[31mdanger\033[0m", Colorize(Red, "danger"))
}

func TestColorf(t *testing.T) {
	assert.Equal(t, "\033[32mdoors: 2\033[0m", Colorf(Green, "doors: %d", 2))
}

func TestStyler_Disabled(t *testing.T) {
	s := NewStyler(false)
	assert.False(t, s.Enabled())
	assert.Equal(t, "Huh?", s.Style(Yellow, "Huh?"))
}

func TestStyler_Enabled(t *testing.T) {
	s := NewStyler(true)
	assert.True(t, s.Enabled())
	assert.Equal(t, Yellow+"Huh?"+Reset, s.Style(Yellow, "Huh?"))
}

func TestStripANSI(t *testing.T) {
	input := "\033[31mred\033[0m normal \033[1m\033[32mbold green\033[0m"
	assert.Equal(t, "red normal bold green", StripANSI(input))
	assert.Equal(t, "", StripANSI(""))
}

// Property: stripping a styled string yields the original text.
func TestPropertyStripANSIInversesStyle(t *testing.T) {
	colors := []string{Red, Green, Yellow, Cyan, White, Bold, Dim, BrightWhite, BrightYellow}
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[a-zA-Z0-9 .!?]{0,50}`).Draw(t, "text")
		color := rapid.SampledFrom(colors).Draw(t, "color")
		enabled := rapid.Bool().Draw(t, "enabled")
		assert.Equal(t, text, StripANSI(NewStyler(enabled).Style(color, text)))
	})
}
