package termlog

import (
	"strings"

	"github.com/fatih/color"
)

// Semantic colour tags understood by the palette.
const (
	ColorNone Color = iota
	ColorFail
	ColorOkGreen
	ColorInfo
	ColorOkCyan
	ColorHeader
	ColorWarning
	ColorBold
	ColorUnderline
	ColorBlue
	ColorMagenta
)

// Reset is the escape sequence that restores the terminal's default attributes.
const Reset = "\033[0m"

var paletteAttributes = map[Color]color.Attribute{
	ColorFail:      color.FgHiRed,
	ColorOkGreen:   color.FgHiGreen,
	ColorInfo:      color.FgHiYellow,
	ColorOkCyan:    color.FgHiCyan,
	ColorHeader:    color.FgHiMagenta,
	ColorWarning:   color.FgHiYellow,
	ColorBold:      color.Bold,
	ColorUnderline: color.Underline,
	ColorBlue:      color.FgHiBlue,
	ColorMagenta:   color.FgHiMagenta,
}

// paletteCodes caches the SGR sequence for every tag. fatih/color only writes
// sequences when colour is enabled, so each entry is forced on regardless of
// whether the process is attached to a terminal.
var paletteCodes = buildPalette()

func buildPalette() map[Color]string {
	codes := make(map[Color]string, len(paletteAttributes)+1)
	codes[ColorNone] = ""
	for tag, attr := range paletteAttributes {
		c := color.New(attr)
		c.EnableColor()
		var b strings.Builder
		c.SetWriter(&b)
		codes[tag] = b.String()
	}
	return codes
}

// Code returns the escape sequence for the colour tag.
// ColorNone yields an empty string and unknown tags yield Reset.
func (c Color) Code() string {
	if code, ok := paletteCodes[c]; ok {
		return code
	}
	return Reset
}

// Wrap surrounds text with the colour's escape sequence and Reset.
func (c Color) Wrap(text string) string {
	return c.Code() + text + Reset
}
