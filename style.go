package mdr

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

const (
	ansiReset    = "\x1b[0m"
	ansiClearEOL = "\x1b[K"

	osc8Prefix = "\x1b]8;;"
	osc8Term   = "\a"
)

// attrMask packs the font attributes a style can carry.
type attrMask uint8

const (
	attrBold attrMask = 1 << iota
	attrItalic
	attrUnderline
	attrStrike
)

var attrCodes = []struct {
	attr attrMask
	code string
}{
	{attrBold, "1"},
	{attrItalic, "3"},
	{attrUnderline, "4"},
	{attrStrike, "9"},
}

// RGB is a 24-bit terminal color.
type RGB struct {
	R, G, B uint8
}

// Style is a resolved terminal style: an optional foreground, an optional
// background and a set of font attributes. The zero value renders text
// unstyled.
type Style struct {
	FG    RGB
	BG    RGB
	HasFG bool
	HasBG bool
	Attrs attrMask
}

func styleFG(c RGB, attrs attrMask) Style {
	return Style{FG: c, HasFG: true, Attrs: attrs}
}

func (s Style) withBG(c RGB) Style {
	s.BG = c
	s.HasBG = true
	return s
}

func (s Style) isZero() bool {
	return !s.HasFG && !s.HasBG && s.Attrs == 0
}

// prefix renders the style as a run of SGR escapes for the given color
// profile. Colors are downsampled through termenv; attributes are emitted
// as-is. An empty string means the style needs no escapes.
func (s Style) prefix(profile termenv.Profile) string {
	if profile == termenv.Ascii || s.isZero() {
		return ""
	}
	var b strings.Builder
	if s.HasFG {
		if seq := colorSequence(s.FG, profile, false); seq != "" {
			b.WriteString("\x1b[")
			b.WriteString(seq)
			b.WriteByte('m')
		}
	}
	if s.HasBG {
		if seq := colorSequence(s.BG, profile, true); seq != "" {
			b.WriteString("\x1b[")
			b.WriteString(seq)
			b.WriteByte('m')
		}
	}
	for _, ac := range attrCodes {
		if s.Attrs&ac.attr != 0 {
			b.WriteString("\x1b[")
			b.WriteString(ac.code)
			b.WriteByte('m')
		}
	}
	return b.String()
}

func colorSequence(c RGB, profile termenv.Profile, bg bool) string {
	return profile.Convert(termenv.RGBColor(hexRGB(c))).Sequence(bg)
}

func hexRGB(c RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// fgEscape and bgEscape emit truecolor SGR sequences directly, bypassing
// profile conversion. Code blocks use them where chroma already decided the
// 24-bit color.
func fgEscape(r, g, b uint8) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)
}

func bgEscape(r, g, b uint8) string {
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", r, g, b)
}

// brighten moves a color a step toward white, darken a step toward black.
// Both are used to derive highlight and quote backgrounds from theme colors.
func brighten(c RGB) RGB {
	return RGB{
		R: c.R + (255-c.R)/5,
		G: c.G + (255-c.G)/5,
		B: c.B + (255-c.B)/5,
	}
}

func darken(c RGB) RGB {
	return RGB{
		R: c.R - c.R/5,
		G: c.G - c.G/5,
		B: c.B - c.B/5,
	}
}

// blend mixes a into b by pct (0..100).
func blend(a, b RGB, pct uint16) RGB {
	mix := func(x, y uint8) uint8 {
		return uint8((uint16(x)*pct + uint16(y)*(100-pct)) / 100)
	}
	return RGB{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B)}
}
