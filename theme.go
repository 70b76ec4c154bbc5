package mdr

import (
	"errors"
	"sort"
	"strings"

	"pkt.systems/mdr/internal/palette"
)

// ErrUnknownTheme is returned when a prose or code theme name does not
// resolve to anything built in.
var ErrUnknownTheme = errors.New("unknown theme")

// Styles groups the semantic styles used by the renderer.
type Styles struct {
	Text           Style
	Heading        [6]Style
	Emphasis       Style
	Strong         Style
	EmphasisStrong Style
	Strike         Style
	Mark           Style
	CodeInline     Style
	Quote          Style
	QuoteBG        RGB
	ListMarker     Style
	LinkText       Style
	LinkURL        Style
	ThematicBreak  Style
	Light          bool
}

// Theme provides named styles for Markdown rendering.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

var (
	markBackground = RGB{R: 255, G: 214, B: 102}
	linkFallback   = RGB{R: 30, G: 144, B: 255}
	codeGrayBG     = RGB{R: 68, G: 68, B: 68}
)

// stylesFromPalette maps a palette onto the semantic styles. The first three
// heading levels add bold on top of their palette color, inline code always
// carries a background, marks force black text on the highlight color, and
// quotes get a derived background when the palette does not define one.
func stylesFromPalette(p palette.Palette) Styles {
	codeBG := RGB(p.CodeBg)
	if codeBG == (RGB{}) {
		codeBG = codeGrayBG
	}
	quoteBG := RGB(p.QuoteBg)
	if quoteBG == (RGB{}) {
		if p.Light {
			quoteBG = blend(RGB(p.Quote), RGB{R: 255, G: 255, B: 255}, 15)
		} else {
			quoteBG = blend(RGB(p.Quote), RGB{R: 16, G: 16, B: 16}, 18)
		}
	}
	link := styleFG(RGB(p.Link), 0)
	if p.Link == p.Text {
		link = styleFG(linkFallback, attrUnderline)
	}
	s := Styles{
		Text:           styleFG(RGB(p.Text), 0),
		Emphasis:       styleFG(RGB(p.Emphasis), attrItalic),
		Strong:         styleFG(RGB(p.Strong), attrBold),
		EmphasisStrong: styleFG(RGB(p.Strong), attrBold|attrItalic),
		Strike:         styleFG(RGB(p.Text), attrStrike),
		Mark:           Style{HasFG: true, HasBG: true, BG: markBackground},
		CodeInline:     styleFG(RGB(p.CodeInline), 0).withBG(codeBG),
		Quote:          styleFG(RGB(p.Quote), attrItalic),
		QuoteBG:        quoteBG,
		ListMarker:     styleFG(RGB(p.ListMarker), 0),
		LinkText:       link,
		LinkURL:        styleFG(RGB(p.LinkURL), 0),
		ThematicBreak:  styleFG(RGB(p.ThematicBreak), 0),
		Light:          p.Light,
	}
	for i, c := range p.Heading {
		attrs := attrMask(0)
		if i < 3 {
			attrs = attrBold
		}
		s.Heading[i] = styleFG(RGB(c), attrs)
	}
	return s
}

var builtinThemes = map[string]Theme{
	"default":          theme{name: "default", styles: stylesFromPalette(palette.Default)},
	"default-light":    theme{name: "default-light", styles: stylesFromPalette(palette.DefaultLight)},
	"dracula":          theme{name: "dracula", styles: stylesFromPalette(palette.Dracula)},
	"nord":             theme{name: "nord", styles: stylesFromPalette(palette.Nord)},
	"gruvbox":          theme{name: "gruvbox", styles: stylesFromPalette(palette.GruvboxDark)},
	"gruvbox-light":    theme{name: "gruvbox-light", styles: stylesFromPalette(palette.GruvboxLight)},
	"solarized-dark":   theme{name: "solarized-dark", styles: stylesFromPalette(palette.SolarizedDark)},
	"solarized-light":  theme{name: "solarized-light", styles: stylesFromPalette(palette.SolarizedLight)},
	"github-dark":      theme{name: "github-dark", styles: stylesFromPalette(palette.GithubDark)},
	"github-light":     theme{name: "github-light", styles: stylesFromPalette(palette.GithubLight)},
	"tokyo-night":      theme{name: "tokyo-night", styles: stylesFromPalette(palette.TokyoNight)},
	"catppuccin-mocha": theme{name: "catppuccin-mocha", styles: stylesFromPalette(palette.CatppuccinMocha)},
	"one-dark":         theme{name: "one-dark", styles: stylesFromPalette(palette.OneDark)},
	"one-light":        theme{name: "one-light", styles: stylesFromPalette(palette.OneLight)},
	"everforest":       theme{name: "everforest", styles: stylesFromPalette(palette.Everforest)},
	"rose-pine":        theme{name: "rose-pine", styles: stylesFromPalette(palette.RosePine)},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name. The empty name resolves to
// the default theme.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}

// DefaultLightTheme returns the light counterpart of the default theme.
func DefaultLightTheme() Theme {
	return builtinThemes["default-light"]
}
