package mdr

import "fmt"

// ColorMode selects between dark and light rendering defaults.
type ColorMode int

const (
	ColorModeDark ColorMode = iota
	ColorModeLight
)

// ItalicsMode controls whether italic escapes are emitted.
type ItalicsMode int

const (
	ItalicsAuto ItalicsMode = iota
	ItalicsAlways
	ItalicsNever
)

// DiagramMode controls how mermaid fenced blocks are rendered.
type DiagramMode int

const (
	// DiagramsOff renders diagram fences as regular highlighted code.
	DiagramsOff DiagramMode = iota
	// DiagramsImage renders diagrams to an inline image, falling back to
	// highlighted code when the pipeline fails.
	DiagramsImage
	// DiagramsText always takes the highlighted-code path.
	DiagramsText
)

// RenderOption configures rendering behavior.
type RenderOption func(*renderConfig)

type renderConfig struct {
	width       int
	theme       Theme
	themeName   string
	colorMode   ColorMode
	codeTheme   string
	depth       ColorDepth
	italics     ItalicsMode
	hyperlinks  bool
	images      bool
	imageBase   string
	diagrams    DiagramMode
	diagramPipe DiagramPipeline
	lineNumbers bool
}

func newRenderConfig() renderConfig {
	return renderConfig{
		width:       80,
		depth:       DepthTrueColor,
		diagramPipe: mermaidCLI{cmd: "mmdc"},
	}
}

func (cfg *renderConfig) resolvedTheme() (Theme, error) {
	if cfg.theme != nil {
		return cfg.theme, nil
	}
	if cfg.themeName != "" {
		th, ok := ThemeByName(cfg.themeName)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, cfg.themeName)
		}
		return th, nil
	}
	if cfg.colorMode == ColorModeLight {
		return DefaultLightTheme(), nil
	}
	return DefaultTheme(), nil
}

// WithWidth sets the render width in terminal cells. Widths below 20 are
// clamped to 20.
func WithWidth(width int) RenderOption {
	return func(cfg *renderConfig) {
		if width < 20 {
			width = 20
		}
		cfg.width = width
	}
}

// WithTheme sets the prose theme. It takes precedence over WithThemeName
// and WithColorMode.
func WithTheme(t Theme) RenderOption {
	return func(cfg *renderConfig) {
		cfg.theme = t
	}
}

// WithThemeName selects a built-in prose theme by name. An unknown name
// fails the render with ErrUnknownTheme.
func WithThemeName(name string) RenderOption {
	return func(cfg *renderConfig) {
		cfg.themeName = name
	}
}

// WithColorMode selects the dark or light default theme and steers how
// highlighted code lines are tinted.
func WithColorMode(mode ColorMode) RenderOption {
	return func(cfg *renderConfig) {
		cfg.colorMode = mode
	}
}

// WithCodeTheme sets the syntax highlighting style for fenced code blocks.
// The empty string picks a style matching the prose theme.
func WithCodeTheme(name string) RenderOption {
	return func(cfg *renderConfig) {
		cfg.codeTheme = name
	}
}

// WithColorDepth sets the target color depth. DepthNone bypasses rendering
// and passes input through unchanged; DepthAuto probes the output terminal.
func WithColorDepth(depth ColorDepth) RenderOption {
	return func(cfg *renderConfig) {
		cfg.depth = depth
	}
}

// WithItalics controls italic escapes. In auto mode the terminal is probed;
// when italics are off, emphasis still changes color but no italic attribute
// is emitted.
func WithItalics(mode ItalicsMode) RenderOption {
	return func(cfg *renderConfig) {
		cfg.italics = mode
	}
}

// WithHyperlinks enables or disables OSC 8 hyperlinks. When disabled, link
// text keeps its style but no hyperlink escapes are written.
func WithHyperlinks(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.hyperlinks = enabled
	}
}

// WithImages enables inline image rendering over the kitty graphics
// protocol. When disabled, images render as a placeholder with their alt
// text.
func WithImages(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.images = enabled
	}
}

// WithImageBase sets the directory that relative image paths resolve
// against. Resolved paths may not escape it.
func WithImageBase(base string) RenderOption {
	return func(cfg *renderConfig) {
		cfg.imageBase = base
	}
}

// WithDiagrams sets the mermaid rendering mode.
func WithDiagrams(mode DiagramMode) RenderOption {
	return func(cfg *renderConfig) {
		cfg.diagrams = mode
	}
}

// WithDiagramCommand overrides the mermaid CLI executable used by the
// default pipeline.
func WithDiagramCommand(cmd string) RenderOption {
	return func(cfg *renderConfig) {
		if cmd != "" {
			cfg.diagramPipe = mermaidCLI{cmd: cmd}
		}
	}
}

// WithDiagramPipeline replaces the pipeline that turns diagram source into
// a PNG. The default shells out to the mermaid CLI.
func WithDiagramPipeline(p DiagramPipeline) RenderOption {
	return func(cfg *renderConfig) {
		if p != nil {
			cfg.diagramPipe = p
		}
	}
}

// WithLineNumbers renders a line number gutter in all fenced code blocks.
// Individual fences can override this with showLineNumbers in their info
// string.
func WithLineNumbers(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.lineNumbers = enabled
	}
}
