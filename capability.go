package mdr

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorDepth is the color capability a render targets. DepthNone disables
// rendering entirely: input passes through untouched. DepthAuto defers to a
// terminal probe at render time.
type ColorDepth int

const (
	DepthAuto ColorDepth = iota
	DepthNone
	DepthANSI16
	DepthANSI256
	DepthTrueColor
)

func (d ColorDepth) String() string {
	switch d {
	case DepthAuto:
		return "auto"
	case DepthNone:
		return "none"
	case DepthANSI16:
		return "16"
	case DepthANSI256:
		return "256"
	case DepthTrueColor:
		return "truecolor"
	}
	return "unknown"
}

// ParseColorDepth maps a user-facing depth name onto a ColorDepth.
func ParseColorDepth(s string) (ColorDepth, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return DepthAuto, nil
	case "none", "off", "no":
		return DepthNone, nil
	case "16", "ansi", "ansi16":
		return DepthANSI16, nil
	case "256", "ansi256":
		return DepthANSI256, nil
	case "truecolor", "24bit", "full":
		return DepthTrueColor, nil
	}
	return DepthAuto, fmt.Errorf("invalid color depth %q", s)
}

func (d ColorDepth) profile() termenv.Profile {
	switch d {
	case DepthANSI16:
		return termenv.ANSI
	case DepthANSI256:
		return termenv.ANSI256
	case DepthTrueColor:
		return termenv.TrueColor
	}
	return termenv.Ascii
}

// DetectColorDepth inspects the environment and the output writer and picks
// the richest depth the terminal advertises. NO_COLOR and TERM=dumb disable
// color; CLICOLOR_FORCE overrides the terminal check.
func DetectColorDepth(out io.Writer) ColorDepth {
	if termenv.EnvNoColor() {
		return DepthNone
	}
	forced := cliColorForced()
	if !forced && !writerIsTerminal(out) {
		return DepthNone
	}
	switch termenv.EnvColorProfile() {
	case termenv.TrueColor:
		return DepthTrueColor
	case termenv.ANSI256:
		return DepthANSI256
	case termenv.ANSI:
		return DepthANSI16
	}
	if forced {
		return DepthANSI16
	}
	return DepthNone
}

func cliColorForced() bool {
	force := os.Getenv("CLICOLOR_FORCE")
	return force != "" && force != "0"
}

func writerIsTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// DetectHyperlinks returns true if the current environment likely supports
// OSC 8 hyperlinks.
func DetectHyperlinks() bool {
	if os.Getenv("OSC8") == "0" {
		return false
	}
	if os.Getenv("DOMTERM") != "" {
		return true
	}
	if os.Getenv("WT_SESSION") != "" {
		return true
	}
	termProgram := os.Getenv("TERM_PROGRAM")
	if termProgram == "iTerm.app" || termProgram == "WezTerm" || termProgram == "vscode" || termProgram == "ghostty" {
		return true
	}
	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "kitty") || strings.Contains(term, "ghostty") {
		return true
	}
	if vte := os.Getenv("VTE_VERSION"); vte != "" {
		if n, err := strconv.Atoi(vte); err == nil && n >= 5000 {
			return true
		}
	}
	return false
}

// DetectItalics returns false on terminals known to render italics as
// reverse video or not at all.
func DetectItalics() bool {
	term := os.Getenv("TERM")
	if term == "linux" || term == "dumb" {
		return false
	}
	if strings.HasPrefix(term, "screen") && os.Getenv("TMUX") == "" {
		return false
	}
	return true
}

// DetectKittyGraphics returns true if the terminal likely implements the
// kitty graphics protocol.
func DetectKittyGraphics() bool {
	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return true
	}
	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "kitty") || strings.Contains(term, "ghostty") {
		return true
	}
	termProgram := os.Getenv("TERM_PROGRAM")
	return termProgram == "WezTerm" || termProgram == "ghostty"
}

// DetectDiagrams returns true if the mermaid CLI is available on PATH.
func DetectDiagrams() bool {
	_, err := exec.LookPath("mmdc")
	return err == nil
}
