package mdr

import (
	"os"
	"regexp"
	"testing"
)

var ansiRegexp = regexp.MustCompile("\x1b\\[[0-9;]*[A-Za-z]")
var osc8Regexp = regexp.MustCompile("\x1b\\]8;;[^\x07]*\x07")
var kittyRegexp = regexp.MustCompile("\x1b_G[^\x1b]*\x1b\\\\")

func stripANSI(s string) string {
	s = ansiRegexp.ReplaceAllString(s, "")
	s = osc8Regexp.ReplaceAllString(s, "")
	s = kittyRegexp.ReplaceAllString(s, "")
	return s
}

// renderDoc renders with italics pinned off so output does not depend on the
// TERM of the machine running the tests.
func renderDoc(t *testing.T, src []byte, width int) string {
	t.Helper()
	return renderDocWithOptions(t, src, width)
}

func renderDocWithOptions(t *testing.T, src []byte, width int, opts ...RenderOption) string {
	t.Helper()
	base := []RenderOption{WithItalics(ItalicsNever)}
	if width > 0 {
		base = append(base, WithWidth(width))
	}
	out, err := Render(src, append(base, opts...)...)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out
}

func readAgents(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile("testdata/agents.md")
	if err != nil {
		t.Fatalf("read agents.md: %v", err)
	}
	return data
}

func readFeatures(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile("testdata/features.md")
	if err != nil {
		t.Fatalf("read features.md: %v", err)
	}
	return data
}
