package mdr

import (
	"strings"
	"testing"
)

const markBG = "\x1b[48;2;255;214;102m"

func TestMarkSingleBackgroundRun(t *testing.T) {
	out := renderDoc(t, []byte("This is ==highlighted== text.\n"), 80)
	if n := strings.Count(out, markBG); n != 1 {
		t.Fatalf("mark background emitted %d times, want 1 in %q", n, out)
	}
	if !strings.Contains(out, markBG+"highlighted") {
		t.Fatalf("mark background does not precede the span text: %q", out)
	}
}

func TestMarkAbsentWithoutSpans(t *testing.T) {
	out := renderDoc(t, []byte("No spans here.\n"), 80)
	if strings.Contains(out, markBG) {
		t.Fatalf("mark background leaked into plain prose: %q", out)
	}
}

func TestMarkUnclosedStaysLiteral(t *testing.T) {
	out := renderDoc(t, []byte("a == b stays plain\n"), 80)
	if strings.Contains(out, markBG) {
		t.Fatalf("space-flanked delimiter opened a span: %q", out)
	}
	if plain := stripANSI(out); !strings.Contains(plain, "a == b stays plain") {
		t.Fatalf("literal text lost: %q", plain)
	}
}

func TestMarkTripleDelimiterStaysLiteral(t *testing.T) {
	out := renderDoc(t, []byte("a ===x=== b\n"), 80)
	if strings.Contains(out, markBG) {
		t.Fatalf("triple delimiter opened a span: %q", out)
	}
	if plain := stripANSI(out); !strings.Contains(plain, "===x===") {
		t.Fatalf("literal text lost: %q", plain)
	}
}

func TestMarkInsideEmphasisKeepsItalic(t *testing.T) {
	out := renderDocWithOptions(t, []byte("*a ==b== c*\n"), 80, WithItalics(ItalicsAlways))
	if !strings.Contains(out, markBG+"\x1b[3mb") {
		t.Fatalf("marked text inside emphasis lost the italic attribute: %q", out)
	}
}
