package mdr

import (
	"strings"
	"testing"
)

func TestWrappedBulletContinuation(t *testing.T) {
	src := strings.Join([]string{
		"- Inputs:",
		"",
		"  - If a user-facing function or interface method takes more than four",
		"    parameters in total, move the non-context inputs into a request struct",
		"    so call sites stay readable at a glance.",
	}, "\n")

	out := stripANSI(renderDoc(t, []byte(src), 60))
	lines := strings.Split(out, "\n")

	var got []string
	for _, line := range lines {
		line = strings.TrimRight(line, " ")
		if line == "" {
			continue
		}
		got = append(got, line)
	}

	want := []string{
		"- Inputs:",
		"  - If a user-facing function or interface method takes more",
		"than four parameters in total, move the non-context inputs",
		"into a request struct so call sites stay readable at a",
		"glance.",
	}

	if len(got) < len(want) {
		t.Fatalf("too few lines: got %d want %d\n%q", len(got), len(want), got)
	}
	for i, line := range want {
		if got[i] != line {
			t.Fatalf("line %d mismatch\nwant: %q\n got: %q", i+1, line, got[i])
		}
	}
}

func TestWrappedBulletFlat(t *testing.T) {
	src := []byte("- alpha beta gamma delta epsilon zeta eta theta iota kappa\n")
	out := stripANSI(renderDoc(t, src, 40))
	lines := strings.Split(out, "\n")
	want := []string{
		"- alpha beta gamma delta epsilon zeta",
		"eta theta iota kappa",
	}
	for i, line := range want {
		if lines[i] != line {
			t.Fatalf("line %d mismatch\nwant: %q\n got: %q", i+1, line, lines[i])
		}
	}
}

func TestQuoteWrapReemitsPrefix(t *testing.T) {
	src := []byte("> alpha beta gamma delta\n")
	out := stripANSI(renderDoc(t, src, 20))
	lines := strings.Split(out, "\n")
	want := []string{
		"▌   alpha beta gamma",
		"▌   delta           ",
	}
	for i, line := range want {
		if lines[i] != line {
			t.Fatalf("line %d mismatch\nwant: %q\n got: %q", i+1, line, lines[i])
		}
	}
}

func TestQuoteParagraphsStayAdjacent(t *testing.T) {
	src := []byte("> one\n>\n> two\n")
	out := stripANSI(renderDoc(t, src, 20))
	lines := strings.Split(out, "\n")
	if !strings.HasPrefix(lines[0], "▌   one") {
		t.Fatalf("missing first quote line: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "▌   two") {
		t.Fatalf("quote paragraphs must not be separated by a blank line: %q", lines)
	}
}

func TestNestedQuoteDoublesPrefix(t *testing.T) {
	src := []byte("> outer\n> > inner\n")
	out := stripANSI(renderDoc(t, src, 40))
	lines := strings.Split(out, "\n")
	if strings.TrimRight(lines[0], " ") != "▌   outer" {
		t.Fatalf("outer quote line mismatch: %q", lines[0])
	}
	if strings.TrimRight(lines[1], " ") != "▌   ▌   inner" {
		t.Fatalf("nested quote line mismatch: %q", lines[1])
	}
}
