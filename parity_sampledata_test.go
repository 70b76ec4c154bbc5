package mdr

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/muesli/reflow/ansi"
)

var sampleWidths = []int{50, 60, 80}

// renderSample renders with the same options cmd/gen-golden uses, so the
// invariant checks and any committed golden files agree on the output.
func renderSample(t *testing.T, src []byte, width int) string {
	t.Helper()
	out, err := Render(src,
		WithWidth(width),
		WithHyperlinks(false),
		WithItalics(ItalicsAlways),
	)
	if err != nil {
		t.Fatalf("render width %d: %v", width, err)
	}
	return out
}

func TestRenderSampledataInvariants(t *testing.T) {
	for _, path := range samplePaths(t) {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			src, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read %s: %v", path, err)
			}
			for _, width := range sampleWidths {
				out := renderSample(t, src, width)
				lines := strings.Split(out, "\n")
				for i, line := range lines {
					plain := stripANSI(line)
					if got := ansi.PrintableRuneWidth(plain); got > width {
						t.Fatalf("%s width %d: line %d is %d cells wide: %q", path, width, i+1, got, plain)
					}
				}
				if !strings.HasSuffix(out, "\n"+ansiReset) {
					t.Fatalf("%s width %d: output does not end in newline plus reset", path, width)
				}
				if strings.Contains(out, osc8Prefix) {
					t.Fatalf("%s width %d: hyperlink escapes despite hyperlinks disabled", path, width)
				}
				if strings.Contains(out, "\x1b_G") {
					t.Fatalf("%s width %d: graphics escapes despite images disabled", path, width)
				}
				if again := renderSample(t, src, width); again != out {
					t.Fatalf("%s width %d: output differs between runs", path, width)
				}
				goldenPath := sampleGoldenPath(path, width)
				if want, err := os.ReadFile(goldenPath); err == nil && string(want) != out {
					diff := firstDiffContext(string(want), out, 3)
					t.Fatalf("golden mismatch %s width %d\n%s", path, width, diff)
				}
			}

			plain, err := Render(src, WithColorDepth(DepthNone))
			if err != nil {
				t.Fatalf("passthrough %s: %v", path, err)
			}
			if plain != string(src) {
				t.Fatalf("%s: depth none is not byte-identical passthrough", path)
			}
		})
	}
}

func samplePaths(t *testing.T) []string {
	t.Helper()
	var paths []string
	err := filepath.WalkDir("testdata", func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, ".md") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk testdata: %v", err)
	}
	if len(paths) == 0 {
		t.Fatal("no markdown files found under testdata")
	}
	return paths
}

func sampleGoldenPath(mdPath string, width int) string {
	rel, err := filepath.Rel("testdata", mdPath)
	if err != nil {
		rel = mdPath
	}
	name := strings.TrimSuffix(rel, ".md")
	name = strings.ReplaceAll(filepath.ToSlash(name), "/", "__")
	return filepath.Join("testdata", fmt.Sprintf("%s.w%d.golden", name, width))
}

func firstDiffContext(want string, got string, ctx int) string {
	wantLines := strings.Split(want, "\n")
	gotLines := strings.Split(got, "\n")
	max := len(wantLines)
	if len(gotLines) > max {
		max = len(gotLines)
	}
	diffAt := -1
	for i := 0; i < max; i++ {
		var w, g string
		if i < len(wantLines) {
			w = wantLines[i]
		}
		if i < len(gotLines) {
			g = gotLines[i]
		}
		if w != g {
			diffAt = i
			break
		}
	}
	if diffAt == -1 {
		return "---want---\n" + want + "\n---got---\n" + got
	}
	start := diffAt - ctx
	if start < 0 {
		start = 0
	}
	end := diffAt + ctx
	if end >= max {
		end = max - 1
	}
	var b strings.Builder
	fmt.Fprintf(&b, "first difference at line %d\n", diffAt+1)
	b.WriteString("---want---\n")
	for i := start; i <= end; i++ {
		line := ""
		if i < len(wantLines) {
			line = wantLines[i]
		}
		fmt.Fprintf(&b, "%5d | %s\n", i+1, line)
	}
	b.WriteString("---got---\n")
	for i := start; i <= end; i++ {
		line := ""
		if i < len(gotLines) {
			line = gotLines[i]
		}
		fmt.Fprintf(&b, "%5d | %s\n", i+1, line)
	}
	return b.String()
}
