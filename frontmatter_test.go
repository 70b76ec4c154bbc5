package mdr

import (
	"strings"
	"testing"
)

func TestFrontMatterYAMLStrippedAndTitled(t *testing.T) {
	src := "---\ntitle: Post\nauthor: me\n---\n\n# Hello\n"
	plain := stripANSI(renderDoc(t, []byte(src), 80))
	if !strings.Contains(plain, "█ Post") {
		t.Fatalf("front matter title missing: %q", plain)
	}
	if !strings.Contains(plain, "█ Hello") {
		t.Fatalf("body heading missing: %q", plain)
	}
	if strings.Contains(plain, "title:") || strings.Contains(plain, "author") {
		t.Fatalf("metadata leaked into output: %q", plain)
	}
}

func TestFrontMatterTOMLStrippedWithoutTitle(t *testing.T) {
	src := "+++\ntitle = \"Post\"\nauthor = \"me\"\n+++\n\n# Hello\n"
	plain := stripANSI(renderDoc(t, []byte(src), 80))
	if !strings.Contains(plain, "█ Hello") {
		t.Fatalf("body heading missing: %q", plain)
	}
	if strings.Contains(plain, "+++") || strings.Contains(plain, "title =") {
		t.Fatalf("metadata leaked into output: %q", plain)
	}
	if strings.Contains(plain, "█ Post") {
		t.Fatalf("TOML metadata is not parsed for a title: %q", plain)
	}
}

func TestFrontMatterJSONTitleParsed(t *testing.T) {
	src := ";;;\n{\"title\": \"Post\"}\n;;;\n\n# Hello\n"
	plain := stripANSI(renderDoc(t, []byte(src), 80))
	if !strings.Contains(plain, "█ Post") {
		t.Fatalf("JSON front matter title missing: %q", plain)
	}
	if !strings.Contains(plain, "█ Hello") {
		t.Fatalf("body heading missing: %q", plain)
	}
	if strings.Contains(plain, ";;;") || strings.Contains(plain, "{") {
		t.Fatalf("metadata leaked into output: %q", plain)
	}
}

func TestFrontMatterUnclosedStaysContent(t *testing.T) {
	src := "---\ntitle: Post\n\n# Hello\n"
	plain := stripANSI(renderDoc(t, []byte(src), 80))
	if !strings.Contains(plain, "title: Post") {
		t.Fatalf("unclosed block must stay document content: %q", plain)
	}
	if !strings.Contains(plain, "█ Hello") {
		t.Fatalf("body heading missing: %q", plain)
	}
}

func TestFrontMatterRequiresMetadataLine(t *testing.T) {
	src := "---\n# Keep\n---\n\nTail\n"
	plain := stripANSI(renderDoc(t, []byte(src), 80))
	if !strings.Contains(plain, "█ Keep") {
		t.Fatalf("heading swallowed as front matter: %q", plain)
	}
	if !strings.Contains(plain, "Tail") {
		t.Fatalf("trailing text missing: %q", plain)
	}
}

func TestFrontMatterOnlyAtDocumentStart(t *testing.T) {
	src := "Intro paragraph.\n\n---\ntitle: not front matter\n---\n\nTail\n"
	plain := stripANSI(renderDoc(t, []byte(src), 80))
	if !strings.Contains(plain, "Intro paragraph.") {
		t.Fatalf("intro missing: %q", plain)
	}
	// The interior ---/--- pair is ordinary markdown: a break plus a setext
	// heading, never metadata.
	if !strings.Contains(plain, "██ title: not front matter") {
		t.Fatalf("interior text swallowed as front matter: %q", plain)
	}
	if !strings.Contains(plain, "Tail") {
		t.Fatalf("trailing text missing: %q", plain)
	}
}

func TestFrontMatterBOMAndCRLF(t *testing.T) {
	src := "\xef\xbb\xbf---\r\ntitle: Post\r\n---\r\n\r\n# Hello\r\n"
	plain := stripANSI(renderDoc(t, []byte(src), 80))
	if !strings.Contains(plain, "█ Post") {
		t.Fatalf("title missing with BOM and CRLF: %q", plain)
	}
	if !strings.Contains(plain, "█ Hello") {
		t.Fatalf("body heading missing: %q", plain)
	}
	if strings.Contains(plain, "title:") {
		t.Fatalf("metadata leaked into output: %q", plain)
	}
}

func TestStripFrontMatterBounds(t *testing.T) {
	body, front := stripFrontMatter([]byte("---\nk: v\n---\nbody\n"))
	if got := string(body); got != "body\n" {
		t.Fatalf("body = %q, want %q", got, "body\n")
	}
	if got := string(front); got != "k: v\n" {
		t.Fatalf("front = %q, want %q", got, "k: v\n")
	}
}

func TestStripFrontMatterLeavesPlainDocs(t *testing.T) {
	for _, src := range []string{
		"",
		"plain text\n",
		"# Heading\n",
		"--\nnot a delimiter\n--\n",
	} {
		body, front := stripFrontMatter([]byte(src))
		if string(body) != src || front != nil {
			t.Fatalf("stripFrontMatter(%q) = %q, %q", src, body, front)
		}
	}
}

func TestFrontMatterTitle(t *testing.T) {
	cases := []struct {
		front string
		want  string
	}{
		{"title: My Doc\n", "My Doc"},
		{"title: \" Padded \"\n", "Padded"},
		{"author: me\n", ""},
		{"{\"title\": \"Post\"}", "Post"},
		{"title: [unclosed\n", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := frontMatterTitle([]byte(tc.front)); got != tc.want {
			t.Fatalf("frontMatterTitle(%q) = %q, want %q", tc.front, got, tc.want)
		}
	}
}
