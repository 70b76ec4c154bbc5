// Package mdr renders Markdown to ANSI for terminal display.
//
// The renderer is a single-pass codec over the parsed document: headings,
// emphasis, links, lists, blockquotes and highlighted spans resolve through
// a scope stack against a theme; prose flows through a word-wrapping layout
// core that never splits words; fenced code, tables, images and mermaid
// diagrams render as self-contained blocks. Output degrades cleanly across
// color depths, down to a byte-identical passthrough when color is off.
//
// Core properties:
//   - Word-boundary wrapping within a fixed column budget
//   - Theme-driven styling, truecolor down to 16 colors
//   - Syntax highlighting for fenced code via chroma
//   - Box-drawn tables solved against the width budget
//   - Inline images over the kitty graphics protocol, with safe fallbacks
//
// Example:
//
//	out, err := mdr.Render([]byte("# Hello\n\nMarkdown in, ANSI out.\n"),
//		mdr.WithWidth(100),
//		mdr.WithTheme(mdr.DefaultTheme()),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Print(out)
//
// Rendering can be customized with RenderOptions such as OSC 8 hyperlink
// support, line numbers and color depth overrides.
package mdr
