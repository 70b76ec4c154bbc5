package mdr

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubPipeline struct {
	png []byte
	err error
}

func (s stubPipeline) Render(source []byte) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.png, nil
}

func testPNGBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

const diagramDoc = "```mermaid title=\"Flow\"\ngraph TD; A-->B;\n```\n"

func TestDiagramImageMode(t *testing.T) {
	out := renderDocWithOptions(t, []byte(diagramDoc), 80,
		WithImages(true),
		WithDiagrams(DiagramsImage),
		WithDiagramPipeline(stubPipeline{png: testPNGBytes(t)}),
	)
	require.Contains(t, out, "\x1b_Gf=100,a=T,", "kitty graphics block")
	require.Contains(t, out, "\x1b[1mFlow"+ansiReset, "bold title header")

	plain := stripANSI(out)
	require.NotContains(t, plain, "graph TD", "source replaced by the image")
	require.NotContains(t, plain, "mermaid", "no language label on an image header")
	require.NotContains(t, plain, "```")
}

func TestDiagramPipelineFailureFallsBack(t *testing.T) {
	out := renderDocWithOptions(t, []byte(diagramDoc), 80,
		WithImages(true),
		WithDiagrams(DiagramsImage),
		WithDiagramPipeline(stubPipeline{err: errors.New("mmdc exploded")}),
	)
	require.NotContains(t, out, "\x1b_G")
	plain := stripANSI(out)
	require.Contains(t, plain, "graph TD; A-->B;")
	require.Contains(t, plain, "mermaid", "fallback keeps the language label")
	require.NotContains(t, plain, "```")
}

func TestDiagramBadPipelineOutputFallsBack(t *testing.T) {
	out := renderDocWithOptions(t, []byte(diagramDoc), 80,
		WithImages(true),
		WithDiagrams(DiagramsImage),
		WithDiagramPipeline(stubPipeline{png: []byte("not a png")}),
	)
	require.NotContains(t, out, "\x1b_G")
	require.Contains(t, stripANSI(out), "graph TD; A-->B;")
}

func TestDiagramOversizedOutputFallsBack(t *testing.T) {
	out := renderDocWithOptions(t, []byte(diagramDoc), 80,
		WithImages(true),
		WithDiagrams(DiagramsImage),
		WithDiagramPipeline(stubPipeline{png: make([]byte, maxImageBytes+1)}),
	)
	require.NotContains(t, out, "\x1b_G")
	require.Contains(t, stripANSI(out), "graph TD; A-->B;")
}

func TestDiagramTextMode(t *testing.T) {
	out := renderDocWithOptions(t, []byte(diagramDoc), 80,
		WithImages(true),
		WithDiagrams(DiagramsText),
		WithDiagramPipeline(stubPipeline{png: testPNGBytes(t)}),
	)
	require.NotContains(t, out, "\x1b_G")
	require.Contains(t, stripANSI(out), "graph TD; A-->B;")
}

func TestDiagramImageModeRequiresImages(t *testing.T) {
	out := renderDocWithOptions(t, []byte(diagramDoc), 80,
		WithDiagrams(DiagramsImage),
		WithDiagramPipeline(stubPipeline{png: testPNGBytes(t)}),
	)
	require.NotContains(t, out, "\x1b_G")
	require.Contains(t, stripANSI(out), "graph TD; A-->B;")
}

func TestMermaidCLIMissingBinary(t *testing.T) {
	var p DiagramPipeline = mermaidCLI{cmd: "mdr-no-such-binary"}
	_, err := p.Render([]byte("graph TD; A-->B;"))
	require.Error(t, err)
}

func TestIsDiagramLang(t *testing.T) {
	require.True(t, isDiagramLang("mermaid"))
	require.False(t, isDiagramLang("go"))
	require.False(t, isDiagramLang(""))
}
