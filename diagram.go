package mdr

import (
	"bytes"
	"image"
	"os"
	"os/exec"
	"path/filepath"
)

// DiagramPipeline turns diagram source into a rendered PNG. Implementations
// must be all or nothing: on error no partial output is returned and the
// caller falls back to rendering the source as highlighted code.
type DiagramPipeline interface {
	Render(source []byte) ([]byte, error)
}

// mermaidCLI is the default pipeline. It shells out to the mermaid CLI
// with temp files for input and output.
type mermaidCLI struct {
	cmd string
}

func (m mermaidCLI) Render(source []byte) ([]byte, error) {
	dir, err := os.MkdirTemp("", "mdr-diagram-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	in := filepath.Join(dir, "diagram.mmd")
	out := filepath.Join(dir, "diagram.png")
	if err := os.WriteFile(in, source, 0o600); err != nil {
		return nil, err
	}
	if err := exec.Command(m.cmd, "-i", in, "-o", out).Run(); err != nil {
		return nil, err
	}
	return os.ReadFile(out)
}

// diagramRenderer drives a pipeline and wraps its PNG output in a kitty
// graphics block sized to the render width.
type diagramRenderer struct {
	pipeline DiagramPipeline
	width    int
}

func (d *diagramRenderer) render(source string) (string, error) {
	data, err := d.pipeline.Render([]byte(source))
	if err != nil {
		return "", err
	}
	if len(data) > maxImageBytes {
		return "", errImageSize
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	return kittyImage(img, d.width*cellPixels)
}

func isDiagramLang(lang string) bool {
	return lang == "mermaid"
}
