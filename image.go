package mdr

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
)

// maxImageBytes caps the size of image files read from disk.
const maxImageBytes = 10 << 20

// cellPixels approximates how many pixels one terminal cell spans; the
// pixel budget for an inline image is the render width times this.
const cellPixels = 10

var (
	errRemoteImage = errors.New("remote image references are not fetched")
	errPathEscape  = errors.New("image path escapes base directory")
	errImageSize   = errors.New("image exceeds size limit")
)

// imagePlaceholder is the textual fallback for any image that is not
// rendered as pixels. It is laid out as a single unbreakable atom.
func imagePlaceholder(alt string) string {
	return "🖼 IMAGE[" + alt + "]"
}

// imageRenderer turns local image references into kitty graphics blocks.
// Anything that fails a safety check or a decode falls back to the
// placeholder; remote URLs are rejected outright and never fetched.
type imageRenderer struct {
	enabled bool
	base    string
	width   int
}

func (r *imageRenderer) render(target string) (string, bool) {
	if !r.enabled {
		return "", false
	}
	path, err := r.resolvePath(target)
	if err != nil {
		return "", false
	}
	img, err := loadImage(path)
	if err != nil {
		return "", false
	}
	block, err := kittyImage(img, r.width*cellPixels)
	if err != nil {
		return "", false
	}
	return block, true
}

// resolvePath canonicalizes the target against the base directory and
// rejects anything that escapes it.
func (r *imageRenderer) resolvePath(target string) (string, error) {
	lower := strings.ToLower(target)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return "", errRemoteImage
	}
	base := r.base
	if base == "" {
		base = "."
	}
	absBase, err := filepath.Abs(base)
	if err != nil {
		return "", err
	}
	absBase, err = filepath.EvalSymlinks(absBase)
	if err != nil {
		return "", err
	}
	path := target
	if !filepath.IsAbs(path) {
		path = filepath.Join(absBase, path)
	}
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(absBase, resolved)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errPathEscape
	}
	return resolved, nil
}

func loadImage(path string) (image.Image, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxImageBytes {
		return nil, errImageSize
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

// kittyImage scales the image to the pixel budget, encodes it as PNG and
// wraps it in chunked kitty graphics escapes.
func kittyImage(img image.Image, maxPxWidth int) (string, error) {
	if maxPxWidth > 0 && img.Bounds().Dx() > maxPxWidth {
		img = resize.Thumbnail(uint(maxPxWidth), uint(img.Bounds().Dy()), img, resize.Bicubic)
	}
	var pngBuf bytes.Buffer
	if err := png.Encode(&pngBuf, img); err != nil {
		return "", err
	}
	data := base64.StdEncoding.EncodeToString(pngBuf.Bytes())

	var b strings.Builder
	b.WriteString("\n")
	first := true
	for len(data) > 0 {
		chunk := data
		if len(chunk) > 4096 {
			chunk = data[:4096]
		}
		data = data[len(chunk):]
		more := 0
		if len(data) > 0 {
			more = 1
		}
		if first {
			b.WriteString("\x1b_Gf=100,a=T,")
			first = false
		} else {
			b.WriteString("\x1b_G")
		}
		fmt.Fprintf(&b, "m=%d;", more)
		b.WriteString(chunk)
		b.WriteString("\x1b\\")
	}
	b.WriteString("\n")
	return b.String(), nil
}
