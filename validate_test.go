package mdr

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestValidateInputAccepts(t *testing.T) {
	cases := [][]byte{
		nil,
		[]byte(""),
		[]byte("# heading\n\nbody text\n"),
		[]byte("tabs\tand\r\nnewlines\n"),
		[]byte("终端宽度以单元格计算\n"),
		[]byte("a\x01b"),
		bytes.Repeat([]byte("ab"), 200),
	}
	for _, src := range cases {
		if err := ValidateInput(src); err != nil {
			t.Fatalf("ValidateInput(%q) = %v, want nil", src, err)
		}
	}
}

func TestValidateInputInvalidUTF8(t *testing.T) {
	err := ValidateInput([]byte{0xff, 0xfe, 0xfd})
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("err = %v, want ErrInvalidUTF8", err)
	}
}

func TestValidateInputNULByte(t *testing.T) {
	err := ValidateInput([]byte("abc\x00def"))
	if !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("err = %v, want ErrBinaryInput", err)
	}
}

func TestValidateInputControlDensity(t *testing.T) {
	dense := append(bytes.Repeat([]byte("a"), 62), 0x01, 0x02)
	if err := ValidateInput(dense); !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("dense control input: err = %v, want ErrBinaryInput", err)
	}

	sparse := append(bytes.Repeat([]byte("a"), 99), 0x01)
	if err := ValidateInput(sparse); err != nil {
		t.Fatalf("sparse control input: err = %v, want nil", err)
	}

	short := append(bytes.Repeat([]byte("a"), 61), 0x01, 0x02)
	if err := ValidateInput(short); err != nil {
		t.Fatalf("below sample floor: err = %v, want nil", err)
	}

	del := append(bytes.Repeat([]byte("a"), 62), 0x7f, 0x7f)
	if err := ValidateInput(del); !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("DEL bytes: err = %v, want ErrBinaryInput", err)
	}
}

func TestRenderSurfacesValidationErrors(t *testing.T) {
	if _, err := Render([]byte{0xff}); !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("Render: err = %v, want ErrInvalidUTF8", err)
	}
	if err := RenderTo(io.Discard, []byte("a\x00b")); !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("RenderTo: err = %v, want ErrBinaryInput", err)
	}
	// Validation runs before the DepthNone passthrough.
	if _, err := Render([]byte{0xff}, WithColorDepth(DepthNone)); !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("DepthNone: err = %v, want ErrInvalidUTF8", err)
	}
}

func TestRenderToWritesNothingOnError(t *testing.T) {
	var buf strings.Builder
	if err := RenderTo(&buf, []byte("x\x00y")); err == nil {
		t.Fatal("want error for binary input")
	}
	if buf.Len() != 0 {
		t.Fatalf("output written despite error: %q", buf.String())
	}
}
