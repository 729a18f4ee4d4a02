package icon

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestCanvasGeometry(t *testing.T) {
	cases := []struct {
		name     string
		w, h     int
		wantSize int
		wantX    int
		wantY    int
	}{
		{name: "square", w: 500, h: 500, wantSize: 500, wantX: 0, wantY: 0},
		{name: "landscape", w: 800, h: 400, wantSize: 800, wantX: 0, wantY: 200},
		{name: "portrait", w: 300, h: 700, wantSize: 700, wantX: 200, wantY: 0},
		{name: "odd_padding_floors", w: 10, h: 5, wantSize: 10, wantX: 0, wantY: 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := canvasSize(tc.w, tc.h)
			if s != tc.wantSize {
				t.Fatalf("canvasSize(%d, %d) = %d, want %d", tc.w, tc.h, s, tc.wantSize)
			}
			off := pasteOffset(s, tc.w, tc.h)
			if off.X != tc.wantX || off.Y != tc.wantY {
				t.Fatalf("pasteOffset(%d, %d, %d) = (%d, %d), want (%d, %d)", s, tc.w, tc.h, off.X, off.Y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestComposeSquarePreservesAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 500, 500))
	for y := 0; y < 500; y++ {
		for x := 0; x < 500; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: 30, G: 60, B: 90, A: 255})
		}
	}
	semiTransparent := color.NRGBA{R: 200, G: 100, B: 50, A: 128}
	src.SetNRGBA(10, 10, semiTransparent)

	canvas := composeSquare(src)

	if got := canvas.Bounds(); got.Dx() != 500 || got.Dy() != 500 {
		t.Fatalf("expected 500x500 canvas for square source, got %dx%d", got.Dx(), got.Dy())
	}
	if got := canvas.NRGBAAt(10, 10); got != semiTransparent {
		t.Fatalf("expected pasted pixel %v at (10,10), got %v", semiTransparent, got)
	}
}

func TestComposeSquarePadsLandscape(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 800, 400))
	marker := color.NRGBA{R: 10, G: 20, B: 30, A: 255}
	for y := 0; y < 400; y++ {
		for x := 0; x < 800; x++ {
			src.SetNRGBA(x, y, marker)
		}
	}

	canvas := composeSquare(src)

	if got := canvas.Bounds(); got.Dx() != 800 || got.Dy() != 800 {
		t.Fatalf("expected 800x800 canvas, got %dx%d", got.Dx(), got.Dy())
	}

	transparentWhite := color.NRGBA{R: 255, G: 255, B: 255, A: 0}
	if got := canvas.NRGBAAt(0, 0); got != transparentWhite {
		t.Fatalf("expected transparent-white padding at (0,0), got %v", got)
	}
	if got := canvas.NRGBAAt(0, 199); got != transparentWhite {
		t.Fatalf("expected transparent-white padding at (0,199), got %v", got)
	}
	if got := canvas.NRGBAAt(0, 200); got != marker {
		t.Fatalf("expected source pixel at (0,200), got %v", got)
	}
	if got := canvas.NRGBAAt(0, 599); got != marker {
		t.Fatalf("expected source pixel at (0,599), got %v", got)
	}
	if got := canvas.NRGBAAt(0, 600); got != transparentWhite {
		t.Fatalf("expected transparent-white padding at (0,600), got %v", got)
	}
}

func TestTransformOutputSizeAndDeterminism(t *testing.T) {
	input := buildTestPNG(t, 640, 480)

	transformer := imagingTransformer{}
	data, format, width, height, err := transformer.Transform(context.Background(), input, 1024)
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	if format != "png" {
		t.Fatalf("expected png output format, got %s", format)
	}
	if width != 1024 || height != 1024 {
		t.Fatalf("expected 1024x1024 output, got %dx%d", width, height)
	}

	decoded, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 1024 || b.Dy() != 1024 {
		t.Fatalf("expected decoded 1024x1024 output, got %dx%d", b.Dx(), b.Dy())
	}

	again, _, _, _, err := transformer.Transform(context.Background(), input, 1024)
	if err != nil {
		t.Fatalf("second transform: %v", err)
	}
	if !bytes.Equal(data, again) {
		t.Fatal("expected deterministic output for identical input")
	}
}

func TestTransformRejectsGarbage(t *testing.T) {
	transformer := imagingTransformer{}
	_, _, _, _, err := transformer.Transform(context.Background(), []byte("not an image"), 1024)
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected decode error for non-image input, got %v", err)
	}
}
