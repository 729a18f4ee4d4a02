package icon

import (
	"context"
	"image"
)

// Transformer turns raw source image bytes into an encoded square icon with
// the requested edge size.
type Transformer interface {
	Transform(ctx context.Context, input []byte, size int) (data []byte, format string, width, height int, err error)
}

// canvasSize is the edge of the square canvas: the longer source dimension.
func canvasSize(w, h int) int {
	if w > h {
		return w
	}
	return h
}

// pasteOffset centers a w×h image on an s×s canvas, flooring odd padding.
func pasteOffset(s, w, h int) image.Point {
	return image.Pt((s-w)/2, (s-h)/2)
}
