package icon

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

type imagingTransformer struct{}

func (imagingTransformer) Transform(ctx context.Context, input []byte, size int) ([]byte, string, int, int, error) {
	select {
	case <-ctx.Done():
		return nil, "", 0, 0, ctx.Err()
	default:
	}

	src, _, err := image.Decode(bytes.NewReader(input))
	if err != nil {
		return nil, "", 0, 0, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	squared := composeSquare(src)
	out := imaging.Resize(squared, size, size, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, out, imaging.PNG); err != nil {
		return nil, "", 0, 0, fmt.Errorf("%w: %v", ErrEncode, err)
	}

	bounds := out.Bounds()
	return buf.Bytes(), "png", bounds.Dx(), bounds.Dy(), nil
}

// composeSquare centers src on a max(w,h) canvas filled with transparent
// white. Paste copies source pixels verbatim, alpha included; Overlay would
// blend against the canvas instead.
func composeSquare(src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	s := canvasSize(w, h)

	canvas := imaging.New(s, s, color.NRGBA{R: 255, G: 255, B: 255, A: 0})
	return imaging.Paste(canvas, src, pasteOffset(s, w, h))
}
