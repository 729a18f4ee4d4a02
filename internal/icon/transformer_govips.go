//go:build govips && cgo

package icon

import (
	"context"
	"fmt"

	"github.com/davidbyttow/govips/v2/vips"
)

type govipsTransformer struct{}

func (govipsTransformer) Transform(ctx context.Context, input []byte, size int) ([]byte, string, int, int, error) {
	select {
	case <-ctx.Done():
		return nil, "", 0, 0, ctx.Err()
	default:
	}

	img, err := vips.NewImageFromBuffer(input)
	if err != nil {
		return nil, "", 0, 0, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	defer img.Close()

	if !img.HasAlpha() {
		if err := img.AddAlpha(); err != nil {
			return nil, "", 0, 0, fmt.Errorf("add alpha channel: %w", err)
		}
	}

	w, h := img.Width(), img.Height()
	s := canvasSize(w, h)
	offset := pasteOffset(s, w, h)

	background := &vips.ColorRGBA{R: 255, G: 255, B: 255, A: 0}
	if err := img.EmbedBackgroundRGBA(offset.X, offset.Y, s, s, background); err != nil {
		return nil, "", 0, 0, fmt.Errorf("embed on square canvas: %w", err)
	}

	if err := img.Resize(float64(size)/float64(s), vips.KernelLanczos3); err != nil {
		return nil, "", 0, 0, fmt.Errorf("resize canvas: %w", err)
	}

	data, _, err := img.ExportPng(vips.NewPngExportParams())
	if err != nil {
		return nil, "", 0, 0, fmt.Errorf("%w: %v", ErrEncode, err)
	}

	return data, "png", img.Width(), img.Height(), nil
}
