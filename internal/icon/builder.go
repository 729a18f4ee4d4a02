package icon

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Mantodkaz/firestarter-gui/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	// ErrDecode covers a missing or unreadable source file as well as data
	// the decoder does not recognize.
	ErrDecode = errors.New("image decode failed")
	// ErrEncode covers encoding failures and an unwritable destination,
	// including a missing parent directory.
	ErrEncode = errors.New("image encode failed")
)

type Fetcher interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}

type Emitter interface {
	Emit(ctx context.Context, path string, data []byte) error
}

type Result struct {
	Path   string
	Format string
	Bytes  int
	Width  int
	Height int
}

// Builder runs the conversion as a linear fetch, transform, emit sequence.
type Builder struct {
	fetcher     Fetcher
	transformer Transformer
	emitter     Emitter
	tracer      trace.Tracer
}

func NewLocalBuilder() (*Builder, error) {
	transformer, err := newTransformer()
	if err != nil {
		return nil, fmt.Errorf("build transformer: %w", err)
	}

	return &Builder{
		fetcher:     LocalFileFetcher{},
		transformer: transformer,
		emitter:     LocalFileEmitter{},
		tracer:      otel.Tracer("squareicon/icon"),
	}, nil
}

func (b *Builder) Build(ctx context.Context, task domain.Task) (Result, error) {
	if err := task.Validate(); err != nil {
		return Result{}, err
	}

	ctx, span := b.tracer.Start(ctx, "icon.build")
	span.SetAttributes(
		attribute.String("icon.source", task.SourcePath),
		attribute.String("icon.dest", task.DestPath),
		attribute.Int("icon.target_size", task.TargetSize),
	)
	if strings.TrimSpace(task.RunID) != "" {
		span.SetAttributes(attribute.String("run.id", task.RunID))
	}
	defer span.End()

	fetchCtx, fetchSpan := b.tracer.Start(ctx, "icon.fetch")
	source, err := b.fetcher.Fetch(fetchCtx, task.SourcePath)
	fetchSpan.End()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch stage failed")
		return Result{}, fmt.Errorf("fetch stage: %w", err)
	}
	span.SetAttributes(attribute.Int("icon.source_bytes", len(source)))

	transformCtx, transformSpan := b.tracer.Start(ctx, "icon.transform")
	data, format, width, height, err := b.transformer.Transform(transformCtx, source, task.TargetSize)
	transformSpan.End()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transform stage failed")
		return Result{}, fmt.Errorf("transform stage: %w", err)
	}

	emitCtx, emitSpan := b.tracer.Start(ctx, "icon.emit")
	err = b.emitter.Emit(emitCtx, task.DestPath, data)
	emitSpan.End()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "emit stage failed")
		return Result{}, fmt.Errorf("emit stage: %w", err)
	}

	span.SetStatus(codes.Ok, "converted")
	return Result{
		Path:   task.DestPath,
		Format: format,
		Bytes:  len(data),
		Width:  width,
		Height: height,
	}, nil
}

type LocalFileFetcher struct{}

func (LocalFileFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read source file %s: %v", ErrDecode, path, err)
	}
	return data, nil
}

type LocalFileEmitter struct{}

// Emit writes the encoded icon in a single call. The destination directory is
// not created here: a missing or unwritable parent is an encode failure, and
// a partial write is left as the write call left it.
func (LocalFileEmitter) Emit(ctx context.Context, path string, data []byte) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: write destination file %s: %v", ErrEncode, path, err)
	}
	return nil
}
