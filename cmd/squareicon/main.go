package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Mantodkaz/firestarter-gui/internal/config"
	"github.com/Mantodkaz/firestarter-gui/internal/domain"
	"github.com/Mantodkaz/firestarter-gui/internal/icon"
	"github.com/Mantodkaz/firestarter-gui/internal/id"
	"github.com/Mantodkaz/firestarter-gui/internal/telemetry"
)

func main() {
	cfg := config.Load()
	logger := log.New(os.Stderr, "[squareicon] ", log.LstdFlags|log.Lmsgprefix)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatalf("square icon build failed: %v", err)
	}
}

func run(ctx context.Context, cfg config.Config, logger *log.Logger) error {
	shutdownTracing, err := telemetry.SetupTracing(ctx, telemetry.TraceConfig{
		ServiceName:  "squareicon",
		Exporter:     cfg.Trace.Exporter,
		OTLPEndpoint: cfg.Trace.OTLPEndpoint,
		OTLPInsecure: cfg.Trace.OTLPInsecure,
	}, logger)
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Printf("tracing shutdown error: %v", err)
		}
	}()

	if err := icon.Startup(); err != nil {
		return fmt.Errorf("initialize imaging runtime: %w", err)
	}
	defer icon.Shutdown()

	builder, err := icon.NewLocalBuilder()
	if err != nil {
		return fmt.Errorf("initialize builder: %w", err)
	}

	task := domain.Task{
		RunID:      id.New(),
		SourcePath: cfg.Icon.SourcePath,
		DestPath:   cfg.Icon.DestPath,
		TargetSize: cfg.Icon.TargetSize,
	}

	logger.Printf(
		"building square icon run_id=%s source=%s dest=%s size=%d",
		task.RunID,
		task.SourcePath,
		task.DestPath,
		task.TargetSize,
	)

	result, err := builder.Build(ctx, task)
	if err != nil {
		return err
	}

	logger.Printf(
		"built square icon run_id=%s bytes=%d dimensions=%dx%d",
		task.RunID,
		result.Bytes,
		result.Width,
		result.Height,
	)
	fmt.Printf("Saved square icon as %s\n", result.Path)
	return nil
}
