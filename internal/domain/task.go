package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Task describes a single square-icon conversion: a readable source image, a
// writable destination path, and the edge size of the final icon in pixels.
type Task struct {
	RunID      string
	SourcePath string
	DestPath   string
	TargetSize int
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.SourcePath) == "" {
		return errors.New("source path is required")
	}
	if strings.TrimSpace(t.DestPath) == "" {
		return errors.New("destination path is required")
	}
	if t.SourcePath == t.DestPath {
		return errors.New("source and destination paths must differ")
	}
	if t.TargetSize <= 0 {
		return fmt.Errorf("target size must be positive, got %d", t.TargetSize)
	}
	return nil
}
