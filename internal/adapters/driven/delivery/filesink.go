package delivery

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cboldwyn/dc-label/internal/core/ports/driven"
)

// Ensure FileSink implements the interface.
var _ driven.BatchSink = (*FileSink)(nil)

// FileSink writes batches to a directory on disk under their derived
// filenames.
type FileSink struct {
	dir string
}

// NewFileSink creates a sink writing into dir. An empty dir means the
// current working directory.
func NewFileSink(dir string) *FileSink {
	if dir == "" {
		dir = "."
	}
	return &FileSink{dir: dir}
}

// Deliver writes content to dir/filename, creating the directory if
// needed. An existing file with the same name is overwritten; derived
// filenames carry a timestamp, so collisions only happen when the same
// batch is regenerated within a second.
func (s *FileSink) Deliver(ctx context.Context, filename, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if filename == "" {
		return fmt.Errorf("empty batch filename")
	}

	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return fmt.Errorf("writing batch file: %w", err)
	}
	return nil
}

// Path returns the full path a filename would be delivered to.
func (s *FileSink) Path(filename string) string {
	return filepath.Join(s.dir, filename)
}
