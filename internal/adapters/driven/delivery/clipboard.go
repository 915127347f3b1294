package delivery

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/cboldwyn/dc-label/internal/core/ports/driven"
)

// Ensure ClipboardSink implements the interface.
var _ driven.BatchSink = (*ClipboardSink)(nil)

// ClipboardSink copies the batch text to the system clipboard. The
// filename is ignored; clipboards have no names.
type ClipboardSink struct{}

// NewClipboardSink creates a clipboard sink.
func NewClipboardSink() *ClipboardSink {
	return &ClipboardSink{}
}

// Available reports whether a system clipboard can be reached.
func (s *ClipboardSink) Available() bool {
	return !clipboard.Unsupported
}

// Deliver copies content to the clipboard.
func (s *ClipboardSink) Deliver(ctx context.Context, _ string, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if clipboard.Unsupported {
		return fmt.Errorf("no system clipboard available")
	}
	if err := clipboard.WriteAll(content); err != nil {
		return fmt.Errorf("copying batch to clipboard: %w", err)
	}
	return nil
}
