package driven

import "context"

// BatchSink delivers a generated batch to its destination (file,
// clipboard). Delivery is outside the engine; the sink receives the
// derived filename and the exact batch text.
type BatchSink interface {
	// Deliver hands off the batch content under the given filename.
	Deliver(ctx context.Context, filename, content string) error
}
