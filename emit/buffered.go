package emit

import (
	"context"
	"sync"
)

// Buffered wraps another Emitter and accumulates events in memory,
// forwarding them as a single EmitBatch call on Flush. This amortizes
// per-call overhead for backends (e.g. OTel exporters, remote log
// sinks) where many small calls are markedly more expensive than one
// batched call, at the cost of delaying visibility until Flush runs.
type Buffered struct {
	mu       sync.Mutex
	inner    Emitter
	buf      []Event
	capacity int
}

// NewBuffered wraps inner. Emit flushes automatically once capacity events
// have accumulated; EmitBatch only appends and never flushes. A
// non-positive capacity disables automatic flushing; the caller is then
// responsible for calling Flush.
func NewBuffered(inner Emitter, capacity int) *Buffered {
	return &Buffered{inner: inner, capacity: capacity}
}

// Emit appends event to the buffer, flushing automatically if capacity is
// reached.
func (b *Buffered) Emit(event Event) {
	b.mu.Lock()
	b.buf = append(b.buf, event)
	full := b.capacity > 0 && len(b.buf) >= b.capacity
	b.mu.Unlock()

	if full {
		_ = b.Flush(context.Background())
	}
}

// EmitBatch appends events to the buffer in order.
func (b *Buffered) EmitBatch(_ context.Context, events []Event) error {
	b.mu.Lock()
	b.buf = append(b.buf, events...)
	b.mu.Unlock()
	return nil
}

// Flush forwards all buffered events to the wrapped Emitter in one
// EmitBatch call and clears the buffer, even on error.
func (b *Buffered) Flush(ctx context.Context) error {
	b.mu.Lock()
	pending := b.buf
	b.buf = nil
	b.mu.Unlock()

	if len(pending) == 0 {
		return nil
	}
	if err := b.inner.EmitBatch(ctx, pending); err != nil {
		return err
	}
	return b.inner.Flush(ctx)
}
