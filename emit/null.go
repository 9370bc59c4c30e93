package emit

import "context"

// Null discards every event. It is the default Emitter when
// debug-log-merge is not enabled, and has zero overhead beyond the
// interface dispatch.
type Null struct{}

// NewNull returns a Null emitter.
func NewNull() Null { return Null{} }

// Emit discards event.
func (Null) Emit(Event) {}

// EmitBatch discards events and always succeeds.
func (Null) EmitBatch(context.Context, []Event) error { return nil }

// Flush is a no-op; Null never buffers anything.
func (Null) Flush(context.Context) error { return nil }
