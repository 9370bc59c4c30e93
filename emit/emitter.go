package emit

import "context"

// Emitter receives merge-point decision events from BumpMergingSearcher and
// MergingSearcher. Implementations must not block searcher Select/Update
// calls for long and must not panic; a misbehaving observability backend
// should never be able to desynchronize the search subsystem from the
// engine it serves.
type Emitter interface {
	// Emit records a single event.
	Emit(event Event)

	// EmitBatch records several events at once, preserving order. Returns
	// an error only on catastrophic, non-recoverable backend failures;
	// individual event delivery failures should be handled internally.
	EmitBatch(ctx context.Context, events []Event) error

	// Flush blocks until all buffered events have been handed to the
	// backend, or ctx is done.
	Flush(ctx context.Context) error
}
