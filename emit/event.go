// Package emit provides the structured logging channel behind the
// debug-log-merge configuration flag: every park, bump, merge-success and
// merge-failure decision BumpMergingSearcher and MergingSearcher make can
// be pushed through a pluggable Emitter instead of being silently dropped.
package emit

// Event is one observable decision made by a merging searcher.
type Event struct {
	// MergePoint identifies the merge-function call instruction the event
	// concerns, by dense instruction id.
	MergePoint int

	// Msg names the kind of decision: "parked", "bumped", "merged", or
	// "merge_failed".
	Msg string

	// StateID is the identity of the state the event is primarily about
	// (the one just selected, parked, or bumped).
	StateID string

	// OtherStateID is the identity of the second state involved in a merge
	// attempt ("merged", "merge_failed" and "bumped" events); empty
	// otherwise.
	OtherStateID string

	// Meta carries any additional structured fields a particular emitter
	// may want, e.g. queue depth at the time of the event.
	Meta map[string]any
}
