package emit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Log implements Emitter by writing one line per event to an io.Writer,
// either as human-readable key=value text or as JSON Lines.
type Log struct {
	w        io.Writer
	jsonMode bool
}

// NewLog creates a Log emitter. A nil writer defaults to os.Stdout.
func NewLog(w io.Writer, jsonMode bool) *Log {
	if w == nil {
		w = os.Stdout
	}
	return &Log{w: w, jsonMode: jsonMode}
}

// Emit writes event in the configured format.
func (l *Log) Emit(event Event) {
	if l.jsonMode {
		l.emitJSON(event)
		return
	}
	l.emitText(event)
}

func (l *Log) emitJSON(event Event) {
	data, err := json.Marshal(struct {
		MergePoint   int            `json:"mergePoint"`
		Msg          string         `json:"msg"`
		StateID      string         `json:"stateID"`
		OtherStateID string         `json:"otherStateID,omitempty"`
		Meta         map[string]any `json:"meta,omitempty"`
	}{event.MergePoint, event.Msg, event.StateID, event.OtherStateID, event.Meta})
	if err != nil {
		_, _ = fmt.Fprintf(l.w, "{\"error\":%q}\n", err.Error())
		return
	}
	_, _ = fmt.Fprintf(l.w, "%s\n", data)
}

func (l *Log) emitText(event Event) {
	_, _ = fmt.Fprintf(l.w, "[%s] mergePoint=%d state=%s", event.Msg, event.MergePoint, event.StateID)
	if event.OtherStateID != "" {
		_, _ = fmt.Fprintf(l.w, " other=%s", event.OtherStateID)
	}
	for k, v := range event.Meta {
		_, _ = fmt.Fprintf(l.w, " %s=%v", k, v)
	}
	_, _ = fmt.Fprint(l.w, "\n")
}

// EmitBatch writes each event in order.
func (l *Log) EmitBatch(_ context.Context, events []Event) error {
	for _, e := range events {
		l.Emit(e)
	}
	return nil
}

// Flush is a no-op: Log writes synchronously with no internal buffer. Wrap
// w in a *bufio.Writer and flush it directly if buffering is desired.
func (l *Log) Flush(context.Context) error { return nil }
