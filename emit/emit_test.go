package emit

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestNullDiscardsEverything(t *testing.T) {
	n := NewNull()
	n.Emit(Event{Msg: "parked"})
	if err := n.EmitBatch(context.Background(), []Event{{Msg: "merged"}}); err != nil {
		t.Fatalf("EmitBatch returned %v, want nil", err)
	}
	if err := n.Flush(context.Background()); err != nil {
		t.Fatalf("Flush returned %v, want nil", err)
	}
}

func TestLogEmitText(t *testing.T) {
	var buf bytes.Buffer
	l := NewLog(&buf, false)
	l.Emit(Event{MergePoint: 7, Msg: "parked", StateID: "0x1"})
	got := buf.String()
	if !strings.Contains(got, "[parked]") || !strings.Contains(got, "mergePoint=7") || !strings.Contains(got, "state=0x1") {
		t.Fatalf("emitText output = %q, missing expected fields", got)
	}
}

func TestLogEmitJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewLog(&buf, true)
	l.Emit(Event{MergePoint: 3, Msg: "merged", StateID: "a", OtherStateID: "b"})

	var decoded struct {
		MergePoint   int    `json:"mergePoint"`
		Msg          string `json:"msg"`
		StateID      string `json:"stateID"`
		OtherStateID string `json:"otherStateID"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("json.Unmarshal: %v (output %q)", err, buf.String())
	}
	if decoded.MergePoint != 3 || decoded.Msg != "merged" || decoded.StateID != "a" || decoded.OtherStateID != "b" {
		t.Fatalf("decoded = %+v, want MergePoint=3 Msg=merged StateID=a OtherStateID=b", decoded)
	}
}

func TestLogDefaultsNilWriterToStdout(t *testing.T) {
	l := NewLog(nil, false)
	if l.w == nil {
		t.Fatal("NewLog(nil, ...) should default w to os.Stdout, not leave it nil")
	}
}

type recordingEmitter struct {
	batches [][]Event
}

func (r *recordingEmitter) Emit(Event) {}

func (r *recordingEmitter) EmitBatch(_ context.Context, events []Event) error {
	r.batches = append(r.batches, events)
	return nil
}

func (r *recordingEmitter) Flush(context.Context) error { return nil }

func TestBufferedFlushesAutomaticallyAtCapacity(t *testing.T) {
	inner := &recordingEmitter{}
	b := NewBuffered(inner, 2)

	b.Emit(Event{Msg: "parked"})
	if len(inner.batches) != 0 {
		t.Fatalf("flushed after 1 event, want no flush before capacity reached")
	}
	b.Emit(Event{Msg: "merged"})
	if len(inner.batches) != 1 || len(inner.batches[0]) != 2 {
		t.Fatalf("batches = %+v, want one batch of 2 events after hitting capacity", inner.batches)
	}
}

func TestBufferedManualFlushSendsAccumulatedEvents(t *testing.T) {
	inner := &recordingEmitter{}
	b := NewBuffered(inner, 0)

	b.Emit(Event{Msg: "parked"})
	b.Emit(Event{Msg: "bumped"})
	if len(inner.batches) != 0 {
		t.Fatalf("a non-positive capacity should disable automatic flushing")
	}

	if err := b.Flush(context.Background()); err != nil {
		t.Fatalf("Flush returned %v, want nil", err)
	}
	if len(inner.batches) != 1 || len(inner.batches[0]) != 2 {
		t.Fatalf("batches = %+v, want one batch of 2 events after manual Flush", inner.batches)
	}

	if err := b.Flush(context.Background()); err != nil {
		t.Fatalf("second Flush returned %v, want nil", err)
	}
	if len(inner.batches) != 1 {
		t.Fatalf("a Flush with nothing buffered should not forward an empty batch")
	}
}
