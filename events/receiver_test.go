package events

import (
	"testing"
	"time"
)

func TestReceiver(t *testing.T) {
	items := []interface{}{
		StartEvent(),
		PhaseEvent("building"),
		DirectoryCreatedEvent("/tmp/a"),
		FileCreatedEvent("/tmp/a/b"),
		LevelDoneEvent(1, "/tmp/a", 1),
		DoneEvent(),
	}

	receiver := New()

	listener1 := receiver.Listen()
	listener2 := receiver.Listen()

	go func() {
		for i := range items {
			receiver.Send(items[i])
		}
		receiver.Close()
	}()

	got1 := []interface{}{}
	got2 := []interface{}{}
	for {
		select {
		case x, ok := <-listener1:
			if !ok {
				listener1 = nil
			} else {
				got1 = append(got1, x)
			}
		case x, ok := <-listener2:
			if !ok {
				listener2 = nil
			} else {
				got2 = append(got2, x)
			}
		}

		if listener1 == nil && listener2 == nil {
			break
		}
	}

	if len(got1) != len(got2) {
		t.Fatalf("different number of events received, %d vs %d (want %d)",
			len(got1), len(got2), len(items))
	}

	if len(got1) != len(items) {
		t.Fatalf("unexpected number of events received: got %d, want %d",
			len(got1), len(items))
	}

	for i := range items {
		if got1[i] != items[i] || got2[i] != items[i] {
			t.Errorf("unexpected event #%d: %T / %T (want %T)", i, got1[i], got2[i], items[i])
		}
	}
}

func TestSendWithoutListeners(t *testing.T) {
	receiver := New()

	done := make(chan struct{})
	go func() {
		receiver.Send(FileCreatedEvent("/tmp/x"))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Send blocked with no listeners")
	}
}

func TestEventTimestamps(t *testing.T) {
	before := time.Now()
	evts := []Event{
		StartEvent(),
		DoneEvent(),
		PhaseEvent("validating"),
		WarningEvent("dropped"),
		ErrorEvent("/tmp/x", "boom"),
		PoolGeneratedEvent(10, time.Millisecond),
		DirectoryCreatedEvent("/tmp/x"),
		DirectoryExistsEvent("/tmp/x"),
		FileCreatedEvent("/tmp/x/y"),
		FileExistsEvent("/tmp/x/y"),
		LevelDoneEvent(1, "/tmp/x", 2),
	}
	after := time.Now()

	for _, e := range evts {
		ts := e.Timestamp()
		if ts.Before(before) || ts.After(after) {
			t.Errorf("%T: timestamp %v outside [%v, %v]", e, ts, before, after)
		}
	}
}
