package hub

import (
	"testing"
	"time"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestHub_RunAndStop(t *testing.T) {
	h := New("status")
	if h.Name() != "status" {
		t.Errorf("Name: got %q", h.Name())
	}

	go h.Run()
	waitFor(t, h.IsRunning)

	if h.ClientCount() != 0 {
		t.Errorf("ClientCount: got %d, want 0", h.ClientCount())
	}

	h.Stop()
	h.Stop() // second call is a no-op
	waitFor(t, func() bool { return !h.IsRunning() })
}

func TestHub_BroadcastRemembersLast(t *testing.T) {
	h := New("frames")
	go h.Run()
	defer h.Stop()

	if err := h.BroadcastJSON(map[string]int{"sensitivity": 7000}); err != nil {
		t.Fatalf("BroadcastJSON: %v", err)
	}
	h.BroadcastBinary([]byte{0xff, 0xd8})

	waitFor(t, func() bool {
		h.mu.RLock()
		defer h.mu.RUnlock()
		return h.hasLast && h.last.Type == BinaryMessage
	})
}

func TestHub_BroadcastDoesNotBlockWithoutRun(t *testing.T) {
	h := New("idle")

	done := make(chan struct{})
	go func() {
		for i := 0; i < cap(h.broadcast)+10; i++ {
			h.BroadcastBinary([]byte{byte(i)})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Broadcast blocked with a full queue")
	}
}

func TestBroadcastJSON_EncodeError(t *testing.T) {
	h := New("bad")
	if err := h.BroadcastJSON(make(chan int)); err == nil {
		t.Error("BroadcastJSON: expected error for unencodable value")
	}
}

func TestMessageConstructors(t *testing.T) {
	if m := NewJSONMessage([]byte("{}")); m.Type != JSONMessage || string(m.Data) != "{}" {
		t.Errorf("NewJSONMessage: got %+v", m)
	}
	if m := NewBinaryMessage([]byte{1}); m.Type != BinaryMessage || len(m.Data) != 1 {
		t.Errorf("NewBinaryMessage: got %+v", m)
	}
}
