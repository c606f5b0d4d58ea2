package advisor

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestPendingTracker_Gate(t *testing.T) {
	tracker := NewPendingTracker()

	if !tracker.TryStart("a") {
		t.Fatal("expected first start to succeed")
	}
	if tracker.TryStart("a") {
		t.Error("expected second start for the same client to fail")
	}
	if !tracker.TryStart("b") {
		t.Error("expected other client to start independently")
	}

	tracker.Finish("a")
	if tracker.IsPending("a") {
		t.Error("expected client to be idle after Finish")
	}
	if !tracker.TryStart("a") {
		t.Error("expected client to start again after Finish")
	}
}

func TestPendingTracker_ConcurrentStartsAdmitOne(t *testing.T) {
	tracker := NewPendingTracker()

	var admitted atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if tracker.TryStart("same") {
				admitted.Add(1)
			}
		}()
	}
	wg.Wait()

	if admitted.Load() != 1 {
		t.Errorf("expected exactly one admitted request, got %d", admitted.Load())
	}
}

func TestPendingTracker_Failures(t *testing.T) {
	tracker := NewPendingTracker()

	if tracker.LastFailure("a") != nil {
		t.Error("expected no failure initially")
	}

	tracker.SetFailure("a", &FailureReason{Code: ErrCodeAITimeout, Retryable: true})
	if got := tracker.LastFailure("a"); got == nil || got.Code != ErrCodeAITimeout {
		t.Errorf("expected stored failure, got %+v", got)
	}

	tracker.ClearFailure("a")
	if tracker.LastFailure("a") != nil {
		t.Error("expected failure to be cleared")
	}
}
