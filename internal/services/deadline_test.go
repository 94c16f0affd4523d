package services

import (
	"errors"
	"testing"
	"time"
)

func TestRunWithDeadlineReturnsResult(t *testing.T) {
	got, err := runWithDeadline(time.Second, func() (string, error) {
		return "done", nil
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != "done" {
		t.Errorf("Expected 'done', got %q", got)
	}
}

func TestRunWithDeadlinePropagatesError(t *testing.T) {
	boom := errors.New("boom")
	_, err := runWithDeadline(time.Second, func() (int, error) {
		return 0, boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("Expected the function's error, got %v", err)
	}
}

// A deadline hit discards the slow operation's result entirely; partial
// output must never surface.
func TestRunWithDeadlineTimesOut(t *testing.T) {
	start := time.Now()
	got, err := runWithDeadline(20*time.Millisecond, func() (string, error) {
		time.Sleep(500 * time.Millisecond)
		return "partial text that must be discarded", nil
	})

	if time.Since(start) > 200*time.Millisecond {
		t.Error("Expected the deadline to fire well before the operation finished")
	}
	if got != "" {
		t.Errorf("Expected zero value on timeout, got %q", got)
	}

	var ee *ExtractError
	if !errors.As(err, &ee) {
		t.Fatalf("Expected *ExtractError, got %T", err)
	}
	if ee.Kind != ExtractTimeout {
		t.Errorf("Expected TIMEOUT, got %s", ee.Kind)
	}
}

// The whole-extraction timeout race: per-page work exceeding the configured
// timeout resolves as TIMEOUT, never as a partial-text success.
func TestExtractTimeoutNeverReturnsPartialText(t *testing.T) {
	svc := NewPDFExtractService()

	// validatePayload passes; the progress callback then stalls the worker
	// long past the deadline, so the timer always wins the race.
	payload := []byte("%PDF-1.5\n" + string(make([]byte, 1<<20)))

	result, err := svc.Extract(payload, ExtractOptions{
		Timeout:    5 * time.Millisecond,
		OnProgress: func(float64) { time.Sleep(300 * time.Millisecond) },
	})
	if result != nil {
		t.Fatalf("Expected no result on timeout, got %d bytes of text", len(result.Text))
	}

	ee := AsExtractError(err)
	if ee.Kind != ExtractTimeout {
		t.Errorf("Expected TIMEOUT, got %s", ee.Kind)
	}
}
