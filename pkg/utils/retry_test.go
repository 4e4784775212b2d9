package utils

import (
	"errors"
	"testing"
	"time"
)

func TestRetry(t *testing.T) {
	cfg := RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond, Multiplier: 2}
	errNotFound := errors.New("not found")

	t.Run("succeeds on second attempt", func(t *testing.T) {
		calls := 0
		err := Retry(cfg, func() error {
			calls++
			if calls == 1 {
				return errors.New("temporary")
			}
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls != 2 {
			t.Errorf("expected 2 calls, got %d", calls)
		}
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		calls := 0
		wantErr := errors.New("persistent")
		err := Retry(cfg, func() error {
			calls++
			return wantErr
		})
		if !errors.Is(err, wantErr) {
			t.Fatalf("expected %v, got %v", wantErr, err)
		}
		if calls != 3 {
			t.Errorf("expected 3 calls, got %d", calls)
		}
	})

	t.Run("skip errors are not retried", func(t *testing.T) {
		calls := 0
		err := Retry(cfg, func() error {
			calls++
			return errNotFound
		}, errNotFound)
		if !errors.Is(err, errNotFound) {
			t.Fatalf("expected %v, got %v", errNotFound, err)
		}
		if calls != 1 {
			t.Errorf("expected 1 call, got %d", calls)
		}
	})
}
