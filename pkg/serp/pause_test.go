package serp

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRandomPause(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi time.Duration
	}{
		{name: "range", lo: 5 * time.Millisecond, hi: 15 * time.Millisecond},
		{name: "fixed", lo: 5 * time.Millisecond, hi: 5 * time.Millisecond},
		{name: "inverted bounds use lo", lo: 5 * time.Millisecond, hi: time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := time.Now()
			if err := RandomPause(tt.lo, tt.hi)(context.Background()); err != nil {
				t.Fatalf("pause error = %v", err)
			}
			if elapsed := time.Since(start); elapsed < tt.lo {
				t.Errorf("paused %v, want at least %v", elapsed, tt.lo)
			}
		})
	}
}

func TestRandomPause_Cancelled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := RandomPause(time.Minute, 2*time.Minute)(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, want deadline exceeded", err)
	}
	if time.Since(start) > 5*time.Second {
		t.Error("pause ignored cancellation")
	}
}
