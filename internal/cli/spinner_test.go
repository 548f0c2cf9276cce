package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSpinnerBasic(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner(context.Background(), &buf, "Rendering...")
	s.Start()
	time.Sleep(100 * time.Millisecond)
	s.Stop()

	assert.False(t, s.Cancelled(), "Stop is not a cancellation")
	assert.Contains(t, buf.String(), "Rendering...")
}

func TestSpinnerWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var buf bytes.Buffer
	s := newSpinner(ctx, &buf, "Rendering...")
	s.Start()
	cancel()
	time.Sleep(100 * time.Millisecond)

	assert.True(t, s.Cancelled())
	s.Stop()
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner(context.Background(), &buf, "Testing idempotent stop...")
	s.Start()

	assert.NotPanics(t, func() {
		s.Stop()
		s.Stop()
		s.Stop()
	})
}

func TestSpinnerStopWithMessage(t *testing.T) {
	tests := []struct {
		name string
		stop func(*Spinner)
		want string
	}{
		{"success", func(s *Spinner) { s.StopWithSuccess("Done!") }, iconSuccess + " Done!"},
		{"error", func(s *Spinner) { s.StopWithError("Failed!") }, iconError + " Failed!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			s := newSpinner(context.Background(), &buf, "Working...")
			s.Start()
			tt.stop(s)
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}
