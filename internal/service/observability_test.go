package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogUseCaseObserver_WritesEvents(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "form-save",
		Duration: 12 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"user": "u1"},
	})
	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name: "export",
		Err:  errors.New("disk full"),
	})

	out := buf.String()
	assert.Contains(t, out, "service_use_case")
	assert.Contains(t, out, "form-save")
	assert.Contains(t, out, "u1")
	assert.Contains(t, out, "disk full")
}

func TestNewLogUseCaseObserver_NilWriter(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
	assert.IsType(t, NoopUseCaseObserver{}, NewLoggerUseCaseObserver(nil))
}
