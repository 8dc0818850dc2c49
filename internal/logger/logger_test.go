package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestID(t *testing.T) {
	a := NewRequestID()
	b := NewRequestID()
	assert.Len(t, a, 8)
	assert.NotEqual(t, a, b)
}

func TestContextIDs(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, RequestIDFromContext(ctx))
	assert.Empty(t, SessionIDFromContext(ctx))

	ctx = WithRequestID(ctx, "req1")
	ctx = WithSessionID(ctx, "game1")
	assert.Equal(t, "req1", RequestIDFromContext(ctx))
	assert.Equal(t, "game1", SessionIDFromContext(ctx))
}

func TestForRequest_AddsIDs(t *testing.T) {
	var buf bytes.Buffer
	InitWriter("debug", &buf)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	ctx := WithSessionID(WithRequestID(context.Background(), "abc"), "g-1")
	l := ForRequest(ctx)
	l.Info().Msg("hello")

	out := buf.String()
	require.Contains(t, out, "hello")
	assert.Contains(t, out, "requestId=abc")
	assert.Contains(t, out, "sessionId=g-1")
}

func TestForRequest_ChainsIntoEvent(t *testing.T) {
	var buf bytes.Buffer
	InitWriter("info", &buf)

	ForRequest(WithSessionID(context.Background(), "g-2")).Info().Msg("created")
	ForRequest(context.Background()).Error().Msg("failed")

	out := buf.String()
	assert.Contains(t, out, "sessionId=g-2")
	assert.Contains(t, out, "created")
	assert.Contains(t, out, "failed")
}

func TestInit_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	InitWriter("chatty", &buf)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
