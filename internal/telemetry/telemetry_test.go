package telemetry

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionIDIsUUID(t *testing.T) {
	_, err := uuid.Parse(SessionID())
	require.NoError(t, err)
	assert.Equal(t, SessionID(), SessionID())
}

func TestTracersWorkWithoutSetup(t *testing.T) {
	ctx, span := Tracer("test").Start(context.Background(), "test.span")
	span.End()
	assert.NotNil(t, ctx)

	_, span = NoopTracer().Start(context.Background(), "noop.span")
	assert.False(t, span.IsRecording())
	span.End()
}
