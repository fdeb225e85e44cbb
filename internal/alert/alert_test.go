package alert

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCenter_KeepsNewestFirstWithinLimit(t *testing.T) {
	c := NewCenter(zap.NewNop(), 3)
	ctx := WithRequestID(context.Background(), "req-1")

	for i := 0; i < 5; i++ {
		c.Alert(ctx, fmt.Sprintf("alert %d", i))
	}

	recent := c.Recent()
	require.Len(t, recent, 3)
	require.Equal(t, "alert 4", recent[0].Message)
	require.Equal(t, "alert 2", recent[2].Message)
	require.Equal(t, "req-1", recent[0].RequestID)
}

func TestCenter_Empty(t *testing.T) {
	c := NewCenter(zap.NewNop(), 0)
	require.Empty(t, c.Recent())
}

func TestCenter_ForRequest(t *testing.T) {
	c := NewCenter(zap.NewNop(), 10)
	c.Alert(WithRequestID(context.Background(), "a"), "one")
	c.Alert(WithRequestID(context.Background(), "b"), "two")
	c.Alert(context.Background(), "three")

	got := c.ForRequest("b")
	require.Len(t, got, 1)
	require.Equal(t, "two", got[0].Message)
	require.Nil(t, c.ForRequest(""))
}
