package helpers

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewPublicCode(t *testing.T) {
	t.Run(`format check`, func(t *testing.T) {
		code := NewPublicCode(SolicitudCodePrefix)
		parts := strings.Split(code, "-")
		require.Len(t, parts, 3)
		require.Equal(t, SolicitudCodePrefix, parts[0])

		ts, err := strconv.ParseInt(parts[1], 10, 64)
		require.Nil(t, err)
		require.InDelta(t, time.Now().Unix(), ts, 5)

		require.Len(t, parts[2], 8)
	})

	t.Run(`codes do not repeat`, func(t *testing.T) {
		seen := map[string]bool{}
		for i := 0; i < 100; i++ {
			code := NewPublicCode(EmpleatCodePrefix)
			require.False(t, seen[code])
			seen[code] = true
		}
	})
}

func TestIsContextDone(t *testing.T) {
	require.True(t, IsContextDone(nil))

	ctx, cancel := context.WithCancel(context.Background())
	require.False(t, IsContextDone(ctx))
	cancel()
	require.True(t, IsContextDone(ctx))
}
