package idgen

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNew_Distinct(t *testing.T) {
	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		id := New()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
	require.Len(t, seen, 10000)
}

func TestNewAt_TimestampPrefix(t *testing.T) {
	now := time.UnixMilli(1718010000000)
	id := newAt(now)

	prefix := strconv.FormatInt(now.UnixMilli(), 36)
	require.True(t, strings.HasPrefix(id, prefix))
	require.Len(t, id, len(prefix)+randomChars)

	for _, r := range id {
		require.True(t, strings.ContainsRune(alphabet, r))
	}
}
