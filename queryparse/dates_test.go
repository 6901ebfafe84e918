package queryparse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateExpression(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("recent means last 30 days", func(t *testing.T) {
		ts, ok := ParseDateExpression("recent", now)
		require.True(t, ok)
		assert.Equal(t, now.AddDate(0, 0, -30).Unix(), ts)
	})

	t.Run("last N days", func(t *testing.T) {
		ts, ok := ParseDateExpression("last 7 days", now)
		require.True(t, ok)
		assert.Equal(t, now.AddDate(0, 0, -7).Unix(), ts)
	})

	t.Run("last N weeks", func(t *testing.T) {
		ts, ok := ParseDateExpression("last 2 weeks", now)
		require.True(t, ok)
		assert.Equal(t, now.AddDate(0, 0, -14).Unix(), ts)
	})

	t.Run("last N months uses 30 day months", func(t *testing.T) {
		ts, ok := ParseDateExpression("last 3 months", now)
		require.True(t, ok)
		assert.Equal(t, now.AddDate(0, 0, -90).Unix(), ts)
	})

	t.Run("absolute month and year", func(t *testing.T) {
		ts, ok := ParseDateExpression("January 2025", now)
		require.True(t, ok)
		assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).Unix(), ts)
	})

	t.Run("abbreviated month and year", func(t *testing.T) {
		ts, ok := ParseDateExpression("Mar 2025", now)
		require.True(t, ok)
		assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC).Unix(), ts)
	})

	t.Run("iso date", func(t *testing.T) {
		ts, ok := ParseDateExpression("2025-01-15", now)
		require.True(t, ok)
		assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC).Unix(), ts)
	})

	t.Run("us date", func(t *testing.T) {
		ts, ok := ParseDateExpression("03/20/2025", now)
		require.True(t, ok)
		assert.Equal(t, time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC).Unix(), ts)
	})

	t.Run("unparseable expressions", func(t *testing.T) {
		for _, expr := range []string{"", "null", "NULL", "sometime soon", "last fortnight"} {
			_, ok := ParseDateExpression(expr, now)
			assert.False(t, ok, "expr %q", expr)
		}
	})
}

func TestExtractDigits(t *testing.T) {
	n, ok := extractDigits("last 30 days")
	require.True(t, ok)
	assert.Equal(t, 30, n)

	n, ok = extractDigits("last 2 weeks")
	require.True(t, ok)
	assert.Equal(t, 2, n)

	_, ok = extractDigits("last month")
	assert.False(t, ok)
}
