package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHoursForDay(t *testing.T) {
	t.Run("weekday", func(t *testing.T) {
		// 2026-09-02 is a Wednesday.
		window, open := HoursForDay(time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC))
		require.True(t, open)
		assert.Equal(t, "10:00", window.Open.String())
		assert.Equal(t, "18:00", window.Close.String())
	})

	t.Run("saturday closes earlier", func(t *testing.T) {
		window, open := HoursForDay(time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC))
		require.True(t, open)
		assert.Equal(t, "10:00", window.Open.String())
		assert.Equal(t, "17:00", window.Close.String())
	})

	t.Run("sunday closed", func(t *testing.T) {
		_, open := HoursForDay(time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC))
		assert.False(t, open)
	})
}
