package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		ts, err := NewTimeStringFromString("09:30")
		require.NoError(t, err)
		assert.Equal(t, "09:30", ts.String())
	})

	t.Run("invalid", func(t *testing.T) {
		for _, raw := range []string{"", "09-30", "09:61", "aa:bb"} {
			_, err := NewTimeStringFromString(raw)
			assert.ErrorIs(t, err, ErrInvalidTimeFormat, raw)
		}
	})
}

func TestTimeStringMinutes(t *testing.T) {
	ts, err := NewTimeStringFromString("10:45")
	require.NoError(t, err)

	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 645, minutes)
}

func TestTimeStringAddMinutes(t *testing.T) {
	t.Run("within the day", func(t *testing.T) {
		ts, _ := NewTimeStringFromString("10:00")
		got, err := ts.AddMinutes(45)
		require.NoError(t, err)
		assert.Equal(t, "10:45", got.String())
	})

	t.Run("past midnight keeps counting", func(t *testing.T) {
		ts, _ := NewTimeStringFromString("23:45")
		got, err := ts.AddMinutes(45)
		require.NoError(t, err)
		assert.Equal(t, "24:30", got.String())
	})
}

func TestTimeStringComparisons(t *testing.T) {
	a, _ := NewTimeStringFromString("10:00")
	b, _ := NewTimeStringFromString("10:15")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsAfter(a))
}

func TestTimeStringScan(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("14:30:00"))
		assert.Equal(t, "14:30", ts.String())
	})

	t.Run("time.Time", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(time.Date(2026, 9, 2, 8, 5, 0, 0, time.UTC)))
		assert.Equal(t, "08:05", ts.String())
	})

	t.Run("nil leaves zero value", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(nil))
		assert.True(t, ts.IsZero())
	})
}
