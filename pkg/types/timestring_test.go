package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	t.Run("Valid Time", func(t *testing.T) {
		ts, err := NewTimeStringFromString("09:30")
		require.NoError(t, err)
		assert.Equal(t, "09:30", ts.String())
	})

	t.Run("Invalid Format", func(t *testing.T) {
		_, err := NewTimeStringFromString("nine thirty")
		assert.ErrorIs(t, err, ErrInvalidTimeString)
	})

	t.Run("Out Of Range", func(t *testing.T) {
		_, err := NewTimeStringFromString("25:00")
		assert.ErrorIs(t, err, ErrTimeOutOfRange)
	})

	t.Run("End Of Day Is Not A Valid Time Of Day", func(t *testing.T) {
		_, err := NewTimeStringFromString("24:00")
		assert.ErrorIs(t, err, ErrTimeOutOfRange)
	})
}

func TestTimeStringAddMinutes(t *testing.T) {
	t.Run("Simple Add", func(t *testing.T) {
		ts, err := TimeString("09:00").AddMinutes(25)
		require.NoError(t, err)
		assert.Equal(t, TimeString("09:25"), ts)
	})

	t.Run("Crosses Hour", func(t *testing.T) {
		ts, err := TimeString("10:45").AddMinutes(30)
		require.NoError(t, err)
		assert.Equal(t, TimeString("11:15"), ts)
	})

	t.Run("Reaches Exclusive End Of Day", func(t *testing.T) {
		ts, err := TimeString("23:30").AddMinutes(30)
		require.NoError(t, err)
		assert.Equal(t, TimeString("24:00"), ts)
	})

	t.Run("Past End Of Day", func(t *testing.T) {
		_, err := TimeString("23:30").AddMinutes(31)
		assert.ErrorIs(t, err, ErrTimeOutOfRange)
	})
}

func TestTimeStringComparisons(t *testing.T) {
	t.Run("Before And After", func(t *testing.T) {
		assert.True(t, TimeString("09:00").IsBefore("09:01"))
		assert.False(t, TimeString("09:01").IsBefore("09:00"))
		assert.True(t, TimeString("09:01").IsAfter("09:00"))
	})

	t.Run("Equal Is Neither", func(t *testing.T) {
		assert.False(t, TimeString("09:00").IsBefore("09:00"))
		assert.False(t, TimeString("09:00").IsAfter("09:00"))
	})

	t.Run("End Of Day Compares After Any Time", func(t *testing.T) {
		assert.True(t, TimeString("24:00").IsAfter("23:59"))
	})
}

func TestTimeStringComponents(t *testing.T) {
	ts := TimeString("17:05")
	assert.Equal(t, 17, ts.Hour())
	assert.Equal(t, 5, ts.Minute())
}

func TestNewTimeString(t *testing.T) {
	instant := time.Date(2026, 4, 6, 14, 30, 59, 0, time.UTC)
	assert.Equal(t, TimeString("14:30"), NewTimeString(instant))
}

func TestTimeStringScan(t *testing.T) {
	t.Run("From String", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("08:15"))
		assert.Equal(t, TimeString("08:15"), ts)
	})

	t.Run("From Bytes", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan([]byte("08:15")))
		assert.Equal(t, TimeString("08:15"), ts)
	})

	t.Run("From Nil", func(t *testing.T) {
		ts := TimeString("08:15")
		require.NoError(t, ts.Scan(nil))
		assert.True(t, ts.IsZero())
	})

	t.Run("Unsupported Type", func(t *testing.T) {
		var ts TimeString
		assert.Error(t, ts.Scan(42))
	})
}
