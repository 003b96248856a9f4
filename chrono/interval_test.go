package chrono

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hydrokit/pixml/errs"
)

func TestStepInterval(t *testing.T) {
	t.Run("OneHour", func(t *testing.T) {
		iv, err := StepInterval("second", 3600)
		require.NoError(t, err)
		require.Equal(t, Interval{Unit: UnitHour, Multiplier: 1}, iv)
		require.Equal(t, "1 Hour", iv.String())
	})

	t.Run("SixHour", func(t *testing.T) {
		iv, err := StepInterval("second", 21600)
		require.NoError(t, err)
		require.Equal(t, Interval{Unit: UnitHour, Multiplier: 6}, iv)
		require.Equal(t, "6 Hour", iv.String())
	})

	t.Run("TwentyFourHour", func(t *testing.T) {
		iv, err := StepInterval("second", 86400)
		require.NoError(t, err)
		require.Equal(t, Interval{Unit: UnitHour, Multiplier: 24}, iv)
	})

	t.Run("SubHourRejected", func(t *testing.T) {
		_, err := StepInterval("second", 1800)
		require.ErrorIs(t, err, errs.ErrUnsupportedInterval)
	})

	t.Run("NonMultipleRejected", func(t *testing.T) {
		_, err := StepInterval("second", 3601)
		require.ErrorIs(t, err, errs.ErrUnsupportedInterval)
	})

	t.Run("ZeroRejected", func(t *testing.T) {
		_, err := StepInterval("second", 0)
		require.ErrorIs(t, err, errs.ErrUnsupportedInterval)
	})

	t.Run("UnknownUnitRejected", func(t *testing.T) {
		_, err := StepInterval("minute", 60)
		require.ErrorIs(t, err, errs.ErrUnsupportedInterval)
	})
}

func TestInterval(t *testing.T) {
	t.Run("Daily", func(t *testing.T) {
		iv := Daily()
		require.True(t, iv.IsDaily())
		require.True(t, iv.IsValid())
		require.Equal(t, "Day", iv.String())
		require.Equal(t, 24*time.Hour, iv.Step())
	})

	t.Run("HourlyStep", func(t *testing.T) {
		iv := Interval{Unit: UnitHour, Multiplier: 6}
		require.False(t, iv.IsDaily())
		require.Equal(t, 6*time.Hour, iv.Step())
	})

	t.Run("ZeroValueInvalid", func(t *testing.T) {
		require.False(t, Interval{}.IsValid())
	})
}
