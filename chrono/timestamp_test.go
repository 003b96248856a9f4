package chrono

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hydrokit/pixml/errs"
)

func TestParseDateTime(t *testing.T) {
	t.Run("NoShift", func(t *testing.T) {
		ts, err := ParseDateTime("2013-03-01", "06:30:00", 0, time.UTC, false, 0)
		require.NoError(t, err)
		require.Equal(t, PrecisionSecond, ts.Precision)
		require.Equal(t, time.Date(2013, 3, 1, 6, 30, 0, 0, time.UTC), ts.Time)
	})

	t.Run("ShortClock", func(t *testing.T) {
		ts, err := ParseDateTime("2013-03-01", "06:30", 0, time.UTC, false, 0)
		require.NoError(t, err)
		require.Equal(t, time.Date(2013, 3, 1, 6, 30, 0, 0, time.UTC), ts.Time)
	})

	t.Run("ShiftCarriesDateForward", func(t *testing.T) {
		// 23:00 shifted +2 hours lands at 01:00 the next calendar day.
		ts, err := ParseDateTime("2013-03-01", "23:00:00", 2, time.UTC, false, 0)
		require.NoError(t, err)
		require.Equal(t, time.Date(2013, 3, 2, 1, 0, 0, 0, time.UTC), ts.Time)
	})

	t.Run("ShiftCarriesDateBackward", func(t *testing.T) {
		ts, err := ParseDateTime("2013-03-01", "01:00:00", -3, time.UTC, false, 0)
		require.NoError(t, err)
		require.Equal(t, time.Date(2013, 2, 28, 22, 0, 0, 0, time.UTC), ts.Time)
	})

	t.Run("CollapseMidnightRollsBack", func(t *testing.T) {
		// A 24-hour reading stamped at midnight belongs to the previous day.
		ts, err := ParseDateTime("2013-03-02", "00:00:00", 0, time.UTC, true, 0)
		require.NoError(t, err)
		require.Equal(t, PrecisionDay, ts.Precision)
		require.Equal(t, time.Date(2013, 3, 1, 0, 0, 0, 0, time.UTC), ts.Time)
	})

	t.Run("CollapseNonZeroHourKeepsDay", func(t *testing.T) {
		ts, err := ParseDateTime("2013-03-02", "12:00:00", 0, time.UTC, true, 0)
		require.NoError(t, err)
		require.Equal(t, PrecisionDay, ts.Precision)
		require.Equal(t, time.Date(2013, 3, 2, 0, 0, 0, 0, time.UTC), ts.Time)
	})

	t.Run("CollapseCutoffHour", func(t *testing.T) {
		// With a cutoff of 6, readings at or before 06:00 roll back a day.
		ts, err := ParseDateTime("2013-03-02", "06:00:00", 0, time.UTC, true, 6)
		require.NoError(t, err)
		require.Equal(t, time.Date(2013, 3, 1, 0, 0, 0, 0, time.UTC), ts.Time)

		ts, err = ParseDateTime("2013-03-02", "07:00:00", 0, time.UTC, true, 6)
		require.NoError(t, err)
		require.Equal(t, time.Date(2013, 3, 2, 0, 0, 0, 0, time.UTC), ts.Time)
	})

	t.Run("CollapseAfterShift", func(t *testing.T) {
		// The rollback decision is made against the shifted clock: 22:00
		// shifted +2 lands at midnight of the next day, which then rolls
		// back to the original calendar day.
		ts, err := ParseDateTime("2013-03-01", "22:00:00", 2, time.UTC, true, 0)
		require.NoError(t, err)
		require.Equal(t, time.Date(2013, 3, 1, 0, 0, 0, 0, time.UTC), ts.Time)
	})

	t.Run("BadDate", func(t *testing.T) {
		_, err := ParseDateTime("2013/03/01", "00:00:00", 0, time.UTC, false, 0)
		require.ErrorIs(t, err, errs.ErrInvalidDateTime)
	})

	t.Run("BadClock", func(t *testing.T) {
		_, err := ParseDateTime("2013-03-01", "24:61:00", 0, time.UTC, false, 0)
		require.ErrorIs(t, err, errs.ErrInvalidDateTime)
	})

	t.Run("NilZoneDefaultsUTC", func(t *testing.T) {
		ts, err := ParseDateTime("2013-03-01", "00:00:00", 0, nil, false, 0)
		require.NoError(t, err)
		require.Equal(t, time.UTC, ts.Time.Location())
	})
}

func TestZone(t *testing.T) {
	t.Run("ExplicitLabel", func(t *testing.T) {
		zone := Zone("CET", 1)
		name, offset := time.Date(2013, 3, 1, 0, 0, 0, 0, zone).Zone()
		require.Equal(t, "CET", name)
		require.Equal(t, 3600, offset)
	})

	t.Run("DerivedLabels", func(t *testing.T) {
		name, _ := time.Date(2013, 3, 1, 0, 0, 0, 0, Zone("", 0)).Zone()
		require.Equal(t, "GMT", name)

		name, _ = time.Date(2013, 3, 1, 0, 0, 0, 0, Zone("", 2)).Zone()
		require.Equal(t, "GMT+2", name)

		name, _ = time.Date(2013, 3, 1, 0, 0, 0, 0, Zone("", -5)).Zone()
		require.Equal(t, "GMT-5", name)
	})
}

func TestTimestamp(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		day := Timestamp{Time: time.Date(2013, 3, 1, 0, 0, 0, 0, time.UTC), Precision: PrecisionDay}
		require.Equal(t, "2013-03-01", day.String())

		sec := Timestamp{Time: time.Date(2013, 3, 1, 6, 0, 0, 0, time.UTC), Precision: PrecisionSecond}
		require.Equal(t, "2013-03-01 06:00:00", sec.String())
	})

	t.Run("EqualRequiresSamePrecision", func(t *testing.T) {
		at := time.Date(2013, 3, 1, 0, 0, 0, 0, time.UTC)
		day := Timestamp{Time: at, Precision: PrecisionDay}
		sec := Timestamp{Time: at, Precision: PrecisionSecond}
		require.False(t, day.Equal(sec))
		require.True(t, day.Equal(day))
	})
}
