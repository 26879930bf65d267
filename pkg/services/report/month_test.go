package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthRange(t *testing.T) {
	t.Run("start and end are one month apart", func(t *testing.T) {
		start, end, err := MonthRange("2024-05")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), end)
	})

	t.Run("december rolls into next year", func(t *testing.T) {
		start, end, err := MonthRange("2024-12")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), end)
	})

	t.Run("invalid input", func(t *testing.T) {
		for _, mes := range []string{"", "2024", "2024-13", "05-2024", "2024-5", "not-a-month"} {
			_, _, err := MonthRange(mes)
			assert.ErrorIs(t, err, ErrInvalidMonth, "input %q", mes)
		}
	})
}

func TestWeeks(t *testing.T) {
	t.Run("leap february has five buckets", func(t *testing.T) {
		start, end, err := MonthRange("2024-02")
		require.NoError(t, err)

		buckets := Weeks(start, end)
		require.Len(t, buckets, 5)

		// Contiguous 7-day stride; the last bucket runs past Feb 29.
		for i, bucket := range buckets {
			assert.Equal(t, start.AddDate(0, 0, i*7), bucket.Start)
			assert.Equal(t, bucket.Start.AddDate(0, 0, 6), bucket.End)
		}
		assert.True(t, buckets[4].End.After(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("31-day month has five buckets", func(t *testing.T) {
		start, end, err := MonthRange("2024-01")
		require.NoError(t, err)
		assert.Len(t, Weeks(start, end), 5)
	})
}
