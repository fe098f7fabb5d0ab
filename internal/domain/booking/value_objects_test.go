//go:build unit

package booking_test

import (
	"testing"
	"time"

	"github.com/dipakpardeshi85-blip/car-rental/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

func mustRange(t *testing.T, pickup, ret string) booking.DateRange {
	t.Helper()
	r, err := booking.ParseDateRange(pickup, ret, today)
	require.NoError(t, err)
	return r
}

func TestParseDateRange(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		r, err := booking.ParseDateRange("2024-06-01", "2024-06-05", today)
		require.NoError(t, err)
		assert.Equal(t, "2024-06-01/2024-06-05", r.String())
		assert.Equal(t, 4, r.Days())
	})

	t.Run("pickup on today is allowed", func(t *testing.T) {
		_, err := booking.ParseDateRange("2024-05-01", "2024-05-03", today)
		require.NoError(t, err)
	})

	cases := []struct {
		name   string
		pickup string
		ret    string
		errIs  error
	}{
		{name: "reversed range", pickup: "2024-06-10", ret: "2024-06-05", errIs: booking.ErrInvalidDateRange},
		{name: "zero-length range", pickup: "2024-06-05", ret: "2024-06-05", errIs: booking.ErrInvalidDateRange},
		{name: "pickup in the past", pickup: "2024-04-30", ret: "2024-05-05", errIs: booking.ErrPickupInPast},
		{name: "malformed pickup", pickup: "June 1st", ret: "2024-06-05", errIs: booking.ErrMalformedDate},
		{name: "malformed return", pickup: "2024-06-01", ret: "05/06/2024", errIs: booking.ErrMalformedDate},
		{name: "empty dates", pickup: "", ret: "", errIs: booking.ErrMalformedDate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := booking.ParseDateRange(tc.pickup, tc.ret, today)
			require.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestDateRangeOverlaps(t *testing.T) {
	base := mustRange(t, "2024-06-01", "2024-06-05")

	cases := []struct {
		name     string
		pickup   string
		ret      string
		overlaps bool
	}{
		{name: "identical range", pickup: "2024-06-01", ret: "2024-06-05", overlaps: true},
		{name: "contained range", pickup: "2024-06-02", ret: "2024-06-04", overlaps: true},
		{name: "containing range", pickup: "2024-05-30", ret: "2024-06-10", overlaps: true},
		{name: "partial overlap at start", pickup: "2024-05-28", ret: "2024-06-01", overlaps: true},
		{name: "partial overlap at end", pickup: "2024-06-04", ret: "2024-06-08", overlaps: true},
		{name: "touching at return day", pickup: "2024-06-05", ret: "2024-06-10", overlaps: true},
		{name: "touching at pickup day", pickup: "2024-05-28", ret: "2024-06-01", overlaps: true},
		{name: "strictly after", pickup: "2024-06-06", ret: "2024-06-10", overlaps: false},
		{name: "strictly before", pickup: "2024-05-25", ret: "2024-05-31", overlaps: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			other := mustRange(t, tc.pickup, tc.ret)
			assert.Equal(t, tc.overlaps, base.Overlaps(other))
			assert.Equal(t, tc.overlaps, other.Overlaps(base), "overlap must be symmetric")
		})
	}
}

func TestReconstructDateRange(t *testing.T) {
	// Stored rows may be entirely in the past; reconstruction never revalidates
	pickup := time.Date(2020, 1, 10, 13, 45, 0, 0, time.UTC)
	ret := time.Date(2020, 1, 12, 8, 0, 0, 0, time.UTC)

	r := booking.ReconstructDateRange(pickup, ret)
	assert.Equal(t, "2020-01-10/2020-01-12", r.String())
	assert.Equal(t, 2, r.Days())
}
