package booking

import (
	"errors"
	"time"
)

// DateFormat is the wire format for pickup and return dates. Bookings are
// calendar-date granular; no time component is carried.
const DateFormat = "2006-01-02"

var (
	ErrMalformedDate    = errors.New("malformed date")
	ErrInvalidDateRange = errors.New("pickup date must be before return date")
	ErrPickupInPast     = errors.New("pickup date cannot be in the past")
)

// DateRange is a closed interval of calendar dates [pickup, return].
type DateRange struct {
	pickup time.Time
	ret    time.Time
}

// NewDateRange builds a range from already-parsed dates. today is the
// calendar date the validation runs on; a pickup strictly before it is
// rejected, a pickup on it is allowed.
func NewDateRange(pickup, ret, today time.Time) (DateRange, error) {
	pickup = truncateToDate(pickup)
	ret = truncateToDate(ret)
	today = truncateToDate(today)

	if !pickup.Before(ret) {
		return DateRange{}, ErrInvalidDateRange
	}
	if pickup.Before(today) {
		return DateRange{}, ErrPickupInPast
	}

	return DateRange{pickup: pickup, ret: ret}, nil
}

// ParseDateRange parses two ISO calendar dates (YYYY-MM-DD) and validates
// them as a booking range.
func ParseDateRange(pickupStr, retStr string, today time.Time) (DateRange, error) {
	pickup, err := time.Parse(DateFormat, pickupStr)
	if err != nil {
		return DateRange{}, ErrMalformedDate
	}
	ret, err := time.Parse(DateFormat, retStr)
	if err != nil {
		return DateRange{}, ErrMalformedDate
	}
	return NewDateRange(pickup, ret, today)
}

// ReconstructDateRange restores a range from storage without re-validating
// against the current date. Persisted rows may legitimately lie in the past.
func ReconstructDateRange(pickup, ret time.Time) DateRange {
	return DateRange{pickup: truncateToDate(pickup), ret: truncateToDate(ret)}
}

func (r DateRange) Pickup() time.Time {
	return r.pickup
}

func (r DateRange) Return() time.Time {
	return r.ret
}

func (r DateRange) Days() int {
	return int(r.ret.Sub(r.pickup).Hours() / 24)
}

// Overlaps reports whether two ranges conflict. Intervals are closed on
// both ends: a return on day D and a pickup on day D count as a conflict,
// there is no same-day turnover.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.pickup.After(other.ret) && !r.ret.Before(other.pickup)
}

func (r DateRange) String() string {
	return r.pickup.Format(DateFormat) + "/" + r.ret.Format(DateFormat)
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
