package ledger

import "time"

type TimeProvider interface {
	NowUTC() time.Time
}

type timeProvider struct{}

func NewTimeProvider() TimeProvider {
	return &timeProvider{}
}

func (t timeProvider) NowUTC() time.Time {
	// timestamptz keeps microseconds, so drop the nanoseconds up front and
	// timestamps survive a store round trip unchanged.
	return time.Now().UTC().Truncate(time.Microsecond)
}
