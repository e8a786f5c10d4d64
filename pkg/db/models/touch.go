package models

import "time"

// NextUpdateTime returns the timestamp to stamp on a mutated record. When the
// wall clock has not advanced past prev (coarse clocks, back-to-back updates
// in the same tick) the result is prev plus one nanosecond, so updatedAt
// strictly increases with every mutation.
func NextUpdateTime(prev time.Time) time.Time {
	now := time.Now().UTC()
	if !now.After(prev) {
		return prev.Add(time.Nanosecond)
	}
	return now
}
