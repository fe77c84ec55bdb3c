package timeutil

import "time"

// seasonStartMonth is the month a new league year begins.
const seasonStartMonth = time.October

// CurrentSeason returns the league season label for now.
// Before October the previous calendar year is still the current season.
func CurrentSeason(now time.Time) int {
	if now.Month() < seasonStartMonth {
		return now.Year() - 1
	}
	return now.Year()
}

// WindowStart aligns now to the start of its fixed window of the given length.
// Windows are aligned to UTC wall-clock edges so every process agrees on boundaries.
func WindowStart(now time.Time, length time.Duration) time.Time {
	if length <= 0 {
		return now
	}
	return now.UTC().Truncate(length)
}

// WindowReset returns how long until the window containing now closes.
func WindowReset(now time.Time, length time.Duration) time.Duration {
	if length <= 0 {
		return 0
	}
	return WindowStart(now, length).Add(length).Sub(now)
}
