package entity

import "time"

const minutesPerDay = 24 * 60

// Timeframe is one contiguous open interval within a weekday, expressed in
// minutes from midnight. End may exceed 1440 for frames that cross midnight
// into the following day.
type Timeframe struct {
	Start          int    `json:"start"`
	End            int    `json:"end"`
	FormattedStart string `json:"formatted_start,omitempty"`
	FormattedEnd   string `json:"formatted_end,omitempty"`
}

// Valid reports whether the frame describes a plausible interval. Frames
// implying spans beyond a single midnight crossing are treated as invalid
// input rather than guessed at.
func (f Timeframe) Valid() bool {
	return f.Start >= 0 && f.End >= f.Start && f.End < 2*minutesPerDay
}

// Contains reports whether the minute offset falls within the frame, bounds
// inclusive.
func (f Timeframe) Contains(minute int) bool {
	return f.Start <= minute && minute <= f.End
}

// OpeningTimes maps a weekday to its open timeframes. Weekday numbering
// follows the upstream payload, 0=Sunday through 6=Saturday, which coincides
// with time.Weekday.
type OpeningTimes map[time.Weekday][]Timeframe

// IsOpenAt reports whether any timeframe covers the instant t shifted
// offsetMinutes into the future. The instant must already carry the reference
// timezone of the restaurant. A frame of the previous weekday whose end runs
// past 24:00 also covers the early minutes of the effective day. A weekday
// without frames is simply closed.
func (ot OpeningTimes) IsOpenAt(t time.Time, offsetMinutes int) bool {
	if len(ot) == 0 {
		return false
	}
	effective := t.Add(time.Duration(offsetMinutes) * time.Minute)
	minute := effective.Hour()*60 + effective.Minute()

	for _, frame := range ot[effective.Weekday()] {
		if frame.Contains(minute) {
			return true
		}
	}

	previous := (effective.Weekday() + 6) % 7
	for _, frame := range ot[previous] {
		if frame.End >= minutesPerDay && frame.Contains(minute+minutesPerDay) {
			return true
		}
	}
	return false
}
