package validate

import (
	"time"

	"recordar/internal/model"
)

// DateTime decides whether a date/time selection may be attached to a
// reminder, relative to the injected now. addDate and addTime mirror the
// two selection toggles; selectedDate and selectedTime are only consulted
// when the matching toggle is set.
//
// Rules, in precedence order:
//
//  1. neither toggle set: always valid, the reminder has no schedule;
//  2. both set: the combined instant must be strictly later than now;
//  3. date only: the selected day must be today or later, compared at
//     start of day so that "today with no time" is accepted;
//  4. time only: minute-of-day comparison, strictly greater than now's.
//
// Rule 4 never consults the date, so a selection made just before midnight
// still validates against the new day's clock after rollover. That matches
// the shipped behavior and is kept deliberately; see the package tests.
func DateTime(now time.Time, addDate bool, selectedDate time.Time, addTime bool, selectedTime time.Time) bool {
	if !addDate && !addTime {
		return true
	}

	switch {
	case addDate && addTime:
		combined := model.CombineDateTime(selectedDate, selectedTime)
		return combined.After(now)

	case addDate:
		return !startOfDay(selectedDate).Before(startOfDay(now))

	default: // addTime
		selectedMinutes := selectedTime.Hour()*60 + selectedTime.Minute()
		currentMinutes := now.Hour()*60 + now.Minute()
		return selectedMinutes > currentMinutes
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
