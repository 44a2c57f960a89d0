package crontab

import (
	"fmt"
	"time"
)

// NextOccurrence returns the earliest instant at or after the minute
// containing now that satisfies the schedule. The result is expressed in
// the schedule's location. Because the search starts at the top of the
// current minute, the result may precede now by up to 59 seconds.
func (s *Schedule) NextOccurrence(now time.Time) (time.Time, error) {
	t := floorMinute(now.In(s.loc))
	limit := t.AddDate(s.horizonYears, 0, 0)

	for !t.After(limit) {
		switch {
		case !s.month.Has(int(t.Month())) || !s.dayMatches(t):
			t = advance(t, (23-t.Hour())*60+60-t.Minute())
		case !s.hour.Has(t.Hour()):
			t = advance(t, 60-t.Minute())
		default:
			m, ok := s.minute.nextFrom(t.Minute())
			if !ok {
				t = advance(t, 60-t.Minute())
				continue
			}
			if m == t.Minute() {
				return t, nil
			}
			t = advance(t, m-t.Minute())
		}
	}
	return time.Time{}, fmt.Errorf("%w (%d years): %s", ErrNoOccurrence, s.horizonYears, s)
}

// Next returns the first occurrence strictly after t, or the zero time when
// none exists within the horizon. It lets a Schedule stand in for a
// cron.Schedule.
func (s *Schedule) Next(t time.Time) time.Time {
	next, err := s.NextOccurrence(t.Add(time.Minute))
	if err != nil {
		return time.Time{}
	}
	return next
}

func (s *Schedule) dayMatches(t time.Time) bool {
	domRestricted := !s.monthDay.Full()
	dowRestricted := !s.weekDay.Full()
	dom := s.monthDay.Has(t.Day())
	dow := s.weekDay.Has(isoWeekday(t.Weekday()))

	switch {
	case domRestricted && dowRestricted:
		if s.dayMatch == DayMatchEither {
			return dom || dow
		}
		return dom && dow
	case domRestricted:
		return dom
	case dowRestricted:
		return dow
	}
	return true
}

// isoWeekday maps time.Sunday..Saturday onto 1 (Monday) .. 7 (Sunday).
func isoWeekday(d time.Weekday) int {
	if d == time.Sunday {
		return 7
	}
	return int(d)
}

// floorMinute drops the local seconds and sub-second part of t.
func floorMinute(t time.Time) time.Time {
	return t.Add(-time.Duration(t.Second())*time.Second - time.Duration(t.Nanosecond()))
}

// advance moves t forward by the given number of minutes but never past the
// end of the zone offset currently in effect, so wall-clock components are
// re-read after every transition.
func advance(t time.Time, minutes int) time.Time {
	next := t.Add(time.Duration(minutes) * time.Minute)
	if _, end := t.ZoneBounds(); !end.IsZero() && end.After(t) && next.After(end) {
		return end
	}
	return next
}
