package crontab

import (
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultHorizonYears bounds the occurrence search.
const DefaultHorizonYears = 8

// DayMatch selects how the day-of-month and day-of-week fields combine when
// both are restricted.
type DayMatch int

const (
	// DayMatchBoth requires a day to satisfy both restricted fields.
	DayMatchBoth DayMatch = iota
	// DayMatchEither accepts a day satisfying either restricted field
	// (the Vixie cron rule).
	DayMatchEither
)

func (d DayMatch) String() string {
	if d == DayMatchEither {
		return "either"
	}
	return "both"
}

// ParseDayMatch maps a config value onto a DayMatch.
func ParseDayMatch(s string) (DayMatch, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "both", "and":
		return DayMatchBoth, nil
	case "either", "or":
		return DayMatchEither, nil
	}
	return DayMatchBoth, fmt.Errorf("unknown day match %q (want both or either)", s)
}

// Option tunes how a Schedule is built.
type Option func(*Schedule)

// WithDayMatch sets the day selection policy.
func WithDayMatch(d DayMatch) Option {
	return func(s *Schedule) { s.dayMatch = d }
}

// WithHorizon sets how many years ahead NextOccurrence searches. Values < 1
// keep the default.
func WithHorizon(years int) Option {
	return func(s *Schedule) {
		if years > 0 {
			s.horizonYears = years
		}
	}
}

// Schedule is a parsed crontab line. It is immutable and safe for
// concurrent use.
type Schedule struct {
	minute   Field
	hour     Field
	monthDay Field
	month    Field
	weekDay  Field

	loc     *time.Location
	command string

	dayMatch     DayMatch
	horizonYears int
}

var _ cron.Schedule = (*Schedule)(nil)

// Parse parses "<minute> <hour> <monthday> <month> <weekday> <command...>"
// or "@macro <command...>". A nil loc means UTC.
func Parse(text string, loc *time.Location, opts ...Option) (*Schedule, error) {
	tokens, _ := ExpandMacro(strings.Fields(text))
	if len(tokens) < 6 {
		return nil, &ValidationError{
			Message: fmt.Sprintf("Crontab expression must be of 6 fields, Received: %d", len(tokens)),
		}
	}
	if loc == nil {
		loc = time.UTC
	}

	s := &Schedule{
		loc:          loc,
		command:      strings.Join(tokens[5:], " "),
		horizonYears: DefaultHorizonYears,
	}
	targets := [...]*Field{&s.minute, &s.hour, &s.monthDay, &s.month, &s.weekDay}
	for i, dst := range targets {
		f, err := ParseField(tokens[i], FieldKind(i))
		if err != nil {
			return nil, err
		}
		*dst = f
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Schedule) Minute() Field            { return s.minute }
func (s *Schedule) Hour() Field              { return s.hour }
func (s *Schedule) MonthDay() Field          { return s.monthDay }
func (s *Schedule) Month() Field             { return s.month }
func (s *Schedule) WeekDay() Field           { return s.weekDay }
func (s *Schedule) Location() *time.Location { return s.loc }
func (s *Schedule) Command() string          { return s.command }
func (s *Schedule) DayMatch() DayMatch       { return s.dayMatch }

// Field returns the set for kind.
func (s *Schedule) Field(kind FieldKind) Field {
	switch kind {
	case Minute:
		return s.minute
	case Hour:
		return s.hour
	case MonthDay:
		return s.monthDay
	case Month:
		return s.month
	default:
		return s.weekDay
	}
}

// String renders the diagnostic form
// "minute=[..] hour=[..] monthday=[..] month=[..] weekday=[..] tz=.. command=..".
func (s *Schedule) String() string {
	return fmt.Sprintf("minute=%s hour=%s monthday=%s month=%s weekday=%s tz=%s command=%s",
		s.minute, s.hour, s.monthDay, s.month, s.weekDay, s.loc, s.command)
}
