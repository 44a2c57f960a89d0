package crontab

import (
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"
)

// span renders "[lo, lo+1, ..., hi]".
func span(lo, hi int) string {
	parts := make([]string, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		parts = append(parts, strconv.Itoa(v))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func TestParseString(t *testing.T) {
	t.Parallel()

	allMinutes, allHours, allDays := span(0, 59), span(0, 23), span(1, 31)
	allMonths, allWeekdays := span(1, 12), span(1, 7)

	tests := []struct {
		expr string
		want string
	}{
		{
			"* * * * * /usr/bin/find",
			"minute=" + allMinutes + " hour=" + allHours + " monthday=" + allDays +
				" month=" + allMonths + " weekday=" + allWeekdays + " tz=UTC command=/usr/bin/find",
		},
		{
			"0 0-23 */2 1,2-3,4-12/2 0,1,2 /usr/bin/find",
			"minute=[0] hour=" + allHours +
				" monthday=[1, 3, 5, 7, 9, 11, 13, 15, 17, 19, 21, 23, 25, 27, 29, 31]" +
				" month=[1, 2, 3, 4, 6, 8, 10, 12] weekday=[1, 2, 7] tz=UTC command=/usr/bin/find",
		},
		{
			"*/15 0 1,15 * 1-5 /usr/bin/find",
			"minute=[0, 15, 30, 45] hour=[0] monthday=[1, 15] month=" + allMonths +
				" weekday=[1, 2, 3, 4, 5] tz=UTC command=/usr/bin/find",
		},
		{
			"*/30 0 * jan,FEB 1-5 /usr/bin/find",
			"minute=[0, 30] hour=[0] monthday=" + allDays +
				" month=[1, 2] weekday=[1, 2, 3, 4, 5] tz=UTC command=/usr/bin/find",
		},
		{
			"*/30 0 * 1 Mon-Sat /usr/bin/find",
			"minute=[0, 30] hour=[0] monthday=" + allDays +
				" month=[1] weekday=[1, 2, 3, 4, 5, 6] tz=UTC command=/usr/bin/find",
		},
		{
			"*/30 0 10 jan-4,8-12 1-5 /usr/bin/find",
			"minute=[0, 30] hour=[0] monthday=[10] month=[1, 2, 3, 4, 8, 9, 10, 11, 12]" +
				" weekday=[1, 2, 3, 4, 5] tz=UTC command=/usr/bin/find",
		},
		{
			"@yearly /usr/bin/find",
			"minute=[0] hour=[0] monthday=[1] month=[1] weekday=" + allWeekdays +
				" tz=UTC command=/usr/bin/find",
		},
		{
			"@annually /usr/bin/find",
			"minute=[0] hour=[0] monthday=[1] month=[1] weekday=" + allWeekdays +
				" tz=UTC command=/usr/bin/find",
		},
		{
			"@monthly /usr/bin/find",
			"minute=[0] hour=[0] monthday=[1] month=" + allMonths + " weekday=" + allWeekdays +
				" tz=UTC command=/usr/bin/find",
		},
		{
			"@weekly /usr/bin/find",
			"minute=[0] hour=[0] monthday=" + allDays + " month=" + allMonths +
				" weekday=[7] tz=UTC command=/usr/bin/find",
		},
		{
			"@daily /usr/bin/find",
			"minute=[0] hour=[0] monthday=" + allDays + " month=" + allMonths +
				" weekday=" + allWeekdays + " tz=UTC command=/usr/bin/find",
		},
		{
			"@midnight /usr/bin/find",
			"minute=[0] hour=[0] monthday=" + allDays + " month=" + allMonths +
				" weekday=" + allWeekdays + " tz=UTC command=/usr/bin/find",
		},
		{
			"@hourly /usr/bin/find",
			"minute=[0] hour=" + allHours + " monthday=" + allDays + " month=" + allMonths +
				" weekday=" + allWeekdays + " tz=UTC command=/usr/bin/find",
		},
		{
			"@every_minute /usr/bin/find",
			"minute=" + allMinutes + " hour=" + allHours + " monthday=" + allDays +
				" month=" + allMonths + " weekday=" + allWeekdays + " tz=UTC command=/usr/bin/find",
		},
		{
			"5  4   * * *   tar  -czf  /tmp/x.tgz /srv",
			"minute=[5] hour=[4] monthday=" + allDays + " month=" + allMonths +
				" weekday=" + allWeekdays + " tz=UTC command=tar -czf /tmp/x.tgz /srv",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.expr, func(t *testing.T) {
			t.Parallel()
			sched, err := Parse(tt.expr, time.UTC)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.expr, err)
			}
			if got := sched.String(); got != tt.want {
				t.Fatalf("expected\n%s\ngot\n%s", tt.want, got)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expr string
		want string
	}{
		{"c * * * * /usr/bin/find", "Minute value must be of type int"},
		{"* 1-! * * * /usr/bin/find", "Hour value must be of type int"},
		{"* * 1-12/. * * /usr/bin/find", "Monthday value must be of type int"},
		{"*/* * * * * /usr/bin/find", "Minute value must be of type int"},
		{"*// * * * * /usr/bin/find", "Minute value must not contain more than one step parameter (/)"},
		{"1-- * * * * /usr/bin/find", "Minute value must not contain more than one range parameter (-)"},
		{"1,, * * * * /usr/bin/find", "Minute value must be of type int"},
		{"* 2-1 * * * /usr/bin/find", "Hour range start value must not be > than end value"},
		{"60 * * * * /usr/bin/find", "Minute value must be in range of [0, 59]"},
		{"* 24 * * * /usr/bin/find", "Hour value must be in range of [0, 23]"},
		{"* * 32 * * /usr/bin/find", "Monthday value must be in range of [1, 31]"},
		{"* * * 13 * /usr/bin/find", "Month value must be in range of [1, 12]"},
		{"* * * * 8 /usr/bin/find", "Weekday value must be in range of [1, 7]"},
		{"* * 0 * * /usr/bin/find", "Monthday value must be in range of [1, 31]"},
		{"* * * 0 * /usr/bin/find", "Month value must be in range of [1, 12]"},
		{"* * * JAN MONDAY /usr/bin/find", "Weekday value must be of type int"},
		{"* * * * *", "Crontab expression must be of 6 fields, Received: 5"},
		{"* * * *", "Crontab expression must be of 6 fields, Received: 4"},
		{"blah", "Crontab expression must be of 6 fields, Received: 1"},
		{"", "Crontab expression must be of 6 fields, Received: 0"},
		{"@weekly", "Crontab expression must be of 6 fields, Received: 5"},
		{"@fortnightly /usr/bin/find", "Crontab expression must be of 6 fields, Received: 2"},
		{"@fortnightly a b c d e", "Minute value must be of type int"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.expr, func(t *testing.T) {
			t.Parallel()
			sched, err := Parse(tt.expr, time.UTC)
			if err == nil {
				t.Fatalf("expected error %q, got schedule %s", tt.want, sched)
			}
			if sched != nil {
				t.Fatalf("expected nil schedule on error, got %s", sched)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if err.Error() != tt.want {
				t.Fatalf("expected error %q, got %q", tt.want, err.Error())
			}
		})
	}
}

func TestParseReportsFirstFailingField(t *testing.T) {
	t.Parallel()

	_, err := Parse("60 24 32 13 8 /usr/bin/find", time.UTC)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Field != "Minute" {
		t.Fatalf("expected Minute to fail first, got %q", verr.Field)
	}
}

func TestParseAttachesLocation(t *testing.T) {
	t.Parallel()

	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	sched, err := Parse("0 0 * * * /bin/true", berlin)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !strings.HasSuffix(sched.String(), "tz=Europe/Berlin command=/bin/true") {
		t.Fatalf("unexpected diagnostic string: %s", sched)
	}

	sched, err = Parse("0 0 * * * /bin/true", nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if sched.Location() != time.UTC {
		t.Fatalf("expected nil location to default to UTC, got %v", sched.Location())
	}
}

func TestDiagnosticStringRoundTrip(t *testing.T) {
	t.Parallel()

	sched, err := Parse("18-25 6-8,10-12 */3 JAN-DEC/2 SUN,TUE-fri /usr/bin/find", time.UTC)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	// Re-parse each rendered list as a comma separated field expression.
	for _, kind := range []FieldKind{Minute, Hour, MonthDay, Month, WeekDay} {
		f := sched.Field(kind)
		list := strings.ReplaceAll(strings.Trim(f.String(), "[]"), ", ", ",")
		again, err := ParseField(list, kind)
		if err != nil {
			t.Fatalf("re-parse %s %q: %v", kind.Name(), list, err)
		}
		if again.String() != f.String() {
			t.Fatalf("%s: expected %s after round trip, got %s", kind.Name(), f, again)
		}
	}
}

func TestParseDayMatch(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]DayMatch{
		"":       DayMatchBoth,
		"both":   DayMatchBoth,
		"AND":    DayMatchBoth,
		"either": DayMatchEither,
		" or ":   DayMatchEither,
	} {
		got, err := ParseDayMatch(in)
		if err != nil {
			t.Fatalf("ParseDayMatch(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseDayMatch(%q): expected %v, got %v", in, want, got)
		}
	}
	if _, err := ParseDayMatch("sometimes"); err == nil {
		t.Fatal("expected error for unknown day match")
	}
}
