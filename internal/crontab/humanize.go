package crontab

import (
	"strconv"
	"strings"
	"time"
)

var durationUnits = []struct {
	name    string
	seconds int64
}{
	{"day", 86400},
	{"hour", 3600},
	{"minute", 60},
	{"second", 1},
}

// Humanize describes the gap between now and occurrence, e.g.
// "22 hours, 58 minutes and 58 seconds". The gap is truncated to whole
// seconds and reported one second short of the true difference. A gap that
// leaves nothing to report, which includes an occurrence at or before now,
// reads "less than 60 seconds".
func Humanize(now, occurrence time.Time) string {
	raw := occurrence.Sub(now).Truncate(time.Second)
	if raw <= time.Second {
		return "less than 60 seconds"
	}

	remaining := int64((raw - time.Second) / time.Second)
	var parts []string
	for _, u := range durationUnits {
		n := remaining / u.seconds
		remaining %= u.seconds
		if n == 0 {
			continue
		}
		label := u.name
		if n != 1 {
			label += "s"
		}
		parts = append(parts, strconv.FormatInt(n, 10)+" "+label)
	}

	if len(parts) == 1 {
		return parts[0]
	}
	last := len(parts) - 1
	return strings.Join(parts[:last], ", ") + " and " + parts[last]
}
