package crontab

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

// Entry is one schedule line of a crontab file.
type Entry struct {
	Line     int
	Text     string
	Schedule *Schedule // nil when Err is set
	Err      error
}

// ReadTable reads crontab text and parses each schedule line. Blank lines,
// comments and NAME=value environment lines are skipped. A line that fails
// validation is kept with its error; only read errors are returned.
func ReadTable(r io.Reader, loc *time.Location, opts ...Option) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || isEnvAssignment(line) {
			continue
		}
		sched, err := Parse(line, loc, opts...)
		entries = append(entries, Entry{
			Line:     lineNo,
			Text:     line,
			Schedule: sched,
			Err:      err,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading crontab: %w", err)
	}
	return entries, nil
}

func isEnvAssignment(line string) bool {
	name, _, ok := strings.Cut(line, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return false
	}
	for i, ch := range name {
		isLetter := ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch == '_'
		isDigit := ch >= '0' && ch <= '9'
		if isLetter || (isDigit && i > 0) {
			continue
		}
		return false
	}
	return true
}
