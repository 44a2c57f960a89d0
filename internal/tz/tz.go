// Package tz resolves the time zone a schedule is evaluated in.
package tz

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	KindUTC   = "utc"
	KindLocal = "local"
)

// Kinds lists the accepted zone kinds in the order shown to users.
func Kinds() []string {
	return []string{KindLocal, KindUTC}
}

// Provider looks up the host's zone. The hooks default to the os package
// and exist so tests can fake the host.
type Provider struct {
	Getenv   func(string) string
	ReadFile func(string) ([]byte, error)
	Readlink func(string) (string, error)
	Load     func(string) (*time.Location, error)
}

// Host returns a Provider backed by the real environment.
func Host() *Provider {
	return &Provider{
		Getenv:   os.Getenv,
		ReadFile: os.ReadFile,
		Readlink: os.Readlink,
		Load:     time.LoadLocation,
	}
}

// Resolve returns the zone for kind. A non-empty name overrides detection
// for either kind.
func (p *Provider) Resolve(kind, name string) (*time.Location, error) {
	if name = strings.TrimSpace(name); name != "" {
		loc, err := p.Load(name)
		if err != nil {
			return nil, fmt.Errorf("load time zone %q: %w", name, err)
		}
		return loc, nil
	}
	switch kind {
	case KindUTC, "":
		return time.UTC, nil
	case KindLocal:
		return p.Local(), nil
	}
	return nil, fmt.Errorf("unknown time zone kind %q", kind)
}

// Local returns the host zone under its IANA name where one can be found,
// falling back to time.Local.
func (p *Provider) Local() *time.Location {
	name := p.LocalName()
	if name == "" {
		return time.Local
	}
	loc, err := p.Load(name)
	if err != nil {
		return time.Local
	}
	return loc
}

// LocalName detects the host zone name from $TZ, /etc/timezone and the
// /etc/localtime symlink, in that order. It returns "" when none applies.
func (p *Provider) LocalName() string {
	if v := strings.TrimPrefix(strings.TrimSpace(p.Getenv("TZ")), ":"); v != "" && !strings.HasPrefix(v, "/") {
		return v
	}
	if data, err := p.ReadFile("/etc/timezone"); err == nil {
		if v := strings.TrimSpace(string(data)); v != "" {
			return v
		}
	}
	if target, err := p.Readlink("/etc/localtime"); err == nil {
		if _, name, ok := strings.Cut(target, "zoneinfo/"); ok && name != "" {
			return name
		}
	}
	return ""
}

// Resolve is Host().Resolve.
func Resolve(kind, name string) (*time.Location, error) {
	return Host().Resolve(kind, name)
}
