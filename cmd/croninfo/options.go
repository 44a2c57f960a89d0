package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/patrickspencer/croninfo/internal/config"
	"github.com/patrickspencer/croninfo/internal/crontab"
	"github.com/patrickspencer/croninfo/internal/render"
	"github.com/patrickspencer/croninfo/internal/tz"
)

// commonFlags are accepted by every command.
type commonFlags struct {
	configPath   string
	tzType       string
	dayOr        bool
	horizonYears int
	color        string
	verbose      bool
}

func (f *commonFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.configPath, "config", "", "path to config file (default ~/.config/croninfo/config.yaml)")
	fs.StringVar(&f.tzType, "tz-type", tz.KindUTC, "time zone to evaluate in: "+strings.Join(tz.Kinds(), ", "))
	fs.BoolVar(&f.dayOr, "day-or", false, "match a day when either restricted day field matches")
	fs.IntVar(&f.horizonYears, "horizon-years", crontab.DefaultHorizonYears, "how far ahead to search")
	fs.StringVar(&f.color, "color", "auto", "colour output: auto, always, never")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log diagnostics to stderr")
}

// usageError is a bad flag or argument; it maps to exit status 2.
type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

// settings is the merged result of config file and flags.
type settings struct {
	loc    *time.Location
	opts   []crontab.Option
	out    *render.Renderer
	errOut *render.Renderer
	log    *log.Logger
}

func (f *commonFlags) resolve(fs *pflag.FlagSet, e *env) (*settings, error) {
	if fs.Changed("tz-type") && !isKind(f.tzType) {
		return nil, &usageError{msg: fmt.Sprintf("Invalid value for '--tz-type': '%s' is not one of '%s'",
			f.tzType, strings.Join(tz.Kinds(), "', '"))}
	}

	cfg, err := config.LoadConfig(f.configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	zoneName := cfg.Timezone
	if fs.Changed("tz-type") {
		cfg.TZType = f.tzType
		zoneName = ""
	}
	if fs.Changed("day-or") {
		cfg.DayMatch = crontab.DayMatchBoth.String()
		if f.dayOr {
			cfg.DayMatch = crontab.DayMatchEither.String()
		}
	}
	if fs.Changed("horizon-years") {
		cfg.HorizonYears = f.horizonYears
	}
	if fs.Changed("color") {
		cfg.Color = f.color
	}
	if err := cfg.Validate(); err != nil {
		return nil, &usageError{msg: err.Error()}
	}

	logger := log.New(io.Discard, "", 0)
	if f.verbose || cfg.LogLevel == "debug" {
		logger = log.New(e.stderr, "croninfo: ", log.LstdFlags)
	}

	loc, err := e.zones.Resolve(cfg.TZType, zoneName)
	if err != nil {
		return nil, err
	}
	opts, err := cfg.ScheduleOptions()
	if err != nil {
		return nil, err
	}
	logger.Printf("tz_type=%s zone=%s day_match=%s horizon_years=%d", cfg.TZType, loc, cfg.DayMatch, cfg.HorizonYears)

	return &settings{
		loc:    loc,
		opts:   opts,
		out:    render.New(e.stdout, e.width, cfg.Color),
		errOut: render.New(e.stderr, e.width, cfg.Color),
		log:    logger,
	}, nil
}

func isKind(kind string) bool {
	for _, k := range tz.Kinds() {
		if k == kind {
			return true
		}
	}
	return false
}

// exitCode maps a setup error to a process status, printing it first.
func exitCode(e *env, err error) int {
	var uerr *usageError
	if errors.As(err, &uerr) {
		fmt.Fprintln(e.stderr, uerr.msg)
		return exitUsage
	}
	fmt.Fprintf(e.stderr, "Error: %v\n", err)
	return exitError
}
