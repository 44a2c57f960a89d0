package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/patrickspencer/croninfo/internal/crontab"
	"github.com/patrickspencer/croninfo/internal/render"
)

func runFile(args []string, e *env) int {
	fs := pflag.NewFlagSet("file", pflag.ContinueOnError)
	fs.SetOutput(e.stderr)
	fs.Usage = func() {}
	var flags commonFlags
	flags.register(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintf(e.stdout, "usage: croninfo file <path|-> [flags]\n\n%s", fs.FlagUsages())
			return exitOK
		}
		fmt.Fprintln(e.stderr, err)
		return exitUsage
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(e.stderr, "usage: croninfo file <path|-> [flags]")
		return exitUsage
	}

	s, err := flags.resolve(fs, e)
	if err != nil {
		return exitCode(e, err)
	}

	path := fs.Arg(0)
	var r io.Reader = e.stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return exitCode(e, err)
		}
		defer f.Close()
		r = f
	}

	entries, err := crontab.ReadTable(r, s.loc, s.opts...)
	if err != nil {
		return exitCode(e, err)
	}
	s.log.Printf("read %d schedule line(s) from %s", len(entries), path)
	if len(entries) == 0 {
		fmt.Fprintln(e.stdout, "no schedule lines found")
		return exitOK
	}

	now := e.now()
	failed := 0
	for _, entry := range entries {
		if entry.Err != nil {
			failed++
			fmt.Fprintf(e.stderr, "line %d: %s\n", entry.Line, s.errOut.Error(entry.Err.Error()))
			continue
		}
		next, err := entry.Schedule.NextOccurrence(now)
		if err != nil {
			failed++
			fmt.Fprintf(e.stderr, "line %d: %s\n", entry.Line, s.errOut.Error(err.Error()))
			continue
		}
		fmt.Fprintln(e.stdout, s.out.Box(render.Report{
			Expression: entry.Text,
			Schedule:   entry.Schedule,
			Next:       next,
			In:         crontab.Humanize(now, next),
		}))
	}
	if failed > 0 {
		s.log.Printf("WARN: %d of %d line(s) failed", failed, len(entries))
		return exitError
	}
	return exitOK
}
