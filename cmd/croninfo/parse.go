package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/patrickspencer/croninfo/internal/crontab"
	"github.com/patrickspencer/croninfo/internal/render"
)

func runParse(args []string, e *env) int {
	fs := pflag.NewFlagSet("parse", pflag.ContinueOnError)
	fs.SetOutput(e.stderr)
	fs.Usage = func() {}
	var flags commonFlags
	flags.register(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintf(e.stdout, "usage: croninfo parse <expression...> [flags]\n\n%s", fs.FlagUsages())
			return exitOK
		}
		fmt.Fprintln(e.stderr, err)
		return exitUsage
	}

	expr := strings.Join(fs.Args(), " ")
	if strings.TrimSpace(expr) == "" {
		fmt.Fprintln(e.stderr, "usage: croninfo parse <expression...> [flags]")
		return exitUsage
	}

	s, err := flags.resolve(fs, e)
	if err != nil {
		return exitCode(e, err)
	}

	sched, err := crontab.Parse(expr, s.loc, s.opts...)
	if err != nil {
		fmt.Fprintln(e.stderr, s.errOut.Error(err.Error()))
		return exitError
	}
	s.log.Printf("parsed %s", sched)

	now := e.now()
	next, err := sched.NextOccurrence(now)
	if err != nil {
		fmt.Fprintln(e.stderr, s.errOut.Error(err.Error()))
		return exitError
	}

	fmt.Fprintln(e.stdout, s.out.Box(render.Report{
		Expression: strings.Join(strings.Fields(expr), " "),
		Schedule:   sched,
		Next:       next,
		In:         crontab.Humanize(now, next),
	}))
	return exitOK
}
