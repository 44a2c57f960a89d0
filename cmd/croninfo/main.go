package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/patrickspencer/croninfo/internal/render"
	"github.com/patrickspencer/croninfo/internal/tz"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "0.1.0"

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// env is the process surroundings a command runs in.
type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	now    func() time.Time
	zones  *tz.Provider
	width  int
}

func hostEnv() *env {
	width := render.DefaultWidth
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 && w < width {
			width = w
		}
	}
	return &env{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		now:    time.Now,
		zones:  tz.Host(),
		width:  width,
	}
}

func main() {
	os.Exit(run(os.Args[1:], hostEnv()))
}

func run(args []string, e *env) int {
	fs := pflag.NewFlagSet("croninfo", pflag.ContinueOnError)
	fs.SetOutput(e.stderr)
	fs.SetInterspersed(false)
	showVersion := fs.Bool("version", false, "print the version and exit")
	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printUsage(e.stdout, fs)
			return exitOK
		}
		fmt.Fprintln(e.stderr, err)
		printUsage(e.stderr, fs)
		return exitUsage
	}
	if *showVersion {
		fmt.Fprintf(e.stdout, "Version: %s\n", version)
		return exitOK
	}

	rest := fs.Args()
	if len(rest) == 0 {
		printUsage(e.stderr, fs)
		return exitUsage
	}

	switch rest[0] {
	case "parse":
		return runParse(rest[1:], e)
	case "file":
		return runFile(rest[1:], e)
	default:
		fmt.Fprintf(e.stderr, "unknown command: %s\n", rest[0])
		printUsage(e.stderr, fs)
		return exitUsage
	}
}

func printUsage(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprintf(w, `usage: croninfo [--version] <command> [flags]

Commands:
  parse <expression...>   show the values and next run of one cron expression
  file <path|->           show every schedule line of a crontab file

Flags:
%s`, fs.FlagUsages())
}
