// Released under an MIT license. See LICENSE.

// Package options parses the icfp command line.
package options

import (
	"os"
	"strconv"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"

	"github.com/michaelmacinnis/icfp/internal/common/fault"
	"github.com/michaelmacinnis/icfp/internal/engine/machine"
)

// Version is printed by icfp -v.
const Version = "icfp 1.0.0"

//nolint:gochecknoglobals
var (
	command     string
	decode      string
	encode      string
	interactive bool
	limit       int64 = machine.DefaultLimit
	quote       bool
	script      string
	stdin       bool
	trace       bool
	usage       = `icfp

Usage:
  icfp [-t] [-l LIMIT] [-q] FILE
  icfp [-t] [-l LIMIT] [-q] -c TERM
  icfp -e TEXT
  icfp -d TOKEN
  icfp [-i] [-t] [-l LIMIT] [-q] [-s]
  icfp -h
  icfp -v

Arguments:
  FILE       Path to a file holding a single term.

Options:
  -c, --command=TERM   Evaluate the specified term.
  -d, --decode=TOKEN   Print the text of a string or integer token.
  -e, --encode=TEXT    Print the string token for TEXT. Escapes are expanded.
  -i, --interactive    Disable interactive mode.
  -l, --limit=LIMIT    Maximum number of beta reductions [default: 10000000].
  -q, --quote          Print strings as escaped, quoted text.
  -s, --stdin          Read a term from stdin.
  -t, --trace          Print each intermediate term and statistics to stderr.
  -h, --help           Display this help.
  -v, --version        Print icfp version.

If icfp's stdin is a TTY, and icfp was invoked with no non-option operands
or icfp was explicitly directed to read from stdin, terms are read
interactively, one at a time. Otherwise, stdin is read as a single term.
`
)

// Command returns the term given with -c, if any.
func Command() string {
	return command
}

// Decode returns the token given with -d, if any.
func Decode() string {
	return decode
}

// Encode returns the text given with -e, if any.
func Encode() string {
	return encode
}

// Interactive returns true if terms should be read with a line editor.
func Interactive() bool {
	return interactive
}

// Limit returns the maximum number of beta reductions per evaluation.
func Limit() int64 {
	return limit
}

// Parse parses the process's command line.
// It exits after printing help or the version.
func Parse() error {
	p := &docopt.Parser{HelpHandler: docopt.PrintHelpAndExit}

	return parse(p, os.Args[1:], isatty.IsTerminal(os.Stdin.Fd()))
}

// Quote returns true if strings should be printed quoted.
func Quote() bool {
	return quote
}

// Script returns the path given as FILE, if any.
func Script() string {
	return script
}

// Stdin returns true if a term should be read from stdin.
func Stdin() bool {
	return stdin
}

// Trace returns true if intermediate terms should be printed.
func Trace() bool {
	return trace
}

func parse(p *docopt.Parser, argv []string, tty bool) error {
	opts, err := p.ParseArgs(usage, argv, Version)
	if err != nil {
		return err
	}

	command, _ = opts.String("--command")
	decode, _ = opts.String("--decode")
	encode, _ = opts.String("--encode")
	script, _ = opts.String("FILE")
	quote, _ = opts.Bool("--quote")
	stdin, _ = opts.Bool("--stdin")
	trace, _ = opts.Bool("--trace")

	limit = machine.DefaultLimit

	if s, _ := opts.String("--limit"); s != "" {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil || n < 0 {
			return fault.New(fault.Unknown, "invalid limit %q", s)
		}

		limit = n
	}

	interactive = false
	if script == "" && command == "" && decode == "" && encode == "" && tty {
		interactive = true
	}

	invertInteractive, _ := opts.Bool("--interactive")
	interactive = interactive != invertInteractive

	if !interactive && script == "" && command == "" && decode == "" && encode == "" {
		stdin = true
	}

	return nil
}
