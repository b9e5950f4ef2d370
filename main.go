// Released under an MIT license. See LICENSE.

/*
Icfp evaluates programs written in the ICFP term language.

A program is a single term written as whitespace-separated tokens:

	icfp -c 'B$ B$ L# L$ v# B. SB%,,/ S}Q/2,$_ IK'

prints "Hello World!". Programs may also be read from a file or stdin,
or typed one term at a time at an interactive prompt.

For more detail, run: icfp -h
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/michaelmacinnis/adapted"

	"github.com/michaelmacinnis/icfp/internal/common/interface/literal"
	"github.com/michaelmacinnis/icfp/internal/common/interface/term"
	"github.com/michaelmacinnis/icfp/internal/engine"
	"github.com/michaelmacinnis/icfp/internal/reader/parser"
	"github.com/michaelmacinnis/icfp/internal/system/options"
	"github.com/michaelmacinnis/icfp/internal/system/terminal"
	"github.com/michaelmacinnis/icfp/internal/ui"
	"github.com/michaelmacinnis/icfp/pkg/icfp"
)

type config struct {
	limit int64
	quote bool
	trace bool
	width int
}

func main() {
	err := options.Parse()
	if err == nil {
		err = run(os.Stdin, os.Stdout, os.Stderr)
	}

	if err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

func run(stdin io.Reader, stdout, stderr io.Writer) error {
	c := config{
		limit: options.Limit(),
		quote: options.Quote(),
		trace: options.Trace(),
		width: terminal.Width(int(os.Stderr.Fd())),
	}

	switch {
	case options.Encode() != "":
		return encode(stdout, options.Encode())

	case options.Decode() != "":
		return decode(stdout, options.Decode())

	case options.Interactive():
		e := c.engine(stderr)

		return ui.Run(e, func(v term.I, err error) {
			if err != nil {
				fmt.Fprintln(stderr, err)

				return
			}

			fmt.Fprintln(stdout, c.render(v))
			c.stats(stderr, e.Stats())
		})

	case options.Command() != "":
		return c.evaluate(stdout, stderr, "command", options.Command())

	case options.Script() != "":
		path := options.Script()

		b, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		return c.evaluate(stdout, stderr, path, string(b))
	}

	b, err := io.ReadAll(stdin)
	if err != nil {
		return err
	}

	return c.evaluate(stdout, stderr, "stdin", string(b))
}

func decode(stdout io.Writer, token string) error {
	t, err := icfp.Decode(token)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdout, icfp.Render(t))

	return err
}

func encode(stdout io.Writer, text string) error {
	s, err := adapted.ActualBytes(text)
	if err != nil {
		return err
	}

	m, err := icfp.Message(s)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdout, m)

	return err
}

func (c config) engine(stderr io.Writer) *engine.T {
	opts := []engine.Option{engine.Limit(c.limit)}

	if c.trace {
		opts = append(opts, engine.Trace(func(steps int64, t term.I) {
			line := fmt.Sprintf("%d: %s", steps, literal.String(t))
			fmt.Fprintln(stderr, terminal.Clip(line, c.width))
		}))
	}

	return engine.New(opts...)
}

func (c config) evaluate(stdout, stderr io.Writer, name, source string) error {
	t, err := parser.String(name, source)
	if err != nil {
		return err
	}

	e := c.engine(stderr)

	v, err := e.Evaluate(t)

	c.stats(stderr, e.Stats())

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdout, c.render(v))

	return err
}

func (c config) render(v term.I) string {
	if c.quote {
		return icfp.Quote(v)
	}

	return icfp.Render(v)
}

func (c config) stats(stderr io.Writer, s engine.Stats) {
	if c.trace {
		fmt.Fprintf(stderr, "beta %d steps %d\n", s.Beta, s.Steps)
	}
}
