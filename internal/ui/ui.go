// Released under an MIT license. See LICENSE.

// Package ui provides an interactive command-line interface for icfp.
package ui

import (
	"errors"
	"strings"

	"github.com/peterh/liner"

	"github.com/michaelmacinnis/icfp/internal/common/interface/term"
	"github.com/michaelmacinnis/icfp/internal/reader"
	"github.com/michaelmacinnis/icfp/internal/system/history"
)

const (
	continuation = "  "
	prompt       = "> "
)

// Evaluator is the interface for things that want to evaluate parsed terms.
type Evaluator interface {
	Evaluate(t term.I) (term.I, error)
}

// Run reads terms with a line editor until the user exits. Each result,
// or error, is passed to show.
func Run(e Evaluator, show func(v term.I, err error)) error {
	cooked, err := liner.TerminalMode()
	if err != nil {
		return err
	}

	cli := liner.NewLiner()
	defer cli.Close()

	uncooked, err := liner.TerminalMode()
	if err != nil {
		return err
	}

	cli.SetCtrlCAborts(true)
	cli.SetCompleter(complete)

	_ = history.Load(cli.ReadHistory)

	s := newSession(e, show)

	for {
		if err := uncooked.ApplyMode(); err != nil {
			return err
		}

		line, err := cli.Prompt(s.prompt())

		if merr := cooked.ApplyMode(); merr != nil {
			return merr
		}

		switch {
		case err == nil:
			cli.AppendHistory(line)
		case errors.Is(err, liner.ErrPromptAborted):
			s.reset()

			continue
		default:
			return history.Save(cli.WriteHistory)
		}

		if !s.line(line) {
			return history.Save(cli.WriteHistory)
		}
	}
}

func complete(line string) (cs []string) {
	for _, w := range exits() {
		if line != "" && strings.HasPrefix(w, line) {
			cs = append(cs, w)
		}
	}

	return cs
}

func exits() []string {
	return []string{"bye", "end", "stop"}
}

type session struct {
	e    Evaluator
	r    *reader.T
	show func(v term.I, err error)
}

func newSession(e Evaluator, show func(v term.I, err error)) *session {
	return &session{e: e, r: reader.New("icfp"), show: show}
}

// line handles one line of input. It returns false if the user asked to exit.
func (s *session) line(line string) bool {
	if !s.r.Pending() {
		w := strings.TrimSpace(line)
		for _, exit := range exits() {
			if w == exit {
				return false
			}
		}
	}

	terms, err := s.r.Scan(line + "\n")

	for _, t := range terms {
		s.show(s.e.Evaluate(t))
	}

	if err != nil {
		s.show(nil, err)
	}

	return true
}

func (s *session) prompt() string {
	if s.r.Pending() {
		return continuation
	}

	return prompt
}

func (s *session) reset() {
	s.r.Reset()
}
