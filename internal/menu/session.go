package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/nibzard/todomenu/internal/utils"
)

// Session runs the console menu loop over a line-oriented input.
type Session struct {
	handler *Handler
	lines   *lineReader
	out     io.Writer
}

// NewSession creates a session reading answers from in and writing the menu,
// prompts and outcomes to out.
func NewSession(h *Handler, in io.Reader, out io.Writer) *Session {
	return &Session{
		handler: h,
		lines:   newLineReader(in),
		out:     out,
	}
}

// Run shows the menu and dispatches choices until the exit choice is made.
// It also returns, with a nil error, when the input is exhausted, and with
// the context error when ctx is cancelled while waiting for input.
func (s *Session) Run(ctx context.Context) error {
	logger := s.handler.logger
	logger.Debug("session started")

	for {
		fmt.Fprintln(s.out, Text())

		choice, err := s.ask(ctx, ChoicePrompt)
		if err != nil {
			return s.stop(err)
		}

		action, ok := Lookup(choice)
		if !ok {
			logger.Debug("invalid option", "choice", choice)
			fmt.Fprintln(s.out, InvalidOptionMessage)
			continue
		}

		answers := make([]string, 0, len(action.Prompts))
		for _, prompt := range action.Prompts {
			answer, err := s.ask(ctx, prompt)
			if err != nil {
				return s.stop(err)
			}
			answers = append(answers, answer)
		}

		fmt.Fprintln(s.out, s.handler.Execute(action, answers))
		if action.Exit {
			logger.Debug("session finished")
			return nil
		}
	}
}

func (s *Session) ask(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	return s.lines.next(ctx)
}

func (s *Session) stop(err error) error {
	if errors.Is(err, io.EOF) {
		// Leave the terminal on a fresh line after the dangling prompt.
		fmt.Fprintln(s.out)
		s.handler.logger.Debug("input closed")
		return nil
	}
	return fmt.Errorf("reading input: %w", err)
}

type lineResult struct {
	line string
	err  error
}

// lineReader reads one line at a time in a background goroutine so that a
// blocked read can be abandoned when the context is cancelled. At most one
// read is outstanding.
type lineReader struct {
	r       *bufio.Reader
	pending chan lineResult
	eof     bool
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

func (lr *lineReader) next(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if lr.eof {
		return "", io.EOF
	}

	if lr.pending == nil {
		ch := make(chan lineResult, 1)
		lr.pending = ch
		go func() {
			line, err := lr.r.ReadString('\n')
			ch <- lineResult{line: line, err: err}
		}()
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-lr.pending:
		lr.pending = nil
		if res.err != nil {
			if !errors.Is(res.err, io.EOF) {
				return "", res.err
			}
			lr.eof = true
			// A final line without a terminator still counts.
			if res.line == "" {
				return "", io.EOF
			}
		}
		return utils.TrimLineEnding(res.line), nil
	}
}
