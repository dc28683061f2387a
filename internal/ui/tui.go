// Package ui provides the optional terminal interface.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nibzard/todomenu/internal/menu"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	outputStyle = lipgloss.NewStyle().PaddingLeft(2)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

// TUIOption configures the TUI behavior.
type TUIOption func(*tuiConfig)

// tuiConfig holds TUI configuration.
type tuiConfig struct {
	altScreen bool
	input     io.Reader
	output    io.Writer
}

// WithAltScreen runs the program in the terminal's alternate screen.
func WithAltScreen(enabled bool) TUIOption {
	return func(c *tuiConfig) {
		c.altScreen = enabled
	}
}

// WithIO replaces stdin and stdout. The TTY check is skipped.
func WithIO(in io.Reader, out io.Writer) TUIOption {
	return func(c *tuiConfig) {
		c.input = in
		c.output = out
	}
}

// RunTUI runs the menu as a bubbletea program over h.
func RunTUI(ctx context.Context, h *menu.Handler, opts ...TUIOption) error {
	c := &tuiConfig{altScreen: true}
	for _, opt := range opts {
		opt(c)
	}

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if c.output == nil {
		if !IsTTY(os.Stdout) {
			return fmt.Errorf("tui requires a TTY")
		}
	} else {
		programOpts = append(programOpts, tea.WithInput(c.input), tea.WithOutput(c.output))
	}
	if c.altScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	_, err := tea.NewProgram(NewModel(h), programOpts...).Run()
	return err
}

type mode int

const (
	modeMenu mode = iota
	modePrompt
)

// Model is the bubbletea model for the menu. It walks the same states as
// the console loop: show the menu, take a choice, ask each prompt of the
// chosen action, then execute it.
type Model struct {
	handler  *menu.Handler
	mode     mode
	action   menu.Action
	answers  []string
	input    []rune
	output   string
	invalid  bool
	quitting bool
}

// NewModel creates a model over h.
func NewModel(h *menu.Handler) *Model {
	return &Model{handler: h}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEnter:
		return m, m.submit()
	case tea.KeyEsc:
		m.reset()
		return m, nil
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeySpace:
		m.input = append(m.input, ' ')
	case tea.KeyRunes:
		m.input = append(m.input, key.Runes...)
	}
	return m, nil
}

func (m *Model) submit() tea.Cmd {
	value := string(m.input)
	m.input = nil

	if m.mode == modeMenu {
		action, ok := menu.Lookup(value)
		if !ok {
			m.output = menu.InvalidOptionMessage
			m.invalid = true
			return nil
		}
		m.action = action
		m.answers = nil
		if len(action.Prompts) == 0 {
			return m.execute()
		}
		m.mode = modePrompt
		return nil
	}

	m.answers = append(m.answers, value)
	if len(m.answers) < len(m.action.Prompts) {
		return nil
	}
	return m.execute()
}

func (m *Model) execute() tea.Cmd {
	m.output = m.handler.Execute(m.action, m.answers)
	m.invalid = false
	exit := m.action.Exit
	m.reset()
	if exit {
		m.quitting = true
		return tea.Quit
	}
	return nil
}

// reset returns to the menu, discarding a half-entered action.
func (m *Model) reset() {
	m.mode = modeMenu
	m.action = menu.Action{}
	m.answers = nil
	m.input = nil
}

// Prompt returns the prompt currently awaiting input.
func (m *Model) Prompt() string {
	if m.mode == modePrompt {
		return m.action.Prompts[len(m.answers)]
	}
	return menu.ChoicePrompt
}

// Output returns the message produced by the last submitted input.
func (m *Model) Output() string {
	return m.output
}

func (m *Model) View() string {
	if m.quitting {
		if m.output == "" {
			return ""
		}
		return m.output + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("todomenu") + "\n")
	b.WriteString(strings.TrimPrefix(menu.Text(), "\n") + "\n\n")

	if m.output != "" {
		style := outputStyle
		if m.invalid {
			style = errorStyle
		}
		b.WriteString(style.Render(m.output) + "\n\n")
	}

	b.WriteString(m.Prompt() + string(m.input) + "█\n\n")
	b.WriteString(helpStyle.Render("enter: submit • esc: back to menu • ctrl+c: quit") + "\n")
	return b.String()
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
