// Package menu implements the numbered task menu: the action table, the
// outcome messages, and the console loop that drives them.
package menu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/todomenu/internal/logging"
	"github.com/nibzard/todomenu/internal/todo"
)

// Menu choices.
const (
	ChoiceList     = "1"
	ChoiceAdd      = "2"
	ChoiceStatus   = "3"
	ChoiceDeadline = "4"
	ChoiceDelete   = "5"
	ChoiceExit     = "6"
)

// Prompts and messages shown to the user.
const (
	MenuTitle            = "===== Menu ====="
	ChoicePrompt         = "Please choose an option: "
	AddedMessage         = "Task added with success."
	InvalidOptionMessage = "Invalid option. Please select a valid option."
	GoodbyeMessage       = "Thank you for using our task management application. See you soon!"
)

// Action is one menu entry. Prompts are asked in order and their answers
// are passed to Handler.Execute.
type Action struct {
	Choice  string
	Label   string
	Prompts []string
	Exit    bool
}

var actions = []Action{
	{Choice: ChoiceList, Label: "Display tasks"},
	{
		Choice: ChoiceAdd,
		Label:  "Add task",
		Prompts: []string{
			"Add task title: ",
			"Add task content: ",
			"Add deadline (format YYYY-MM-DD): ",
		},
	},
	{
		Choice: ChoiceStatus,
		Label:  "Modify task status",
		Prompts: []string{
			"Enter the title of the task to be modified: ",
			"Enter the new status of the task (to do or done): ",
		},
	},
	{
		Choice: ChoiceDeadline,
		Label:  "Modify task deadline",
		Prompts: []string{
			"Enter the title of the task to be modified: ",
			"Fill the new deadline for this task (format YYYY-MM-DD): ",
		},
	},
	{
		Choice:  ChoiceDelete,
		Label:   "Delete task",
		Prompts: []string{"Enter the title of the task to be deleted: "},
	},
	{Choice: ChoiceExit, Label: "Exit", Exit: true},
}

// Actions returns the menu entries in display order.
func Actions() []Action {
	out := make([]Action, len(actions))
	copy(out, actions)
	return out
}

// Lookup returns the action for an exact choice string.
func Lookup(choice string) (Action, bool) {
	for _, a := range actions {
		if a.Choice == choice {
			return a, true
		}
	}
	return Action{}, false
}

// Text renders the menu block, starting with a blank line.
func Text() string {
	var b strings.Builder
	b.WriteString("\n" + MenuTitle)
	for _, a := range actions {
		fmt.Fprintf(&b, "\n%s. %s", a.Choice, a.Label)
	}
	return b.String()
}

// NotFoundMessage is reported when no task has the given title.
func NotFoundMessage(title string) string {
	return fmt.Sprintf("Can't find '%s' task.", title)
}

// DeletedMessage confirms a removal.
func DeletedMessage(title string) string {
	return fmt.Sprintf("Task '%s' deleted.", title)
}

// StatusUpdatedMessage confirms a status change.
func StatusUpdatedMessage(title, status string) string {
	return fmt.Sprintf("Task '%s' status updated: %s.", title, status)
}

// DeadlineUpdatedMessage confirms a deadline change.
func DeadlineUpdatedMessage(title, deadline string) string {
	return fmt.Sprintf("Task '%s' deadline updated: %s.", title, deadline)
}

// Handler applies menu actions to a task manager.
type Handler struct {
	manager       *todo.Manager
	defaultStatus todo.Status
	logger        *log.Logger
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithDefaultStatus sets the status given to added tasks.
func WithDefaultStatus(status string) HandlerOption {
	return func(h *Handler) {
		h.defaultStatus = todo.Status(status)
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *log.Logger) HandlerOption {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// NewHandler creates a handler over m.
func NewHandler(m *todo.Manager, opts ...HandlerOption) *Handler {
	h := &Handler{
		manager:       m,
		defaultStatus: todo.DefaultStatus,
		logger:        logging.Discard(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Manager returns the underlying task manager.
func (h *Handler) Manager() *todo.Manager {
	return h.manager
}

// Execute runs an action with the answers to its prompts and returns the
// message to show. Missing answers are treated as empty strings.
func (h *Handler) Execute(a Action, answers []string) string {
	arg := func(i int) string {
		if i < len(answers) {
			return answers[i]
		}
		return ""
	}

	switch a.Choice {
	case ChoiceList:
		h.logger.Debug("listing tasks", "count", h.manager.Len())
		return h.manager.Format()

	case ChoiceAdd:
		task := todo.NewTask(arg(0), arg(1), arg(2), todo.WithStatus(h.defaultStatus))
		h.manager.Add(task)
		h.logger.Debug("task added", "title", task.Title, "deadline", task.Deadline, "count", h.manager.Len())
		return AddedMessage

	case ChoiceStatus:
		title, status := arg(0), arg(1)
		if err := h.manager.UpdateStatus(title, todo.Status(status)); err != nil {
			return h.notFound(err, title)
		}
		h.logger.Debug("task status updated", "title", title, "status", status)
		return StatusUpdatedMessage(title, status)

	case ChoiceDeadline:
		title, deadline := arg(0), arg(1)
		if err := h.manager.UpdateDeadline(title, deadline); err != nil {
			return h.notFound(err, title)
		}
		h.logger.Debug("task deadline updated", "title", title, "deadline", deadline)
		return DeadlineUpdatedMessage(title, deadline)

	case ChoiceDelete:
		title := arg(0)
		if err := h.manager.Remove(title); err != nil {
			return h.notFound(err, title)
		}
		h.logger.Debug("task deleted", "title", title, "count", h.manager.Len())
		return DeletedMessage(title)

	case ChoiceExit:
		h.logger.Debug("exit requested", "count", h.manager.Len())
		return GoodbyeMessage
	}

	h.logger.Debug("invalid option", "choice", a.Choice)
	return InvalidOptionMessage
}

func (h *Handler) notFound(err error, title string) string {
	if !errors.Is(err, todo.ErrTaskNotFound) {
		h.logger.Error("unexpected manager error", "title", title, "err", err)
	} else {
		h.logger.Debug("task not found", "title", title)
	}
	return NotFoundMessage(title)
}
