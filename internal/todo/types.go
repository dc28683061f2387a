// Package todo holds the in-memory task list.
package todo

import (
	"errors"
	"fmt"
	"strings"
)

// Status is a free-form task status.
type Status string

const (
	// DefaultStatus is assigned when a task is created without one.
	DefaultStatus Status = "To do"
	StatusToDo    Status = "to do"
	StatusDone    Status = "done"
)

// EmptyListMessage is what Format returns for a manager with no tasks.
const EmptyListMessage = "No saved task."

// ErrTaskNotFound is returned when no task has the requested title.
var ErrTaskNotFound = errors.New("task not found")

// Task represents a single to-do item.
type Task struct {
	Title    string
	Content  string
	Deadline string // YYYY-MM-DD by convention, not parsed
	Status   Status
}

// TaskOption configures a new task.
type TaskOption func(*Task)

// WithStatus sets the initial status of a task.
func WithStatus(status Status) TaskOption {
	return func(t *Task) {
		t.Status = status
	}
}

// NewTask creates a task. The status defaults to DefaultStatus.
func NewTask(title, content, deadline string, opts ...TaskOption) Task {
	t := Task{
		Title:    title,
		Content:  content,
		Deadline: deadline,
		Status:   DefaultStatus,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// String renders the task as four "Field: value" lines.
func (t Task) String() string {
	return fmt.Sprintf("Title: %s\nContent: %s\nDeadline: %s\nStatus: %s",
		t.Title, t.Content, t.Deadline, t.Status)
}

// Manager owns an ordered list of tasks.
//
// Manager is not safe for concurrent use.
type Manager struct {
	tasks []Task
}

// NewManager returns an empty manager.
func NewManager() *Manager {
	return &Manager{}
}

// Add appends a task to the end of the list.
func (m *Manager) Add(task Task) {
	m.tasks = append(m.tasks, task)
}

// Len returns the number of tasks.
func (m *Manager) Len() int {
	return len(m.tasks)
}

// Tasks returns a copy of the tasks in list order.
func (m *Manager) Tasks() []Task {
	out := make([]Task, len(m.tasks))
	copy(out, m.tasks)
	return out
}

// Find returns the first task with the given title.
func (m *Manager) Find(title string) (Task, bool) {
	i := m.index(title)
	if i < 0 {
		return Task{}, false
	}
	return m.tasks[i], true
}

// Remove deletes the first task with the given title.
func (m *Manager) Remove(title string) error {
	i := m.index(title)
	if i < 0 {
		return notFound(title)
	}
	m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
	return nil
}

// Update applies fn to the first task with the given title, in place.
func (m *Manager) Update(title string, fn func(*Task)) error {
	i := m.index(title)
	if i < 0 {
		return notFound(title)
	}
	fn(&m.tasks[i])
	return nil
}

// UpdateStatus sets the status of the first task with the given title.
func (m *Manager) UpdateStatus(title string, status Status) error {
	return m.Update(title, func(t *Task) {
		t.Status = status
	})
}

// UpdateDeadline sets the deadline of the first task with the given title.
func (m *Manager) UpdateDeadline(title, deadline string) error {
	return m.Update(title, func(t *Task) {
		t.Deadline = deadline
	})
}

// Format renders the whole list. Each task is preceded by "Task <n>:" and
// entries are separated by a blank line.
func (m *Manager) Format() string {
	if len(m.tasks) == 0 {
		return EmptyListMessage
	}
	var b strings.Builder
	for i, task := range m.tasks {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Task %d:\n%s\n", i+1, task)
	}
	return b.String()
}

func (m *Manager) index(title string) int {
	for i := range m.tasks {
		if m.tasks[i].Title == title {
			return i
		}
	}
	return -1
}

func notFound(title string) error {
	return fmt.Errorf("%w: %q", ErrTaskNotFound, title)
}
