// Package todo holds the in-memory task list.
//
// A Manager keeps tasks in insertion order. Every lookup is a linear scan by
// title and affects only the first match, so duplicate titles are allowed and
// the earliest one always wins:
//
//	m := todo.NewManager()
//	m.Add(todo.NewTask("Buy milk", "2 liters", "2024-01-01"))
//	m.Add(todo.NewTask("Buy milk", "oat", "2024-01-02"))
//	_ = m.UpdateStatus("Buy milk", "done") // changes the "2 liters" task only
//
// # Fields
//
// Deadline and status are free text. The menu suggests "YYYY-MM-DD" for the
// deadline and "to do" or "done" for the status, but nothing is parsed or
// checked.
//
// # Rendering
//
// Task.String renders four lines:
//
//	Title: Buy milk
//	Content: 2 liters
//	Deadline: 2024-01-01
//	Status: To do
//
// Manager.Format prefixes each rendering with "Task <n>:" where n is the
// 1-based position in the current order.
package todo
