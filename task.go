package ews

import (
	"strconv"
	"time"

	"github.com/ewsclient/go-ews/internal"
)

// TaskStatus is the progress state of a task.
type TaskStatus string

const (
	TaskStatusNotStarted      TaskStatus = "NotStarted"
	TaskStatusInProgress      TaskStatus = "InProgress"
	TaskStatusCompleted       TaskStatus = "Completed"
	TaskStatusWaitingOnOthers TaskStatus = "WaitingOnOthers"
	TaskStatusDeferred        TaskStatus = "Deferred"
)

// Task is a to-do item.
type Task struct {
	Item
}

// NewTask returns an empty task, ready to be populated and created.
func NewTask() *Task {
	return &Task{newItem("Task")}
}

func taskFromNode(n *internal.Node) (*Task, error) {
	it, err := itemFromNode(n)
	if err != nil {
		return nil, err
	}
	return &Task{it}, nil
}

func (t *Task) Subject() string {
	return t.GetProperty("Subject")
}

func (t *Task) SetSubject(s string) {
	t.SetProperty("Subject", s)
}

// Owner is set by the server and cannot be written.
func (t *Task) Owner() string {
	return t.GetProperty("Owner")
}

func (t *Task) StartDate() (time.Time, error) {
	return t.timeProperty("StartDate")
}

func (t *Task) SetStartDate(d time.Time) {
	t.setTimeProperty("StartDate", d)
}

func (t *Task) DueDate() (time.Time, error) {
	return t.timeProperty("DueDate")
}

func (t *Task) SetDueDate(d time.Time) {
	t.setTimeProperty("DueDate", d)
}

func (t *Task) CompleteDate() (time.Time, error) {
	return t.timeProperty("CompleteDate")
}

// ReminderEnabled reports whether a reminder is set for the task.
func (t *Task) ReminderEnabled() bool {
	return t.boolProperty("ReminderIsSet")
}

func (t *Task) SetReminderEnabled(v bool) {
	t.setBoolProperty("ReminderIsSet", v)
}

func (t *Task) ReminderDueBy() (time.Time, error) {
	return t.timeProperty("ReminderDueBy")
}

func (t *Task) SetReminderDueBy(d time.Time) {
	t.setTimeProperty("ReminderDueBy", d)
}

// PercentComplete returns the completion percentage, 0 to 100. Absent or
// unparseable values read as 0.
func (t *Task) PercentComplete() float64 {
	v, err := strconv.ParseFloat(t.GetProperty("PercentComplete"), 64)
	if err != nil {
		return 0
	}
	return v
}

func (t *Task) SetPercentComplete(v float64) {
	t.SetProperty("PercentComplete", strconv.FormatFloat(v, 'f', -1, 64))
}

func (t *Task) Status() TaskStatus {
	return TaskStatus(t.GetProperty("Status"))
}

func (t *Task) SetStatus(s TaskStatus) {
	t.SetProperty("Status", string(s))
}

// IsComplete is derived by the server from the status; it cannot be written.
func (t *Task) IsComplete() bool {
	return t.boolProperty("IsComplete")
}
