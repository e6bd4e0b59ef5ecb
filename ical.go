package ews

import (
	"fmt"
	"time"

	"github.com/emersion/go-ical"
)

// taskStatusToICal maps a task status to an iCalendar VTODO STATUS value.
// WaitingOnOthers and Deferred have no VTODO counterpart and map to
// NEEDS-ACTION.
func taskStatusToICal(s TaskStatus) string {
	switch s {
	case TaskStatusInProgress:
		return "IN-PROCESS"
	case TaskStatusCompleted:
		return "COMPLETED"
	}
	return "NEEDS-ACTION"
}

func taskStatusFromICal(s string) TaskStatus {
	switch s {
	case "IN-PROCESS":
		return TaskStatusInProgress
	case "COMPLETED":
		return TaskStatusCompleted
	}
	return TaskStatusNotStarted
}

// ICalendar renders the task as a calendar holding a single VTODO component,
// for exchange with CalDAV stores and other calendaring software.
func (t *Task) ICalendar(uid string) (*ical.Calendar, error) {
	todo := ical.NewComponent(ical.CompToDo)
	todo.Props.SetText(ical.PropUID, uid)
	todo.Props.SetDateTime(ical.PropDateTimeStamp, time.Now().UTC())
	todo.Props.SetText(ical.PropSummary, t.Subject())
	todo.Props.SetText(ical.PropStatus, taskStatusToICal(t.Status()))
	if body := t.Body(); body != "" && t.BodyType() == BodyTypeText {
		todo.Props.SetText(ical.PropDescription, body)
	}

	if start, err := t.StartDate(); err != nil {
		return nil, err
	} else if !start.IsZero() {
		todo.Props.SetDateTime(ical.PropDateTimeStart, start)
	}
	if due, err := t.DueDate(); err != nil {
		return nil, err
	} else if !due.IsZero() {
		todo.Props.SetDateTime(ical.PropDue, due)
	}
	if done, err := t.CompleteDate(); err != nil {
		return nil, err
	} else if !done.IsZero() {
		todo.Props.SetDateTime(ical.PropCompleted, done)
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//go-ews//EN")
	cal.Children = append(cal.Children, todo)
	return cal, nil
}

// TaskFromICalendar builds a task from the first VTODO component of cal.
func TaskFromICalendar(cal *ical.Calendar) (*Task, error) {
	var todo *ical.Component
	for _, child := range cal.Children {
		if child.Name == ical.CompToDo {
			todo = child
			break
		}
	}
	if todo == nil {
		return nil, fmt.Errorf("ews: calendar has no VTODO component")
	}

	task := NewTask()
	if prop := todo.Props.Get(ical.PropSummary); prop != nil {
		task.SetSubject(prop.Value)
	}
	if prop := todo.Props.Get(ical.PropDescription); prop != nil {
		task.SetBody(BodyTypeText, prop.Value)
	}
	if prop := todo.Props.Get(ical.PropStatus); prop != nil {
		task.SetStatus(taskStatusFromICal(prop.Value))
	}

	if prop := todo.Props.Get(ical.PropDateTimeStart); prop != nil {
		start, err := prop.DateTime(time.UTC)
		if err != nil {
			return nil, err
		}
		task.SetStartDate(start)
	}
	if prop := todo.Props.Get(ical.PropDue); prop != nil {
		due, err := prop.DateTime(time.UTC)
		if err != nil {
			return nil, err
		}
		task.SetDueDate(due)
	}
	return task, nil
}
