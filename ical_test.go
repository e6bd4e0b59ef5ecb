package ews

import (
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskICalendarRoundTrip(t *testing.T) {
	task := NewTask()
	task.SetSubject("Write poem")
	task.SetBody(BodyTypeText, "About ducks.")
	task.SetStatus(TaskStatusInProgress)
	due := time.Date(2026, time.September, 1, 9, 0, 0, 0, time.UTC)
	task.SetDueDate(due)
	task.SetStartDate(due.Add(-24 * time.Hour))

	cal, err := task.ICalendar("46bbf47a-1861-41a3-ae06-8d8268c6d41e")
	require.NoError(t, err)

	var todo *ical.Component
	for _, child := range cal.Children {
		if child.Name == ical.CompToDo {
			todo = child
		}
	}
	require.NotNil(t, todo)
	assert.Equal(t, "Write poem", todo.Props.Get(ical.PropSummary).Value)
	assert.Equal(t, "IN-PROCESS", todo.Props.Get(ical.PropStatus).Value)

	back, err := TaskFromICalendar(cal)
	require.NoError(t, err)
	assert.Equal(t, "Write poem", back.Subject())
	assert.Equal(t, "About ducks.", back.Body())
	assert.Equal(t, TaskStatusInProgress, back.Status())

	gotDue, err := back.DueDate()
	require.NoError(t, err)
	assert.True(t, gotDue.Equal(due))
}

func TestTaskFromICalendarWithoutTodo(t *testing.T) {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//xyz Corp//NONSGML PDA Calendar Version 1.0//EN")

	_, err := TaskFromICalendar(cal)
	require.Error(t, err)
}
