package ews

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func updateXML(t *testing.T, u Update) string {
	t.Helper()
	n, err := u.node()
	require.NoError(t, err)
	s, err := n.XML()
	require.NoError(t, err)
	return s
}

func TestSetField(t *testing.T) {
	s := updateXML(t, SetField("task:DueDate", "2026-09-01T09:00:00Z"))

	assert.Contains(t, s, `<FieldURI xmlns="http://schemas.microsoft.com/exchange/services/2006/types" FieldURI="task:DueDate">`)
	assert.Contains(t, s, ">2026-09-01T09:00:00Z</DueDate>")
	// The new value travels inside a Task container for task: paths.
	assert.Contains(t, s, "<Task ")
}

func TestSetFieldItemContainer(t *testing.T) {
	tests := []struct {
		path PropertyPath
		want string
	}{
		{"item:Subject", "<Item "},
		{"task:DueDate", "<Task "},
		{"message:IsRead", "<Message "},
		{"contacts:JobTitle", "<Contact "},
		{"calendar:Location", "<CalendarItem "},
	}
	for _, tc := range tests {
		s := updateXML(t, SetField(tc.path, "x"))
		assert.Contains(t, s, tc.want, "path %v", tc.path)
	}
}

func TestAppendFieldAllowList(t *testing.T) {
	// item:Body is one of the few appendable properties.
	s := updateXML(t, AppendField("item:Body", " postscript"))
	assert.Contains(t, s, "AppendToItemField")

	// task:Subject is not.
	_, err := AppendField("task:Subject", "x").node()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not support appending")
}

func TestAppendRecipients(t *testing.T) {
	u := AppendRecipients("message:ToRecipients", Mailbox{Name: "Bob", EmailAddress: "bob@example.org"})
	s := updateXML(t, u)

	assert.Contains(t, s, "AppendToItemField")
	assert.Contains(t, s, `FieldURI="message:ToRecipients"`)
	assert.Contains(t, s, "<ToRecipients ")
	assert.Contains(t, s, ">bob@example.org</EmailAddress>")

	_, err := AppendRecipients("message:Sender", Mailbox{EmailAddress: "x@example.org"}).node()
	require.Error(t, err)
}

func TestDeleteField(t *testing.T) {
	s := updateXML(t, DeleteField("task:DueDate"))
	assert.Contains(t, s, "DeleteItemField")
	assert.NotContains(t, s, "<Task ")
}

func TestUpdateMalformedPath(t *testing.T) {
	for _, path := range []PropertyPath{"", "DueDate", "task:", ":DueDate", "folder:DisplayName"} {
		_, err := SetField(path, "x").node()
		require.Error(t, err, "path %q", path)
	}
}
