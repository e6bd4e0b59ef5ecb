package ews

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/ewsclient/go-ews/internal"
)

// PropertyPath is a colon-qualified unindexed field URI, for example
// "task:DueDate" or "message:ToRecipients". The full list is defined by
// MS-OXWSCDATA section 2.2.5.6.
type PropertyPath string

// fieldItemNames maps a path prefix to the item element that carries the new
// value in a SetItemField or AppendToItemField block.
var fieldItemNames = map[string]string{
	"item":     "Item",
	"task":     "Task",
	"message":  "Message",
	"contacts": "Contact",
	"calendar": "CalendarItem",
}

func (p PropertyPath) split() (prefix, local string, err error) {
	prefix, local, ok := strings.Cut(string(p), ":")
	if !ok || prefix == "" || local == "" {
		return "", "", fmt.Errorf("ews: malformed property path %q", p)
	}
	if _, ok := fieldItemNames[prefix]; !ok {
		return "", "", fmt.Errorf("ews: unsupported property path prefix %q", prefix)
	}
	return prefix, local, nil
}

// appendablePaths is the closed set of properties AppendToItemField may
// target. Appending to anything else is rejected client-side; the server
// would fail the request anyway.
var appendablePaths = map[PropertyPath]bool{
	"calendar:RequiredAttendees": true,
	"calendar:OptionalAttendees": true,
	"calendar:Resources":         true,
	"message:ToRecipients":       true,
	"message:CcRecipients":       true,
	"message:BccRecipients":      true,
	"message:ReplyTo":            true,
	"item:Body":                  true,
}

type updateOp int

const (
	opSetField updateOp = iota
	opAppendField
	opDeleteField
)

// Update is a single field change within an UpdateItem call. Build values
// with SetField, AppendField, AppendRecipients or DeleteField.
type Update struct {
	op    updateOp
	path  PropertyPath
	value string
	nodes []internal.Node
}

// SetField replaces the value of the property at path.
func SetField(path PropertyPath, value string) Update {
	return Update{op: opSetField, path: path, value: value}
}

// AppendField appends text to the property at path. Only a fixed set of
// properties supports appending.
func AppendField(path PropertyPath, value string) Update {
	return Update{op: opAppendField, path: path, value: value}
}

// AppendRecipients appends mailboxes to the recipient list at path, for
// example "message:ToRecipients".
func AppendRecipients(path PropertyPath, mbs ...Mailbox) Update {
	nodes := make([]internal.Node, len(mbs))
	for i, mb := range mbs {
		nodes[i] = mailboxNode(mb)
	}
	return Update{op: opAppendField, path: path, nodes: nodes}
}

// DeleteField removes the property at path from the item.
func DeleteField(path PropertyPath) Update {
	return Update{op: opDeleteField, path: path}
}

// node renders the update as a SetItemField, AppendToItemField or
// DeleteItemField element.
func (u Update) node() (internal.Node, error) {
	prefix, local, err := u.path.split()
	if err != nil {
		return internal.Node{}, err
	}

	var opName string
	switch u.op {
	case opSetField:
		opName = "SetItemField"
	case opAppendField:
		opName = "AppendToItemField"
		if !appendablePaths[u.path] {
			return internal.Node{}, fmt.Errorf("ews: property %q does not support appending", u.path)
		}
	case opDeleteField:
		opName = "DeleteItemField"
	}

	n := internal.NewElement(typesName(opName))
	fieldURI := internal.NewElement(typesName("FieldURI"))
	fieldURI.SetAttr("FieldURI", string(u.path))
	n.Append(fieldURI)

	if u.op == opDeleteField {
		return n, nil
	}

	item := internal.NewElement(typesName(fieldItemNames[prefix]))
	if u.nodes != nil {
		prop := internal.NewElement(typesName(local))
		for _, child := range u.nodes {
			prop.Append(child)
		}
		item.Append(prop)
	} else {
		item.Append(internal.NewTextElement(typesName(local), u.value))
	}
	n.Append(item)
	return n, nil
}

func typesName(local string) xml.Name {
	return xml.Name{Space: internal.NamespaceTypes, Local: local}
}
