package ews

import (
	"encoding/xml"

	"github.com/ewsclient/go-ews/internal"
)

// Mailbox is a mail participant: a display name plus an SMTP address. The
// name is optional.
type Mailbox struct {
	Name         string
	EmailAddress string
}

func mailboxNode(mb Mailbox) internal.Node {
	n := internal.NewElement(xml.Name{Space: internal.NamespaceTypes, Local: "Mailbox"})
	if mb.Name != "" {
		n.Append(internal.NewTextElement(xml.Name{
			Space: internal.NamespaceTypes,
			Local: "Name",
		}, mb.Name))
	}
	n.Append(internal.NewTextElement(xml.Name{
		Space: internal.NamespaceTypes,
		Local: "EmailAddress",
	}, mb.EmailAddress))
	return n
}

func mailboxFromNode(n *internal.Node) Mailbox {
	return Mailbox{
		Name:         n.Prop("Name"),
		EmailAddress: n.Prop("EmailAddress"),
	}
}

// Message is an email message.
type Message struct {
	Item
}

// NewMessage returns an empty message, ready to be populated and created.
func NewMessage() *Message {
	return &Message{newItem("Message")}
}

func messageFromNode(n *internal.Node) (*Message, error) {
	it, err := itemFromNode(n)
	if err != nil {
		return nil, err
	}
	return &Message{it}, nil
}

func (m *Message) Subject() string {
	return m.GetProperty("Subject")
}

func (m *Message) SetSubject(s string) {
	m.SetProperty("Subject", s)
}

// From returns the sender. The zero Mailbox means the server didn't include
// one.
func (m *Message) From() Mailbox {
	if el := m.el.Find("From"); el != nil {
		return mailboxFromNode(el)
	}
	return Mailbox{}
}

func (m *Message) SetFrom(mb Mailbox) {
	m.setMailboxes("From", mb)
}

// ToRecipients returns the primary recipients in document order.
func (m *Message) ToRecipients() []Mailbox {
	return m.mailboxes("ToRecipients")
}

// SetToRecipients replaces the primary recipient list.
func (m *Message) SetToRecipients(mbs ...Mailbox) {
	m.setMailboxes("ToRecipients", mbs...)
}

// CcRecipients returns the carbon copy recipients in document order.
func (m *Message) CcRecipients() []Mailbox {
	return m.mailboxes("CcRecipients")
}

// SetCcRecipients replaces the carbon copy recipient list.
func (m *Message) SetCcRecipients(mbs ...Mailbox) {
	m.setMailboxes("CcRecipients", mbs...)
}

func (m *Message) IsRead() bool {
	return m.boolProperty("IsRead")
}

func (m *Message) SetIsRead(v bool) {
	m.setBoolProperty("IsRead", v)
}

func (m *Message) mailboxes(container string) []Mailbox {
	el := m.el.Find(container)
	if el == nil {
		return nil
	}
	var l []Mailbox
	for _, box := range el.FindAll("Mailbox") {
		l = append(l, mailboxFromNode(box))
	}
	return l
}

func (m *Message) setMailboxes(container string, mbs ...Mailbox) {
	children := make([]internal.Node, len(mbs))
	for i, mb := range mbs {
		children[i] = mailboxNode(mb)
	}

	el := m.el.Find(container)
	if el == nil {
		m.el.Append(internal.NewElement(xml.Name{
			Space: internal.NamespaceTypes,
			Local: container,
		}))
		el = m.el.Find(container)
	}
	el.SetChildren(children...)
}
