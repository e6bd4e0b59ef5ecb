package ews

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const messageXML = `<t:Message
    xmlns:t="http://schemas.microsoft.com/exchange/services/2006/types">
	<t:ItemId Id="msg1=" ChangeKey="ck2="/>
	<t:Subject>Monthly report</t:Subject>
	<t:Body BodyType="HTML">&lt;p&gt;See attachment.&lt;/p&gt;</t:Body>
	<t:From>
		<t:Mailbox>
			<t:Name>Raymond Kwaltz</t:Name>
			<t:EmailAddress>kwaltz@example.org</t:EmailAddress>
		</t:Mailbox>
	</t:From>
	<t:ToRecipients>
		<t:Mailbox>
			<t:EmailAddress>alice@example.org</t:EmailAddress>
		</t:Mailbox>
		<t:Mailbox>
			<t:Name>Bob</t:Name>
			<t:EmailAddress>bob@example.org</t:EmailAddress>
		</t:Mailbox>
	</t:ToRecipients>
	<t:IsRead>true</t:IsRead>
</t:Message>`

func TestMessageFromNode(t *testing.T) {
	msg, err := messageFromNode(parseNode(t, messageXML))
	require.NoError(t, err)

	assert.Equal(t, ItemID{ID: "msg1=", ChangeKey: "ck2="}, msg.ID())
	assert.Equal(t, "Monthly report", msg.Subject())
	assert.Equal(t, BodyTypeHTML, msg.BodyType())
	assert.Equal(t, "<p>See attachment.</p>", msg.Body())
	assert.True(t, msg.IsRead())

	assert.Equal(t, Mailbox{Name: "Raymond Kwaltz", EmailAddress: "kwaltz@example.org"}, msg.From())
	assert.Equal(t, []Mailbox{
		{EmailAddress: "alice@example.org"},
		{Name: "Bob", EmailAddress: "bob@example.org"},
	}, msg.ToRecipients())
	assert.Empty(t, msg.CcRecipients())
}

func TestMessageSetRecipients(t *testing.T) {
	msg := NewMessage()
	msg.SetSubject("Hello")
	msg.SetBody(BodyTypeText, "Hi there")
	msg.SetToRecipients(Mailbox{EmailAddress: "alice@example.org"})
	msg.SetCcRecipients(
		Mailbox{EmailAddress: "bob@example.org"},
		Mailbox{Name: "Carol", EmailAddress: "carol@example.org"},
	)

	assert.Equal(t, []Mailbox{{EmailAddress: "alice@example.org"}}, msg.ToRecipients())
	assert.Len(t, msg.CcRecipients(), 2)

	// Replacing the list drops the previous recipients entirely.
	msg.SetToRecipients(Mailbox{EmailAddress: "dave@example.org"})
	assert.Equal(t, []Mailbox{{EmailAddress: "dave@example.org"}}, msg.ToRecipients())

	el := msg.element()
	s, err := el.XML()
	require.NoError(t, err)
	assert.NotContains(t, s, "alice@example.org")
	assert.Contains(t, s, "dave@example.org")
}
