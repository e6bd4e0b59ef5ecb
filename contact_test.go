package ews

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const contactXML = `<t:Contact
    xmlns:t="http://schemas.microsoft.com/exchange/services/2006/types">
	<t:ItemId Id="contact1=" ChangeKey="ck1="/>
	<t:DisplayName>Raymond Kwaltz</t:DisplayName>
	<t:GivenName>Raymond</t:GivenName>
	<t:Surname>Kwaltz</t:Surname>
	<t:CompanyName>Duck Generators Ltd.</t:CompanyName>
	<t:EmailAddresses>
		<t:Entry Key="EmailAddress1">kwaltz@example.org</t:Entry>
		<t:Entry Key="EmailAddress2">ray@example.net</t:Entry>
	</t:EmailAddresses>
	<t:PhoneNumbers>
		<t:Entry Key="BusinessPhone">+49 30 123456</t:Entry>
	</t:PhoneNumbers>
	<t:JobTitle>Generator Salesman</t:JobTitle>
</t:Contact>`

func TestContactFromNode(t *testing.T) {
	contact, err := contactFromNode(parseNode(t, contactXML))
	require.NoError(t, err)

	assert.Equal(t, ItemID{ID: "contact1=", ChangeKey: "ck1="}, contact.ID())
	assert.Equal(t, "Raymond Kwaltz", contact.DisplayName())
	assert.Equal(t, "Raymond", contact.GivenName())
	assert.Equal(t, "Kwaltz", contact.Surname())
	assert.Equal(t, "Duck Generators Ltd.", contact.CompanyName())
	assert.Equal(t, "Generator Salesman", contact.JobTitle())

	assert.Equal(t, "kwaltz@example.org", contact.EmailAddress(EmailAddress1))
	assert.Equal(t, "ray@example.net", contact.EmailAddress(EmailAddress2))
	assert.Equal(t, "", contact.EmailAddress(EmailAddress3))
	assert.Equal(t, []string{"kwaltz@example.org", "ray@example.net"}, contact.EmailAddresses())

	assert.Equal(t, "+49 30 123456", contact.PhoneNumber(PhoneBusiness))
	assert.Equal(t, "", contact.PhoneNumber(PhoneMobile))
}

func TestContactSetDictionaryEntries(t *testing.T) {
	contact := NewContact()
	contact.SetGivenName("Ada")
	contact.SetSurname("Lovelace")
	contact.SetEmailAddress(EmailAddress1, "ada@example.org")
	contact.SetPhoneNumber(PhoneMobile, "+44 20 9999")

	assert.Equal(t, "ada@example.org", contact.EmailAddress(EmailAddress1))
	assert.Equal(t, "+44 20 9999", contact.PhoneNumber(PhoneMobile))

	// Overwriting a slot must not add a second entry.
	contact.SetEmailAddress(EmailAddress1, "lovelace@example.org")
	assert.Equal(t, []string{"lovelace@example.org"}, contact.EmailAddresses())

	el := contact.element()
	s, err := el.XML()
	require.NoError(t, err)
	assert.Contains(t, s, `Key="EmailAddress1"`)
	assert.Contains(t, s, "lovelace@example.org")
	assert.NotContains(t, s, "ada@example.org")
}
