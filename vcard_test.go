package ews

import (
	"testing"

	"github.com/emersion/go-vcard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactCardRoundTrip(t *testing.T) {
	contact, err := contactFromNode(parseNode(t, contactXML))
	require.NoError(t, err)

	card := contact.Card()
	assert.Equal(t, "Raymond Kwaltz", card.Value(vcard.FieldFormattedName))
	assert.Equal(t, []string{"kwaltz@example.org", "ray@example.net"}, card.Values(vcard.FieldEmail))
	assert.Equal(t, "Duck Generators Ltd.", card.Value(vcard.FieldOrganization))
	assert.Equal(t, "+49 30 123456", card.Value(vcard.FieldTelephone))

	name := card.Name()
	require.NotNil(t, name)
	assert.Equal(t, "Raymond", name.GivenName)
	assert.Equal(t, "Kwaltz", name.FamilyName)

	back := ContactFromCard(card)
	assert.Equal(t, "Raymond", back.GivenName())
	assert.Equal(t, "Kwaltz", back.Surname())
	assert.Equal(t, "Raymond Kwaltz", back.DisplayName())
	assert.Equal(t, "kwaltz@example.org", back.EmailAddress(EmailAddress1))
	assert.Equal(t, "ray@example.net", back.EmailAddress(EmailAddress2))
	assert.Equal(t, "Duck Generators Ltd.", back.CompanyName())
}

func TestContactFromCardEmailOverflow(t *testing.T) {
	card := make(vcard.Card)
	for _, addr := range []string{"a@example.org", "b@example.org", "c@example.org", "d@example.org"} {
		card.AddValue(vcard.FieldEmail, addr)
	}

	c := ContactFromCard(card)
	assert.Equal(t, []string{"a@example.org", "b@example.org", "c@example.org"}, c.EmailAddresses())
}
