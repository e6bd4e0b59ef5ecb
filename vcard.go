package ews

import (
	"github.com/emersion/go-vcard"
)

// Card renders the contact as a vCard 4.0, for exchange with CardDAV stores
// and other address book software.
func (c *Contact) Card() vcard.Card {
	card := make(vcard.Card)

	if name := c.DisplayName(); name != "" {
		card.SetValue(vcard.FieldFormattedName, name)
	}
	card.AddName(&vcard.Name{
		FamilyName:     c.Surname(),
		GivenName:      c.GivenName(),
		AdditionalName: c.MiddleName(),
	})
	for _, addr := range c.EmailAddresses() {
		card.AddValue(vcard.FieldEmail, addr)
	}
	if org := c.CompanyName(); org != "" {
		card.SetValue(vcard.FieldOrganization, org)
	}
	if title := c.JobTitle(); title != "" {
		card.SetValue(vcard.FieldTitle, title)
	}
	if tel := c.PhoneNumber(PhoneBusiness); tel != "" {
		card.AddValue(vcard.FieldTelephone, tel)
	}
	if tel := c.PhoneNumber(PhoneMobile); tel != "" {
		card.AddValue(vcard.FieldTelephone, tel)
	}

	vcard.ToV4(card)
	return card
}

// ContactFromCard builds a contact from a vCard. Up to three email
// addresses are taken, matching the contact slots.
func ContactFromCard(card vcard.Card) *Contact {
	c := NewContact()

	if name := card.Name(); name != nil {
		c.SetGivenName(name.GivenName)
		c.SetMiddleName(name.AdditionalName)
		c.SetSurname(name.FamilyName)
	}
	if fn := card.Value(vcard.FieldFormattedName); fn != "" {
		c.SetDisplayName(fn)
	}

	slots := []EmailAddressKey{EmailAddress1, EmailAddress2, EmailAddress3}
	for i, addr := range card.Values(vcard.FieldEmail) {
		if i >= len(slots) {
			break
		}
		c.SetEmailAddress(slots[i], addr)
	}

	if org := card.Value(vcard.FieldOrganization); org != "" {
		c.SetCompanyName(org)
	}
	if title := card.Value(vcard.FieldTitle); title != "" {
		c.SetJobTitle(title)
	}
	if tel := card.Value(vcard.FieldTelephone); tel != "" {
		c.SetPhoneNumber(PhoneBusiness, tel)
	}
	return c
}
