package ews

import (
	"encoding/xml"

	"github.com/ewsclient/go-ews/internal"
)

// EmailAddressKey selects one of a contact's email address slots.
type EmailAddressKey string

const (
	EmailAddress1 EmailAddressKey = "EmailAddress1"
	EmailAddress2 EmailAddressKey = "EmailAddress2"
	EmailAddress3 EmailAddressKey = "EmailAddress3"
)

// PhoneNumberKey selects one of a contact's phone number slots.
type PhoneNumberKey string

const (
	PhoneBusiness PhoneNumberKey = "BusinessPhone"
	PhoneHome     PhoneNumberKey = "HomePhone"
	PhoneMobile   PhoneNumberKey = "MobilePhone"
)

// Contact is an address book entry.
type Contact struct {
	Item
}

// NewContact returns an empty contact, ready to be populated and created.
func NewContact() *Contact {
	return &Contact{newItem("Contact")}
}

func contactFromNode(n *internal.Node) (*Contact, error) {
	it, err := itemFromNode(n)
	if err != nil {
		return nil, err
	}
	return &Contact{it}, nil
}

func (c *Contact) GivenName() string {
	return c.GetProperty("GivenName")
}

func (c *Contact) SetGivenName(s string) {
	c.SetProperty("GivenName", s)
}

func (c *Contact) MiddleName() string {
	return c.GetProperty("MiddleName")
}

func (c *Contact) SetMiddleName(s string) {
	c.SetProperty("MiddleName", s)
}

func (c *Contact) Surname() string {
	return c.GetProperty("Surname")
}

func (c *Contact) SetSurname(s string) {
	c.SetProperty("Surname", s)
}

func (c *Contact) DisplayName() string {
	return c.GetProperty("DisplayName")
}

func (c *Contact) SetDisplayName(s string) {
	c.SetProperty("DisplayName", s)
}

func (c *Contact) CompanyName() string {
	return c.GetProperty("CompanyName")
}

func (c *Contact) SetCompanyName(s string) {
	c.SetProperty("CompanyName", s)
}

func (c *Contact) JobTitle() string {
	return c.GetProperty("JobTitle")
}

func (c *Contact) SetJobTitle(s string) {
	c.SetProperty("JobTitle", s)
}

// EmailAddress returns the address in the given slot, or "".
func (c *Contact) EmailAddress(key EmailAddressKey) string {
	return c.dictionaryEntry("EmailAddresses", string(key))
}

// EmailAddresses returns all filled address slots in document order.
func (c *Contact) EmailAddresses() []string {
	return c.dictionaryEntries("EmailAddresses")
}

func (c *Contact) SetEmailAddress(key EmailAddressKey, addr string) {
	c.setDictionaryEntry("EmailAddresses", string(key), addr)
}

// PhoneNumber returns the number in the given slot, or "".
func (c *Contact) PhoneNumber(key PhoneNumberKey) string {
	return c.dictionaryEntry("PhoneNumbers", string(key))
}

func (c *Contact) SetPhoneNumber(key PhoneNumberKey, number string) {
	c.setDictionaryEntry("PhoneNumbers", string(key), number)
}

// EWS stores addresses and phone numbers as keyed Entry dictionaries:
//
//	<t:EmailAddresses>
//	  <t:Entry Key="EmailAddress1">kwaltz@example.org</t:Entry>
//	</t:EmailAddresses>

func (c *Contact) dictionaryEntry(container, key string) string {
	dict := c.el.Find(container)
	if dict == nil {
		return ""
	}
	for _, entry := range dict.Elements() {
		if k, _ := entry.Attr("Key"); k == key {
			return entry.Text()
		}
	}
	return ""
}

func (c *Contact) dictionaryEntries(container string) []string {
	dict := c.el.Find(container)
	if dict == nil {
		return nil
	}
	var l []string
	for _, entry := range dict.Elements() {
		l = append(l, entry.Text())
	}
	return l
}

func (c *Contact) setDictionaryEntry(container, key, value string) {
	dict := c.el.Find(container)
	if dict == nil {
		c.el.Append(internal.NewElement(xml.Name{
			Space: internal.NamespaceTypes,
			Local: container,
		}))
		dict = c.el.Find(container)
	}
	for _, entry := range dict.Elements() {
		if k, _ := entry.Attr("Key"); k == key {
			entry.SetText(value)
			return
		}
	}
	entry := internal.NewTextElement(xml.Name{
		Space: internal.NamespaceTypes,
		Local: "Entry",
	}, value)
	entry.SetAttr("Key", key)
	dict.Append(entry)
}
