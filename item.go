package ews

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"time"

	"github.com/ewsclient/go-ews/internal"
)

// dateTimeLayout is xs:dateTime in UTC, the form EWS emits and accepts.
const dateTimeLayout = "2006-01-02T15:04:05Z"

// BodyType says how a body's text is to be interpreted.
type BodyType string

const (
	BodyTypeText BodyType = "Text"
	BodyTypeHTML BodyType = "HTML"
)

// Item is the state shared by all mailbox items: the identifier plus the
// item's property tree as received from, or destined for, the server. Typed
// items embed it; its accessors are the escape hatch for properties the
// typed surface doesn't cover.
type Item struct {
	id ItemID
	el internal.Node
}

func newItem(local string) Item {
	return Item{el: internal.NewElement(xml.Name{
		Space: internal.NamespaceTypes,
		Local: local,
	})}
}

// itemFromNode builds an Item from a decoded item element such as t:Task.
// The subtree is cloned, so the item shares no state with the response it
// came from.
func itemFromNode(n *internal.Node) (Item, error) {
	it := Item{el: n.Clone()}
	if idNode := it.el.Find("ItemId"); idNode != nil {
		id, err := itemIDFromNode(idNode)
		if err != nil {
			return Item{}, err
		}
		it.id = id
	}
	return it, nil
}

// ID returns the item's identifier. It is zero for items that haven't been
// created on the server yet.
func (it *Item) ID() ItemID {
	return it.id
}

// GetProperty returns the text of the named property, or the empty string
// when the item doesn't carry it.
func (it *Item) GetProperty(local string) string {
	return it.el.Prop(local)
}

// SetProperty sets the named property, replacing an existing value in place.
func (it *Item) SetProperty(local, value string) {
	it.el.UpdateProp(xml.Name{Space: internal.NamespaceTypes, Local: local}, value)
}

// Body returns the item's body text.
func (it *Item) Body() string {
	return it.GetProperty("Body")
}

// BodyType returns how the body text is to be interpreted. Items without a
// body default to plain text.
func (it *Item) BodyType() BodyType {
	if el := it.el.Find("Body"); el != nil {
		if v, ok := el.Attr("BodyType"); ok {
			return BodyType(v)
		}
	}
	return BodyTypeText
}

// SetBody sets the item's body text and type.
func (it *Item) SetBody(typ BodyType, text string) {
	it.SetProperty("Body", text)
	it.el.Find("Body").SetAttr("BodyType", string(typ))
}

// element returns a clone of the property tree for embedding in a request.
func (it *Item) element() internal.Node {
	return it.el.Clone()
}

func (it *Item) timeProperty(local string) (time.Time, error) {
	s := it.GetProperty(local)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, &ParseError{Msg: fmt.Sprintf("invalid %v date", local), Err: err}
	}
	return t, nil
}

func (it *Item) setTimeProperty(local string, t time.Time) {
	it.SetProperty(local, t.UTC().Format(dateTimeLayout))
}

func (it *Item) boolProperty(local string) bool {
	v, err := strconv.ParseBool(it.GetProperty(local))
	return err == nil && v
}

func (it *Item) setBoolProperty(local string, v bool) {
	it.SetProperty(local, strconv.FormatBool(v))
}
