package ews

import (
	"fmt"

	"github.com/ewsclient/go-ews/internal"
)

// ResponseClass is the coarse outcome of a single response message.
type ResponseClass int

const (
	ResponseClassSuccess ResponseClass = iota
	ResponseClassWarning
	ResponseClassError
)

func (c ResponseClass) String() string {
	switch c {
	case ResponseClassSuccess:
		return "Success"
	case ResponseClassWarning:
		return "Warning"
	case ResponseClassError:
		return "Error"
	}
	return fmt.Sprintf("ResponseClass(%d)", int(c))
}

// parseResponseClass is intentionally permissive: only the literal strings
// "Error" and "Warning" are treated as failures, anything else (including a
// missing attribute) is success. A server never reports an error it doesn't
// name.
func parseResponseClass(s string) ResponseClass {
	switch s {
	case "Error":
		return ResponseClassError
	case "Warning":
		return ResponseClassWarning
	}
	return ResponseClassSuccess
}

// findResponseMessage locates the single response message element for an
// operation, e.g. "CreateItemResponseMessage", under the decoded body
// content.
func findResponseMessage(content *internal.Node, local string) (*internal.Node, error) {
	msg := content.Find(local)
	if msg == nil {
		return nil, &ParseError{Msg: fmt.Sprintf("response is missing %v", local)}
	}
	return msg, nil
}

// checkResponseMessage validates the ResponseClass of a response message and
// converts Warning and Error classes into a ResponseError. A non-success
// message without a ResponseCode is malformed, not defaulted.
func checkResponseMessage(msg *internal.Node) error {
	cls, _ := msg.Attr("ResponseClass")
	class := parseResponseClass(cls)
	if class == ResponseClassSuccess {
		return nil
	}

	codeNode := msg.Find("ResponseCode")
	if codeNode == nil {
		return &ParseError{Msg: fmt.Sprintf("%v response message has no ResponseCode", class)}
	}
	code, err := ParseResponseCode(codeNode.Text())
	if err != nil {
		return err
	}

	return &ResponseError{
		Class:       class,
		Code:        code,
		MessageText: msg.Prop("MessageText"),
	}
}

// responseItems extracts the children of the message's <Items> element,
// in document order. Every child must be named wantLocal; a foreign element
// means the response doesn't match the request and is surfaced rather than
// skipped.
func responseItems(msg *internal.Node, wantLocal string) ([]*internal.Node, error) {
	items := msg.Find("Items")
	if items == nil {
		return nil, &ParseError{Msg: "response message has no Items element"}
	}

	children := items.Elements()
	for _, el := range children {
		if got := el.Name().Local; got != wantLocal {
			return nil, &ParseError{Msg: fmt.Sprintf("expected %v item, found %v", wantLocal, got)}
		}
	}
	return children, nil
}

// singleResponseItem is responseItems for operations that address exactly one
// item.
func singleResponseItem(msg *internal.Node, wantLocal string) (*internal.Node, error) {
	items, err := responseItems(msg, wantLocal)
	if err != nil {
		return nil, err
	}
	if len(items) != 1 {
		return nil, &ParseError{Msg: fmt.Sprintf("expected a single %v item, found %d", wantLocal, len(items))}
	}
	return items[0], nil
}
