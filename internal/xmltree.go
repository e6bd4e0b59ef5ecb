package internal

import (
	"bytes"
	"encoding/xml"
	"strings"
)

// Node is an owned XML subtree. It implements xml.Unmarshaler and
// xml.Marshaler and can hold any element of a parsed response, or an element
// built in memory for a request. The tree owns all of its tokens, so copying
// a Node is a structural clone and never aliases the source.
type Node struct {
	tok      xml.Token // guaranteed not to be xml.EndElement
	children []Node
}

// NewElement returns an empty element node.
func NewElement(name xml.Name) Node {
	return Node{tok: xml.StartElement{Name: name}}
}

// NewTextElement returns an element node with character data content.
func NewTextElement(name xml.Name, text string) Node {
	n := NewElement(name)
	n.children = []Node{{tok: xml.CharData(text)}}
	return n
}

// UnmarshalXML implements xml.Unmarshaler.
func (n *Node) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	n.tok = start.Copy()
	n.children = nil

	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch tok := tok.(type) {
		case xml.StartElement:
			var child Node
			if err := child.UnmarshalXML(d, tok); err != nil {
				return err
			}
			n.children = append(n.children, child)
		case xml.EndElement:
			return nil
		default:
			n.children = append(n.children, Node{tok: xml.CopyToken(tok)})
		}
	}
}

// MarshalXML implements xml.Marshaler. The start argument is ignored: the
// node already carries its own name and attributes.
func (n *Node) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	switch tok := n.tok.(type) {
	case xml.StartElement:
		if err := e.EncodeToken(tok); err != nil {
			return err
		}
		for i := range n.children {
			if err := n.children[i].MarshalXML(e, xml.StartElement{}); err != nil {
				return err
			}
		}
		return e.EncodeToken(tok.End())
	case xml.EndElement:
		panic("ews: unexpected end element")
	case nil:
		return nil
	default:
		return e.EncodeToken(tok)
	}
}

var (
	_ xml.Marshaler   = (*Node)(nil)
	_ xml.Unmarshaler = (*Node)(nil)
)

// XML serializes the subtree without indentation.
func (n *Node) XML() (string, error) {
	var buf bytes.Buffer
	e := xml.NewEncoder(&buf)
	if err := n.MarshalXML(e, xml.StartElement{}); err != nil {
		return "", err
	}
	if err := e.Flush(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Name returns the element name, or the zero name if the node does not hold
// an element.
func (n *Node) Name() xml.Name {
	if start, ok := n.tok.(xml.StartElement); ok {
		return start.Name
	}
	return xml.Name{}
}

// Attr returns the value of the attribute with the given local name.
// Namespace declarations are not considered attributes.
func (n *Node) Attr(local string) (string, bool) {
	start, ok := n.tok.(xml.StartElement)
	if !ok {
		return "", false
	}
	for _, attr := range start.Attr {
		if attr.Name.Space == "xmlns" || attr.Name.Local == "xmlns" {
			continue
		}
		if attr.Name.Local == local {
			return attr.Value, true
		}
	}
	return "", false
}

// SetAttr sets the attribute with the given local name, adding it if absent.
// Calling SetAttr on a non-element node is a no-op.
func (n *Node) SetAttr(local, value string) {
	start, ok := n.tok.(xml.StartElement)
	if !ok {
		return
	}
	for i, attr := range start.Attr {
		if attr.Name.Space == "xmlns" || attr.Name.Local == "xmlns" {
			continue
		}
		if attr.Name.Local == local {
			start.Attr[i].Value = value
			n.tok = start
			return
		}
	}
	start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: local}, Value: value})
	n.tok = start
}

// Text returns the concatenated character data directly below the node.
func (n *Node) Text() string {
	var sb strings.Builder
	for i := range n.children {
		if cd, ok := n.children[i].tok.(xml.CharData); ok {
			sb.Write(cd)
		}
	}
	return sb.String()
}

// Elements returns the direct element children in document order.
func (n *Node) Elements() []*Node {
	var l []*Node
	for i := range n.children {
		if _, ok := n.children[i].tok.(xml.StartElement); ok {
			l = append(l, &n.children[i])
		}
	}
	return l
}

// Find returns the first descendant element with the given local name, in
// depth-first document order, or nil.
func (n *Node) Find(local string) *Node {
	for i := range n.children {
		child := &n.children[i]
		if child.Name().Local == local {
			return child
		}
		if found := child.Find(local); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every descendant element with the given local name, in
// depth-first document order.
func (n *Node) FindAll(local string) []*Node {
	var l []*Node
	for i := range n.children {
		child := &n.children[i]
		if child.Name().Local == local {
			l = append(l, child)
		}
		l = append(l, child.FindAll(local)...)
	}
	return l
}

// Append adds a child node after the existing children.
func (n *Node) Append(child Node) {
	n.children = append(n.children, child)
}

// SetChildren replaces the node's entire content.
func (n *Node) SetChildren(children ...Node) {
	n.children = children
}

// Prop returns the text of the first descendant element with the given local
// name, or the empty string if the subtree has no such element.
func (n *Node) Prop(local string) string {
	if el := n.Find(local); el != nil {
		return el.Text()
	}
	return ""
}

// UpdateProp sets the property with name.Local to text. An existing element
// is updated in place, keeping its position among its siblings; otherwise a
// new element with the full name is appended. Setting an already-equal value
// is a no-op.
func (n *Node) UpdateProp(name xml.Name, text string) {
	if el := n.Find(name.Local); el != nil {
		if el.Text() == text {
			return
		}
		el.SetText(text)
		return
	}
	n.Append(NewTextElement(name, text))
}

// SetText replaces the node's content with a single character data child.
func (n *Node) SetText(text string) {
	n.children = []Node{{tok: xml.CharData(text)}}
}

// Clone returns a deep copy sharing no state with the receiver.
func (n *Node) Clone() Node {
	out := Node{}
	if n.tok != nil {
		out.tok = xml.CopyToken(n.tok)
	}
	if n.children != nil {
		out.children = make([]Node, len(n.children))
		for i := range n.children {
			out.children[i] = n.children[i].Clone()
		}
	}
	return out
}
