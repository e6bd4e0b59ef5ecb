package ews

import (
	"encoding/xml"

	"github.com/ewsclient/go-ews/internal"
)

// Restriction is a FindItem search filter. Build values with IsEqualTo or
// Contains.
type Restriction struct {
	expr internal.Node
}

// IsEqualTo matches items whose property at path equals value exactly.
func IsEqualTo(path PropertyPath, value string) *Restriction {
	n := internal.NewElement(typesName("IsEqualTo"))
	n.Append(fieldURINode(path))

	constant := internal.NewElement(typesName("Constant"))
	constant.SetAttr("Value", value)
	wrapper := internal.NewElement(typesName("FieldURIOrConstant"))
	wrapper.Append(constant)
	n.Append(wrapper)

	return &Restriction{expr: n}
}

// Contains matches items whose property at path contains value as a
// case-insensitive substring.
func Contains(path PropertyPath, value string) *Restriction {
	n := internal.NewElement(typesName("Contains"))
	n.SetAttr("ContainmentMode", "Substring")
	n.SetAttr("ContainmentComparison", "IgnoreCase")
	n.Append(fieldURINode(path))

	constant := internal.NewElement(typesName("Constant"))
	constant.SetAttr("Value", value)
	n.Append(constant)

	return &Restriction{expr: n}
}

// node wraps the expression in an m:Restriction element.
func (r *Restriction) node() *internal.Node {
	n := internal.NewElement(xml.Name{
		Space: internal.NamespaceMessages,
		Local: "Restriction",
	})
	n.Append(r.expr.Clone())
	return &n
}

func fieldURINode(path PropertyPath) internal.Node {
	n := internal.NewElement(typesName("FieldURI"))
	n.SetAttr("FieldURI", string(path))
	return n
}
