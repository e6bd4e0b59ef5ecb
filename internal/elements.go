package internal

import (
	"encoding/xml"
)

// Envelope is a SOAP 1.1 request envelope. The namespace prefixes are fixed:
// requests always declare soap, t (types), m (messages), xsi and xsd, and
// every operation body is written with m:/t:-prefixed element names.
type Envelope struct {
	XMLName   xml.Name `xml:"soap:Envelope"`
	NSSoap    string   `xml:"xmlns:soap,attr"`
	NSTypes   string   `xml:"xmlns:t,attr"`
	NSMsgs    string   `xml:"xmlns:m,attr"`
	NSXSI     string   `xml:"xmlns:xsi,attr"`
	NSXSD     string   `xml:"xmlns:xsd,attr"`
	Header    *Header  `xml:"soap:Header,omitempty"`
	Body      Body     `xml:"soap:Body"`
}

// NewEnvelope wraps a method body in a SOAP envelope. The header block is
// emitted only when a server version is requested.
func NewEnvelope(version string, body Body) *Envelope {
	env := &Envelope{
		NSSoap:  NamespaceSOAP,
		NSTypes: NamespaceTypes,
		NSMsgs:  NamespaceMessages,
		NSXSI:   NamespaceXSI,
		NSXSD:   NamespaceXSD,
		Body:    body,
	}
	if version != "" {
		env.Header = &Header{
			RequestServerVersion: &RequestServerVersion{Version: version},
		}
	}
	return env
}

type Header struct {
	RequestServerVersion *RequestServerVersion `xml:"t:RequestServerVersion,omitempty"`
}

type RequestServerVersion struct {
	Version string `xml:"Version,attr"`
}

// Body holds exactly one operation. Unset operations are omitted.
type Body struct {
	CreateItem       *CreateItem       `xml:"m:CreateItem,omitempty"`
	GetItem          *GetItem          `xml:"m:GetItem,omitempty"`
	FindItem         *FindItem         `xml:"m:FindItem,omitempty"`
	UpdateItem       *UpdateItem       `xml:"m:UpdateItem,omitempty"`
	DeleteItem       *DeleteItem       `xml:"m:DeleteItem,omitempty"`
	CreateAttachment *CreateAttachment `xml:"m:CreateAttachment,omitempty"`
	GetAttachment    *GetAttachment    `xml:"m:GetAttachment,omitempty"`
	DeleteAttachment *DeleteAttachment `xml:"m:DeleteAttachment,omitempty"`
}

type ItemIDElement struct {
	XMLName   xml.Name `xml:"t:ItemId"`
	ID        string   `xml:"Id,attr"`
	ChangeKey string   `xml:"ChangeKey,attr,omitempty"`
}

type AttachmentIDElement struct {
	XMLName xml.Name `xml:"t:AttachmentId"`
	ID      string   `xml:"Id,attr"`
}

type DistinguishedFolderIDElement struct {
	XMLName xml.Name `xml:"t:DistinguishedFolderId"`
	ID      string   `xml:"Id,attr"`
}

type FolderIDElement struct {
	XMLName   xml.Name `xml:"t:FolderId"`
	ID        string   `xml:"Id,attr"`
	ChangeKey string   `xml:"ChangeKey,attr,omitempty"`
}

// FolderRef holds either a distinguished folder name or an explicit folder
// id; exactly one side is set.
type FolderRef struct {
	Distinguished *DistinguishedFolderIDElement `xml:"t:DistinguishedFolderId,omitempty"`
	Folder        *FolderIDElement              `xml:"t:FolderId,omitempty"`
}

type ItemShape struct {
	BaseShape            string                `xml:"t:BaseShape"`
	AdditionalProperties *AdditionalProperties `xml:"t:AdditionalProperties,omitempty"`
}

type AdditionalProperties struct {
	FieldURIs []FieldURIElement `xml:"t:FieldURI"`
}

type FieldURIElement struct {
	FieldURI string `xml:"FieldURI,attr"`
}

type ItemIDs struct {
	IDs []ItemIDElement `xml:"t:ItemId"`
}

// ItemArray carries prebuilt item subtrees; each Node renders itself with
// its own element name in the types namespace.
type ItemArray struct {
	Nodes []Node `xml:"item"`
}

type CreateItem struct {
	XMLName            xml.Name   `xml:"m:CreateItem"`
	MessageDisposition string     `xml:"MessageDisposition,attr,omitempty"`
	SavedItemFolderID  *FolderRef `xml:"m:SavedItemFolderId,omitempty"`
	Items              ItemArray  `xml:"m:Items"`
}

type GetItem struct {
	XMLName   xml.Name  `xml:"m:GetItem"`
	ItemShape ItemShape `xml:"m:ItemShape"`
	ItemIDs   ItemIDs   `xml:"m:ItemIds"`
}

type FindItem struct {
	XMLName         xml.Name  `xml:"m:FindItem"`
	Traversal       string    `xml:"Traversal,attr"`
	ItemShape       ItemShape `xml:"m:ItemShape"`
	Restriction     *Node     `xml:"m:Restriction,omitempty"`
	ParentFolderIDs FolderRef `xml:"m:ParentFolderIds"`
}

type UpdateItem struct {
	XMLName            xml.Name    `xml:"m:UpdateItem"`
	ConflictResolution string      `xml:"ConflictResolution,attr"`
	MessageDisposition string      `xml:"MessageDisposition,attr,omitempty"`
	ItemChanges        ItemChanges `xml:"m:ItemChanges"`
}

type ItemChanges struct {
	Changes []ItemChange `xml:"t:ItemChange"`
}

type ItemChange struct {
	ItemID ItemIDElement `xml:"t:ItemId"`
	// Updates carries SetItemField, AppendToItemField and DeleteItemField
	// subtrees in caller order.
	Updates struct {
		Fields []Node `xml:"field"`
	} `xml:"t:Updates"`
}

type DeleteItem struct {
	XMLName                 xml.Name `xml:"m:DeleteItem"`
	DeleteType              string   `xml:"DeleteType,attr"`
	AffectedTaskOccurrences string   `xml:"AffectedTaskOccurrences,attr,omitempty"`
	ItemIDs                 ItemIDs  `xml:"m:ItemIds"`
}

type CreateAttachment struct {
	XMLName      xml.Name      `xml:"m:CreateAttachment"`
	ParentItemID ParentItemID  `xml:"m:ParentItemId"`
	Attachments  AttachmentArr `xml:"m:Attachments"`
}

type ParentItemID struct {
	ID        string `xml:"Id,attr"`
	ChangeKey string `xml:"ChangeKey,attr,omitempty"`
}

type AttachmentArr struct {
	FileAttachments []FileAttachmentElement `xml:"t:FileAttachment"`
}

type FileAttachmentElement struct {
	Name        string `xml:"t:Name"`
	ContentType string `xml:"t:ContentType,omitempty"`
	// Content is the base64-encoded attachment payload.
	Content string `xml:"t:Content"`
}

type AttachmentIDs struct {
	IDs []AttachmentIDElement `xml:"t:AttachmentId"`
}

type GetAttachment struct {
	XMLName       xml.Name      `xml:"m:GetAttachment"`
	AttachmentIDs AttachmentIDs `xml:"m:AttachmentIds"`
}

type DeleteAttachment struct {
	XMLName       xml.Name      `xml:"m:DeleteAttachment"`
	AttachmentIDs AttachmentIDs `xml:"m:AttachmentIds"`
}

// ResponseEnvelope is a decoded 200 response. The body content is kept as an
// owned tree; operation parsers locate their response message inside it.
type ResponseEnvelope struct {
	XMLName xml.Name `xml:"Envelope"`
	Body    struct {
		Content Node `xml:",any"`
	} `xml:"Body"`
}

// FaultEnvelope is a decoded 500 response carrying a SOAP fault.
type FaultEnvelope struct {
	XMLName xml.Name `xml:"Envelope"`
	Body    struct {
		Fault *Fault `xml:"Fault"`
	} `xml:"Body"`
}

type Fault struct {
	FaultCode   string      `xml:"faultcode"`
	FaultString string      `xml:"faultstring"`
	Detail      FaultDetail `xml:"detail"`
}

// FaultDetail carries the error-namespace response code and, for schema
// validation faults, the offending location in the request document.
type FaultDetail struct {
	ResponseCode string `xml:"ResponseCode"`
	Message      string `xml:"Message"`
	LineNumber   int    `xml:"MessageXml>LineNumber"`
	LinePosition int    `xml:"MessageXml>LinePosition"`
	Violation    string `xml:"MessageXml>Violation"`
}
