package ews

import (
	"encoding/base64"

	"github.com/ewsclient/go-ews/internal"
)

// FileAttachment is a file attached to an item. Content is the raw payload;
// base64 transfer encoding is handled by the client.
type FileAttachment struct {
	Name        string
	ContentType string
	Content     []byte
}

func (a *FileAttachment) element() internal.FileAttachmentElement {
	return internal.FileAttachmentElement{
		Name:        a.Name,
		ContentType: a.ContentType,
		Content:     base64.StdEncoding.EncodeToString(a.Content),
	}
}

// fileAttachmentFromNode decodes a t:FileAttachment element from a
// GetAttachment response.
func fileAttachmentFromNode(n *internal.Node) (*FileAttachment, AttachmentID, error) {
	idNode := n.Find("AttachmentId")
	if idNode == nil {
		return nil, AttachmentID{}, &ParseError{Msg: "FileAttachment has no AttachmentId"}
	}
	id, err := attachmentIDFromNode(idNode)
	if err != nil {
		return nil, AttachmentID{}, err
	}

	content, err := base64.StdEncoding.DecodeString(n.Prop("Content"))
	if err != nil {
		return nil, AttachmentID{}, &ParseError{Msg: "invalid attachment content encoding", Err: err}
	}

	return &FileAttachment{
		Name:        n.Prop("Name"),
		ContentType: n.Prop("ContentType"),
		Content:     content,
	}, id, nil
}
