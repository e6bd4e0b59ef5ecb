package ews

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"

	"github.com/ewsclient/go-ews/internal"
)

// do executes one SOAP round trip and classifies the outcome: transport
// failures and bodyless statuses become an HTTPError, a 500 becomes a
// SOAPFault, and a 200 yields the decoded body content.
func (c *Client) do(ctx context.Context, body internal.Body) (*internal.Node, error) {
	env := internal.NewEnvelope(string(c.Version), body)
	req, err := c.ic.NewSOAPRequest(ctx, env)
	if err != nil {
		return nil, err
	}

	status, payload, err := c.ic.DoSOAP(req)
	if err != nil {
		return nil, &HTTPError{Err: err}
	}

	switch status {
	case http.StatusOK:
		var resp internal.ResponseEnvelope
		if err := xml.Unmarshal(payload, &resp); err != nil {
			return nil, &ParseError{Msg: "response body is not well-formed XML", Err: err}
		}
		return &resp.Body.Content, nil
	case http.StatusInternalServerError:
		var resp internal.FaultEnvelope
		if err := xml.Unmarshal(payload, &resp); err != nil {
			return nil, &ParseError{Msg: "fault response is not well-formed XML", Err: err}
		}
		if resp.Body.Fault == nil {
			return nil, &ParseError{Msg: "500 response carries no SOAP fault"}
		}
		f := resp.Body.Fault
		return nil, &SOAPFault{
			FaultCode:    f.FaultCode,
			FaultString:  f.FaultString,
			ResponseCode: f.Detail.ResponseCode,
			Message:      f.Detail.Message,
			LineNumber:   f.Detail.LineNumber,
			LinePosition: f.Detail.LinePosition,
			Violation:    f.Detail.Violation,
		}
	default:
		return nil, &HTTPError{Code: status}
	}
}

// call is do plus locating and validating the operation's response message.
func (c *Client) call(ctx context.Context, body internal.Body, respLocal string) (*internal.Node, error) {
	content, err := c.do(ctx, body)
	if err != nil {
		return nil, err
	}
	msg, err := findResponseMessage(content, respLocal)
	if err != nil {
		return nil, err
	}
	if err := checkResponseMessage(msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (c *Client) createItem(ctx context.Context, el internal.Node, folder *FolderID, disposition MessageDisposition) (ItemID, error) {
	op := &internal.CreateItem{
		MessageDisposition: string(disposition),
		Items:              internal.ItemArray{Nodes: []internal.Node{el}},
	}
	if folder != nil {
		if !folder.Valid() {
			return ItemID{}, fmt.Errorf("ews: invalid folder reference")
		}
		op.SavedItemFolderID = folder.ref()
	}

	msg, err := c.call(ctx, internal.Body{CreateItem: op}, "CreateItemResponseMessage")
	if err != nil {
		return ItemID{}, err
	}

	// A send-only disposition stores nothing, so the response legitimately
	// carries no item.
	idNode := msg.Find("ItemId")
	if idNode == nil {
		if disposition == SendOnly {
			return ItemID{}, nil
		}
		return ItemID{}, &ParseError{Msg: "CreateItem response carries no ItemId"}
	}
	return itemIDFromNode(idNode)
}

// CreateTask saves a new task in the account's default tasks folder.
func (c *Client) CreateTask(ctx context.Context, task *Task) (ItemID, error) {
	return c.createItem(ctx, task.element(), nil, "")
}

// CreateTaskIn saves a new task in the given folder.
func (c *Client) CreateTaskIn(ctx context.Context, task *Task, folder FolderID) (ItemID, error) {
	return c.createItem(ctx, task.element(), &folder, "")
}

// CreateContact saves a new contact in the account's default contacts
// folder.
func (c *Client) CreateContact(ctx context.Context, contact *Contact) (ItemID, error) {
	return c.createItem(ctx, contact.element(), nil, "")
}

// CreateContactIn saves a new contact in the given folder.
func (c *Client) CreateContactIn(ctx context.Context, contact *Contact, folder FolderID) (ItemID, error) {
	return c.createItem(ctx, contact.element(), &folder, "")
}

// CreateMessage creates a message. The disposition is mandatory for message
// items and says whether the message is saved, sent, or both. With SendOnly
// the returned identifier is zero, since nothing was stored.
func (c *Client) CreateMessage(ctx context.Context, msg *Message, disposition MessageDisposition) (ItemID, error) {
	if disposition == "" {
		return ItemID{}, fmt.Errorf("ews: message items require a message disposition")
	}
	return c.createItem(ctx, msg.element(), nil, disposition)
}

func (c *Client) getItem(ctx context.Context, id ItemID, shape BaseShape, additional []PropertyPath, wantLocal string) (*internal.Node, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("ews: empty item id")
	}

	op := &internal.GetItem{
		ItemShape: internal.ItemShape{BaseShape: string(shape)},
		ItemIDs:   internal.ItemIDs{IDs: []internal.ItemIDElement{id.element()}},
	}
	if len(additional) > 0 {
		props := &internal.AdditionalProperties{}
		for _, path := range additional {
			if _, _, err := path.split(); err != nil {
				return nil, err
			}
			props.FieldURIs = append(props.FieldURIs, internal.FieldURIElement{FieldURI: string(path)})
		}
		op.ItemShape.AdditionalProperties = props
	}

	msg, err := c.call(ctx, internal.Body{GetItem: op}, "GetItemResponseMessage")
	if err != nil {
		return nil, err
	}
	return singleResponseItem(msg, wantLocal)
}

// GetTask fetches a task. The shape controls how many properties the server
// returns; additional paths extend it.
func (c *Client) GetTask(ctx context.Context, id ItemID, shape BaseShape, additional ...PropertyPath) (*Task, error) {
	n, err := c.getItem(ctx, id, shape, additional, "Task")
	if err != nil {
		return nil, err
	}
	return taskFromNode(n)
}

// GetContact fetches a contact.
func (c *Client) GetContact(ctx context.Context, id ItemID, shape BaseShape, additional ...PropertyPath) (*Contact, error) {
	n, err := c.getItem(ctx, id, shape, additional, "Contact")
	if err != nil {
		return nil, err
	}
	return contactFromNode(n)
}

// GetMessage fetches a message.
func (c *Client) GetMessage(ctx context.Context, id ItemID, shape BaseShape, additional ...PropertyPath) (*Message, error) {
	n, err := c.getItem(ctx, id, shape, additional, "Message")
	if err != nil {
		return nil, err
	}
	return messageFromNode(n)
}

// FindItemIDs lists the identifiers of the items in a folder, in server
// order, optionally narrowed by a restriction. The search is shallow:
// subfolders are not visited.
func (c *Client) FindItemIDs(ctx context.Context, folder FolderID, restriction *Restriction) ([]ItemID, error) {
	if !folder.Valid() {
		return nil, fmt.Errorf("ews: invalid folder reference")
	}

	op := &internal.FindItem{
		Traversal:       traversalShallow,
		ItemShape:       internal.ItemShape{BaseShape: string(BaseShapeIDOnly)},
		ParentFolderIDs: *folder.ref(),
	}
	if restriction != nil {
		op.Restriction = restriction.node()
	}

	msg, err := c.call(ctx, internal.Body{FindItem: op}, "FindItemResponseMessage")
	if err != nil {
		return nil, err
	}

	items := msg.Find("Items")
	if items == nil {
		return nil, &ParseError{Msg: "FindItem response carries no Items element"}
	}
	var ids []ItemID
	for _, el := range items.Elements() {
		idNode := el.Find("ItemId")
		if idNode == nil {
			return nil, &ParseError{Msg: fmt.Sprintf("%v item carries no ItemId", el.Name().Local)}
		}
		id, err := itemIDFromNode(idNode)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (c *Client) updateItem(ctx context.Context, id ItemID, resolution ConflictResolution, disposition MessageDisposition, updates []Update) (ItemID, error) {
	if !id.Valid() {
		return ItemID{}, fmt.Errorf("ews: empty item id")
	}
	if len(updates) == 0 {
		return ItemID{}, fmt.Errorf("ews: no updates given")
	}

	change := internal.ItemChange{ItemID: id.element()}
	for _, u := range updates {
		n, err := u.node()
		if err != nil {
			return ItemID{}, err
		}
		change.Updates.Fields = append(change.Updates.Fields, n)
	}

	op := &internal.UpdateItem{
		ConflictResolution: string(resolution),
		MessageDisposition: string(disposition),
		ItemChanges:        internal.ItemChanges{Changes: []internal.ItemChange{change}},
	}

	msg, err := c.call(ctx, internal.Body{UpdateItem: op}, "UpdateItemResponseMessage")
	if err != nil {
		return ItemID{}, err
	}

	idNode := msg.Find("ItemId")
	if idNode == nil {
		return ItemID{}, &ParseError{Msg: "UpdateItem response carries no ItemId"}
	}
	return itemIDFromNode(idNode)
}

// UpdateItem applies field changes to an item and returns its identifier
// with the new change key. The change key in id should be current; how a
// stale key is handled depends on the conflict resolution mode.
func (c *Client) UpdateItem(ctx context.Context, id ItemID, resolution ConflictResolution, updates ...Update) (ItemID, error) {
	return c.updateItem(ctx, id, resolution, "", updates)
}

// UpdateMessage is UpdateItem for message items, which additionally need a
// disposition saying what happens to the updated message.
func (c *Client) UpdateMessage(ctx context.Context, id ItemID, resolution ConflictResolution, disposition MessageDisposition, updates ...Update) (ItemID, error) {
	if disposition == "" {
		return ItemID{}, fmt.Errorf("ews: message items require a message disposition")
	}
	return c.updateItem(ctx, id, resolution, disposition, updates)
}

// DeleteItem deletes an item.
func (c *Client) DeleteItem(ctx context.Context, id ItemID, deleteType DeleteType) error {
	return c.deleteItem(ctx, id, deleteType, "")
}

// DeleteTask deletes a task. For recurring tasks, occurrences says whether
// the whole series or only the current occurrence goes away.
func (c *Client) DeleteTask(ctx context.Context, id ItemID, deleteType DeleteType, occurrences AffectedTaskOccurrences) error {
	return c.deleteItem(ctx, id, deleteType, occurrences)
}

func (c *Client) deleteItem(ctx context.Context, id ItemID, deleteType DeleteType, occurrences AffectedTaskOccurrences) error {
	if !id.Valid() {
		return fmt.Errorf("ews: empty item id")
	}
	op := &internal.DeleteItem{
		DeleteType:              string(deleteType),
		AffectedTaskOccurrences: string(occurrences),
		ItemIDs:                 internal.ItemIDs{IDs: []internal.ItemIDElement{id.element()}},
	}
	_, err := c.call(ctx, internal.Body{DeleteItem: op}, "DeleteItemResponseMessage")
	return err
}

// CreateAttachment attaches a file to an existing item. Attaching modifies
// the parent item, so its change key advances; the fresh key comes back as
// the returned identifier's RootItemChangeKey and must be used for further
// updates of the parent.
func (c *Client) CreateAttachment(ctx context.Context, parent ItemID, att *FileAttachment) (AttachmentID, error) {
	if !parent.Valid() {
		return AttachmentID{}, fmt.Errorf("ews: empty item id")
	}
	op := &internal.CreateAttachment{
		ParentItemID: internal.ParentItemID{ID: parent.ID, ChangeKey: parent.ChangeKey},
		Attachments:  internal.AttachmentArr{FileAttachments: []internal.FileAttachmentElement{att.element()}},
	}

	msg, err := c.call(ctx, internal.Body{CreateAttachment: op}, "CreateAttachmentResponseMessage")
	if err != nil {
		return AttachmentID{}, err
	}

	idNode := msg.Find("AttachmentId")
	if idNode == nil {
		return AttachmentID{}, &ParseError{Msg: "CreateAttachment response carries no AttachmentId"}
	}
	return attachmentIDFromNode(idNode)
}

// GetAttachment fetches an attachment, including its content.
func (c *Client) GetAttachment(ctx context.Context, id AttachmentID) (*FileAttachment, error) {
	op := &internal.GetAttachment{
		AttachmentIDs: internal.AttachmentIDs{IDs: []internal.AttachmentIDElement{id.element()}},
	}

	msg, err := c.call(ctx, internal.Body{GetAttachment: op}, "GetAttachmentResponseMessage")
	if err != nil {
		return nil, err
	}

	attNode := msg.Find("FileAttachment")
	if attNode == nil {
		return nil, &ParseError{Msg: "GetAttachment response carries no FileAttachment"}
	}
	att, _, err := fileAttachmentFromNode(attNode)
	return att, err
}

// DeleteAttachment removes an attachment from its parent item. Removing an
// attachment modifies the parent, so its change key advances; the parent's
// identifier with the fresh key is returned.
func (c *Client) DeleteAttachment(ctx context.Context, id AttachmentID) (ItemID, error) {
	op := &internal.DeleteAttachment{
		AttachmentIDs: internal.AttachmentIDs{IDs: []internal.AttachmentIDElement{id.element()}},
	}
	msg, err := c.call(ctx, internal.Body{DeleteAttachment: op}, "DeleteAttachmentResponseMessage")
	if err != nil {
		return ItemID{}, err
	}

	// The root item id element names its attributes after itself, unlike
	// t:ItemId.
	idNode := msg.Find("RootItemId")
	if idNode == nil {
		return ItemID{}, &ParseError{Msg: "DeleteAttachment response carries no RootItemId"}
	}
	rootID, ok := idNode.Attr("RootItemId")
	if !ok {
		return ItemID{}, &ParseError{Msg: "RootItemId element is missing the RootItemId attribute"}
	}
	rootCK, _ := idNode.Attr("RootItemChangeKey")
	return ItemID{ID: rootID, ChangeKey: rootCK}, nil
}
