package ews

import (
	"github.com/ewsclient/go-ews/internal"
)

// ItemID identifies an item in a mailbox. ID is the stable identifier, the
// ChangeKey names a specific revision and goes stale when the item is
// modified elsewhere. Both are opaque server-issued strings.
type ItemID struct {
	ID        string
	ChangeKey string
}

// Valid reports whether the identifier can address an item. The change key
// is optional for read operations.
func (id ItemID) Valid() bool {
	return id.ID != ""
}

func (id ItemID) element() internal.ItemIDElement {
	return internal.ItemIDElement{ID: id.ID, ChangeKey: id.ChangeKey}
}

// itemIDFromNode decodes a t:ItemId element. A missing Id attribute means
// the response is malformed.
func itemIDFromNode(n *internal.Node) (ItemID, error) {
	idAttr, ok := n.Attr("Id")
	if !ok {
		return ItemID{}, &ParseError{Msg: "ItemId element is missing the Id attribute"}
	}
	changeKey, _ := n.Attr("ChangeKey")
	return ItemID{ID: idAttr, ChangeKey: changeKey}, nil
}

// AttachmentID identifies an attachment. RootItemID and RootItemChangeKey
// point back at the item the attachment belongs to, when the server includes
// them; attaching advances the parent's change key, and RootItemChangeKey is
// the fresh one.
type AttachmentID struct {
	ID                string
	RootItemID        string
	RootItemChangeKey string
}

func (id AttachmentID) element() internal.AttachmentIDElement {
	return internal.AttachmentIDElement{ID: id.ID}
}

func attachmentIDFromNode(n *internal.Node) (AttachmentID, error) {
	idAttr, ok := n.Attr("Id")
	if !ok {
		return AttachmentID{}, &ParseError{Msg: "AttachmentId element is missing the Id attribute"}
	}
	rootID, _ := n.Attr("RootItemId")
	rootCK, _ := n.Attr("RootItemChangeKey")
	return AttachmentID{ID: idAttr, RootItemID: rootID, RootItemChangeKey: rootCK}, nil
}

// DistinguishedFolder names one of the well-known mailbox folders.
type DistinguishedFolder string

const (
	FolderCalendar     DistinguishedFolder = "calendar"
	FolderContacts     DistinguishedFolder = "contacts"
	FolderDeletedItems DistinguishedFolder = "deleteditems"
	FolderDrafts       DistinguishedFolder = "drafts"
	FolderInbox        DistinguishedFolder = "inbox"
	FolderJournal      DistinguishedFolder = "journal"
	FolderJunkEmail    DistinguishedFolder = "junkemail"
	FolderNotes        DistinguishedFolder = "notes"
	FolderOutbox       DistinguishedFolder = "outbox"
	FolderSentItems    DistinguishedFolder = "sentitems"
	FolderTasks        DistinguishedFolder = "tasks"
	FolderVoicemail    DistinguishedFolder = "voicemail"

	FolderRoot              DistinguishedFolder = "root"
	FolderMsgFolderRoot     DistinguishedFolder = "msgfolderroot"
	FolderPublicFoldersRoot DistinguishedFolder = "publicfoldersroot"
	FolderSearchFolders     DistinguishedFolder = "searchfolders"

	FolderArchiveRoot               DistinguishedFolder = "archiveroot"
	FolderArchiveInbox              DistinguishedFolder = "archiveinbox"
	FolderRecoverableItemsRoot      DistinguishedFolder = "recoverableitemsroot"
	FolderRecoverableItemsDeletions DistinguishedFolder = "recoverableitemsdeletions"
)

// FolderID addresses a folder either by well-known name or by an explicit
// server-issued identifier. Exactly one form is set; the zero value is not a
// valid reference. Folder identifiers only ever travel in requests, so
// there's no parse counterpart.
type FolderID struct {
	distinguished DistinguishedFolder

	id        string
	changeKey string
}

// NewDistinguishedFolderID refers to a well-known folder by name.
func NewDistinguishedFolderID(name DistinguishedFolder) FolderID {
	return FolderID{distinguished: name}
}

// NewFolderID refers to a folder by its server-issued identifier.
func NewFolderID(id, changeKey string) FolderID {
	return FolderID{id: id, changeKey: changeKey}
}

// Valid reports whether the reference addresses a folder.
func (id FolderID) Valid() bool {
	return id.distinguished != "" || id.id != ""
}

func (id FolderID) ref() *internal.FolderRef {
	if id.distinguished != "" {
		return &internal.FolderRef{
			Distinguished: &internal.DistinguishedFolderIDElement{ID: string(id.distinguished)},
		}
	}
	return &internal.FolderRef{
		Folder: &internal.FolderIDElement{ID: id.id, ChangeKey: id.changeKey},
	}
}
