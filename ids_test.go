package ews

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Rendering an identifier and parsing it back must preserve both parts
// byte-for-byte; identifiers are opaque and case-sensitive.
func TestItemIDRoundTrip(t *testing.T) {
	for _, id := range []ItemID{
		{ID: "AAA=", ChangeKey: "BBB="},
		{ID: "aAbB/+=="},
		{ID: "abcde", ChangeKey: "edcba"},
	} {
		b, err := xml.Marshal(id.element())
		require.NoError(t, err)

		got, err := itemIDFromNode(parseNode(t, string(b)))
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}
}

func TestItemIDFromNode(t *testing.T) {
	n := parseNode(t, `<ItemId Id="AAA=" ChangeKey="BBB="/>`)
	id, err := itemIDFromNode(n)
	require.NoError(t, err)
	assert.Equal(t, ItemID{ID: "AAA=", ChangeKey: "BBB="}, id)
	assert.True(t, id.Valid())
}

func TestItemIDFromNodeWithoutChangeKey(t *testing.T) {
	n := parseNode(t, `<ItemId Id="AAA="/>`)
	id, err := itemIDFromNode(n)
	require.NoError(t, err)
	assert.Equal(t, ItemID{ID: "AAA="}, id)
}

func TestItemIDFromNodeMissingID(t *testing.T) {
	n := parseNode(t, `<ItemId ChangeKey="BBB="/>`)
	_, err := itemIDFromNode(n)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestAttachmentIDFromNode(t *testing.T) {
	n := parseNode(t, `<AttachmentId Id="ATT=" RootItemId="AAA="/>`)
	id, err := attachmentIDFromNode(n)
	require.NoError(t, err)
	assert.Equal(t, AttachmentID{ID: "ATT=", RootItemID: "AAA="}, id)
}

func TestFolderIDRef(t *testing.T) {
	ref := NewDistinguishedFolderID(FolderTasks).ref()
	require.NotNil(t, ref.Distinguished)
	assert.Equal(t, "tasks", ref.Distinguished.ID)
	assert.Nil(t, ref.Folder)

	ref = NewFolderID("FFF=", "CK=").ref()
	require.NotNil(t, ref.Folder)
	assert.Equal(t, "FFF=", ref.Folder.ID)
	assert.Equal(t, "CK=", ref.Folder.ChangeKey)
	assert.Nil(t, ref.Distinguished)

	assert.False(t, FolderID{}.Valid())
	assert.True(t, NewDistinguishedFolderID(FolderInbox).Valid())
}
