package ews

import (
	"encoding/xml"
	"testing"

	"github.com/ewsclient/go-ews/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseNode(t *testing.T, s string) *internal.Node {
	t.Helper()
	var n internal.Node
	require.NoError(t, xml.Unmarshal([]byte(s), &n))
	return &n
}

func TestParseResponseClass(t *testing.T) {
	tests := []struct {
		in   string
		want ResponseClass
	}{
		{"Success", ResponseClassSuccess},
		{"Warning", ResponseClassWarning},
		{"Error", ResponseClassError},
		// Anything unrecognized is success: the attribute is advisory.
		{"", ResponseClassSuccess},
		{"error", ResponseClassSuccess},
		{"Fatal", ResponseClassSuccess},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, parseResponseClass(tc.in), "parseResponseClass(%q)", tc.in)
	}
}

func TestCheckResponseMessage(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		msg := parseNode(t, `<GetItemResponseMessage ResponseClass="Success">
			<ResponseCode>NoError</ResponseCode>
		</GetItemResponseMessage>`)
		assert.NoError(t, checkResponseMessage(msg))
	})

	t.Run("error with message text", func(t *testing.T) {
		msg := parseNode(t, `<GetItemResponseMessage ResponseClass="Error">
			<MessageText>The specified object was not found in the store.</MessageText>
			<ResponseCode>ErrorItemNotFound</ResponseCode>
		</GetItemResponseMessage>`)
		err := checkResponseMessage(msg)
		require.Error(t, err)

		var respErr *ResponseError
		require.ErrorAs(t, err, &respErr)
		assert.Equal(t, ResponseClassError, respErr.Class)
		assert.Equal(t, ErrorItemNotFound, respErr.Code)
		assert.Equal(t, "The specified object was not found in the store.", respErr.MessageText)
		assert.True(t, IsResponseCode(err, ErrorItemNotFound))
		assert.False(t, IsResponseCode(err, ErrorInvalidChangeKey))
	})

	t.Run("warning", func(t *testing.T) {
		msg := parseNode(t, `<UpdateItemResponseMessage ResponseClass="Warning">
			<ResponseCode>ErrorBatchProcessingStopped</ResponseCode>
		</UpdateItemResponseMessage>`)
		err := checkResponseMessage(msg)
		require.Error(t, err)

		var respErr *ResponseError
		require.ErrorAs(t, err, &respErr)
		assert.Equal(t, ResponseClassWarning, respErr.Class)
	})

	t.Run("unknown response code is rejected", func(t *testing.T) {
		msg := parseNode(t, `<GetItemResponseMessage ResponseClass="Error">
			<ResponseCode>ThisDoesNotExist</ResponseCode>
		</GetItemResponseMessage>`)
		err := checkResponseMessage(msg)
		var unknownErr *UnknownResponseCodeError
		require.ErrorAs(t, err, &unknownErr)
		assert.Equal(t, "ThisDoesNotExist", unknownErr.Value)
	})

	t.Run("missing response code is malformed", func(t *testing.T) {
		msg := parseNode(t, `<GetItemResponseMessage ResponseClass="Error"></GetItemResponseMessage>`)
		err := checkResponseMessage(msg)
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
	})
}

func TestResponseItems(t *testing.T) {
	msg := parseNode(t, `<FindItemResponseMessage ResponseClass="Success">
		<ResponseCode>NoError</ResponseCode>
		<RootFolder>
			<Items>
				<Task><Subject>first</Subject></Task>
				<Task><Subject>second</Subject></Task>
				<Task><Subject>third</Subject></Task>
			</Items>
		</RootFolder>
	</FindItemResponseMessage>`)

	items, err := responseItems(msg, "Task")
	require.NoError(t, err)
	require.Len(t, items, 3)

	// Document order must survive extraction.
	for i, want := range []string{"first", "second", "third"} {
		assert.Equal(t, want, items[i].Prop("Subject"))
	}
}

func TestResponseItemsMismatch(t *testing.T) {
	msg := parseNode(t, `<GetItemResponseMessage ResponseClass="Success">
		<Items>
			<Contact><Surname>Smith</Surname></Contact>
		</Items>
	</GetItemResponseMessage>`)

	_, err := responseItems(msg, "Task")
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)

	_, err = singleResponseItem(msg, "Contact")
	require.NoError(t, err)
}
