package ews

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponseCode(t *testing.T) {
	for _, s := range []string{"NoError", "ErrorItemNotFound", "ErrorSchemaValidation", "ErrorInvalidChangeKey"} {
		code, err := ParseResponseCode(s)
		require.NoError(t, err)
		assert.Equal(t, s, code.String())
	}
}

func TestParseResponseCodeUnknown(t *testing.T) {
	for _, s := range []string{"", "ThisDoesNotExist", "noerror", "ErrorItemNotFound "} {
		_, err := ParseResponseCode(s)
		require.Error(t, err, "%q should be rejected", s)

		var unknownErr *UnknownResponseCodeError
		require.ErrorAs(t, err, &unknownErr)
		assert.Equal(t, s, unknownErr.Value)
	}
}

func TestResponseCodesUnique(t *testing.T) {
	seen := make(map[ResponseCode]bool, len(responseCodes))
	for _, c := range responseCodes {
		assert.False(t, seen[c], "duplicate response code %q", c)
		seen[c] = true
	}
}
