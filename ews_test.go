package ews

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientDefaults(t *testing.T) {
	c, err := NewClient(nil, "https://example.com/EWS/Exchange.asmx")
	require.NoError(t, err)
	assert.Equal(t, ExchangeVersion2013SP1, c.Version)
	assert.Equal(t, "https://example.com/EWS/Exchange.asmx", c.Endpoint())
}

func TestParseServerVersion(t *testing.T) {
	v, err := ParseServerVersion("Exchange2010_SP2")
	require.NoError(t, err)
	assert.Equal(t, ExchangeVersion2010SP2, v)

	for _, s := range []string{"", "Exchange2016", "exchange2013"} {
		_, err := ParseServerVersion(s)
		require.Error(t, err, "%q should be rejected", s)
	}
}
