package ews

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

// End-to-end over a real HTTP server: the credential wrapper must inject the
// Authorization header and the full pipeline must still parse the response.
func TestBasicAuthRoundTrip(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), "<m:GetItem>")

		w.Header().Set("Content-Type", "text/xml; charset=utf-8")
		io.WriteString(w, responseXML(getTaskResponse))
	}))
	defer srv.Close()

	c, err := NewClient(HTTPClientWithBasicAuth(nil, "kwaltz", "secret"), srv.URL)
	require.NoError(t, err)

	task, err := c.GetTask(context.Background(), ItemID{ID: "AAA="}, BaseShapeDefault)
	require.NoError(t, err)
	assert.Equal(t, "Write poem", task.Subject())

	require.True(t, strings.HasPrefix(gotAuth, "Basic "), "Authorization = %q", gotAuth)
}

// Wrapping a caller-supplied client must not touch it: the negotiating
// transport goes on an internal copy.
func TestNTLMAuthLeavesClientUntouched(t *testing.T) {
	base := &http.Client{}
	HTTPClientWithNTLMAuth(base, "CORP", "kwaltz", "secret")
	assert.Nil(t, base.Transport)
}

func TestBearerAuthRoundTrip(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		io.WriteString(w, responseXML(getTaskResponse))
	}))
	defer srv.Close()

	tokens := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "tok123", TokenType: "Bearer"})
	c, err := NewClient(HTTPClientWithBearerAuth(nil, tokens), srv.URL)
	require.NoError(t, err)

	_, err = c.GetTask(context.Background(), ItemID{ID: "AAA="}, BaseShapeDefault)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok123", gotAuth)
}
