package ews

import (
	"context"
	"net/http"
	"time"

	"github.com/Azure/go-ntlmssp"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

type basicAuthHTTPClient struct {
	c                  HTTPClient
	username, password string
}

func (c *basicAuthHTTPClient) Do(req *http.Request) (*http.Response, error) {
	req.SetBasicAuth(c.username, c.password)
	return c.c.Do(req)
}

// HTTPClientWithBasicAuth returns an HTTP client that sends credentials with
// each request. If c is nil, an http.Client with a 30 second timeout is used.
func HTTPClientWithBasicAuth(c HTTPClient, username, password string) HTTPClient {
	if c == nil {
		c = &http.Client{Timeout: 30 * time.Second}
	}
	return &basicAuthHTTPClient{c: c, username: username, password: password}
}

// HTTPClientWithNTLMAuth returns an HTTP client that performs the NTLM
// handshake with domain credentials, the scheme on-premises Exchange servers
// usually require. If c is nil or has no transport, http.DefaultTransport is
// wrapped. The given client is left untouched; the negotiating transport is
// installed on a copy.
func HTTPClientWithNTLMAuth(c *http.Client, domain, username, password string) HTTPClient {
	if c == nil {
		c = &http.Client{Timeout: 30 * time.Second}
	}
	nc := *c
	nc.Transport = ntlmssp.Negotiator{RoundTripper: c.Transport}
	if domain != "" {
		username = domain + `\` + username
	}
	return &basicAuthHTTPClient{c: &nc, username: username, password: password}
}

type bearerAuthHTTPClient struct {
	c      HTTPClient
	tokens oauth2.TokenSource
}

func (c *bearerAuthHTTPClient) Do(req *http.Request) (*http.Response, error) {
	token, err := c.tokens.Token()
	if err != nil {
		return nil, err
	}
	token.SetAuthHeader(req)
	return c.c.Do(req)
}

// HTTPClientWithBearerAuth returns an HTTP client that authorizes each
// request with a token from the given source, for example an OAuth2 token
// source or a workmail.TokenSource. If c is nil, an http.Client with a 30
// second timeout is used.
func HTTPClientWithBearerAuth(c HTTPClient, tokens oauth2.TokenSource) HTTPClient {
	if c == nil {
		c = &http.Client{Timeout: 30 * time.Second}
	}
	return &bearerAuthHTTPClient{c: c, tokens: tokens}
}

// NewOAuth2HTTPClient returns an HTTP client performing the OAuth2 client
// credentials flow against Azure AD, the scheme Exchange Online requires now
// that basic authentication is retired. The returned client caches and
// refreshes the access token as needed.
func NewOAuth2HTTPClient(ctx context.Context, clientID, tenantID, clientSecret string) HTTPClient {
	cfg := clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     "https://login.microsoftonline.com/" + tenantID + "/oauth2/v2.0/token",
		Scopes:       []string{"https://outlook.office365.com/.default"},
	}
	return cfg.Client(ctx)
}
