package internal

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// HTTPClient performs HTTP requests. It's implemented by *http.Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client sends SOAP requests to a single EWS endpoint. It holds only
// immutable session configuration; every call allocates its own request and
// response state, so a Client is safe for concurrent use.
type Client struct {
	http     HTTPClient
	endpoint *url.URL
}

func NewClient(c HTTPClient, endpoint string) (*Client, error) {
	if c == nil {
		c = &http.Client{Timeout: 30 * time.Second}
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, err
	}
	return &Client{http: c, endpoint: u}, nil
}

// Endpoint returns the configured EWS endpoint URL.
func (c *Client) Endpoint() string {
	return c.endpoint.String()
}

// NewSOAPRequest serializes the envelope and builds a POST request for it.
func (c *Client) NewSOAPRequest(ctx context.Context, env *Envelope) (*http.Request, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	if err := xml.NewEncoder(&buf).Encode(env); err != nil {
		return nil, fmt.Errorf("ews: encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint.String(), &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	return req, nil
}

// DoSOAP performs the request and returns the HTTP status code together with
// the raw response body. The body is read in full only for the two statuses
// that carry a SOAP payload (200 and 500); for anything else it is discarded
// unread, since it need not be well-formed. A failure of the transport call
// itself is returned as an error with a zero status code.
func (c *Client) DoSOAP(req *http.Request) (int, []byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusInternalServerError:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return resp.StatusCode, nil, fmt.Errorf("ews: reading response body: %w", err)
		}
		return resp.StatusCode, body, nil
	default:
		io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil, nil
	}
}
