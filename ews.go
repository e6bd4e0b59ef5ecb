// Package ews provides a client for Microsoft Exchange Web Services.
//
// EWS is a SOAP/XML protocol over HTTP POST, defined by the MS-OXWS*
// specification family. The client covers item operations (create, get,
// find, update, delete) for tasks, contacts and messages, plus file
// attachments. Every call is synchronous and independent; the client holds
// only immutable session configuration and is safe for concurrent use.
package ews

import (
	"fmt"
	"net/http"

	"github.com/ewsclient/go-ews/internal"
)

// HTTPClient performs HTTP requests. It's implemented by *http.Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client provides access to a remote EWS endpoint.
type Client struct {
	ic *internal.Client

	// Version is sent as the RequestServerVersion SOAP header. Setting it
	// to the empty string omits the header.
	Version ServerVersion
}

// NewClient creates a client for the given endpoint, typically
// https://host/EWS/Exchange.asmx. If c is nil, an http.Client with a 30
// second timeout is used. Authentication is the transport's concern: wrap c
// with HTTPClientWithNTLMAuth or one of its siblings, or supply a client
// whose transport injects credentials. TLS verification policy likewise
// belongs to the supplied transport.
func NewClient(c HTTPClient, endpoint string) (*Client, error) {
	ic, err := internal.NewClient(c, endpoint)
	if err != nil {
		return nil, err
	}
	return &Client{ic: ic, Version: ExchangeVersion2013SP1}, nil
}

// NewNTLMClient creates a client authenticating with NTLM credentials, the
// usual setup for an on-premises Exchange server.
func NewNTLMClient(endpoint, domain, username, password string) (*Client, error) {
	return NewClient(HTTPClientWithNTLMAuth(nil, domain, username, password), endpoint)
}

// Endpoint returns the configured EWS endpoint URL.
func (c *Client) Endpoint() string {
	return c.ic.Endpoint()
}

// ServerVersion selects the schema version requested from the server.
type ServerVersion string

const (
	ExchangeVersion2007    ServerVersion = "Exchange2007"
	ExchangeVersion2007SP1 ServerVersion = "Exchange2007_SP1"
	ExchangeVersion2010    ServerVersion = "Exchange2010"
	ExchangeVersion2010SP1 ServerVersion = "Exchange2010_SP1"
	ExchangeVersion2010SP2 ServerVersion = "Exchange2010_SP2"
	ExchangeVersion2013    ServerVersion = "Exchange2013"
	ExchangeVersion2013SP1 ServerVersion = "Exchange2013_SP1"
)

var serverVersions = map[ServerVersion]bool{
	ExchangeVersion2007:    true,
	ExchangeVersion2007SP1: true,
	ExchangeVersion2010:    true,
	ExchangeVersion2010SP1: true,
	ExchangeVersion2010SP2: true,
	ExchangeVersion2013:    true,
	ExchangeVersion2013SP1: true,
}

// ParseServerVersion maps a version token to a ServerVersion. Unrecognized
// tokens are rejected, never coerced to a default.
func ParseServerVersion(s string) (ServerVersion, error) {
	v := ServerVersion(s)
	if !serverVersions[v] {
		return "", fmt.Errorf("ews: invalid server version %q", s)
	}
	return v, nil
}

// BaseShape controls how much of an item a GetItem or FindItem call returns.
type BaseShape string

const (
	BaseShapeIDOnly        BaseShape = "IdOnly"
	BaseShapeDefault       BaseShape = "Default"
	BaseShapeAllProperties BaseShape = "AllProperties"
)

// MessageDisposition says what to do with a message item on create or
// update. It is required for message items and meaningless for others.
type MessageDisposition string

const (
	SaveOnly        MessageDisposition = "SaveOnly"
	SendOnly        MessageDisposition = "SendOnly"
	SendAndSaveCopy MessageDisposition = "SendAndSaveCopy"
)

// ConflictResolution controls UpdateItem behavior when the change key is
// stale.
type ConflictResolution string

const (
	NeverOverwrite  ConflictResolution = "NeverOverwrite"
	AutoResolve     ConflictResolution = "AutoResolve"
	AlwaysOverwrite ConflictResolution = "AlwaysOverwrite"
)

// DeleteType controls whether DeleteItem destroys the item or moves it.
type DeleteType string

const (
	HardDelete         DeleteType = "HardDelete"
	SoftDelete         DeleteType = "SoftDelete"
	MoveToDeletedItems DeleteType = "MoveToDeletedItems"
)

// AffectedTaskOccurrences says whether deleting a recurring task removes the
// whole series or just the current occurrence.
type AffectedTaskOccurrences string

const (
	AllOccurrences          AffectedTaskOccurrences = "AllOccurrences"
	SpecifiedOccurrenceOnly AffectedTaskOccurrences = "SpecifiedOccurrenceOnly"
)

// Traversal is fixed to Shallow for FindItem; deep traversal of soft-deleted
// items is out of scope.
const traversalShallow = "Shallow"
