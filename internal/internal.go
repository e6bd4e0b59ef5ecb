// Package internal provides low-level helpers for EWS clients.
package internal

// XML namespaces used by Exchange Web Services. They are defined in
// MS-OXWSCDATA and shared by every schema version.
const (
	NamespaceSOAP     = "http://schemas.xmlsoap.org/soap/envelope/"
	NamespaceTypes    = "http://schemas.microsoft.com/exchange/services/2006/types"
	NamespaceMessages = "http://schemas.microsoft.com/exchange/services/2006/messages"
	NamespaceErrors   = "http://schemas.microsoft.com/exchange/services/2006/errors"
	NamespaceXSI      = "http://www.w3.org/2001/XMLSchema-instance"
	NamespaceXSD      = "http://www.w3.org/2001/XMLSchema"
)
