package ews

import (
	"errors"
	"fmt"
)

// HTTPError is returned when the transport call fails or the server answers
// with a status that carries no SOAP payload (anything but 200 and 500). A
// zero Code means the request never produced a response.
type HTTPError struct {
	Code int
	Err  error
}

func (e *HTTPError) Error() string {
	if e.Code == 0 {
		return fmt.Sprintf("ews: HTTP request failed: %v", e.Err)
	}
	return fmt.Sprintf("ews: HTTP request failed with status %v", e.Code)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// SOAPFault is returned when the server rejects a request before running any
// business logic (HTTP 500). For schema validation faults the offending
// location in the request document is included.
type SOAPFault struct {
	FaultCode   string
	FaultString string

	// ResponseCode is the error-namespace code string, e.g.
	// "ErrorSchemaValidation". Empty for faults without a detail block.
	ResponseCode string
	Message      string

	LineNumber   int
	LinePosition int
	Violation    string
}

func (e *SOAPFault) Error() string {
	if e.ResponseCode == "ErrorSchemaValidation" {
		return fmt.Sprintf("ews: schema validation fault at line %d, position %d: %v",
			e.LineNumber, e.LinePosition, e.Violation)
	}
	return fmt.Sprintf("ews: SOAP fault: %v", e.FaultString)
}

// ResponseError is a protocol-level failure: the response message carried a
// Warning or Error class. It is semantically recoverable by the caller, for
// example by refreshing a stale change key and retrying.
type ResponseError struct {
	Class ResponseClass
	Code  ResponseCode

	// MessageText is the server's human-readable description, when present.
	MessageText string
}

func (e *ResponseError) Error() string {
	if e.MessageText != "" {
		return fmt.Sprintf("ews: %v: %v", e.Code, e.MessageText)
	}
	return fmt.Sprintf("ews: request failed with %v", e.Code)
}

// IsResponseCode reports whether err is a ResponseError carrying the given
// code.
func IsResponseCode(err error, code ResponseCode) bool {
	var respErr *ResponseError
	return errors.As(err, &respErr) && respErr.Code == code
}

// ParseError is returned when a response body is not well-formed XML, or an
// element or attribute the protocol guarantees is absent. It signals a
// library/server mismatch and is never silently defaulted.
type ParseError struct {
	Msg string
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ews: malformed response: %v: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("ews: malformed response: %v", e.Msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// UnknownResponseCodeError is returned when a response code string does not
// match any known enumeration value: either a library defect or server
// schema skew, so it always surfaces.
type UnknownResponseCodeError struct {
	Value string
}

func (e *UnknownResponseCodeError) Error() string {
	return fmt.Sprintf("ews: unrecognized response code %q", e.Value)
}
