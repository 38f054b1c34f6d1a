//
// Copyright (c) 2026 the cassandra-go-sdk authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 as shown at
//  https://www.apache.org/licenses/LICENSE-2.0
//

// Package cqlerr defines types and error code constants that represent errors
// which may be returned by the CQL client driver.
package cqlerr

import (
	"fmt"
)

// Error represents an error that wraps the error code, error message and an
// optional cause of the error.
//
// This implements the error interface.
type Error struct {
	// Code specifies the error code.
	Code ErrorCode `json:"code"`

	// Message specifies the description of error.
	Message string `json:"message"`

	// Cause optionally specifies the cause of error.
	Cause error `json:"cause,omitempty"`
}

// New creates an error with the specified error code and message.
func New(code ErrorCode, msgFmt string, msgArgs ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(msgFmt, msgArgs...),
	}
}

// NewWithCause creates an error with the specified error code, message and the
// cause of error.
func NewWithCause(code ErrorCode, cause error, msgFmt string, msgArgs ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(msgFmt, msgArgs...),
		Cause:   cause,
	}
}

// Error returns a descriptive message for the error.
func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("[%s]: %s", e.Code.String(), e.Message)
	}

	return fmt.Sprintf("[%s]: %s. Caused by:\n\t%s", e.Code.String(), e.Message, e.Cause.Error())
}

// Unwrap returns the cause of the error, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Retryable returns whether the error is subject to the retry policy.
//
// A retryable error does not mean the request will be retried: the retry
// policy still decides based on statement idempotence, the attempt count and
// the node that produced the error. A non-retryable error is fatal and is
// surfaced to the application without consulting any policy.
func (e *Error) Retryable() bool {
	return retryableErrors[e.Code]
}

// Retryable returns whether the specified error is subject to the retry
// policy. Errors that are not Error values are transport failures of unknown
// shape and are treated as fatal.
func Retryable(err error) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	return e.Retryable()
}

// retryableErrors represents a map whose keys are the error codes of
// pre-defined errors that are subject to the retry policy. This is used as a
// fast lookup table. User-generated errors and the overall deadline are
// absent: they are never fed into a retry decision.
var retryableErrors = map[ErrorCode]bool{
	ReadTimeout:      true,
	WriteTimeout:     true,
	Unavailable:      true,
	Overloaded:       true,
	ConnectionClosed: true,
	RequestTimeout:   true,
	ServerError:      true,
	TruncateError:    true,
	ReadFailure:      true,
	WriteFailure:     true,
	FunctionFailure:  true,
}

// NewIllegalArgument creates an IllegalArgument error with the specified message.
func NewIllegalArgument(msgFmt string, msgArgs ...interface{}) *Error {
	return New(IllegalArgument, msgFmt, msgArgs...)
}

// NewIllegalState creates an IllegalState error with the specified message.
func NewIllegalState(msgFmt string, msgArgs ...interface{}) *Error {
	return New(IllegalState, msgFmt, msgArgs...)
}

// NewRequestTimeout creates a RequestTimeout error with the specified message.
func NewRequestTimeout(msgFmt string, msgArgs ...interface{}) *Error {
	return New(RequestTimeout, msgFmt, msgArgs...)
}

// Is checks if the specified error is an Error value and the error code
// matches any of the expected error codes if specified.
func Is(err error, expectedCodes ...ErrorCode) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}

	if len(expectedCodes) == 0 {
		return true
	}

	for _, code := range expectedCodes {
		if e.Code == code {
			return true
		}
	}

	return false
}

// IsIllegalArgument returns true if the specified error is an IllegalArgument
// error, otherwise returns false.
func IsIllegalArgument(err error) bool {
	return Is(err, IllegalArgument)
}

// IsIllegalState returns true if the specified error is an IllegalState error,
// otherwise returns false.
func IsIllegalState(err error) bool {
	return Is(err, IllegalState)
}

// IsTimeout returns true if the specified error is a per-attempt or overall
// timeout error, otherwise returns false.
func IsTimeout(err error) bool {
	return Is(err, RequestTimeout, OverallTimeout)
}

// IsNodeError returns true if the specified error was produced by the failure
// of a single node or of the connection to it.
func IsNodeError(err error) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	return e.Code >= ReadTimeout && e.Code < ServerError
}

// IsServerError returns true if the specified error is a query execution
// failure reported by the coordinator.
func IsServerError(err error) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	return e.Code >= ServerError
}

// ErrorCode represents the error code.
// Error codes are divided into categories as follows:
//
// 1. Error codes for user-generated errors, range from 1 to 50 (exclusive).
// These include illegal arguments, malformed statements, stale paging state
// and misuse of the paging API. They are never retried and, for validation
// and usage errors, never sent to the server.
//
// 2. Error codes for node and network failures, range from 50 to 100
// (exclusive). These are subject to the retry policy.
//
// 3. Error codes for failures reported by the coordinator during query
// execution, beginning from 100. Only a narrow, configurable allow-list of
// these is eligible for retry; the rest are rethrown.
type ErrorCode int

const (
	// NoError represents there is no error.
	NoError ErrorCode = iota // 0

	// IllegalArgument error represents the application provided an illegal
	// argument for the operation, such as a bound-value list whose length
	// does not match the statement's placeholder count.
	IllegalArgument // 1

	// IllegalState error represents a misuse of the driver API, such as
	// fetching the next page of a result set that has no more pages.
	// No network request is made for operations failing with this error.
	IllegalState // 2

	// SyntaxError error represents the statement could not be parsed by the
	// server.
	SyntaxError // 3

	// Unauthorized error represents the authenticated user is not permitted
	// to perform the operation.
	Unauthorized // 4

	// InvalidQuery error represents the statement is syntactically correct
	// but invalid, for example it references an unknown table.
	InvalidQuery // 5

	// InvalidPagingState error represents the paging state token attached to
	// the statement is stale or malformed. This is always fatal to the fetch
	// that used it.
	InvalidPagingState // 6
)

const (
	// ReadTimeout error represents the coordinator timed out waiting for
	// replica reads.
	ReadTimeout ErrorCode = iota + 50 // 50

	// WriteTimeout error represents the coordinator timed out waiting for
	// replica writes. Retrying a non-idempotent statement on this error
	// risks a duplicate mutation.
	WriteTimeout // 51

	// Unavailable error represents the coordinator did not find enough live
	// replicas to satisfy the requested consistency level.
	Unavailable // 52

	// Overloaded error represents the coordinator shed the request because
	// it is overloaded.
	Overloaded // 53

	// ConnectionClosed error represents the connection to the node was
	// closed before a response was received. Whether the request executed
	// is unknown.
	ConnectionClosed // 54

	// RequestTimeout error represents a single attempt did not complete
	// within its per-attempt timeout. It is fed into the retry decision
	// path like any other node error.
	RequestTimeout // 55

	// OverallTimeout error represents the overall execution deadline for the
	// statement elapsed. It pre-empts any in-flight retries and attempts.
	OverallTimeout // 56
)

const (
	// ServerError represents an internal failure reported by the coordinator
	// while executing the statement.
	ServerError ErrorCode = iota + 100 // 100

	// TruncateError represents an error during a truncation operation.
	TruncateError // 101

	// ReadFailure represents a non-timeout failure of replica reads.
	ReadFailure // 102

	// WriteFailure represents a non-timeout failure of replica writes.
	WriteFailure // 103

	// FunctionFailure represents a user-defined function failed during
	// execution.
	FunctionFailure // 104
)

// String returns a string representation for the error code.
//
// This implements the fmt.Stringer interface.
func (code ErrorCode) String() string {
	switch code {
	case NoError:
		return "NoError"
	case IllegalArgument:
		return "IllegalArgument"
	case IllegalState:
		return "IllegalState"
	case SyntaxError:
		return "SyntaxError"
	case Unauthorized:
		return "Unauthorized"
	case InvalidQuery:
		return "InvalidQuery"
	case InvalidPagingState:
		return "InvalidPagingState"
	case ReadTimeout:
		return "ReadTimeout"
	case WriteTimeout:
		return "WriteTimeout"
	case Unavailable:
		return "Unavailable"
	case Overloaded:
		return "Overloaded"
	case ConnectionClosed:
		return "ConnectionClosed"
	case RequestTimeout:
		return "RequestTimeout"
	case OverallTimeout:
		return "OverallTimeout"
	case ServerError:
		return "ServerError"
	case TruncateError:
		return "TruncateError"
	case ReadFailure:
		return "ReadFailure"
	case WriteFailure:
		return "WriteFailure"
	case FunctionFailure:
		return "FunctionFailure"
	default:
		return fmt.Sprintf("ErrorCode(%d)", int(code))
	}
}
