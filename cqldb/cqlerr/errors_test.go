//
// Copyright (c) 2026 the cassandra-go-sdk authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 as shown at
//  https://www.apache.org/licenses/LICENSE-2.0
//

package cqlerr

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

// ErrorsTestSuite contains tests for the driver errors.
type ErrorsTestSuite struct {
	suite.Suite
}

func (suite *ErrorsTestSuite) TestNewErrors() {
	var e, cause *Error
	var msg, msgOfCause string

	e = NewIllegalArgument("illegal arguments: %v", "Arg1")
	suite.Equalf(IllegalArgument, e.Code, "unexpected error code")
	suite.Equalf("illegal arguments: Arg1", e.Message, "unexpected error message")
	suite.Falsef(e.Retryable(), "IllegalArgument error should not be retryable")

	e = NewIllegalState("illegal state: %v", "Unknown")
	suite.Equalf(IllegalState, e.Code, "unexpected error code")
	suite.Equalf("illegal state: Unknown", e.Message, "unexpected error message")
	suite.Falsef(e.Retryable(), "IllegalState error should not be retryable")

	timeout := 5 * time.Second
	e = NewRequestTimeout("attempt timed out after %v", timeout)
	suite.Equalf(RequestTimeout, e.Code, "unexpected error code")
	suite.Equalf("attempt timed out after 5s", e.Message, "unexpected error message")
	suite.Truef(e.Retryable(), "RequestTimeout error should be retryable")

	msg = "not enough live replicas for LOCAL_QUORUM"
	e = New(Unavailable, msg)
	suite.Equalf(Unavailable, e.Code, "unexpected error code")
	suite.Equalf(msg, e.Message, "unexpected error message")
	suite.Truef(e.Retryable(), "Unavailable error should be retryable")

	msgOfCause = "connection reset by peer"
	cause = New(ConnectionClosed, msgOfCause)
	msg = "cannot obtain a connection to 10.0.0.1:9042"
	e = NewWithCause(ConnectionClosed, cause, msg)
	suite.Equalf(ConnectionClosed, e.Code, "unexpected error code")
	suite.Containsf(e.Error(), msgOfCause, "unexpected error description")
	suite.Containsf(e.Error(), msg, "unexpected error description")
	suite.ErrorIsf(e, e, "an error should match itself")
	suite.Equalf(cause, errors.Unwrap(e), "Unwrap should return the cause")
}

func (suite *ErrorsTestSuite) TestIsErrors() {
	e1 := NewIllegalArgument("illegal arguments: Arg1")
	e2 := NewIllegalState("illegal state: Unknown")
	e3 := NewRequestTimeout("attempt timed out after 5s")
	e4 := New(OverallTimeout, "statement did not complete within 10s")
	e5 := New(ReadTimeout, "replica reads timed out")
	e6 := New(ServerError, "internal failure")

	errs := [...]*Error{e1, e2, e3, e4, e5, e6}
	for _, e := range errs {
		suite.Equalf(e == e1, IsIllegalArgument(e), "IsIllegalArgument(err=%v)", e)
		suite.Equalf(e == e2, IsIllegalState(e), "IsIllegalState(err=%v)", e)
		suite.Equalf(e == e3 || e == e4, IsTimeout(e), "IsTimeout(err=%v)", e)
		suite.Equalf(e == e3 || e == e4 || e == e5, IsNodeError(e), "IsNodeError(err=%v)", e)
		suite.Equalf(e == e6, IsServerError(e), "IsServerError(err=%v)", e)
	}

	suite.Truef(Is(e5), "Is() without codes should match any Error value")
	suite.Truef(Is(e5, ReadTimeout, WriteTimeout), "Is() should match one of the codes")
	suite.Falsef(Is(e5, WriteTimeout), "Is() should not match a different code")
	suite.Falsef(Is(errors.New("plain"), ReadTimeout), "Is() should not match a plain error")
	suite.Falsef(IsNodeError(errors.New("plain")), "IsNodeError() should not match a plain error")
	suite.Falsef(IsServerError(errors.New("plain")), "IsServerError() should not match a plain error")
}

func (suite *ErrorsTestSuite) TestRetryable() {
	retryable := []ErrorCode{
		ReadTimeout, WriteTimeout, Unavailable, Overloaded, ConnectionClosed,
		RequestTimeout, ServerError, TruncateError, ReadFailure, WriteFailure,
		FunctionFailure,
	}
	for _, code := range retryable {
		suite.Truef(Retryable(New(code, "test")), "%s error should be retryable", code)
	}

	fatal := []ErrorCode{
		NoError, IllegalArgument, IllegalState, SyntaxError, Unauthorized,
		InvalidQuery, InvalidPagingState, OverallTimeout,
	}
	for _, code := range fatal {
		suite.Falsef(Retryable(New(code, "test")), "%s error should not be retryable", code)
	}

	suite.Falsef(Retryable(errors.New("plain")), "a plain error should not be retryable")
}

func (suite *ErrorsTestSuite) TestErrorCodeString() {
	tests := []struct {
		code ErrorCode
		want string
	}{
		{IllegalArgument, "IllegalArgument"},
		{InvalidPagingState, "InvalidPagingState"},
		{ReadTimeout, "ReadTimeout"},
		{OverallTimeout, "OverallTimeout"},
		{FunctionFailure, "FunctionFailure"},
		{ErrorCode(9999), "ErrorCode(9999)"},
	}

	for _, r := range tests {
		suite.Equalf(r.want, r.code.String(), "unexpected string for code %d", int(r.code))
	}
}

func TestErrors(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}
