//
// Copyright (c) 2026 the cassandra-go-sdk authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 as shown at
//  https://www.apache.org/licenses/LICENSE-2.0
//

package cqldb

import (
	"strings"
	"time"

	"github.com/eperott/cassandra-go-sdk/cqldb/common"
	"github.com/eperott/cassandra-go-sdk/cqldb/cqlerr"
	"github.com/eperott/cassandra-go-sdk/cqldb/proto"
	"github.com/eperott/cassandra-go-sdk/cqldb/types"
)

// Statement is an immutable description of work to execute: a query string,
// a prepared statement id, or a batch of child statements, together with the
// bound values and per-statement execution options.
//
// A Statement is read-only input to execution. A retry or a next-page fetch
// derives a new request from it; the Statement itself is never mutated after
// it has been submitted.
type Statement struct {
	// QueryText specifies the query string. Exactly one of QueryText,
	// PreparedID and Children must be set.
	QueryText string

	// PreparedID specifies the id of a previously prepared statement.
	PreparedID []byte

	// Children specifies the child statements of a batch. Child statements
	// may only carry QueryText or PreparedID and positional values.
	Children []*Statement

	// PositionalValues specifies the ordered bound values for the
	// statement's placeholders.
	PositionalValues []types.FieldValue

	// NamedValues specifies the bound values by placeholder name. At most
	// one of PositionalValues and NamedValues may be set.
	NamedValues map[string]types.FieldValue

	// PlaceholderCount specifies the number of placeholders the statement
	// declares. For query strings it is optional: if zero, the count is
	// derived from the text. For prepared statements it comes from the
	// preparation metadata and must be set when values are bound.
	PlaceholderCount int

	// Consistency specifies the consistency level for the statement.
	// If not set, the client default is used.
	Consistency types.Consistency

	// SerialConsistency specifies the consistency for the Paxos phase of a
	// conditional statement. It is ignored for other statements.
	SerialConsistency types.SerialConsistency

	// Idempotent marks the statement as safe to execute more than once.
	// Only idempotent statements are eligible for retry on write-path
	// errors and for speculative execution.
	Idempotent bool

	// Timeout overrides the client's overall request timeout for this
	// statement. If set, it must be greater than or equal to 1 millisecond.
	Timeout time.Duration

	// FetchSize overrides the client's default page size, in rows.
	FetchSize int

	// PagingState specifies the opaque continuation token of the page to
	// resume from. It is set when continuing a previous page and must
	// round-trip byte for byte from the prior page's execution metadata.
	PagingState []byte

	// Keyspace specifies the keyspace targeted by the statement, if known.
	// It is a routing hint for the node selector.
	Keyspace string
}

// setDefaults fills unset execution options from the client's request
// configuration. It is only ever called on the private copy the client takes
// of a submitted statement.
func (s *Statement) setDefaults(cfg *RequestConfig) {
	if s.Consistency == 0 {
		s.Consistency = cfg.DefaultConsistency()
	}

	if s.Timeout == 0 {
		s.Timeout = cfg.DefaultRequestTimeout()
	}

	if s.FetchSize == 0 {
		s.FetchSize = cfg.DefaultFetchSize()
	}
}

// validate checks the statement before any network send. A statement that
// fails validation is rejected with an IllegalArgument error and is never
// transmitted.
func (s *Statement) validate() error {
	forms := 0
	if s.QueryText != "" {
		forms++
	}
	if len(s.PreparedID) > 0 {
		forms++
	}
	if len(s.Children) > 0 {
		forms++
	}
	if forms != 1 {
		return cqlerr.NewIllegalArgument("exactly one of QueryText, PreparedID and Children must be set")
	}

	if len(s.PositionalValues) > 0 && len(s.NamedValues) > 0 {
		return cqlerr.NewIllegalArgument("PositionalValues and NamedValues must not both be set")
	}

	if s.Timeout < 0 || (s.Timeout > 0 && s.Timeout < time.Millisecond) {
		return cqlerr.NewIllegalArgument("Timeout must be greater than or equal to 1 millisecond, got %v", s.Timeout)
	}

	if s.FetchSize < 0 {
		return cqlerr.NewIllegalArgument("FetchSize must not be negative, got %d", s.FetchSize)
	}

	if len(s.Children) > 0 {
		if len(s.PositionalValues) > 0 || len(s.NamedValues) > 0 {
			return cqlerr.NewIllegalArgument("a batch statement must bind values on its children")
		}
		for i, child := range s.Children {
			if child == nil {
				return cqlerr.NewIllegalArgument("batch child %d must be non-nil", i)
			}
			if len(child.Children) > 0 {
				return cqlerr.NewIllegalArgument("batch child %d must not itself be a batch", i)
			}
			if err := child.validate(); err != nil {
				return cqlerr.NewWithCause(cqlerr.IllegalArgument, err, "batch child %d is invalid", i)
			}
		}
		return nil
	}

	return s.validateArity()
}

// validateArity checks that the bound-value list length matches the
// statement's placeholder count.
func (s *Statement) validateArity() error {
	count := s.PlaceholderCount
	if count == 0 && s.QueryText != "" {
		count = countPlaceholders(s.QueryText)
	}

	bound := len(s.PositionalValues)
	if len(s.NamedValues) > 0 {
		bound = len(s.NamedValues)
	}

	if bound != count {
		return cqlerr.NewIllegalArgument("statement declares %d placeholder(s) but binds %d value(s)", count, bound)
	}

	return nil
}

// countPlaceholders counts the '?' placeholders in a query string, ignoring
// occurrences inside single-quoted literals.
func countPlaceholders(query string) int {
	n := 0
	inLiteral := false
	for i := 0; i < len(query); i++ {
		switch query[i] {
		case '\'':
			inLiteral = !inLiteral
		case '?':
			if !inLiteral {
				n++
			}
		}
	}
	return n
}

// withPagingState derives a new Statement continuing from the specified
// continuation token. The receiver is not modified.
func (s *Statement) withPagingState(token []byte) *Statement {
	next := *s
	next.PagingState = token
	return &next
}

// timeout returns the overall execution deadline for the statement.
func (s *Statement) timeout() time.Duration {
	return s.Timeout
}

// opCode returns the wire opcode for the statement form.
func (s *Statement) opCode() proto.OpCode {
	switch {
	case len(s.Children) > 0:
		return proto.Batch
	case len(s.PreparedID) > 0:
		return proto.Execute
	default:
		return proto.Query
	}
}

// wireRequest builds the abstract wire request for one attempt. skipMetadata
// is set when the column metadata is already known from a prior page of the
// same logical query.
func (s *Statement) wireRequest(skipMetadata bool) *proto.Request {
	req := &proto.Request{
		Op:                s.opCode(),
		QueryText:         s.QueryText,
		PreparedID:        s.PreparedID,
		Values:            s.PositionalValues,
		NamedValues:       s.NamedValues,
		Consistency:       s.Consistency,
		SerialConsistency: s.SerialConsistency,
		PagingState:       s.PagingState,
		FetchSize:         s.FetchSize,
		SkipMetadata:      skipMetadata,
	}

	for _, child := range s.Children {
		req.Children = append(req.Children, proto.BatchChild{
			QueryText:  child.QueryText,
			PreparedID: child.PreparedID,
			Values:     child.PositionalValues,
		})
	}

	return req
}

// loggedText returns the text identifying the statement in log lines:
// the query string, the batch children joined by newlines, or a hex
// rendering of the prepared id.
func (s *Statement) loggedText() string {
	if s.QueryText != "" {
		return s.QueryText
	}

	if len(s.Children) > 0 {
		texts := make([]string, len(s.Children))
		for i, child := range s.Children {
			texts[i] = child.loggedText()
		}
		return strings.Join(texts, "\n")
	}

	const hexDigits = "0123456789abcdef"
	var b strings.Builder
	b.WriteString("prepared:0x")
	for _, c := range s.PreparedID {
		b.WriteByte(hexDigits[c>>4])
		b.WriteByte(hexDigits[c&0x0f])
	}
	return b.String()
}

// queryInfo returns the routing hints exposed to the node selector.
func (s *Statement) queryInfo() common.QueryInfo {
	return common.QueryInfo{Keyspace: s.Keyspace, Idempotent: s.Idempotent}
}
