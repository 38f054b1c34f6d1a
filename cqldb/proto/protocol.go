//
// Copyright (c) 2026 the cassandra-go-sdk authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 as shown at
//  https://www.apache.org/licenses/LICENSE-2.0
//

// Package proto defines the abstract shapes of the binary request/response
// protocol spoken with coordinator nodes, and the capability interfaces for
// the pooled connections the execution engine borrows. Framing and byte
// level encoding are performed by the connection layer outside the driver
// core; this package assumes they are correct.
package proto

import (
	"context"

	"github.com/eperott/cassandra-go-sdk/cqldb/common"
	"github.com/eperott/cassandra-go-sdk/cqldb/cqlerr"
	"github.com/eperott/cassandra-go-sdk/cqldb/types"
)

// OpCode identifies the kind of a wire request.
type OpCode int

const (
	Query   OpCode = iota // 0, execute a query string
	Execute               // 1, execute a prepared statement by id
	Batch                 // 2, execute a batch of child statements
)

// String returns a string representation for the opcode.
//
// This implements the fmt.Stringer interface.
func (op OpCode) String() string {
	switch op {
	case Query:
		return "QUERY"
	case Execute:
		return "EXECUTE"
	case Batch:
		return "BATCH"
	default:
		return "UNKNOWN"
	}
}

// BatchChild represents one statement inside a Batch request.
type BatchChild struct {
	// QueryText is the query string, empty when PreparedID is set.
	QueryText string

	// PreparedID is the prepared statement id, nil when QueryText is set.
	PreparedID []byte

	// Values are the positional bound values for this child.
	Values []types.FieldValue
}

// Request represents one wire request to a coordinator node.
//
// The idempotence of the originating statement is intentionally absent: it
// is a local routing hint and is never sent over the wire.
type Request struct {
	// Op identifies the request kind.
	Op OpCode

	// QueryText is the query string for Query requests.
	QueryText string

	// PreparedID is the prepared statement id for Execute requests.
	PreparedID []byte

	// Children are the child statements for Batch requests.
	Children []BatchChild

	// Values are the positional bound values.
	Values []types.FieldValue

	// NamedValues are the named bound values, nil when positional values are
	// used.
	NamedValues map[string]types.FieldValue

	// Consistency is the consistency level for the request.
	Consistency types.Consistency

	// SerialConsistency is the consistency for the Paxos phase of
	// conditional statements.
	SerialConsistency types.SerialConsistency

	// PagingState is the opaque continuation token of the page to resume
	// from, nil for the first page.
	PagingState []byte

	// FetchSize is the requested page size in rows, 0 for the server default.
	FetchSize int

	// SkipMetadata requests that the server omit column metadata from the
	// response. Set when the metadata is already known from a prior page.
	SkipMetadata bool
}

// Column describes one column of a result row.
type Column struct {
	// Keyspace is the keyspace of the column's table.
	Keyspace string

	// Table is the column's table.
	Table string

	// Name is the column name.
	Name string

	// Type is the database type of the column.
	Type types.TypeCode
}

// Response represents the coordinator's reply to one Request.
//
// Exactly one of the row payload and Error is populated. Warnings may
// accompany either.
type Response struct {
	// Columns is the column metadata for Rows. It may be nil when the
	// request set SkipMetadata.
	Columns []Column

	// Rows is the ordered page of result rows. Each row has one value per
	// column.
	Rows [][]types.FieldValue

	// PagingState is the opaque continuation token of the next page, nil
	// when the result is fully fetched.
	PagingState []byte

	// AchievedConsistency is the consistency level the coordinator actually
	// achieved for the request.
	AchievedConsistency types.Consistency

	// Warnings are the server-supplied warning strings, in server order.
	Warnings []string

	// Error is the failure reported by the coordinator, nil on success.
	Error *cqlerr.Error
}

// Conn represents one exchange channel on a pooled connection to a node.
//
// Send performs a single request/response exchange. It honors ctx
// cancellation; when the context is cancelled mid-exchange the connection
// layer drains the late server response internally so that it is never
// interpreted as the reply to a different request.
type Conn interface {
	Send(ctx context.Context, req *Request) (*Response, error)
}

// Pool supplies connections to nodes. Connections are a pooled, externally
// owned resource: the execution engine borrows one per attempt and releases
// it when the attempt terminates, marking it unhealthy if the attempt
// observed a connection-level failure.
type Pool interface {
	// Borrow returns a connection to the specified node, or an error if none
	// can be provided.
	Borrow(node *common.Node) (Conn, error)

	// Release returns a borrowed connection. healthy is false when the
	// attempt observed a connection-level failure on it.
	Release(node *common.Node, conn Conn, healthy bool)
}
