//
// Copyright (c) 2026 the cassandra-go-sdk authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 as shown at
//  https://www.apache.org/licenses/LICENSE-2.0
//

package cqldb

import (
	"context"
	"sync"

	"github.com/eperott/cassandra-go-sdk/cqldb/common"
	"github.com/eperott/cassandra-go-sdk/cqldb/cqlerr"
	"github.com/eperott/cassandra-go-sdk/cqldb/jsonutil"
	"github.com/eperott/cassandra-go-sdk/cqldb/proto"
	"github.com/eperott/cassandra-go-sdk/cqldb/types"
)

// appliedColumnName is the column the server attaches to the first row of a
// conditional write's result to report whether the write was applied.
const appliedColumnName = "[applied]"

// ExecutionInfo is the read-only bundle of metadata describing how one page
// of results was obtained.
type ExecutionInfo struct {
	// Coordinator is the node that processed the winning attempt.
	Coordinator *common.Node `json:"coordinator"`

	// Warnings are the server-supplied warning strings of the winning
	// attempt, in insertion order. Losing attempts contribute nothing.
	Warnings []string `json:"warnings,omitempty"`

	// AchievedConsistency is the consistency level the coordinator actually
	// achieved.
	AchievedConsistency types.Consistency `json:"achievedConsistency"`

	// SpeculativeExecutions is the number of speculative attempts issued on
	// top of the initial one.
	SpeculativeExecutions int `json:"speculativeExecutions"`

	// Attempts is the total number of attempts launched, including the
	// initial one, retries and speculative executions.
	Attempts int `json:"attempts"`

	// PagingState is the opaque continuation token of the next page, nil
	// when the result is fully fetched. It round-trips byte for byte into
	// the statement used to fetch the next page.
	PagingState []byte `json:"pagingState,omitempty"`
}

// String returns a JSON string representation of the ExecutionInfo.
func (info ExecutionInfo) String() string {
	return jsonutil.AsJSON(info)
}

// ResultSet represents one page of a statement's results together with the
// asynchronous cursor to the following pages.
//
// Rows are consumed with Next as a lazy, single-pass, finite sequence. A
// page, once consumed, is not replayable. Further pages are obtained with
// FetchNextPage, which starts a new, independent execution continuing from
// the page's continuation token.
//
// A ResultSet is not safe for concurrent use.
type ResultSet struct {
	client *Client
	stmt   *Statement

	columns []proto.Column
	byName  map[string]int
	rows    [][]types.FieldValue
	pos     int

	info ExecutionInfo
}

func newResultSet(client *Client, stmt *Statement, columns []proto.Column,
	rows [][]types.FieldValue, info ExecutionInfo) *ResultSet {

	byName := make(map[string]int, len(columns))
	for i, col := range columns {
		byName[col.Name] = i
	}

	return &ResultSet{
		client:  client,
		stmt:    stmt,
		columns: columns,
		byName:  byName,
		rows:    rows,
		info:    info,
	}
}

// Columns returns the column metadata describing the row shape. The metadata
// is attached once per logical query and shared read-only by every page of
// that query.
func (r *ResultSet) Columns() []proto.Column {
	return r.columns
}

// ExecutionInfo returns the execution metadata for this page.
func (r *ResultSet) ExecutionInfo() ExecutionInfo {
	return r.info
}

// Next returns the next row of the current page, or false when the page is
// exhausted. It never fetches further pages.
func (r *ResultSet) Next() (*Row, bool) {
	if r.pos >= len(r.rows) {
		return nil, false
	}

	row := &Row{
		columns: r.columns,
		byName:  r.byName,
		values:  r.rows[r.pos],
	}
	r.pos++
	return row, true
}

// One returns the next row of the current page, or nil when the page is
// exhausted.
func (r *ResultSet) One() *Row {
	row, ok := r.Next()
	if !ok {
		return nil
	}
	return row
}

// Remaining returns the number of rows left in the current page.
func (r *ResultSet) Remaining() int {
	return len(r.rows) - r.pos
}

// HasMorePages reports whether the page carries a continuation token that a
// following FetchNextPage call would resume from.
func (r *ResultSet) HasMorePages() bool {
	return len(r.info.PagingState) > 0
}

// FetchNextPage starts an asynchronous execution of a derived statement
// continuing from this page's continuation token and returns its completion
// handle. The fetch is a new, independent execution: it is itself subject to
// retry and speculative execution.
//
// If HasMorePages is false the returned future fails immediately with an
// IllegalState error and no network request is made. FetchNextPage does not
// consume rows from the current page.
func (r *ResultSet) FetchNextPage() *ExecutionFuture {
	if !r.HasMorePages() {
		return newFailedFuture(cqlerr.NewIllegalState(
			"the result is fully fetched, there are no more pages"))
	}

	next := r.stmt.withPagingState(r.info.PagingState)
	return r.client.executeAsync(context.Background(), next, r.columns)
}

// WasApplied peeks at the conditional-write applied state of this page.
//
// It returns the value of the boolean column named "[applied]" on the first
// row of the current page. Statements that carry no such column at all
// (unconditional statements, and conditional DDL forms the server does not
// annotate) report true.
//
// WasApplied is idempotent and side-effect free: it does not advance the row
// cursor, so callers may invoke it any number of times and still iterate all
// rows afterwards.
func (r *ResultSet) WasApplied() bool {
	idx, ok := r.byName[appliedColumnName]
	if !ok || len(r.rows) == 0 {
		return true
	}

	if applied, ok := r.rows[0][idx].(bool); ok {
		return applied
	}
	return true
}

// String returns a JSON string representation of the page's execution
// metadata and row counts.
func (r *ResultSet) String() string {
	return jsonutil.AsJSON(struct {
		Info      ExecutionInfo `json:"executionInfo"`
		Rows      int           `json:"rows"`
		Remaining int           `json:"remaining"`
	}{r.info, len(r.rows), r.Remaining()})
}

// ExecutionFuture is the completion handle of an asynchronous statement
// execution or page fetch.
//
// The future resolves exactly once: either to a ResultSet or to a single
// terminal error, never both. Dropping the future without waiting is safe;
// cancelling it supersedes every live attempt of the execution and releases
// their connections.
type ExecutionFuture struct {
	done   chan struct{}
	once   sync.Once
	cancel context.CancelFunc

	result *ResultSet
	err    error
}

func newExecutionFuture(cancel context.CancelFunc) *ExecutionFuture {
	return &ExecutionFuture{
		done:   make(chan struct{}),
		cancel: cancel,
	}
}

// newFailedFuture creates a future that has already failed with the
// specified error. It is used for failures detected before any attempt is
// launched.
func newFailedFuture(err error) *ExecutionFuture {
	f := &ExecutionFuture{done: make(chan struct{})}
	f.complete(nil, err)
	return f
}

// complete resolves the future. Only the first call has any effect; the
// exactly-once guarantee of result delivery rests on it.
func (f *ExecutionFuture) complete(result *ResultSet, err error) {
	f.once.Do(func() {
		f.result = result
		f.err = err
		close(f.done)
	})
}

// Get suspends the calling goroutine until the execution reaches a terminal
// state and returns its result or terminal error. If ctx is done first, Get
// returns the context error and the execution keeps running; use Cancel to
// abandon it.
func (f *ExecutionFuture) Get(ctx context.Context) (*ResultSet, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Done returns a channel that is closed when the future has resolved.
func (f *ExecutionFuture) Done() <-chan struct{} {
	return f.done
}

// Cancel abandons the execution. Every live attempt is superseded and its
// connection released; late responses are drained without effect. Cancelling
// a resolved future has no effect.
func (f *ExecutionFuture) Cancel() {
	if f.cancel != nil {
		f.cancel()
	}
}
