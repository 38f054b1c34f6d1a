//
// Copyright (c) 2026 the cassandra-go-sdk authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 as shown at
//  https://www.apache.org/licenses/LICENSE-2.0
//

package cqldb

import (
	"context"
	"io"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/eperott/cassandra-go-sdk/cqldb/cqlerr"
	"github.com/eperott/cassandra-go-sdk/cqldb/logger"
	"github.com/eperott/cassandra-go-sdk/cqldb/proto"
)

// Client represents a client connected to a cluster through a connection
// pool. It is the execution engine for statements: it drives attempts,
// retries, speculative executions and paging, and it is safe for concurrent
// use by multiple goroutines.
//
// A Client is created with NewClient and released with Close.
type Client struct {
	Config

	// id identifies the client instance in log lines.
	id uuid.UUID

	logger *logger.Logger

	// requestSeq numbers executions for log correlation.
	requestSeq atomic.Int64

	// sem caps the number of concurrently executing statements.
	sem *semaphore.Weighted

	// queryWarningsDisabled suppresses the log line for server-supplied
	// query warnings. It is read once per statement completion.
	queryWarningsDisabled atomic.Bool

	closed atomic.Bool
}

// NewClient creates a Client with the specified configuration. The Config is
// copied; later modifications of the caller's instance have no effect on the
// client.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.setDefaults(); err != nil {
		return nil, err
	}

	c := &Client{
		Config: cfg,
		id:     uuid.New(),
		logger: cfg.Logger,
		sem:    semaphore.NewWeighted(cfg.DefaultMaxConcurrentRequests()),
	}
	c.queryWarningsDisabled.Store(cfg.DisableQueryWarningLogs)

	c.logger.Info("client %s created", c.id)
	return c, nil
}

// Close releases the client. If the configured connection pool implements
// io.Closer it is closed as well. Executions submitted after Close fail with
// an IllegalState error; executions already in flight run to completion.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}

	c.logger.Info("client %s closed", c.id)

	if closer, ok := c.Pool.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// SetQueryWarningLogsDisabled toggles the process-wide suppression of the
// log line for server-supplied query warnings. The switch is read once per
// statement completion, so toggling takes effect on the next statement.
// Warnings remain available on ExecutionInfo regardless of the switch.
func (c *Client) SetQueryWarningLogsDisabled(disabled bool) {
	c.queryWarningsDisabled.Store(disabled)
}

// QueryWarningLogsDisabled returns whether the log line for server-supplied
// query warnings is suppressed.
func (c *Client) QueryWarningLogsDisabled() bool {
	return c.queryWarningsDisabled.Load()
}

// Execute executes the statement and blocks until its first page is
// available or the execution fails. It is the synchronous form of
// ExecuteAsync.
func (c *Client) Execute(stmt *Statement) (*ResultSet, error) {
	return c.ExecuteWithContext(context.Background(), stmt)
}

// ExecuteWithContext executes the statement and blocks until its first page
// is available, the execution fails, or ctx is done. Cancelling ctx
// supersedes every live attempt of the execution.
func (c *Client) ExecuteWithContext(ctx context.Context, stmt *Statement) (*ResultSet, error) {
	return c.executeAsync(ctx, stmt, nil).Get(ctx)
}

// ExecuteAsync starts an asynchronous execution of the statement and returns
// its completion handle. The future resolves exactly once, with the first
// page of results or with the execution's terminal error.
func (c *Client) ExecuteAsync(ctx context.Context, stmt *Statement) *ExecutionFuture {
	return c.executeAsync(ctx, stmt, nil)
}

// executeAsync validates a private copy of the statement and hands it to a
// request handler. sharedColumns carries the column metadata of a prior page
// when the execution continues a paged query.
func (c *Client) executeAsync(ctx context.Context, stmt *Statement,
	sharedColumns []proto.Column) *ExecutionFuture {

	if c.closed.Load() {
		return newFailedFuture(cqlerr.NewIllegalState("client is closed"))
	}
	if ctx == nil {
		return newFailedFuture(cqlerr.NewIllegalArgument("ctx must be non-nil"))
	}
	if stmt == nil {
		return newFailedFuture(cqlerr.NewIllegalArgument("stmt must be non-nil"))
	}

	// The submitted statement is read-only input; defaults are applied to a
	// private copy.
	s := *stmt
	s.setDefaults(&c.RequestConfig)
	if err := s.validate(); err != nil {
		return newFailedFuture(err)
	}

	seq := c.requestSeq.Add(1)
	c.logger.Fine("client %s: executing request %d", c.id, seq)

	h := newRequestHandler(c, &s, sharedColumns, ctx)

	go func() {
		// The concurrency cap is honored before the first attempt; waiting
		// for a slot counts against the overall deadline.
		if err := c.sem.Acquire(h.ctx, 1); err != nil {
			h.completeFromContext()
			h.cancel()
			return
		}
		defer c.sem.Release(1)

		h.run()
	}()

	return h.future
}
