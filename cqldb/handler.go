//
// Copyright (c) 2026 the cassandra-go-sdk authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 as shown at
//  https://www.apache.org/licenses/LICENSE-2.0
//

package cqldb

import (
	"context"
	"errors"
	"time"

	"github.com/eperott/cassandra-go-sdk/cqldb/common"
	"github.com/eperott/cassandra-go-sdk/cqldb/cqlerr"
	"github.com/eperott/cassandra-go-sdk/cqldb/logger"
	"github.com/eperott/cassandra-go-sdk/cqldb/proto"
)

// requestHandler drives one statement execution from submission to its
// terminal state: the initial attempt, retries, speculative executions, the
// per-attempt and overall deadlines, and the resolution of the caller's
// future.
//
// All state transitions are serialized on a single event-loop goroutine (the
// run method). Attempt goroutines only perform the network send and deliver
// their outcome over a channel; they never touch handler state. Serializing
// the transitions is what makes the exactly-one-winner guarantee hold: the
// first outcome the loop accepts claims the win and every other attempt is
// superseded before the future resolves.
type requestHandler struct {
	client *Client
	stmt   *Statement

	// sharedColumns is the column metadata from a prior page of the same
	// logical query, nil on the first page. When set, attempts ask the
	// server to skip resending metadata.
	sharedColumns []proto.Column

	future *ExecutionFuture

	// parent is the caller's context; ctx adds the overall deadline.
	parent context.Context
	ctx    context.Context
	cancel context.CancelFunc

	// outcomes carries attempt completions into the event loop.
	outcomes chan *attemptOutcome

	// done is closed when the loop exits; it unblocks attempt goroutines
	// that are still trying to deliver an outcome.
	done chan struct{}

	// Event-loop state. Only the run goroutine reads or writes it.
	candidates   []*common.Node
	nextNode     int
	live         map[*attempt]struct{}
	attempts     uint
	speculations int
	start        time.Time

	// pendingErr is the first error whose decision was Rethrow, held back
	// while sibling attempts are still live and could produce a winner.
	pendingErr error
}

// attempt is one in-flight send against one node.
type attempt struct {
	index       uint
	node        *common.Node
	speculative bool

	ctx    context.Context
	cancel context.CancelFunc

	// superseded is set when a sibling attempt claims the win or the
	// execution fails; the attempt's eventual outcome is then drained
	// without effect. Only the event loop touches it.
	superseded bool
}

type attemptOutcome struct {
	attempt *attempt
	resp    *proto.Response
	err     error
}

func newRequestHandler(client *Client, stmt *Statement,
	sharedColumns []proto.Column, parent context.Context) *requestHandler {

	ctx, cancel := context.WithTimeout(parent, stmt.timeout())

	return &requestHandler{
		client:        client,
		stmt:          stmt,
		sharedColumns: sharedColumns,
		future:        newExecutionFuture(cancel),
		parent:        parent,
		ctx:           ctx,
		cancel:        cancel,
		outcomes:      make(chan *attemptOutcome),
		done:          make(chan struct{}),
		live:          make(map[*attempt]struct{}),
	}
}

// run is the event loop. It owns every state transition of the execution and
// terminates once the future has resolved.
func (h *requestHandler) run() {
	defer close(h.done)
	defer h.cancel()

	h.start = time.Now()
	h.candidates = h.client.NodeSelector.Candidates(h.stmt.queryInfo())
	if len(h.candidates) == 0 {
		h.future.complete(nil, cqlerr.New(cqlerr.Unavailable,
			"no node available to execute the statement"))
		return
	}

	h.launch(h.candidates[h.nextNode], false)

	// Arm the speculative-execution timer for idempotent statements.
	var specTimer *time.Timer
	var specCh <-chan time.Time
	policy := h.client.SpeculativePolicy
	if policy != nil && h.stmt.Idempotent {
		if delay, ok := policy.NextDelay(0, 0); ok {
			specTimer = time.NewTimer(delay)
			specCh = specTimer.C
			defer specTimer.Stop()
		}
	}

	for {
		select {
		case <-h.ctx.Done():
			h.completeFromContext()
			return

		case <-specCh:
			specCh = nil
			node := h.nextCandidate()
			if node == nil {
				break
			}
			h.speculations++
			h.launch(node, true)
			if delay, ok := policy.NextDelay(time.Since(h.start), h.speculations); ok {
				specTimer.Reset(delay)
				specCh = specTimer.C
			}

		case out := <-h.outcomes:
			if h.ctx.Err() != nil {
				// The overall deadline or a cancellation fired while this
				// outcome was in flight; the terminal error kind must not
				// depend on which select case won the race.
				h.completeFromContext()
				return
			}
			if out.attempt.superseded {
				// A loser's late response; drain it.
				break
			}
			delete(h.live, out.attempt)
			if h.handleOutcome(out) {
				return
			}
		}
	}
}

// handleOutcome processes one attempt completion and reports whether the
// execution reached a terminal state.
func (h *requestHandler) handleOutcome(out *attemptOutcome) bool {
	at := out.attempt

	if out.err == nil {
		h.win(at, out.resp)
		return true
	}

	h.client.logger.Fine("attempt %d on %s failed: %v", at.index, at.node, out.err)

	// Fatal errors bypass the retry policy entirely.
	if !cqlerr.Retryable(out.err) {
		h.fail(out.err)
		return true
	}

	decision := h.client.RetryPolicy.Decide(out.err, h.stmt.Idempotent, at.index, at.node)
	h.client.logger.LogWithFn(logger.Debug, func() string {
		return "retry decision for attempt on " + at.node.String() + ": " + decision.String()
	})

	switch decision {
	case RetrySameNode:
		h.launch(at.node, false)
		return false

	case RetryNextNode:
		if node := h.nextCandidate(); node != nil {
			h.launch(node, false)
			return false
		}
		// The candidate list is exhausted; fall through to the rethrow
		// path with the error that drove the decision.

	case Ignore:
		h.ignore(at)
		return true
	}

	// Rethrow: the error only surfaces once no sibling attempt remains
	// that could still claim the win.
	if h.pendingErr == nil {
		h.pendingErr = out.err
	}
	if len(h.live) > 0 {
		return false
	}
	h.fail(h.pendingErr)
	return true
}

// win resolves the execution with the specified attempt's response. Every
// sibling attempt is superseded before the future resolves, so its state
// never leaks into the result.
func (h *requestHandler) win(at *attempt, resp *proto.Response) {
	h.supersedeAll()

	columns := resp.Columns
	if columns == nil {
		columns = h.sharedColumns
	}

	info := ExecutionInfo{
		Coordinator:           at.node,
		Warnings:              resp.Warnings,
		AchievedConsistency:   resp.AchievedConsistency,
		SpeculativeExecutions: h.speculations,
		Attempts:              int(h.attempts),
		PagingState:           resp.PagingState,
	}

	h.client.logQueryWarnings(h.stmt, resp.Warnings)
	h.future.complete(newResultSet(h.client, h.stmt, columns, resp.Rows, info), nil)
}

// ignore resolves the execution with an empty successful page, attributing it
// to the node whose error was swallowed.
func (h *requestHandler) ignore(at *attempt) {
	h.supersedeAll()

	info := ExecutionInfo{
		Coordinator:           at.node,
		SpeculativeExecutions: h.speculations,
		Attempts:              int(h.attempts),
	}

	h.future.complete(newResultSet(h.client, h.stmt, h.sharedColumns, nil, info), nil)
}

// fail resolves the execution with a terminal error.
func (h *requestHandler) fail(err error) {
	h.supersedeAll()
	h.future.complete(nil, err)
}

// completeFromContext resolves the execution after the handler context
// fired: the overall deadline expired, the caller's context was done, or the
// future was cancelled.
func (h *requestHandler) completeFromContext() {
	h.supersedeAll()

	if h.parent.Err() != nil {
		h.future.complete(nil, h.parent.Err())
		return
	}

	if errors.Is(h.ctx.Err(), context.Canceled) {
		h.future.complete(nil, context.Canceled)
		return
	}

	h.future.complete(nil, cqlerr.New(cqlerr.OverallTimeout,
		"statement did not complete within %v, after %d attempt(s)",
		h.stmt.timeout(), h.attempts))
}

// supersedeAll marks every live attempt superseded and cancels its context so
// its connection is released promptly. Late responses from superseded
// attempts are drained by the event loop, or dropped at delivery once the
// loop has exited.
func (h *requestHandler) supersedeAll() {
	for at := range h.live {
		at.superseded = true
		at.cancel()
		delete(h.live, at)
	}
}

// nextCandidate returns the next unused node of the candidate list, or nil
// when the list is exhausted.
func (h *requestHandler) nextCandidate() *common.Node {
	h.nextNode++
	if h.nextNode >= len(h.candidates) {
		return nil
	}
	return h.candidates[h.nextNode]
}

// launch starts a new attempt against the specified node.
func (h *requestHandler) launch(node *common.Node, speculative bool) {
	at := &attempt{
		index:       h.attempts,
		node:        node,
		speculative: speculative,
	}
	at.ctx, at.cancel = context.WithTimeout(h.ctx, h.client.DefaultAttemptTimeout())

	h.attempts++
	h.live[at] = struct{}{}

	h.client.logger.Fine("launching attempt %d on %s (speculative=%t)",
		at.index, node, speculative)

	go h.runAttempt(at)
}

// runAttempt performs the network send for one attempt and delivers the
// outcome to the event loop. It runs on its own goroutine and touches no
// handler state.
func (h *requestHandler) runAttempt(at *attempt) {
	defer at.cancel()

	req := h.stmt.wireRequest(h.sharedColumns != nil)

	conn, err := h.client.Pool.Borrow(at.node)
	if err != nil {
		h.deliver(at, nil, cqlerr.NewWithCause(cqlerr.ConnectionClosed, err,
			"cannot obtain a connection to %s", at.node))
		return
	}

	resp, err := conn.Send(at.ctx, req)
	h.client.Pool.Release(at.node, conn, connectionHealthy(err))

	if err != nil {
		h.deliver(at, nil, h.classifySendError(at, err))
		return
	}

	if resp.Error != nil {
		h.deliver(at, resp, resp.Error)
		return
	}

	h.deliver(at, resp, nil)
}

// connectionHealthy reports whether the connection can go back into the pool
// for reuse after a send. A context error means the attempt was pre-empted
// (superseded, or a deadline fired); the connection itself observed no
// failure and the connection layer drains the late server response.
func connectionHealthy(err error) bool {
	if err == nil {
		return true
	}
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// classifySendError maps a transport-level send failure to the error that is
// fed into the retry decision path.
func (h *requestHandler) classifySendError(at *attempt, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded) && h.ctx.Err() == nil:
		// The per-attempt deadline expired while the overall deadline is
		// still open: the statement may have executed on the node.
		return cqlerr.NewRequestTimeout(
			"attempt %d on %s timed out after %v",
			at.index, at.node, h.client.DefaultAttemptTimeout())

	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		// Superseded, or pre-empted by the overall deadline. The outcome is
		// drained; the classification is irrelevant.
		return err

	default:
		return cqlerr.NewWithCause(cqlerr.ConnectionClosed, err,
			"connection to %s failed", at.node)
	}
}

// deliver hands the attempt outcome to the event loop, or drops it if the
// loop has already terminated.
func (h *requestHandler) deliver(at *attempt, resp *proto.Response, err error) {
	select {
	case h.outcomes <- &attemptOutcome{attempt: at, resp: resp, err: err}:
	case <-h.done:
	}
}
