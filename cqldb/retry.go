//
// Copyright (c) 2026 the cassandra-go-sdk authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 as shown at
//  https://www.apache.org/licenses/LICENSE-2.0
//

package cqldb

import (
	"github.com/eperott/cassandra-go-sdk/cqldb/common"
	"github.com/eperott/cassandra-go-sdk/cqldb/cqlerr"
)

// RetryDecision is the outcome of consulting a RetryPolicy for a failed
// attempt.
type RetryDecision int

const (
	// Rethrow surfaces the error to the application once no live attempt
	// remains that could still succeed.
	Rethrow RetryDecision = iota

	// RetrySameNode launches a new attempt against the node that produced
	// the error.
	RetrySameNode

	// RetryNextNode launches a new attempt against the next candidate node.
	RetryNextNode

	// Ignore swallows the error and completes the execution with an empty
	// successful page. It is used for some idempotent read inconsistencies
	// where an empty result is preferable to a failure.
	Ignore
)

// String returns a string representation for the retry decision.
//
// This implements the fmt.Stringer interface.
func (d RetryDecision) String() string {
	switch d {
	case Rethrow:
		return "rethrow"
	case RetrySameNode:
		return "retry same node"
	case RetryNextNode:
		return "retry next node"
	case Ignore:
		return "ignore"
	default:
		return "unknown"
	}
}

// RetryPolicy decides what to do with an attempt that failed with an error
// that is subject to retry handling.
//
// The policy is consulted with the error, the statement's idempotence flag,
// the zero-based index of the failed attempt, and the node that produced the
// error. It is never consulted for validation or usage errors, nor for
// fatal server responses such as syntax errors.
//
// Implementations must be immutable so they can be shared between clients.
type RetryPolicy interface {
	Decide(err error, idempotent bool, attempt uint, node *common.Node) RetryDecision
}

// DefaultRetryPolicy represents the default implementation of the
// RetryPolicy interface.
//
// Its behavior is:
//
//   - Read timeouts are retried once, on the next candidate node.
//   - Write-path errors (write timeouts, write failures, closed connections
//     and per-attempt timeouts, where the statement may have executed) are
//     only retried for idempotent statements, to avoid duplicate mutations.
//   - Unavailable errors move to the next candidate node; the request
//     handler rethrows once the candidate list is exhausted.
//   - Overloaded errors are retried on the next node: the coordinator shed
//     the request before executing it.
//   - Server execution errors are only retried, on the next node and only
//     for idempotent statements, when their code appears in RetryableServerErrors.
type DefaultRetryPolicy struct {
	// MaxReadTimeoutRetries is the number of retries allowed for read
	// timeouts.
	maxReadTimeoutRetries uint

	// retryableServerErrors is the explicit allow-list of server execution
	// error codes eligible for retry.
	retryableServerErrors map[cqlerr.ErrorCode]bool
}

// NewDefaultRetryPolicy creates a DefaultRetryPolicy with a single read
// timeout retry and an empty server-error allow-list.
func NewDefaultRetryPolicy() *DefaultRetryPolicy {
	return NewDefaultRetryPolicyWithServerErrors()
}

// NewDefaultRetryPolicyWithServerErrors creates a DefaultRetryPolicy whose
// server-error allow-list contains the specified codes. The set of codes
// eligible for retry is deliberately an explicit configuration rather than a
// built-in guess.
func NewDefaultRetryPolicyWithServerErrors(codes ...cqlerr.ErrorCode) *DefaultRetryPolicy {
	allowed := make(map[cqlerr.ErrorCode]bool, len(codes))
	for _, code := range codes {
		allowed[code] = true
	}
	return &DefaultRetryPolicy{
		maxReadTimeoutRetries: 1,
		retryableServerErrors: allowed,
	}
}

// Decide returns the retry decision for the specified failed attempt.
func (p *DefaultRetryPolicy) Decide(err error, idempotent bool, attempt uint, node *common.Node) RetryDecision {
	e, ok := err.(*cqlerr.Error)
	if !ok {
		return Rethrow
	}

	switch e.Code {
	case cqlerr.ReadTimeout:
		if attempt < p.maxReadTimeoutRetries {
			return RetryNextNode
		}
		return Rethrow

	case cqlerr.WriteTimeout, cqlerr.WriteFailure, cqlerr.ConnectionClosed, cqlerr.RequestTimeout:
		// The statement may already have executed on the node.
		if idempotent {
			return RetryNextNode
		}
		return Rethrow

	case cqlerr.Unavailable, cqlerr.Overloaded:
		return RetryNextNode

	default:
		if cqlerr.IsServerError(err) && idempotent && p.retryableServerErrors[e.Code] {
			return RetryNextNode
		}
		return Rethrow
	}
}
