//
// Copyright (c) 2026 the cassandra-go-sdk authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 as shown at
//  https://www.apache.org/licenses/LICENSE-2.0
//

package cqldb

import (
	"errors"
	"time"

	"github.com/eperott/cassandra-go-sdk/cqldb/common"
	"github.com/eperott/cassandra-go-sdk/cqldb/logger"
	"github.com/eperott/cassandra-go-sdk/cqldb/proto"
	"github.com/eperott/cassandra-go-sdk/cqldb/types"
)

const (
	// The default overall timeout for a statement execution, covering all
	// attempts and retries.
	defaultRequestTimeout = 10 * time.Second

	// The default timeout for a single attempt against a single node.
	defaultAttemptTimeout = 2 * time.Second

	// The default consistency level for statements.
	defaultConsistency = types.LocalOne

	// The default page size, in rows.
	defaultFetchSize = 5000

	// The default maximum number of characters of query text included in the
	// server-warning log line. Longer query texts are truncated.
	defaultMaxLoggedQueryLength = 50

	// The default cap on concurrently executing statements per client.
	defaultMaxConcurrentRequests = 1024
)

// Config represents a group of configuration parameters for a Client.
//
// When creating a Client, the Config instance is copied so modifications on
// the instance have no effect on the existing Client.
//
// Pool and NodeSelector are required; everything else has a default.
type Config struct {
	// Pool supplies pooled connections to nodes. It is required.
	Pool proto.Pool

	// NodeSelector produces the ordered candidate list of coordinator nodes
	// for each statement. It is required.
	NodeSelector common.NodeSelector

	// RetryPolicy decides whether and where a failed attempt is retried.
	// If not set, NewDefaultRetryPolicy() is used.
	RetryPolicy RetryPolicy

	// SpeculativePolicy decides whether and when additional parallel
	// attempts are launched for idempotent statements.
	// If not set, speculative execution is disabled.
	SpeculativePolicy SpeculativeExecutionPolicy

	// Configurations for requests.
	RequestConfig

	// Configurations for logging.
	LoggingConfig

	// DisableQueryWarningLogs seeds the client's process-wide switch that
	// suppresses the log line for server-supplied query warnings. The switch
	// can be toggled at runtime with Client.SetQueryWarningLogsDisabled and
	// is read once per statement completion, so toggling it takes effect on
	// the next statement.
	DisableQueryWarningLogs bool
}

func (c *Config) setDefaults() error {
	if c.Pool == nil {
		return errors.New("Pool must be specified")
	}

	if c.NodeSelector == nil {
		return errors.New("NodeSelector must be specified")
	}

	if c.RetryPolicy == nil {
		c.RetryPolicy = NewDefaultRetryPolicy()
	}

	if c.Logger == nil && !c.DisableLogging {
		c.Logger = logger.DefaultLogger
	}

	return nil
}

// RequestConfig represents a group of configuration parameters for requests.
type RequestConfig struct {
	// RequestTimeout specifies the overall execution deadline for a
	// statement, covering all attempts and retries. A statement may override
	// it with Statement.Timeout.
	// If set, it must be greater than or equal to 1 millisecond.
	RequestTimeout time.Duration

	// AttemptTimeout specifies the timeout for a single attempt against a
	// single node. An expired attempt is fed into the retry decision path as
	// a RequestTimeout error.
	// If set, it must be greater than or equal to 1 millisecond.
	AttemptTimeout time.Duration

	// Consistency specifies the default consistency level for statements
	// that do not set one.
	Consistency types.Consistency

	// FetchSize specifies the default page size, in rows, for statements
	// that do not set one.
	FetchSize int

	// MaxLoggedQueryLength specifies the maximum number of characters of
	// query text included in the server-warning log line.
	MaxLoggedQueryLength int

	// MaxConcurrentRequests caps the number of statements a client executes
	// concurrently. Executions beyond the cap wait for a slot.
	MaxConcurrentRequests int64
}

// DefaultRequestTimeout returns the configured overall request timeout, or
// the default of 10 seconds.
func (r *RequestConfig) DefaultRequestTimeout() time.Duration {
	if r == nil || r.RequestTimeout == 0 {
		return defaultRequestTimeout
	}
	return r.RequestTimeout
}

// DefaultAttemptTimeout returns the configured per-attempt timeout, or the
// default of 2 seconds.
func (r *RequestConfig) DefaultAttemptTimeout() time.Duration {
	if r == nil || r.AttemptTimeout == 0 {
		return defaultAttemptTimeout
	}
	return r.AttemptTimeout
}

// DefaultConsistency returns the configured consistency level, or the
// default of types.LocalOne.
func (r *RequestConfig) DefaultConsistency() types.Consistency {
	if r == nil || r.Consistency == 0 {
		return defaultConsistency
	}
	return r.Consistency
}

// DefaultFetchSize returns the configured page size, or the default of 5000
// rows.
func (r *RequestConfig) DefaultFetchSize() int {
	if r == nil || r.FetchSize == 0 {
		return defaultFetchSize
	}
	return r.FetchSize
}

// DefaultMaxLoggedQueryLength returns the configured maximum logged query
// text length, or the default of 50 characters.
func (r *RequestConfig) DefaultMaxLoggedQueryLength() int {
	if r == nil || r.MaxLoggedQueryLength == 0 {
		return defaultMaxLoggedQueryLength
	}
	return r.MaxLoggedQueryLength
}

// DefaultMaxConcurrentRequests returns the configured concurrency cap, or
// the default of 1024.
func (r *RequestConfig) DefaultMaxConcurrentRequests() int64 {
	if r == nil || r.MaxConcurrentRequests == 0 {
		return defaultMaxConcurrentRequests
	}
	return r.MaxConcurrentRequests
}

// LoggingConfig represents logging configurations.
type LoggingConfig struct {

	// Configurations for the logger.
	// If this is not set, use logger.DefaultLogger unless DisableLogging is set.
	*logger.Logger

	// DisableLogging represents whether logging is disabled.
	DisableLogging bool
}
