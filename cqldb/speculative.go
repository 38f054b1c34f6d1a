//
// Copyright (c) 2026 the cassandra-go-sdk authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 as shown at
//  https://www.apache.org/licenses/LICENSE-2.0
//

package cqldb

import (
	"time"
)

// SpeculativeExecutionPolicy decides whether and when an additional parallel
// attempt is launched before the previous one has failed, to hide tail
// latency.
//
// The policy is consulted with the time elapsed since the initial attempt
// started and the number of speculative attempts already issued. It returns
// the delay to wait before the next launch and whether a further launch is
// allowed at all. It is never consulted for non-idempotent statements.
//
// Implementations must be immutable so they can be shared between clients.
type SpeculativeExecutionPolicy interface {
	NextDelay(elapsed time.Duration, issued int) (delay time.Duration, ok bool)
}

// ConstantSpeculativePolicy represents a SpeculativeExecutionPolicy that
// launches up to MaxAttempts speculative attempts at a constant interval.
type ConstantSpeculativePolicy struct {
	// MaxAttempts is the maximum number of speculative attempts issued on
	// top of the initial one.
	MaxAttempts int

	// Delay is the interval between the initial attempt and the first
	// speculative launch, and between subsequent launches.
	Delay time.Duration
}

// NextDelay returns the remaining time until the next constant-interval
// launch point, and false once MaxAttempts speculative attempts have been
// issued.
func (p ConstantSpeculativePolicy) NextDelay(elapsed time.Duration, issued int) (time.Duration, bool) {
	if issued >= p.MaxAttempts {
		return 0, false
	}

	next := p.Delay * time.Duration(issued+1)
	if remaining := next - elapsed; remaining > 0 {
		return remaining, true
	}
	return 0, true
}
