//
// Copyright (c) 2026 the cassandra-go-sdk authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 as shown at
//  https://www.apache.org/licenses/LICENSE-2.0
//

// Package common provides types shared across the driver that describe the
// cluster members requests are routed to. Topology discovery and node health
// tracking are performed outside the driver core; the execution engine
// treats nodes as opaque handles with an externally supplied ordering.
package common

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Distance classifies how a node should be treated by request routing.
type Distance int

const (
	// Local nodes are preferred coordinators.
	Local Distance = iota

	// Remote nodes are used when no local node is available.
	Remote

	// Ignored nodes are never sent requests.
	Ignored
)

// String returns a string representation for the distance.
//
// This implements the fmt.Stringer interface.
func (d Distance) String() string {
	switch d {
	case Local:
		return "local"
	case Remote:
		return "remote"
	case Ignored:
		return "ignored"
	default:
		return "unknown"
	}
}

// Node represents a single cluster member that can coordinate requests.
//
// Nodes are created and maintained by the topology layer; the execution
// engine only reads them.
type Node struct {
	// HostID is the server-assigned unique id of the node.
	HostID uuid.UUID

	// Address is the network address requests are sent to, in host:port form.
	Address string

	// Distance is the routing classification supplied by the topology layer.
	Distance Distance
}

// String returns a short description of the node.
//
// This implements the fmt.Stringer interface.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s (%s)", n.Address, n.HostID)
}

// QueryInfo carries the statement properties a NodeSelector may use to rank
// candidates, without depending on the execution packages.
type QueryInfo struct {
	// Keyspace is the keyspace targeted by the statement, if known.
	Keyspace string

	// Idempotent reports whether the statement is marked idempotent.
	Idempotent bool
}

// NodeSelector produces an ordered candidate list of nodes for a statement.
//
// The first node in the returned slice receives the initial attempt;
// subsequent nodes are used for retries on the next node and for speculative
// executions. Implementations must be safe for concurrent use.
type NodeSelector interface {
	// Candidates returns the nodes to try, in order. An empty slice means no
	// node is currently available.
	Candidates(q QueryInfo) []*Node
}

// RoundRobinSelector is a NodeSelector that cycles through a fixed set of
// nodes, skipping nodes classified as Ignored.
type RoundRobinSelector struct {
	mu    sync.Mutex
	nodes []*Node
	next  int
}

// NewRoundRobinSelector creates a RoundRobinSelector over the specified nodes.
func NewRoundRobinSelector(nodes ...*Node) *RoundRobinSelector {
	return &RoundRobinSelector{nodes: nodes}
}

// Candidates returns all usable nodes, rotated so that consecutive calls
// start from successive nodes.
func (s *RoundRobinSelector) Candidates(q QueryInfo) []*Node {
	s.mu.Lock()
	start := s.next
	s.next++
	s.mu.Unlock()

	n := len(s.nodes)
	candidates := make([]*Node, 0, n)
	for i := 0; i < n; i++ {
		node := s.nodes[(start+i)%n]
		if node.Distance == Ignored {
			continue
		}
		candidates = append(candidates, node)
	}
	return candidates
}
