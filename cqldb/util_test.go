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
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/eperott/cassandra-go-sdk/cqldb/common"
	"github.com/eperott/cassandra-go-sdk/cqldb/proto"
)

// testNode creates a node with the specified address.
func testNode(addr string) *common.Node {
	return &common.Node{
		HostID:  uuid.New(),
		Address: addr,
	}
}

// fixedSelector is a NodeSelector that always returns the same candidate
// list, giving tests a deterministic node order.
type fixedSelector struct {
	nodes []*common.Node
}

func (s fixedSelector) Candidates(q common.QueryInfo) []*common.Node {
	return s.nodes
}

// scriptedReply is one canned reply of a fakePool node. The reply is
// produced after delay, or earlier with a context error if the attempt is
// cancelled first.
type scriptedReply struct {
	delay time.Duration
	resp  *proto.Response
	err   error
}

// fakePool is an in-memory proto.Pool whose connections answer from
// per-node reply scripts. It records every borrow, release and wire request
// for assertions.
type fakePool struct {
	mu      sync.Mutex
	scripts map[string][]scriptedReply

	borrows   int
	releases  int
	unhealthy int
	requests  []*proto.Request
}

func newFakePool() *fakePool {
	return &fakePool{scripts: make(map[string][]scriptedReply)}
}

// script appends a reply to the specified node's script. Replies are
// consumed in order; a node with an exhausted script answers with an empty
// successful response.
func (p *fakePool) script(node *common.Node, r scriptedReply) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.scripts[node.Address] = append(p.scripts[node.Address], r)
}

func (p *fakePool) Borrow(node *common.Node) (proto.Conn, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.borrows++
	return &fakeConn{pool: p, node: node}, nil
}

func (p *fakePool) Release(node *common.Node, conn proto.Conn, healthy bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.releases++
	if !healthy {
		p.unhealthy++
	}
}

func (p *fakePool) next(node *common.Node, req *proto.Request) scriptedReply {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.requests = append(p.requests, req)

	script := p.scripts[node.Address]
	if len(script) == 0 {
		return scriptedReply{resp: &proto.Response{}}
	}
	p.scripts[node.Address] = script[1:]
	return script[0]
}

func (p *fakePool) sentRequests() []*proto.Request {
	p.mu.Lock()
	defer p.mu.Unlock()
	reqs := make([]*proto.Request, len(p.requests))
	copy(reqs, p.requests)
	return reqs
}

func (p *fakePool) borrowCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.borrows
}

// releaseCounts returns the number of connections released so far and how
// many of those were marked unhealthy.
func (p *fakePool) releaseCounts() (released, unhealthy int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.releases, p.unhealthy
}

// fakeConn answers one request from the pool's script for its node.
type fakeConn struct {
	pool *fakePool
	node *common.Node
}

func (c *fakeConn) Send(ctx context.Context, req *proto.Request) (*proto.Response, error) {
	r := c.pool.next(c.node, req)

	if r.delay > 0 {
		timer := time.NewTimer(r.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if r.err != nil {
		return nil, r.err
	}
	return r.resp, nil
}

// newTestClient creates a client over the specified pool and node order with
// short timeouts suitable for tests. mutate, if non-nil, adjusts the config
// before the client is created.
func newTestClient(t *testing.T, pool proto.Pool, sel common.NodeSelector, mutate func(*Config)) *Client {
	t.Helper()

	cfg := Config{
		Pool:         pool,
		NodeSelector: sel,
		RequestConfig: RequestConfig{
			RequestTimeout: 2 * time.Second,
			AttemptTimeout: 500 * time.Millisecond,
		},
		LoggingConfig: LoggingConfig{DisableLogging: true},
	}
	if mutate != nil {
		mutate(&cfg)
	}

	c, err := NewClient(cfg)
	if err != nil {
		t.Fatalf("NewClient() got error: %v", err)
	}
	return c
}

// waitResult resolves the future with a generous deadline so a hung
// execution fails the test instead of blocking it.
func waitResult(t *testing.T, f *ExecutionFuture) (*ResultSet, error) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rs, err := f.Get(ctx)
	if err == context.DeadlineExceeded {
		t.Fatal("execution did not reach a terminal state")
	}
	return rs, err
}
