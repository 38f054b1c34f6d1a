//
// Copyright (c) 2026 the cassandra-go-sdk authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 as shown at
//  https://www.apache.org/licenses/LICENSE-2.0
//

// Package cqldb implements the request-execution and result-paging engine of
// the driver.
//
// A Client turns a Statement into one or more wire requests, routes them to
// coordinator nodes chosen by a NodeSelector, tolerates node and network
// failure through a RetryPolicy and a SpeculativeExecutionPolicy, and
// delivers results as a ResultSet: a paginated sequence of rows whose
// subsequent pages are fetched asynchronously on demand.
//
// Cluster topology, connection pooling and the frame codec are external
// collaborators, consumed through the interfaces in the common and proto
// packages.
package cqldb
