//
// Copyright (c) 2026 the cassandra-go-sdk authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 as shown at
//  https://www.apache.org/licenses/LICENSE-2.0
//

/*
Package cassandra is the root of the Go client driver for Apache
Cassandra-compatible clustered databases.

The driver core lives in the cqldb package. It turns a logical statement
(query text or prepared-statement id plus bound values) into wire requests,
routes them to coordinator nodes, tolerates node and network failure through
retries and speculative execution, and delivers results as paginated,
asynchronously fetchable row sequences.

See the cqldb package documentation for usage.
*/
package cassandra
