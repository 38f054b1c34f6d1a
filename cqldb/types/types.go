//
// Copyright (c) 2026 the cassandra-go-sdk authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 as shown at
//  https://www.apache.org/licenses/LICENSE-2.0
//

// Package types defines types and values used to represent and manipulate
// data exchanged with the database, as well as the consistency levels that
// control request execution.
package types

// FieldValue represents a column value.
// This is an empty interface.
//
// Concrete values use the following Go types:
//
//	Database Types      Go Driver Types
//	==============      ================
//	BOOLEAN             bool
//	INT                 int32
//	BIGINT              int64
//	DOUBLE              float64
//	TEXT                string
//	BLOB                []byte
//	TIMESTAMP           time.Time
//	UUID                [16]byte or string
//	LIST/SET            []FieldValue
//	MAP                 map[FieldValue]FieldValue
type FieldValue interface{}

// Consistency specifies how many replicas must acknowledge a read or write
// before the coordinator reports success to the driver.
type Consistency int

const (
	// Any waits for any node, including a hinted handoff, to acknowledge a
	// write. Not usable for reads.
	Any Consistency = iota + 1

	// One waits for one replica.
	One

	// Two waits for two replicas.
	Two

	// Three waits for three replicas.
	Three

	// Quorum waits for a quorum of replicas across the cluster.
	Quorum

	// All waits for all replicas.
	All

	// LocalQuorum waits for a quorum of replicas in the local datacenter.
	LocalQuorum

	// EachQuorum waits for a quorum of replicas in each datacenter.
	EachQuorum

	// LocalOne waits for one replica in the local datacenter.
	LocalOne
)

// String returns a string representation for the consistency level.
//
// This implements the fmt.Stringer interface.
func (c Consistency) String() string {
	switch c {
	case Any:
		return "ANY"
	case One:
		return "ONE"
	case Two:
		return "TWO"
	case Three:
		return "THREE"
	case Quorum:
		return "QUORUM"
	case All:
		return "ALL"
	case LocalQuorum:
		return "LOCAL_QUORUM"
	case EachQuorum:
		return "EACH_QUORUM"
	case LocalOne:
		return "LOCAL_ONE"
	default:
		return "UNKNOWN"
	}
}

// SerialConsistency specifies the consistency used by the Paxos phase of
// conditional (lightweight transaction) statements.
type SerialConsistency int

const (
	// Serial runs the Paxos phase across the whole cluster.
	Serial SerialConsistency = iota + 1

	// LocalSerial confines the Paxos phase to the local datacenter.
	LocalSerial
)

// String returns a string representation for the serial consistency level.
//
// This implements the fmt.Stringer interface.
func (c SerialConsistency) String() string {
	switch c {
	case Serial:
		return "SERIAL"
	case LocalSerial:
		return "LOCAL_SERIAL"
	default:
		return "UNKNOWN"
	}
}

// TypeCode identifies the database type of a column.
type TypeCode int

const (
	// Boolean identifies a BOOLEAN column.
	Boolean TypeCode = iota + 1

	// Int identifies a 32-bit INT column.
	Int

	// Bigint identifies a 64-bit BIGINT column.
	Bigint

	// Double identifies a DOUBLE column.
	Double

	// Text identifies a TEXT/VARCHAR column.
	Text

	// Blob identifies a BLOB column.
	Blob

	// Timestamp identifies a TIMESTAMP column.
	Timestamp

	// UUID identifies a UUID or TIMEUUID column.
	UUID

	// List identifies a LIST column.
	List

	// Set identifies a SET column.
	Set

	// Map identifies a MAP column.
	Map
)

// String returns a string representation for the type code.
//
// This implements the fmt.Stringer interface.
func (t TypeCode) String() string {
	switch t {
	case Boolean:
		return "boolean"
	case Int:
		return "int"
	case Bigint:
		return "bigint"
	case Double:
		return "double"
	case Text:
		return "text"
	case Blob:
		return "blob"
	case Timestamp:
		return "timestamp"
	case UUID:
		return "uuid"
	case List:
		return "list"
	case Set:
		return "set"
	case Map:
		return "map"
	default:
		return "unknown"
	}
}
