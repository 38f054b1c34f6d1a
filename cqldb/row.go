//
// Copyright (c) 2026 the cassandra-go-sdk authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 as shown at
//  https://www.apache.org/licenses/LICENSE-2.0
//

package cqldb

import (
	"time"

	"github.com/eperott/cassandra-go-sdk/cqldb/cqlerr"
	"github.com/eperott/cassandra-go-sdk/cqldb/proto"
	"github.com/eperott/cassandra-go-sdk/cqldb/types"
)

// GettableByName is the generic read-by-name contract consumed by generated
// binding code. The execution core produces values through this contract
// only; how bindings are generated is outside its concern.
type GettableByName interface {
	// Get returns the value of the named column and whether the column
	// exists.
	Get(name string) (types.FieldValue, bool)

	// Scan stores the value of the named column into the value pointed to
	// by dest. It is the generic variant used for parameterized types.
	Scan(name string, dest interface{}) error
}

// SettableByName is the generic write-by-name contract consumed by generated
// binding code when producing bound values for a statement.
type SettableByName interface {
	// Set stores a value under the specified name.
	Set(name string, value types.FieldValue) error
}

// Row represents one row of a result page. The column metadata describing
// the row shape is attached once per logical query and shared read-only by
// every page of that query.
//
// Row implements GettableByName.
type Row struct {
	columns []proto.Column
	byName  map[string]int
	values  []types.FieldValue
}

// Columns returns the shared column metadata describing the row shape.
func (r *Row) Columns() []proto.Column {
	return r.columns
}

// Get returns the value of the named column and whether the column exists.
func (r *Row) Get(name string) (types.FieldValue, bool) {
	idx, ok := r.byName[name]
	if !ok || idx >= len(r.values) {
		return nil, false
	}
	return r.values[idx], true
}

// GetBool returns the value of the named column as a bool.
// ok is false if the column does not exist or holds a different type.
func (r *Row) GetBool(name string) (b bool, ok bool) {
	v, ok := r.Get(name)
	if !ok {
		return
	}
	b, ok = v.(bool)
	return
}

// GetInt returns the value of the named column as an int32.
// ok is false if the column does not exist or holds a different type.
func (r *Row) GetInt(name string) (i int32, ok bool) {
	v, ok := r.Get(name)
	if !ok {
		return
	}
	i, ok = v.(int32)
	return
}

// GetInt64 returns the value of the named column as an int64.
// ok is false if the column does not exist or holds a different type.
func (r *Row) GetInt64(name string) (i int64, ok bool) {
	v, ok := r.Get(name)
	if !ok {
		return
	}
	i, ok = v.(int64)
	return
}

// GetFloat64 returns the value of the named column as a float64.
// ok is false if the column does not exist or holds a different type.
func (r *Row) GetFloat64(name string) (f float64, ok bool) {
	v, ok := r.Get(name)
	if !ok {
		return
	}
	f, ok = v.(float64)
	return
}

// GetString returns the value of the named column as a string.
// ok is false if the column does not exist or holds a different type.
func (r *Row) GetString(name string) (s string, ok bool) {
	v, ok := r.Get(name)
	if !ok {
		return
	}
	s, ok = v.(string)
	return
}

// GetBytes returns the value of the named column as a byte slice.
// ok is false if the column does not exist or holds a different type.
func (r *Row) GetBytes(name string) (b []byte, ok bool) {
	v, ok := r.Get(name)
	if !ok {
		return
	}
	b, ok = v.([]byte)
	return
}

// GetTime returns the value of the named column as a time.Time.
// ok is false if the column does not exist or holds a different type.
func (r *Row) GetTime(name string) (t time.Time, ok bool) {
	v, ok := r.Get(name)
	if !ok {
		return
	}
	t, ok = v.(time.Time)
	return
}

// Scan stores the value of the named column into the value pointed to by
// dest, which must be a non-nil pointer whose element type matches the
// stored value.
func (r *Row) Scan(name string, dest interface{}) error {
	v, ok := r.Get(name)
	if !ok {
		return cqlerr.NewIllegalArgument("no column named %q", name)
	}

	switch d := dest.(type) {
	case *types.FieldValue:
		*d = v
		return nil
	case *bool:
		return scanAs(name, v, d)
	case *int32:
		return scanAs(name, v, d)
	case *int64:
		return scanAs(name, v, d)
	case *float64:
		return scanAs(name, v, d)
	case *string:
		return scanAs(name, v, d)
	case *[]byte:
		return scanAs(name, v, d)
	case *time.Time:
		return scanAs(name, v, d)
	default:
		return cqlerr.NewIllegalArgument("unsupported scan destination %T for column %q", dest, name)
	}
}

func scanAs[T any](name string, v types.FieldValue, dest *T) error {
	t, ok := v.(T)
	if !ok {
		return cqlerr.NewIllegalArgument("column %q holds %T, not %T", name, v, t)
	}
	*dest = t
	return nil
}

// ValueMap is a mutable name-to-value mapping used to assemble the named
// bound values of a Statement. It implements both SettableByName and
// GettableByName so generated binding code can populate and inspect it.
type ValueMap map[string]types.FieldValue

// Set stores a value under the specified name.
func (m ValueMap) Set(name string, value types.FieldValue) error {
	if name == "" {
		return cqlerr.NewIllegalArgument("value name must be non-empty")
	}
	m[name] = value
	return nil
}

// Get returns the value stored under the specified name and whether it
// exists.
func (m ValueMap) Get(name string) (types.FieldValue, bool) {
	v, ok := m[name]
	return v, ok
}

// Scan stores the value under the specified name into the value pointed to
// by dest.
func (m ValueMap) Scan(name string, dest interface{}) error {
	v, ok := m[name]
	if !ok {
		return cqlerr.NewIllegalArgument("no value named %q", name)
	}

	if d, ok := dest.(*types.FieldValue); ok {
		*d = v
		return nil
	}

	return cqlerr.NewIllegalArgument("unsupported scan destination %T for value %q", dest, name)
}
