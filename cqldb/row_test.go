//
// Copyright (c) 2026 the cassandra-go-sdk authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 as shown at
//  https://www.apache.org/licenses/LICENSE-2.0
//

package cqldb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eperott/cassandra-go-sdk/cqldb/cqlerr"
	"github.com/eperott/cassandra-go-sdk/cqldb/proto"
	"github.com/eperott/cassandra-go-sdk/cqldb/types"
)

func testRow() *Row {
	columns := []proto.Column{
		{Name: "active", Type: types.Boolean},
		{Name: "age", Type: types.Int},
		{Name: "views", Type: types.Bigint},
		{Name: "score", Type: types.Double},
		{Name: "name", Type: types.Text},
		{Name: "payload", Type: types.Blob},
		{Name: "created", Type: types.Timestamp},
	}
	byName := make(map[string]int, len(columns))
	for i, col := range columns {
		byName[col.Name] = i
	}

	return &Row{
		columns: columns,
		byName:  byName,
		values: []types.FieldValue{
			true,
			int32(30),
			int64(12345),
			99.5,
			"Bob",
			[]byte{0x01, 0x02},
			time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		},
	}
}

func TestRowTypedGetters(t *testing.T) {
	row := testRow()

	b, ok := row.GetBool("active")
	assert.True(t, ok)
	assert.True(t, b)

	i, ok := row.GetInt("age")
	assert.True(t, ok)
	assert.Equal(t, int32(30), i)

	i64, ok := row.GetInt64("views")
	assert.True(t, ok)
	assert.Equal(t, int64(12345), i64)

	f, ok := row.GetFloat64("score")
	assert.True(t, ok)
	assert.Equal(t, 99.5, f)

	s, ok := row.GetString("name")
	assert.True(t, ok)
	assert.Equal(t, "Bob", s)

	bs, ok := row.GetBytes("payload")
	assert.True(t, ok)
	assert.Equal(t, []byte{0x01, 0x02}, bs)

	ts, ok := row.GetTime("created")
	assert.True(t, ok)
	assert.Equal(t, 2026, ts.Year())
}

func TestRowGetterMismatches(t *testing.T) {
	row := testRow()

	_, ok := row.GetBool("name")
	assert.False(t, ok, "a type mismatch should report !ok")

	_, ok = row.GetInt("views")
	assert.False(t, ok, "bigint must not silently narrow to int")

	_, ok = row.GetString("missing")
	assert.False(t, ok, "an unknown column should report !ok")

	_, ok = row.Get("missing")
	assert.False(t, ok)
}

func TestRowScan(t *testing.T) {
	row := testRow()

	var name string
	require.NoError(t, row.Scan("name", &name))
	assert.Equal(t, "Bob", name)

	var age int32
	require.NoError(t, row.Scan("age", &age))
	assert.Equal(t, int32(30), age)

	var v types.FieldValue
	require.NoError(t, row.Scan("score", &v))
	assert.Equal(t, 99.5, v)

	err := row.Scan("name", &age)
	require.Error(t, err)
	assert.True(t, cqlerr.IsIllegalArgument(err), "got %v", err)

	err = row.Scan("missing", &name)
	require.Error(t, err)
	assert.True(t, cqlerr.IsIllegalArgument(err), "got %v", err)

	var unsupported struct{}
	err = row.Scan("name", &unsupported)
	require.Error(t, err)
	assert.True(t, cqlerr.IsIllegalArgument(err), "got %v", err)
}

func TestValueMap(t *testing.T) {
	m := ValueMap{}

	require.NoError(t, m.Set("id", int32(7)))
	require.NoError(t, m.Set("name", "Alice"))

	err := m.Set("", "x")
	require.Error(t, err)
	assert.True(t, cqlerr.IsIllegalArgument(err), "got %v", err)

	v, ok := m.Get("id")
	assert.True(t, ok)
	assert.Equal(t, int32(7), v)

	_, ok = m.Get("missing")
	assert.False(t, ok)

	var out types.FieldValue
	require.NoError(t, m.Scan("name", &out))
	assert.Equal(t, "Alice", out)

	err = m.Scan("missing", &out)
	require.Error(t, err)
	assert.True(t, cqlerr.IsIllegalArgument(err), "got %v", err)

	var unsupported int32
	err = m.Scan("name", &unsupported)
	require.Error(t, err)
	assert.True(t, cqlerr.IsIllegalArgument(err), "got %v", err)
}
