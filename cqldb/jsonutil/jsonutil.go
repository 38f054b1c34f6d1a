//
// Copyright (c) 2026 the cassandra-go-sdk authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 as shown at
//  https://www.apache.org/licenses/LICENSE-2.0
//

// Package jsonutil provides helpers for rendering driver values as JSON,
// used by the String() methods on results and execution metadata.
package jsonutil

import (
	"encoding/json"
)

const emptyJSONObject = "{}"

// AsJSON encodes the specified value into a JSON string. Values that cannot
// be encoded render as an empty JSON object.
func AsJSON(v interface{}) string {
	return asJSONString(v, false)
}

// AsPrettyJSON encodes the specified value into an indented JSON string.
func AsPrettyJSON(v interface{}) string {
	return asJSONString(v, true)
}

func asJSONString(v interface{}, pretty bool) string {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return emptyJSONObject
	}
	return string(b)
}
