//
// Copyright (c) 2026 the cassandra-go-sdk authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 as shown at
//  https://www.apache.org/licenses/LICENSE-2.0
//

// Package bindings classifies the declared types of entity properties that a
// code generator injects into, or extracts from, the generic get/set-by-name
// accessors of the cqldb package.
//
// The goal of the classification is to detect whether a type contains other
// mapped entities, which must be translated into user-defined-type values by
// the generated code. The execution core never consumes this package; it is
// used only by generated binding code.
package bindings

// Kind identifies the shape of a classified property type. The set of kinds
// is closed.
type Kind int

const (
	// Simple is a type that does not contain any mapped entity. Note that it
	// can still be a collection, for example a map of string to list of int.
	Simple Kind = iota

	// SingleEntity is a mapped entity.
	SingleEntity

	// ListOf is a list whose element type is not simple.
	ListOf

	// SetOf is a set whose element type is not simple.
	SetOf

	// MapOf is a map where the key type, the value type, or both, are not
	// simple.
	MapOf
)

// String returns a string representation for the kind.
//
// This implements the fmt.Stringer interface.
func (k Kind) String() string {
	switch k {
	case Simple:
		return "simple"
	case SingleEntity:
		return "entity"
	case ListOf:
		return "list"
	case SetOf:
		return "set"
	case MapOf:
		return "map"
	default:
		return "unknown"
	}
}

// TypeDescriptor describes a declared property type to be classified.
// It is a plain data view of the source type system, so the classification
// stays independent of how descriptors are produced.
type TypeDescriptor struct {
	// Name is the type name, used for diagnostics only.
	Name string

	// Entity reports whether the type itself is a mapped entity.
	Entity bool

	// List, Set and Map report the collection shape of the type. At most one
	// may be set.
	List bool
	Set  bool
	Map  bool

	// Elem is the element type for lists and sets, and the value type for
	// maps.
	Elem *TypeDescriptor

	// Key is the key type for maps.
	Key *TypeDescriptor
}

// PropertyType is the classification result: a tagged variant over the
// closed set of kinds, with the element classifications retained for the
// collection kinds.
type PropertyType struct {
	// Kind is the variant tag.
	Kind Kind

	// Name is the name of the classified type.
	Name string

	// Elem is the classification of the element (lists, sets) or value
	// (maps) type. Nil for Simple and SingleEntity.
	Elem *PropertyType

	// Key is the classification of the key type for maps. Nil otherwise.
	Key *PropertyType
}

// Classify recursively classifies the specified type descriptor.
//
// A list or set whose element classifies as Simple collapses to Simple; a
// map collapses to Simple only when both its key and value classify as
// Simple. A nil descriptor classifies as Simple.
func Classify(t *TypeDescriptor) *PropertyType {
	if t == nil {
		return &PropertyType{Kind: Simple}
	}

	switch {
	case t.Entity:
		return &PropertyType{Kind: SingleEntity, Name: t.Name}

	case t.List:
		elem := Classify(t.Elem)
		if elem.Kind == Simple {
			return &PropertyType{Kind: Simple, Name: t.Name}
		}
		return &PropertyType{Kind: ListOf, Name: t.Name, Elem: elem}

	case t.Set:
		elem := Classify(t.Elem)
		if elem.Kind == Simple {
			return &PropertyType{Kind: Simple, Name: t.Name}
		}
		return &PropertyType{Kind: SetOf, Name: t.Name, Elem: elem}

	case t.Map:
		key := Classify(t.Key)
		value := Classify(t.Elem)
		if key.Kind == Simple && value.Kind == Simple {
			return &PropertyType{Kind: Simple, Name: t.Name}
		}
		return &PropertyType{Kind: MapOf, Name: t.Name, Key: key, Elem: value}
	}

	return &PropertyType{Kind: Simple, Name: t.Name}
}
