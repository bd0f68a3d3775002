// Copyright (C) 2024-2026  Lodestone contributors
//
// SPDX-License-Identifier: Apache-2.0

package containers

import (
	"encoding/json"
)

// Optional is a value that may be absent.  Absent encodes to JSON as
// null.
type Optional[T any] struct {
	OK  bool
	Val T
}

// Some returns an Optional holding val.
func Some[T any](val T) Optional[T] {
	return Optional[T]{OK: true, Val: val}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// GetOr returns the held value, or fallback if absent.
func (o Optional[T]) GetOr(fallback T) T {
	if !o.OK {
		return fallback
	}
	return o.Val
}

var (
	_ json.Marshaler   = Optional[bool]{}
	_ json.Unmarshaler = (*Optional[bool])(nil)
)

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.OK {
		return []byte("null"), nil
	}
	return json.Marshal(o.Val)
}

func (o *Optional[T]) UnmarshalJSON(dat []byte) error {
	if string(dat) == "null" {
		*o = Optional[T]{}
		return nil
	}
	o.OK = true
	return json.Unmarshal(dat, &o.Val)
}
