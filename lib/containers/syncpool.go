// Copyright (C) 2024-2026  Lodestone contributors
//
// SPDX-License-Identifier: Apache-2.0

package containers

import (
	"sync"
)

// SyncPool is a typed wrapper around sync.Pool.
type SyncPool[T any] struct {
	New func() T

	inner sync.Pool
}

func (p *SyncPool[T]) Get() (val T, ok bool) {
	_val := p.inner.Get()
	switch {
	case _val != nil:
		//nolint:forcetypeassert // Typed wrapper around untyped lib.
		return _val.(T), true
	case p.New != nil:
		return p.New(), true
	default:
		var zero T
		return zero, false
	}
}

func (p *SyncPool[T]) Put(val T) {
	p.inner.Put(val)
}
