// Copyright (C) 2024-2026  Lodestone contributors
//
// SPDX-License-Identifier: Apache-2.0

package localcache

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/datawire/dlib/dlog"

	"github.com/lodestone-db/lodestone/lib/containers"
	"github.com/lodestone-db/lodestone/lib/docmodel"
	"github.com/lodestone-db/lodestone/lib/immutable"
)

// Snapshot is one version of the cache's contents.  The underlying map
// is immutable, so a Snapshot stays valid (and consistent) for as long
// as the holder keeps it, regardless of later writes to the Cache.
type Snapshot struct {
	// Rev is the revision of the write that produced this snapshot;
	// the empty cache is revision 0.
	Rev  uint64
	Docs immutable.Map[docmodel.ResourcePath, docmodel.Document]
}

// Get returns the document at path, if any.
func (s Snapshot) Get(path docmodel.ResourcePath) (docmodel.Document, bool) {
	return s.Docs.Get(path)
}

// Len returns the number of documents in the snapshot.
func (s Snapshot) Len() int {
	return s.Docs.Len()
}

// queryKey identifies a collection scan against one snapshot.  Keying
// on the revision means a write never needs to purge the query cache;
// entries for old revisions simply stop being asked for.
type queryKey struct {
	rev    uint64
	parent string
}

// Cache is an in-process document cache.  Reads operate on immutable
// snapshots and never take a lock; a mutex serializes writers only.
//
// A zero Cache is not usable; it must be created with NewCache.
type Cache struct {
	mu      sync.Mutex // held by writers
	current atomic.Pointer[Snapshot]

	queries *containers.LRUCache[queryKey, []docmodel.Document]
	scratch containers.SlicePool[docmodel.Document]
}

// queryCacheSize is how many collection scans are remembered across
// all revisions.
const queryCacheSize = 128

// NewCache returns an empty cache.
func NewCache() *Cache {
	c := &Cache{
		queries: containers.NewLRUCache[queryKey, []docmodel.Document](queryCacheSize),
	}
	c.current.Store(&Snapshot{
		Docs: immutable.NewMap[docmodel.ResourcePath, docmodel.Document](
			docmodel.ResourcePath.Compare),
	})
	return c
}

// Snapshot returns the current contents.  The returned snapshot is
// unaffected by subsequent writes.
func (c *Cache) Snapshot() Snapshot {
	return *c.current.Load()
}

// Get returns the current document at path, if any.
func (c *Cache) Get(path docmodel.ResourcePath) (docmodel.Document, bool) {
	return c.Snapshot().Get(path)
}

// Len returns the current number of documents.
func (c *Cache) Len() int {
	return c.Snapshot().Len()
}

// Put stores doc, replacing any previous version of it, and returns
// the revision of the write.
func (c *Cache) Put(ctx context.Context, doc docmodel.Document) (uint64, error) {
	if doc.Path.Empty() || doc.Path.Len()%2 != 0 {
		return 0, fmt.Errorf("localcache: %q does not name a document", doc.Path)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	old := c.current.Load()
	next := &Snapshot{Rev: old.Rev + 1}
	doc.Rev = containers.Optional[uint64]{OK: true, Val: next.Rev}
	next.Docs = old.Docs.Insert(doc.Path, doc)
	c.current.Store(next)

	dlog.Debugf(ctx, "put %v (%v docs)", doc, next.Docs.Len())
	return next.Rev, nil
}

// Delete removes the document at path.  Deleting an absent document
// still advances the revision.
func (c *Cache) Delete(ctx context.Context, path docmodel.ResourcePath) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	old := c.current.Load()
	next := &Snapshot{
		Rev:  old.Rev + 1,
		Docs: old.Docs.Delete(path),
	}
	c.current.Store(next)

	dlog.Debugf(ctx, "delete %v (%v docs)", path, next.Docs.Len())
	return next.Rev
}

// ScanCollection returns the documents that are immediate children of
// parent, in path order.  Results are memoized per (revision,
// collection) in an LRU, so repeated scans of an unchanged cache are
// answered without touching the map.
//
// The returned slice is shared with the query cache; callers must not
// modify it.
func (c *Cache) ScanCollection(ctx context.Context, parent docmodel.ResourcePath) []docmodel.Document {
	snap := c.Snapshot()
	key := queryKey{rev: snap.Rev, parent: parent.String()}
	if docs, ok := c.queries.Get(key); ok {
		dlog.Tracef(ctx, "scan %q rev=%v: cached, %v docs", key.parent, key.rev, len(docs))
		return docs
	}

	docs := c.scanInto(snap, parent)
	c.queries.Add(key, docs)
	dlog.Tracef(ctx, "scan %q rev=%v: computed, %v docs", key.parent, key.rev, len(docs))
	return docs
}

func (c *Cache) scanInto(snap Snapshot, parent docmodel.ResourcePath) []docmodel.Document {
	// Build into a pooled scratch slice, then copy out a right-sized
	// result; the result outlives the call (it goes in the query
	// cache), the scratch does not.
	buf := c.scratch.Get(16)
	defer func() { c.scratch.Put(buf) }()
	buf = ScanCollectionAppend(buf[:0], snap, parent)
	if len(buf) == 0 {
		return nil
	}
	docs := make([]docmodel.Document, len(buf))
	copy(docs, buf)
	return docs
}

// ScanCollectionAppend appends the documents in snap that are
// immediate children of parent to out, in path order, and returns the
// extended slice.
func ScanCollectionAppend(out []docmodel.Document, snap Snapshot, parent docmodel.ResourcePath) []docmodel.Document {
	// Children of parent sort as a contiguous run starting right
	// after parent itself; walk it and stop at the first key that
	// leaves the subtree.  Grandchildren (documents in
	// subcollections) are inside the run but deeper, so skip them.
	snap.Docs.RangeFrom(parent, func(path docmodel.ResourcePath, doc docmodel.Document) bool {
		if !parent.IsPrefixOf(path) {
			return false
		}
		if path.Len() == parent.Len()+1 {
			out = append(out, doc)
		}
		return true
	})
	return out
}
