// Copyright (C) 2024-2026  Lodestone contributors
//
// SPDX-License-Identifier: Apache-2.0

package docmodel

import (
	"encoding/json"
	"fmt"

	"github.com/lodestone-db/lodestone/lib/containers"
)

// Document is a single stored document: a path, an opaque JSON body,
// and the revision of the update that produced it.  A Document is a
// value; the cache hands them out by copy and never mutates one.
type Document struct {
	Path ResourcePath
	Body json.RawMessage
	// Rev is unset for documents that were loaded from a dump rather
	// than written through a cache.
	Rev containers.Optional[uint64]
}

// NewDocument returns a document at path with the given body.  The
// path must name a document, not a collection (even segment count).
func NewDocument(path ResourcePath, body json.RawMessage) (Document, error) {
	if path.Empty() || path.Len()%2 != 0 {
		return Document{}, fmt.Errorf("docmodel: %q does not name a document", path)
	}
	return Document{Path: path, Body: body}, nil
}

// CollectionPath returns the path of the collection holding the
// document.
func (doc Document) CollectionPath() ResourcePath {
	return doc.Path.Parent()
}

// ID returns the document's name within its collection.
func (doc Document) ID() string {
	return doc.Path.Last()
}

func (doc Document) String() string {
	if doc.Rev.OK {
		return fmt.Sprintf("%s@%d", doc.Path, doc.Rev.Val)
	}
	return doc.Path.String()
}
