// Copyright (C) 2024-2026  Lodestone contributors
//
// SPDX-License-Identifier: Apache-2.0

package docmodel

import (
	"fmt"
	"strings"
)

// ResourcePath is a slash-separated path naming a document or
// collection.  Segments at even depth (0-based) name collections,
// segments at odd depth name documents.
//
// A ResourcePath is a value type.  Parent returns a path sharing the
// segment slice with the original, which is safe because paths are
// never mutated in place; Append copies into a fresh slice so that two
// appends off the same parent can never alias each other.
type ResourcePath struct {
	segments []string
}

// NewResourcePath returns the path made of the given segments.  All
// segments must be non-empty.
func NewResourcePath(segments ...string) (ResourcePath, error) {
	for _, seg := range segments {
		if seg == "" {
			return ResourcePath{}, fmt.Errorf("docmodel: empty path segment in %q",
				strings.Join(segments, "/"))
		}
	}
	return ResourcePath{segments: segments}, nil
}

// MustResourcePath is NewResourcePath for compile-time-constant paths;
// it panics on an invalid segment.
func MustResourcePath(segments ...string) ResourcePath {
	path, err := NewResourcePath(segments...)
	if err != nil {
		panic(err)
	}
	return path
}

// ParsePath parses a slash-separated path.  Leading and trailing
// slashes are tolerated; interior empty segments are not.
func ParsePath(str string) (ResourcePath, error) {
	trimmed := strings.Trim(str, "/")
	if trimmed == "" {
		return ResourcePath{}, nil
	}
	segments := strings.Split(trimmed, "/")
	for _, seg := range segments {
		if seg == "" {
			return ResourcePath{}, fmt.Errorf("docmodel: invalid path %q: empty segment", str)
		}
	}
	return ResourcePath{segments: segments}, nil
}

// String returns the canonical slash-separated form.
func (p ResourcePath) String() string {
	return strings.Join(p.segments, "/")
}

// Len returns the number of segments.
func (p ResourcePath) Len() int { return len(p.segments) }

// Empty reports whether the path has no segments.
func (p ResourcePath) Empty() bool { return len(p.segments) == 0 }

// First returns the first segment.  The path must not be empty.
func (p ResourcePath) First() string { return p.segments[0] }

// Last returns the last segment.  The path must not be empty.
func (p ResourcePath) Last() string { return p.segments[len(p.segments)-1] }

// Segment returns the i'th segment.
func (p ResourcePath) Segment(i int) string { return p.segments[i] }

// Append returns the path extended by the given segments.
func (p ResourcePath) Append(segments ...string) ResourcePath {
	ret := make([]string, 0, len(p.segments)+len(segments))
	ret = append(ret, p.segments...)
	ret = append(ret, segments...)
	return ResourcePath{segments: ret}
}

// Parent returns the path with the last segment removed.  The parent
// of an empty path is the empty path.
func (p ResourcePath) Parent() ResourcePath {
	if len(p.segments) == 0 {
		return ResourcePath{}
	}
	return ResourcePath{segments: p.segments[:len(p.segments)-1]}
}

// IsPrefixOf reports whether other starts with all of p's segments.
// Every path is a prefix of itself.
func (p ResourcePath) IsPrefixOf(other ResourcePath) bool {
	if len(p.segments) > len(other.segments) {
		return false
	}
	for i, seg := range p.segments {
		if other.segments[i] != seg {
			return false
		}
	}
	return true
}

// Equal reports whether two paths have the same segments.
func (p ResourcePath) Equal(other ResourcePath) bool {
	return p.Compare(other) == 0
}

// Compare orders paths segment-wise; when one path is a strict prefix
// of the other, the shorter path sorts first.  This places a
// collection immediately before the documents inside it.
func (p ResourcePath) Compare(other ResourcePath) int {
	for i := 0; i < len(p.segments) && i < len(other.segments); i++ {
		switch {
		case p.segments[i] < other.segments[i]:
			return -1
		case p.segments[i] > other.segments[i]:
			return 1
		}
	}
	switch {
	case len(p.segments) < len(other.segments):
		return -1
	case len(p.segments) > len(other.segments):
		return 1
	default:
		return 0
	}
}
