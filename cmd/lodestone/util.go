// Copyright (C) 2024-2026  Lodestone contributors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/datawire/dlib/dlog"

	"github.com/lodestone-db/lodestone/lib/docmodel"
	"github.com/lodestone-db/lodestone/lib/jsonutil"
	"github.com/lodestone-db/lodestone/lib/localcache"
	"github.com/lodestone-db/lodestone/lib/textui"
)

// dumpEntry is one document in a JSON dump file.
type dumpEntry struct {
	Path string          `json:"path"`
	Body json.RawMessage `json:"body"`
}

func loadDump(ctx context.Context, cache *localcache.Cache, filename string) error {
	entries, err := jsonutil.ReadFile[[]dumpEntry](ctx, filename)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		path, err := docmodel.ParsePath(entry.Path)
		if err != nil {
			return fmt.Errorf("load %q: %w", filename, err)
		}
		doc, err := docmodel.NewDocument(path, entry.Body)
		if err != nil {
			return fmt.Errorf("load %q: %w", filename, err)
		}
		if _, err := cache.Put(ctx, doc); err != nil {
			return fmt.Errorf("load %q: %w", filename, err)
		}
	}
	dlog.Infof(ctx, "loaded %v documents from %q", textui.Humanized(cache.Len()), filename)
	return nil
}
