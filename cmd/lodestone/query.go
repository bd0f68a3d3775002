// Copyright (C) 2024-2026  Lodestone contributors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"git.lukeshu.com/go/lowmemjson"
	"github.com/datawire/dlib/dlog"
	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/spf13/cobra"

	"github.com/lodestone-db/lodestone/lib/containers"
	"github.com/lodestone-db/lodestone/lib/docmodel"
	"github.com/lodestone-db/lodestone/lib/jsonutil"
	"github.com/lodestone-db/lodestone/lib/localcache"
	"github.com/lodestone-db/lodestone/lib/textui"
)

func init() {
	var jsonFlag bool
	cmd := subcommand{
		Command: cobra.Command{
			Use:   "query COLLECTION",
			Short: "List the documents in a collection, in key order",
			Args:  cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
		},
		RunE: func(cache *localcache.Cache, cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			parent, err := docmodel.ParsePath(args[0])
			if err != nil {
				return err
			}

			docs := cache.ScanCollection(ctx, parent)
			dlog.Debugf(ctx, "%v documents in %q", len(docs), parent)

			if jsonFlag {
				entries := make([]dumpEntry, len(docs))
				for i, doc := range docs {
					entries[i] = dumpEntry{Path: doc.Path.String(), Body: doc.Body}
				}
				return jsonutil.Write(os.Stdout, entries, lowmemjson.ReEncoder{
					Indent:                "\t",
					CompactIfUnder:        80, //nolint:gomnd // This is what looks nice.
					ForceTrailingNewlines: true,
				})
			}
			for _, doc := range docs {
				textui.Fprintf(os.Stdout, "%s\t%s\n", doc.Path, doc.Body)
			}
			return nil
		},
	}
	cmd.Command.Flags().BoolVar(&jsonFlag, "json", false, "emit the documents as a JSON array")
	subcommands = append(subcommands, cmd)
}

func init() {
	subcommands = append(subcommands, subcommand{
		Command: cobra.Command{
			Use:   "ls-collections",
			Short: "List the distinct collections that have documents",
			Args:  cliutil.WrapPositionalArgs(cobra.NoArgs),
		},
		RunE: func(cache *localcache.Cache, cmd *cobra.Command, _ []string) error {
			snap := cache.Snapshot()

			collections := containers.Set[string]{}
			snap.Docs.Range(func(_ docmodel.ResourcePath, doc docmodel.Document) bool {
				collections.Insert(doc.CollectionPath().String())
				return true
			})

			return jsonutil.Write(os.Stdout, collections, lowmemjson.ReEncoder{
				Indent:                "\t",
				ForceTrailingNewlines: true,
			})
		},
	})
}
