// Copyright (C) 2024-2026  Lodestone contributors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/lodestone-db/lodestone/lib/docmodel"
	"github.com/lodestone-db/lodestone/lib/localcache"
	"github.com/lodestone-db/lodestone/lib/textui"
)

func init() {
	subcommands = append(subcommands, subcommand{
		Command: cobra.Command{
			Use:   "dump",
			Short: "Spew all documents as parsed, plus index statistics",
			Args:  cliutil.WrapPositionalArgs(cobra.NoArgs),
		},
		RunE: func(cache *localcache.Cache, cmd *cobra.Command, _ []string) error {
			snap := cache.Snapshot()

			spew := spew.NewDefaultConfig()
			spew.DisablePointerAddresses = true

			snap.Docs.Range(func(path docmodel.ResourcePath, doc docmodel.Document) bool {
				textui.Fprintf(os.Stdout, "%s = ", path)
				spew.Dump(doc)
				_, _ = os.Stdout.WriteString("\n")
				return true
			})

			textui.Fprintf(os.Stdout, "%v documents at revision %v\n",
				textui.Humanized(snap.Len()), snap.Rev)
			if stats, ok := snap.Docs.TreeStats(); ok {
				textui.Fprintf(os.Stdout, "index: tree-backed, height=%v black-height=%v\n",
					stats.Height, stats.BlackHeight)
			} else {
				textui.Fprintf(os.Stdout, "index: array-backed\n")
			}
			return nil
		},
	})
}
