// Copyright (C) 2024-2026  Lodestone contributors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/datawire/dlib/dgroup"
	"github.com/datawire/dlib/dlog"
	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/spf13/cobra"

	"github.com/lodestone-db/lodestone/lib/docmodel"
	"github.com/lodestone-db/lodestone/lib/localcache"
	"github.com/lodestone-db/lodestone/lib/textui"
)

func init() {
	var (
		docsFlag    int
		readersFlag int
		writesFlag  int
	)
	cmd := subcommand{
		Command: cobra.Command{
			Use:   "bench",
			Short: "Run concurrent readers over an old snapshot while a writer advances",
			Args:  cliutil.WrapPositionalArgs(cobra.NoArgs),
		},
		RunE: func(cache *localcache.Cache, cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			// Fill the cache; readers will hold on to this version.
			fillCtx := dlog.WithField(ctx, "lodestone.bench.step", "fill")
			fillStart := time.Now()
			for i := 0; i < docsFlag; i++ {
				doc, err := docmodel.NewDocument(
					benchPath(i), []byte(`{"bench":true}`))
				if err != nil {
					return err
				}
				if _, err := cache.Put(fillCtx, doc); err != nil {
					return err
				}
			}
			dlog.Infof(fillCtx, "filled %v documents in %v",
				textui.Humanized(docsFlag), time.Since(fillStart))

			snap := cache.Snapshot()
			parent := docmodel.MustResourcePath("bench")

			var scans atomic.Int64
			runCtx := dlog.WithField(ctx, "lodestone.bench.step", "run")
			runStart := time.Now()
			grp := dgroup.NewGroup(runCtx, dgroup.GroupConfig{
				ShutdownOnNonError: true,
			})
			grp.Go("writer", func(ctx context.Context) error {
				for i := 0; i < writesFlag; i++ {
					if err := ctx.Err(); err != nil {
						return err
					}
					doc, err := docmodel.NewDocument(
						benchPath(docsFlag+i), []byte(`{"bench":true}`))
					if err != nil {
						return err
					}
					if _, err := cache.Put(ctx, doc); err != nil {
						return err
					}
				}
				return nil
			})
			for worker := 0; worker < readersFlag; worker++ {
				worker := worker
				grp.Go(fmt.Sprintf("reader-%d", worker), func(ctx context.Context) error {
					ctx = dlog.WithField(ctx, "lodestone.bench.worker", worker)
					var buf []docmodel.Document
					for ctx.Err() == nil {
						buf = localcache.ScanCollectionAppend(buf[:0], snap, parent)
						if len(buf) != docsFlag {
							return fmt.Errorf("reader %d: snapshot changed: saw %d documents, want %d",
								worker, len(buf), docsFlag)
						}
						scans.Add(1)
					}
					return nil
				})
			}
			if err := grp.Wait(); err != nil {
				return err
			}
			elapsed := time.Since(runStart)

			perSec := float64(scans.Load()) / elapsed.Seconds()
			dlog.Infof(ctx, "%v scans of %v documents in %v (%.4v, over %v readers)",
				textui.Humanized(scans.Load()), textui.Humanized(docsFlag), elapsed,
				textui.Metric(perSec, "scan/s"), readersFlag)
			return nil
		},
	}
	cmd.Command.Flags().IntVar(&docsFlag, "docs", 10_000, "number of documents in the benched snapshot")
	cmd.Command.Flags().IntVar(&readersFlag, "readers", 4, "number of concurrent snapshot readers")
	cmd.Command.Flags().IntVar(&writesFlag, "writes", 10_000, "number of writes for the writer to perform")
	subcommands = append(subcommands, cmd)
}

func benchPath(i int) docmodel.ResourcePath {
	return docmodel.MustResourcePath("bench", fmt.Sprintf("doc-%08d", i))
}
