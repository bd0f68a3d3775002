// Copyright (C) 2024-2026  Lodestone contributors
//
// SPDX-License-Identifier: Apache-2.0

package jsonutil_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"git.lukeshu.com/go/lowmemjson"
	"github.com/datawire/dlib/dlog"
	"github.com/stretchr/testify/require"

	"github.com/lodestone-db/lodestone/lib/jsonutil"
	"github.com/lodestone-db/lodestone/lib/textui"
)

type payload struct {
	Name  string   `json:"name"`
	Count int      `json:"count"`
	Tags  []string `json:"tags"`
}

func TestWriteReadFile(t *testing.T) {
	ctx := dlog.WithLogger(context.Background(), textui.NewLogger(io.Discard, dlog.LogLevelError))

	want := payload{Name: "rooms/eros", Count: 3, Tags: []string{"a", "b"}}

	var buf bytes.Buffer
	require.NoError(t, jsonutil.Write(&buf, want, lowmemjson.ReEncoder{Indent: "\t"}))

	filename := filepath.Join(t.TempDir(), "payload.json")
	require.NoError(t, os.WriteFile(filename, buf.Bytes(), 0o600))

	got, err := jsonutil.ReadFile[payload](ctx, filename)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestReadFileRejectsTrailingGarbage(t *testing.T) {
	ctx := dlog.WithLogger(context.Background(), textui.NewLogger(io.Discard, dlog.LogLevelError))

	filename := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(filename, []byte(`{"name":"x","count":1,"tags":[]} 42`), 0o600))

	_, err := jsonutil.ReadFile[payload](ctx, filename)
	require.Error(t, err)
}

func TestReadFileMissing(t *testing.T) {
	ctx := context.Background()
	_, err := jsonutil.ReadFile[payload](ctx, filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
