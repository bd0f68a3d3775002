// Copyright (C) 2024-2026  Lodestone contributors
//
// SPDX-License-Identifier: Apache-2.0

package immutable

import (
	"fmt"
	"io"
	"strings"
)

func (n *node[K, V]) String() string {
	switch {
	case n == nil:
		return "nil"
	case n.red:
		return fmt.Sprintf("R(%v:%v)", n.key, n.value)
	default:
		return fmt.Sprintf("B(%v:%v)", n.key, n.value)
	}
}

func (m TreeMap[K, V]) ASCIIArt() string {
	var out strings.Builder
	m.root.asciiArt(&out, "", "", "")
	return out.String()
}

func (n *node[K, V]) asciiArt(w io.Writer, u, m, l string) {
	if n == nil {
		fmt.Fprintf(w, "%snil\n", m)
		return
	}

	n.right.asciiArt(w, u+"     ", u+"  ,--", u+"  |  ")
	fmt.Fprintf(w, "%s%v\n", m, n)
	n.left.asciiArt(w, l+"  |  ", l+"  `--", l+"     ")
}
