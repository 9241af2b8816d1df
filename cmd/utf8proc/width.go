// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/AliKet/utf8proc"
)

var cmdWidth = &Command{
	Run:       runWidth,
	UsageLine: "width",
	Short:     "print each codepoint on stdin with its display width",
}

func runWidth(cmd *Command, args []string) error {
	in, err := readAll()
	if err != nil {
		return err
	}
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for i := 0; i < len(in); {
		cp, n, err := utf8proc.Iterate(in[i:], -1)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "U+%04X\t%d\n", cp, utf8proc.Charwidth(cp))
		i += n
	}
	return nil
}
