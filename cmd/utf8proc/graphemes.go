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

var cmdGraphemes = &Command{
	Run:       runGraphemes,
	UsageLine: "graphemes",
	Short:     "print each line of stdin split into grapheme clusters",
}

func runGraphemes(cmd *Command, args []string) error {
	in, err := readAll()
	if err != nil {
		return err
	}
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	var prev rune
	havePrev := false
	for i := 0; i < len(in); {
		cp, n, err := utf8proc.Iterate(in[i:], -1)
		if err != nil {
			return err
		}
		if havePrev && utf8proc.GraphemeBreak(prev, cp) {
			fmt.Fprint(w, "|")
		}
		w.WriteString(string(cp))
		prev, havePrev = cp, true
		i += n
	}
	fmt.Fprintln(w)
	return nil
}
