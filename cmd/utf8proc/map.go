// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/AliKet/utf8proc"
)

var cmdMap = &Command{
	Run:       runMap,
	UsageLine: "map [flags]",
	Short:     "apply a custom combination of options to stdin",
}

var (
	mapCompose   *bool
	mapDecompose *bool
	mapCompat    *bool
	mapCasefold  *bool
	mapStripmark *bool
	mapLump      *bool
	mapIgnore    *bool
	mapStripcc   *bool
	mapNlf2lf    *bool
	mapCharbound *bool
	mapRejectna  *bool
)

func init() {
	mapCompose = cmdMap.Flag.Bool("compose", false, "recompose after decomposition")
	mapDecompose = cmdMap.Flag.Bool("decompose", true, "leave the result decomposed")
	mapCompat = cmdMap.Flag.Bool("compat", false, "use compatibility decomposition")
	mapCasefold = cmdMap.Flag.Bool("casefold", false, "apply casefolding")
	mapStripmark = cmdMap.Flag.Bool("stripmark", false, "drop combining marks")
	mapLump = cmdMap.Flag.Bool("lump", false, "lump related punctuation together")
	mapIgnore = cmdMap.Flag.Bool("ignore", false, "drop default-ignorable codepoints")
	mapStripcc = cmdMap.Flag.Bool("stripcc", false, "strip control characters")
	mapNlf2lf = cmdMap.Flag.Bool("nlf2lf", false, "map newline functions to LF")
	mapCharbound = cmdMap.Flag.Bool("charbound", false, "mark grapheme-cluster boundaries")
	mapRejectna = cmdMap.Flag.Bool("rejectna", false, "fail on unassigned codepoints")
}

func runMap(cmd *Command, args []string) error {
	in, err := readAll()
	if err != nil {
		return err
	}

	var opts utf8proc.Option
	if *mapCompose {
		opts |= utf8proc.COMPOSE
	}
	if *mapDecompose && !*mapCompose {
		opts |= utf8proc.DECOMPOSE
	}
	if *mapCompat {
		opts |= utf8proc.COMPAT
	}
	if *mapCasefold {
		opts |= utf8proc.CASEFOLD
	}
	if *mapStripmark {
		opts |= utf8proc.STRIPMARK
	}
	if *mapLump {
		opts |= utf8proc.LUMP
	}
	if *mapIgnore {
		opts |= utf8proc.IGNORE
	}
	if *mapStripcc {
		opts |= utf8proc.STRIPCC
	}
	if *mapNlf2lf {
		opts |= utf8proc.NLF2LF
	}
	if *mapCharbound {
		opts |= utf8proc.CHARBOUND
	}
	if *mapRejectna {
		opts |= utf8proc.REJECTNA
	}

	out, err := utf8proc.Map(in, opts)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}
