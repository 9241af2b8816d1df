// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore

// This program documents how tables.go would be regenerated from the
// Unicode Character Database in a full fork of this package. It is not
// part of the build (see the ignore tag above) and is never run as part
// of normalizing text; the checked-in tables.go is hand-curated, per the
// package comment in ucd.go.
//
//	go run gen.go -ucd-dir=/path/to/ucd
//
// would read:
//   - UnicodeData.txt      -> Category, CombiningClass, BidiClass,
//                              DecompType, DecompMapping, case mappings
//   - CompositionExclusions.txt -> CompExclusion
//   - CaseFolding.txt      -> CasefoldMapping
//   - DerivedCoreProperties.txt -> Ignorable (Default_Ignorable_Code_Point)
//   - GraphemeBreakProperty.txt -> BoundClass
//   - EastAsianWidth.txt   -> CharWidth
//
// and emit the blockIndex/blocks/records/composeTable content that
// tables.go now carries by hand, following the same two-level-trie shape
// (see ucd.go's split) and the same record-interning/content-hash-header
// convention used by golang.org/x/text/internal/gen and width/gen.go.
package main

import (
	"flag"
	"log"
)

var ucdDir = flag.String("ucd-dir", "", "directory containing the Unicode Character Database text files")

func main() {
	flag.Parse()
	if *ucdDir == "" {
		log.Fatal("gen.go is a documentation stub; it is not wired to fetch or parse UCD files in this module")
	}
}
