// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package utf8proc normalizes UTF-8 encoded Unicode text.
//
// It decodes and validates UTF-8, decomposes codepoints (canonically or
// under compatibility rules, including the algorithmic Hangul mapping),
// canonically reorders combining marks, optionally recomposes them, and
// re-encodes the result, with options for case folding, default-ignorable
// and control-character stripping, newline normalization, lumping of
// visually similar characters, and grapheme-cluster boundary marking.
//
// The package mirrors the utf8proc C library's option/error vocabulary
// (see Option and Error) while exposing the pipeline through both a
// buffer-oriented API (Decompose, Reencode, Map) and a narrower Form type
// (NFC, NFD, NFKC, NFKD) in the style of golang.org/x/text/unicode/norm.
//
// The property database backing the pipeline (internal/ucd) is treated as
// a read-only oracle: callers never see it directly.
package utf8proc

// versionString identifies the Unicode version the bundled property data
// targets.
const versionString = "utf8proc-go 2.0 (Unicode 13.0.0 subset)"

// Version returns the package's version string, mirroring utf8proc_version.
func Version() string {
	return versionString
}
