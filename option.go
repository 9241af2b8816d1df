// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf8proc

// Option is a bitmask of processing flags. The numeric values are part
// of the package's binary-compatible external interface and must not be
// renumbered.
type Option uint32

const (
	// NULLTERM means the input length is implicit: read until the first
	// zero byte.
	NULLTERM Option = 1 << 0
	// STABLE skips compositions that would violate Unicode versioning
	// stability.
	STABLE Option = 1 << 1
	// COMPAT uses compatibility decomposition; without it only canonical
	// decompositions are followed.
	COMPAT Option = 1 << 2
	// COMPOSE recomposes the buffer after canonical reordering.
	COMPOSE Option = 1 << 3
	// DECOMPOSE leaves the result fully decomposed.
	DECOMPOSE Option = 1 << 4
	// IGNORE drops codepoints whose Ignorable bit is set, plus U+00AD.
	IGNORE Option = 1 << 5
	// REJECTNA fails if any input codepoint is unassigned (category CN).
	REJECTNA Option = 1 << 6
	// NLF2LS maps newline-function sequences to U+2028 LINE SEPARATOR.
	NLF2LS Option = 1 << 7
	// NLF2PS maps newline-function sequences to U+2029 PARAGRAPH SEPARATOR.
	NLF2PS Option = 1 << 8
	// STRIPCC removes or converts control characters per the NLF policy.
	STRIPCC Option = 1 << 9
	// CASEFOLD applies the casefold mapping during decomposition.
	CASEFOLD Option = 1 << 10
	// CHARBOUND inserts the marker codepoint 0xFFFF before each
	// grapheme-cluster boundary.
	CHARBOUND Option = 1 << 11
	// LUMP replaces selected codepoints with ASCII equivalents.
	LUMP Option = 1 << 12
	// STRIPMARK drops codepoints categorized Mn, Mc, or Me. Requires
	// COMPOSE or DECOMPOSE.
	STRIPMARK Option = 1 << 13

	// NLF2LF is both NLF2LS and NLF2PS set together, meaning "map
	// newline functions to plain LF" (the two bits combined is the
	// documented way to request this, per original_source/utf8proc.h).
	NLF2LF = NLF2LS | NLF2PS
)

// config is the Option bitmask lifted into named fields: internally it
// is cleaner to recognize combinations once, up front, than to re-test
// bits throughout the pipeline. Every entry point builds one of these
// exactly once.
type config struct {
	nullterm  bool
	stable    bool
	compat    bool
	compose   bool
	decompose bool
	ignore    bool
	rejectna  bool
	nlf2ls    bool
	nlf2ps    bool
	stripcc   bool
	casefold  bool
	charbound bool
	lump      bool
	stripmark bool
}

func newConfig(o Option) (config, error) {
	c := config{
		nullterm:  o&NULLTERM != 0,
		stable:    o&STABLE != 0,
		compat:    o&COMPAT != 0,
		compose:   o&COMPOSE != 0,
		decompose: o&DECOMPOSE != 0,
		ignore:    o&IGNORE != 0,
		rejectna:  o&REJECTNA != 0,
		nlf2ls:    o&NLF2LS != 0,
		nlf2ps:    o&NLF2PS != 0,
		stripcc:   o&STRIPCC != 0,
		casefold:  o&CASEFOLD != 0,
		charbound: o&CHARBOUND != 0,
		lump:      o&LUMP != 0,
		stripmark: o&STRIPMARK != 0,
	}
	if c.compose && c.decompose {
		return config{}, ErrInvalidOpts
	}
	if c.stripmark && !c.compose && !c.decompose {
		return config{}, ErrInvalidOpts
	}
	return c, nil
}

// nlf2lf reports whether both NLF2LS and NLF2PS are set, the documented
// shorthand for "map newline functions to LF".
func (c config) nlf2lf() bool { return c.nlf2ls && c.nlf2ps }
