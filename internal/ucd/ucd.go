// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ucd is the Unicode property oracle consumed by the
// normalization pipeline. It is a pure, total lookup from codepoint to
// PropertyRecord plus the small number of auxiliary tables (composition
// index, casefold/decomposition sequence pool, lump table) the pipeline
// needs. It holds no mutable state: every exported value is safe for
// concurrent use by any number of callers.
//
// The table content in tables.go is hand-curated rather than a full dump
// of the Unicode Character Database; gen.go documents how a complete
// fork would regenerate it. See the package comment on that distinction.
package ucd

// Category is the Unicode general category of a codepoint.
type Category int8

// The 30 general category values, numbered exactly as utf8proc_category_t.
const (
	CN Category = iota // Other, not assigned
	LU                 // Letter, uppercase
	LL                 // Letter, lowercase
	LT                 // Letter, titlecase
	LM                 // Letter, modifier
	LO                 // Letter, other
	MN                 // Mark, nonspacing
	MC                 // Mark, spacing combining
	ME                 // Mark, enclosing
	ND                 // Number, decimal digit
	NL                 // Number, letter
	NO                 // Number, other
	PC                 // Punctuation, connector
	PD                 // Punctuation, dash
	PS                 // Punctuation, open
	PE                 // Punctuation, close
	PI                 // Punctuation, initial quote
	PF                 // Punctuation, final quote
	PO                 // Punctuation, other
	SM                 // Symbol, math
	SC                 // Symbol, currency
	SK                 // Symbol, modifier
	SO                 // Symbol, other
	ZS                 // Separator, space
	ZL                 // Separator, line
	ZP                 // Separator, paragraph
	CC                 // Other, control
	CF                 // Other, format
	CS                 // Other, surrogate
	CO                 // Other, private use
)

var categoryNames = [...]string{
	CN: "Cn", LU: "Lu", LL: "Ll", LT: "Lt", LM: "Lm", LO: "Lo",
	MN: "Mn", MC: "Mc", ME: "Me", ND: "Nd", NL: "Nl", NO: "No",
	PC: "Pc", PD: "Pd", PS: "Ps", PE: "Pe", PI: "Pi", PF: "Pf", PO: "Po",
	SM: "Sm", SC: "Sc", SK: "Sk", SO: "So",
	ZS: "Zs", ZL: "Zl", ZP: "Zp",
	CC: "Cc", CF: "Cf", CS: "Cs", CO: "Co",
}

// String returns the two-letter Unicode category abbreviation, e.g. "Lu".
func (c Category) String() string {
	if int(c) < 0 || int(c) >= len(categoryNames) {
		return "Cn"
	}
	return categoryNames[c]
}

// BidiClass is carried through the pipeline but never acted on (no BiDi
// reordering is performed).
type BidiClass int8

// DecompType tags a non-canonical (compatibility) decomposition mapping.
// Zero means "canonical" (no tag).
type DecompType int8

const (
	DecompCanonical DecompType = iota
	DecompFont
	DecompNoBreak
	DecompInitial
	DecompMedial
	DecompFinal
	DecompIsolated
	DecompCircle
	DecompSuper
	DecompSub
	DecompVertical
	DecompWide
	DecompNarrow
	DecompSmall
	DecompSquare
	DecompFraction
	DecompCompat
)

// BoundClass is the grapheme-cluster boundary class of a codepoint, used
// by GraphemeBreak and the CHARBOUND decomposition step.
type BoundClass int8

const (
	BoundStart BoundClass = iota
	BoundOther
	BoundCR
	BoundLF
	BoundControl
	BoundExtend
	BoundL
	BoundV
	BoundT
	BoundLV
	BoundLVT
	BoundRegionalIndicator
	BoundSpacingMark
)

// noMapping is the sentinel for "this codepoint has no uppercase/
// lowercase/titlecase mapping": -1, a value no codepoint can take.
const noMapping = -1

// Record is the immutable per-codepoint property record returned by Of.
// Callers must not mutate the value returned through a *Record; Of always
// returns a pointer into static package state.
type Record struct {
	Category          Category
	CombiningClass    uint8 // Canonical Combining Class, 0 == starter
	BidiClass         BidiClass
	DecompType        DecompType
	DecompMapping     []rune // nil if absent
	CasefoldMapping   []rune // nil if absent
	Uppercase         rune   // noMapping if absent
	Lowercase         rune   // noMapping if absent
	Titlecase         rune   // noMapping if absent
	Comb1stIndex      int32  // -1 if this codepoint cannot start a composition
	Comb2ndIndex      int32  // -1 if this codepoint cannot follow a starter
	BidiMirrored      bool
	CompExclusion     bool
	Ignorable         bool
	ControlBoundary   bool
	BoundClass        BoundClass
	CharWidth         uint8 // 0, 1, or 2
}

// unassigned is returned for every codepoint with no table entry:
// category CN and every other field at its zero/absent value.
var unassigned = Record{
	Uppercase:    noMapping,
	Lowercase:    noMapping,
	Titlecase:    noMapping,
	Comb1stIndex: -1,
	Comb2ndIndex: -1,
}

// Of returns the property record for cp. It is a total function: every
// codepoint in [0, 0x10FFFF], assigned or not, returns a usable record.
// The returned pointer is shared static data and must not be mutated.
func Of(cp rune) *Record {
	if cp < 0 || cp > 0x10FFFF {
		return &unassigned
	}
	hi, lo, ok := split(cp)
	if !ok || hi < 0 || hi >= len(blockIndex) {
		return &unassigned
	}
	block := blockIndex[hi]
	if block == 0 {
		return &unassigned
	}
	if id := blocks[block-1][lo]; id != 0 {
		return &records[id]
	}
	return &unassigned
}

// split divides a codepoint into the two-level index used by blockIndex/
// blocks. ok is false for codepoints outside the table's addressable
// range (none, in practice, since the range covers all of 0..=0x10FFFF),
// kept for symmetry with a real generated trie.
func split(cp rune) (hi, lo int, ok bool) {
	const loBits = 8 // 256-entry low blocks
	return int(cp) >> loBits, int(cp) & (1<<loBits - 1), true
}
