// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf8proc

import "github.com/AliKet/utf8proc/internal/ucd"

// Category, BidiClass, DecompType, and BoundClass are aliased straight
// from the internal property oracle so callers of this package can name
// them without reaching into internal/ucd themselves.
type (
	Category   = ucd.Category
	BidiClass  = ucd.BidiClass
	DecompType = ucd.DecompType
	BoundClass = ucd.BoundClass
)

// The 30 general category values, re-exported from internal/ucd.
const (
	CatCN = ucd.CN
	CatLU = ucd.LU
	CatLL = ucd.LL
	CatLT = ucd.LT
	CatLM = ucd.LM
	CatLO = ucd.LO
	CatMN = ucd.MN
	CatMC = ucd.MC
	CatME = ucd.ME
	CatND = ucd.ND
	CatNL = ucd.NL
	CatNO = ucd.NO
	CatPC = ucd.PC
	CatPD = ucd.PD
	CatPS = ucd.PS
	CatPE = ucd.PE
	CatPI = ucd.PI
	CatPF = ucd.PF
	CatPO = ucd.PO
	CatSM = ucd.SM
	CatSC = ucd.SC
	CatSK = ucd.SK
	CatSO = ucd.SO
	CatZS = ucd.ZS
	CatZL = ucd.ZL
	CatZP = ucd.ZP
	CatCC = ucd.CC
	CatCF = ucd.CF
	CatCS = ucd.CS
	CatCO = ucd.CO
)

// Boundary classes, re-exported from internal/ucd.
const (
	BoundStart             = ucd.BoundStart
	BoundOther             = ucd.BoundOther
	BoundCR                = ucd.BoundCR
	BoundLF                = ucd.BoundLF
	BoundControl           = ucd.BoundControl
	BoundExtend            = ucd.BoundExtend
	BoundL                 = ucd.BoundL
	BoundV                 = ucd.BoundV
	BoundT                 = ucd.BoundT
	BoundLV                = ucd.BoundLV
	BoundLVT               = ucd.BoundLVT
	BoundRegionalIndicator = ucd.BoundRegionalIndicator
	BoundSpacingMark       = ucd.BoundSpacingMark
)

// Property mirrors the oracle's record. GetProperty never returns nil;
// an unassigned codepoint gets a Property with Category == CatCN and
// every other field at its zero/absent value.
type Property = ucd.Record

// GetProperty returns the property record for cp. The returned pointer
// refers to shared static data; callers must not mutate it.
func GetProperty(cp rune) *Property {
	return ucd.Of(cp)
}

// CategoryOf returns the Unicode general category of cp.
func CategoryOf(cp rune) Category {
	return ucd.Of(cp).Category
}

// CategoryString returns the two-letter category abbreviation for cp,
// e.g. "Lu" or "Co", mirroring utf8proc_category_string.
func CategoryString(cp rune) string {
	return ucd.Of(cp).Category.String()
}
