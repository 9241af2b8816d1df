// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf8proc

// Algorithmic Hangul syllable decomposition/composition. These codepoint
// ranges are regular enough that the Unicode Standard specifies them by
// formula rather than by table (The Unicode Standard §3.12).
const (
	hangulLBase = 0x1100
	hangulVBase = 0x1161
	hangulTBase = 0x11A7 // TBase itself denotes "no trailing consonant"

	hangulLCount = 19
	hangulVCount = 21
	hangulTCount = 28

	hangulNCount = hangulVCount * hangulTCount // 588
	hangulSBase  = 0xAC00
	hangulSCount = hangulLCount * hangulNCount // 11172
)

func isHangulSyllable(cp rune) bool {
	return cp >= hangulSBase && cp < hangulSBase+hangulSCount
}

func isHangulL(cp rune) bool { return cp >= hangulLBase && cp < hangulLBase+hangulLCount }
func isHangulV(cp rune) bool { return cp >= hangulVBase && cp < hangulVBase+hangulVCount }
func isHangulT(cp rune) bool { return cp > hangulTBase && cp < hangulTBase+hangulTCount }

// decomposeHangulSyllable applies the standard Hangul decomposition
// formula: s = cp-SBase; L = LBase+s/NCount; V = VBase+(s%NCount)/TCount;
// T = s%TCount (TBase+T if nonzero).
func decomposeHangulSyllable(cp rune) (l, v, t rune, hasT bool) {
	s := cp - hangulSBase
	l = hangulLBase + s/hangulNCount
	v = hangulVBase + (s%hangulNCount)/hangulTCount
	tIndex := s % hangulTCount
	if tIndex == 0 {
		return l, v, 0, false
	}
	return l, v, hangulTBase + tIndex, true
}

// composeHangulLV combines a leading consonant and a vowel into an LV
// syllable (trailing-consonant slot empty).
func composeHangulLV(l, v rune) (rune, bool) {
	if !isHangulL(l) || !isHangulV(v) {
		return 0, false
	}
	lIndex := l - hangulLBase
	vIndex := v - hangulVBase
	return hangulSBase + (lIndex*hangulVCount+vIndex)*hangulTCount, true
}

// composeHangulLVT adds a trailing consonant to an existing LV syllable.
func composeHangulLVT(lv, t rune) (rune, bool) {
	if !isHangulSyllable(lv) || !isHangulT(t) {
		return 0, false
	}
	if (lv-hangulSBase)%hangulTCount != 0 {
		return 0, false // lv is already an LVT syllable, not a bare LV
	}
	tIndex := t - hangulTBase
	return lv + tIndex, true
}
