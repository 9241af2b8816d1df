// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf8proc

import "github.com/AliKet/utf8proc/internal/ucd"

// composeCanonical folds a canonically-reordered buffer back into its
// composed form, in a single forward pass. buf must already have gone
// through decomposeChar and canonicalReorder; composeCanonical does not
// decompose anything itself.
//
// The buffer carries a "starter" position and the combining class of
// the most recently kept (not composed away) non-starter. A mark
// composes with the starter only if nothing of equal or higher
// combining class has been kept since the starter; once a mark
// successfully composes, it vanishes from the stream entirely and does
// not update that tracked class, so later marks are judged against
// whatever blocked (or didn't block) before it.
func composeCanonical(buf []rune, cfg config) []rune {
	out := make([]rune, 0, len(buf))
	starterPos := -1
	var lastClass uint8 // 0 is a safe sentinel: real combining classes start at 1

	for _, cp := range buf {
		cc := ucd.Of(cp).CombiningClass

		if starterPos == -1 {
			out = append(out, cp)
			if cc == 0 {
				starterPos = len(out) - 1
			}
			continue
		}

		if cc == 0 {
			if composed := tryComposeHangul(&out, starterPos, cp, lastClass); composed {
				continue
			}
			out = append(out, cp)
			starterPos = len(out) - 1
			lastClass = 0
			continue
		}

		if lastClass < cc {
			starter := ucd.Of(out[starterPos])
			mark := ucd.Of(cp)
			if composite, ok := ucd.Compose(starter.Comb1stIndex, mark.Comb2ndIndex); ok {
				if !(cfg.stable && ucd.Of(composite).CompExclusion) {
					out[starterPos] = composite
					continue
				}
			}
		}
		out = append(out, cp)
		lastClass = cc
	}
	return out
}

// tryComposeHangul handles the two algorithmic Hangul composition steps
// (L+V and LV+T), which ride the same starter-tracking loop as table
// composition but never go through the comb1st/comb2ndIndex table since
// jamo combine by formula, not by lookup.
func tryComposeHangul(out *[]rune, starterPos int, cp rune, lastClass uint8) bool {
	if lastClass != 0 {
		return false
	}
	starter := (*out)[starterPos]
	if s, ok := composeHangulLV(starter, cp); ok {
		(*out)[starterPos] = s
		return true
	}
	if s, ok := composeHangulLVT(starter, cp); ok {
		(*out)[starterPos] = s
		return true
	}
	return false
}
