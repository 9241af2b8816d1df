// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf8proc

import "github.com/AliKet/utf8proc/internal/ucd"

// DecomposeChar expands a single codepoint into its decomposed form
// under opts, exposing decomposeChar's per-codepoint pipeline directly.
// lastBoundclass should be a pointer to BoundStart for a standalone
// call, or to state threaded across a run of calls when the caller is
// walking a longer sequence one codepoint at a time.
func DecomposeChar(cp rune, opts Option, lastBoundclass *BoundClass) ([]rune, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return decomposeChar(cp, cfg, lastBoundclass)
}

// decomposeChar expands a single codepoint into zero or more codepoints,
// applying (in order) unassigned rejection, ignorable dropping, mark
// stripping, casefolding, algorithmic Hangul decomposition, the
// canonical/compatibility decomposition mapping, lumping, and finally
// grapheme-boundary marker insertion. lastBoundclass carries the
// boundclass of the most recently emitted plain codepoint across calls
// so CHARBOUND can see pairwise context; callers that are not
// maintaining a running boundary (for example a one-shot query) pass a
// fresh *BoundClass initialized to BoundStart.
//
// STRIPCC and the NLF2x newline policies are not applied here: per
// spec.md §4.5 step 1, that is a post-processing pass over the fully
// decomposed buffer, done in Reencode, not a per-codepoint decomposition
// rule.
//
// A codepoint that resolves through casefolding or its decomposition
// mapping is reprocessed from the top, since those mappings can in turn
// need the same checks applied to their own codepoints. Hangul jamo
// produced by the algorithmic split are emitted directly instead: jamo
// carry no mappings of their own and never pass through CHARBOUND.
func decomposeChar(cp rune, cfg config, lastBoundclass *BoundClass) ([]rune, error) {
	var out []rune
	work := newPendingStack(cp)
	for {
		x, ok := work.pop()
		if !ok {
			break
		}
		rec := ucd.Of(x)

		if cfg.rejectna && rec.Category == ucd.CN {
			return nil, ErrNotAssigned
		}
		if cfg.ignore && (rec.Ignorable || x == 0x00AD) {
			continue
		}
		if cfg.stripmark && (rec.Category == ucd.MN || rec.Category == ucd.MC || rec.Category == ucd.ME) {
			continue
		}
		if cfg.casefold && len(rec.CasefoldMapping) > 0 {
			work.pushSequence(rec.CasefoldMapping)
			continue
		}
		if isHangulSyllable(x) && (cfg.decompose || cfg.compose) {
			l, v, t, hasT := decomposeHangulSyllable(x)
			out = append(out, l, v)
			if hasT {
				out = append(out, t)
			}
			continue
		}
		if len(rec.DecompMapping) > 0 && (cfg.compat || rec.DecompType == ucd.DecompCanonical) {
			work.pushSequence(rec.DecompMapping)
			continue
		}
		if cfg.lump {
			if cfg.nlf2lf() && (x == 0x2028 || x == 0x2029) {
				out = append(out, '\n')
				continue
			}
			if mapped, hit := ucd.Lump(x); hit {
				out = append(out, mapped)
				continue
			}
		}

		bc := rec.BoundClass
		if isHangulSyllable(x) {
			bc = hangulBoundClass(x)
		}
		if cfg.charbound {
			if breakBetween(*lastBoundclass, bc) {
				out = append(out, GraphemeBoundaryMarker)
			}
			*lastBoundclass = bc
		}
		out = append(out, x)
	}
	return out, nil
}
