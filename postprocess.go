// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf8proc

import "github.com/AliKet/utf8proc/internal/ucd"

// isNewlineFunction reports whether x is one of the codepoints the
// NLF2LS/NLF2PS/NLF2LF options retarget: line feed, carriage return, and
// next line.
func isNewlineFunction(x rune) bool {
	return x == 0x000A || x == 0x000D || x == 0x0085
}

// newlineTarget reports which codepoint a newline-function character
// should become under cfg's NLF policy, or 0 if no policy bit is set.
func newlineTarget(cfg config) rune {
	switch {
	case cfg.nlf2lf():
		return '\n'
	case cfg.nlf2ls:
		return 0x2028
	case cfg.nlf2ps:
		return 0x2029
	}
	return 0
}

// normalizeControl applies the NLF and STRIPCC policies to a single
// already-CRLF-collapsed codepoint. It reports the (possibly
// substituted) codepoint to keep, and whether to keep it at all.
//
// A newline-function codepoint is retargeted if an NLF policy is set;
// otherwise, if STRIPCC is set with no NLF policy, it collapses to a
// plain space rather than vanishing, since dropping it outright would
// silently run two words together. Any other control character is
// simply dropped under STRIPCC.
func normalizeControl(x rune, cfg config) (rune, bool) {
	if isNewlineFunction(x) {
		if t := newlineTarget(cfg); t != 0 {
			return t, true
		}
		if cfg.stripcc {
			return 0x0020, true
		}
		return x, true
	}
	if cfg.stripcc && ucd.Of(x).Category == ucd.CC {
		return 0, false
	}
	return x, true
}

// postProcess applies spec.md §4.5 step 1 to a fully decomposed (and, by
// the time Reencode calls it, canonically reordered) codepoint buffer:
// a left-to-right scan collapsing a CR immediately followed by LF into a
// single newline function, then applying the STRIPCC/NLF2x policy to
// each resulting codepoint. With neither STRIPCC nor an NLF2x bit set,
// buf is returned unchanged, since normalizeControl would be a no-op for
// every codepoint anyway.
func postProcess(buf []rune, cfg config) []rune {
	if !cfg.stripcc && !cfg.nlf2ls && !cfg.nlf2ps {
		return buf
	}
	out := make([]rune, 0, len(buf))
	for i := 0; i < len(buf); i++ {
		x := buf[i]
		if x == 0x000D && i+1 < len(buf) && buf[i+1] == 0x000A {
			x = 0x000A
			i++
		}
		replacement, keep := normalizeControl(x, cfg)
		if !keep {
			continue
		}
		out = append(out, replacement)
	}
	return out
}
