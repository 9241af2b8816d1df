// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf8proc

// Decompose reads UTF-8 text from src and returns its decomposed,
// canonically reordered codepoint sequence, per spec.md §4.4. NULLTERM,
// if set in opts, truncates src at its first zero byte; otherwise all of
// src is read. STRIPCC and the NLF2x newline policies are not applied
// here (including CRLF collapsing): per spec.md §4.5 step 1, that is
// Reencode's post-processing pass, not part of decomposition.
func Decompose(src []byte, opts Option) ([]rune, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	src = effectiveInput(src, cfg)

	var out []rune
	lastBC := BoundStart
	for i := 0; i < len(src); {
		cp, n, err := Iterate(src[i:], -1)
		if err != nil {
			return nil, err
		}
		i += n

		chars, err := decomposeChar(cp, cfg, &lastBC)
		if err != nil {
			return nil, err
		}
		out = append(out, chars...)
	}
	canonicalReorder(out)
	return out, nil
}

// effectiveInput applies NULLTERM: if set, src is truncated at its first
// zero byte (which need not be present, in which case src is returned
// unchanged).
func effectiveInput(src []byte, cfg config) []byte {
	if !cfg.nullterm {
		return src
	}
	for i, b := range src {
		if b == 0 {
			return src[:i]
		}
	}
	return src
}

// Map runs Decompose followed by Reencode, the combination most callers
// want: a single pass from raw UTF-8 input to transformed UTF-8 output.
// The returned slice has its trailing NUL byte already stripped.
func Map(src []byte, opts Option) ([]byte, error) {
	runes, err := Decompose(src, opts)
	if err != nil {
		return nil, err
	}
	encoded, err := Reencode(runes, opts)
	if err != nil {
		return nil, err
	}
	return encoded[:len(encoded)-1], nil
}
