// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf8proc

// Reencode performs STRIPCC/NLF2x post-processing, optional composition,
// and UTF-8 re-encoding of buf, in that order, per spec.md §4.5. It does
// not decompose or canonically reorder anything; callers build buf with
// Decompose first, which already returns a canonically reordered
// sequence.
//
// The returned slice always carries a trailing NUL byte not counted in
// the reported length, mirroring the C convention this package's error
// codes and Option bitmask are also binary-compatible with; Go callers
// normally want result[:len(result)-1].
func Reencode(buf []rune, opts Option) ([]byte, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	buf = postProcess(buf, cfg)
	if cfg.compose {
		buf = composeCanonical(buf, cfg)
	}

	out := make([]byte, 0, len(buf)*4+1)
	var scratch [4]byte
	for _, cp := range buf {
		n := EncodeRune(scratch[:], cp)
		out = append(out, scratch[:n]...)
	}
	return append(out, 0), nil
}
