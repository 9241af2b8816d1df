// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stream adapts the package's one-shot normalization functions
// to a chunked Transform(dst, src []byte, atEOF bool) interface, for use
// with readers and writers that hand text through in pieces rather than
// all at once.
package stream

import (
	"errors"

	"github.com/AliKet/utf8proc"
)

// ErrShortDst means the destination buffer was too short to receive all
// of the transformed bytes.
var ErrShortDst = errors.New("stream: short destination buffer")

// ErrShortSrc means src ends mid-sequence and more input is needed
// before a safe cut point can be found.
var ErrShortSrc = errors.New("stream: short source buffer")

// Transformer is the single-method interface this package's Normalizer
// implements: write to dst the transformed bytes read from src, and
// report how much of each was consumed.
type Transformer interface {
	Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error)
}

// Normalizer transforms chunked UTF-8 input into a chosen normalization
// form. It holds no buffered state of its own between calls: instead,
// on every call, it scans src for the last codepoint that starts a new
// combining sequence (see isStarter), and only transforms the bytes up
// to that point. Anything after stays
// unconsumed for the next call, which is always safe since a starter
// boundary can never be split by canonical reordering or composition.
type Normalizer struct {
	Form utf8proc.Form
}

// Transform implements Transformer.
func (n Normalizer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	cut := len(src)
	if !atEOF {
		cut = lastStarterBoundary(src)
		if cut == 0 {
			return 0, 0, ErrShortSrc
		}
	}

	out, mapErr := utf8proc.Map(src[:cut], n.Form.Options())
	if mapErr != nil {
		return 0, 0, mapErr
	}
	if len(out) > len(dst) {
		return 0, 0, ErrShortDst
	}
	copy(dst, out)
	return len(out), cut, nil
}

// lastStarterBoundary returns the byte offset of the last rune in b
// that isStarter accepts, found by decoding b
// forward once and remembering rune start offsets. It returns 0 if b
// holds nothing but non-starters (or decodes no full rune at all),
// which tells the caller it needs more input before it can safely make
// progress.
func lastStarterBoundary(b []byte) int {
	last := 0
	for i := 0; i < len(b); {
		cp, n, err := utf8proc.Iterate(b[i:], -1)
		if err != nil {
			break
		}
		if isStarter(cp) {
			last = i
		}
		i += n
	}
	return last
}

// isStarter reports whether cp can begin a new combining sequence: its
// combining class is 0 and it is not a Hangul vowel or trailing-consonant
// jamo, which compose algorithmically into a preceding L jamo or LV
// syllable despite being class 0.
func isStarter(cp rune) bool {
	if (cp >= 0x1161 && cp <= 0x1175) || (cp >= 0x11A8 && cp <= 0x11C2) {
		return false
	}
	return utf8proc.GetProperty(cp).CombiningClass == 0
}
