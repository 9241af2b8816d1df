// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf8proc

// GraphemeBoundaryMarker is the sentinel codepoint CHARBOUND inserts
// before each grapheme-cluster boundary. EncodeRune re-encodes it as the
// single byte 0xFF rather than its literal (and otherwise valid) 3-byte
// UTF-8 encoding.
const GraphemeBoundaryMarker rune = 0xFFFF

// leadByteClass classifies a UTF-8 lead byte by the total length (in
// bytes) of the sequence it starts, or 0 if the byte is never a legal
// lead byte (continuation bytes, 0xC0, 0xC1, and 0xF5..0xFF), mirroring
// the classic utf8proc_utf8class[256] lookup table.
var leadByteClass [256]int8

func init() {
	for b := 0; b < 0x80; b++ {
		leadByteClass[b] = 1
	}
	for b := 0xC2; b <= 0xDF; b++ {
		leadByteClass[b] = 2
	}
	for b := 0xE0; b <= 0xEF; b++ {
		leadByteClass[b] = 3
	}
	for b := 0xF0; b <= 0xF4; b++ {
		leadByteClass[b] = 4
	}
	// 0x80..0xBF (continuation-only), 0xC0, 0xC1, 0xF5..0xFF stay 0.
}

// minForClass is the smallest scalar value legitimately encoded in a
// sequence of the given byte length; any decoded value below this for
// its class is an over-long encoding and must be rejected.
var minForClass = [5]rune{0: 0, 1: 0, 2: 0x80, 3: 0x800, 4: 0x10000}

// CodepointValid reports whether cp is a valid Unicode scalar value: in
// [0, 0x10FFFF] and outside the surrogate range [0xD800, 0xDFFF].
func CodepointValid(cp rune) bool {
	return cp >= 0 && cp <= 0x10FFFF && !(cp >= 0xD800 && cp <= 0xDFFF)
}

// Iterate reads a single codepoint from b. At most maxLen bytes are
// read, unless maxLen is negative, in which case up to 4 bytes (bounded
// by len(b)) may be read. It returns the decoded codepoint and the
// number of bytes consumed, or -1 and ErrInvalidUtf8 if b does not begin
// with a well-formed, minimally-encoded, non-surrogate scalar value.
//
// Errors are surfaced immediately with no partial result: on error,
// consumed is always 0 and the caller should stop, not attempt to
// resynchronize by skipping bytes.
func Iterate(b []byte, maxLen int) (cp rune, consumed int, err error) {
	limit := maxLen
	if limit < 0 || limit > 4 {
		limit = 4
	}
	if limit > len(b) {
		limit = len(b)
	}
	if limit == 0 {
		return -1, 0, ErrInvalidUtf8
	}
	class := leadByteClass[b[0]]
	if class == 0 {
		return -1, 0, ErrInvalidUtf8
	}
	if int(class) > limit {
		return -1, 0, ErrInvalidUtf8 // truncated at end of input
	}
	if class == 1 {
		return rune(b[0]), 1, nil
	}
	v := rune(b[0] & (0x7F >> class))
	for i := 1; i < int(class); i++ {
		cb := b[i]
		if cb&0xC0 != 0x80 {
			return -1, 0, ErrInvalidUtf8
		}
		v = v<<6 | rune(cb&0x3F)
	}
	if v < minForClass[class] {
		return -1, 0, ErrInvalidUtf8 // over-long encoding
	}
	if !CodepointValid(v) {
		return -1, 0, ErrInvalidUtf8 // surrogate or out of range
	}
	return v, int(class), nil
}

// EncodeRune writes the UTF-8 encoding of cp into dst, which must be at
// least 4 bytes long, and returns the number of bytes written. It writes
// 0 bytes for codepoints outside [0, 0x10FFFF]. The single exception to
// standard UTF-8 is GraphemeBoundaryMarker, which is written as the lone
// byte 0xFF so re-encoded buffers can flag grapheme breaks without
// growing every encoded rune by the marker's own bytes.
func EncodeRune(dst []byte, cp rune) int {
	switch {
	case cp == GraphemeBoundaryMarker:
		dst[0] = 0xFF
		return 1
	case cp < 0 || cp > 0x10FFFF:
		return 0
	case cp < 0x80:
		dst[0] = byte(cp)
		return 1
	case cp < 0x800:
		dst[0] = 0xC0 | byte(cp>>6)
		dst[1] = 0x80 | byte(cp&0x3F)
		return 2
	case cp < 0x10000:
		dst[0] = 0xE0 | byte(cp>>12)
		dst[1] = 0x80 | byte(cp>>6&0x3F)
		dst[2] = 0x80 | byte(cp&0x3F)
		return 3
	default:
		dst[0] = 0xF0 | byte(cp>>18)
		dst[1] = 0x80 | byte(cp>>12&0x3F)
		dst[2] = 0x80 | byte(cp>>6&0x3F)
		dst[3] = 0x80 | byte(cp&0x3F)
		return 4
	}
}
