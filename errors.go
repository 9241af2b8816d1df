// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf8proc

// Error is one of five negative error codes. Its numeric value is part
// of the package's binary-compatible external interface. It implements
// the error interface via Error, so callers may use errors.Is against
// the package-level sentinels below.
type Error int32

const (
	ErrNoMem       Error = -1
	ErrOverflow    Error = -2
	ErrInvalidUtf8 Error = -3
	ErrNotAssigned Error = -4
	ErrInvalidOpts Error = -5
)

var errMessages = map[Error]string{
	ErrNoMem:       "memory could not be allocated",
	ErrOverflow:    "the given string is too long to be processed",
	ErrInvalidUtf8: "invalid UTF-8 input",
	ErrNotAssigned: "unassigned codepoint found while REJECTNA was set",
	ErrInvalidOpts: "invalid combination of options",
}

// Error implements the error interface.
func (e Error) Error() string {
	if s, ok := errMessages[e]; ok {
		return s
	}
	return "unknown utf8proc error"
}

// Errmsg returns the static human-readable string for an error code,
// mirroring utf8proc_errmsg. It accepts any negative code, not just the
// ones this package itself returns, for parity with the C API's contract
// of taking a plain ssize_t.
func Errmsg(code int) string {
	return Error(code).Error()
}
