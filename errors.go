// SPDX-License-Identifier: MIT

package lzss

import "errors"

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	ErrUnexpectedEOF    = errors.New("unexpected end of input while reading bitstream")
	ErrTrailingData     = errors.New("trailing bytes after end-of-stream marker")
	ErrNilSource        = errors.New("input source is nil")
	ErrNilSink          = errors.New("output sink is nil")
	ErrEmptyInput       = errors.New("input is empty")
	ErrLengthOutOfRange = errors.New("decoded match length out of range")
)
