package lzss

import (
	"fmt"

	"github.com/ecultools/lzss/internal/assert"
)

// Encoder holds the validated Params for a run of compressions. The Window
// and Tree it drives are allocated fresh for each call to Compress/
// CompressTo (spec §9 "Global mutable state → owned module": the original
// source's file-scope globals become state owned per compression, not
// state shared across compressions on one Encoder value) — an Encoder is
// safe to reuse across multiple, independent Compress calls.
type Encoder struct {
	params *Params
}

// NewEncoder allocates an Encoder for the given Params. A nil params means
// DefaultParams().
func NewEncoder(params *Params) (*Encoder, error) {
	if params == nil {
		params = DefaultParams()
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Encoder{params: params}, nil
}

// Compress runs CompressTo over an in-memory source and sink, returning the
// packed bitstream. Mirrors the teacher's Compress(src, opts) entry point
// shape.
func (e *Encoder) Compress(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, ErrEmptyInput
	}
	sink := NewBitWriter()
	if err := e.CompressTo(sink, NewByteSliceSource(src)); err != nil {
		return nil, err
	}
	return sink.Flush(), nil
}

// CompressTo runs the full prefill/encode/advance driver loop (spec §4.8)
// reading from src and writing records to sink in the exact order
// specified in §6.
func (e *Encoder) CompressTo(sink BitSink, src InputSource) error {
	if sink == nil {
		return ErrNilSink
	}
	if src == nil {
		return ErrNilSource
	}

	p := e.params
	lookAhead := p.LookAhead()
	breakEven := p.BreakEven()

	win := newWindow(p.W())
	tr := newTree(win, lookAhead, p.TreeRoot())

	winPos := 1
	aheadBytes := 0
	matchLen := 0
	matchPos := 0
	eos := false

	// Phase A: prefill look-ahead.
	for aheadBytes < lookAhead && !eos {
		in, err := src.ReadByte()
		if err != nil {
			return fmt.Errorf("lzss: reading input during prefill: %w", err)
		}
		if in == EndOfInput {
			eos = true
		} else {
			win.setAbsolute(winPos+aheadBytes, byte(in))
			aheadBytes++
		}
	}
	tr.initTree(winPos)

	// Phase B: main loop.
	for aheadBytes > 0 {
		if matchLen > aheadBytes {
			matchLen = aheadBytes
		}

		var replCnt int
		if matchLen <= breakEven {
			replCnt = 1
			if err := sink.WriteBit(1); err != nil {
				return err
			}
			if err := sink.WriteBits(uint32(win.at(winPos)), 8); err != nil {
				return err
			}
		} else {
			// matchPos == 0 would be indistinguishable from the end-of-stream
			// terminator; guaranteed unreachable because window position 0 is
			// never inserted into the tree (spec §6, §9), checked here since a
			// violation would silently truncate the stream.
			assert.True(matchPos != 0, "lzss: about to emit a match record with matchPos == 0")
			assert.True(matchLen <= lookAhead, "lzss: matchLen %d exceeds LookAhead %d", matchLen, lookAhead)
			if err := sink.WriteBit(0); err != nil {
				return err
			}
			if err := sink.WriteBits(uint32(matchPos), p.IndexBits); err != nil {
				return err
			}
			if err := sink.WriteBits(uint32(matchLen-(breakEven+1)), p.LengthBits); err != nil {
				return err
			}
			replCnt = matchLen
		}

		for i := 0; i < replCnt; i++ {
			tr.deleteNode(win.mod(winPos + lookAhead))

			in, err := src.ReadByte()
			if err != nil {
				return fmt.Errorf("lzss: reading input during advance: %w", err)
			}
			if in == EndOfInput {
				aheadBytes--
			} else {
				win.set(winPos+lookAhead, byte(in))
			}

			winPos = win.mod(winPos + 1)

			if aheadBytes != 0 {
				matchLen, matchPos = tr.addNode(winPos)
			}
		}
	}

	// Phase C: end-of-stream terminator. No length field is emitted; the
	// decoder recognizes a match record whose position equals 0 and stops.
	if err := sink.WriteBit(0); err != nil {
		return err
	}
	return sink.WriteBits(0, p.IndexBits)
}
