package lzss

import "fmt"

// Decoder reconstructs the byte sequence encoded by Encoder. It needs no
// Tree — decoding never searches — only the same Window, kept synchronized
// with the encoder's modular arithmetic. Grounded on the teacher's
// decompress.go (nil-options default, explicit EOF-vs-short-input error
// distinction, trailing-data check), generalized from its byte-flag format
// to this spec's bit-oriented records.
type Decoder struct {
	params *Params
	win    *window
}

// NewDecoder allocates a Decoder for the given Params. A nil params means
// DefaultParams(); it must match the Params the stream was encoded with.
func NewDecoder(params *Params) (*Decoder, error) {
	if params == nil {
		params = DefaultParams()
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Decoder{
		params: params,
		win:    newWindow(params.W()),
	}, nil
}

// Decompress decodes src (a full bitstream produced by Encoder.Compress)
// into exactly outLen bytes and returns them. outLen is required because the
// wire format carries no explicit output length (spec.md §1 scope,
// SPEC_FULL.md §6.1). The decoder reads records until outLen bytes are
// produced, then requires the end-of-stream terminator with nothing but
// zero padding left in src after it. A terminator before outLen is reached,
// a match record that would overshoot outLen, any other record in the
// terminator's place, or unread bytes after it all return ErrTrailingData —
// mirroring the teacher's decompress.go, which rejects a Decompress call
// whose consumed byte count doesn't equal len(src).
//
// Decompress is safe to call repeatedly on one Decoder: every window slot it
// ever reads was written earlier in the same call, by construction of a
// well-formed stream, so leftover bytes from a prior call are always
// overwritten before they could be read.
func (d *Decoder) Decompress(src []byte, outLen int) ([]byte, error) {
	if outLen < 0 {
		return nil, fmt.Errorf("lzss: outLen must be >= 0, got %d", outLen)
	}
	r := NewBitReader(src)
	out := make([]byte, 0, outLen)
	pos := 1 // mirrors the encoder's winPos, which starts at 1.

	for len(out) < outLen {
		flag, err := r.ReadBit()
		if err != nil {
			return nil, fmt.Errorf("lzss: reading record flag: %w", err)
		}

		if flag == 1 {
			v, err := r.ReadBits(8)
			if err != nil {
				return nil, fmt.Errorf("lzss: reading literal byte: %w", err)
			}
			b := byte(v)
			d.win.set(pos, b)
			out = append(out, b)
			pos = d.win.mod(pos + 1)
			continue
		}

		matchPos, err := r.ReadBits(d.params.IndexBits)
		if err != nil {
			return nil, fmt.Errorf("lzss: reading match position: %w", err)
		}
		if matchPos == 0 {
			// End-of-stream terminator arrived before outLen bytes were
			// produced: the caller's requested length disagrees with what
			// the stream actually holds.
			return nil, fmt.Errorf("%w: end-of-stream terminator after %d of %d requested bytes", ErrTrailingData, len(out), outLen)
		}

		lengthField, err := r.ReadBits(d.params.LengthBits)
		if err != nil {
			return nil, fmt.Errorf("lzss: reading match length: %w", err)
		}
		length := int(lengthField) + d.params.BreakEven() + 1
		if length < d.params.BreakEven()+1 || length > d.params.LookAhead() {
			return nil, fmt.Errorf("%w: decoded length %d", ErrLengthOutOfRange, length)
		}

		matchStart := int(matchPos)
		for k := 0; k < length; k++ {
			if len(out) >= outLen {
				// A well-formed stream encoded for outLen never does this;
				// it means outLen is smaller than what the stream encodes.
				return nil, fmt.Errorf("%w: match record would produce more than the requested %d bytes", ErrTrailingData, outLen)
			}
			b := d.win.at(matchStart + k)
			d.win.set(pos, b)
			out = append(out, b)
			pos = d.win.mod(pos + 1)
		}
	}

	// Exactly outLen bytes have been produced. The next record must be the
	// end-of-stream terminator, with nothing left in src after it.
	flag, err := r.ReadBit()
	if err != nil {
		return nil, fmt.Errorf("lzss: reading end-of-stream terminator flag: %w", err)
	}
	if flag != 0 {
		return nil, fmt.Errorf("%w: expected end-of-stream terminator immediately after %d bytes, found a literal record", ErrTrailingData, outLen)
	}
	matchPos, err := r.ReadBits(d.params.IndexBits)
	if err != nil {
		return nil, fmt.Errorf("lzss: reading end-of-stream terminator position: %w", err)
	}
	if matchPos != 0 {
		return nil, fmt.Errorf("%w: expected end-of-stream terminator immediately after %d bytes, found a match record", ErrTrailingData, outLen)
	}
	if !r.AtPaddingOnly() {
		return nil, fmt.Errorf("%w: unread bytes remain after the end-of-stream terminator", ErrTrailingData)
	}
	return out, nil
}
