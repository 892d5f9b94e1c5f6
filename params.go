package lzss

import (
	"errors"
	"fmt"
)

// ErrDegenerateParams is returned by Params.Validate when a parameter
// combination would make the wire format ambiguous or the writeBits
// contract impossible to satisfy.
var ErrDegenerateParams = errors.New("lzss: degenerate parameter combination")

// Params configures the window/length bit widths that define the wire
// format. Both the encoder and the decoder must agree on Params for a
// stream to round-trip.
type Params struct {
	// IndexBits is the number of bits used to encode a window position.
	IndexBits int
	// LengthBits is the number of bits used to encode an encoded match length.
	LengthBits int
}

// DefaultParams returns the parameters from the data model table:
// IndexBits 10, LengthBits 4 (window size 1024, look-ahead 17).
func DefaultParams() *Params {
	return &Params{
		IndexBits:  10,
		LengthBits: 4,
	}
}

// W returns the window size, 1<<IndexBits.
func (p *Params) W() int {
	return 1 << p.IndexBits
}

// RawLookAhead returns the number of distinct encodable match lengths,
// 1<<LengthBits.
func (p *Params) RawLookAhead() int {
	return 1 << p.LengthBits
}

// BreakEven returns the integer threshold at/below which a match is
// emitted as literals instead of an index/length pair.
func (p *Params) BreakEven() int {
	return (1 + p.IndexBits + p.LengthBits) / 9
}

// LookAhead returns the maximum match length actually searched/encoded.
func (p *Params) LookAhead() int {
	return p.RawLookAhead() + p.BreakEven()
}

// TreeRoot returns the sentinel index of the tree's permanent root slot,
// equal to W().
func (p *Params) TreeRoot() int {
	return p.W()
}

// Validate rejects parameter combinations that would corrupt the wire
// format or the sentinel end-of-stream convention.
//
// BreakEven() == 0 is rejected. With BreakEven >= 1 every match record
// encodes at least two bytes, and the driver's first record, emitted while
// matchLen and matchPos are still 0 before any addNode has run, is a
// literal rather than a match record at position 0, which would read as the
// end-of-stream sentinel. See spec §9.
func (p *Params) Validate() error {
	if p.IndexBits < 1 {
		return fmt.Errorf("%w: IndexBits must be >= 1, got %d", ErrDegenerateParams, p.IndexBits)
	}
	if p.LengthBits < 1 {
		return fmt.Errorf("%w: LengthBits must be >= 1, got %d", ErrDegenerateParams, p.LengthBits)
	}
	if p.IndexBits > 31 {
		return fmt.Errorf("%w: IndexBits must be <= 31 to fit writeBits(u32), got %d", ErrDegenerateParams, p.IndexBits)
	}
	if p.LengthBits > 31 {
		return fmt.Errorf("%w: LengthBits must be <= 31 to fit writeBits(u32), got %d", ErrDegenerateParams, p.LengthBits)
	}
	if p.BreakEven() < 1 {
		return fmt.Errorf("%w: BreakEven() == 0 for IndexBits=%d LengthBits=%d, would collide with the end-of-stream sentinel", ErrDegenerateParams, p.IndexBits, p.LengthBits)
	}
	if p.LookAhead()+1 >= p.W() {
		return fmt.Errorf("%w: LookAhead()=%d does not fit window W()=%d (prefill writes winPos+[0,LookAhead) without wraparound)", ErrDegenerateParams, p.LookAhead(), p.W())
	}
	return nil
}
