package lzss

import (
	"bufio"
	"io"
)

// EndOfInput is the sentinel InputSource.ReadByte returns once input is
// exhausted. It is outside the 0..255 byte range, which is why ReadByte's
// result type is wider than a byte (spec §4.1).
const EndOfInput = -1

// InputSource supplies bytes one at a time to the encoder. ReadByte returns
// a value in 0..255, or EndOfInput. Calling it after EndOfInput must
// continue to return EndOfInput (or the same error) rather than panic.
type InputSource interface {
	ReadByte() (int, error)
}

// ByteSliceSource is an InputSource backed by an in-memory slice. It never
// returns a non-nil error; exhaustion is signaled solely via EndOfInput.
// Grounded on the teacher's sliceByteReader.
type ByteSliceSource struct {
	data []byte
	pos  int
}

// NewByteSliceSource wraps data as an InputSource.
func NewByteSliceSource(data []byte) *ByteSliceSource {
	return &ByteSliceSource{data: data}
}

// ReadByte returns the next byte, or EndOfInput once data is exhausted.
func (s *ByteSliceSource) ReadByte() (int, error) {
	if s.pos >= len(s.data) {
		return EndOfInput, nil
	}
	b := s.data[s.pos]
	s.pos++
	return int(b), nil
}

// ReaderSource adapts an io.Reader to InputSource, distinguishing io.EOF
// (→ EndOfInput, not an error) from any other read error (propagated).
// Grounded on the teacher's countingByteReader / DecompressFromReader
// read-byte-with-EOF-translation pattern.
type ReaderSource struct {
	r io.ByteReader
}

// NewReaderSource wraps r. If r does not already implement io.ByteReader it
// is buffered with bufio.Reader.
func NewReaderSource(r io.Reader) *ReaderSource {
	if br, ok := r.(io.ByteReader); ok {
		return &ReaderSource{r: br}
	}
	return &ReaderSource{r: bufio.NewReader(r)}
}

// ReadByte returns the next byte, EndOfInput on io.EOF, or any other error
// from the underlying reader unchanged.
func (s *ReaderSource) ReadByte() (int, error) {
	b, err := s.r.ReadByte()
	if err != nil {
		if err == io.EOF {
			return EndOfInput, nil
		}
		return EndOfInput, err
	}
	return int(b), nil
}
