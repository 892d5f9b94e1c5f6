package lzss

import (
	"bytes"
	"testing"
)

func TestBitWriterReaderRoundTrip(t *testing.T) {
	w := NewBitWriter()
	bits := []uint{1, 0, 1, 1, 0, 0, 0, 1, 1, 0}
	for _, b := range bits {
		if err := w.WriteBit(b); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.WriteBits(0x3FF, 10); err != nil {
		t.Fatal(err)
	}
	data := w.Flush()

	r := NewBitReader(data)
	for i, want := range bits {
		got, err := r.ReadBit()
		if err != nil {
			t.Fatalf("bit %d: %v", i, err)
		}
		if got != want {
			t.Fatalf("bit %d: want %d got %d", i, want, got)
		}
	}
	v, err := r.ReadBits(10)
	if err != nil {
		t.Fatal(err)
	}
	if v != 0x3FF {
		t.Fatalf("want 0x3FF got %#x", v)
	}
}

func TestBitWriterMSBFirst(t *testing.T) {
	w := NewBitWriter()
	if err := w.WriteBits(0x5, 3); err != nil { // 101
		t.Fatal(err)
	}
	data := w.Flush()
	if !bytes.Equal(data, []byte{0b10100000}) {
		t.Fatalf("want 10100000, got %08b", data[0])
	}
}

func TestBitWriterRejectsOutOfRangeBit(t *testing.T) {
	w := NewBitWriter()
	if err := w.WriteBit(2); err == nil {
		t.Fatal("want error for bit value > 1")
	}
}

func TestBitWriterRejectsOutOfRangeWidth(t *testing.T) {
	w := NewBitWriter()
	if err := w.WriteBits(1, 0); err == nil {
		t.Fatal("want error for k < 1")
	}
	if err := w.WriteBits(1, 33); err == nil {
		t.Fatal("want error for k > 32")
	}
}

func TestBitReaderEOF(t *testing.T) {
	r := NewBitReader(nil)
	if _, err := r.ReadBit(); err != ErrUnexpectedEOF {
		t.Fatalf("want ErrUnexpectedEOF, got %v", err)
	}
}

func TestBitWriterFlushPadsWithZeros(t *testing.T) {
	w := NewBitWriter()
	_ = w.WriteBit(1)
	data := w.Flush()
	if len(data) != 1 || data[0] != 0b10000000 {
		t.Fatalf("want single padded byte 10000000, got %08b (len=%d)", data, len(data))
	}
}

func TestBitReaderAtPaddingOnly(t *testing.T) {
	w := NewBitWriter()
	_ = w.WriteBits(0x5, 3) // 101, leaves 5 zero padding bits in the final byte.
	data := w.Flush()

	r := NewBitReader(data)
	for i := 0; i < 3; i++ {
		if _, err := r.ReadBit(); err != nil {
			t.Fatal(err)
		}
	}
	if !r.AtPaddingOnly() {
		t.Fatal("want AtPaddingOnly true once only zero padding bits remain")
	}

	data = append(data, 0x00) // a genuine extra byte, even though it's all zero.
	r = NewBitReader(data)
	for i := 0; i < 3; i++ {
		if _, err := r.ReadBit(); err != nil {
			t.Fatal(err)
		}
	}
	if r.AtPaddingOnly() {
		t.Fatal("want AtPaddingOnly false when a full byte remains beyond the current one")
	}
}
