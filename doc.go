/*
Package lzss implements the binary-tree variant of LZSS (Lempel-Ziv-Storer-
Szymanski) used for embedded/ECU compression: a bounded-memory, single-
threaded, bit-packed encoder paired with a symmetric decoder.

The dictionary is a sliding window of W = 1<<IndexBits bytes, indexed
modulo its size. A binary search tree keyed lexicographically by the
LookAhead-byte suffix at each window position drives match search; the
search doubles as an insert, and an exact whole-look-ahead match triggers a
node replace instead of a second insert, keeping duplicate runs from
growing the tree unbounded.

Output is a bit stream of records, most-significant-bit first: a literal
record is a '1' flag bit followed by 8 bits of raw byte; a match record is a
'0' flag bit, an IndexBits-bit window position, and a LengthBits-bit biased
length. The stream ends with a match record whose position field is 0,
which can never occur for a real match because window position 0 is never
inserted into the tree.

# Examples

Round-trip compress and decompress with default parameters:

	enc, err := lzss.NewEncoder(nil)
	if err != nil {
		return err
	}
	compressed, err := enc.Compress(data)
	if err != nil {
		return err
	}
	dec, err := lzss.NewDecoder(nil)
	if err != nil {
		return err
	}
	out, err := dec.Decompress(compressed, len(data))
	if err != nil {
		return err
	}
	// out equals data

Stream from an io.Reader to a caller-supplied BitSink:

	enc, _ := lzss.NewEncoder(nil)
	err := enc.CompressTo(sink, lzss.NewReaderSource(r))

Load custom parameters from a YAML config file:

	params, err := lzss.LoadParams("params.yaml")
	if err != nil {
		return err
	}
	enc, err := lzss.NewEncoder(params)
*/
package lzss
