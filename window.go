package lzss

// window is the sliding-window dictionary: a fixed-size ring buffer of the
// most recently seen bytes, addressed modulo its size. at and set reduce
// their position mod len(bytes) themselves (the mod-W macro in the original
// source), so callers may pass unreduced positions; only setAbsolute uses
// the raw index.
type window struct {
	bytes []byte
}

// newWindow allocates a window of size w (must be a power of two per
// Params.W()).
func newWindow(w int) *window {
	return &window{bytes: make([]byte, w)}
}

// size returns the window's length, W.
func (win *window) size() int {
	return len(win.bytes)
}

// mod reduces a position into [0, size()) for a power-of-two window size.
func (win *window) mod(pos int) int {
	return pos & (win.size() - 1)
}

// at returns the byte stored at pos mod size().
func (win *window) at(pos int) byte {
	return win.bytes[win.mod(pos)]
}

// set stores b at pos mod size().
func (win *window) set(pos int, b byte) {
	win.bytes[win.mod(pos)] = b
}

// setAbsolute stores b at the raw (unreduced) index pos, used only during
// the prefill phase where pos is already known to be within bounds.
func (win *window) setAbsolute(pos int, b byte) {
	win.bytes[pos] = b
}
