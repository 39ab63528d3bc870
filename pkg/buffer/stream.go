package buffer

// Stream is a fixed-capacity FIFO byte buffer. Writes that do not fit and
// reads that ask for more than is buffered are truncated, and the number of
// bytes actually moved is returned. Neither operation blocks or fails.
//
// The backing store is allocated once by NewStream and never grows. Buffered
// bytes occupy the circular region starting at head and spanning used bytes;
// the free region starts at the tail, (head+used) mod Cap().
//
// A Stream is not safe for concurrent use. Callers that share one between
// goroutines must synchronize access themselves.
type Stream struct {
	buf  []byte
	head int
	used int
}

// NewStream creates a Stream that holds up to capacity bytes.
//
// A capacity of zero is valid and produces a stream that never accepts or
// yields any byte. NewStream panics if capacity is negative.
func NewStream(capacity int) *Stream {
	return &Stream{buf: make([]byte, capacity)}
}

// Cap returns the capacity the stream was created with.
func (s *Stream) Cap() int {
	return len(s.buf)
}

// Len returns the number of buffered, unread bytes.
func (s *Stream) Len() int {
	return s.used
}

// Free returns the number of bytes a Write can currently accept.
func (s *Stream) Free() int {
	return len(s.buf) - s.used
}

// Write appends as many leading bytes of p as fit in the free region and
// returns how many were stored. The remaining bytes of p are dropped. A full
// stream stores nothing and returns 0.
//
// Unlike io.Writer, a short count is not an error. Use ReadWriter to get
// io.Writer semantics.
func (s *Stream) Write(p []byte) int {
	n := min(len(p), s.Free())
	if n == 0 {
		return 0
	}
	tail := (s.head + s.used) % len(s.buf)
	lo, hi := split(tail, n, len(s.buf))
	copy(s.buf[tail:tail+lo], p[:lo])
	if hi > 0 {
		copy(s.buf[:hi], p[lo:n])
	}
	s.used += n
	return n
}

// Read moves up to len(p) of the oldest buffered bytes into p and returns
// how many were moved. Reading from an empty stream returns 0.
func (s *Stream) Read(p []byte) int {
	n := min(len(p), s.used)
	if n == 0 {
		return 0
	}
	lo, hi := split(s.head, n, len(s.buf))
	copy(p[:lo], s.buf[s.head:s.head+lo])
	if hi > 0 {
		copy(p[lo:n], s.buf[:hi])
	}
	s.used -= n
	s.head = (s.head + n) % len(s.buf)
	return n
}

// Bytes returns a copy of the buffered bytes in FIFO order without
// consuming them.
func (s *Stream) Bytes() []byte {
	out := make([]byte, s.used)
	if s.used == 0 {
		return out
	}
	lo, hi := split(s.head, s.used, len(s.buf))
	copy(out, s.buf[s.head:s.head+lo])
	copy(out[lo:], s.buf[:hi])
	return out
}

// split divides a run of n positions starting at start in a circular store
// of the given size into the segment up to the end of the store (lo) and the
// segment that wraps around to index 0 (hi). lo+hi == n as long as n <= size.
func split(start, n, size int) (lo, hi int) {
	lo = min(n, size-start)
	return lo, n - lo
}
