package buffer

import "io"

var (
	_ io.Reader = (*StreamIO)(nil)
	_ io.Writer = (*StreamIO)(nil)
)

// StreamIO adapts a Stream to io.Reader and io.Writer.
//
// Each call maps to exactly one Stream call, so truncation is preserved: a
// Write that does not fit stores what it can and reports io.ErrShortWrite,
// and a Read from an empty stream reports io.EOF. StreamIO never waits for
// space or data.
type StreamIO struct {
	s *Stream
}

// ReadWriter returns an io.Reader and io.Writer view of s.
func (s *Stream) ReadWriter() *StreamIO {
	return &StreamIO{s: s}
}

// Stream returns the underlying stream.
func (sio *StreamIO) Stream() *Stream {
	return sio.s
}

// Write stores as much of p as fits. It returns io.ErrShortWrite if any
// byte of p was dropped.
func (sio *StreamIO) Write(p []byte) (int, error) {
	n := sio.s.Write(p)
	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

// Read moves buffered bytes into p. It returns io.EOF when p is non-empty
// and nothing is buffered, so io.ReadFull and io.ReadAll stop instead of
// spinning on zero-length reads.
func (sio *StreamIO) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	n := sio.s.Read(p)
	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}
