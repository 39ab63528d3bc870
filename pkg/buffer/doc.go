// Package buffer provides a bounded, non-blocking FIFO byte buffer.
//
// A Stream holds at most Cap() bytes in a backing store allocated once at
// creation. Write stores as many leading bytes as fit and Read returns as
// many of the oldest bytes as are buffered; both report the count and never
// block or fail. Regions that cross the end of the store are copied in two
// segments.
//
// Stream is meant for a single owner. It does no locking.
//
// ReadWriter adapts a Stream to io.Reader and io.Writer. The adapter still
// performs a single transfer per call, reporting a truncated write as
// io.ErrShortWrite and an empty read as io.EOF.
//
// Example usage:
//
//	s := buffer.NewStream(8)
//	s.Write([]byte("12345678")) // 8
//	s.Write([]byte("9"))        // 0, no space
//
//	p := make([]byte, 4)
//	s.Read(p) // 4, p = "1234"
//
//	// Blocking-style callers go through the io adapter
//	_, err := io.ReadFull(s.ReadWriter(), p)
package buffer
