package protocol

import "bytes"

// maxBuffered bounds the unterminated remainder a peer may accumulate. A
// well-behaved peer never comes close; past the cap the buffered bytes can
// no longer form a line anyone wants, so they are dropped.
const maxBuffered = 1024

// LineBuffer reassembles newline-delimited lines from a byte stream that may
// be split at arbitrary points. Feed appends received chunks; Next pops
// complete lines and retains the remainder for the following read.
//
// The zero value is ready to use. LineBuffer is not safe for concurrent use.
type LineBuffer struct {
	buf []byte
}

// Feed appends a received chunk to the buffer.
func (lb *LineBuffer) Feed(p []byte) {
	lb.buf = append(lb.buf, p...)
	if len(lb.buf) > maxBuffered && bytes.IndexByte(lb.buf, '\n') < 0 {
		lb.buf = lb.buf[:0]
	}
}

// Next returns the next complete line, without its trailing newline. ok is
// false when no full line is buffered yet.
func (lb *LineBuffer) Next() (line string, ok bool) {
	i := bytes.IndexByte(lb.buf, '\n')
	if i < 0 {
		return "", false
	}
	line = string(lb.buf[:i])
	rest := copy(lb.buf, lb.buf[i+1:])
	lb.buf = lb.buf[:rest]
	return line, true
}
