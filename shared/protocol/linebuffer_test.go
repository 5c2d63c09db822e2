package protocol

import (
	"strings"
	"testing"
)

func TestLineBufferSplitReads(t *testing.T) {
	var lb LineBuffer

	lb.Feed([]byte("STA"))
	if _, ok := lb.Next(); ok {
		t.Fatal("got a line from a partial read")
	}

	lb.Feed([]byte("TE:1\nSTATE:2\nPAR"))
	if line, ok := lb.Next(); !ok || line != "STATE:1" {
		t.Fatalf("first line = %q, %v", line, ok)
	}
	if line, ok := lb.Next(); !ok || line != "STATE:2" {
		t.Fatalf("second line = %q, %v", line, ok)
	}
	if _, ok := lb.Next(); ok {
		t.Fatal("remainder surfaced before its newline arrived")
	}

	lb.Feed([]byte("TIAL\n"))
	if line, ok := lb.Next(); !ok || line != "PARTIAL" {
		t.Fatalf("reassembled line = %q, %v", line, ok)
	}
}

func TestLineBufferByteAtATime(t *testing.T) {
	var lb LineBuffer
	for _, b := range []byte("INPUT:UP\n") {
		lb.Feed([]byte{b})
	}
	if line, ok := lb.Next(); !ok || line != "INPUT:UP" {
		t.Fatalf("line = %q, %v", line, ok)
	}
}

func TestLineBufferDropsRunawayRemainder(t *testing.T) {
	var lb LineBuffer
	lb.Feed([]byte(strings.Repeat("x", 2*maxBuffered)))
	if _, ok := lb.Next(); ok {
		t.Fatal("runaway bytes produced a line")
	}
	// After the drop, fresh lines still come through.
	lb.Feed([]byte("INPUT:DOWN\n"))
	if line, ok := lb.Next(); !ok || line != "INPUT:DOWN" {
		t.Fatalf("line after drop = %q, %v", line, ok)
	}
}
