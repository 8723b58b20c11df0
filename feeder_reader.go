package actson

import (
	"bufio"
	"errors"
	"io"
)

// defaultReaderFeederSize is the chunk size ReaderFeeder asks the wrapped
// reader for on each Refill call.
const defaultReaderFeederSize = 4096

// ReaderFeeder wraps a *bufio.Reader and exposes an explicit Refill
// operation, the way the teacher's Parse wraps the input in a
// bufio.NewReader before pulling runes from it — except here the refill is
// a distinct step the driver calls on NeedMoreInput rather than happening
// implicitly inside the parse loop. This keeps the core parser free of any
// blocking I/O call: Refill is the one place that can block, and the
// driver chooses when to pay for it.
type ReaderFeeder struct {
	r     *bufio.Reader
	chunk []byte
	pos   int
	n     int
	ended bool
	err   error
}

// NewReaderFeeder wraps r (buffering it if it isn't already a
// *bufio.Reader) for use as a Feeder. Call Refill whenever NextEvent
// returns NeedMoreInput.
func NewReaderFeeder(r io.Reader) *ReaderFeeder {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &ReaderFeeder{r: br, chunk: make([]byte, defaultReaderFeederSize)}
}

// Refill reads up to one chunk of bytes from the wrapped reader. It is
// synchronous and may block; call it only when the parser has reported
// NeedMoreInput. io.EOF is not an error: it latches end-of-stream and
// NextByte starts reporting ByteEnded once the current chunk is drained.
func (f *ReaderFeeder) Refill() error {
	n, err := f.r.Read(f.chunk)
	f.pos = 0
	f.n = n
	if err != nil {
		if errors.Is(err, io.EOF) {
			f.ended = true
			return nil
		}
		f.err = err
		return err
	}
	return nil
}

// NextByte implements Feeder.
func (f *ReaderFeeder) NextByte() (byte, ByteStatus) {
	if f.pos < f.n {
		b := f.chunk[f.pos]
		f.pos++
		return b, ByteOK
	}
	if f.ended {
		return 0, ByteEnded
	}
	return 0, BytePending
}

// Err returns the last I/O error reported by Refill, if any. It is
// distinct from the parser's own ParseError: a Refill failure is a
// transport problem, not a JSON syntax problem.
func (f *ReaderFeeder) Err() error { return f.err }
