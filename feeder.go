package actson

// ByteStatus is the result of asking a Feeder for its next byte.
type ByteStatus uint8

const (
	// ByteOK means Feeder.NextByte returned a valid byte.
	ByteOK ByteStatus = iota
	// BytePending means no byte is currently available, but more may
	// arrive later. The driver must arrange for more input and retry.
	BytePending
	// ByteEnded means the producer has explicitly terminated the stream.
	// No further bytes will ever be available from this feeder.
	ByteEnded
)

// Feeder is the byte-source abstraction the parser pulls from. It is the
// only seam between the state machine and the outside world: the core
// never performs I/O itself, it only calls NextByte.
//
// Implementations must obey one contract: once NextByte has returned
// ByteEnded, it must keep returning ByteEnded forever after.
type Feeder interface {
	// NextByte returns the next input byte, or reports that none is
	// currently available (ByteStatus other than ByteOK).
	NextByte() (b byte, status ByteStatus)
}

// Pusher is implemented by feeders that accept bytes pushed in from the
// driver, as opposed to pulling them from a wrapped reader. PushFeeder is
// the built-in implementation.
type Pusher interface {
	Feeder
	// PushBytes copies as many bytes from p as fit in the feeder's
	// internal buffer and returns how many were copied. The caller should
	// retry pushing the remainder once the parser has drained more bytes.
	PushBytes(p []byte) int
	// Done latches end-of-stream: once the internal buffer is drained,
	// NextByte starts returning ByteEnded.
	Done()
}
