package actson

// defaultPushBufferSize is the capacity of a PushFeeder created with
// NewPushFeeder. It is generous enough to hold one average-sized scalar
// token without the driver needing to push in multiple rounds, but the
// feeder never grows beyond it: callers with larger scalars simply push in
// more than one round, same as any fixed-size ring buffer.
const defaultPushBufferSize = 4096

// PushFeeder is a fixed-capacity ring buffer implementing Feeder and
// Pusher. The driver pushes bytes in as they become available (from a
// socket read, a chunked HTTP body, anything) and calls Done once the
// producer has nothing left to send.
type PushFeeder struct {
	buf   []byte
	head  int // index of the next byte to read
	count int // number of valid bytes currently buffered
	ended bool
}

// NewPushFeeder creates a PushFeeder with the default ring buffer capacity.
func NewPushFeeder() *PushFeeder {
	return NewPushFeederSize(defaultPushBufferSize)
}

// NewPushFeederSize creates a PushFeeder with a ring buffer of the given
// capacity in bytes.
func NewPushFeederSize(capacity int) *PushFeeder {
	if capacity <= 0 {
		capacity = defaultPushBufferSize
	}
	return &PushFeeder{buf: make([]byte, capacity)}
}

// PushBytes copies as many bytes from p as fit into the free space of the
// ring buffer and returns the number copied.
func (f *PushFeeder) PushBytes(p []byte) int {
	free := len(f.buf) - f.count
	n := len(p)
	if n > free {
		n = free
	}
	tail := (f.head + f.count) % len(f.buf)
	for i := 0; i < n; i++ {
		f.buf[(tail+i)%len(f.buf)] = p[i]
	}
	f.count += n
	return n
}

// Done marks the stream as finished: once the buffered bytes are drained,
// NextByte reports ByteEnded instead of BytePending.
func (f *PushFeeder) Done() {
	f.ended = true
}

// NextByte implements Feeder.
func (f *PushFeeder) NextByte() (byte, ByteStatus) {
	if f.count == 0 {
		if f.ended {
			return 0, ByteEnded
		}
		return 0, BytePending
	}
	b := f.buf[f.head]
	f.head = (f.head + 1) % len(f.buf)
	f.count--
	return b, ByteOK
}
