package actson

// SliceFeeder feeds the parser from a borrowed byte slice held entirely in
// memory. It never reports BytePending: the whole input is already
// available, so the cursor just walks to the end and reports ByteEnded.
type SliceFeeder struct {
	data []byte
	pos  int
}

// NewSliceFeeder creates a feeder over b. The caller must not mutate b
// while parsing is in progress.
func NewSliceFeeder(b []byte) *SliceFeeder {
	return &SliceFeeder{data: b}
}

// NextByte implements Feeder.
func (f *SliceFeeder) NextByte() (byte, ByteStatus) {
	if f.pos >= len(f.data) {
		return 0, ByteEnded
	}
	b := f.data[f.pos]
	f.pos++
	return b, ByteOK
}
