package actson

import (
	"strconv"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// valueTag says how to interpret the bytes accumulated in valueBuf.
type valueTag uint8

const (
	tagNone valueTag = iota
	tagString
	tagInt
	tagFloat
	tagBool
	tagNull
)

// valueBuf is the current-value accumulator (component G): a growable byte
// buffer holding the most recently completed scalar, reset at the start of
// each new scalar and retained across tokens to avoid per-token
// allocation. String values are stored already decoded (escapes resolved,
// UTF-8 bytes written directly); number values are stored as their raw
// decimal text, so conversion is deferred until an accessor is called.
type valueBuf struct {
	tag  valueTag
	buf  []byte
	bool bool
}

func (v *valueBuf) reset(tag valueTag) {
	v.tag = tag
	v.buf = v.buf[:0]
}

func (v *valueBuf) appendByte(b byte) {
	v.buf = append(v.buf, b)
}

func (v *valueBuf) appendRune(r rune) {
	var tmp [utf8.UTFMax]byte
	n := utf8.EncodeRune(tmp[:], r)
	v.buf = append(v.buf, tmp[:n]...)
}

// str returns the accumulated bytes as a string. Valid for tagString,
// where bytes are already decoded UTF-8, and for tagInt/tagFloat, where
// they are the raw digit text.
func (v *valueBuf) str() string {
	return string(v.buf)
}

func (v *valueBuf) int64() (int64, error) {
	n, err := strconv.ParseInt(v.str(), 10, 64)
	if err != nil {
		return 0, errors.Wrap(err, "number out of int64 range")
	}
	return n, nil
}

func (v *valueBuf) float64() (float64, error) {
	f, err := strconv.ParseFloat(v.str(), 64)
	if err != nil {
		return 0, errors.Wrap(err, "number out of float64 range")
	}
	return f, nil
}
