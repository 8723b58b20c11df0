package actson

import "unicode/utf8"

// stringPhase is the string sub-automaton's phase: Body, Escape, or
// mid-\uXXXX (tracked via hexDigits below rather than four separate enum
// values — the design calls these Unicode(n) for n in 0..4, which a
// counter expresses just as precisely as four named states) or mid a
// multi-byte UTF-8 sequence read straight from the input.
type stringPhase uint8

const (
	strBody stringPhase = iota
	strEscape
	strUnicode
	strUtf8Cont
)

// stringState is the string recognizer's persistent state, embedded in
// Parser so a suspend (NeedMoreInput) in the middle of an escape, a
// \uXXXX, or a multi-byte rune can resume exactly where it left off on the
// next NextEvent call.
type stringState struct {
	phase stringPhase

	hexVal    rune // accumulator for the \uXXXX currently being read
	hexDigits int  // how many of the 4 hex digits have been read so far

	highSurrogate rune // nonzero while waiting for a matching low surrogate

	utf8Buf [4]byte
	utf8Len int // total length of the multi-byte sequence in progress
	utf8Has int // bytes collected so far
}

func (s *stringState) reset() {
	s.phase = strBody
	s.hexVal = 0
	s.hexDigits = 0
	s.highSurrogate = 0
	s.utf8Len = 0
	s.utf8Has = 0
}

// stringResult is the outcome of feeding one byte to the string
// recognizer.
type stringResult uint8

const (
	strContinue stringResult = iota
	strDone                  // closing quote seen, value.buf holds the decoded string
	strFail                  // reject with the given ErrorKind
)

func hexDigitValue(b byte) (rune, bool) {
	switch {
	case b >= '0' && b <= '9':
		return rune(b - '0'), true
	case b >= 'a' && b <= 'f':
		return rune(b-'a') + 10, true
	case b >= 'A' && b <= 'F':
		return rune(b-'A') + 10, true
	default:
		return 0, false
	}
}

func isHighSurrogate(r rune) bool { return r >= 0xD800 && r <= 0xDBFF }
func isLowSurrogate(r rune) bool  { return r >= 0xDC00 && r <= 0xDFFF }

// utf8LeadLen returns the total byte length of the UTF-8 sequence that
// starts with lead, or 0 if lead can never validly start a sequence (a
// stray continuation byte, or a byte >= 0xF5).
func utf8LeadLen(lead byte) int {
	switch {
	case lead < 0x80:
		return 1
	case lead&0xE0 == 0xC0:
		return 2
	case lead&0xF0 == 0xE0:
		return 3
	case lead&0xF8 == 0xF0 && lead <= 0xF4:
		return 4
	default:
		return 0
	}
}

// escapeByte decodes a single-character escape (not \u) to its literal
// value.
func escapeByte(b byte) (rune, bool) {
	switch b {
	case '"':
		return '"', true
	case '\\':
		return '\\', true
	case '/':
		return '/', true
	case 'b':
		return '\b', true
	case 'f':
		return '\f', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	default:
		return 0, false
	}
}

// stepString advances the string recognizer by one byte, writing decoded
// bytes into value as they resolve. It reports strFail with kind set when
// the byte is rejected.
func (p *Parser) stepString(b byte) (result stringResult, kind ErrorKind) {
	s := &p.str

	switch s.phase {
	case strUtf8Cont:
		if b&0xC0 != 0x80 {
			return strFail, InvalidUtf8
		}
		s.utf8Buf[s.utf8Has] = b
		s.utf8Has++
		if s.utf8Has < s.utf8Len {
			return strContinue, 0
		}
		if !validUtf8Sequence(s.utf8Buf[:s.utf8Len]) {
			return strFail, InvalidUtf8
		}
		p.value.buf = append(p.value.buf, s.utf8Buf[:s.utf8Len]...)
		s.phase = strBody
		return strContinue, 0

	case strEscape:
		if s.highSurrogate != 0 && b != 'u' {
			return strFail, InvalidEscape
		}
		if b == 'u' {
			s.phase = strUnicode
			s.hexVal = 0
			s.hexDigits = 0
			return strContinue, 0
		}
		r, ok := escapeByte(b)
		if !ok {
			return strFail, InvalidEscape
		}
		p.value.appendRune(r)
		s.phase = strBody
		return strContinue, 0

	case strUnicode:
		d, ok := hexDigitValue(b)
		if !ok {
			return strFail, InvalidEscape
		}
		s.hexVal = s.hexVal<<4 | d
		s.hexDigits++
		if s.hexDigits < 4 {
			return strContinue, 0
		}
		val := s.hexVal
		switch {
		case s.highSurrogate != 0:
			if !isLowSurrogate(val) {
				return strFail, InvalidEscape
			}
			cp := 0x10000 + (s.highSurrogate-0xD800)*0x400 + (val - 0xDC00)
			p.value.appendRune(cp)
			s.highSurrogate = 0
		case isHighSurrogate(val):
			s.highSurrogate = val
		case isLowSurrogate(val):
			return strFail, InvalidEscape
		default:
			p.value.appendRune(val)
		}
		s.phase = strBody
		return strContinue, 0

	default: // strBody
		if s.highSurrogate != 0 && b != '\\' {
			return strFail, InvalidEscape
		}
		switch {
		case b == '"':
			return strDone, 0
		case b == '\\':
			s.phase = strEscape
			return strContinue, 0
		case b < 0x20:
			return strFail, IllegalCharacter
		case b < 0x80:
			p.value.appendByte(b)
			return strContinue, 0
		default:
			n := utf8LeadLen(b)
			if n < 2 {
				return strFail, InvalidUtf8
			}
			s.utf8Buf[0] = b
			s.utf8Has = 1
			s.utf8Len = n
			s.phase = strUtf8Cont
			return strContinue, 0
		}
	}
}

// validUtf8Sequence checks a complete, already-length-matched candidate
// UTF-8 byte sequence for well-formedness (excludes overlong encodings,
// surrogate code points, and values beyond the Unicode range) by
// round-tripping it through the standard decoder.
func validUtf8Sequence(b []byte) bool {
	r, size := utf8.DecodeRune(b)
	if r == utf8.RuneError && size == 1 {
		return false
	}
	return size == len(b)
}
