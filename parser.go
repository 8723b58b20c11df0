package actson

import "github.com/pkg/errors"

// mode is the structural state: what kind of byte the parser currently
// expects, independent of whether a scalar is mid-recognition (that is
// tracked separately by scalarKind/numPhase/stringState/keywordMatch).
type mode uint8

const (
	// modeBeforeValue means the next non-whitespace byte must start a
	// value: the very first byte of the document, the byte right after a
	// ':', or the byte right after a ',' inside an array.
	modeBeforeValue mode = iota
	// modeAfterValue means exactly one top-level value has been parsed
	// and streaming is disabled: only trailing whitespace then Eof is
	// accepted.
	modeAfterValue
	// modeInObjectBeforeKey is the position right after '{': a '"' opens
	// a key, a '}' closes an empty object.
	modeInObjectBeforeKey
	// modeInObjectKeyRequired is the position right after ',' inside an
	// object: only '"' is accepted (no trailing comma before '}').
	modeInObjectKeyRequired
	// modeInObjectAfterKey awaits the ':' that separates a key from its
	// value.
	modeInObjectAfterKey
	// modeInObjectAfterValue awaits ',' or '}'.
	modeInObjectAfterValue
	// modeInArrayBeforeValue is the position right after '[': a value
	// may start, or ']' closes an empty array.
	modeInArrayBeforeValue
	// modeInArrayAfterValue awaits ',' or ']'.
	modeInArrayAfterValue
)

type frameKind uint8

const (
	frameObject frameKind = iota
	frameArray
)

// scalarKind says which scalar recognizer, if any, currently owns the byte
// stream.
type scalarKind uint8

const (
	scalarNone scalarKind = iota
	scalarNumber
	scalarString
	scalarKeyword
)

// keywordMatch tracks matching one of the literal tokens true/false/null
// byte by byte.
type keywordMatch struct {
	target string
	pos    int
	event  Event
}

// Parser is the event-producing state machine (component E). It owns a
// Feeder, its structural state, the container depth stack, the current
// scalar sub-lexer state, the current-value buffer, and the byte-offset
// counter. It performs no I/O of its own: NextEvent pulls bytes from the
// Feeder and returns as soon as either an event is ready, the feeder has
// nothing more right now (NeedMoreInput), or the feeder is exhausted.
type Parser struct {
	feeder Feeder
	opts   Options

	mode             mode
	stack            []frameKind
	sawTopLevelValue bool

	scalar   scalarKind
	numPhase numPhase
	str      stringState
	keyword  keywordMatch

	fieldContext bool // true while recognizing a string that is an object key

	value valueBuf

	pos uint64 // component H: parsed_bytes

	havePending bool
	pendingByte byte

	terminal  bool
	lastEvent Event
	err       *ParseError
}

// New creates a Parser reading from feeder with DefaultOptions.
func New(feeder Feeder) *Parser {
	return NewWithOptions(feeder, DefaultOptions())
}

// NewWithOptions creates a Parser reading from feeder with the given
// Options.
func NewWithOptions(feeder Feeder, opts Options) *Parser {
	return &Parser{
		feeder: feeder,
		opts:   opts,
		mode:   modeBeforeValue,
	}
}

// ParsedBytes returns the absolute number of bytes the parser has
// committed to reading from the feeder so far (component H).
func (p *Parser) ParsedBytes() uint64 { return p.pos }

// Err returns the error detail for the most recently produced Error event,
// or nil if the last event was not Error.
func (p *Parser) Err() *ParseError {
	if p.lastEvent == Error {
		return p.err
	}
	return nil
}

// CurrentStr returns the most recently completed FieldName or ValueString
// scalar.
func (p *Parser) CurrentStr() (string, error) {
	if p.lastEvent != FieldName && p.lastEvent != ValueString {
		return "", errors.New("actson: current value is not a string")
	}
	return p.value.str(), nil
}

// CurrentI64 parses the most recently completed ValueInt scalar as an
// int64. It returns a *ParseError with Kind NumberOutOfRange if the digit
// sequence does not fit in 64 bits.
func (p *Parser) CurrentI64() (int64, error) {
	if p.lastEvent != ValueInt {
		return 0, errors.New("actson: current value is not an integer")
	}
	n, err := p.value.int64()
	if err != nil {
		return 0, &ParseError{Kind: NumberOutOfRange, Pos: p.pos, cause: err}
	}
	return n, nil
}

// CurrentF64 parses the most recently completed ValueFloat scalar as a
// float64. It returns a *ParseError with Kind NumberOutOfRange if the
// digit sequence cannot be represented.
func (p *Parser) CurrentF64() (float64, error) {
	if p.lastEvent != ValueFloat {
		return 0, errors.New("actson: current value is not a float")
	}
	f, err := p.value.float64()
	if err != nil {
		return 0, &ParseError{Kind: NumberOutOfRange, Pos: p.pos, cause: err}
	}
	return f, nil
}

// NextEvent advances the state machine and returns the next Event. See the
// package doc for the driver contract.
func (p *Parser) NextEvent() Event {
	ev := p.nextEventInner()
	p.lastEvent = ev
	return ev
}

func (p *Parser) nextEventInner() Event {
	if p.terminal {
		return p.fail(NoMoreInput)
	}
	for {
		b, status := p.nextRawByte()
		switch status {
		case BytePending:
			return NeedMoreInput
		case ByteEnded:
			return p.handleEnded()
		}
		if ev, done := p.consume(b); done {
			return ev
		}
	}
}

// nextRawByte returns the next byte to process, either one saved by a
// prior pushBack (already counted towards pos) or a fresh one from the
// feeder (counted here, the instant it is committed out of the feeder).
func (p *Parser) nextRawByte() (byte, ByteStatus) {
	if p.havePending {
		p.havePending = false
		return p.pendingByte, ByteOK
	}
	b, status := p.feeder.NextByte()
	if status == ByteOK {
		p.pos++
	}
	return b, status
}

// pushBack saves b to be redelivered, uncounted again, on the next call to
// nextRawByte. Used only by the number recognizer: its terminator belongs
// to the next structural decision (§4.H).
func (p *Parser) pushBack(b byte) {
	p.havePending = true
	p.pendingByte = b
}

func (p *Parser) fail(kind ErrorKind) Event {
	p.terminal = true
	p.err = &ParseError{Kind: kind, Pos: p.pos}
	return Error
}

func (p *Parser) finish() Event {
	p.terminal = true
	return Eof
}

func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}

// consume feeds one byte into whichever recognizer currently owns the
// input: a scalar in progress, or the structural dispatcher. It returns
// (event, true) when an event is ready, or (_, false) to keep looping.
func (p *Parser) consume(b byte) (Event, bool) {
	switch p.scalar {
	case scalarNumber:
		return p.consumeNumberByte(b)
	case scalarString:
		return p.consumeStringByte(b)
	case scalarKeyword:
		return p.consumeKeywordByte(b)
	default:
		return p.consumeStructuralByte(b)
	}
}

func (p *Parser) consumeNumberByte(b byte) (Event, bool) {
	next, res := numberStep(p.numPhase, b)
	switch res {
	case numContinue:
		p.value.appendByte(b)
		p.numPhase = next
		return 0, false
	case numReject:
		return p.fail(SyntaxError), true
	default: // numTerminate
		p.pushBack(b)
		ev := p.finishNumber()
		if b == '-' && len(p.stack) == 0 {
			// A '-' right after a top-level number would start a second
			// bare number with no separator; in modeAfterValue the
			// pushed-back '-' is a SyntaxError, in streaming mode too.
			p.mode = modeAfterValue
		}
		return ev, true
	}
}

func (p *Parser) consumeStringByte(b byte) (Event, bool) {
	res, kind := p.stepString(b)
	switch res {
	case strContinue:
		return 0, false
	case strFail:
		return p.fail(kind), true
	default: // strDone
		return p.finishString(), true
	}
}

func (p *Parser) consumeKeywordByte(b byte) (Event, bool) {
	k := &p.keyword
	if b != k.target[k.pos] {
		return p.fail(SyntaxError), true
	}
	k.pos++
	if k.pos < len(k.target) {
		return 0, false
	}
	p.scalar = scalarNone
	p.completeValue()
	return k.event, true
}

func (p *Parser) consumeStructuralByte(b byte) (Event, bool) {
	if isWhitespace(b) {
		return 0, false
	}
	if b < 0x20 {
		return p.fail(IllegalCharacter), true
	}

	switch p.mode {
	case modeBeforeValue, modeInArrayBeforeValue:
		if p.mode == modeInArrayBeforeValue && b == ']' {
			p.popFrame()
			p.completeValue()
			return EndArray, true
		}
		return p.startValue(b)

	case modeAfterValue:
		return p.fail(SyntaxError), true

	case modeInObjectBeforeKey, modeInObjectKeyRequired:
		if p.mode == modeInObjectBeforeKey && b == '}' {
			p.popFrame()
			p.completeValue()
			return EndObject, true
		}
		if b == '"' {
			p.beginString(true)
			return 0, false
		}
		return p.fail(SyntaxError), true

	case modeInObjectAfterKey:
		if b == ':' {
			p.mode = modeBeforeValue
			return 0, false
		}
		return p.fail(SyntaxError), true

	case modeInObjectAfterValue:
		switch b {
		case ',':
			p.mode = modeInObjectKeyRequired
			return 0, false
		case '}':
			p.popFrame()
			p.completeValue()
			return EndObject, true
		default:
			return p.fail(SyntaxError), true
		}

	case modeInArrayAfterValue:
		switch b {
		case ',':
			p.mode = modeBeforeValue
			return 0, false
		case ']':
			p.popFrame()
			p.completeValue()
			return EndArray, true
		default:
			return p.fail(SyntaxError), true
		}
	}
	return p.fail(SyntaxError), true
}

// startValue dispatches the first byte of a value, per §4.E's structural
// grammar.
func (p *Parser) startValue(b byte) (Event, bool) {
	switch {
	case b == '{':
		if err := p.pushFrame(frameObject); err != nil {
			return p.fail(err.Kind), true
		}
		p.mode = modeInObjectBeforeKey
		return StartObject, true
	case b == '[':
		if err := p.pushFrame(frameArray); err != nil {
			return p.fail(err.Kind), true
		}
		p.mode = modeInArrayBeforeValue
		return StartArray, true
	case b == '"':
		p.beginString(false)
		return 0, false
	case b == '-' || (b >= '0' && b <= '9'):
		p.beginNumber(b)
		return 0, false
	case b == 't':
		p.beginKeyword("true", ValueTrue)
		return 0, false
	case b == 'f':
		p.beginKeyword("false", ValueFalse)
		return 0, false
	case b == 'n':
		p.beginKeyword("null", ValueNull)
		return 0, false
	default:
		return p.fail(SyntaxError), true
	}
}

func (p *Parser) beginNumber(b byte) {
	p.value.reset(tagInt)
	p.value.appendByte(b)
	p.numPhase = startNumberPhase(b)
	p.scalar = scalarNumber
}

func (p *Parser) finishNumber() Event {
	ev := ValueInt
	if isFloatPhase(p.numPhase) {
		ev = ValueFloat
		p.value.tag = tagFloat
	} else {
		p.value.tag = tagInt
	}
	p.scalar = scalarNone
	p.completeValue()
	return ev
}

func (p *Parser) beginString(fieldContext bool) {
	p.value.reset(tagString)
	p.str.reset()
	p.fieldContext = fieldContext
	p.scalar = scalarString
}

func (p *Parser) finishString() Event {
	p.scalar = scalarNone
	if p.fieldContext {
		p.mode = modeInObjectAfterKey
		return FieldName
	}
	p.completeValue()
	return ValueString
}

func (p *Parser) beginKeyword(target string, ev Event) {
	p.keyword = keywordMatch{target: target, pos: 1, event: ev}
	p.scalar = scalarKeyword
	tag := tagBool
	if ev == ValueNull {
		tag = tagNull
	}
	p.value.reset(tag)
}

// pushFrame pushes a container frame, enforcing Options.MaxDepth.
func (p *Parser) pushFrame(k frameKind) *ParseError {
	if len(p.stack) >= p.opts.MaxDepth() {
		return &ParseError{Kind: MaxDepthExceeded, Pos: p.pos}
	}
	p.stack = append(p.stack, k)
	return nil
}

func (p *Parser) popFrame() {
	p.stack = p.stack[:len(p.stack)-1]
}

// completeValue transitions the structural mode after any value (scalar,
// or a container just closed) has finished, based on what now sits on top
// of the container stack.
func (p *Parser) completeValue() {
	if len(p.stack) == 0 {
		p.sawTopLevelValue = true
		if p.opts.Streaming() {
			p.mode = modeBeforeValue
		} else {
			p.mode = modeAfterValue
		}
		return
	}
	switch p.stack[len(p.stack)-1] {
	case frameObject:
		p.mode = modeInObjectAfterValue
	case frameArray:
		p.mode = modeInArrayAfterValue
	}
}

// handleEnded decides the event to produce once the feeder reports
// ByteEnded, per the end-of-input policy in §4.E.
func (p *Parser) handleEnded() Event {
	if p.scalar == scalarNumber && numberComplete(p.numPhase) {
		return p.finishNumber()
	}
	if p.scalar != scalarNone {
		return p.fail(NoMoreInput)
	}
	switch p.mode {
	case modeAfterValue:
		return p.finish()
	case modeBeforeValue:
		if len(p.stack) == 0 && p.sawTopLevelValue {
			return p.finish()
		}
		return p.fail(NoMoreInput)
	default:
		return p.fail(NoMoreInput)
	}
}
