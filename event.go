package actson

import "fmt"

// Event is a single item produced by the parser's state machine. Exactly one
// Event is returned per call to Parser.NextEvent, and NeedMoreInput/Error
// are sentinels rather than payload-bearing values: the payload (the scalar
// just recognized, or the error kind) is read off the parser with
// CurrentStr/CurrentI64/CurrentF64 or Err.
type Event uint8

// The closed set of events the state machine can produce.
const (
	// NeedMoreInput means the feeder ran dry; arrange for more bytes and
	// call NextEvent again.
	NeedMoreInput Event = iota
	// Eof means the document (or, in streaming mode, the input stream) is
	// exhausted at a valid boundary. No further events follow.
	Eof
	// Error means the state machine rejected the input. Call Err for the
	// ErrorKind. No further events follow except further Error(NoMoreInput).
	Error

	StartObject
	EndObject
	StartArray
	EndArray
	FieldName
	ValueString
	ValueInt
	ValueFloat
	ValueTrue
	ValueFalse
	ValueNull

	numEvents
)

var eventStrings = [numEvents]string{
	"NeedMoreInput",
	"Eof",
	"Error",
	"StartObject",
	"EndObject",
	"StartArray",
	"EndArray",
	"FieldName",
	"ValueString",
	"ValueInt",
	"ValueFloat",
	"ValueTrue",
	"ValueFalse",
	"ValueNull",
}

// String returns a human-readable name for e, or "<unknown event>" if e is
// outside the closed set.
func (e Event) String() string {
	if e >= numEvents {
		return "<unknown event>"
	}
	return eventStrings[e]
}

// IsScalarValue reports whether e is one of the scalar value events
// (FieldName counts, since it carries a string payload the same way
// ValueString does).
func (e Event) IsScalarValue() bool {
	switch e {
	case FieldName, ValueString, ValueInt, ValueFloat, ValueTrue, ValueFalse, ValueNull:
		return true
	default:
		return false
	}
}

// ErrorKind is the closed set of reasons the parser can reject input.
type ErrorKind uint8

const (
	// noError is the zero value. The parser never reports it: Err returns
	// nil when the last event was not Error.
	noError ErrorKind = iota
	// SyntaxError is a malformed token or an unexpected byte for the
	// current structural state.
	SyntaxError
	// IllegalCharacter is a control byte (< 0x20) outside whitespace,
	// whether in structure or inside a string.
	IllegalCharacter
	// InvalidUtf8 is an ill-formed UTF-8 byte sequence inside a string.
	InvalidUtf8
	// NumberOutOfRange means CurrentI64/CurrentF64 could not represent the
	// stored digit sequence.
	NumberOutOfRange
	// MaxDepthExceeded means a container push would exceed Options.MaxDepth.
	MaxDepthExceeded
	// NoMoreInput means the feeder ended mid-token or mid-structure, or
	// NextEvent was called again after Eof or Error.
	NoMoreInput
	// InvalidEscape is an unknown \X escape, or a malformed/unmatched
	// \uXXXX surrogate pair.
	InvalidEscape

	numErrorKinds
)

var errorKindStrings = [numErrorKinds]string{
	"<no error>",
	"SyntaxError",
	"IllegalCharacter",
	"InvalidUtf8",
	"NumberOutOfRange",
	"MaxDepthExceeded",
	"NoMoreInput",
	"InvalidEscape",
}

func (k ErrorKind) String() string {
	if k >= numErrorKinds {
		return "<unknown error kind>"
	}
	return errorKindStrings[k]
}

// ParseError is the error value exposed through Parser.Err once NextEvent
// has returned the Error event. Kind classifies the failure; Pos is the
// absolute byte offset (matching ParsedBytes) at which it was detected.
// Where the failure originated in a wrapped standard-library call (the
// strconv range checks behind CurrentI64/CurrentF64), Unwrap reaches that
// cause; errors raised by the state machine itself carry no cause.
type ParseError struct {
	Kind  ErrorKind
	Pos   uint64
	cause error
}

func (e *ParseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s at byte %d: %v", e.Kind, e.Pos, e.cause)
	}
	return fmt.Sprintf("%s at byte %d", e.Kind, e.Pos)
}

// Unwrap exposes the wrapped cause, if any, for errors.Is/errors.As.
func (e *ParseError) Unwrap() error { return e.cause }
