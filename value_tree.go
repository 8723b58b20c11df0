package actson

import "github.com/pkg/errors"

// ValueKind is the type tag of a materialized Value, mirroring the event
// tags that produced it.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindInt
	KindFloat
	KindString
	KindBool
	KindArray
	KindObject
	numValueKinds
)

var valueKindStrings = [numValueKinds]string{
	"<null>", "<int>", "<float>", "<string>", "<bool>", "<array>", "<object>",
}

func (k ValueKind) String() string {
	if k < 0 || k >= numValueKinds {
		return "<unknown>"
	}
	return valueKindStrings[k]
}

// Value is an in-memory JSON value tree, assembled by Collect from a
// Parser's event stream. It is the convenience adapter §1 and §6 describe
// as an external collaborator to the event core: nothing in parser.go
// depends on it.
type Value struct {
	kind   ValueKind
	i      int64
	f      float64
	s      string
	b      bool
	array  []*Value
	object []member
}

type member struct {
	key string
	val *Value
}

// Kind reports the value's type.
func (v *Value) Kind() ValueKind { return v.kind }

// ErrKind is returned by the AsXxx accessors when called against a Value
// of the wrong kind.
var ErrKind = errors.New("actson: value kind mismatch")

func (v *Value) AsNull() error {
	if v.kind != KindNull {
		return errors.Wrapf(ErrKind, "value is %v, not null", v.kind)
	}
	return nil
}

func (v *Value) AsInt() (int64, error) {
	if v.kind != KindInt {
		return 0, errors.Wrapf(ErrKind, "value is %v, not int", v.kind)
	}
	return v.i, nil
}

func (v *Value) AsFloat() (float64, error) {
	switch v.kind {
	case KindFloat:
		return v.f, nil
	case KindInt:
		return float64(v.i), nil
	default:
		return 0, errors.Wrapf(ErrKind, "value is %v, not a number", v.kind)
	}
}

func (v *Value) AsString() (string, error) {
	if v.kind != KindString {
		return "", errors.Wrapf(ErrKind, "value is %v, not string", v.kind)
	}
	return v.s, nil
}

func (v *Value) AsBool() (bool, error) {
	if v.kind != KindBool {
		return false, errors.Wrapf(ErrKind, "value is %v, not bool", v.kind)
	}
	return v.b, nil
}

func (v *Value) AsArray() ([]*Value, error) {
	if v.kind != KindArray {
		return nil, errors.Wrapf(ErrKind, "value is %v, not array", v.kind)
	}
	return v.array, nil
}

func (v *Value) AsObject() (map[string]*Value, error) {
	if v.kind != KindObject {
		return nil, errors.Wrapf(ErrKind, "value is %v, not object", v.kind)
	}
	m := make(map[string]*Value, len(v.object))
	for _, mem := range v.object {
		m[mem.key] = mem.val
	}
	return m, nil
}

// Index is a fluent accessor for array members: out-of-range or non-array
// access returns an empty Value rather than an error, for call chains like
// root.Index(0).Key("name").
func (v *Value) Index(i int) *Value {
	if v.kind != KindArray || i < 0 || i >= len(v.array) {
		return &Value{}
	}
	return v.array[i]
}

// Key is a fluent accessor for object members, with the same empty-Value
// fallback as Index.
func (v *Value) Key(k string) *Value {
	if v.kind != KindObject {
		return &Value{}
	}
	for _, mem := range v.object {
		if mem.key == k {
			return mem.val
		}
	}
	return &Value{}
}

// frameBuilder accumulates the in-progress contents of one open container
// while Collect walks the event stream.
type frameBuilder struct {
	kind    ValueKind // KindArray or KindObject
	array   []*Value
	object  []member
	lastKey string
}

// Collect drains p (which must not have produced any event yet) until it
// reaches a single top-level value, Eof, or Error, and materializes the
// value into an in-memory tree. It is the out-of-core convenience adapter
// §1 calls out ("convenience adapters that materialize events into an
// in-memory tree"): building a tree is strictly optional and unrelated to
// how the event core itself operates.
//
// needMore is called whenever the parser reports NeedMoreInput; it should
// arrange for more bytes to be available on the feeder (e.g. call
// PushFeeder.PushBytes/Done, or ReaderFeeder.Refill) and may return an
// error to abort collection early.
func Collect(p *Parser, needMore func() error) (*Value, error) {
	var stack []*frameBuilder
	var root *Value

	attach := func(v *Value) {
		if len(stack) == 0 {
			root = v
			return
		}
		top := stack[len(stack)-1]
		if top.kind == KindObject {
			top.object = append(top.object, member{key: top.lastKey, val: v})
		} else {
			top.array = append(top.array, v)
		}
	}

	for {
		ev := p.NextEvent()
		switch ev {
		case NeedMoreInput:
			if err := needMore(); err != nil {
				return nil, err
			}
			continue
		case Eof:
			return root, nil
		case Error:
			return nil, p.Err()

		case StartObject:
			stack = append(stack, &frameBuilder{kind: KindObject})
		case StartArray:
			stack = append(stack, &frameBuilder{kind: KindArray})
		case EndObject, EndArray:
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			v := &Value{kind: top.kind, array: top.array, object: top.object}
			attach(v)

		case FieldName:
			s, _ := p.CurrentStr()
			stack[len(stack)-1].lastKey = s
		case ValueString:
			s, _ := p.CurrentStr()
			attach(&Value{kind: KindString, s: s})
		case ValueInt:
			n, err := p.CurrentI64()
			if err != nil {
				return nil, err
			}
			attach(&Value{kind: KindInt, i: n})
		case ValueFloat:
			f, err := p.CurrentF64()
			if err != nil {
				return nil, err
			}
			attach(&Value{kind: KindFloat, f: f})
		case ValueTrue:
			attach(&Value{kind: KindBool, b: true})
		case ValueFalse:
			attach(&Value{kind: KindBool, b: false})
		case ValueNull:
			attach(&Value{kind: KindNull})
		}

		if root != nil && len(stack) == 0 {
			// A top-level value (a scalar, or a container that just
			// closed) was attached; the next NextEvent call will report Eof (or,
			// in streaming mode, another value). Either way Collect's
			// contract is to return the first complete top-level value.
			// ev.IsScalarValue() covers FieldName too, but FieldName can
			// only occur with a non-empty stack, so it never reaches here.
			if ev.IsScalarValue() || ev == EndObject || ev == EndArray {
				return root, nil
			}
		}
	}
}

// CollectSlice is a convenience wrapper around Collect for input that is
// already fully in memory: it never needs to arrange for more bytes, since
// SliceFeeder never reports NeedMoreInput once constructed from the whole
// slice.
func CollectSlice(b []byte) (*Value, error) {
	p := New(NewSliceFeeder(b))
	return Collect(p, func() error {
		return errors.New("actson: slice feeder unexpectedly requested more input")
	})
}
