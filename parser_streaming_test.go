package actson

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// recorded is one captured step of a parse: the event, and the scalar
// payload when the event carries one, so splitting a multi-byte scalar
// across a feed boundary is actually exercised and checked.
type recorded struct {
	ev  Event
	str string
	i   int64
	f   float64
}

// driveToCompletion runs p to Eof/Error, calling onNeedMore each time the
// feeder runs dry, and records every event's payload.
func driveToCompletion(p *Parser, onNeedMore func()) []recorded {
	var out []recorded
	for {
		ev := p.NextEvent()
		if ev == NeedMoreInput {
			onNeedMore()
			continue
		}
		r := recorded{ev: ev}
		switch ev {
		case FieldName, ValueString:
			r.str, _ = p.CurrentStr()
		case ValueInt:
			r.i, _ = p.CurrentI64()
		case ValueFloat:
			r.f, _ = p.CurrentF64()
		}
		out = append(out, r)
		if ev == Eof || ev == Error {
			return out
		}
	}
}

// TestStreamingEquivalence feeds the same document split at every possible
// byte boundary and checks each split produces the identical event/value
// sequence as feeding it whole in one push.
func TestStreamingEquivalence(t *testing.T) {
	input := []byte(`{"name":"Elvis","age":42,"tags":["rock","legend"],"fee":1.5,"signed":true,"bio":null}`)
	opts := NewOptionsBuilder().WithStreaming(true).Build()

	f := NewPushFeeder()
	p := NewWithOptions(f, opts)
	f.PushBytes(input)
	f.Done()
	baseline := driveToCompletion(p, func() {
		t.Fatal("unexpected NeedMoreInput with the whole document already pushed")
	})
	require.NotEmpty(t, baseline)

	for split := 0; split <= len(input); split++ {
		t.Run(fmt.Sprintf("split@%d", split), func(t *testing.T) {
			first, second := input[:split], input[split:]
			pushed := false

			sf := NewPushFeeder()
			sp := NewWithOptions(sf, opts)
			got := driveToCompletion(sp, func() {
				if !pushed {
					sf.PushBytes(first)
					pushed = true
				} else {
					sf.PushBytes(second)
					sf.Done()
				}
			})
			require.Equal(t, baseline, got)
		})
	}
}

// TestStreamingEquivalenceByteAtATime is the same property pushed to its
// extreme: one byte fed in per NeedMoreInput.
func TestStreamingEquivalenceByteAtATime(t *testing.T) {
	input := []byte(`[1,2.5,"xéy",true,false,null,{"k":[]}]`)
	opts := DefaultOptions()

	wholeF := NewSliceFeeder(input)
	wholeP := NewWithOptions(wholeF, opts)
	baseline := driveToCompletion(wholeP, func() {
		t.Fatal("SliceFeeder should never report NeedMoreInput")
	})

	f := NewPushFeeder()
	p := NewWithOptions(f, opts)
	i := 0
	got := driveToCompletion(p, func() {
		if i < len(input) {
			f.PushBytes(input[i : i+1])
			i++
		} else {
			f.Done()
		}
	})
	require.Equal(t, baseline, got)
}
