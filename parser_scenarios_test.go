package actson

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestScenarios covers the end-to-end scenarios S1-S7: a fixed input
// produces a fixed event sequence. Scalar payloads are checked alongside
// the event shape where the scenario specifies a value.
func TestScenarios(t *testing.T) {
	t.Run("S1 empty object", func(t *testing.T) {
		require.Equal(t, []Event{StartObject, EndObject, Eof}, parseAll(t, `{}`))
	})

	t.Run("S2 single field object", func(t *testing.T) {
		p := New(NewSliceFeeder([]byte(`{"name": "Elvis"}`)))
		require.Equal(t, StartObject, p.NextEvent())
		require.Equal(t, FieldName, p.NextEvent())
		name, _ := p.CurrentStr()
		require.Equal(t, "name", name)
		require.Equal(t, ValueString, p.NextEvent())
		s, _ := p.CurrentStr()
		require.Equal(t, "Elvis", s)
		require.Equal(t, EndObject, p.NextEvent())
		require.Equal(t, Eof, p.NextEvent())
	})

	t.Run("S3 array of mixed scalars", func(t *testing.T) {
		p := New(NewSliceFeeder([]byte(`["Elvis", 132, "Max", 80.67]`)))
		require.Equal(t, StartArray, p.NextEvent())

		require.Equal(t, ValueString, p.NextEvent())
		s, _ := p.CurrentStr()
		require.Equal(t, "Elvis", s)

		require.Equal(t, ValueInt, p.NextEvent())
		n, _ := p.CurrentI64()
		require.EqualValues(t, 132, n)

		require.Equal(t, ValueString, p.NextEvent())
		s, _ = p.CurrentStr()
		require.Equal(t, "Max", s)

		require.Equal(t, ValueFloat, p.NextEvent())
		f, _ := p.CurrentF64()
		require.InDelta(t, 80.67, f, 1e-9)

		require.Equal(t, EndArray, p.NextEvent())
		require.Equal(t, Eof, p.NextEvent())
	})

	t.Run("S4 illegal control byte", func(t *testing.T) {
		p := New(NewSliceFeeder([]byte("{\"key\":\x02}")))
		require.Equal(t, StartObject, p.NextEvent())
		require.Equal(t, FieldName, p.NextEvent())
		require.Equal(t, Error, p.NextEvent())
		require.Equal(t, IllegalCharacter, p.Err().Kind)
	})

	t.Run("S5 bare key is a syntax error", func(t *testing.T) {
		p := New(NewSliceFeeder([]byte(`{key}`)))
		require.Equal(t, StartObject, p.NextEvent())
		require.Equal(t, Error, p.NextEvent())
		require.Equal(t, SyntaxError, p.Err().Kind)
	})

	t.Run("S6 feeder ends mid-object after a complete value", func(t *testing.T) {
		f := NewPushFeeder()
		f.PushBytes([]byte(`{"i":42`))
		f.Done()
		p := New(f)

		require.Equal(t, StartObject, p.NextEvent())
		require.Equal(t, FieldName, p.NextEvent())
		require.Equal(t, ValueInt, p.NextEvent())
		n, _ := p.CurrentI64()
		require.EqualValues(t, 42, n)
		require.Equal(t, Error, p.NextEvent())
		require.Equal(t, NoMoreInput, p.Err().Kind)
	})

	t.Run("S7 streaming mixed top-level values", func(t *testing.T) {
		opts := NewOptionsBuilder().WithStreaming(true).Build()
		input := "1 2\"\"{\"key\":\"value\"}\n[\"a\",\"b\"]4true"
		p := NewWithOptions(NewSliceFeeder([]byte(input)), opts)

		// Note: the input contains exactly one empty string token ("")
		// between the two leading integers and the object, so exactly one
		// ValueString("") precedes StartObject here, matching the
		// original actson test suite this scenario is grounded on.
		want := []Event{
			ValueInt, ValueInt, ValueString,
			StartObject, FieldName, ValueString, EndObject,
			StartArray, ValueString, ValueString, EndArray,
			ValueInt, ValueTrue, Eof,
		}
		var got []Event
		for {
			ev := p.NextEvent()
			got = append(got, ev)
			if ev == Eof || ev == Error {
				break
			}
		}
		require.Equal(t, want, got)
	})
}
