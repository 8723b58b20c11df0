// Package actson implements a non-blocking, incremental JSON parser.
//
// Unlike encoding/json, the parser never reads from an io.Reader itself and
// never blocks waiting for input. It is a pull-based state machine: the
// caller feeds it bytes through a Feeder and calls NextEvent repeatedly,
// each call returning exactly one Event. When the feeder has nothing ready,
// NextEvent returns NeedMoreInput instead of blocking, so the same Parser
// can drive a socket read loop, a chunked HTTP body, or any other source
// that produces bytes in pieces over time.
//
// Three Feeder implementations cover the common cases: PushFeeder for bytes
// arriving from outside the call stack (PushBytes followed later by
// NextEvent), SliceFeeder for input already fully in memory, and
// ReaderFeeder for a blocking io.Reader where the caller is willing to
// block inside Refill.
//
// A minimal driving loop looks like:
//
//	p := actson.New(actson.NewSliceFeeder(data))
//	for {
//		switch ev := p.NextEvent(); ev {
//		case actson.Error:
//			return p.Err()
//		case actson.Eof:
//			return nil
//		case actson.ValueString, actson.FieldName:
//			s, _ := p.CurrentStr()
//			// ...
//		}
//	}
//
// Collect builds a convenience in-memory Value tree on top of this event
// stream for callers that don't want to track structure themselves.
package actson
