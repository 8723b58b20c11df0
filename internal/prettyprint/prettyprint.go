// Package prettyprint re-serializes a Value tree back to JSON text. It
// exists solely to drive the round-trip property in tests: parse a
// document, print the resulting tree, parse the printed text again, and
// compare the two trees for equality. It is not part of the parser's
// public surface.
package prettyprint

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mcvoid/actson"
)

// Print renders v as compact JSON text.
func Print(v *actson.Value) string {
	var b strings.Builder
	write(&b, v)
	return b.String()
}

func write(b *strings.Builder, v *actson.Value) {
	switch v.Kind() {
	case actson.KindNull:
		b.WriteString("null")
	case actson.KindBool:
		bv, _ := v.AsBool()
		if bv {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case actson.KindInt:
		n, _ := v.AsInt()
		b.WriteString(strconv.FormatInt(n, 10))
	case actson.KindFloat:
		f, _ := v.AsFloat()
		b.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	case actson.KindString:
		s, _ := v.AsString()
		writeQuoted(b, s)
	case actson.KindArray:
		arr, _ := v.AsArray()
		b.WriteByte('[')
		for i, elem := range arr {
			if i > 0 {
				b.WriteByte(',')
			}
			write(b, elem)
		}
		b.WriteByte(']')
	case actson.KindObject:
		obj, _ := v.AsObject()
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(',')
			}
			writeQuoted(b, k)
			b.WriteByte(':')
			write(b, obj[k])
		}
		b.WriteByte('}')
	default:
		b.WriteString("null")
	}
}

// writeQuoted writes s as a JSON string literal, escaping only what JSON
// requires (quote, backslash, and control bytes); it deliberately does not
// escape non-ASCII runes, since they round-trip fine as raw UTF-8.
func writeQuoted(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
}
