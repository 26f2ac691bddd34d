// Package writer implements the canonical OVER text serializer of §4.6:
// every Value renders to a fixed textual form with no dependency on how
// (or whether) it was originally written, since OVER's write/read
// round-trip intentionally drops comments, source whitespace, and the
// literal surface form (decimal vs. fraction) of numbers.
package writer

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/m-cat/over/errs"
	"github.com/m-cat/over/value"
)

// escapeStr renders s as a double-quoted OVER string literal.
func escapeStr(s string) string {
	var b strings.Builder

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
		case 0:
			b.WriteString(`\0`)
		case '$':
			// Not itself escaped in input, but $ is reserved for future
			// interpolation (§12 of the expanded design); escape it on
			// write so a round-tripped file stays forward-compatible.
			b.WriteString(`\$`)
		default:
			b.WriteRune(r)
		}
	}

	b.WriteByte('"')

	return b.String()
}

func escapeChar(r rune) string {
	switch r {
	case '\'':
		return `'\''`
	case '\\':
		return `'\\'`
	case '\n':
		return `'\n'`
	case '\r':
		return `'\r'`
	case '\t':
		return `'\t'`
	case 0:
		return `'\0'`
	case '$':
		return `'\$'`
	default:
		return "'" + string(r) + "'"
	}
}

// Write renders v as canonical OVER text. A root Obj is written as its bare
// bindings, since the top-level grammar is brace-less (`file := binding*`,
// §6.2), matching the ground-truth writer's full=false form.
func Write(v value.Value) string {
	var b strings.Builder

	if obj, ok := v.AsObj(); ok {
		writeObjBindings(&b, obj, 0)

		return b.String()
	}

	writeValue(&b, v, 0)

	return b.String()
}

// WriteTo renders v to w.
func WriteTo(w io.Writer, v value.Value) error {
	_, err := io.WriteString(w, Write(v))
	if err != nil {
		return errs.ErrWrite.Wrap(err)
	}

	return nil
}

// WriteFile renders v and writes it to path atomically: the new content is
// written to a temporary file in the same directory, then renamed over the
// destination, so readers never observe a partially-written file.
func WriteFile(v value.Value, path string) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".over-*.tmp")
	if err != nil {
		return errs.ErrWrite.Wrap(err).With()
	}

	tmpName := tmp.Name()

	if _, err := io.WriteString(tmp, Write(v)); err != nil {
		tmp.Close()
		os.Remove(tmpName)

		return errs.ErrWrite.Wrap(err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)

		return errs.ErrWrite.Wrap(err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)

		return errs.ErrWrite.Wrap(err)
	}

	return nil
}

func writeValue(b *strings.Builder, v value.Value, indent int) {
	switch v.Kind() {
	case value.KNull:
		b.WriteString("null")

	case value.KBool:
		bv, _ := v.AsBool()
		if bv {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}

	case value.KInt:
		i, _ := v.AsInt()
		b.WriteString(i.String())

	case value.KFrac:
		f, _ := v.AsFrac()
		b.WriteString(f.Num().String())
		b.WriteByte('/')
		b.WriteString(f.Denom().String())

	case value.KChar:
		c, _ := v.AsChar()
		b.WriteString(escapeChar(c))

	case value.KStr:
		s, _ := v.AsStr()
		b.WriteString(escapeStr(s))

	case value.KArr:
		writeArr(b, v, indent)

	case value.KTup:
		writeTup(b, v, indent)

	case value.KObj:
		writeObj(b, v, indent)
	}
}

func writeArr(b *strings.Builder, v value.Value, indent int) {
	arr, _ := v.AsArr()

	b.WriteByte('[')

	first := true

	for _, e := range arr.Iter() {
		if !first {
			b.WriteByte(' ')
		}

		first = false

		writeValue(b, e, indent)
	}

	b.WriteByte(']')
}

func writeTup(b *strings.Builder, v value.Value, indent int) {
	tup, _ := v.AsTup()

	b.WriteByte('(')

	first := true

	for _, e := range tup.Iter() {
		if !first {
			b.WriteByte(' ')
		}

		first = false

		writeValue(b, e, indent)
	}

	b.WriteByte(')')
}

// writeObj renders a nested Obj inside braces (the ground-truth writer's
// full=true form); the brace-less root form is handled by Write.
func writeObj(b *strings.Builder, v value.Value, indent int) {
	obj, _ := v.AsObj()

	if obj.Parent() == nil && len(obj.Globals()) == 0 && obj.Len() == 0 {
		b.WriteString("{}")

		return
	}

	b.WriteByte('{')
	b.WriteByte('\n')

	writeObjBindings(b, obj, indent+1)

	pad(b, indent)
	b.WriteByte('}')
}

// writeObjBindings renders obj's `^`, globals, and own fields, one binding
// per line at the given indent, with no surrounding braces.
func writeObjBindings(b *strings.Builder, obj *value.Obj, inner int) {
	if p := obj.Parent(); p != nil {
		pad(b, inner)
		b.WriteString("^: ")
		writeValue(b, value.FromObj(p), inner)
		b.WriteByte('\n')
	}

	for _, g := range obj.Globals() {
		pad(b, inner)
		b.WriteByte('@')
		b.WriteString(g.Name)
		b.WriteString(": ")
		writeValue(b, g.Val, inner)
		b.WriteByte('\n')
	}

	for name, fv := range obj.Iter() {
		pad(b, inner)
		b.WriteString(name)
		b.WriteString(": ")
		writeValue(b, fv, inner)
		b.WriteByte('\n')
	}
}

func pad(b *strings.Builder, indent int) {
	b.WriteString(strings.Repeat("  ", indent))
}

// FormatInt renders n as a base-10 integer literal.
func FormatInt(n int64) string { return strconv.FormatInt(n, 10) }
