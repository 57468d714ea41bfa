// Package printer renders an internal/ast tree or a raw token stream to
// text, matching the external interfaces spec §6 describes: a line-numbered,
// indented tree dump resembling go/ast's own ast.Fprint, and a JSON
// token-stream encoder.
package printer

import (
	"bytes"
	"fmt"
	"io"
	"reflect"

	"github.com/saibing/gors/internal/ast"
	"github.com/saibing/gors/internal/token"
)

var positionType = reflect.TypeOf(token.Position{})

// Fprint writes a line-numbered, indented dump of node to w: each line is
// prefixed with its 1-based line number right-aligned in a 6-column field
// followed by two spaces ("%6d  "), nested values are indented by one
// ".  " per nesting depth after that prefix, and a pointer revisited
// later in the tree (the Ident<->Object cycle of spec §9, chiefly) is
// rendered as "*(obj @ L)" instead of being expanded again.
func Fprint(w io.Writer, node ast.Node) error {
	lw := &lineWriter{w: w, line: 1, atBOL: true}
	p := &dumper{out: lw, ptrmap: make(map[interface{}]int)}
	p.print(reflect.ValueOf(node))
	p.printf("\n")
	return p.err
}

type lineWriter struct {
	w     io.Writer
	line  int
	atBOL bool
}

func (lw *lineWriter) Write(p []byte) (int, error) {
	total := 0
	for len(p) > 0 {
		if lw.atBOL {
			if _, err := fmt.Fprintf(lw.w, "%6d  ", lw.line); err != nil {
				return total, err
			}
			lw.atBOL = false
		}
		i := bytes.IndexByte(p, '\n')
		if i < 0 {
			n, err := lw.w.Write(p)
			total += n
			return total, err
		}
		n, err := lw.w.Write(p[:i+1])
		total += n
		if err != nil {
			return total, err
		}
		lw.line++
		lw.atBOL = true
		p = p[i+1:]
	}
	return total, nil
}

// dumper walks a reflect.Value tree and renders it field by field. It is
// deliberately generic (spec §6: the printer must handle every node type
// in the tree without per-type formatting code) rather than hand-written
// per node type.
type dumper struct {
	out    io.Writer
	indent int
	line   int // count of '\n' written so far, used as the cycle backreference target
	ptrmap map[interface{}]int
	err    error
}

func (p *dumper) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	s := fmt.Sprintf(format, args...)
	if _, err := io.WriteString(p.out, s); err != nil {
		p.err = err
		return
	}
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			p.line++
		}
	}
}

func (p *dumper) newline() {
	p.printf("\n")
	for i := 0; i < p.indent; i++ {
		p.printf(".  ")
	}
}

func isNilValue(x reflect.Value) bool {
	switch x.Kind() {
	case reflect.Interface, reflect.Ptr, reflect.Map, reflect.Slice:
		return x.IsNil()
	}
	return false
}

func (p *dumper) print(x reflect.Value) {
	if !x.IsValid() || isNilValue(x) {
		p.printf("nil")
		return
	}

	// token.Position prints as a single "dir/file:line:col" token, matching
	// go/token.Position's compact form, rather than as an expanded struct
	// (spec §6).
	if x.Type() == positionType {
		pos := x.Interface().(token.Position)
		p.printf("%s", pos.String())
		return
	}

	switch x.Kind() {
	case reflect.Interface:
		p.print(x.Elem())

	case reflect.Ptr:
		key := x.Interface()
		if line, seen := p.ptrmap[key]; seen {
			p.printf("*(obj @ %d)", line)
			return
		}
		p.ptrmap[key] = p.line + 1
		p.printf("*")
		p.print(x.Elem())

	case reflect.Map:
		p.printf("%s (len = %d) {", x.Type(), x.Len())
		if x.Len() > 0 {
			p.indent++
			for _, key := range x.MapKeys() {
				p.newline()
				p.print(key)
				p.printf(": ")
				p.print(x.MapIndex(key))
			}
			p.indent--
			p.newline()
		}
		p.printf("}")

	case reflect.Slice:
		p.printf("%s (len = %d) {", x.Type(), x.Len())
		if x.Len() > 0 {
			p.indent++
			for i, n := 0, x.Len(); i < n; i++ {
				p.newline()
				p.printf("%d: ", i)
				p.print(x.Index(i))
			}
			p.indent--
			p.newline()
		}
		p.printf("}")

	case reflect.Struct:
		t := x.Type()
		p.printf("%s {", t)
		p.indent++
		for i, n := 0, t.NumField(); i < n; i++ {
			p.newline()
			p.printf("%s: ", t.Field(i).Name)
			p.print(x.Field(i))
		}
		p.indent--
		p.newline()
		p.printf("}")

	default:
		switch v := x.Interface().(type) {
		case string:
			p.printf("%q", v)
		case fmt.Stringer:
			p.printf("%s", v)
		default:
			p.printf("%v", v)
		}
	}
}
