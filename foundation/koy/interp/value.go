// File: value.go
// Title: koy Runtime Values
// Description: The sealed set of values a koy document evaluates to. Every
//              value remembers the span of source it came from.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial value model

package interp

import (
	"math"
	"strconv"
	"strings"

	"github.com/msto63/koy/foundation/koy/source"
)

// Value is the result of evaluating a node
type Value interface {
	// Start returns the first position of the source that produced the value
	Start() source.Position

	// End returns the position just past that source
	End() source.Position

	// TypeName returns the lower-case type name used in error messages
	TypeName() string

	// String renders the value as koy source
	String() string

	value()
}

// Pos is the source span a value was evaluated from
type Pos struct {
	start source.Position
	end   source.Position
}

func (p Pos) Start() source.Position { return p.start }
func (p Pos) End() source.Position   { return p.end }

// At returns a span covering [start, end)
func At(start, end source.Position) Pos {
	return Pos{start: start, end: end}
}

// Number is an integer or floating-point number
type Number struct {
	Pos
	i       int64
	f       float64
	isFloat bool
}

// Int creates an integer number
func Int(i int64, pos Pos) *Number {
	return &Number{Pos: pos, i: i}
}

// Float creates a floating-point number
func Float(f float64, pos Pos) *Number {
	return &Number{Pos: pos, f: f, isFloat: true}
}

// IsInt reports whether the number is integral
func (n *Number) IsInt() bool { return !n.isFloat }

// Int64 returns the integer value and whether the number is integral
func (n *Number) Int64() (int64, bool) { return n.i, !n.isFloat }

// Float64 returns the number as a float64
func (n *Number) Float64() float64 {
	if n.isFloat {
		return n.f
	}
	return float64(n.i)
}

// IsZero reports whether the number equals zero
func (n *Number) IsZero() bool {
	if n.isFloat {
		return n.f == 0
	}
	return n.i == 0
}

func (n *Number) TypeName() string { return "number" }

func (n *Number) String() string {
	if !n.isFloat {
		return strconv.FormatInt(n.i, 10)
	}
	if math.IsInf(n.f, 0) || math.IsNaN(n.f) {
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	}
	s := strconv.FormatFloat(n.f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// Boolean is true or false
type Boolean struct {
	Pos
	Value bool
}

// Bool creates a boolean
func Bool(b bool, pos Pos) *Boolean {
	return &Boolean{Pos: pos, Value: b}
}

func (b *Boolean) TypeName() string { return "boolean" }
func (b *Boolean) String() string   { return strconv.FormatBool(b.Value) }

// String is a text value
type String struct {
	Pos
	Value string
}

// Str creates a string
func Str(s string, pos Pos) *String {
	return &String{Pos: pos, Value: s}
}

func (s *String) TypeName() string { return "string" }
func (s *String) String() string   { return `"` + s.Value + `"` }

// Null is the null value
type Null struct {
	Pos
}

// NewNull creates a null
func NewNull(pos Pos) *Null {
	return &Null{Pos: pos}
}

func (n *Null) TypeName() string { return "null" }
func (n *Null) String() string   { return "null" }

// Array is an ordered list of values
type Array struct {
	Pos
	Elements []Value
}

// NewArray creates an array
func NewArray(elements []Value, pos Pos) *Array {
	return &Array{Pos: pos, Elements: elements}
}

// Len returns the number of elements
func (a *Array) Len() int { return len(a.Elements) }

func (a *Array) TypeName() string { return "array" }

func (a *Array) String() string {
	parts := make([]string, len(a.Elements))
	for i, el := range a.Elements {
		parts[i] = el.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Object maps keys to values and remembers declaration order
type Object struct {
	Pos
	keys   []string
	fields map[string]Value
}

// NewObject creates an empty object
func NewObject(pos Pos) *Object {
	return &Object{Pos: pos, fields: make(map[string]Value)}
}

// Set stores value under key. A new key is appended to the key order; an
// existing key keeps its place.
func (o *Object) Set(key string, value Value) {
	if _, exists := o.fields[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.fields[key] = value
}

// Get returns the value stored under key
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.fields[key]
	return v, ok
}

// Keys returns the keys in declaration order
func (o *Object) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Len returns the number of entries
func (o *Object) Len() int { return len(o.keys) }

func (o *Object) TypeName() string { return "object" }

func (o *Object) String() string {
	parts := make([]string, len(o.keys))
	for i, k := range o.keys {
		parts[i] = k + ": " + o.fields[k].String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (*Number) value()  {}
func (*Boolean) value() {}
func (*String) value()  {}
func (*Null) value()    {}
func (*Array) value()   {}
func (*Object) value()  {}

// ToNative converts a value to plain Go data: int64, float64, bool, string,
// nil, []any and map[string]any. Object key order is lost.
func ToNative(v Value) any {
	switch val := v.(type) {
	case *Number:
		if i, ok := val.Int64(); ok {
			return i
		}
		return val.Float64()
	case *Boolean:
		return val.Value
	case *String:
		return val.Value
	case *Null:
		return nil
	case *Array:
		out := make([]any, len(val.Elements))
		for i, el := range val.Elements {
			out[i] = ToNative(el)
		}
		return out
	case *Object:
		out := make(map[string]any, len(val.keys))
		for _, k := range val.keys {
			out[k] = ToNative(val.fields[k])
		}
		return out
	default:
		return nil
	}
}

// Equal compares two values structurally, ignoring source spans. Objects
// must list the same keys in the same order. An integer and a float are
// equal when they denote the same number.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case *Number:
		y, ok := b.(*Number)
		if !ok {
			return false
		}
		if x.IsInt() && y.IsInt() {
			return x.i == y.i
		}
		return x.Float64() == y.Float64()
	case *Boolean:
		y, ok := b.(*Boolean)
		return ok && x.Value == y.Value
	case *String:
		y, ok := b.(*String)
		return ok && x.Value == y.Value
	case *Null:
		_, ok := b.(*Null)
		return ok
	case *Array:
		y, ok := b.(*Array)
		if !ok || len(x.Elements) != len(y.Elements) {
			return false
		}
		for i := range x.Elements {
			if !Equal(x.Elements[i], y.Elements[i]) {
				return false
			}
		}
		return true
	case *Object:
		y, ok := b.(*Object)
		if !ok || len(x.keys) != len(y.keys) {
			return false
		}
		for i, k := range x.keys {
			if y.keys[i] != k || !Equal(x.fields[k], y.fields[k]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
