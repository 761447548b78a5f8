package validator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind tags the shape of a parameter value.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindNone
	KindBool
	KindInt
	KindFloat
	KindString
	KindList
	KindArray
)

var kindNames = [...]string{
	KindUnknown: "unknown",
	KindNone:    "none",
	KindBool:    "bool",
	KindInt:     "int",
	KindFloat:   "float",
	KindString:  "string",
	KindList:    "list",
	KindArray:   "array",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Kinds is an ordered set of allowed kinds.
type Kinds []Kind

// Contains reports whether k is in the set.
func (ks Kinds) Contains(k Kind) bool {
	for _, allowed := range ks {
		if allowed == k {
			return true
		}
	}
	return false
}

// Names returns the kind names in order.
func (ks Kinds) Names() []string {
	names := make([]string, len(ks))
	for i, k := range ks {
		names[i] = k.String()
	}
	return names
}

func (ks Kinds) String() string {
	return strings.Join(ks.Names(), ", ")
}

// Value is a tagged parameter value. The zero Value has KindUnknown.
type Value struct {
	kind   Kind
	b      bool
	i      int64
	f      float64
	s      string
	list   []Value
	data   []float64
	shape  []int
	goType string
}

func None() Value { return Value{kind: KindNone} }

func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

func Int(i int64) Value { return Value{kind: KindInt, i: i} }

func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

func String(s string) Value { return Value{kind: KindString, s: s} }

func List(vs ...Value) Value { return Value{kind: KindList, list: vs} }

// Strings lifts each string into a string Value.
func Strings(ss ...string) []Value {
	vs := make([]Value, len(ss))
	for i, s := range ss {
		vs[i] = String(s)
	}
	return vs
}

// Array returns a dense numeric array with the given shape. With no shape the
// array is one-dimensional. Panics if the shape does not cover data exactly.
func Array(data []float64, shape ...int) Value {
	if len(shape) == 0 {
		shape = []int{len(data)}
	}
	size := 1
	for _, n := range shape {
		if n < 0 {
			panic(fmt.Sprintf("validator: negative array extent %d", n))
		}
		size *= n
	}
	if size != len(data) {
		panic(fmt.Sprintf("validator: shape %v does not match %d elements", shape, len(data)))
	}
	return Value{kind: KindArray, data: data, shape: shape}
}

// Of lifts a plain Go value into a Value. Nested slices of float64 are not
// treated as arrays; use Array for multi-dimensional data. Unsupported types
// produce a KindUnknown value that no allowed set contains.
func Of(v any) Value {
	switch x := v.(type) {
	case nil:
		return None()
	case Value:
		return x
	case bool:
		return Bool(x)
	case int:
		return Int(int64(x))
	case int8:
		return Int(int64(x))
	case int16:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case uint:
		return unsigned(uint64(x))
	case uint64:
		return unsigned(x)
	case uint8:
		return Int(int64(x))
	case uint16:
		return Int(int64(x))
	case uint32:
		return Int(int64(x))
	case float32:
		return Float(float64(x))
	case float64:
		return Float(x)
	case string:
		return String(x)
	case []int:
		vs := make([]Value, len(x))
		for i, n := range x {
			vs[i] = Int(int64(n))
		}
		return List(vs...)
	case []int64:
		vs := make([]Value, len(x))
		for i, n := range x {
			vs[i] = Int(n)
		}
		return List(vs...)
	case []float64:
		vs := make([]Value, len(x))
		for i, f := range x {
			vs[i] = Float(f)
		}
		return List(vs...)
	case []float32:
		vs := make([]Value, len(x))
		for i, f := range x {
			vs[i] = Float(float64(f))
		}
		return List(vs...)
	case []string:
		return List(Strings(x...)...)
	case []any:
		vs := make([]Value, len(x))
		for i, e := range x {
			vs[i] = Of(e)
		}
		return List(vs...)
	default:
		return Value{kind: KindUnknown, goType: fmt.Sprintf("%T", v)}
	}
}

func (v Value) Kind() Kind { return v.kind }

// Ndim returns the number of array dimensions, or 0 for non-array values.
func (v Value) Ndim() int {
	if v.kind != KindArray {
		return 0
	}
	return len(v.shape)
}

// Shape returns a copy of the array shape.
func (v Value) Shape() []int {
	return append([]int(nil), v.shape...)
}

// Size returns the number of scalar elements: 1 for scalars, the flattened
// count for lists, and the element count for arrays.
func (v Value) Size() int {
	switch v.kind {
	case KindList:
		n := 0
		for _, e := range v.list {
			n += e.Size()
		}
		return n
	case KindArray:
		return len(v.data)
	default:
		return 1
	}
}

// Floats flattens a numeric value into a float64 slice. The second result is
// false when v or any nested element is not numeric.
func (v Value) Floats() ([]float64, bool) {
	switch v.kind {
	case KindInt:
		return []float64{float64(v.i)}, true
	case KindFloat:
		return []float64{v.f}, true
	case KindArray:
		return append([]float64(nil), v.data...), true
	case KindList:
		out := make([]float64, 0, len(v.list))
		for _, e := range v.list {
			fs, ok := e.Floats()
			if !ok {
				return nil, false
			}
			out = append(out, fs...)
		}
		return out, true
	default:
		return nil, false
	}
}

// Equal reports whether two values hold the same content. Int and float
// values compare numerically.
func (v Value) Equal(o Value) bool {
	if v.isNumber() && o.isNumber() {
		return v.number() == o.number()
	}
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNone:
		return true
	case KindBool:
		return v.b == o.b
	case KindString:
		return v.s == o.s
	case KindList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(o.list[i]) {
				return false
			}
		}
		return true
	case KindArray:
		if len(v.shape) != len(o.shape) || len(v.data) != len(o.data) {
			return false
		}
		for i := range v.shape {
			if v.shape[i] != o.shape[i] {
				return false
			}
		}
		for i := range v.data {
			if v.data[i] != o.data[i] {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// TypeName is the name used for the actual type in error messages.
func (v Value) TypeName() string {
	if v.kind == KindUnknown && v.goType != "" {
		return v.goType
	}
	return v.kind.String()
}

func (v Value) String() string {
	switch v.kind {
	case KindNone:
		return "none"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return formatFloat(v.f)
	case KindString:
		return v.s
	case KindList:
		parts := make([]string, len(v.list))
		for i, e := range v.list {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindArray:
		parts := make([]string, len(v.data))
		for i, f := range v.data {
			parts[i] = formatFloat(f)
		}
		return fmt.Sprintf("array%v[%s]", v.shape, strings.Join(parts, " "))
	default:
		return "<" + v.TypeName() + ">"
	}
}

func (v Value) isNumber() bool {
	return v.kind == KindInt || v.kind == KindFloat
}

func (v Value) number() float64 {
	if v.kind == KindInt {
		return float64(v.i)
	}
	return v.f
}

// unsigned keeps values above math.MaxInt64 as floats instead of wrapping.
func unsigned(u uint64) Value {
	if u > math.MaxInt64 {
		return Float(float64(u))
	}
	return Int(int64(u))
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
