package value

import (
	"math"
	"slices"
)

// Equal reports whether a and b are structurally equal. Primitives compare
// by value (NaN equals NaN), arrays element-wise with holes equal to
// undefined, objects by their own enumerable data in key order, and boxes
// by their wrapped value. Functions and symbols compare by identity.
// Accessors are not invoked; two accessor properties are equal when they
// share a getter.
func Equal(a, b Value) bool {
	if IsUndefined(a) || IsUndefined(b) {
		return IsUndefined(a) && IsUndefined(b)
	}
	if a.Type() != b.Type() {
		return false
	}
	switch x := a.(type) {
	case Number:
		y := b.(Number)
		if math.IsNaN(float64(x)) {
			return math.IsNaN(float64(y))
		}
		return x == y
	case Bool, String:
		return a == b
	}
	switch a.Type() {
	case NullType:
		return true
	case FuncType, SymbolType:
		return a == b
	}
	if a == b {
		return true
	}
	if ua, ok := a.(Unwrapper); ok {
		ub, ok := b.(Unwrapper)
		if !ok {
			return false
		}
		pa, errA := ua.Unwrap()
		pb, errB := ub.Unwrap()
		if errA != nil || errB != nil || !Equal(pa, pb) {
			return false
		}
	}
	if IsArray(a) {
		return IsArray(b) && equalArrays(a.(ArrayLike), b.(ArrayLike))
	}
	oa, okA := a.(Obj)
	ob, okB := b.(Obj)
	if !okA || !okB {
		return false
	}
	return equalProps(oa, ob)
}

func equalArrays(a, b ArrayLike) bool {
	na, errA := a.Length()
	nb, errB := b.Length()
	if errA != nil || errB != nil || na != nb {
		return false
	}
	for i := range na {
		va, errA := a.Index(i)
		vb, errB := b.Index(i)
		if errA != nil || errB != nil || !Equal(va, vb) {
			return false
		}
	}
	return true
}

func equalProps(a, b Obj) bool {
	ka, errA := OwnEnumerableKeys(a)
	kb, errB := OwnEnumerableKeys(b)
	if errA != nil || errB != nil || !slices.Equal(ka, kb) {
		return false
	}
	for _, k := range ka {
		pa, _ := a.OwnProperty(k)
		pb, _ := b.OwnProperty(k)
		if pa.Getter != nil || pb.Getter != nil {
			if pa.Getter != pb.Getter {
				return false
			}
			continue
		}
		if !Equal(pa.Value, pb.Value) {
			return false
		}
	}
	return true
}
