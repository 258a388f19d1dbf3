package value

// Array is a dense-or-holey list of values. A nil entry in Values is a
// hole and reads as undefined.
type Array struct {
	Values []Value
	props
}

func NewArray(vs ...Value) *Array {
	return &Array{Values: vs}
}

func (a *Array) Type() Type { return ArrayType }

func (a *Array) Length() (int64, error) { return int64(len(a.Values)), nil }

func (a *Array) Index(i int64) (Value, error) {
	if i < 0 || i >= int64(len(a.Values)) || a.Values[i] == nil {
		return Undefined, nil
	}
	return a.Values[i], nil
}

func (a *Array) OwnProperty(name string) (*Property, bool) {
	if i, ok := ArrayIndex(name); ok {
		if int64(i) < int64(len(a.Values)) && a.Values[i] != nil {
			return &Property{Value: a.Values[i], Enumerable: true}, true
		}
		return nil, false
	}
	if name == "length" {
		return &Property{Value: Number(len(a.Values))}, true
	}
	return a.own(name)
}

func (a *Array) OwnKeys() []string {
	res := make([]string, 0, len(a.Values)+len(a.names))
	for i, v := range a.Values {
		if v != nil {
			res = append(res, IndexKey(int64(i)))
		}
	}
	res = append(res, "length")
	return append(res, a.keys()...)
}

func (a *Array) Prototype() Obj { return a.proto }

func (a *Array) SetPrototype(proto Obj) error {
	return a.setPrototype(a, proto)
}

func (a *Array) WithPrototype(proto Obj) *Array {
	if err := a.SetPrototype(proto); err != nil {
		panic(err)
	}
	return a
}

func (a *Array) Push(vs ...Value) *Array {
	a.Values = append(a.Values, vs...)
	return a
}

// SetIndex stores v at i, growing the array with holes as needed.
func (a *Array) SetIndex(i int, v Value) {
	for len(a.Values) <= i {
		a.Values = append(a.Values, nil)
	}
	a.Values[i] = v
}

// DeleteIndex turns slot i into a hole; the length is unchanged.
func (a *Array) DeleteIndex(i int) bool {
	if i < 0 || i >= len(a.Values) {
		return false
	}
	a.Values[i] = nil
	return true
}

// Set stores v under name: index names address Values, other names are
// named properties.
func (a *Array) Set(name string, v Value) *Array {
	if i, ok := ArrayIndex(name); ok {
		a.SetIndex(int(i), v)
		return a
	}
	a.define(name, &Property{Value: v, Enumerable: true})
	return a
}

func (a *Array) Delete(name string) bool {
	if i, ok := ArrayIndex(name); ok {
		return a.DeleteIndex(int(i))
	}
	return a.delete(name)
}
