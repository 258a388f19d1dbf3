package value

import "fmt"

// Boxed is an object wrapper around a boolean, number or string.
type Boxed struct {
	prim Value
	props
}

// Box wraps prim, which must be a Bool, Number or String.
func Box(prim Value) *Boxed {
	switch prim.(type) {
	case Bool, Number, String:
	default:
		panic(fmt.Sprintf("cannot box %s", typeName(prim)))
	}
	return &Boxed{prim: prim}
}

func (b *Boxed) Type() Type { return BoxedType }

// Kind is the type of the wrapped primitive.
func (b *Boxed) Kind() Type { return b.prim.Type() }

func (b *Boxed) Unwrap() (Value, error) { return b.prim, nil }

func (b *Boxed) OwnProperty(name string) (*Property, bool) { return b.own(name) }
func (b *Boxed) OwnKeys() []string                         { return b.keys() }
func (b *Boxed) Prototype() Obj                            { return b.proto }

func (b *Boxed) SetPrototype(proto Obj) error {
	return b.setPrototype(b, proto)
}

func (b *Boxed) WithPrototype(proto Obj) *Boxed {
	if err := b.SetPrototype(proto); err != nil {
		panic(err)
	}
	return b
}

func (b *Boxed) Set(name string, v Value) *Boxed {
	b.define(name, &Property{Value: v, Enumerable: true})
	return b
}
