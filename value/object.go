package value

import (
	"fmt"
	"slices"
)

// Property is an own property slot. Either Value or Getter is used; a
// Getter is called with the object being read as its receiver.
type Property struct {
	Value      Value
	Getter     Callable
	Enumerable bool
}

func (p *Property) Get(receiver Value) (Value, error) {
	if p.Getter != nil {
		return Call(p.Getter, receiver)
	}
	if p.Value == nil {
		return Undefined, nil
	}
	return p.Value, nil
}

// props is the property bag shared by the object-like types.
type props struct {
	names  []string
	byName map[string]*Property
	proto  Obj
}

func (p *props) own(name string) (*Property, bool) {
	prop, ok := p.byName[name]
	return prop, ok
}

// define adds or replaces a property. Replacing keeps the original
// position in creation order.
func (p *props) define(name string, prop *Property) {
	if p.byName == nil {
		p.byName = map[string]*Property{}
	}
	if _, ok := p.byName[name]; !ok {
		p.names = append(p.names, name)
	}
	p.byName[name] = prop
}

func (p *props) delete(name string) bool {
	if _, ok := p.byName[name]; !ok {
		return false
	}
	delete(p.byName, name)
	p.names = slices.DeleteFunc(p.names, func(n string) bool { return n == name })
	return true
}

// keys orders index keys ascending before the others, which stay in
// creation order.
func (p *props) keys() []string {
	var idx []uint32
	res := make([]string, 0, len(p.names))
	for _, n := range p.names {
		if i, ok := ArrayIndex(n); ok {
			idx = append(idx, i)
		}
	}
	if len(idx) != 0 {
		slices.Sort(idx)
		for _, i := range idx {
			res = append(res, IndexKey(int64(i)))
		}
	}
	for _, n := range p.names {
		if _, ok := ArrayIndex(n); !ok {
			res = append(res, n)
		}
	}
	return res
}

func (p *props) setPrototype(self Obj, proto Obj) error {
	for q := proto; q != nil; q = q.Prototype() {
		if q == self {
			return fmt.Errorf("%w: cyclic prototype chain", ErrType)
		}
	}
	p.proto = proto
	return nil
}

// Object is a plain object: an ordered property bag with a prototype.
type Object struct {
	props
}

func NewObject() *Object {
	return &Object{}
}

type KeyVal struct {
	Key string
	Val Value
}

// FromKeyVals creates an object with enumerable data properties in kvs
// order. Later duplicates replace the value of the first occurrence.
func FromKeyVals(kvs ...KeyVal) *Object {
	o := &Object{}
	for _, kv := range kvs {
		o.Set(kv.Key, kv.Val)
	}
	return o
}

func (o *Object) Type() Type { return ObjectType }

func (o *Object) OwnProperty(name string) (*Property, bool) { return o.own(name) }
func (o *Object) OwnKeys() []string                         { return o.keys() }
func (o *Object) Prototype() Obj                            { return o.proto }

func (o *Object) SetPrototype(proto Obj) error {
	return o.setPrototype(o, proto)
}

// WithPrototype is SetPrototype for construction chains; it panics on a
// cyclic chain.
func (o *Object) WithPrototype(proto Obj) *Object {
	if err := o.SetPrototype(proto); err != nil {
		panic(err)
	}
	return o
}

// Set defines an enumerable data property.
func (o *Object) Set(name string, v Value) *Object {
	o.define(name, &Property{Value: v, Enumerable: true})
	return o
}

// SetHidden defines a non-enumerable data property.
func (o *Object) SetHidden(name string, v Value) *Object {
	o.define(name, &Property{Value: v})
	return o
}

func (o *Object) DefineGetter(name string, getter Callable, enumerable bool) *Object {
	o.define(name, &Property{Getter: getter, Enumerable: enumerable})
	return o
}

func (o *Object) Define(name string, prop *Property) *Object {
	o.define(name, prop)
	return o
}

func (o *Object) Delete(name string) bool { return o.delete(name) }

func (o *Object) Has(name string) bool {
	_, ok := o.own(name)
	return ok
}

func (o *Object) Len() int { return len(o.names) }

// Proxy is an object whose own key enumeration comes from a trap. All
// other behavior is forwarded to Target, so a proxy over an array is an
// array for IsArray.
type Proxy struct {
	Target Obj
	Keys   func() ([]string, error)
}

func (p *Proxy) Type() Type { return p.Target.Type() }

func (p *Proxy) Length() (int64, error) {
	a, ok := p.Target.(ArrayLike)
	if !ok {
		return 0, fmt.Errorf("%w: proxy target %s has no length", ErrType, typeName(p.Target))
	}
	return a.Length()
}

func (p *Proxy) Index(i int64) (Value, error) {
	a, ok := p.Target.(ArrayLike)
	if !ok {
		return Get(p, IndexKey(i))
	}
	return a.Index(i)
}

func (p *Proxy) OwnProperty(name string) (*Property, bool) { return p.Target.OwnProperty(name) }
func (p *Proxy) OwnKeys() []string                         { return p.Target.OwnKeys() }
func (p *Proxy) Prototype() Obj                            { return p.Target.Prototype() }

func (p *Proxy) EnumerateKeys() ([]string, error) {
	if p.Keys == nil {
		return p.Target.OwnKeys(), nil
	}
	return p.Keys()
}
