package value

import "fmt"

// Obj is implemented by every value with object identity. Implementations
// should be comparable (in practice, pointers): identity is used for cycle
// detection and the serializer rejects values without it.
type Obj interface {
	Value

	// OwnProperty returns the own property called name.
	OwnProperty(name string) (*Property, bool)

	// OwnKeys returns the own string keys, enumerable or not, with array
	// index keys first in ascending numeric order followed by the remaining
	// keys in creation order.
	OwnKeys() []string

	// Prototype returns the next object on the prototype chain, or nil.
	Prototype() Obj
}

// ArrayLike is an Obj with indexed storage and a length. Only values for
// which IsArray holds are treated as arrays.
type ArrayLike interface {
	Obj
	Length() (int64, error)
	Index(i int64) (Value, error)
}

// Callable values can be invoked with a receiver and arguments.
type Callable interface {
	Value
	Call(this Value, args ...Value) (Value, error)
}

// Unwrapper is implemented by boxed primitives.
type Unwrapper interface {
	Value
	Unwrap() (Value, error)
}

// KeyEnumerator is an optional Obj capability supplying own key
// enumeration in place of OwnKeys, as a proxy's ownKeys trap does. The
// returned keys are still filtered to own enumerable properties.
type KeyEnumerator interface {
	EnumerateKeys() ([]string, error)
}

// IsCallable reports whether v can be called.
func IsCallable(v Value) bool {
	_, ok := v.(Callable)
	return ok
}

// IsArray reports whether v is an array for serialization purposes.
func IsArray(v Value) bool {
	if v == nil || v.Type() != ArrayType {
		return false
	}
	_, ok := v.(ArrayLike)
	return ok
}

// Call invokes fn with receiver this.
func Call(fn Value, this Value, args ...Value) (Value, error) {
	c, ok := fn.(Callable)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a function", ErrType, typeName(fn))
	}
	res, err := c.Call(this, args...)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return Undefined, nil
	}
	return res, nil
}

// Get looks up name on o and then along its prototype chain. Accessors are
// invoked with o as the receiver. A missing property yields Undefined.
func Get(o Obj, name string) (Value, error) {
	for p := o; p != nil; p = p.Prototype() {
		prop, ok := p.OwnProperty(name)
		if ok {
			return prop.Get(o)
		}
	}
	return Undefined, nil
}

// OwnEnumerableKeys returns o's own enumerable keys. If o implements
// KeyEnumerator that is consulted instead of OwnKeys.
func OwnEnumerableKeys(o Obj) ([]string, error) {
	var keys []string
	if ke, ok := o.(KeyEnumerator); ok {
		ks, err := ke.EnumerateKeys()
		if err != nil {
			return nil, err
		}
		keys = ks
	} else {
		keys = o.OwnKeys()
	}
	res := keys[:0:0]
	for _, k := range keys {
		prop, ok := o.OwnProperty(k)
		if !ok || !prop.Enumerable {
			continue
		}
		res = append(res, k)
	}
	return res, nil
}

func typeName(v Value) string {
	if v == nil {
		return UndefinedType.String()
	}
	return v.Type().String()
}
