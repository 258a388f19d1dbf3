package value

// Func is a callable object backed by a Go function.
type Func struct {
	Name string
	Fn   func(this Value, args []Value) (Value, error)
	props
}

func NewFunc(name string, fn func(this Value, args []Value) (Value, error)) *Func {
	return &Func{Name: name, Fn: fn}
}

func (f *Func) Type() Type { return FuncType }

func (f *Func) Call(this Value, args ...Value) (Value, error) {
	res, err := f.Fn(this, args)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return Undefined, nil
	}
	return res, nil
}

func (f *Func) OwnProperty(name string) (*Property, bool) { return f.own(name) }
func (f *Func) OwnKeys() []string                         { return f.keys() }
func (f *Func) Prototype() Obj                            { return f.proto }

func (f *Func) SetPrototype(proto Obj) error {
	return f.setPrototype(f, proto)
}

func (f *Func) Set(name string, v Value) *Func {
	f.define(name, &Property{Value: v, Enumerable: true})
	return f
}

// Arg returns args[i] or Undefined when i is out of range.
func Arg(args []Value, i int) Value {
	if i < 0 || i >= len(args) || args[i] == nil {
		return Undefined
	}
	return args[i]
}
