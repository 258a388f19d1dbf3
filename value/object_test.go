package value

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestObjectKeyOrder(t *testing.T) {
	o := NewObject().
		Set("b", Number(1)).
		Set("2", Number(2)).
		Set("a", Number(3)).
		Set("1", Number(4)).
		Set("01", Number(5)).
		SetHidden("h", Number(6))
	o.Set("b", Number(7))
	want := []string{"1", "2", "b", "a", "01", "h"}
	if diff := cmp.Diff(want, o.OwnKeys()); diff != "" {
		t.Errorf("OwnKeys() mismatch (-want +got):\n%s", diff)
	}
	keys, err := OwnEnumerableKeys(o)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want[:5], keys); diff != "" {
		t.Errorf("OwnEnumerableKeys() mismatch (-want +got):\n%s", diff)
	}
	if !o.Delete("2") || o.Delete("2") {
		t.Error("Delete should succeed exactly once")
	}
	if o.Len() != 5 {
		t.Errorf("Len() = %d, want 5", o.Len())
	}
}

func TestGetPrototypeChain(t *testing.T) {
	proto := NewObject().Set("inherited", String("p")).Set("shadowed", String("p"))
	o := NewObject().Set("shadowed", String("o")).WithPrototype(proto)
	var receiver Value
	o.DefineGetter("computed", NewFunc("get", func(this Value, _ []Value) (Value, error) {
		receiver = this
		return Number(9), nil
	}), true)

	for name, want := range map[string]Value{
		"inherited": String("p"),
		"shadowed":  String("o"),
		"computed":  Number(9),
		"missing":   Undefined,
	} {
		got, err := Get(o, name)
		if err != nil {
			t.Fatal(err)
		}
		if !Equal(got, want) {
			t.Errorf("Get(%q) = %v, want %v", name, got, want)
		}
	}
	if receiver != Value(o) {
		t.Errorf("getter receiver = %v, want the object", receiver)
	}
	if err := proto.SetPrototype(o); !errors.Is(err, ErrType) {
		t.Errorf("cyclic prototype: got %v, want TypeError", err)
	}
}

func TestArrayProperties(t *testing.T) {
	a := NewArray(Number(1), nil, Number(3))
	a.Set("extra", Bool(true))
	want := []string{"0", "2", "length", "extra"}
	if diff := cmp.Diff(want, a.OwnKeys()); diff != "" {
		t.Errorf("OwnKeys() mismatch (-want +got):\n%s", diff)
	}
	if v, _ := a.Index(1); v != Undefined {
		t.Errorf("hole = %v, want undefined", v)
	}
	if _, ok := a.OwnProperty("1"); ok {
		t.Error("hole should not be an own property")
	}
	a.SetIndex(5, String("x"))
	if n, _ := a.Length(); n != 6 {
		t.Errorf("Length() = %d, want 6", n)
	}
	if !a.Delete("0") {
		t.Error("Delete(0) failed")
	}
	if v, _ := Get(a, "length"); !Equal(v, Number(6)) {
		t.Errorf("length = %v, want 6", v)
	}
}

func TestProxyEnumeration(t *testing.T) {
	target := NewObject().Set("a", Number(1)).SetHidden("b", Number(2)).Set("c", Number(3))
	p := &Proxy{Target: target, Keys: func() ([]string, error) {
		return []string{"c", "b", "zz", "a"}, nil
	}}
	keys, err := OwnEnumerableKeys(p)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"c", "a"}, keys); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	trapErr := errors.New("trap")
	p.Keys = func() ([]string, error) { return nil, trapErr }
	if _, err := OwnEnumerableKeys(p); !errors.Is(err, trapErr) {
		t.Errorf("got %v, want trap error", err)
	}
}

func TestProxyArray(t *testing.T) {
	p := &Proxy{Target: NewArray(String("a"), nil, Number(2))}
	if p.Type() != ArrayType || !IsArray(p) {
		t.Fatalf("proxy over an array: type %s", p.Type())
	}
	n, err := p.Length()
	if err != nil || n != 3 {
		t.Fatalf("Length() = %d, %v", n, err)
	}
	v, err := p.Index(1)
	if err != nil || !IsUndefined(v) {
		t.Errorf("Index(1) = %v, %v", v, err)
	}
	got, err := ToAny(p)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]any{"a", nil, 2.0}, got); diff != "" {
		t.Errorf("ToAny (-want +got):\n%s", diff)
	}

	po := &Proxy{Target: NewObject().Set("0", String("x"))}
	if IsArray(po) {
		t.Error("proxy over an object is an array")
	}
	if _, err := po.Length(); !errors.Is(err, ErrType) {
		t.Errorf("Length() of object proxy: got %v", err)
	}
	if v, err := po.Index(0); err != nil || v != String("x") {
		t.Errorf("Index(0) of object proxy = %v, %v", v, err)
	}
	got, err = ToAny(po)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]any{"0": "x"}, got); diff != "" {
		t.Errorf("ToAny (-want +got):\n%s", diff)
	}
}

func TestFromKeyVals(t *testing.T) {
	o := FromKeyVals(
		KeyVal{Key: "b", Val: Number(1)},
		KeyVal{Key: "a", Val: Number(2)},
		KeyVal{Key: "b", Val: Number(3)},
	)
	if diff := cmp.Diff([]string{"b", "a"}, o.OwnKeys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if v, _ := Get(o, "b"); v != Number(3) {
		t.Errorf("b = %v, want 3", v)
	}
}

func TestCall(t *testing.T) {
	f := NewFunc("f", func(this Value, args []Value) (Value, error) {
		return NewArray(this, Arg(args, 0), Arg(args, 3)), nil
	})
	res, err := Call(f, String("this"), Number(1))
	if err != nil {
		t.Fatal(err)
	}
	want := NewArray(String("this"), Number(1), Undefined)
	if !Equal(res, want) {
		t.Errorf("Call() = %v", res)
	}
	if _, err := Call(Number(1), Undefined); !errors.Is(err, ErrType) {
		t.Errorf("calling a number: got %v, want TypeError", err)
	}
	if !IsCallable(f) || IsCallable(NewObject()) {
		t.Error("IsCallable misclassifies")
	}
}
