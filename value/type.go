package value

import "fmt"

type Type int

const (
	UndefinedType Type = iota
	NullType
	BoolType
	NumberType
	StringType
	SymbolType
	ArrayType
	ObjectType
	FuncType
	BoxedType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		UndefinedType: "Undefined",
		NullType:      "Null",
		BoolType:      "Bool",
		NumberType:    "Number",
		StringType:    "String",
		SymbolType:    "Symbol",
		ArrayType:     "Array",
		ObjectType:    "Object",
		FuncType:      "Func",
		BoxedType:     "Boxed",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for _, tt := range Types() {
		if tt.String() == string(d) {
			*t = tt
			return nil
		}
	}
	return fmt.Errorf("unrecognized type %q", d)
}

func Types() []Type {
	return []Type{
		UndefinedType,
		NullType,
		BoolType,
		NumberType,
		StringType,
		SymbolType,
		ArrayType,
		ObjectType,
		FuncType,
		BoxedType,
	}
}

// IsObject reports whether values of type t have object identity.
func (t Type) IsObject() bool {
	switch t {
	case ArrayType, ObjectType, FuncType, BoxedType:
		return true
	default:
		return false
	}
}
