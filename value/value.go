package value

// Value is any value of the host object model.
type Value interface {
	Type() Type
}

type undefined struct{}

func (undefined) Type() Type     { return UndefinedType }
func (undefined) String() string { return "undefined" }

type null struct{}

func (null) Type() Type     { return NullType }
func (null) String() string { return "null" }

var (
	Undefined Value = undefined{}
	Null      Value = null{}
)

type Bool bool

func (Bool) Type() Type { return BoolType }

type Number float64

func (Number) Type() Type { return NumberType }

// String is a sequence of UTF-16 code units. It is stored as generalized
// UTF-8 (WTF-8): well formed text is plain UTF-8 and unpaired surrogates are
// kept as their 3 byte encodings.
type String string

func (String) Type() Type { return StringType }

// Symbol values have identity only; two symbols with the same description
// are distinct.
type Symbol struct {
	Description string
}

func NewSymbol(desc string) *Symbol {
	return &Symbol{Description: desc}
}

func (*Symbol) Type() Type { return SymbolType }

// IsUndefined reports whether v is undefined. A nil Value counts as undefined.
func IsUndefined(v Value) bool {
	return v == nil || v.Type() == UndefinedType
}
