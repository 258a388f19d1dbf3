// Package value is the host object model consumed by the JSON engine.
//
// # Overview
//
// A Value is a tagged union discriminated by Type:
//
//   - Undefined, Null: singletons
//   - Bool, Number (float64), String (UTF-16 code units stored as WTF-8)
//   - *Symbol: identity only, never serialized
//   - *Array, *Object, *Func, *Boxed, *Proxy: objects with identity
//
// The serializer never depends on the concrete object types. It consumes
// capabilities:
//
//   - Obj: own property lookup, own key enumeration and a prototype link
//   - ArrayLike: length and indexed access
//   - Callable: invocation with a receiver, used for toJSON, replacers,
//     revivers and getters
//   - Unwrapper: boxed primitive unwrapping
//   - KeyEnumerator: custom own key enumeration, as a proxy provides
//
// Host types other than those in this package can take part by
// implementing the same interfaces.
//
// # Creating Values
//
//	obj := value.NewObject().
//	    Set("name", value.String("alice")).
//	    Set("tags", value.NewArray(value.String("a"), value.Number(1)))
//	fn := value.NewFunc("toJSON", func(this value.Value, args []value.Value) (value.Value, error) {
//	    return value.Number(42), nil
//	})
//	obj.SetHidden("toJSON", fn)
//
// # Errors
//
// Errors wrap one of the kind sentinels ErrSyntax, ErrType, ErrRange,
// ErrInternal and ErrStackOverflow.
package value
