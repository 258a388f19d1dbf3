package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/ecmajson/value"
)

// Logf writes a formatted debug message to stderr. Value graphs among args
// are rendered as indented JSON when they convert cleanly.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any:
			args[i] = indent(a)
		case *value.Object, *value.Array:
			g, err := value.ToAny(x.(value.Value))
			if err != nil {
				args[i] = fmt.Sprintf("[raw %s] %p", x.(value.Value).Type(), x)
				continue
			}
			args[i] = indent(g)
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

func indent(a any) string {
	d, err := json.MarshalIndent(a, "   |", "  ")
	if err != nil {
		return fmt.Sprintf("%v", a)
	}
	return string(d)
}
