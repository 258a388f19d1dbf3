package load

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/signadot/ecmajson/format"
	"github.com/signadot/ecmajson/parse"
	"github.com/signadot/ecmajson/value"
)

var ErrYAML = errors.New("yaml")

// Load reads a document in format f into a value graph.
func Load(d []byte, f format.Format, opts ...parse.ParseOption) (value.Value, error) {
	switch f {
	case format.JSONFormat:
		return parse.Parse(d, opts...)
	case format.YAMLFormat:
		return LoadYAML(d)
	default:
		return nil, fmt.Errorf("%w: %s", format.ErrBadFormat, f)
	}
}

// LoadReader reads all of r and loads it in format f.
func LoadReader(r io.Reader, f format.Format, opts ...parse.ParseOption) (value.Value, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Load(d, f, opts...)
}

// LoadFile reads path, choosing the format from its extension.
func LoadFile(path string, opts ...parse.ParseOption) (value.Value, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Load(d, format.FromPath(path), opts...)
}

// LoadYAML reads the first YAML document of d. Mapping order is kept.
func LoadYAML(d []byte) (value.Value, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrYAML, err)
	}
	return fromYAML(v)
}

func fromYAML(v any) (value.Value, error) {
	switch x := v.(type) {
	case nil:
		return value.Null, nil
	case bool:
		return value.Bool(x), nil
	case string:
		return value.String(x), nil
	case int:
		return value.Number(x), nil
	case int64:
		return value.Number(x), nil
	case uint64:
		return value.Number(x), nil
	case float64:
		return value.Number(x), nil
	case float32:
		return value.Number(x), nil
	case []any:
		arr := value.NewArray()
		for _, elt := range x {
			ev, err := fromYAML(elt)
			if err != nil {
				return nil, err
			}
			arr.Push(ev)
		}
		return arr, nil
	case yaml.MapSlice:
		kvs := make([]value.KeyVal, 0, len(x))
		for _, item := range x {
			iv, err := fromYAML(item.Value)
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, value.KeyVal{Key: yamlKey(item.Key), Val: iv})
		}
		return value.FromKeyVals(kvs...), nil
	case map[string]any:
		// FromAny sorts the keys.
		return value.FromAny(x)
	default:
		return value.String(fmt.Sprint(x)), nil
	}
}

func yamlKey(k any) string {
	switch x := k.(type) {
	case string:
		return x
	case nil:
		return "null"
	case float64:
		if math.IsInf(x, 0) || math.IsNaN(x) {
			return fmt.Sprint(x)
		}
		return value.NumberToString(x)
	default:
		return fmt.Sprint(x)
	}
}
