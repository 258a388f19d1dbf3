package patch

import (
	"errors"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/signadot/ecmajson/debug"
	"github.com/signadot/ecmajson/encode"
	"github.com/signadot/ecmajson/parse"
	"github.com/signadot/ecmajson/value"
)

var (
	ErrPatch   = errors.New("patch")
	ErrNoValue = fmt.Errorf("%w: value has no JSON form", ErrPatch)
)

// Patch is a decoded RFC 6902 JSON Patch.
type Patch struct {
	ops jsonpatch.Patch
}

// Decode decodes a JSON Patch from its value graph, an array of operation
// objects.
func Decode(v value.Value) (*Patch, error) {
	d, err := marshal(v)
	if err != nil {
		return nil, err
	}
	return DecodeBytes(d)
}

func DecodeBytes(d []byte) (*Patch, error) {
	ops, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return &Patch{ops: ops}, nil
}

func (p *Patch) Len() int { return len(p.ops) }

// Apply applies the patch to doc, returning a new value graph.
func (p *Patch) Apply(doc value.Value) (value.Value, error) {
	if debug.Patch() {
		debug.Logf("json-patch: %d ops\n", len(p.ops))
	}
	d, err := marshal(doc)
	if err != nil {
		return nil, err
	}
	out, err := p.ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return parse.Parse(out)
}

// Merge applies an RFC 7386 merge patch to doc.
func Merge(doc, mergePatch value.Value) (value.Value, error) {
	d, err := marshal(doc)
	if err != nil {
		return nil, err
	}
	m, err := marshal(mergePatch)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, m)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return parse.Parse(out)
}

// MergeDiff returns the merge patch taking from to to.
func MergeDiff(from, to value.Value) (value.Value, error) {
	f, err := marshal(from)
	if err != nil {
		return nil, err
	}
	t, err := marshal(to)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.CreateMergePatch(f, t)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return parse.Parse(out)
}

// Equal reports whether a and b serialize to equivalent JSON, ignoring
// member order.
func Equal(a, b value.Value) (bool, error) {
	da, err := marshal(a)
	if err != nil {
		return false, err
	}
	db, err := marshal(b)
	if err != nil {
		return false, err
	}
	return jsonpatch.Equal(da, db), nil
}

func marshal(v value.Value) ([]byte, error) {
	s, ok, err := encode.Stringify(v)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoValue
	}
	return []byte(s), nil
}
