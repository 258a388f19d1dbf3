package encode

import (
	"fmt"
	"reflect"

	"github.com/signadot/ecmajson/value"
)

// cycleGuard tracks the composites on the active serialization path.
type cycleGuard struct {
	stack []value.Value
	on    map[value.Value]struct{}
	max   int
}

// enter pushes v, failing if v is already on the path or the path is at
// its depth ceiling. The returned release pops v and must be called on
// every exit path.
func (g *cycleGuard) enter(v value.Value) (func(), error) {
	if !reflect.TypeOf(v).Comparable() {
		return nil, fmt.Errorf("%w: %T has no identity", ErrUnsupported, v)
	}
	if _, ok := g.on[v]; ok {
		return nil, ErrCircular
	}
	if len(g.stack) >= g.max {
		return nil, ErrTooDeep
	}
	if g.on == nil {
		g.on = map[value.Value]struct{}{}
	}
	g.on[v] = struct{}{}
	g.stack = append(g.stack, v)
	return func() {
		g.stack = g.stack[:len(g.stack)-1]
		delete(g.on, v)
	}, nil
}

func (g *cycleGuard) depth() int { return len(g.stack) }
