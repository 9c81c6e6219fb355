package bigarray

import (
	"reflect"
	"sync"

	"github.com/rawbytedev/bigarray/internal/kind"
)

// Releaser is implemented by values holding something that must be given back
// exactly once when the value is discarded.
type Releaser interface {
	Release()
}

type releaseMode uint8

const (
	releaseNone    releaseMode = iota
	releaseValue               // T implements Releaser
	releasePointer             // *T implements Releaser
	releaseDynamic             // T is an interface type, checked per element
)

var releaserType = reflect.TypeFor[Releaser]()

type releasePlans struct {
	mu   sync.RWMutex
	plan map[reflect.Type]releaseMode
}

var plans = &releasePlans{plan: make(map[reflect.Type]releaseMode)}

func (p *releasePlans) lookup(t reflect.Type) releaseMode {
	// predeclared primitives carry no methods
	if t.PkgPath() == "" && kind.IsFixed(t.Kind()) {
		return releaseNone
	}
	p.mu.RLock()
	if mode, ok := p.plan[t]; ok {
		p.mu.RUnlock()
		return mode
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()

	// Double-check
	if mode, ok := p.plan[t]; ok {
		return mode
	}
	mode := planFor(t)
	p.plan[t] = mode
	return mode
}

func planFor(t reflect.Type) releaseMode {
	switch {
	case t.Kind() == reflect.Interface:
		return releaseDynamic
	case t.Implements(releaserType):
		return releaseValue
	case reflect.PointerTo(t).Implements(releaserType):
		return releasePointer
	default:
		return releaseNone
	}
}

// NeedsRelease reports whether discarding a T may have to call Release.
func NeedsRelease[T any]() bool {
	return plans.lookup(reflect.TypeFor[T]()) != releaseNone
}

// releaserFor returns the per-element release action for T, or nil when T has none.
func releaserFor[T any]() func(*T) {
	switch plans.lookup(reflect.TypeFor[T]()) {
	case releasePointer:
		return func(p *T) {
			any(p).(Releaser).Release()
		}
	case releaseValue, releaseDynamic:
		return func(p *T) {
			if r, ok := any(*p).(Releaser); ok && !isNil(r) {
				r.Release()
			}
		}
	default:
		return nil
	}
}

func isNil(r Releaser) bool {
	if r == nil {
		return true
	}
	v := reflect.ValueOf(r)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// ReleaseAll releases every element of elems once, last index first. It does not
// traverse elems when T carries no release behavior.
func ReleaseAll[T any](elems []T) {
	release := releaserFor[T]()
	if release == nil {
		return
	}
	for i := len(elems) - 1; i >= 0; i-- {
		release(&elems[i])
	}
}

// ReleaseValue releases a single discarded value if its type carries release
// behavior.
func ReleaseValue[T any](v T) {
	if release := releaserFor[T](); release != nil {
		release(&v)
	}
}
