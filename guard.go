package bigarray

// partial is the decode-side buffer for a fixed-length sequence under
// construction. items holds the k constructed elements; the remaining n-k slots do
// not exist yet. Exactly one of take or abandon disposes of the buffer.
type partial[T any] struct {
	items   []T
	n       int
	taken   bool
	release func(*T)
}

func newPartial[T any](n int) *partial[T] {
	return &partial[T]{
		items:   make([]T, 0, n),
		n:       n,
		release: releaserFor[T](),
	}
}

func (p *partial[T]) len() int { return len(p.items) }

func (p *partial[T]) push(v T) {
	if len(p.items) == p.n {
		panic("bigarray: push past end of fixed-length buffer")
	}
	p.items = append(p.items, v)
}

// take transplants the constructed elements to the caller. The buffer must be
// full; afterwards abandon is a no-op.
func (p *partial[T]) take() []T {
	if len(p.items) != p.n {
		panic("bigarray: transplant of partially constructed buffer")
	}
	items := p.items
	p.items = nil
	p.taken = true
	return items
}

// abandon releases the constructed elements, last first, unless they were
// transplanted. It is meant to be deferred.
func (p *partial[T]) abandon() {
	if p.taken {
		return
	}
	p.taken = true
	if p.release == nil {
		p.items = nil
		return
	}
	for k := len(p.items); k > 0; k-- {
		p.release(&p.items[k-1])
	}
	clear(p.items)
	p.items = nil
}
