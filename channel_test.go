package bigarray

import (
	"errors"
	"reflect"
	"slices"
)

var errBoom = errors.New("boom")

// memEncoder records a tuple in memory. failAt >= 0 makes that write fail.
type memEncoder struct {
	declared int
	elems    []any
	ended    bool
	failAt   int
}

func newMemEncoder() *memEncoder { return &memEncoder{failAt: -1} }

func (e *memEncoder) EncodeTuple(n int) (TupleWriter, error) {
	e.declared = n
	return e, nil
}

func (e *memEncoder) WriteElement(v any) error {
	if len(e.elems) == e.failAt {
		return errBoom
	}
	e.elems = append(e.elems, reflect.ValueOf(v).Elem().Interface())
	return nil
}

func (e *memEncoder) End() error {
	e.ended = true
	return nil
}

// memDecoder replays elems. failAt >= 0 makes that read fail with errBoom.
// after, when set, is returned once the visitor succeeded.
type memDecoder struct {
	elems  []any
	failAt int
	after  error
	reads  int
	n      int
}

func newMemDecoder(elems ...any) *memDecoder {
	return &memDecoder{elems: elems, failAt: -1}
}

func (d *memDecoder) DecodeTuple(n int, v Visitor) error {
	d.n = n
	if err := v.VisitSeq(d); err != nil {
		return err
	}
	return d.after
}

func (d *memDecoder) NextElement(dst any) (bool, error) {
	i := d.reads
	d.reads++
	if i == d.failAt {
		return false, errBoom
	}
	if i >= len(d.elems) {
		return false, nil
	}
	reflect.ValueOf(dst).Elem().Set(reflect.ValueOf(d.elems[i]))
	return true, nil
}

// dropLog observes Release calls.
type dropLog struct {
	ids []uint32
}

func (l *dropLog) reset() { l.ids = nil }

func (l *dropLog) sorted() []uint32 {
	out := slices.Clone(l.ids)
	slices.Sort(out)
	return out
}

var drops dropLog

type droppable struct {
	ID uint32
}

func (d *droppable) Release() { drops.ids = append(drops.ids, d.ID) }

type handle uint32

func (h handle) Release() { drops.ids = append(drops.ids, uint32(h)) }

func droppables(ids ...uint32) []any {
	out := make([]any, len(ids))
	for i, id := range ids {
		out[i] = droppable{ID: id}
	}
	return out
}
