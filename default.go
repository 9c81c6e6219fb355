package bigarray

// Defaulter is implemented by *T for element types whose default value is not
// their zero value. Default sets the receiver to the default.
type Defaulter interface {
	Default()
}

// DefaultSlice returns n default values of T. Types whose pointer implements
// Defaulter are defaulted one element at a time; if Default panics, the elements
// already defaulted are released before the panic continues.
func DefaultSlice[T any](n int) []T {
	if _, ok := any(new(T)).(Defaulter); !ok {
		return make([]T, n)
	}
	buf := newPartial[T](n)
	defer buf.abandon()

	for i := 0; i < n; i++ {
		var elem T
		any(&elem).(Defaulter).Default()
		buf.push(elem)
	}
	return buf.take()
}
