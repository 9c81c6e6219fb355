package array

import (
	"cmp"
	"slices"
)

// Equal reports whether a and b hold equal elements.
func Equal[T comparable, A any](a, b Array[T, A]) bool {
	return slices.Equal(a.view(), b.view())
}

func EqualFunc[T, A any](a, b Array[T, A], eq func(T, T) bool) bool {
	return slices.EqualFunc(a.view(), b.view(), eq)
}

// Compare orders a and b lexicographically by element.
func Compare[T cmp.Ordered, A any](a, b Array[T, A]) int {
	return slices.Compare(a.view(), b.view())
}

func CompareFunc[T, A any](a, b Array[T, A], cmp func(T, T) int) int {
	return slices.CompareFunc(a.view(), b.view(), cmp)
}
