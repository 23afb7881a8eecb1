package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// NewOrdered returns a RBTree of references to cmp.Ordered values, ordered by
// the values they point to. The keys are the values themselves, so an element
// can be looked up with FindKey, Get and RemoveKey without having a pointer
// to an equal value. Floating point NaNs are ordered as in cmp.Compare.
func NewOrdered[T cmp.Ordered, S constraints.Unsigned](hint S) (*RBTree[T, T, S], error) {
	return New(compareRefs[T], compareKey[T], hint)
}

func compareRefs[T cmp.Ordered](a, b *T) int {
	return cmp.Compare(*a, *b)
}

func compareKey[T cmp.Ordered](k T, e *T) int {
	return cmp.Compare(k, *e)
}
