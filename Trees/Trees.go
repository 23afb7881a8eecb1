// Package Trees provides ordered containers of references.
package Trees

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Tree represents an ordered set of references to caller owned values of type
// T. Elements are compared through the pointers they're stored as, and two
// elements comparing equal can't be in the Tree at the same time.
// S is the type used for sizes. Methods implemented recursively should be
// noted, otherwise functions are implemented iteratively.
type Tree[T any, S constraints.Unsigned] interface {
	//Insert e to the Tree. Returning true if successful, false if an equal
	//element is already in the Tree.
	Insert(e *T) bool
	//Remove the element equal to e from the Tree. Returning true if successful,
	//false if there's no such element.
	Remove(e *T) bool
	//Has an element equal to e.
	Has(e *T) bool
	//Size of the tree.
	Size() S
	//All returns the elements in ascending order. The Tree must not be
	//modified during the iteration.
	All() iter.Seq[*T]
	//InOrder returns A closure function f acting like an iterator. f
	//gives elements in the in-order traversal of the tree.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	//The tree must not be modified during the iteration of f.
	InOrder() func() (*T, bool)
	//Corrupt returns whether the tree has corrupt structures, when some node
	//violates the ordering or balancing properties of that specific
	//implementation.
	Corrupt() bool
}

var _ Tree[int, uint32] = (*RBTree[int, int, uint32])(nil)
