package Trees

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Iterator points to an element of a RBTree. The zero value, like the Iterator
// returned past either end of the tree, is invalid.
// An Iterator stays valid across insertions, arena growth and the removal of
// other elements and Compact, but not across Reset or Free. Removing the element it
// points to invalidates it; see RBTree.RemoveAt for removing while iterating.
// Using an invalidated Iterator is undefined behavior and isn't detected.
type Iterator[T, K any, S constraints.Unsigned] struct {
	tree *RBTree[T, K, S]
	n    *node[T, S]
}

func (u *RBTree[T, K, S]) iter(n *node[T, S]) Iterator[T, K, S] {
	if n == u.nilPtr {
		return Iterator[T, K, S]{}
	}
	return Iterator[T, K, S]{u, n}
}

// Valid reports whether the Iterator points to an element.
func (it Iterator[T, K, S]) Valid() bool {
	return it.n != nil
}

// Elem returns the element, nil if the Iterator isn't valid.
func (it Iterator[T, K, S]) Elem() *T {
	if it.n == nil {
		return nil
	}
	return it.n.e
}

// Next returns an Iterator to the next larger element, invalid if there's none.
// it must be valid.
// Time: amortized O(1)
func (it Iterator[T, K, S]) Next() Iterator[T, K, S] {
	return it.tree.iter(it.tree.step(it.n, right))
}

// Prev returns an Iterator to the next smaller element, invalid if there's none.
// it must be valid.
// Time: amortized O(1)
func (it Iterator[T, K, S]) Prev() Iterator[T, K, S] {
	return it.tree.iter(it.tree.step(it.n, left))
}

// All returns the elements in ascending order.
// The tree mustn't be modified during the iteration.
func (u *RBTree[T, K, S]) All() iter.Seq[*T] {
	return u.walk(left)
}

// Backward returns the elements in descending order.
// The tree mustn't be modified during the iteration.
func (u *RBTree[T, K, S]) Backward() iter.Seq[*T] {
	return u.walk(right)
}

// walk the tree starting from the extreme towards from.
func (u *RBTree[T, K, S]) walk(from int) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		if u.root == u.nilPtr {
			return
		}
		for n := u.extreme(u.root, from); n != u.nilPtr; n = u.step(n, 1-from) {
			if !yield(n.e) {
				return
			}
		}
	}
}

// InOrder [Tree.InOrder]
// Time: f(): amortized O(1) at each call to the returned function. Space: O(1)
func (u *RBTree[T, K, S]) InOrder() func() (*T, bool) {
	cur := u.nilPtr
	if u.root != u.nilPtr {
		cur = u.extreme(u.root, left)
	}
	return func() (e *T, has bool) {
		if cur == u.nilPtr {
			return
		}
		e, has = cur.e, true
		cur = u.step(cur, right)
		return
	}
}
