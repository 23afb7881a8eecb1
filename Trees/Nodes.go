package Trees

import "golang.org/x/exp/constraints"

const (
	left  = 0
	right = 1
)

// A node in the RBTree.
// link[left] and link[right] are the children, the tree's nilPtr stands in for
// every absent child or parent. slot is the node's current index in the arena
// directory. The zero value is a detached black node.
type node[T any, S constraints.Unsigned] struct {
	e      *T
	link   [2]*node[T, S]
	parent *node[T, S]
	slot   S
	red    bool
}

// side of n under its parent: left or right. n.parent must be a real node.
func (n *node[T, S]) side() int {
	if n == n.parent.link[left] {
		return left
	}
	return right
}

// rotate x towards dir. The child of x on the opposite side takes the place of
// x, and x becomes its dir child.
//
//	rotate(x, left):
//	  x              y
//	a   y    =>    x   c
//	  b   c      a   b
//
// Time: O(1); Space: O(1)
func (u *RBTree[T, K, S]) rotate(x *node[T, S], dir int) {
	y := x.link[1-dir]
	x.link[1-dir] = y.link[dir]
	if y.link[dir] != u.nilPtr {
		y.link[dir].parent = x
	}
	y.parent = x.parent
	if x.parent == u.nilPtr {
		u.root = y
	} else {
		x.parent.link[x.side()] = y
	}
	y.link[dir] = x
	x.parent = y
}

// extreme descends from n towards dir until there's no child on that side.
// n mustn't be nilPtr.
func (u *RBTree[T, K, S]) extreme(n *node[T, S], dir int) *node[T, S] {
	for n.link[dir] != u.nilPtr {
		n = n.link[dir]
	}
	return n
}

// step returns the in-order neighbor of n towards dir: the successor for right,
// the predecessor for left. Returns nilPtr when n is the last node in that
// direction. Iterative, no auxiliary storage.
// Time: amortized O(1), worst O(D).
func (u *RBTree[T, K, S]) step(n *node[T, S], dir int) *node[T, S] {
	if n.link[dir] != u.nilPtr {
		return u.extreme(n.link[dir], 1-dir)
	}
	p := n.parent
	for p != u.nilPtr && n == p.link[dir] {
		n, p = p, p.parent
	}
	return p
}
