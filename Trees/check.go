package Trees

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Validate walks the whole tree and its arena and returns an error wrapping
// ErrCorrupt describing the first violated property, nil if there's none:
//   - the root and the sentinel are black and the root has no parent;
//   - every child links back to its parent;
//   - the elements are strictly increasing in order;
//   - no red node has a red child;
//   - every path from the root to the sentinel has the same number of black nodes;
//   - the live arena slots are exactly the nodes of the tree, each knowing its slot.
//
// Recursive, depth O(D).
// Time: O(n); Space: O(n) bits.
func (u *RBTree[T, K, S]) Validate() error {
	if u.nilPtr.red {
		return fmt.Errorf("%w: red sentinel", ErrCorrupt)
	}
	if u.root.red {
		return fmt.Errorf("%w: red root", ErrCorrupt)
	}
	if u.root != u.nilPtr && u.root.parent != u.nilPtr {
		return fmt.Errorf("%w: root has a parent", ErrCorrupt)
	}
	if u.live > S(len(u.slots)) {
		return fmt.Errorf("%w: %d live slots out of %d", ErrCorrupt, u.live, len(u.slots))
	}
	for i, n := range u.slots {
		if n.slot != S(i) {
			return fmt.Errorf("%w: slot %d records index %d", ErrCorrupt, i, n.slot)
		}
	}
	c := checker[T, K, S]{u: u, seen: newSlotSet(len(u.slots)), prev: u.nilPtr}
	if _, err := c.check(u.root); err != nil {
		return err
	}
	if n := c.seen.Count(); n != int(u.live) {
		return fmt.Errorf("%w: %d reachable nodes, size is %d", ErrCorrupt, n, u.live)
	}
	return nil
}

// Corrupt [Tree.Corrupt]
func (u *RBTree[T, K, S]) Corrupt() bool {
	return u.Validate() != nil
}

type checker[T, K any, S constraints.Unsigned] struct {
	u    *RBTree[T, K, S]
	seen slotSet
	prev *node[T, S] // last node visited in order.
}

// check the subtree rooted at n, visiting it in order. Returns its black height.
func (c *checker[T, K, S]) check(n *node[T, S]) (int, error) {
	u := c.u
	if n == u.nilPtr {
		return 1, nil
	}
	if n.slot >= u.live || u.slots[n.slot] != n {
		return 0, fmt.Errorf("%w: node at slot %d isn't live", ErrCorrupt, n.slot)
	}
	if c.seen.Get(int(n.slot)) {
		return 0, fmt.Errorf("%w: node at slot %d reached twice", ErrCorrupt, n.slot)
	}
	c.seen.Up(int(n.slot))
	for dir, ch := range n.link {
		if ch == u.nilPtr {
			continue
		}
		if ch.parent != n {
			return 0, fmt.Errorf("%w: child of slot %d doesn't link back", ErrCorrupt, n.slot)
		}
		if n.red && ch.red {
			return 0, fmt.Errorf("%w: red node at slot %d has a red child (%d)", ErrCorrupt, n.slot, dir)
		}
	}
	lh, err := c.check(n.link[left])
	if err != nil {
		return 0, err
	}
	if c.prev != u.nilPtr && u.cmp(c.prev.e, n.e) >= 0 {
		return 0, fmt.Errorf("%w: elements at slots %d and %d are out of order", ErrCorrupt, c.prev.slot, n.slot)
	}
	c.prev = n
	rh, err := c.check(n.link[right])
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, fmt.Errorf("%w: black heights %d and %d under slot %d", ErrCorrupt, lh, rh, n.slot)
	}
	if !n.red {
		lh++
	}
	return lh, nil
}
