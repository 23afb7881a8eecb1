package Trees

import (
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"
)

// arena is the slot pool backing the nodes of a RBTree.
// slots[:live] are the nodes attached to the tree, slots[live:] are free. Every
// node records its own index in slots. Node records are allocated in batches,
// one per growth, and never move afterwards; only the directory is reallocated.
type arena[T any, S constraints.Unsigned] struct {
	slots  []*node[T, S]
	live   S
	limit  S      // the most slots one implicit growth may add; 0 is unbounded.
	growth uint64 // number of implicit growths done by acquire.
}

// maxSlots is the most slots an arena indexed by S can hold: 2^31-1 for uint32,
// 2^63-1 for uint64.
func maxSlots[S constraints.Unsigned]() S {
	return ^S(0) >> 1
}

// grow the arena by n detached black slots. Nothing is changed on error.
func (u *arena[T, S]) grow(n S) error {
	have := S(len(u.slots))
	if n > maxSlots[S]()-have {
		return fmt.Errorf("%w: %d allocated, %d requested, at most %d", ErrSlotsExhausted, have, n, maxSlots[S]())
	}
	if n == 0 {
		return nil
	}
	batch := make([]node[T, S], n)
	u.slots = slices.Grow(u.slots, int(n))
	for i := range batch {
		batch[i].slot = have + S(i)
		u.slots = append(u.slots, &batch[i])
	}
	return nil
}

// acquire a free slot, growing the arena first if none is left. The growth is
// the current allocated size (at least 1), capped by limit and by the room left
// in S.
// Time: O(1) unless growing.
func (u *arena[T, S]) acquire() (*node[T, S], error) {
	if have := S(len(u.slots)); u.live == have {
		n := max(have, 1)
		if u.limit != 0 && n > u.limit {
			n = u.limit
		}
		if room := maxSlots[S]() - have; n > room && room > 0 {
			n = room
		}
		if err := u.grow(n); err != nil {
			return nil, err
		}
		u.growth++
	}
	n := u.slots[u.live]
	u.live++
	return n, nil
}

// release n back to the free region by swapping it with the last live slot.
// Only the directory entries and the two slot indexes change; no node moves.
// The element reference is dropped so that a free slot keeps nothing alive.
// Time: O(1)
func (u *arena[T, S]) release(n *node[T, S]) {
	u.live--
	last, i := u.slots[u.live], n.slot
	last.slot, n.slot = i, u.live
	u.slots[i], u.slots[u.live] = last, n
	*n = node[T, S]{slot: n.slot}
}

// shrink the directory to the live region. Free nodes are forgotten, a batch's
// memory is reclaimed once none of its nodes is live.
func (u *arena[T, S]) shrink() {
	clear(u.slots[u.live:])
	u.slots = slices.Clone(u.slots[:u.live])
}

// clearLive drops the element references of the live slots and detaches them.
func (u *arena[T, S]) clearLive() {
	for _, n := range u.slots[:u.live] {
		*n = node[T, S]{slot: n.slot}
	}
}
