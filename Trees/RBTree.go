package Trees

import (
	"golang.org/x/exp/constraints"
)

// RBTree is a red-black tree of references. It orders caller owned elements of
// type *T and never copies, allocates or frees them; storing an element only
// stores the pointer. Duplicates (elements comparing equal) are rejected.
//
// T is the element type, K the type of the lightweight keys accepted by the
// key based operations, S the type of the arena slot indexes. S bounds the
// number of nodes to ^S(0)>>1, so uint32 allows 2^31-1 elements and uint64
// allows 2^63-1.
//
// Nodes live in an arena that is grown in batches and recycled in O(1), so
// insertions don't allocate once the arena is large enough. The elements
// themselves must not be mutated in a way that changes their order while they
// are in the tree.
//
// A RBTree isn't safe for concurrent use; mutations must be synchronized by the
// caller. Methods implemented recursively are noted, all others are iterative.
type RBTree[T, K any, S constraints.Unsigned] struct {
	arena[T, S]
	root   *node[T, S]
	nilPtr *node[T, S] // black sentinel used for every absent child and parent. Its links loop back to itself.
	cmp    func(a, b *T) int
	keyCmp func(k K, e *T) int
}

// New returns an empty tree ordered by cmp with room for hint elements.
// cmp(a, b) must return a negative number when a<b, 0 when a==b and a positive
// number when a>b. keyCmp compares a key to an element in the same way and may
// be nil if FindKey, Get and RemoveKey are never used. The only error is
// ErrSlotsExhausted if hint is larger than what S can index.
func New[T, K any, S constraints.Unsigned](cmp func(a, b *T) int, keyCmp func(k K, e *T) int, hint S) (*RBTree[T, K, S], error) {
	z := new(node[T, S])
	z.link[left], z.link[right], z.parent = z, z, z
	u := &RBTree[T, K, S]{root: z, nilPtr: z, cmp: cmp, keyCmp: keyCmp}
	if err := u.grow(hint); err != nil {
		return nil, err
	}
	return u, nil
}

// Size returns the number of elements in the tree.
// Time: O(1); Space: O(1)
func (u *RBTree[T, K, S]) Size() S {
	return u.live
}

// Cap returns the number of allocated node slots.
func (u *RBTree[T, K, S]) Cap() S {
	return S(len(u.slots))
}

// Growths returns how many times Insert had to grow the arena.
func (u *RBTree[T, K, S]) Growths() uint64 {
	return u.growth
}

// Reserve allocates n more node slots. Inserting n elements after Reserve(n)
// won't grow the arena.
func (u *RBTree[T, K, S]) Reserve(n S) error {
	return u.grow(n)
}

// Compact frees the node slots that aren't used by any element.
func (u *RBTree[T, K, S]) Compact() {
	u.shrink()
}

// SetAutoGrowLimit bounds the number of slots a single Insert may allocate when
// the arena is full, bounding the worst case latency of Insert. 0 means unbounded.
func (u *RBTree[T, K, S]) SetAutoGrowLimit(n S) {
	u.limit = n
}

// AutoGrowLimit returns the value set with SetAutoGrowLimit.
func (u *RBTree[T, K, S]) AutoGrowLimit() S {
	return u.limit
}

// Reset empties the tree but keeps all node slots for reuse. O(1) if clear is
// false; the former elements then stay referenced by the free slots until they
// are reused. O(size) if clear is true, in which case those references are
// dropped.
func (u *RBTree[T, K, S]) Reset(clear bool) {
	if clear {
		u.clearLive()
	}
	u.root, u.live = u.nilPtr, 0
}

// Free releases all node slots. The tree is empty afterwards and can still be
// used. The elements aren't touched: free or reuse them by iterating the tree
// before calling Free.
func (u *RBTree[T, K, S]) Free() {
	u.root, u.live = u.nilPtr, 0
	u.slots = nil
}

// search for the node holding an element equal to e. Returns nilPtr if not found.
// Time: O(D); Space: O(1)
func (u *RBTree[T, K, S]) search(e *T) *node[T, S] {
	x := u.root
	for x != u.nilPtr {
		c := u.cmp(e, x.e)
		if c == 0 {
			break
		}
		x = x.link[dirOf(c)]
	}
	return x
}

// searchKey is search by the key comparator.
func (u *RBTree[T, K, S]) searchKey(k K) *node[T, S] {
	if u.keyCmp == nil {
		panic(ErrNoKeyComparator)
	}
	x := u.root
	for x != u.nilPtr {
		c := u.keyCmp(k, x.e)
		if c == 0 {
			break
		}
		x = x.link[dirOf(c)]
	}
	return x
}

// dirOf the child to descend into for a comparison result.
func dirOf(c int) int {
	if c > 0 {
		return right
	}
	return left
}

// Has element e.
// Time: O(D); Space: O(1)
func (u *RBTree[T, K, S]) Has(e *T) bool {
	return u.search(e) != u.nilPtr
}

// Find the element equal to e. Returns an invalid Iterator if there's none.
func (u *RBTree[T, K, S]) Find(e *T) Iterator[T, K, S] {
	return u.iter(u.search(e))
}

// FindKey finds the element equal to key k. Returns an invalid Iterator if
// there's none. Panics with ErrNoKeyComparator if the tree has no key comparator.
func (u *RBTree[T, K, S]) FindKey(k K) Iterator[T, K, S] {
	return u.iter(u.searchKey(k))
}

// Get the element equal to key k, nil if there's none.
// Panics with ErrNoKeyComparator if the tree has no key comparator.
func (u *RBTree[T, K, S]) Get(k K) *T {
	return u.searchKey(k).e
}

// Min returns an Iterator to the smallest element, invalid if the tree is empty.
// Time: O(D); Space: O(1)
func (u *RBTree[T, K, S]) Min() Iterator[T, K, S] {
	if u.root == u.nilPtr {
		return Iterator[T, K, S]{}
	}
	return u.iter(u.extreme(u.root, left))
}

// Max returns an Iterator to the largest element, invalid if the tree is empty.
// Time: O(D); Space: O(1)
func (u *RBTree[T, K, S]) Max() Iterator[T, K, S] {
	if u.root == u.nilPtr {
		return Iterator[T, K, S]{}
	}
	return u.iter(u.extreme(u.root, right))
}

// Insert e into the tree. Returns false, changing nothing, if an element equal
// to e is already there.
// If the arena is full and can't grow because S can't index more slots, Insert
// panics with an error wrapping ErrSlotsExhausted and the tree is unchanged.
// Time: O(D)
func (u *RBTree[T, K, S]) Insert(e *T) bool {
	p, dir := u.nilPtr, left
	for x := u.root; x != u.nilPtr; {
		c := u.cmp(e, x.e)
		if c == 0 {
			return false
		}
		p, dir = x, dirOf(c)
		x = x.link[dir]
	}
	x, err := u.acquire()
	if err != nil {
		panic(err)
	}
	x.e, x.red = e, true
	x.link[left], x.link[right], x.parent = u.nilPtr, u.nilPtr, p
	if p == u.nilPtr {
		u.root = x
	} else {
		p.link[dir] = x
	}
	u.insertFixup(x)
	return true
}

// insertFixup restores the red-black properties after x was attached red.
func (u *RBTree[T, K, S]) insertFixup(x *node[T, S]) {
	for x != u.root && x.parent.red {
		p := x.parent
		g := p.parent
		side := p.side()
		if y := g.link[1-side]; y.red { //red uncle: push the blackness down from g.
			p.red, y.red, g.red = false, false, true
			x = g
			continue
		}
		if x == p.link[1-side] { //inner child: straighten the line first.
			u.rotate(p, side)
			x, p = p, x
		}
		p.red, g.red = false, true
		u.rotate(g, 1-side)
	}
	u.root.red = false
}

// Remove the element equal to e. Returns false if there's none.
// Time: O(D)
func (u *RBTree[T, K, S]) Remove(e *T) bool {
	z := u.search(e)
	if z == u.nilPtr {
		return false
	}
	u.removeNode(z)
	return true
}

// RemoveKey removes the element equal to key k. Returns false if there's none.
// Panics with ErrNoKeyComparator if the tree has no key comparator.
func (u *RBTree[T, K, S]) RemoveKey(k K) bool {
	z := u.searchKey(k)
	if z == u.nilPtr {
		return false
	}
	u.removeNode(z)
	return true
}

// RemoveAt removes the element it points to and returns an Iterator to the
// element that followed it, invalid if it was the largest. it becomes invalid,
// other Iterators stay valid.
// it must be a valid Iterator of u.
func (u *RBTree[T, K, S]) RemoveAt(it Iterator[T, K, S]) Iterator[T, K, S] {
	next := u.step(it.n, right)
	u.removeNode(it.n)
	return u.iter(next)
}

// transplant puts v in the place of o under o's parent. v may be nilPtr, in
// which case nilPtr's parent is set.
func (u *RBTree[T, K, S]) transplant(o, v *node[T, S]) {
	if o.parent == u.nilPtr {
		u.root = v
	} else {
		o.parent.link[o.side()] = v
	}
	v.parent = o.parent
}

// removeNode detaches z and releases its slot. When z has two children its
// successor's node is relinked into z's place, so no other node changes the
// element it holds.
func (u *RBTree[T, K, S]) removeNode(z *node[T, S]) {
	var x *node[T, S]
	wasRed := z.red
	switch {
	case z.link[left] == u.nilPtr:
		x = z.link[right]
		u.transplant(z, x)
	case z.link[right] == u.nilPtr:
		x = z.link[left]
		u.transplant(z, x)
	default:
		y := u.extreme(z.link[right], left)
		wasRed, x = y.red, y.link[right]
		if y.parent == z {
			x.parent = y
		} else {
			u.transplant(y, x)
			y.link[right] = z.link[right]
			y.link[right].parent = y
		}
		u.transplant(z, y)
		y.link[left] = z.link[left]
		y.link[left].parent = y
		y.red = z.red
	}
	if !wasRed {
		u.removeFixup(x)
	}
	u.nilPtr.parent = u.nilPtr
	u.release(z)
}

// removeFixup restores the black height after a black node was spliced out and
// x took its place. The node the deficiency ends at is painted black.
func (u *RBTree[T, K, S]) removeFixup(x *node[T, S]) {
	for x != u.root && !x.red {
		p := x.parent
		side := x.side()
		w := p.link[1-side]
		if w.red { //make the sibling black.
			w.red, p.red = false, true
			u.rotate(p, side)
			w = p.link[1-side]
		}
		if !w.link[left].red && !w.link[right].red { //move the deficiency up.
			w.red = true
			x = p
			continue
		}
		if !w.link[1-side].red { //near child red: turn it into the far one.
			w.link[side].red, w.red = false, true
			u.rotate(w, 1-side)
			w = p.link[1-side]
		}
		w.red, p.red = p.red, false
		w.link[1-side].red = false
		u.rotate(p, side)
		x = u.root
	}
	x.red = false
}
