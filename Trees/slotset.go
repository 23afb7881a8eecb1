package Trees

import "math/bits"

// slotSet is a fixed size bit set over slot indexes.
type slotSet struct {
	bits []uint
}

func newSlotSet(size int) slotSet {
	return slotSet{bits: make([]uint, (size+bits.UintSize-1)/bits.UintSize)}
}

func (u slotSet) Get(i int) bool {
	return (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u slotSet) Up(i int) {
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

// Count of set bits.
func (u slotSet) Count() (c int) {
	for _, w := range u.bits {
		c += bits.OnesCount(w)
	}
	return
}
