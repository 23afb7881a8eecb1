package Trees

import "errors"

var (
	// ErrSlotsExhausted is returned when the arena would need more slots than its
	// index type can represent.
	ErrSlotsExhausted = errors.New("node slots exhausted")
	// ErrNoKeyComparator is the panic value of key operations on a tree created
	// without a key comparator.
	ErrNoKeyComparator = errors.New("tree has no key comparator")
	// ErrCorrupt is wrapped by every violation reported by Validate.
	ErrCorrupt = errors.New("corrupt tree")
)
