package api

// EndSlot slot number designating the past-the-end position of a tree.
const EndSlot int32 = -1

// Ref locate one node within one generation of one tree: the owner tag
// identifies the tree instance (re-issued on Clear, so older refs stop
// belonging), the slot indexes into the tree's node arena and the slot
// generation detects reuse after free. The zero Ref refers to nothing.
type Ref struct {
	owner uint64
	slot  int32
	gen   uint32
}

// MakeRef construct a node reference, meant for tree implementations.
// Applications obtain refs only from trees and cursors.
func MakeRef(owner uint64, slot int32, gen uint32) Ref {
	return Ref{owner: owner, slot: slot, gen: gen}
}

// Owner return the owner tag of the tree generation this ref was
// issued by.
func (ref Ref) Owner() uint64 {
	return ref.owner
}

// Slot return the arena slot this ref points to, EndSlot for the
// past-the-end position.
func (ref Ref) Slot() int32 {
	return ref.slot
}

// Gen return the slot generation at the time this ref was issued.
func (ref Ref) Gen() uint32 {
	return ref.gen
}

// IsEnd true if ref designates a past-the-end position.
func (ref Ref) IsEnd() bool {
	return ref.slot == EndSlot
}

// IsNil true for the zero Ref.
func (ref Ref) IsNil() bool {
	return ref.owner == 0 && ref.slot == 0 && ref.gen == 0
}

// Ordering result of a node order query.
type Ordering int8

const (
	// OrderInvalid one or both refs do not belong to the queried tree.
	OrderInvalid Ordering = iota
	// OrderBefore first ref precedes second in the in-order sequence.
	OrderBefore
	// OrderSame both refs designate the same position.
	OrderSame
	// OrderAfter first ref follows second in the in-order sequence.
	OrderAfter
)

func (o Ordering) String() string {
	switch o {
	case OrderBefore:
		return "before"
	case OrderSame:
		return "same"
	case OrderAfter:
		return "after"
	}
	return "invalid"
}
