package Go_Collections

import (
	"fmt"
	"math/bits"
	"strings"
)

// BitSet is a fixed size sequence of bits, all zero initially.
type BitSet struct {
	bits []uint
	size int
}

// NewBitSet with size bits. Returns ErrInvalidArgument if size<0.
func NewBitSet(size int) (BitSet, error) {
	if size < 0 {
		return BitSet{}, fmt.Errorf("bit set size %d: %w", size, ErrInvalidArgument)
	}
	return BitSet{bits: make([]uint, (size+bits.UintSize-1)/bits.UintSize), size: size}, nil
}

func (u BitSet) Len() int {
	return u.size
}

func (u BitSet) check(i int) error {
	if i < 0 || i >= u.size {
		return fmt.Errorf("bit %d of %d: %w", i, u.size, ErrIndexOutOfBounds)
	}
	return nil
}

// At returns whether bit i is set.
func (u BitSet) At(i int) (bool, error) {
	if e := u.check(i); e != nil {
		return false, e
	}
	return (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1, nil
}

// Update sets bit i to v.
func (u BitSet) Update(i int, v bool) error {
	if e := u.check(i); e != nil {
		return e
	}
	if v {
		u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
	} else {
		u.bits[i/bits.UintSize] &^= 1 << (i % bits.UintSize)
	}
	return nil
}

// Flip bit i.
func (u BitSet) Flip(i int) error {
	if e := u.check(i); e != nil {
		return e
	}
	u.bits[i/bits.UintSize] ^= 1 << (i % bits.UintSize)
	return nil
}

// All bits are set. True for an empty set.
func (u BitSet) All() bool {
	full := u.size / bits.UintSize
	for _, w := range u.bits[:full] {
		if w != ^uint(0) {
			return false
		}
	}
	if rem := u.size % bits.UintSize; rem != 0 {
		mask := uint(1)<<rem - 1
		return u.bits[full]&mask == mask
	}
	return true
}

// Some bit is set.
func (u BitSet) Some() bool {
	for _, w := range u.bits {
		if w != 0 {
			return true
		}
	}
	return false
}

// None of the bits is set.
func (u BitSet) None() bool {
	return !u.Some()
}

// Reset all bits to zero.
func (u BitSet) Reset() {
	clear(u.bits)
}

// String lists the bits as '0' and '1', bit 0 first.
func (u BitSet) String() string {
	var sb strings.Builder
	sb.Grow(u.size)
	for i := range u.size {
		if (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
