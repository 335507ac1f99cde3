package emu

import "github.com/sarchlab/rvcore/xlen"

// RegLock is a register slot that can be frozen. Writes to a locked slot
// are silently dropped; reads always return the current value.
//
// The zero value is an unlocked register holding zero.
type RegLock[T xlen.Word[T]] struct {
	value  T
	locked bool
}

// Get returns the current value.
func (r *RegLock[T]) Get() T {
	return r.value
}

// Set stores v unless the register is locked.
func (r *RegLock[T]) Set(v T) {
	if r.locked {
		return
	}
	r.value = v
}

// Add performs r += imm, wrapping. It is subject to the lock like Set.
func (r *RegLock[T]) Add(imm T) {
	r.Set(r.Get().Add(imm))
}

// Lock freezes the register. There is no unlock.
func (r *RegLock[T]) Lock() {
	r.locked = true
}

// Locked reports whether Lock has been called.
func (r *RegLock[T]) Locked() bool {
	return r.locked
}
