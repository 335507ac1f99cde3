package emu

import (
	"fmt"
	"math/bits"

	"github.com/sarchlab/akita/v4/mem/mem"
)

// Memory is a fixed-capacity, zero-initialized, byte-addressable RAM.
// Multi-byte values are laid out little-endian regardless of the host.
type Memory struct {
	storage  *mem.Storage
	capacity uint64
}

// NewMemory creates a memory of capacity bytes, all zero.
func NewMemory(capacity uint64) *Memory {
	return &Memory{
		storage:  mem.NewStorage(capacity),
		capacity: capacity,
	}
}

// Capacity returns the size of the memory in bytes.
func (m *Memory) Capacity() uint64 {
	return m.capacity
}

// GetByte reads the byte at addr.
func (m *Memory) GetByte(addr uint64) (byte, error) {
	data, err := m.ReadBytes(addr, 1)
	if err != nil {
		return 0, err
	}
	return data[0], nil
}

// SB overwrites the byte at addr.
func (m *Memory) SB(b byte, addr uint64) error {
	return m.WriteBytes(addr, []byte{b})
}

// ReadBytes reads n consecutive bytes starting at addr. The whole range
// must lie inside the memory.
func (m *Memory) ReadBytes(addr, n uint64) ([]byte, error) {
	if !m.inBounds(addr, n) {
		return nil, &MemoryError{Op: "read", Addr: addr, Err: ErrOutOfBounds}
	}
	if n == 0 {
		return []byte{}, nil
	}

	data, err := m.storage.Read(addr, n)
	if err != nil {
		return nil, &MemoryError{
			Op:   "read",
			Addr: addr,
			Err:  fmt.Errorf("%w: %v", ErrOutOfBounds, err),
		}
	}
	return data, nil
}

// WriteBytes writes data starting at addr. Nothing is written unless the
// whole range lies inside the memory.
func (m *Memory) WriteBytes(addr uint64, data []byte) error {
	n := uint64(len(data))
	if !m.inBounds(addr, n) {
		return &MemoryError{Op: "write", Addr: addr, Err: ErrOutOfBounds}
	}
	if n == 0 {
		return nil
	}

	if err := m.storage.Write(addr, data); err != nil {
		return &MemoryError{
			Op:   "write",
			Addr: addr,
			Err:  fmt.Errorf("%w: %v", ErrOutOfBounds, err),
		}
	}
	return nil
}

// inBounds reports whether [addr, addr+n) fits in the memory without the
// end address wrapping.
func (m *Memory) inBounds(addr, n uint64) bool {
	end, carry := bits.Add64(addr, n, 0)
	return carry == 0 && end <= m.capacity
}
