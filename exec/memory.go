package exec

import (
	"encoding/binary"
	"errors"
	"math"

	"github.com/pgavlin/wisp/wasm"
)

// PageSize is the size of a WASM page in bytes.
const PageSize = 65536

// MaxPages is the page limit applied to memories that do not declare a maximum.
const MaxPages = 65536

var ErrLimitExceeded = errors.New("memory limit exceeded")

type backing interface {
	bytes() []byte
	grow(size int) error
}

type heapBacking struct {
	buf []byte
}

func newHeapBacking(size uint64) *heapBacking {
	return &heapBacking{buf: make([]byte, int(size))}
}

func (h *heapBacking) bytes() []byte {
	return h.buf
}

func (h *heapBacking) grow(size int) error {
	newBytes := make([]byte, size)
	copy(newBytes, h.buf)
	h.buf = newBytes
	return nil
}

// Memory is a WASM linear memory.
type Memory struct {
	limits  wasm.ResizableLimits
	backing backing
	bytes   []byte
}

// NewMemory creates a new linear memory with the given limits. The Initial field of the limits tracks the memory's
// current size in pages.
func NewMemory(limits wasm.ResizableLimits) *Memory {
	b := newBacking(uint64(limits.Initial)*PageSize, reservation(limits))
	return &Memory{limits: limits, backing: b, bytes: b.bytes()}
}

func maxPages(limits wasm.ResizableLimits) uint64 {
	if limits.HasMax() {
		return uint64(limits.Maximum)
	}
	return MaxPages
}

func reservation(limits wasm.ResizableLimits) uint64 {
	pages := maxPages(limits)
	if pages > MaxPages {
		pages = MaxPages
	}
	return pages * PageSize
}

// Limits returns the memory's limits. Initial holds the current size in pages.
func (m *Memory) Limits() wasm.ResizableLimits {
	return m.limits
}

// Size returns the current size of the memory in pages.
func (m *Memory) Size() uint32 {
	return m.limits.Initial
}

// Len returns the current size of the memory in bytes.
func (m *Memory) Len() uint64 {
	return uint64(len(m.bytes))
}

// Bytes returns the memory's bytes.
func (m *Memory) Bytes() []byte {
	return m.bytes
}

// Grow grows the memory by the given number of pages. It returns the old size of the memory in pages and an error if
// growing the memory by the requested amount would exceed the memory's maximum size or the 32-bit address space.
func (m *Memory) Grow(pages uint32) (uint32, error) {
	old := m.limits.Initial
	newPages := uint64(old) + uint64(pages)
	if newPages > maxPages(m.limits) || newPages*PageSize > math.MaxUint32 {
		return old, ErrLimitExceeded
	}
	if err := m.backing.grow(int(newPages * PageSize)); err != nil {
		return old, err
	}
	m.bytes, m.limits.Initial = m.backing.bytes(), uint32(newPages)
	return old, nil
}

// InBounds returns true if the size bytes at addr lie entirely within the memory.
func (m *Memory) InBounds(addr, size uint64) bool {
	return addr+size <= uint64(len(m.bytes))
}

// Uint8At returns the byte stored at the given address.
func (m *Memory) Uint8At(addr uint64) uint8 {
	return m.bytes[addr]
}

// PutUint8At writes the given byte to the given address.
func (m *Memory) PutUint8At(v uint8, addr uint64) {
	m.bytes[addr] = v
}

// Uint16At returns the uint16 stored at the given address.
func (m *Memory) Uint16At(addr uint64) uint16 {
	return binary.LittleEndian.Uint16(m.bytes[addr:])
}

// PutUint16At writes the given uint16 to the given address.
func (m *Memory) PutUint16At(v uint16, addr uint64) {
	binary.LittleEndian.PutUint16(m.bytes[addr:], v)
}

// Uint32At returns the uint32 stored at the given address.
func (m *Memory) Uint32At(addr uint64) uint32 {
	return binary.LittleEndian.Uint32(m.bytes[addr:])
}

// PutUint32At writes the given uint32 to the given address.
func (m *Memory) PutUint32At(v uint32, addr uint64) {
	binary.LittleEndian.PutUint32(m.bytes[addr:], v)
}

// Uint64At returns the uint64 stored at the given address.
func (m *Memory) Uint64At(addr uint64) uint64 {
	return binary.LittleEndian.Uint64(m.bytes[addr:])
}

// PutUint64At writes the given uint64 to the given address.
func (m *Memory) PutUint64At(v uint64, addr uint64) {
	binary.LittleEndian.PutUint64(m.bytes[addr:], v)
}

// V128At returns the 128-bit value stored at the given address.
func (m *Memory) V128At(addr uint64) V128 {
	return V128{Lo: m.Uint64At(addr), Hi: m.Uint64At(addr + 8)}
}

// PutV128At writes the given 128-bit value to the given address.
func (m *Memory) PutV128At(v V128, addr uint64) {
	m.PutUint64At(v.Lo, addr)
	m.PutUint64At(v.Hi, addr+8)
}

// Float32At returns the float32 stored at the given address.
func (m *Memory) Float32At(addr uint64) float32 {
	return math.Float32frombits(m.Uint32At(addr))
}

// Float64At returns the float64 stored at the given address.
func (m *Memory) Float64At(addr uint64) float64 {
	return math.Float64frombits(m.Uint64At(addr))
}
