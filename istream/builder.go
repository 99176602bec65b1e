package istream

import (
	"encoding/binary"
	"fmt"

	"github.com/pgavlin/wisp/exec"
)

// A Label names an istream offset that may not be known yet.
type Label int

type labelState struct {
	offset uint32
	bound  bool
}

type fixup struct {
	at    int
	label Label
}

// UnboundLabelError is returned by Builder.Bytes if a referenced label was never bound.
type UnboundLabelError struct {
	Label Label
}

func (e *UnboundLabelError) Error() string {
	return fmt.Sprintf("label %d referenced but never bound", int(e.Label))
}

// BrTableTarget is one destination of a br_table.
type BrTableTarget struct {
	Label Label
	Drop  uint32
	Keep  uint8
}

// A Builder emits istream instructions. All offsets are absolute: the first emitted byte lives at base.
type Builder struct {
	base   uint32
	buf    []byte
	labels []labelState
	fixups []fixup
}

// NewBuilder creates a builder whose output will be appended to an istream at offset base.
func NewBuilder(base uint32) *Builder {
	return &Builder{base: base}
}

// Offset returns the absolute offset of the next emitted byte.
func (b *Builder) Offset() uint32 {
	return b.base + uint32(len(b.buf))
}

// NewLabel allocates an unbound label.
func (b *Builder) NewLabel() Label {
	b.labels = append(b.labels, labelState{})
	return Label(len(b.labels) - 1)
}

// Bind binds the label to the current offset.
func (b *Builder) Bind(l Label) {
	if b.labels[l].bound {
		panic(fmt.Sprintf("label %d bound twice", int(l)))
	}
	b.labels[l] = labelState{offset: b.Offset(), bound: true}
}

// IsBound returns true if the label has been bound.
func (b *Builder) IsBound(l Label) bool {
	return b.labels[l].bound
}

func (b *Builder) u8(v uint8) {
	b.buf = append(b.buf, v)
}

func (b *Builder) u32(v uint32) {
	b.buf = binary.LittleEndian.AppendUint32(b.buf, v)
}

func (b *Builder) u64(v uint64) {
	b.buf = binary.LittleEndian.AppendUint64(b.buf, v)
}

func (b *Builder) labelRef(l Label) {
	b.fixups = append(b.fixups, fixup{at: len(b.buf), label: l})
	b.u32(0)
}

// Op emits an instruction with no immediates.
func (b *Builder) Op(op Opcode) {
	b.buf = appendOpcode(b.buf, op)
}

// OpU32 emits an instruction with a single 32-bit immediate.
func (b *Builder) OpU32(op Opcode, v uint32) {
	b.Op(op)
	b.u32(v)
}

// OpU64 emits an instruction with a single 64-bit immediate.
func (b *Builder) OpU64(op Opcode, v uint64) {
	b.Op(op)
	b.u64(v)
}

// OpU32x2 emits an instruction with two 32-bit immediates.
func (b *Builder) OpU32x2(op Opcode, v0, v1 uint32) {
	b.Op(op)
	b.u32(v0)
	b.u32(v1)
}

func (b *Builder) I32Const(v uint32) { b.OpU32(OpI32Const, v) }
func (b *Builder) I64Const(v uint64) { b.OpU64(OpI64Const, v) }
func (b *Builder) F32Const(v uint32) { b.OpU32(OpF32Const, v) }
func (b *Builder) F64Const(v uint64) { b.OpU64(OpF64Const, v) }

func (b *Builder) V128Const(v exec.V128) {
	b.Op(OpV128Const)
	b.u64(v.Lo)
	b.u64(v.Hi)
}

// Branch emits a branch-like instruction (br, br_if, br_unless or call) to the given label.
func (b *Builder) Branch(op Opcode, l Label) {
	b.Op(op)
	b.labelRef(l)
}

// BranchOffset emits a branch-like instruction to a known absolute offset.
func (b *Builder) BranchOffset(op Opcode, target uint32) {
	b.OpU32(op, target)
}

// Memory emits a load, store or atomic access.
func (b *Builder) Memory(op Opcode, memory, offset uint32) {
	b.OpU32x2(op, memory, offset)
}

func (b *Builder) DropKeep(drop uint32, keep uint8) {
	b.Op(OpInterpDropKeep)
	b.u32(drop)
	b.u8(keep)
}

func (b *Builder) Lane(op Opcode, lane uint8) {
	b.Op(op)
	b.u8(lane)
}

func (b *Builder) Shuffle(lanes [16]byte) {
	b.Op(OpV8X16Shuffle)
	b.buf = append(b.buf, lanes[:]...)
}

// Data emits an InterpData block holding the given payload.
func (b *Builder) Data(payload []byte) {
	b.OpU32(OpInterpData, uint32(len(payload)))
	b.buf = append(b.buf, payload...)
}

// BrTable emits a br_table followed by its target table. The default target is selected for any key that is at
// least len(targets).
func (b *Builder) BrTable(targets []BrTableTarget, def BrTableTarget) {
	tableOffset := b.Offset() + uint32(OpBrTable.Size()) + 8 + uint32(OpInterpData.Size()) + 4
	b.OpU32x2(OpBrTable, uint32(len(targets)), tableOffset)

	b.OpU32(OpInterpData, uint32((len(targets)+1)*BrTableEntrySize))
	for _, t := range targets {
		b.brTableEntry(t)
	}
	b.brTableEntry(def)
}

func (b *Builder) brTableEntry(t BrTableTarget) {
	b.labelRef(t.Label)
	b.u32(t.Drop)
	b.u8(t.Keep)
}

// Bytes resolves label references and returns the emitted code.
func (b *Builder) Bytes() ([]byte, error) {
	for _, f := range b.fixups {
		l := b.labels[f.label]
		if !l.bound {
			return nil, &UnboundLabelError{Label: f.label}
		}
		binary.LittleEndian.PutUint32(b.buf[f.at:], l.offset)
	}
	return b.buf, nil
}
