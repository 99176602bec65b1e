package load

import (
	"fmt"
	"math"

	"github.com/pgavlin/wisp/exec"
	"github.com/pgavlin/wisp/interpreter"
	"github.com/pgavlin/wisp/istream"
	"github.com/pgavlin/wisp/wasm"
)

type frameKind uint8

const (
	funcFrame frameKind = iota
	blockFrame
	loopFrame
	ifFrame
	elseFrame
)

type frame struct {
	kind    frameKind
	results []wasm.ValueType
	// height is the operand height at entry.
	height      uint32
	label       istream.Label
	elseLabel   istream.Label
	unreachable bool
}

// branchArity returns the number of values a branch to the frame carries.
func (f *frame) branchArity() uint32 {
	if f.kind == loopFrame {
		return 0
	}
	return uint32(len(f.results))
}

// A FunctionBuilder emits the body of a defined function. Structured control is lowered to istream branches as it is
// emitted, and local indices are lowered to stack depths. The builder tracks the operand stack height but not operand
// types. The first error is retained and reported by Instantiate; later calls are ignored.
type FunctionBuilder struct {
	c *compiler
	b *istream.Builder

	sig    *wasm.FunctionSig
	locals uint32

	height uint32
	frames []frame
	err    error
}

func newFunctionBuilder(c *compiler, sig *wasm.FunctionSig, locals uint32) *FunctionBuilder {
	f := &FunctionBuilder{c: c, b: c.b, sig: sig, locals: locals}
	f.frames = []frame{{kind: funcFrame, results: sig.ReturnTypes, label: f.b.NewLabel()}}
	return f
}

// Err returns the first error encountered while building the function.
func (f *FunctionBuilder) Err() error {
	return f.err
}

func (f *FunctionBuilder) fail(format string, args ...interface{}) {
	if f.err == nil {
		f.err = fmt.Errorf(format, args...)
	}
}

func (f *FunctionBuilder) failErr(err error) {
	if f.err == nil {
		f.err = err
	}
}

func (f *FunctionBuilder) top() *frame {
	return &f.frames[len(f.frames)-1]
}

func (f *FunctionBuilder) push(n uint32) {
	f.height += n
}

func (f *FunctionBuilder) pop(n uint32) {
	fr := f.top()
	if f.height < fr.height+n {
		if !fr.unreachable {
			f.fail("operand stack underflow")
		}
		f.height = fr.height
		return
	}
	f.height -= n
}

func (f *FunctionBuilder) setUnreachable() {
	fr := f.top()
	fr.unreachable, f.height = true, fr.height
}

func (f *FunctionBuilder) emitDropKeep(drop uint32, keep uint8) {
	switch {
	case drop == 0:
	case drop == 1 && keep == 0:
		f.b.Op(istream.OpDrop)
	default:
		f.b.DropKeep(drop, keep)
	}
}

// target returns the frame a branch of the given depth targets and the drop and keep counts of the branch.
func (f *FunctionBuilder) target(depth uint32) (*frame, uint32, uint8, bool) {
	if depth >= uint32(len(f.frames)) {
		f.fail("invalid branch depth %d", depth)
		return nil, 0, 0, false
	}
	fr := &f.frames[len(f.frames)-1-int(depth)]
	keep := fr.branchArity()
	if f.top().unreachable {
		return fr, 0, uint8(keep), true
	}
	if f.height < fr.height+keep {
		f.fail("operand stack underflow at branch")
		return nil, 0, 0, false
	}
	return fr, f.height - fr.height - keep, uint8(keep), true
}

func (f *FunctionBuilder) blockResults(results []wasm.ValueType) bool {
	if len(results) > 1 {
		f.fail("blocks may produce at most one value")
		return false
	}
	return true
}

// Block opens a block with the given result types.
func (f *FunctionBuilder) Block(results ...wasm.ValueType) {
	if f.blockResults(results) {
		f.frames = append(f.frames, frame{kind: blockFrame, results: results, height: f.height, label: f.b.NewLabel()})
	}
}

// Loop opens a loop with the given result types. Branches to a loop continue at its start.
func (f *FunctionBuilder) Loop(results ...wasm.ValueType) {
	if f.blockResults(results) {
		label := f.b.NewLabel()
		f.b.Bind(label)
		f.frames = append(f.frames, frame{kind: loopFrame, results: results, height: f.height, label: label})
	}
}

// If pops a condition and opens a block that runs if the condition is non-zero.
func (f *FunctionBuilder) If(results ...wasm.ValueType) {
	if !f.blockResults(results) {
		return
	}
	f.pop(1)
	elseLabel := f.b.NewLabel()
	f.b.Branch(istream.OpInterpBrUnless, elseLabel)
	f.frames = append(f.frames, frame{
		kind:      ifFrame,
		results:   results,
		height:    f.height,
		label:     f.b.NewLabel(),
		elseLabel: elseLabel,
	})
}

// Else begins the alternative of the innermost If.
func (f *FunctionBuilder) Else() {
	fr := f.top()
	if fr.kind != ifFrame {
		f.fail("else without matching if")
		return
	}
	if !fr.unreachable && f.height != fr.height+uint32(len(fr.results)) {
		f.fail("if arm leaves %d values, expected %d", f.height-fr.height, len(fr.results))
	}
	f.b.Branch(istream.OpBr, fr.label)
	f.b.Bind(fr.elseLabel)
	fr.kind, fr.unreachable, f.height = elseFrame, false, fr.height
}

// End closes the innermost block, loop or if.
func (f *FunctionBuilder) End() {
	if len(f.frames) <= 1 {
		f.fail("end without matching block")
		return
	}
	fr := f.top()
	if !fr.unreachable && f.height != fr.height+uint32(len(fr.results)) {
		f.fail("block leaves %d values, expected %d", int64(f.height)-int64(fr.height), len(fr.results))
	}
	switch fr.kind {
	case ifFrame:
		f.b.Bind(fr.elseLabel)
		f.b.Bind(fr.label)
	case blockFrame, elseFrame:
		f.b.Bind(fr.label)
	}
	f.height = fr.height + uint32(len(fr.results))
	f.frames = f.frames[:len(f.frames)-1]
}

// finish closes the function's implicit block and emits its epilogue.
func (f *FunctionBuilder) finish() {
	if len(f.frames) != 1 {
		f.fail("%d unterminated blocks", len(f.frames)-1)
		return
	}
	fr := f.top()
	results := uint32(len(f.sig.ReturnTypes))
	if !fr.unreachable && f.height != results {
		f.fail("function leaves %d values, expected %d", f.height, results)
		return
	}
	f.b.Bind(fr.label)
	f.emitDropKeep(f.locals, uint8(results))
	f.b.Op(istream.OpReturn)
	f.frames = nil
}

// Br branches to the frame at the given depth.
func (f *FunctionBuilder) Br(depth uint32) {
	fr, drop, keep, ok := f.target(depth)
	if !ok {
		return
	}
	f.emitDropKeep(drop, keep)
	f.b.Branch(istream.OpBr, fr.label)
	f.setUnreachable()
}

// BrIf pops a condition and branches to the frame at the given depth if it is non-zero.
func (f *FunctionBuilder) BrIf(depth uint32) {
	f.pop(1)
	fr, drop, keep, ok := f.target(depth)
	if !ok {
		return
	}
	if drop == 0 {
		f.b.Branch(istream.OpBrIf, fr.label)
		return
	}
	skip := f.b.NewLabel()
	f.b.Branch(istream.OpInterpBrUnless, skip)
	f.emitDropKeep(drop, keep)
	f.b.Branch(istream.OpBr, fr.label)
	f.b.Bind(skip)
}

// BrTable pops a key and branches to targets[key], or to def if the key is out of range.
func (f *FunctionBuilder) BrTable(targets []uint32, def uint32) {
	f.pop(1)
	entries := make([]istream.BrTableTarget, len(targets))
	for i, depth := range targets {
		fr, drop, keep, ok := f.target(depth)
		if !ok {
			return
		}
		entries[i] = istream.BrTableTarget{Label: fr.label, Drop: drop, Keep: keep}
	}
	fr, drop, keep, ok := f.target(def)
	if !ok {
		return
	}
	f.b.BrTable(entries, istream.BrTableTarget{Label: fr.label, Drop: drop, Keep: keep})
	f.setUnreachable()
}

// Return returns from the function.
func (f *FunctionBuilder) Return() {
	results := uint32(len(f.sig.ReturnTypes))
	drop := f.locals
	if !f.top().unreachable {
		if f.height < results {
			f.fail("operand stack underflow at return")
			return
		}
		drop += f.height - results
	}
	f.emitDropKeep(drop, uint8(results))
	f.b.Op(istream.OpReturn)
	f.setUnreachable()
}

// Unreachable traps unconditionally.
func (f *FunctionBuilder) Unreachable() {
	f.b.Op(istream.OpUnreachable)
	f.setUnreachable()
}

// Nop emits nothing.
func (f *FunctionBuilder) Nop() {}

func (f *FunctionBuilder) localDepth(index uint32) (uint32, bool) {
	if index >= f.locals {
		f.fail("invalid local index %d", index)
		return 0, false
	}
	return f.locals + f.height - index, true
}

// LocalGet pushes the value of a parameter or local.
func (f *FunctionBuilder) LocalGet(index uint32) {
	if depth, ok := f.localDepth(index); ok {
		f.b.OpU32(istream.OpLocalGet, depth)
		f.push(1)
	}
}

// LocalSet pops a value into a parameter or local.
func (f *FunctionBuilder) LocalSet(index uint32) {
	f.pop(1)
	if depth, ok := f.localDepth(index); ok {
		f.b.OpU32(istream.OpLocalSet, depth)
	}
}

// LocalTee stores the top of the stack into a parameter or local without popping it.
func (f *FunctionBuilder) LocalTee(index uint32) {
	f.pop(1)
	f.push(1)
	if depth, ok := f.localDepth(index); ok {
		f.b.OpU32(istream.OpLocalTee, depth)
	}
}

func (f *FunctionBuilder) global(index uint32) (uint32, bool) {
	if index >= uint32(len(f.c.globals)) {
		f.failErr(&IndexError{Space: "global", Index: index})
		return 0, false
	}
	return f.c.globals[index], true
}

// GlobalGet pushes the value of a global.
func (f *FunctionBuilder) GlobalGet(index uint32) {
	if g, ok := f.global(index); ok {
		f.b.OpU32(istream.OpGlobalGet, g)
		f.push(1)
	}
}

// GlobalSet pops a value into a global.
func (f *FunctionBuilder) GlobalSet(index uint32) {
	f.pop(1)
	if g, ok := f.global(index); ok {
		f.b.OpU32(istream.OpGlobalSet, g)
	}
}

// Call calls the function with the given module index.
func (f *FunctionBuilder) Call(index uint32) {
	if index >= uint32(len(f.c.funcs)) {
		f.failErr(&IndexError{Space: "function", Index: index})
		return
	}
	funcIndex := f.c.funcs[index]
	callee := f.c.env.Func(funcIndex)
	sig := f.c.env.FuncSignature(callee.Signature())

	f.pop(uint32(len(sig.ParamTypes)))
	if defined := index - f.c.numFuncImports; index >= f.c.numFuncImports {
		f.b.Branch(istream.OpCall, f.c.funcLabels[defined])
	} else {
		switch callee := callee.(type) {
		case *interpreter.HostFunc:
			f.b.OpU32(istream.OpInterpCallHost, funcIndex)
		case *interpreter.DefinedFunc:
			f.b.BranchOffset(istream.OpCall, callee.Offset)
		}
	}
	f.push(uint32(len(sig.ReturnTypes)))
}

// CallIndirect pops a table index and calls the function stored there, which must have the given signature.
func (f *FunctionBuilder) CallIndirect(sig wasm.FunctionSig) {
	if f.c.table == exec.InvalidIndex {
		f.failErr(ErrNoTable)
		return
	}
	f.pop(1 + uint32(len(sig.ParamTypes)))
	f.b.OpU32x2(istream.OpCallIndirect, f.c.table, f.c.sigIndex(sig))
	f.push(uint32(len(sig.ReturnTypes)))
}

func (f *FunctionBuilder) memory() (uint32, bool) {
	if f.c.memory == exec.InvalidIndex {
		f.failErr(ErrNoMemory)
		return 0, false
	}
	return f.c.memory, true
}

// Memory emits a load, store or atomic access of the module's memory.
func (f *FunctionBuilder) Memory(op istream.Opcode, offset uint32) {
	info, ok := istream.Lookup(op)
	if !ok || info.Immediates != istream.ImmMemoryOffset {
		f.fail("%v is not a memory access", op)
		return
	}
	if m, ok := f.memory(); ok {
		f.pop(uint32(info.Pops))
		f.b.Memory(op, m, offset)
		f.push(uint32(info.Pushes))
	}
}

// MemorySize pushes the size of the module's memory in pages.
func (f *FunctionBuilder) MemorySize() {
	if m, ok := f.memory(); ok {
		f.b.OpU32(istream.OpMemorySize, m)
		f.push(1)
	}
}

// MemoryGrow pops a page count, grows the module's memory, and pushes the previous size or -1.
func (f *FunctionBuilder) MemoryGrow() {
	if m, ok := f.memory(); ok {
		f.pop(1)
		f.b.OpU32(istream.OpMemoryGrow, m)
		f.push(1)
	}
}

func (f *FunctionBuilder) I32Const(v int32) {
	f.b.I32Const(uint32(v))
	f.push(1)
}

func (f *FunctionBuilder) I64Const(v int64) {
	f.b.I64Const(uint64(v))
	f.push(1)
}

func (f *FunctionBuilder) F32Const(v float32) {
	f.b.F32Const(math.Float32bits(v))
	f.push(1)
}

func (f *FunctionBuilder) F64Const(v float64) {
	f.b.F64Const(math.Float64bits(v))
	f.push(1)
}

func (f *FunctionBuilder) V128Const(v exec.V128) {
	f.b.V128Const(v)
	f.push(1)
}

// Op emits an instruction without immediates, such as a numeric operator, drop or select.
func (f *FunctionBuilder) Op(op istream.Opcode) {
	switch op {
	case istream.OpReturn:
		f.Return()
		return
	case istream.OpUnreachable:
		f.Unreachable()
		return
	case istream.OpNop:
		return
	}

	info, ok := istream.Lookup(op)
	if !ok || op.IsStructured() || info.Immediates != istream.ImmNone || info.Pops == istream.Variable {
		f.fail("%v cannot be emitted as a plain instruction", op)
		return
	}
	f.pop(uint32(info.Pops))
	f.b.Op(op)
	f.push(uint32(info.Pushes))
}

// Lane emits a SIMD lane instruction.
func (f *FunctionBuilder) Lane(op istream.Opcode, lane uint8) {
	info, ok := istream.Lookup(op)
	if !ok || info.Immediates != istream.ImmLane {
		f.fail("%v is not a lane instruction", op)
		return
	}
	f.pop(uint32(info.Pops))
	f.b.Lane(op, lane)
	f.push(uint32(info.Pushes))
}

// Shuffle pops two vectors and pushes the lanes they select.
func (f *FunctionBuilder) Shuffle(lanes [16]byte) {
	f.pop(2)
	f.b.Shuffle(lanes)
	f.push(1)
}
