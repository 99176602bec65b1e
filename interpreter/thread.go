package interpreter

import (
	"encoding/binary"

	"github.com/pgavlin/wisp/exec"
	"go.uber.org/zap"
)

const (
	// DefaultValueStackSize is the default capacity of a thread's value stack in slots.
	DefaultValueStackSize = 512 * 1024 / 16
	// DefaultCallStackSize is the default capacity of a thread's call stack in frames.
	DefaultCallStackSize = 64 * 1024
)

// ThreadOptions configures a Thread. Zero fields take their default values.
type ThreadOptions struct {
	ValueStackSize uint32
	CallStackSize  uint32
}

func (o *ThreadOptions) valueStackSize() uint32 {
	if o == nil || o.ValueStackSize == 0 {
		return DefaultValueStackSize
	}
	return o.ValueStackSize
}

func (o *ThreadOptions) callStackSize() uint32 {
	if o == nil || o.CallStackSize == 0 {
		return DefaultCallStackSize
	}
	return o.CallStackSize
}

// A Thread executes code from an environment's istream. It owns a fixed-capacity value stack, a fixed-capacity call
// stack of return offsets, and a program counter.
type Thread struct {
	env *Environment

	values   []exec.Value
	valueTop uint32

	calls   []uint32
	callTop uint32

	pc    uint32
	steps uint64
}

// NewThread creates a thread bound to env.
func NewThread(env *Environment, options *ThreadOptions) *Thread {
	return &Thread{
		env:    env,
		values: make([]exec.Value, options.valueStackSize()),
		calls:  make([]uint32, options.callStackSize()),
	}
}

// Environment returns the thread's environment.
func (t *Thread) Environment() *Environment {
	return t.env
}

// Reset clears the thread's stacks, program counter and step count.
func (t *Thread) Reset() {
	t.pc, t.valueTop, t.callTop, t.steps = 0, 0, 0, 0
}

// Steps returns the number of instructions executed since the thread was last reset.
func (t *Thread) Steps() uint64 { return t.steps }

func (t *Thread) PC() uint32 { return t.pc }

func (t *Thread) SetPC(pc uint32) { t.pc = pc }

// NumValues returns the depth of the value stack.
func (t *Thread) NumValues() uint32 { return t.valueTop }

// ValueAt returns the value in the given stack slot, counting from the bottom of the stack.
func (t *Thread) ValueAt(i uint32) exec.Value { return t.values[i] }

// CallDepth returns the depth of the call stack.
func (t *Thread) CallDepth() uint32 { return t.callTop }

// Push pushes a value. It traps if the value stack is full.
func (t *Thread) Push(v exec.Value) exec.Result {
	if t.valueTop >= uint32(len(t.values)) {
		return exec.TrapValueStackExhausted
	}
	t.values[t.valueTop] = v
	t.valueTop++
	return exec.Ok
}

// Pop pops a value.
func (t *Thread) Pop() exec.Value {
	t.valueTop--
	return t.values[t.valueTop]
}

// Pick returns a reference to the value depth slots below the top of the stack. Pick(1) is the top of the stack.
func (t *Thread) Pick(depth uint32) *exec.Value {
	return &t.values[t.valueTop-depth]
}

// Top returns the value on top of the stack.
func (t *Thread) Top() exec.Value {
	return *t.Pick(1)
}

// DropKeep moves the top keep values down by drop slots and discards the drop slots beneath them.
func (t *Thread) DropKeep(drop uint32, keep uint8) {
	if drop == 0 {
		return
	}
	if keep != 0 {
		k := uint32(keep)
		copy(t.values[t.valueTop-drop-k:], t.values[t.valueTop-k:t.valueTop])
	}
	t.valueTop -= drop
}

func (t *Thread) pushCall(pc uint32) exec.Result {
	if t.callTop >= uint32(len(t.calls)) {
		return exec.TrapCallStackExhausted
	}
	t.calls[t.callTop] = pc
	t.callTop++
	return exec.Ok
}

func (t *Thread) popCall() uint32 {
	t.callTop--
	return t.calls[t.callTop]
}

func (t *Thread) pushI32(v uint32) exec.Result { return t.Push(exec.I32(v)) }
func (t *Thread) pushI64(v uint64) exec.Result { return t.Push(exec.I64(v)) }
func (t *Thread) pushV128(v exec.V128) exec.Result {
	return t.Push(exec.FromV128(v))
}

func (t *Thread) popI32() uint32     { return t.Pop().I32() }
func (t *Thread) popI64() uint64     { return t.Pop().I64() }
func (t *Thread) popV128() exec.V128 { return t.Pop().V128() }

// CallHost calls a host function with arguments popped from the value stack and pushes its results.
func (t *Thread) CallHost(f *HostFunc) exec.Result {
	sig := t.env.FuncSignature(f.SigIndex)

	args := make([]exec.TypedValue, len(sig.ParamTypes))
	for i := len(args) - 1; i >= 0; i-- {
		args[i] = exec.TypedValue{Type: sig.ParamTypes[i], Value: t.Pop()}
	}

	results := make([]exec.TypedValue, len(sig.ReturnTypes))
	if err := f.Callback(f, sig, args, results); err != nil {
		t.env.log.Debug("host function trapped",
			zap.String("module", f.ModuleName),
			zap.String("field", f.FieldName),
			zap.Error(err))
		return exec.TrapHostTrapped
	}

	for i, r := range results {
		if r.Type != sig.ReturnTypes[i] {
			return exec.TrapHostResultTypeMismatch
		}
	}
	for _, r := range results {
		if res := t.Push(r.Value); res != exec.Ok {
			return res
		}
	}
	return exec.Ok
}

func readU8(code []byte, pc *uint32) uint8 {
	v := code[*pc]
	*pc++
	return v
}

func readU32(code []byte, pc *uint32) uint32 {
	v := binary.LittleEndian.Uint32(code[*pc:])
	*pc += 4
	return v
}

func readU64(code []byte, pc *uint32) uint64 {
	v := binary.LittleEndian.Uint64(code[*pc:])
	*pc += 8
	return v
}

func readV128(code []byte, pc *uint32) exec.V128 {
	lo := readU64(code, pc)
	hi := readU64(code, pc)
	return exec.V128{Lo: lo, Hi: hi}
}

func b2i(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
