package istream

import (
	"fmt"

	"github.com/willf/bitset"
	"go.uber.org/multierr"
)

// TargetError describes a branch whose target is not an instruction boundary.
type TargetError struct {
	Offset uint32
	Target uint32
}

func (e *TargetError) Error() string {
	return fmt.Sprintf("%d: branch target %d is not an instruction boundary", e.Offset, e.Target)
}

type branch struct {
	from, to uint32
	local    bool
}

// Check verifies that the code in [start, end) decodes and that every branch, call and br_table target lands on an
// instruction boundary. Calls may leave the range, in which case their targets must still lie within code. Every
// violation is reported.
func Check(code []byte, start, end uint32) error {
	if uint64(end) > uint64(len(code)) || start > end {
		return &DecodeError{Offset: start, Reason: fmt.Sprintf("range [%d, %d) exceeds code size %d", start, end, len(code))}
	}

	boundaries := bitset.New(uint(end - start))
	var branches []branch
	var errs error

	for pc := start; pc < end; {
		ins, err := Decode(code, pc)
		if err != nil {
			return multierr.Append(errs, err)
		}
		boundaries.Set(uint(pc - start))

		switch ins.Opcode {
		case OpBr, OpBrIf, OpInterpBrUnless:
			branches = append(branches, branch{from: pc, to: ins.Imm0, local: true})
		case OpCall:
			branches = append(branches, branch{from: pc, to: ins.Imm0})
		case OpBrTable:
			next, err := Decode(code, ins.Next)
			switch {
			case err != nil:
				errs = multierr.Append(errs, err)
			case next.Opcode != OpInterpData || ins.Imm1 != next.Offset+uint32(OpInterpData.Size())+4 ||
				len(next.Data) != int(ins.Imm0+1)*BrTableEntrySize:
				errs = multierr.Append(errs, &DecodeError{Offset: pc, Reason: "br_table is not followed by its target table"})
			default:
				entries, err := BrTableEntries(code, ins)
				if err != nil {
					errs = multierr.Append(errs, err)
					break
				}
				for _, e := range entries {
					branches = append(branches, branch{from: pc, to: e.Offset, local: true})
				}
			}
		}
		pc = ins.Next
	}

	for _, b := range branches {
		switch {
		case b.to >= start && b.to < end:
			if !boundaries.Test(uint(b.to - start)) {
				errs = multierr.Append(errs, &TargetError{Offset: b.from, Target: b.to})
			}
		case b.local || uint64(b.to) >= uint64(len(code)):
			errs = multierr.Append(errs, &TargetError{Offset: b.from, Target: b.to})
		}
	}
	return errs
}
