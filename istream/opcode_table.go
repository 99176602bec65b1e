package istream

// Opcodes. Single-byte opcodes use their WebAssembly encoding; prefixed opcodes carry the prefix byte in the high
// byte. The Interp opcodes exist only in the istream.
const (
	OpUnreachable  Opcode = 0x00
	OpNop          Opcode = 0x01
	OpBlock        Opcode = 0x02
	OpLoop         Opcode = 0x03
	OpIf           Opcode = 0x04
	OpElse         Opcode = 0x05
	OpEnd          Opcode = 0x0b
	OpBr           Opcode = 0x0c
	OpBrIf         Opcode = 0x0d
	OpBrTable      Opcode = 0x0e
	OpReturn       Opcode = 0x0f
	OpCall         Opcode = 0x10
	OpCallIndirect Opcode = 0x11

	OpDrop   Opcode = 0x1a
	OpSelect Opcode = 0x1b

	OpLocalGet  Opcode = 0x20
	OpLocalSet  Opcode = 0x21
	OpLocalTee  Opcode = 0x22
	OpGlobalGet Opcode = 0x23
	OpGlobalSet Opcode = 0x24

	OpI32Load    Opcode = 0x28
	OpI64Load    Opcode = 0x29
	OpF32Load    Opcode = 0x2a
	OpF64Load    Opcode = 0x2b
	OpI32Load8S  Opcode = 0x2c
	OpI32Load8U  Opcode = 0x2d
	OpI32Load16S Opcode = 0x2e
	OpI32Load16U Opcode = 0x2f
	OpI64Load8S  Opcode = 0x30
	OpI64Load8U  Opcode = 0x31
	OpI64Load16S Opcode = 0x32
	OpI64Load16U Opcode = 0x33
	OpI64Load32S Opcode = 0x34
	OpI64Load32U Opcode = 0x35
	OpI32Store   Opcode = 0x36
	OpI64Store   Opcode = 0x37
	OpF32Store   Opcode = 0x38
	OpF64Store   Opcode = 0x39
	OpI32Store8  Opcode = 0x3a
	OpI32Store16 Opcode = 0x3b
	OpI64Store8  Opcode = 0x3c
	OpI64Store16 Opcode = 0x3d
	OpI64Store32 Opcode = 0x3e
	OpMemorySize Opcode = 0x3f
	OpMemoryGrow Opcode = 0x40

	OpI32Const          Opcode = 0x41
	OpI64Const          Opcode = 0x42
	OpF32Const          Opcode = 0x43
	OpF64Const          Opcode = 0x44
	OpI32Eqz            Opcode = 0x45
	OpI32Eq             Opcode = 0x46
	OpI32Ne             Opcode = 0x47
	OpI32LtS            Opcode = 0x48
	OpI32LtU            Opcode = 0x49
	OpI32GtS            Opcode = 0x4a
	OpI32GtU            Opcode = 0x4b
	OpI32LeS            Opcode = 0x4c
	OpI32LeU            Opcode = 0x4d
	OpI32GeS            Opcode = 0x4e
	OpI32GeU            Opcode = 0x4f
	OpI64Eqz            Opcode = 0x50
	OpI64Eq             Opcode = 0x51
	OpI64Ne             Opcode = 0x52
	OpI64LtS            Opcode = 0x53
	OpI64LtU            Opcode = 0x54
	OpI64GtS            Opcode = 0x55
	OpI64GtU            Opcode = 0x56
	OpI64LeS            Opcode = 0x57
	OpI64LeU            Opcode = 0x58
	OpI64GeS            Opcode = 0x59
	OpI64GeU            Opcode = 0x5a
	OpF32Eq             Opcode = 0x5b
	OpF32Ne             Opcode = 0x5c
	OpF32Lt             Opcode = 0x5d
	OpF32Gt             Opcode = 0x5e
	OpF32Le             Opcode = 0x5f
	OpF32Ge             Opcode = 0x60
	OpF64Eq             Opcode = 0x61
	OpF64Ne             Opcode = 0x62
	OpF64Lt             Opcode = 0x63
	OpF64Gt             Opcode = 0x64
	OpF64Le             Opcode = 0x65
	OpF64Ge             Opcode = 0x66
	OpI32Clz            Opcode = 0x67
	OpI32Ctz            Opcode = 0x68
	OpI32Popcnt         Opcode = 0x69
	OpI32Add            Opcode = 0x6a
	OpI32Sub            Opcode = 0x6b
	OpI32Mul            Opcode = 0x6c
	OpI32DivS           Opcode = 0x6d
	OpI32DivU           Opcode = 0x6e
	OpI32RemS           Opcode = 0x6f
	OpI32RemU           Opcode = 0x70
	OpI32And            Opcode = 0x71
	OpI32Or             Opcode = 0x72
	OpI32Xor            Opcode = 0x73
	OpI32Shl            Opcode = 0x74
	OpI32ShrS           Opcode = 0x75
	OpI32ShrU           Opcode = 0x76
	OpI32Rotl           Opcode = 0x77
	OpI32Rotr           Opcode = 0x78
	OpI64Clz            Opcode = 0x79
	OpI64Ctz            Opcode = 0x7a
	OpI64Popcnt         Opcode = 0x7b
	OpI64Add            Opcode = 0x7c
	OpI64Sub            Opcode = 0x7d
	OpI64Mul            Opcode = 0x7e
	OpI64DivS           Opcode = 0x7f
	OpI64DivU           Opcode = 0x80
	OpI64RemS           Opcode = 0x81
	OpI64RemU           Opcode = 0x82
	OpI64And            Opcode = 0x83
	OpI64Or             Opcode = 0x84
	OpI64Xor            Opcode = 0x85
	OpI64Shl            Opcode = 0x86
	OpI64ShrS           Opcode = 0x87
	OpI64ShrU           Opcode = 0x88
	OpI64Rotl           Opcode = 0x89
	OpI64Rotr           Opcode = 0x8a
	OpF32Abs            Opcode = 0x8b
	OpF32Neg            Opcode = 0x8c
	OpF32Ceil           Opcode = 0x8d
	OpF32Floor          Opcode = 0x8e
	OpF32Trunc          Opcode = 0x8f
	OpF32Nearest        Opcode = 0x90
	OpF32Sqrt           Opcode = 0x91
	OpF32Add            Opcode = 0x92
	OpF32Sub            Opcode = 0x93
	OpF32Mul            Opcode = 0x94
	OpF32Div            Opcode = 0x95
	OpF32Min            Opcode = 0x96
	OpF32Max            Opcode = 0x97
	OpF32Copysign       Opcode = 0x98
	OpF64Abs            Opcode = 0x99
	OpF64Neg            Opcode = 0x9a
	OpF64Ceil           Opcode = 0x9b
	OpF64Floor          Opcode = 0x9c
	OpF64Trunc          Opcode = 0x9d
	OpF64Nearest        Opcode = 0x9e
	OpF64Sqrt           Opcode = 0x9f
	OpF64Add            Opcode = 0xa0
	OpF64Sub            Opcode = 0xa1
	OpF64Mul            Opcode = 0xa2
	OpF64Div            Opcode = 0xa3
	OpF64Min            Opcode = 0xa4
	OpF64Max            Opcode = 0xa5
	OpF64Copysign       Opcode = 0xa6
	OpI32WrapI64        Opcode = 0xa7
	OpI32TruncF32S      Opcode = 0xa8
	OpI32TruncF32U      Opcode = 0xa9
	OpI32TruncF64S      Opcode = 0xaa
	OpI32TruncF64U      Opcode = 0xab
	OpI64ExtendI32S     Opcode = 0xac
	OpI64ExtendI32U     Opcode = 0xad
	OpI64TruncF32S      Opcode = 0xae
	OpI64TruncF32U      Opcode = 0xaf
	OpI64TruncF64S      Opcode = 0xb0
	OpI64TruncF64U      Opcode = 0xb1
	OpF32ConvertI32S    Opcode = 0xb2
	OpF32ConvertI32U    Opcode = 0xb3
	OpF32ConvertI64S    Opcode = 0xb4
	OpF32ConvertI64U    Opcode = 0xb5
	OpF32DemoteF64      Opcode = 0xb6
	OpF64ConvertI32S    Opcode = 0xb7
	OpF64ConvertI32U    Opcode = 0xb8
	OpF64ConvertI64S    Opcode = 0xb9
	OpF64ConvertI64U    Opcode = 0xba
	OpF64PromoteF32     Opcode = 0xbb
	OpI32ReinterpretF32 Opcode = 0xbc
	OpI64ReinterpretF64 Opcode = 0xbd
	OpF32ReinterpretI32 Opcode = 0xbe
	OpF64ReinterpretI64 Opcode = 0xbf
	OpI32Extend8S       Opcode = 0xc0
	OpI32Extend16S      Opcode = 0xc1
	OpI64Extend8S       Opcode = 0xc2
	OpI64Extend16S      Opcode = 0xc3
	OpI64Extend32S      Opcode = 0xc4

	OpInterpAlloca   Opcode = 0xe0
	OpInterpBrUnless Opcode = 0xe1
	OpInterpCallHost Opcode = 0xe2
	OpInterpData     Opcode = 0xe3
	OpInterpDropKeep Opcode = 0xe4

	OpI32TruncSatF32S Opcode = 0xfc00
	OpI32TruncSatF32U Opcode = 0xfc01
	OpI32TruncSatF64S Opcode = 0xfc02
	OpI32TruncSatF64U Opcode = 0xfc03
	OpI64TruncSatF32S Opcode = 0xfc04
	OpI64TruncSatF32U Opcode = 0xfc05
	OpI64TruncSatF64S Opcode = 0xfc06
	OpI64TruncSatF64U Opcode = 0xfc07

	OpAtomicNotify           Opcode = 0xfe00
	OpI32AtomicWait          Opcode = 0xfe01
	OpI64AtomicWait          Opcode = 0xfe02
	OpI32AtomicLoad          Opcode = 0xfe10
	OpI64AtomicLoad          Opcode = 0xfe11
	OpI32AtomicLoad8U        Opcode = 0xfe12
	OpI32AtomicLoad16U       Opcode = 0xfe13
	OpI64AtomicLoad8U        Opcode = 0xfe14
	OpI64AtomicLoad16U       Opcode = 0xfe15
	OpI64AtomicLoad32U       Opcode = 0xfe16
	OpI32AtomicStore         Opcode = 0xfe17
	OpI64AtomicStore         Opcode = 0xfe18
	OpI32AtomicStore8        Opcode = 0xfe19
	OpI32AtomicStore16       Opcode = 0xfe1a
	OpI64AtomicStore8        Opcode = 0xfe1b
	OpI64AtomicStore16       Opcode = 0xfe1c
	OpI64AtomicStore32       Opcode = 0xfe1d
	OpI32AtomicRmwAdd        Opcode = 0xfe1e
	OpI64AtomicRmwAdd        Opcode = 0xfe1f
	OpI32AtomicRmw8AddU      Opcode = 0xfe20
	OpI32AtomicRmw16AddU     Opcode = 0xfe21
	OpI64AtomicRmw8AddU      Opcode = 0xfe22
	OpI64AtomicRmw16AddU     Opcode = 0xfe23
	OpI64AtomicRmw32AddU     Opcode = 0xfe24
	OpI32AtomicRmwSub        Opcode = 0xfe25
	OpI64AtomicRmwSub        Opcode = 0xfe26
	OpI32AtomicRmw8SubU      Opcode = 0xfe27
	OpI32AtomicRmw16SubU     Opcode = 0xfe28
	OpI64AtomicRmw8SubU      Opcode = 0xfe29
	OpI64AtomicRmw16SubU     Opcode = 0xfe2a
	OpI64AtomicRmw32SubU     Opcode = 0xfe2b
	OpI32AtomicRmwAnd        Opcode = 0xfe2c
	OpI64AtomicRmwAnd        Opcode = 0xfe2d
	OpI32AtomicRmw8AndU      Opcode = 0xfe2e
	OpI32AtomicRmw16AndU     Opcode = 0xfe2f
	OpI64AtomicRmw8AndU      Opcode = 0xfe30
	OpI64AtomicRmw16AndU     Opcode = 0xfe31
	OpI64AtomicRmw32AndU     Opcode = 0xfe32
	OpI32AtomicRmwOr         Opcode = 0xfe33
	OpI64AtomicRmwOr         Opcode = 0xfe34
	OpI32AtomicRmw8OrU       Opcode = 0xfe35
	OpI32AtomicRmw16OrU      Opcode = 0xfe36
	OpI64AtomicRmw8OrU       Opcode = 0xfe37
	OpI64AtomicRmw16OrU      Opcode = 0xfe38
	OpI64AtomicRmw32OrU      Opcode = 0xfe39
	OpI32AtomicRmwXor        Opcode = 0xfe3a
	OpI64AtomicRmwXor        Opcode = 0xfe3b
	OpI32AtomicRmw8XorU      Opcode = 0xfe3c
	OpI32AtomicRmw16XorU     Opcode = 0xfe3d
	OpI64AtomicRmw8XorU      Opcode = 0xfe3e
	OpI64AtomicRmw16XorU     Opcode = 0xfe3f
	OpI64AtomicRmw32XorU     Opcode = 0xfe40
	OpI32AtomicRmwXchg       Opcode = 0xfe41
	OpI64AtomicRmwXchg       Opcode = 0xfe42
	OpI32AtomicRmw8XchgU     Opcode = 0xfe43
	OpI32AtomicRmw16XchgU    Opcode = 0xfe44
	OpI64AtomicRmw8XchgU     Opcode = 0xfe45
	OpI64AtomicRmw16XchgU    Opcode = 0xfe46
	OpI64AtomicRmw32XchgU    Opcode = 0xfe47
	OpI32AtomicRmwCmpxchg    Opcode = 0xfe48
	OpI64AtomicRmwCmpxchg    Opcode = 0xfe49
	OpI32AtomicRmw8CmpxchgU  Opcode = 0xfe4a
	OpI32AtomicRmw16CmpxchgU Opcode = 0xfe4b
	OpI64AtomicRmw8CmpxchgU  Opcode = 0xfe4c
	OpI64AtomicRmw16CmpxchgU Opcode = 0xfe4d
	OpI64AtomicRmw32CmpxchgU Opcode = 0xfe4e

	OpV128Load            Opcode = 0xfd00
	OpV128Store           Opcode = 0xfd01
	OpV128Const           Opcode = 0xfd02
	OpV8X16Shuffle        Opcode = 0xfd03
	OpI8X16Splat          Opcode = 0xfd04
	OpI16X8Splat          Opcode = 0xfd05
	OpI32X4Splat          Opcode = 0xfd06
	OpI64X2Splat          Opcode = 0xfd07
	OpF32X4Splat          Opcode = 0xfd08
	OpF64X2Splat          Opcode = 0xfd09
	OpI8X16ExtractLaneS   Opcode = 0xfd0a
	OpI8X16ExtractLaneU   Opcode = 0xfd0b
	OpI16X8ExtractLaneS   Opcode = 0xfd0c
	OpI16X8ExtractLaneU   Opcode = 0xfd0d
	OpI32X4ExtractLane    Opcode = 0xfd0e
	OpI64X2ExtractLane    Opcode = 0xfd0f
	OpF32X4ExtractLane    Opcode = 0xfd10
	OpF64X2ExtractLane    Opcode = 0xfd11
	OpI8X16ReplaceLane    Opcode = 0xfd12
	OpI16X8ReplaceLane    Opcode = 0xfd13
	OpI32X4ReplaceLane    Opcode = 0xfd14
	OpI64X2ReplaceLane    Opcode = 0xfd15
	OpF32X4ReplaceLane    Opcode = 0xfd16
	OpF64X2ReplaceLane    Opcode = 0xfd17
	OpI8X16Add            Opcode = 0xfd18
	OpI16X8Add            Opcode = 0xfd19
	OpI32X4Add            Opcode = 0xfd1a
	OpI64X2Add            Opcode = 0xfd1b
	OpI8X16Sub            Opcode = 0xfd1c
	OpI16X8Sub            Opcode = 0xfd1d
	OpI32X4Sub            Opcode = 0xfd1e
	OpI64X2Sub            Opcode = 0xfd1f
	OpI8X16Mul            Opcode = 0xfd20
	OpI16X8Mul            Opcode = 0xfd21
	OpI32X4Mul            Opcode = 0xfd22
	OpI8X16Neg            Opcode = 0xfd23
	OpI16X8Neg            Opcode = 0xfd24
	OpI32X4Neg            Opcode = 0xfd25
	OpI64X2Neg            Opcode = 0xfd26
	OpI8X16AddSaturateS   Opcode = 0xfd27
	OpI8X16AddSaturateU   Opcode = 0xfd28
	OpI16X8AddSaturateS   Opcode = 0xfd29
	OpI16X8AddSaturateU   Opcode = 0xfd2a
	OpI8X16SubSaturateS   Opcode = 0xfd2b
	OpI8X16SubSaturateU   Opcode = 0xfd2c
	OpI16X8SubSaturateS   Opcode = 0xfd2d
	OpI16X8SubSaturateU   Opcode = 0xfd2e
	OpI8X16Shl            Opcode = 0xfd2f
	OpI16X8Shl            Opcode = 0xfd30
	OpI32X4Shl            Opcode = 0xfd31
	OpI64X2Shl            Opcode = 0xfd32
	OpI8X16ShrS           Opcode = 0xfd33
	OpI8X16ShrU           Opcode = 0xfd34
	OpI16X8ShrS           Opcode = 0xfd35
	OpI16X8ShrU           Opcode = 0xfd36
	OpI32X4ShrS           Opcode = 0xfd37
	OpI32X4ShrU           Opcode = 0xfd38
	OpI64X2ShrS           Opcode = 0xfd39
	OpI64X2ShrU           Opcode = 0xfd3a
	OpV128And             Opcode = 0xfd3b
	OpV128Or              Opcode = 0xfd3c
	OpV128Xor             Opcode = 0xfd3d
	OpV128Not             Opcode = 0xfd3e
	OpV128BitSelect       Opcode = 0xfd3f
	OpI8X16AnyTrue        Opcode = 0xfd40
	OpI16X8AnyTrue        Opcode = 0xfd41
	OpI32X4AnyTrue        Opcode = 0xfd42
	OpI64X2AnyTrue        Opcode = 0xfd43
	OpI8X16AllTrue        Opcode = 0xfd44
	OpI16X8AllTrue        Opcode = 0xfd45
	OpI32X4AllTrue        Opcode = 0xfd46
	OpI64X2AllTrue        Opcode = 0xfd47
	OpI8X16Eq             Opcode = 0xfd48
	OpI16X8Eq             Opcode = 0xfd49
	OpI32X4Eq             Opcode = 0xfd4a
	OpF32X4Eq             Opcode = 0xfd4b
	OpF64X2Eq             Opcode = 0xfd4c
	OpI8X16Ne             Opcode = 0xfd4d
	OpI16X8Ne             Opcode = 0xfd4e
	OpI32X4Ne             Opcode = 0xfd4f
	OpF32X4Ne             Opcode = 0xfd50
	OpF64X2Ne             Opcode = 0xfd51
	OpI8X16LtS            Opcode = 0xfd52
	OpI8X16LtU            Opcode = 0xfd53
	OpI16X8LtS            Opcode = 0xfd54
	OpI16X8LtU            Opcode = 0xfd55
	OpI32X4LtS            Opcode = 0xfd56
	OpI32X4LtU            Opcode = 0xfd57
	OpF32X4Lt             Opcode = 0xfd58
	OpF64X2Lt             Opcode = 0xfd59
	OpI8X16LeS            Opcode = 0xfd5a
	OpI8X16LeU            Opcode = 0xfd5b
	OpI16X8LeS            Opcode = 0xfd5c
	OpI16X8LeU            Opcode = 0xfd5d
	OpI32X4LeS            Opcode = 0xfd5e
	OpI32X4LeU            Opcode = 0xfd5f
	OpF32X4Le             Opcode = 0xfd60
	OpF64X2Le             Opcode = 0xfd61
	OpI8X16GtS            Opcode = 0xfd62
	OpI8X16GtU            Opcode = 0xfd63
	OpI16X8GtS            Opcode = 0xfd64
	OpI16X8GtU            Opcode = 0xfd65
	OpI32X4GtS            Opcode = 0xfd66
	OpI32X4GtU            Opcode = 0xfd67
	OpF32X4Gt             Opcode = 0xfd68
	OpF64X2Gt             Opcode = 0xfd69
	OpI8X16GeS            Opcode = 0xfd6a
	OpI8X16GeU            Opcode = 0xfd6b
	OpI16X8GeS            Opcode = 0xfd6c
	OpI16X8GeU            Opcode = 0xfd6d
	OpI32X4GeS            Opcode = 0xfd6e
	OpI32X4GeU            Opcode = 0xfd6f
	OpF32X4Ge             Opcode = 0xfd70
	OpF64X2Ge             Opcode = 0xfd71
	OpF32X4Neg            Opcode = 0xfd72
	OpF64X2Neg            Opcode = 0xfd73
	OpF32X4Abs            Opcode = 0xfd74
	OpF64X2Abs            Opcode = 0xfd75
	OpF32X4Min            Opcode = 0xfd76
	OpF64X2Min            Opcode = 0xfd77
	OpF32X4Max            Opcode = 0xfd78
	OpF64X2Max            Opcode = 0xfd79
	OpF32X4Add            Opcode = 0xfd7a
	OpF64X2Add            Opcode = 0xfd7b
	OpF32X4Sub            Opcode = 0xfd7c
	OpF64X2Sub            Opcode = 0xfd7d
	OpF32X4Div            Opcode = 0xfd7e
	OpF64X2Div            Opcode = 0xfd7f
	OpF32X4Mul            Opcode = 0xfd80
	OpF64X2Mul            Opcode = 0xfd81
	OpF32X4Sqrt           Opcode = 0xfd82
	OpF64X2Sqrt           Opcode = 0xfd83
	OpF32X4ConvertI32X4S  Opcode = 0xfd84
	OpF32X4ConvertI32X4U  Opcode = 0xfd85
	OpF64X2ConvertI64X2S  Opcode = 0xfd86
	OpF64X2ConvertI64X2U  Opcode = 0xfd87
	OpI32X4TruncSatF32X4S Opcode = 0xfd88
	OpI32X4TruncSatF32X4U Opcode = 0xfd89
	OpI64X2TruncSatF64X2S Opcode = 0xfd8a
	OpI64X2TruncSatF64X2U Opcode = 0xfd8b
)

var opcodeInfos = map[Opcode]Info{
	OpUnreachable:  {"unreachable", ImmNone, 0, 0},
	OpNop:          {"nop", ImmNone, 0, 0},
	OpBlock:        {"block", ImmNone, 0, 0},
	OpLoop:         {"loop", ImmNone, 0, 0},
	OpIf:           {"if", ImmNone, 1, 0},
	OpElse:         {"else", ImmNone, 0, 0},
	OpEnd:          {"end", ImmNone, 0, 0},
	OpBr:           {"br", ImmOffset, 0, 0},
	OpBrIf:         {"br_if", ImmOffset, 1, 0},
	OpBrTable:      {"br_table", ImmBrTable, 1, 0},
	OpReturn:       {"return", ImmNone, 0, 0},
	OpCall:         {"call", ImmOffset, Variable, Variable},
	OpCallIndirect: {"call_indirect", ImmCallIndirect, Variable, Variable},

	OpDrop:   {"drop", ImmNone, 1, 0},
	OpSelect: {"select", ImmNone, 3, 1},

	OpLocalGet:  {"local.get", ImmDepth, 0, 1},
	OpLocalSet:  {"local.set", ImmDepth, 1, 0},
	OpLocalTee:  {"local.tee", ImmDepth, 1, 1},
	OpGlobalGet: {"global.get", ImmGlobal, 0, 1},
	OpGlobalSet: {"global.set", ImmGlobal, 1, 0},

	OpI32Load:    {"i32.load", ImmMemoryOffset, 1, 1},
	OpI64Load:    {"i64.load", ImmMemoryOffset, 1, 1},
	OpF32Load:    {"f32.load", ImmMemoryOffset, 1, 1},
	OpF64Load:    {"f64.load", ImmMemoryOffset, 1, 1},
	OpI32Load8S:  {"i32.load8_s", ImmMemoryOffset, 1, 1},
	OpI32Load8U:  {"i32.load8_u", ImmMemoryOffset, 1, 1},
	OpI32Load16S: {"i32.load16_s", ImmMemoryOffset, 1, 1},
	OpI32Load16U: {"i32.load16_u", ImmMemoryOffset, 1, 1},
	OpI64Load8S:  {"i64.load8_s", ImmMemoryOffset, 1, 1},
	OpI64Load8U:  {"i64.load8_u", ImmMemoryOffset, 1, 1},
	OpI64Load16S: {"i64.load16_s", ImmMemoryOffset, 1, 1},
	OpI64Load16U: {"i64.load16_u", ImmMemoryOffset, 1, 1},
	OpI64Load32S: {"i64.load32_s", ImmMemoryOffset, 1, 1},
	OpI64Load32U: {"i64.load32_u", ImmMemoryOffset, 1, 1},
	OpI32Store:   {"i32.store", ImmMemoryOffset, 2, 0},
	OpI64Store:   {"i64.store", ImmMemoryOffset, 2, 0},
	OpF32Store:   {"f32.store", ImmMemoryOffset, 2, 0},
	OpF64Store:   {"f64.store", ImmMemoryOffset, 2, 0},
	OpI32Store8:  {"i32.store8", ImmMemoryOffset, 2, 0},
	OpI32Store16: {"i32.store16", ImmMemoryOffset, 2, 0},
	OpI64Store8:  {"i64.store8", ImmMemoryOffset, 2, 0},
	OpI64Store16: {"i64.store16", ImmMemoryOffset, 2, 0},
	OpI64Store32: {"i64.store32", ImmMemoryOffset, 2, 0},
	OpMemorySize: {"memory.size", ImmMemory, 0, 1},
	OpMemoryGrow: {"memory.grow", ImmMemory, 1, 1},

	OpI32Const:          {"i32.const", ImmI32, 0, 1},
	OpI64Const:          {"i64.const", ImmI64, 0, 1},
	OpF32Const:          {"f32.const", ImmF32, 0, 1},
	OpF64Const:          {"f64.const", ImmF64, 0, 1},
	OpI32Eqz:            {"i32.eqz", ImmNone, 1, 1},
	OpI32Eq:             {"i32.eq", ImmNone, 2, 1},
	OpI32Ne:             {"i32.ne", ImmNone, 2, 1},
	OpI32LtS:            {"i32.lt_s", ImmNone, 2, 1},
	OpI32LtU:            {"i32.lt_u", ImmNone, 2, 1},
	OpI32GtS:            {"i32.gt_s", ImmNone, 2, 1},
	OpI32GtU:            {"i32.gt_u", ImmNone, 2, 1},
	OpI32LeS:            {"i32.le_s", ImmNone, 2, 1},
	OpI32LeU:            {"i32.le_u", ImmNone, 2, 1},
	OpI32GeS:            {"i32.ge_s", ImmNone, 2, 1},
	OpI32GeU:            {"i32.ge_u", ImmNone, 2, 1},
	OpI64Eqz:            {"i64.eqz", ImmNone, 1, 1},
	OpI64Eq:             {"i64.eq", ImmNone, 2, 1},
	OpI64Ne:             {"i64.ne", ImmNone, 2, 1},
	OpI64LtS:            {"i64.lt_s", ImmNone, 2, 1},
	OpI64LtU:            {"i64.lt_u", ImmNone, 2, 1},
	OpI64GtS:            {"i64.gt_s", ImmNone, 2, 1},
	OpI64GtU:            {"i64.gt_u", ImmNone, 2, 1},
	OpI64LeS:            {"i64.le_s", ImmNone, 2, 1},
	OpI64LeU:            {"i64.le_u", ImmNone, 2, 1},
	OpI64GeS:            {"i64.ge_s", ImmNone, 2, 1},
	OpI64GeU:            {"i64.ge_u", ImmNone, 2, 1},
	OpF32Eq:             {"f32.eq", ImmNone, 2, 1},
	OpF32Ne:             {"f32.ne", ImmNone, 2, 1},
	OpF32Lt:             {"f32.lt", ImmNone, 2, 1},
	OpF32Gt:             {"f32.gt", ImmNone, 2, 1},
	OpF32Le:             {"f32.le", ImmNone, 2, 1},
	OpF32Ge:             {"f32.ge", ImmNone, 2, 1},
	OpF64Eq:             {"f64.eq", ImmNone, 2, 1},
	OpF64Ne:             {"f64.ne", ImmNone, 2, 1},
	OpF64Lt:             {"f64.lt", ImmNone, 2, 1},
	OpF64Gt:             {"f64.gt", ImmNone, 2, 1},
	OpF64Le:             {"f64.le", ImmNone, 2, 1},
	OpF64Ge:             {"f64.ge", ImmNone, 2, 1},
	OpI32Clz:            {"i32.clz", ImmNone, 1, 1},
	OpI32Ctz:            {"i32.ctz", ImmNone, 1, 1},
	OpI32Popcnt:         {"i32.popcnt", ImmNone, 1, 1},
	OpI32Add:            {"i32.add", ImmNone, 2, 1},
	OpI32Sub:            {"i32.sub", ImmNone, 2, 1},
	OpI32Mul:            {"i32.mul", ImmNone, 2, 1},
	OpI32DivS:           {"i32.div_s", ImmNone, 2, 1},
	OpI32DivU:           {"i32.div_u", ImmNone, 2, 1},
	OpI32RemS:           {"i32.rem_s", ImmNone, 2, 1},
	OpI32RemU:           {"i32.rem_u", ImmNone, 2, 1},
	OpI32And:            {"i32.and", ImmNone, 2, 1},
	OpI32Or:             {"i32.or", ImmNone, 2, 1},
	OpI32Xor:            {"i32.xor", ImmNone, 2, 1},
	OpI32Shl:            {"i32.shl", ImmNone, 2, 1},
	OpI32ShrS:           {"i32.shr_s", ImmNone, 2, 1},
	OpI32ShrU:           {"i32.shr_u", ImmNone, 2, 1},
	OpI32Rotl:           {"i32.rotl", ImmNone, 2, 1},
	OpI32Rotr:           {"i32.rotr", ImmNone, 2, 1},
	OpI64Clz:            {"i64.clz", ImmNone, 1, 1},
	OpI64Ctz:            {"i64.ctz", ImmNone, 1, 1},
	OpI64Popcnt:         {"i64.popcnt", ImmNone, 1, 1},
	OpI64Add:            {"i64.add", ImmNone, 2, 1},
	OpI64Sub:            {"i64.sub", ImmNone, 2, 1},
	OpI64Mul:            {"i64.mul", ImmNone, 2, 1},
	OpI64DivS:           {"i64.div_s", ImmNone, 2, 1},
	OpI64DivU:           {"i64.div_u", ImmNone, 2, 1},
	OpI64RemS:           {"i64.rem_s", ImmNone, 2, 1},
	OpI64RemU:           {"i64.rem_u", ImmNone, 2, 1},
	OpI64And:            {"i64.and", ImmNone, 2, 1},
	OpI64Or:             {"i64.or", ImmNone, 2, 1},
	OpI64Xor:            {"i64.xor", ImmNone, 2, 1},
	OpI64Shl:            {"i64.shl", ImmNone, 2, 1},
	OpI64ShrS:           {"i64.shr_s", ImmNone, 2, 1},
	OpI64ShrU:           {"i64.shr_u", ImmNone, 2, 1},
	OpI64Rotl:           {"i64.rotl", ImmNone, 2, 1},
	OpI64Rotr:           {"i64.rotr", ImmNone, 2, 1},
	OpF32Abs:            {"f32.abs", ImmNone, 1, 1},
	OpF32Neg:            {"f32.neg", ImmNone, 1, 1},
	OpF32Ceil:           {"f32.ceil", ImmNone, 1, 1},
	OpF32Floor:          {"f32.floor", ImmNone, 1, 1},
	OpF32Trunc:          {"f32.trunc", ImmNone, 1, 1},
	OpF32Nearest:        {"f32.nearest", ImmNone, 1, 1},
	OpF32Sqrt:           {"f32.sqrt", ImmNone, 1, 1},
	OpF32Add:            {"f32.add", ImmNone, 2, 1},
	OpF32Sub:            {"f32.sub", ImmNone, 2, 1},
	OpF32Mul:            {"f32.mul", ImmNone, 2, 1},
	OpF32Div:            {"f32.div", ImmNone, 2, 1},
	OpF32Min:            {"f32.min", ImmNone, 2, 1},
	OpF32Max:            {"f32.max", ImmNone, 2, 1},
	OpF32Copysign:       {"f32.copysign", ImmNone, 2, 1},
	OpF64Abs:            {"f64.abs", ImmNone, 1, 1},
	OpF64Neg:            {"f64.neg", ImmNone, 1, 1},
	OpF64Ceil:           {"f64.ceil", ImmNone, 1, 1},
	OpF64Floor:          {"f64.floor", ImmNone, 1, 1},
	OpF64Trunc:          {"f64.trunc", ImmNone, 1, 1},
	OpF64Nearest:        {"f64.nearest", ImmNone, 1, 1},
	OpF64Sqrt:           {"f64.sqrt", ImmNone, 1, 1},
	OpF64Add:            {"f64.add", ImmNone, 2, 1},
	OpF64Sub:            {"f64.sub", ImmNone, 2, 1},
	OpF64Mul:            {"f64.mul", ImmNone, 2, 1},
	OpF64Div:            {"f64.div", ImmNone, 2, 1},
	OpF64Min:            {"f64.min", ImmNone, 2, 1},
	OpF64Max:            {"f64.max", ImmNone, 2, 1},
	OpF64Copysign:       {"f64.copysign", ImmNone, 2, 1},
	OpI32WrapI64:        {"i32.wrap_i64", ImmNone, 1, 1},
	OpI32TruncF32S:      {"i32.trunc_f32_s", ImmNone, 1, 1},
	OpI32TruncF32U:      {"i32.trunc_f32_u", ImmNone, 1, 1},
	OpI32TruncF64S:      {"i32.trunc_f64_s", ImmNone, 1, 1},
	OpI32TruncF64U:      {"i32.trunc_f64_u", ImmNone, 1, 1},
	OpI64ExtendI32S:     {"i64.extend_i32_s", ImmNone, 1, 1},
	OpI64ExtendI32U:     {"i64.extend_i32_u", ImmNone, 1, 1},
	OpI64TruncF32S:      {"i64.trunc_f32_s", ImmNone, 1, 1},
	OpI64TruncF32U:      {"i64.trunc_f32_u", ImmNone, 1, 1},
	OpI64TruncF64S:      {"i64.trunc_f64_s", ImmNone, 1, 1},
	OpI64TruncF64U:      {"i64.trunc_f64_u", ImmNone, 1, 1},
	OpF32ConvertI32S:    {"f32.convert_i32_s", ImmNone, 1, 1},
	OpF32ConvertI32U:    {"f32.convert_i32_u", ImmNone, 1, 1},
	OpF32ConvertI64S:    {"f32.convert_i64_s", ImmNone, 1, 1},
	OpF32ConvertI64U:    {"f32.convert_i64_u", ImmNone, 1, 1},
	OpF32DemoteF64:      {"f32.demote_f64", ImmNone, 1, 1},
	OpF64ConvertI32S:    {"f64.convert_i32_s", ImmNone, 1, 1},
	OpF64ConvertI32U:    {"f64.convert_i32_u", ImmNone, 1, 1},
	OpF64ConvertI64S:    {"f64.convert_i64_s", ImmNone, 1, 1},
	OpF64ConvertI64U:    {"f64.convert_i64_u", ImmNone, 1, 1},
	OpF64PromoteF32:     {"f64.promote_f32", ImmNone, 1, 1},
	OpI32ReinterpretF32: {"i32.reinterpret_f32", ImmNone, 1, 1},
	OpI64ReinterpretF64: {"i64.reinterpret_f64", ImmNone, 1, 1},
	OpF32ReinterpretI32: {"f32.reinterpret_i32", ImmNone, 1, 1},
	OpF64ReinterpretI64: {"f64.reinterpret_i64", ImmNone, 1, 1},
	OpI32Extend8S:       {"i32.extend8_s", ImmNone, 1, 1},
	OpI32Extend16S:      {"i32.extend16_s", ImmNone, 1, 1},
	OpI64Extend8S:       {"i64.extend8_s", ImmNone, 1, 1},
	OpI64Extend16S:      {"i64.extend16_s", ImmNone, 1, 1},
	OpI64Extend32S:      {"i64.extend32_s", ImmNone, 1, 1},

	OpInterpAlloca:   {"alloca", ImmCount, Variable, Variable},
	OpInterpBrUnless: {"br_unless", ImmOffset, 1, 0},
	OpInterpCallHost: {"call_host", ImmFunc, Variable, Variable},
	OpInterpData:     {"data", ImmData, 0, 0},
	OpInterpDropKeep: {"drop_keep", ImmDropKeep, Variable, Variable},

	OpI32TruncSatF32S: {"i32.trunc_sat_f32_s", ImmNone, 1, 1},
	OpI32TruncSatF32U: {"i32.trunc_sat_f32_u", ImmNone, 1, 1},
	OpI32TruncSatF64S: {"i32.trunc_sat_f64_s", ImmNone, 1, 1},
	OpI32TruncSatF64U: {"i32.trunc_sat_f64_u", ImmNone, 1, 1},
	OpI64TruncSatF32S: {"i64.trunc_sat_f32_s", ImmNone, 1, 1},
	OpI64TruncSatF32U: {"i64.trunc_sat_f32_u", ImmNone, 1, 1},
	OpI64TruncSatF64S: {"i64.trunc_sat_f64_s", ImmNone, 1, 1},
	OpI64TruncSatF64U: {"i64.trunc_sat_f64_u", ImmNone, 1, 1},

	OpAtomicNotify:           {"memory.atomic.notify", ImmMemoryOffset, 2, 1},
	OpI32AtomicWait:          {"memory.atomic.wait32", ImmMemoryOffset, 3, 1},
	OpI64AtomicWait:          {"memory.atomic.wait64", ImmMemoryOffset, 3, 1},
	OpI32AtomicLoad:          {"i32.atomic.load", ImmMemoryOffset, 1, 1},
	OpI64AtomicLoad:          {"i64.atomic.load", ImmMemoryOffset, 1, 1},
	OpI32AtomicLoad8U:        {"i32.atomic.load8_u", ImmMemoryOffset, 1, 1},
	OpI32AtomicLoad16U:       {"i32.atomic.load16_u", ImmMemoryOffset, 1, 1},
	OpI64AtomicLoad8U:        {"i64.atomic.load8_u", ImmMemoryOffset, 1, 1},
	OpI64AtomicLoad16U:       {"i64.atomic.load16_u", ImmMemoryOffset, 1, 1},
	OpI64AtomicLoad32U:       {"i64.atomic.load32_u", ImmMemoryOffset, 1, 1},
	OpI32AtomicStore:         {"i32.atomic.store", ImmMemoryOffset, 2, 0},
	OpI64AtomicStore:         {"i64.atomic.store", ImmMemoryOffset, 2, 0},
	OpI32AtomicStore8:        {"i32.atomic.store8", ImmMemoryOffset, 2, 0},
	OpI32AtomicStore16:       {"i32.atomic.store16", ImmMemoryOffset, 2, 0},
	OpI64AtomicStore8:        {"i64.atomic.store8", ImmMemoryOffset, 2, 0},
	OpI64AtomicStore16:       {"i64.atomic.store16", ImmMemoryOffset, 2, 0},
	OpI64AtomicStore32:       {"i64.atomic.store32", ImmMemoryOffset, 2, 0},
	OpI32AtomicRmwAdd:        {"i32.atomic.rmw.add", ImmMemoryOffset, 2, 1},
	OpI64AtomicRmwAdd:        {"i64.atomic.rmw.add", ImmMemoryOffset, 2, 1},
	OpI32AtomicRmw8AddU:      {"i32.atomic.rmw8.add_u", ImmMemoryOffset, 2, 1},
	OpI32AtomicRmw16AddU:     {"i32.atomic.rmw16.add_u", ImmMemoryOffset, 2, 1},
	OpI64AtomicRmw8AddU:      {"i64.atomic.rmw8.add_u", ImmMemoryOffset, 2, 1},
	OpI64AtomicRmw16AddU:     {"i64.atomic.rmw16.add_u", ImmMemoryOffset, 2, 1},
	OpI64AtomicRmw32AddU:     {"i64.atomic.rmw32.add_u", ImmMemoryOffset, 2, 1},
	OpI32AtomicRmwSub:        {"i32.atomic.rmw.sub", ImmMemoryOffset, 2, 1},
	OpI64AtomicRmwSub:        {"i64.atomic.rmw.sub", ImmMemoryOffset, 2, 1},
	OpI32AtomicRmw8SubU:      {"i32.atomic.rmw8.sub_u", ImmMemoryOffset, 2, 1},
	OpI32AtomicRmw16SubU:     {"i32.atomic.rmw16.sub_u", ImmMemoryOffset, 2, 1},
	OpI64AtomicRmw8SubU:      {"i64.atomic.rmw8.sub_u", ImmMemoryOffset, 2, 1},
	OpI64AtomicRmw16SubU:     {"i64.atomic.rmw16.sub_u", ImmMemoryOffset, 2, 1},
	OpI64AtomicRmw32SubU:     {"i64.atomic.rmw32.sub_u", ImmMemoryOffset, 2, 1},
	OpI32AtomicRmwAnd:        {"i32.atomic.rmw.and", ImmMemoryOffset, 2, 1},
	OpI64AtomicRmwAnd:        {"i64.atomic.rmw.and", ImmMemoryOffset, 2, 1},
	OpI32AtomicRmw8AndU:      {"i32.atomic.rmw8.and_u", ImmMemoryOffset, 2, 1},
	OpI32AtomicRmw16AndU:     {"i32.atomic.rmw16.and_u", ImmMemoryOffset, 2, 1},
	OpI64AtomicRmw8AndU:      {"i64.atomic.rmw8.and_u", ImmMemoryOffset, 2, 1},
	OpI64AtomicRmw16AndU:     {"i64.atomic.rmw16.and_u", ImmMemoryOffset, 2, 1},
	OpI64AtomicRmw32AndU:     {"i64.atomic.rmw32.and_u", ImmMemoryOffset, 2, 1},
	OpI32AtomicRmwOr:         {"i32.atomic.rmw.or", ImmMemoryOffset, 2, 1},
	OpI64AtomicRmwOr:         {"i64.atomic.rmw.or", ImmMemoryOffset, 2, 1},
	OpI32AtomicRmw8OrU:       {"i32.atomic.rmw8.or_u", ImmMemoryOffset, 2, 1},
	OpI32AtomicRmw16OrU:      {"i32.atomic.rmw16.or_u", ImmMemoryOffset, 2, 1},
	OpI64AtomicRmw8OrU:       {"i64.atomic.rmw8.or_u", ImmMemoryOffset, 2, 1},
	OpI64AtomicRmw16OrU:      {"i64.atomic.rmw16.or_u", ImmMemoryOffset, 2, 1},
	OpI64AtomicRmw32OrU:      {"i64.atomic.rmw32.or_u", ImmMemoryOffset, 2, 1},
	OpI32AtomicRmwXor:        {"i32.atomic.rmw.xor", ImmMemoryOffset, 2, 1},
	OpI64AtomicRmwXor:        {"i64.atomic.rmw.xor", ImmMemoryOffset, 2, 1},
	OpI32AtomicRmw8XorU:      {"i32.atomic.rmw8.xor_u", ImmMemoryOffset, 2, 1},
	OpI32AtomicRmw16XorU:     {"i32.atomic.rmw16.xor_u", ImmMemoryOffset, 2, 1},
	OpI64AtomicRmw8XorU:      {"i64.atomic.rmw8.xor_u", ImmMemoryOffset, 2, 1},
	OpI64AtomicRmw16XorU:     {"i64.atomic.rmw16.xor_u", ImmMemoryOffset, 2, 1},
	OpI64AtomicRmw32XorU:     {"i64.atomic.rmw32.xor_u", ImmMemoryOffset, 2, 1},
	OpI32AtomicRmwXchg:       {"i32.atomic.rmw.xchg", ImmMemoryOffset, 2, 1},
	OpI64AtomicRmwXchg:       {"i64.atomic.rmw.xchg", ImmMemoryOffset, 2, 1},
	OpI32AtomicRmw8XchgU:     {"i32.atomic.rmw8.xchg_u", ImmMemoryOffset, 2, 1},
	OpI32AtomicRmw16XchgU:    {"i32.atomic.rmw16.xchg_u", ImmMemoryOffset, 2, 1},
	OpI64AtomicRmw8XchgU:     {"i64.atomic.rmw8.xchg_u", ImmMemoryOffset, 2, 1},
	OpI64AtomicRmw16XchgU:    {"i64.atomic.rmw16.xchg_u", ImmMemoryOffset, 2, 1},
	OpI64AtomicRmw32XchgU:    {"i64.atomic.rmw32.xchg_u", ImmMemoryOffset, 2, 1},
	OpI32AtomicRmwCmpxchg:    {"i32.atomic.rmw.cmpxchg", ImmMemoryOffset, 3, 1},
	OpI64AtomicRmwCmpxchg:    {"i64.atomic.rmw.cmpxchg", ImmMemoryOffset, 3, 1},
	OpI32AtomicRmw8CmpxchgU:  {"i32.atomic.rmw8.cmpxchg_u", ImmMemoryOffset, 3, 1},
	OpI32AtomicRmw16CmpxchgU: {"i32.atomic.rmw16.cmpxchg_u", ImmMemoryOffset, 3, 1},
	OpI64AtomicRmw8CmpxchgU:  {"i64.atomic.rmw8.cmpxchg_u", ImmMemoryOffset, 3, 1},
	OpI64AtomicRmw16CmpxchgU: {"i64.atomic.rmw16.cmpxchg_u", ImmMemoryOffset, 3, 1},
	OpI64AtomicRmw32CmpxchgU: {"i64.atomic.rmw32.cmpxchg_u", ImmMemoryOffset, 3, 1},

	OpV128Load:            {"v128.load", ImmMemoryOffset, 1, 1},
	OpV128Store:           {"v128.store", ImmMemoryOffset, 2, 0},
	OpV128Const:           {"v128.const", ImmV128, 0, 1},
	OpV8X16Shuffle:        {"v8x16.shuffle", ImmShuffle, 2, 1},
	OpI8X16Splat:          {"i8x16.splat", ImmNone, 1, 1},
	OpI16X8Splat:          {"i16x8.splat", ImmNone, 1, 1},
	OpI32X4Splat:          {"i32x4.splat", ImmNone, 1, 1},
	OpI64X2Splat:          {"i64x2.splat", ImmNone, 1, 1},
	OpF32X4Splat:          {"f32x4.splat", ImmNone, 1, 1},
	OpF64X2Splat:          {"f64x2.splat", ImmNone, 1, 1},
	OpI8X16ExtractLaneS:   {"i8x16.extract_lane_s", ImmLane, 1, 1},
	OpI8X16ExtractLaneU:   {"i8x16.extract_lane_u", ImmLane, 1, 1},
	OpI16X8ExtractLaneS:   {"i16x8.extract_lane_s", ImmLane, 1, 1},
	OpI16X8ExtractLaneU:   {"i16x8.extract_lane_u", ImmLane, 1, 1},
	OpI32X4ExtractLane:    {"i32x4.extract_lane", ImmLane, 1, 1},
	OpI64X2ExtractLane:    {"i64x2.extract_lane", ImmLane, 1, 1},
	OpF32X4ExtractLane:    {"f32x4.extract_lane", ImmLane, 1, 1},
	OpF64X2ExtractLane:    {"f64x2.extract_lane", ImmLane, 1, 1},
	OpI8X16ReplaceLane:    {"i8x16.replace_lane", ImmLane, 2, 1},
	OpI16X8ReplaceLane:    {"i16x8.replace_lane", ImmLane, 2, 1},
	OpI32X4ReplaceLane:    {"i32x4.replace_lane", ImmLane, 2, 1},
	OpI64X2ReplaceLane:    {"i64x2.replace_lane", ImmLane, 2, 1},
	OpF32X4ReplaceLane:    {"f32x4.replace_lane", ImmLane, 2, 1},
	OpF64X2ReplaceLane:    {"f64x2.replace_lane", ImmLane, 2, 1},
	OpI8X16Add:            {"i8x16.add", ImmNone, 2, 1},
	OpI16X8Add:            {"i16x8.add", ImmNone, 2, 1},
	OpI32X4Add:            {"i32x4.add", ImmNone, 2, 1},
	OpI64X2Add:            {"i64x2.add", ImmNone, 2, 1},
	OpI8X16Sub:            {"i8x16.sub", ImmNone, 2, 1},
	OpI16X8Sub:            {"i16x8.sub", ImmNone, 2, 1},
	OpI32X4Sub:            {"i32x4.sub", ImmNone, 2, 1},
	OpI64X2Sub:            {"i64x2.sub", ImmNone, 2, 1},
	OpI8X16Mul:            {"i8x16.mul", ImmNone, 2, 1},
	OpI16X8Mul:            {"i16x8.mul", ImmNone, 2, 1},
	OpI32X4Mul:            {"i32x4.mul", ImmNone, 2, 1},
	OpI8X16Neg:            {"i8x16.neg", ImmNone, 1, 1},
	OpI16X8Neg:            {"i16x8.neg", ImmNone, 1, 1},
	OpI32X4Neg:            {"i32x4.neg", ImmNone, 1, 1},
	OpI64X2Neg:            {"i64x2.neg", ImmNone, 1, 1},
	OpI8X16AddSaturateS:   {"i8x16.add_saturate_s", ImmNone, 2, 1},
	OpI8X16AddSaturateU:   {"i8x16.add_saturate_u", ImmNone, 2, 1},
	OpI16X8AddSaturateS:   {"i16x8.add_saturate_s", ImmNone, 2, 1},
	OpI16X8AddSaturateU:   {"i16x8.add_saturate_u", ImmNone, 2, 1},
	OpI8X16SubSaturateS:   {"i8x16.sub_saturate_s", ImmNone, 2, 1},
	OpI8X16SubSaturateU:   {"i8x16.sub_saturate_u", ImmNone, 2, 1},
	OpI16X8SubSaturateS:   {"i16x8.sub_saturate_s", ImmNone, 2, 1},
	OpI16X8SubSaturateU:   {"i16x8.sub_saturate_u", ImmNone, 2, 1},
	OpI8X16Shl:            {"i8x16.shl", ImmNone, 2, 1},
	OpI16X8Shl:            {"i16x8.shl", ImmNone, 2, 1},
	OpI32X4Shl:            {"i32x4.shl", ImmNone, 2, 1},
	OpI64X2Shl:            {"i64x2.shl", ImmNone, 2, 1},
	OpI8X16ShrS:           {"i8x16.shr_s", ImmNone, 2, 1},
	OpI8X16ShrU:           {"i8x16.shr_u", ImmNone, 2, 1},
	OpI16X8ShrS:           {"i16x8.shr_s", ImmNone, 2, 1},
	OpI16X8ShrU:           {"i16x8.shr_u", ImmNone, 2, 1},
	OpI32X4ShrS:           {"i32x4.shr_s", ImmNone, 2, 1},
	OpI32X4ShrU:           {"i32x4.shr_u", ImmNone, 2, 1},
	OpI64X2ShrS:           {"i64x2.shr_s", ImmNone, 2, 1},
	OpI64X2ShrU:           {"i64x2.shr_u", ImmNone, 2, 1},
	OpV128And:             {"v128.and", ImmNone, 2, 1},
	OpV128Or:              {"v128.or", ImmNone, 2, 1},
	OpV128Xor:             {"v128.xor", ImmNone, 2, 1},
	OpV128Not:             {"v128.not", ImmNone, 1, 1},
	OpV128BitSelect:       {"v128.bitselect", ImmNone, 3, 1},
	OpI8X16AnyTrue:        {"i8x16.any_true", ImmNone, 1, 1},
	OpI16X8AnyTrue:        {"i16x8.any_true", ImmNone, 1, 1},
	OpI32X4AnyTrue:        {"i32x4.any_true", ImmNone, 1, 1},
	OpI64X2AnyTrue:        {"i64x2.any_true", ImmNone, 1, 1},
	OpI8X16AllTrue:        {"i8x16.all_true", ImmNone, 1, 1},
	OpI16X8AllTrue:        {"i16x8.all_true", ImmNone, 1, 1},
	OpI32X4AllTrue:        {"i32x4.all_true", ImmNone, 1, 1},
	OpI64X2AllTrue:        {"i64x2.all_true", ImmNone, 1, 1},
	OpI8X16Eq:             {"i8x16.eq", ImmNone, 2, 1},
	OpI16X8Eq:             {"i16x8.eq", ImmNone, 2, 1},
	OpI32X4Eq:             {"i32x4.eq", ImmNone, 2, 1},
	OpF32X4Eq:             {"f32x4.eq", ImmNone, 2, 1},
	OpF64X2Eq:             {"f64x2.eq", ImmNone, 2, 1},
	OpI8X16Ne:             {"i8x16.ne", ImmNone, 2, 1},
	OpI16X8Ne:             {"i16x8.ne", ImmNone, 2, 1},
	OpI32X4Ne:             {"i32x4.ne", ImmNone, 2, 1},
	OpF32X4Ne:             {"f32x4.ne", ImmNone, 2, 1},
	OpF64X2Ne:             {"f64x2.ne", ImmNone, 2, 1},
	OpI8X16LtS:            {"i8x16.lt_s", ImmNone, 2, 1},
	OpI8X16LtU:            {"i8x16.lt_u", ImmNone, 2, 1},
	OpI16X8LtS:            {"i16x8.lt_s", ImmNone, 2, 1},
	OpI16X8LtU:            {"i16x8.lt_u", ImmNone, 2, 1},
	OpI32X4LtS:            {"i32x4.lt_s", ImmNone, 2, 1},
	OpI32X4LtU:            {"i32x4.lt_u", ImmNone, 2, 1},
	OpF32X4Lt:             {"f32x4.lt", ImmNone, 2, 1},
	OpF64X2Lt:             {"f64x2.lt", ImmNone, 2, 1},
	OpI8X16LeS:            {"i8x16.le_s", ImmNone, 2, 1},
	OpI8X16LeU:            {"i8x16.le_u", ImmNone, 2, 1},
	OpI16X8LeS:            {"i16x8.le_s", ImmNone, 2, 1},
	OpI16X8LeU:            {"i16x8.le_u", ImmNone, 2, 1},
	OpI32X4LeS:            {"i32x4.le_s", ImmNone, 2, 1},
	OpI32X4LeU:            {"i32x4.le_u", ImmNone, 2, 1},
	OpF32X4Le:             {"f32x4.le", ImmNone, 2, 1},
	OpF64X2Le:             {"f64x2.le", ImmNone, 2, 1},
	OpI8X16GtS:            {"i8x16.gt_s", ImmNone, 2, 1},
	OpI8X16GtU:            {"i8x16.gt_u", ImmNone, 2, 1},
	OpI16X8GtS:            {"i16x8.gt_s", ImmNone, 2, 1},
	OpI16X8GtU:            {"i16x8.gt_u", ImmNone, 2, 1},
	OpI32X4GtS:            {"i32x4.gt_s", ImmNone, 2, 1},
	OpI32X4GtU:            {"i32x4.gt_u", ImmNone, 2, 1},
	OpF32X4Gt:             {"f32x4.gt", ImmNone, 2, 1},
	OpF64X2Gt:             {"f64x2.gt", ImmNone, 2, 1},
	OpI8X16GeS:            {"i8x16.ge_s", ImmNone, 2, 1},
	OpI8X16GeU:            {"i8x16.ge_u", ImmNone, 2, 1},
	OpI16X8GeS:            {"i16x8.ge_s", ImmNone, 2, 1},
	OpI16X8GeU:            {"i16x8.ge_u", ImmNone, 2, 1},
	OpI32X4GeS:            {"i32x4.ge_s", ImmNone, 2, 1},
	OpI32X4GeU:            {"i32x4.ge_u", ImmNone, 2, 1},
	OpF32X4Ge:             {"f32x4.ge", ImmNone, 2, 1},
	OpF64X2Ge:             {"f64x2.ge", ImmNone, 2, 1},
	OpF32X4Neg:            {"f32x4.neg", ImmNone, 1, 1},
	OpF64X2Neg:            {"f64x2.neg", ImmNone, 1, 1},
	OpF32X4Abs:            {"f32x4.abs", ImmNone, 1, 1},
	OpF64X2Abs:            {"f64x2.abs", ImmNone, 1, 1},
	OpF32X4Min:            {"f32x4.min", ImmNone, 2, 1},
	OpF64X2Min:            {"f64x2.min", ImmNone, 2, 1},
	OpF32X4Max:            {"f32x4.max", ImmNone, 2, 1},
	OpF64X2Max:            {"f64x2.max", ImmNone, 2, 1},
	OpF32X4Add:            {"f32x4.add", ImmNone, 2, 1},
	OpF64X2Add:            {"f64x2.add", ImmNone, 2, 1},
	OpF32X4Sub:            {"f32x4.sub", ImmNone, 2, 1},
	OpF64X2Sub:            {"f64x2.sub", ImmNone, 2, 1},
	OpF32X4Div:            {"f32x4.div", ImmNone, 2, 1},
	OpF64X2Div:            {"f64x2.div", ImmNone, 2, 1},
	OpF32X4Mul:            {"f32x4.mul", ImmNone, 2, 1},
	OpF64X2Mul:            {"f64x2.mul", ImmNone, 2, 1},
	OpF32X4Sqrt:           {"f32x4.sqrt", ImmNone, 1, 1},
	OpF64X2Sqrt:           {"f64x2.sqrt", ImmNone, 1, 1},
	OpF32X4ConvertI32X4S:  {"f32x4.convert_i32x4_s", ImmNone, 1, 1},
	OpF32X4ConvertI32X4U:  {"f32x4.convert_i32x4_u", ImmNone, 1, 1},
	OpF64X2ConvertI64X2S:  {"f64x2.convert_i64x2_s", ImmNone, 1, 1},
	OpF64X2ConvertI64X2U:  {"f64x2.convert_i64x2_u", ImmNone, 1, 1},
	OpI32X4TruncSatF32X4S: {"i32x4.trunc_sat_f32x4_s", ImmNone, 1, 1},
	OpI32X4TruncSatF32X4U: {"i32x4.trunc_sat_f32x4_u", ImmNone, 1, 1},
	OpI64X2TruncSatF64X2S: {"i64x2.trunc_sat_f64x2_s", ImmNone, 1, 1},
	OpI64X2TruncSatF64X2U: {"i64x2.trunc_sat_f64x2_u", ImmNone, 1, 1},
}
