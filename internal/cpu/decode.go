package cpu

import "fmt"

const (
	tablePrimary = "primary"
	tableCB      = "CB"
)

var (
	// InstructionSet holds the primary opcodes. Entries with a zero
	// Length are undefined.
	InstructionSet [256]Instruction
	// InstructionSetCB holds the opcodes that follow a 0xCB prefix.
	InstructionSetCB [256]Instruction
)

// Decode returns the primary table entry for opcode. It panics with an
// *UnknownOpcodeError when the opcode is undefined.
func Decode(opcode uint8) Instruction {
	in := InstructionSet[opcode]
	if in.Length == 0 {
		panic(&UnknownOpcodeError{Table: tablePrimary, Opcode: opcode})
	}
	return in
}

// DecodeCB returns the CB table entry for the byte after a prefix.
func DecodeCB(opcode uint8) Instruction {
	in := InstructionSetCB[opcode]
	if in.Length == 0 {
		panic(&UnknownOpcodeError{Table: tableCB, Opcode: opcode})
	}
	return in
}

// DefineInstruction adds an instruction to the primary table.
func DefineInstruction(opcode uint8, in Instruction) {
	InstructionSet[opcode] = in
}

// DefineInstructionCB adds an instruction to the CB table.
func DefineInstructionCB(opcode uint8, in Instruction) {
	InstructionSetCB[opcode] = in
}

// register operands in the order they are encoded in opcode bits,
// index 6 is (HL)
var r8 = [8]Reg8{RegB, RegC, RegD, RegE, RegH, RegL, 0, RegA}

const indirectHL = 6

var (
	rp       = [3]Reg16{RegBC, RegDE, RegHL}
	rpStack  = [4]Reg16{RegBC, RegDE, RegHL, RegAF}
	aluOps   = [8]Op{OpADD, OpADC, OpSUB, OpSBC, OpAND, OpXOR, OpOR, OpCP}
	aluNames = [8]string{"ADD A,", "ADC A,", "SUB ", "SBC A,", "AND ", "XOR ", "OR ", "CP "}
	rotOps   = [8]Op{OpRLC, OpRRC, OpRL, OpRR, OpSLA, OpSRA, OpSWAP, OpSRL}
)

func operandName(z uint8) string {
	if z == indirectHL {
		return "(HL)"
	}
	return r8[z].String()
}

func init() {
	definePrimary()
	defineCB()
}

func definePrimary() {
	// 0x00 - 0x3F
	DefineInstruction(0x00, Instruction{Op: OpNOP, Name: "NOP", Length: 1, Cycles: 1})
	DefineInstruction(0x08, Instruction{Op: OpLDAbsSP, Name: "LD (nn),SP", Length: 3, Cycles: 5})
	DefineInstruction(0x18, Instruction{Op: OpJR, Name: "JR e", Length: 2, Cycles: 3})
	for cc := uint8(0); cc < 4; cc++ {
		DefineInstruction(0x20|cc<<3, Instruction{
			Op: OpJRCond, Name: fmt.Sprintf("JR %s,e", Condition(cc)), Length: 2, Cycles: 2, Cond: Condition(cc),
		})
	}

	for p := uint8(0); p < 4; p++ {
		if p == 3 {
			DefineInstruction(0x31, Instruction{Op: OpLDSPImm, Name: "LD SP,nn", Length: 3, Cycles: 3})
			DefineInstruction(0x39, Instruction{Op: OpADDHLSP, Name: "ADD HL,SP", Length: 1, Cycles: 2})
			DefineInstruction(0x33, Instruction{Op: OpINCSP, Name: "INC SP", Length: 1, Cycles: 2})
			DefineInstruction(0x3B, Instruction{Op: OpDECSP, Name: "DEC SP", Length: 1, Cycles: 2})
			continue
		}
		pair := rp[p]
		DefineInstruction(0x01|p<<4, Instruction{Op: OpLDPairImm, Name: fmt.Sprintf("LD %s,nn", pair), Length: 3, Cycles: 3, Pair: pair})
		DefineInstruction(0x09|p<<4, Instruction{Op: OpADDHL, Name: fmt.Sprintf("ADD HL,%s", pair), Length: 1, Cycles: 2, Pair: pair})
		DefineInstruction(0x03|p<<4, Instruction{Op: OpINCPair, Name: fmt.Sprintf("INC %s", pair), Length: 1, Cycles: 2, Pair: pair})
		DefineInstruction(0x0B|p<<4, Instruction{Op: OpDECPair, Name: fmt.Sprintf("DEC %s", pair), Length: 1, Cycles: 2, Pair: pair})
	}

	DefineInstruction(0x02, Instruction{Op: OpLDToPair, Name: "LD (BC),A", Length: 1, Cycles: 2, Pair: RegBC, Reg: RegA})
	DefineInstruction(0x12, Instruction{Op: OpLDToPair, Name: "LD (DE),A", Length: 1, Cycles: 2, Pair: RegDE, Reg: RegA})
	DefineInstruction(0x22, Instruction{Op: OpLDIncHLA, Name: "LD (HL+),A", Length: 1, Cycles: 2})
	DefineInstruction(0x32, Instruction{Op: OpLDDecHLA, Name: "LD (HL-),A", Length: 1, Cycles: 2})
	DefineInstruction(0x0A, Instruction{Op: OpLDFromPair, Name: "LD A,(BC)", Length: 1, Cycles: 2, Pair: RegBC, Reg: RegA})
	DefineInstruction(0x1A, Instruction{Op: OpLDFromPair, Name: "LD A,(DE)", Length: 1, Cycles: 2, Pair: RegDE, Reg: RegA})
	DefineInstruction(0x2A, Instruction{Op: OpLDAIncHL, Name: "LD A,(HL+)", Length: 1, Cycles: 2})
	DefineInstruction(0x3A, Instruction{Op: OpLDADecHL, Name: "LD A,(HL-)", Length: 1, Cycles: 2})

	for y := uint8(0); y < 8; y++ {
		name := operandName(y)
		if y == indirectHL {
			DefineInstruction(0x34, Instruction{Op: OpINC, Name: "INC (HL)", Length: 1, Cycles: 3, Src: SrcIndirect})
			DefineInstruction(0x35, Instruction{Op: OpDEC, Name: "DEC (HL)", Length: 1, Cycles: 3, Src: SrcIndirect})
			DefineInstruction(0x36, Instruction{Op: OpLDHLImm, Name: "LD (HL),n", Length: 2, Cycles: 3})
			continue
		}
		DefineInstruction(0x04|y<<3, Instruction{Op: OpINC, Name: "INC " + name, Length: 1, Cycles: 1, Reg: r8[y]})
		DefineInstruction(0x05|y<<3, Instruction{Op: OpDEC, Name: "DEC " + name, Length: 1, Cycles: 1, Reg: r8[y]})
		DefineInstruction(0x06|y<<3, Instruction{Op: OpLDImm, Name: "LD " + name + ",n", Length: 2, Cycles: 2, Reg: r8[y]})
	}

	misc := [8]Instruction{
		{Op: OpRLCA, Name: "RLCA"}, {Op: OpRRCA, Name: "RRCA"}, {Op: OpRLA, Name: "RLA"}, {Op: OpRRA, Name: "RRA"},
		{Op: OpDAA, Name: "DAA"}, {Op: OpCPL, Name: "CPL"}, {Op: OpSCF, Name: "SCF"}, {Op: OpCCF, Name: "CCF"},
	}
	for y, in := range misc {
		in.Length, in.Cycles = 1, 1
		DefineInstruction(0x07|uint8(y)<<3, in)
	}

	// 0x40 - 0x7F, 0x76 is HALT
	for op := 0x40; op < 0x80; op++ {
		dst, src := uint8(op>>3&7), uint8(op&7)
		name := fmt.Sprintf("LD %s,%s", operandName(dst), operandName(src))
		switch {
		case dst == indirectHL && src == indirectHL:
			continue
		case dst == indirectHL:
			DefineInstruction(uint8(op), Instruction{Op: OpLDToPair, Name: name, Length: 1, Cycles: 2, Pair: RegHL, Reg: r8[src]})
		case src == indirectHL:
			DefineInstruction(uint8(op), Instruction{Op: OpLDFromPair, Name: name, Length: 1, Cycles: 2, Pair: RegHL, Reg: r8[dst]})
		default:
			DefineInstruction(uint8(op), Instruction{Op: OpLD, Name: name, Length: 1, Cycles: 1, Reg: r8[dst], Reg2: r8[src]})
		}
	}

	// 0x80 - 0xBF, and the immediate forms at 0xC6 - 0xFE
	for op := 0x80; op < 0xC0; op++ {
		alu, src := op>>3&7, uint8(op&7)
		in := Instruction{Op: aluOps[alu], Name: aluNames[alu] + operandName(src), Length: 1, Cycles: 1, Reg: r8[src]}
		if src == indirectHL {
			in.Src, in.Cycles, in.Reg = SrcIndirect, 2, 0
		}
		DefineInstruction(uint8(op), in)
	}
	for alu := uint8(0); alu < 8; alu++ {
		DefineInstruction(0xC6|alu<<3, Instruction{Op: aluOps[alu], Name: aluNames[alu] + "n", Length: 2, Cycles: 2, Src: SrcImmediate})
	}

	// 0xC0 - 0xFF
	for cc := uint8(0); cc < 4; cc++ {
		cond := Condition(cc)
		DefineInstruction(0xC0|cc<<3, Instruction{Op: OpRETCond, Name: fmt.Sprintf("RET %s", cond), Length: 1, Cycles: 2, Cond: cond})
		DefineInstruction(0xC2|cc<<3, Instruction{Op: OpJPCond, Name: fmt.Sprintf("JP %s,nn", cond), Length: 3, Cycles: 3, Cond: cond})
		DefineInstruction(0xC4|cc<<3, Instruction{Op: OpCALLCond, Name: fmt.Sprintf("CALL %s,nn", cond), Length: 3, Cycles: 3, Cond: cond})
	}
	for p, pair := range rpStack {
		DefineInstruction(0xC1|uint8(p)<<4, Instruction{Op: OpPOP, Name: fmt.Sprintf("POP %s", pair), Length: 1, Cycles: 3, Pair: pair})
		DefineInstruction(0xC5|uint8(p)<<4, Instruction{Op: OpPUSH, Name: fmt.Sprintf("PUSH %s", pair), Length: 1, Cycles: 4, Pair: pair})
	}
	for y := uint16(0); y < 8; y++ {
		DefineInstruction(0xC7|uint8(y)<<3, Instruction{Op: OpRST, Name: fmt.Sprintf("RST %02XH", y*8), Length: 1, Cycles: 4, Vector: y * 8})
	}

	DefineInstruction(0xC3, Instruction{Op: OpJP, Name: "JP nn", Length: 3, Cycles: 4})
	DefineInstruction(0xC9, Instruction{Op: OpRET, Name: "RET", Length: 1, Cycles: 4})
	DefineInstruction(0xCB, Instruction{Op: OpPrefixCB, Name: "PREFIX CB", Length: 2, Cycles: 1})
	DefineInstruction(0xCD, Instruction{Op: OpCALL, Name: "CALL nn", Length: 3, Cycles: 6})
	DefineInstruction(0xD9, Instruction{Op: OpRETI, Name: "RETI", Length: 1, Cycles: 4})
	DefineInstruction(0xE0, Instruction{Op: OpLDHAbsA, Name: "LDH (n),A", Length: 2, Cycles: 3})
	DefineInstruction(0xE2, Instruction{Op: OpLDHCA, Name: "LD (C),A", Length: 1, Cycles: 2})
	DefineInstruction(0xE8, Instruction{Op: OpADDSP, Name: "ADD SP,e", Length: 2, Cycles: 4})
	DefineInstruction(0xE9, Instruction{Op: OpJPHL, Name: "JP HL", Length: 1, Cycles: 1})
	DefineInstruction(0xEA, Instruction{Op: OpLDAbsA, Name: "LD (nn),A", Length: 3, Cycles: 4})
	DefineInstruction(0xF0, Instruction{Op: OpLDHAAbs, Name: "LDH A,(n)", Length: 2, Cycles: 3})
	DefineInstruction(0xF2, Instruction{Op: OpLDHAC, Name: "LD A,(C)", Length: 1, Cycles: 2})
	DefineInstruction(0xF3, Instruction{Op: OpDI, Name: "DI", Length: 1, Cycles: 1})
	DefineInstruction(0xF8, Instruction{Op: OpLDHLSP, Name: "LD HL,SP+e", Length: 2, Cycles: 3})
	DefineInstruction(0xF9, Instruction{Op: OpLDSPHL, Name: "LD SP,HL", Length: 1, Cycles: 2})
	DefineInstruction(0xFA, Instruction{Op: OpLDAAbs, Name: "LD A,(nn)", Length: 3, Cycles: 4})
	DefineInstruction(0xFB, Instruction{Op: OpEI, Name: "EI", Length: 1, Cycles: 1})
}

func defineCB() {
	rotNames := [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SWAP", "SRL"}

	for op := 0; op < 0x100; op++ {
		x, y, z := op>>6, uint8(op>>3&7), uint8(op&7)
		in := Instruction{Length: 2, Cycles: 2, Reg: r8[z]}
		if z == indirectHL {
			in.Src, in.Cycles, in.Reg = SrcIndirect, 4, 0
		}

		switch x {
		case 0:
			in.Op, in.Name = rotOps[y], rotNames[y]+" "+operandName(z)
		case 1:
			in.Op, in.Bit, in.Name = OpBIT, y, fmt.Sprintf("BIT %d,%s", y, operandName(z))
			if z == indirectHL {
				in.Cycles = 3
			}
		case 2:
			in.Op, in.Bit, in.Name = OpRES, y, fmt.Sprintf("RES %d,%s", y, operandName(z))
		case 3:
			in.Op, in.Bit, in.Name = OpSET, y, fmt.Sprintf("SET %d,%s", y, operandName(z))
		}

		DefineInstructionCB(uint8(op), in)
	}
}
