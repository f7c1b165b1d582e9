package cpu

// Op identifies the operation an Instruction performs. Operands that
// are fixed by the opcode are carried on the Instruction itself.
type Op uint8

const (
	OpNOP Op = iota
	OpDAA
	OpCPL
	OpSCF
	OpCCF
	OpDI
	OpEI

	OpJP
	OpJPCond
	OpJPHL
	OpJR
	OpJRCond
	OpCALL
	OpCALLCond
	OpRET
	OpRETCond
	OpRETI
	OpRST

	OpLD         // LD r, r'
	OpLDImm      // LD r, n
	OpLDFromPair // LD r, (rr)
	OpLDToPair   // LD (rr), r
	OpLDHLImm    // LD (HL), n
	OpLDIncHLA   // LD (HL+), A
	OpLDDecHLA   // LD (HL-), A
	OpLDAIncHL   // LD A, (HL+)
	OpLDADecHL   // LD A, (HL-)
	OpLDAAbs     // LD A, (nn)
	OpLDAbsA     // LD (nn), A
	OpLDHAbsA    // LDH (n), A
	OpLDHAAbs    // LDH A, (n)
	OpLDHCA      // LD (C), A
	OpLDHAC      // LD A, (C)
	OpLDPairImm  // LD rr, nn
	OpLDSPImm    // LD SP, nn
	OpLDAbsSP    // LD (nn), SP
	OpLDSPHL     // LD SP, HL
	OpLDHLSP     // LD HL, SP+e
	OpPUSH
	OpPOP

	OpADD
	OpADC
	OpSUB
	OpSBC
	OpAND
	OpXOR
	OpOR
	OpCP
	OpINC
	OpDEC
	OpINCPair
	OpDECPair
	OpINCSP
	OpDECSP
	OpADDHL
	OpADDHLSP
	OpADDSP

	OpRLCA
	OpRRCA
	OpRLA
	OpRRA

	OpPrefixCB
	OpRLC
	OpRRC
	OpRL
	OpRR
	OpSLA
	OpSRA
	OpSWAP
	OpSRL
	OpBIT
	OpRES
	OpSET

	opCount
)

var opNames = [opCount]string{
	OpNOP: "NOP", OpDAA: "DAA", OpCPL: "CPL", OpSCF: "SCF", OpCCF: "CCF", OpDI: "DI", OpEI: "EI",
	OpJP: "JP", OpJPCond: "JP cc", OpJPHL: "JP HL", OpJR: "JR", OpJRCond: "JR cc",
	OpCALL: "CALL", OpCALLCond: "CALL cc", OpRET: "RET", OpRETCond: "RET cc", OpRETI: "RETI", OpRST: "RST",
	OpLD: "LD r,r", OpLDImm: "LD r,n", OpLDFromPair: "LD r,(rr)", OpLDToPair: "LD (rr),r",
	OpLDHLImm: "LD (HL),n", OpLDIncHLA: "LD (HL+),A", OpLDDecHLA: "LD (HL-),A",
	OpLDAIncHL: "LD A,(HL+)", OpLDADecHL: "LD A,(HL-)", OpLDAAbs: "LD A,(nn)", OpLDAbsA: "LD (nn),A",
	OpLDHAbsA: "LDH (n),A", OpLDHAAbs: "LDH A,(n)", OpLDHCA: "LD (C),A", OpLDHAC: "LD A,(C)",
	OpLDPairImm: "LD rr,nn", OpLDSPImm: "LD SP,nn", OpLDAbsSP: "LD (nn),SP", OpLDSPHL: "LD SP,HL",
	OpLDHLSP: "LD HL,SP+e", OpPUSH: "PUSH", OpPOP: "POP",
	OpADD: "ADD", OpADC: "ADC", OpSUB: "SUB", OpSBC: "SBC", OpAND: "AND", OpXOR: "XOR", OpOR: "OR", OpCP: "CP",
	OpINC: "INC", OpDEC: "DEC", OpINCPair: "INC rr", OpDECPair: "DEC rr", OpINCSP: "INC SP", OpDECSP: "DEC SP",
	OpADDHL: "ADD HL,rr", OpADDHLSP: "ADD HL,SP", OpADDSP: "ADD SP,e",
	OpRLCA: "RLCA", OpRRCA: "RRCA", OpRLA: "RLA", OpRRA: "RRA",
	OpPrefixCB: "PREFIX CB", OpRLC: "RLC", OpRRC: "RRC", OpRL: "RL", OpRR: "RR",
	OpSLA: "SLA", OpSRA: "SRA", OpSWAP: "SWAP", OpSRL: "SRL", OpBIT: "BIT", OpRES: "RES", OpSET: "SET",
}

func (o Op) String() string {
	if o < opCount {
		return opNames[o]
	}
	return "OP?"
}

// Source is where an 8-bit operand comes from, or goes to.
type Source uint8

const (
	// SrcRegister is the register named by Instruction.Reg.
	SrcRegister Source = iota
	// SrcIndirect is the byte addressed by HL.
	SrcIndirect
	// SrcImmediate is the byte following the opcode.
	SrcImmediate
)

// Instruction is a decoded opcode. Values are immutable once built;
// Decode hands out copies.
type Instruction struct {
	Op   Op
	Name string
	// Length is the encoded size in bytes, including any prefix.
	Length uint8
	// Cycles is the cost in machine cycles when no branch is taken.
	Cycles uint8

	Reg    Reg8
	Reg2   Reg8
	Pair   Reg16
	Cond   Condition
	Vector uint16
	Bit    uint8
	Src    Source
}

func (i Instruction) String() string {
	return i.Name
}
