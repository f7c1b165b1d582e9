package cpu

// handler executes a decoded instruction. Operand bytes following the
// opcode are fetched by the handler itself.
type handler func(c *CPU, in Instruction)

// handlers is indexed by Op. It is filled in init so that the CB prefix
// handler may dispatch through it.
var handlers [opCount]handler

func init() {
	handlers = [opCount]handler{
		OpNOP: func(*CPU, Instruction) {},
		OpDAA: (*CPU).decimalAdjust,
		OpCPL: (*CPU).complement,
		OpSCF: func(c *CPU, _ Instruction) { c.F.Set(c.F.Zero(), false, false, true) },
		OpCCF: func(c *CPU, _ Instruction) { c.F.Set(c.F.Zero(), false, false, !c.F.Carry()) },
		OpDI:  func(c *CPU, _ Instruction) { c.ime = false },
		OpEI:  func(c *CPU, _ Instruction) { c.ime = true },

		OpJP:       (*CPU).jumpAbsolute,
		OpJPCond:   (*CPU).jumpAbsoluteConditional,
		OpJPHL:     func(c *CPU, _ Instruction) { c.PC.Set(c.HL()) },
		OpJR:       (*CPU).jumpRelative,
		OpJRCond:   (*CPU).jumpRelativeConditional,
		OpCALL:     (*CPU).call,
		OpCALLCond: (*CPU).callConditional,
		OpRET:      (*CPU).ret,
		OpRETCond:  (*CPU).retConditional,
		OpRETI:     (*CPU).retInterrupt,
		OpRST:      (*CPU).restart,

		OpLD:         func(c *CPU, in Instruction) { c.Set(in.Reg, c.Get(in.Reg2)) },
		OpLDImm:      func(c *CPU, in Instruction) { c.Set(in.Reg, c.fetch()) },
		OpLDFromPair: func(c *CPU, in Instruction) { c.Set(in.Reg, c.bus.Read(c.Pair(in.Pair))) },
		OpLDToPair:   func(c *CPU, in Instruction) { c.bus.Write(c.Pair(in.Pair), c.Get(in.Reg)) },
		OpLDHLImm:    func(c *CPU, _ Instruction) { c.bus.Write(c.HL(), c.fetch()) },
		OpLDIncHLA:   (*CPU).loadIncrementHLA,
		OpLDDecHLA:   (*CPU).loadDecrementHLA,
		OpLDAIncHL:   (*CPU).loadAIncrementHL,
		OpLDADecHL:   (*CPU).loadADecrementHL,
		OpLDAAbs:     func(c *CPU, _ Instruction) { c.A = c.bus.Read(c.fetch16()) },
		OpLDAbsA:     func(c *CPU, _ Instruction) { c.bus.Write(c.fetch16(), c.A) },
		OpLDHAbsA:    func(c *CPU, _ Instruction) { c.bus.Write(highPage|uint16(c.fetch()), c.A) },
		OpLDHAAbs:    func(c *CPU, _ Instruction) { c.A = c.bus.Read(highPage | uint16(c.fetch())) },
		OpLDHCA:      func(c *CPU, _ Instruction) { c.bus.Write(highPage|uint16(c.C), c.A) },
		OpLDHAC:      func(c *CPU, _ Instruction) { c.A = c.bus.Read(highPage | uint16(c.C)) },
		OpLDPairImm:  func(c *CPU, in Instruction) { c.SetPair(in.Pair, c.fetch16()) },
		OpLDSPImm:    func(c *CPU, _ Instruction) { c.SP = c.fetch16() },
		OpLDAbsSP:    (*CPU).loadAbsoluteSP,
		OpLDSPHL:     func(c *CPU, _ Instruction) { c.SP = c.HL() },
		OpLDHLSP:     func(c *CPU, _ Instruction) { c.SetHL(c.addSPSigned(int8(c.fetch()))) },
		OpPUSH:       func(c *CPU, in Instruction) { c.push(c.Pair(in.Pair)) },
		OpPOP:        func(c *CPU, in Instruction) { c.SetPair(in.Pair, c.pop()) },

		OpADD:     func(c *CPU, in Instruction) { c.add(c.operand(in), false) },
		OpADC:     func(c *CPU, in Instruction) { c.add(c.operand(in), true) },
		OpSUB:     func(c *CPU, in Instruction) { c.sub(c.operand(in), false) },
		OpSBC:     func(c *CPU, in Instruction) { c.sub(c.operand(in), true) },
		OpAND:     func(c *CPU, in Instruction) { c.and(c.operand(in)) },
		OpXOR:     func(c *CPU, in Instruction) { c.xor(c.operand(in)) },
		OpOR:      func(c *CPU, in Instruction) { c.or(c.operand(in)) },
		OpCP:      func(c *CPU, in Instruction) { c.compare(c.operand(in)) },
		OpINC:     func(c *CPU, in Instruction) { c.setOperand(in, c.increment(c.operand(in))) },
		OpDEC:     func(c *CPU, in Instruction) { c.setOperand(in, c.decrement(c.operand(in))) },
		OpINCPair: func(c *CPU, in Instruction) { c.SetPair(in.Pair, c.Pair(in.Pair)+1) },
		OpDECPair: func(c *CPU, in Instruction) { c.SetPair(in.Pair, c.Pair(in.Pair)-1) },
		OpINCSP:   func(c *CPU, _ Instruction) { c.SP++ },
		OpDECSP:   func(c *CPU, _ Instruction) { c.SP-- },
		OpADDHL:   func(c *CPU, in Instruction) { c.addHL(c.Pair(in.Pair)) },
		OpADDHLSP: func(c *CPU, _ Instruction) { c.addHL(c.SP) },
		OpADDSP:   func(c *CPU, _ Instruction) { c.SP = c.addSPSigned(int8(c.fetch())) },

		OpRLCA: func(c *CPU, _ Instruction) { c.rotateAccumulator((*CPU).rotateLeftCarry) },
		OpRRCA: func(c *CPU, _ Instruction) { c.rotateAccumulator((*CPU).rotateRightCarry) },
		OpRLA:  func(c *CPU, _ Instruction) { c.rotateAccumulator((*CPU).rotateLeft) },
		OpRRA:  func(c *CPU, _ Instruction) { c.rotateAccumulator((*CPU).rotateRight) },

		OpPrefixCB: (*CPU).prefixCB,
		OpRLC:      func(c *CPU, in Instruction) { c.setOperand(in, c.rotateLeftCarry(c.operand(in))) },
		OpRRC:      func(c *CPU, in Instruction) { c.setOperand(in, c.rotateRightCarry(c.operand(in))) },
		OpRL:       func(c *CPU, in Instruction) { c.setOperand(in, c.rotateLeft(c.operand(in))) },
		OpRR:       func(c *CPU, in Instruction) { c.setOperand(in, c.rotateRight(c.operand(in))) },
		OpSLA:      func(c *CPU, in Instruction) { c.setOperand(in, c.shiftLeftArithmetic(c.operand(in))) },
		OpSRA:      func(c *CPU, in Instruction) { c.setOperand(in, c.shiftRightArithmetic(c.operand(in))) },
		OpSWAP:     func(c *CPU, in Instruction) { c.setOperand(in, c.swap(c.operand(in))) },
		OpSRL:      func(c *CPU, in Instruction) { c.setOperand(in, c.shiftRightLogical(c.operand(in))) },
		OpBIT:      func(c *CPU, in Instruction) { c.testBit(in.Bit, c.operand(in)) },
		OpRES:      func(c *CPU, in Instruction) { c.setOperand(in, resetBit(in.Bit, c.operand(in))) },
		OpSET:      func(c *CPU, in Instruction) { c.setOperand(in, setBit(in.Bit, c.operand(in))) },
	}
}

// highPage is the base of the LDH addressing modes.
const highPage uint16 = 0xFF00

// operand returns the 8-bit operand selected by in.Src.
func (c *CPU) operand(in Instruction) uint8 {
	switch in.Src {
	case SrcIndirect:
		return c.bus.Read(c.HL())
	case SrcImmediate:
		return c.fetch()
	default:
		return c.Get(in.Reg)
	}
}

// setOperand writes back to a register or (HL) operand.
func (c *CPU) setOperand(in Instruction, value uint8) {
	if in.Src == SrcIndirect {
		c.bus.Write(c.HL(), value)
		return
	}
	c.Set(in.Reg, value)
}

// prefixCB fetches the byte following 0xCB and executes it from the CB
// table. The CB entry's cycle count includes the prefix.
func (c *CPU) prefixCB(Instruction) {
	ext := c.fetch()
	in := DecodeCB(ext)
	if c.Debug {
		c.Log.Debugf("CB Opcode: 0x%02X | Instruction: %s", ext, in.Name)
	}
	c.stepCycles = in.Cycles
	c.execute(in)
}
