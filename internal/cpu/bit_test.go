package cpu

import "testing"

func TestCPU_CB(t *testing.T) {
	tests := []struct {
		name    string
		program []uint8
		steps   int
		a       uint8
		flags   uint8
	}{
		{"SWAP A", []uint8{0x3E, 0xF1, 0xCB, 0x37}, 2, 0x1F, 0x00},
		{"SWAP zero", []uint8{0x3E, 0x00, 0xCB, 0x37}, 2, 0x00, 0x80},
		{"RLC A", []uint8{0x3E, 0x85, 0xCB, 0x07}, 2, 0x0B, 0x10},
		{"RRC A", []uint8{0x3E, 0x01, 0xCB, 0x0F}, 2, 0x80, 0x10},
		{"RL A", []uint8{0x37, 0x3E, 0x80, 0xCB, 0x17}, 3, 0x01, 0x10},
		{"RR A", []uint8{0x3E, 0x01, 0xCB, 0x1F}, 2, 0x00, 0x90},
		{"SLA A", []uint8{0x3E, 0x81, 0xCB, 0x27}, 2, 0x02, 0x10},
		{"SRA A", []uint8{0x3E, 0x81, 0xCB, 0x2F}, 2, 0xC0, 0x10},
		{"SRL A", []uint8{0x3E, 0x81, 0xCB, 0x3F}, 2, 0x40, 0x10},
		{"BIT 7,A set", []uint8{0x3E, 0x80, 0xCB, 0x7F}, 2, 0x80, 0x20},
		{"BIT 0,A clear", []uint8{0x3E, 0x80, 0xCB, 0x47}, 2, 0x80, 0xA0},
		{"RES 7,A", []uint8{0x3E, 0xFF, 0xCB, 0xBF}, 2, 0x7F, 0x00},
		{"SET 0,A", []uint8{0x3E, 0x00, 0xCB, 0xC7}, 2, 0x01, 0x00},
		{"RLCA", []uint8{0x3E, 0x85, 0x07}, 2, 0x0B, 0x10},
		{"RLA resets Z", []uint8{0x3E, 0x80, 0x17}, 2, 0x00, 0x10},
		{"RRCA", []uint8{0x3E, 0x01, 0x0F}, 2, 0x80, 0x10},
		{"RRA", []uint8{0x37, 0x3E, 0x00, 0x1F}, 3, 0x80, 0x00},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestCPU(tt.program...)
			stepN(c, tt.steps)

			if c.A != tt.a {
				t.Errorf("expected A to be 0x%02X, got 0x%02X", tt.a, c.A)
			}
			if c.F.Byte() != tt.flags {
				t.Errorf("expected flags to be 0x%02X, got 0x%02X (%s)", tt.flags, c.F.Byte(), c.F)
			}
		})
	}
}

func TestCPU_CBIndirect(t *testing.T) {
	c, bus := newTestCPU(
		0x21, 0x00, 0xC0, // LD HL, 0xC000
		0xCB, 0x7E, // BIT 7, (HL)
		0xCB, 0xC6, // SET 0, (HL)
		0xCB, 0x3E, // SRL (HL)
		0x34, // INC (HL)
	)
	bus.mem[0xC000] = 0x80
	c.Step()

	if cycles := c.Step(); cycles != 3 {
		t.Errorf("expected BIT b, (HL) to take 3 cycles, got %d", cycles)
	}
	if c.F.Zero() {
		t.Errorf("expected Z to be reset for a set bit")
	}
	if cycles := c.Step(); cycles != 4 || bus.mem[0xC000] != 0x81 {
		t.Errorf("expected SET 0, (HL) to give 0x81 in 4 cycles, got 0x%02X in %d", bus.mem[0xC000], cycles)
	}
	c.Step()
	if bus.mem[0xC000] != 0x40 || !c.F.Carry() {
		t.Errorf("expected SRL (HL) to give 0x40 with carry, got 0x%02X %s", bus.mem[0xC000], c.F)
	}
	if cycles := c.Step(); cycles != 3 || bus.mem[0xC000] != 0x41 {
		t.Errorf("expected INC (HL) to give 0x41 in 3 cycles, got 0x%02X in %d", bus.mem[0xC000], cycles)
	}
	if c.PC.Get() != 0x010A {
		t.Errorf("expected PC to be 0x010A, got 0x%04X", c.PC.Get())
	}
}
