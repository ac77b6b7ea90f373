package riscv

import "testing"

func TestSext(t *testing.T) {
	tests := []struct {
		name string
		v    uint64
		n    uint
		want int64
	}{
		{"12-bit positive", 0x001, 12, 1},
		{"12-bit negative (all ones)", 0xFFF, 12, -1},
		{"12-bit most-negative", 0x800, 12, -2048},
		{"6-bit zero", 0, 6, 0},
		{"6-bit negative", 0x3F, 6, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sext(tt.v, tt.n); got != tt.want {
				t.Errorf("sext(%#x, %d) = %d, want %d", tt.v, tt.n, got, tt.want)
			}
		})
	}
}

func TestFieldsImmI(t *testing.T) {
	// addi ra, zero, 1: word 0x00100093; top bit of the 12-bit field is 0.
	f := decodeFields(0x00100093)
	if got := f.immI(); got != 1 {
		t.Errorf("immI() = %d, want 1", got)
	}
}

func TestFieldsImmINegative(t *testing.T) {
	// addi x0, x0, -1: imm field all ones (0xFFF) in bits [31:20].
	f := decodeFields(0xFFF00013)
	if got := f.immI(); got != -1 {
		t.Errorf("immI() = %d, want -1", got)
	}
}

func TestFieldsImmU(t *testing.T) {
	// lui zero, 0x12345: word 0x12345037.
	f := decodeFields(0x12345037)
	if got := f.immU(); got != 0x12345000 {
		t.Errorf("immU() = %#x, want 0x12345000", got)
	}
}

func TestDecodeCFieldsQuadrantAndFunct3(t *testing.T) {
	// c.addi a0, 1: word 0x0505.
	c := decodeCFields(0x0505)
	if c.opcode != 0b01 {
		t.Errorf("opcode = %b, want 01", c.opcode)
	}
	if c.funct3 != 0b000 {
		t.Errorf("funct3 = %b, want 000", c.funct3)
	}
	if c.rdFull != 10 {
		t.Errorf("rdFull = %d, want 10 (a0)", c.rdFull)
	}
	if got := c.immCI(); got != 1 {
		t.Errorf("immCI() = %d, want 1", got)
	}
}

func TestThreeBitRegisterMapping(t *testing.T) {
	for v := uint32(0); v < 8; v++ {
		if got := threeBit(v); got != uint8(8+v) {
			t.Errorf("threeBit(%d) = %d, want %d", v, got, 8+v)
		}
	}
}
