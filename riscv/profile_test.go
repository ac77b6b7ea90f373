package riscv

import "testing"

func TestNewProfileValidation(t *testing.T) {
	if _, err := NewProfile(16, ExtI); err == nil {
		t.Error("expected an error for xlen=16")
	}
	if _, err := NewProfile(32, ExtM); err == nil {
		t.Error("expected an error for a profile without I")
	}
	p, err := NewProfile(64, ExtI|ExtD)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.Extensions.has(ExtF) {
		t.Error("D must imply F")
	}
}

func TestPresets(t *testing.T) {
	p32 := ProfileRV32GC()
	if p32.XLEN != 32 {
		t.Errorf("RV32GC xlen = %d, want 32", p32.XLEN)
	}
	for _, bit := range []Extensions{ExtI, ExtM, ExtA, ExtF, ExtC, ExtZicsr, ExtZicntr} {
		if !p32.Extensions.has(bit) {
			t.Errorf("RV32GC missing extension bit %#x", bit)
		}
	}
	if p32.Extensions.has(ExtD) {
		t.Error("RV32GC must not carry D")
	}
	if p32.Extensions.has(ExtXTheadCondMov) {
		t.Error("vendor extensions are opt-in, not part of a preset")
	}

	p64 := ProfileRV64GC()
	if p64.XLEN != 64 {
		t.Errorf("RV64GC xlen = %d, want 64", p64.XLEN)
	}
	if !p64.Extensions.has(ExtD) {
		t.Error("RV64GC must carry D")
	}
}

func TestParseExtension(t *testing.T) {
	tests := []struct {
		name string
		want Extensions
	}{
		{"i", ExtI}, {"I", ExtI}, {"m", ExtM}, {"ZICSR", ExtZicsr},
		{"zicntr", ExtZicntr}, {"xtheadcondmov", ExtXTheadCondMov},
		{"th.condmov", ExtXTheadCondMov},
	}
	for _, tt := range tests {
		got, err := ParseExtension(tt.name)
		if err != nil {
			t.Errorf("ParseExtension(%q) failed: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseExtension(%q) = %#x, want %#x", tt.name, got, tt.want)
		}
	}
	if _, err := ParseExtension("q"); err == nil {
		t.Error("expected an error for an unsupported extension name")
	}
}

func TestHandlerRegistrationOrder(t *testing.T) {
	// Zicsr and Zicntr must precede I so SYSTEM-opcode CSR accesses
	// resolve before I's ecall/ebreak handling; C and the vendor handler
	// close the sequence.
	p := ProfileRV64GC()
	var names []string
	for _, h := range p.handlers {
		names = append(names, h.name())
	}
	want := []string{"Zicsr", "Zicntr", "I", "M", "A", "F", "D", "C", "XTheadCondMov"}
	if len(names) != len(want) {
		t.Fatalf("handler count = %d, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("handler[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}
