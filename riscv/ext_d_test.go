package riscv

import "testing"

func TestDoublePrecisionDecoding(t *testing.T) {
	p := ProfileRV64GC()

	tests := []struct {
		name     string
		word     uint32
		mnemonic string
		operands string
	}{
		{"fld fa0, 8(a1)", 0x0085B507, "fld", "fa0, 8(a1)"},
		{"fsd fa0, 8(a1)", 0x00A5B427, "fsd", "fa0, 8(a1)"},
		{"fadd.d fa0, fa1, fa2", 0x02C58553, "fadd.d", "fa0, fa1, fa2"},
		{"fmadd.d fa0, fa1, fa2, fa3", 0x6AC58543, "fmadd.d", "fa0, fa1, fa2, fa3"},
		{"fcvt.d.s fa0, fa1", 0x42058553, "fcvt.d.s", "fa0, fa1"},
		{"fcvt.s.d fa0, fa1", 0x40059553, "fcvt.s.d", "fa0, fa1"},
		{"fmv.x.d a0, fa1", 0xE2058553, "fmv.x.d", "a0, fa1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := decode32(t, p, tt.word)
			if rec.Mnemonic != tt.mnemonic {
				t.Errorf("mnemonic = %q, want %q", rec.Mnemonic, tt.mnemonic)
			}
			if rec.Operands != tt.operands {
				t.Errorf("operands = %q, want %q", rec.Operands, tt.operands)
			}
		})
	}
}

func TestDDisabledFallsThrough(t *testing.T) {
	// RV32GC deliberately excludes D; fld is nobody's word there.
	rec := decode32(t, ProfileRV32GC(), 0x0085B507)
	if rec.Mnemonic != "unknown" {
		t.Errorf("mnemonic = %q, want unknown with D disabled", rec.Mnemonic)
	}
}

func TestFmvXDRequiresXLEN64(t *testing.T) {
	p := mustProfile(t, 32, ExtI|ExtF|ExtD)
	word := uint32(0xE2058553)
	buf := []byte{byte(word), byte(word >> 8), byte(word >> 16), byte(word >> 24)}
	_, _, err := DecodeOne(p, buf, 0)
	de, ok := err.(*DecodeError)
	if !ok {
		t.Fatalf("expected *DecodeError, got %T (%v)", err, err)
	}
	if de.Kind != ErrInvalidEncoding {
		t.Errorf("Kind = %v, want ErrInvalidEncoding", de.Kind)
	}
}

func TestDImpliesF(t *testing.T) {
	p := mustProfile(t, 64, ExtI|ExtD)
	if !p.Extensions.has(ExtF) {
		t.Fatal("a profile constructed with D must also carry F")
	}
	// And single-precision words decode on it.
	rec := decode32(t, p, 0x00C58553)
	if rec.Mnemonic != "fadd.s" {
		t.Errorf("mnemonic = %q, want fadd.s", rec.Mnemonic)
	}
}
