package riscv

import "testing"

func decode32(t *testing.T, p *Profile, word uint32) Record {
	t.Helper()
	buf := []byte{byte(word), byte(word >> 8), byte(word >> 16), byte(word >> 24)}
	rec, size, err := DecodeOne(p, buf, 0)
	if err != nil {
		t.Fatalf("word %#08x: unexpected error: %v", word, err)
	}
	if size != 4 {
		t.Fatalf("word %#08x: size = %d, want 4", word, size)
	}
	return rec
}

func TestSinglePrecisionDecoding(t *testing.T) {
	p := ProfileRV32GC()

	tests := []struct {
		name     string
		word     uint32
		mnemonic string
		operands string
	}{
		{"flw fa0, 4(a1)", 0x0045A507, "flw", "fa0, 4(a1)"},
		{"fsw fa0, 4(a1)", 0x00A5A227, "fsw", "fa0, 4(a1)"},
		{"fadd.s fa0, fa1, fa2", 0x00C58553, "fadd.s", "fa0, fa1, fa2"},
		{"fmul.s fa0, fa1, fa2", 0x10C58553, "fmul.s", "fa0, fa1, fa2"},
		{"fsqrt.s fa0, fa1", 0x58058553, "fsqrt.s", "fa0, fa1"},
		{"feq.s a0, fa1, fa2", 0xA0C5A553, "feq.s", "a0, fa1, fa2"},
		{"fclass.s a0, fa1", 0xE0059553, "fclass.s", "a0, fa1"},
		{"fmv.x.w a0, fa1", 0xE0058553, "fmv.x.w", "a0, fa1"},
		{"fmv.w.x fa0, a1", 0xF0058553, "fmv.w.x", "fa0, a1"},
		{"fcvt.w.s a0, fa1", 0xC0058553, "fcvt.w.s", "a0, fa1"},
		{"fmadd.s fa0, fa1, fa2, fa3", 0x68C58543, "fmadd.s", "fa0, fa1, fa2, fa3"},
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

func TestFmaddCarriesFourOperands(t *testing.T) {
	rec := decode32(t, ProfileRV32GC(), 0x68C58543)
	if rec.Format != FormatR4 {
		t.Errorf("format = %v, want R4", rec.Format)
	}
	if len(rec.Details) != 4 {
		t.Fatalf("expected 4 operands, got %d", len(rec.Details))
	}
	if !rec.Details[0].Access.Write || rec.Details[0].Access.Read {
		t.Errorf("rd access = %+v, want write-only", rec.Details[0].Access)
	}
	for i, op := range rec.Details[1:] {
		if !op.Access.Read || op.Access.Write {
			t.Errorf("source %d access = %+v, want read-only", i+1, op.Access)
		}
	}
}

func TestFComparisonWritesIntegerDestination(t *testing.T) {
	// feq.s: destination a0 from the integer table, sources FP.
	rec := decode32(t, ProfileRV32GC(), 0xA0C5A553)
	if rec.Details[0].Reg != 10 || !rec.Details[0].Access.Write {
		t.Errorf("feq destination = %+v, want a0 write", rec.Details[0])
	}
}

func TestFDisabledFallsThrough(t *testing.T) {
	p := mustProfile(t, 32, ExtI)
	rec := decode32(t, p, 0x00C58553)
	if rec.Mnemonic != "unknown" {
		t.Errorf("mnemonic = %q, want unknown with F disabled", rec.Mnemonic)
	}
}

func TestFcvtLRequiresXLEN64(t *testing.T) {
	// fcvt.l.s a0, fa1: funct5=11000 group with rs2=2.
	word := uint32(0xC0000000) | 2<<20 | 11<<15 | 10<<7 | 0x53
	buf := []byte{byte(word), byte(word >> 8), byte(word >> 16), byte(word >> 24)}
	_, _, err := DecodeOne(ProfileRV32GC(), buf, 0)
	de, ok := err.(*DecodeError)
	if !ok {
		t.Fatalf("expected *DecodeError, got %T (%v)", err, err)
	}
	if de.Kind != ErrInvalidEncoding {
		t.Errorf("Kind = %v, want ErrInvalidEncoding", de.Kind)
	}
}
