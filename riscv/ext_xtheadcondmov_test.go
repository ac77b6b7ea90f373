package riscv

import "testing"

func TestXTheadCondMov(t *testing.T) {
	// Test vectors grounded in the original XTheadCondMov unit tests:
	// th.mveqz ra, sp, gp / th.mvnez ra, sp, gp (rd=1, rs1=2, rs2=3).
	p := mustProfile(t, 32, ExtI|ExtXTheadCondMov)

	tests := []struct {
		word     uint32
		mnemonic string
	}{
		{0x4031108B, "th.mveqz"},
		{0x4231108B, "th.mvnez"},
	}
	for _, tt := range tests {
		buf := []byte{byte(tt.word), byte(tt.word >> 8), byte(tt.word >> 16), byte(tt.word >> 24)}
		rec, size, err := DecodeOne(p, buf, 0)
		if err != nil {
			t.Fatalf("word %#x: unexpected error: %v", tt.word, err)
		}
		if size != 4 {
			t.Fatalf("word %#x: size = %d, want 4", tt.word, size)
		}
		if rec.Mnemonic != tt.mnemonic {
			t.Errorf("word %#x: mnemonic = %q, want %q", tt.word, rec.Mnemonic, tt.mnemonic)
		}
		if rec.Operands != "ra, sp, gp" {
			t.Errorf("word %#x: operands = %q, want %q", tt.word, rec.Operands, "ra, sp, gp")
		}
	}
}

func TestXTheadCondMovDisabledIsUnhandled(t *testing.T) {
	p := mustProfile(t, 32, ExtI)
	word := uint32(0x4031108B)
	buf := []byte{byte(word), byte(word >> 8), byte(word >> 16), byte(word >> 24)}
	rec, _, err := DecodeOne(p, buf, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Mnemonic != "unknown" {
		t.Errorf("mnemonic = %q, want unknown (extension disabled)", rec.Mnemonic)
	}
}
