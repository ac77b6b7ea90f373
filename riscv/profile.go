package riscv

import "fmt"

// Extensions is a bitset of enabled ISA extensions. Unlike the
// inconsistent raw-mask/bitflags mix in the grounding sources, every
// handler in this package tests this single type uniformly.
type Extensions uint32

const (
	ExtI Extensions = 1 << iota
	ExtM
	ExtA
	ExtF
	ExtD
	ExtC
	ExtZicsr
	ExtZicntr
	ExtXTheadCondMov
)

func (e Extensions) has(bit Extensions) bool { return e&bit != 0 }

// extensionNames resolves the flag→name strings accepted by profile
// construction from text (the config and CLI layers).
var extensionNames = map[string]Extensions{
	"i":              ExtI,
	"m":              ExtM,
	"a":              ExtA,
	"f":              ExtF,
	"d":              ExtD,
	"c":              ExtC,
	"zicsr":          ExtZicsr,
	"zicntr":         ExtZicntr,
	"xtheadcondmov":  ExtXTheadCondMov,
	"th.condmov":     ExtXTheadCondMov,
}

// ParseExtension resolves a case-insensitive extension name to its bit,
// the one CLI/config-facing string→Profile translation point in this
// package (the core itself never accepts strings).
func ParseExtension(name string) (Extensions, error) {
	lower := toLower(name)
	if bit, ok := extensionNames[lower]; ok {
		return bit, nil
	}
	return 0, fmt.Errorf("riscv: unknown extension %q", name)
}

func toLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// Profile is an immutable description of the target: word width plus
// enabled extensions. Handlers are constructed once, at NewProfile time,
// and held for the profile's lifetime.
type Profile struct {
	XLEN       int
	Extensions Extensions
	handlers   []extension
}

// NewProfile builds a custom profile. I must always be present; D
// implies F.
func NewProfile(xlen int, ext Extensions) (*Profile, error) {
	if xlen != 32 && xlen != 64 {
		return nil, fmt.Errorf("riscv: unsupported xlen %d", xlen)
	}
	if !ext.has(ExtI) {
		return nil, fmt.Errorf("riscv: profile must enable the I extension")
	}
	if ext.has(ExtD) && !ext.has(ExtF) {
		ext |= ExtF
	}
	p := &Profile{XLEN: xlen, Extensions: ext}
	p.handlers = buildHandlers(p)
	return p, nil
}

// ProfileRV32GC returns the RV32GC preset: I, M, A, F, C, Zicsr, Zicntr
// (no D — RV32GC explicitly excludes double precision in this
// specification).
func ProfileRV32GC() *Profile {
	p, _ := NewProfile(32, ExtI|ExtM|ExtA|ExtF|ExtC|ExtZicsr|ExtZicntr)
	return p
}

// ProfileRV64GC returns the RV64GC preset: RV32GC's set plus D.
func ProfileRV64GC() *Profile {
	p, _ := NewProfile(64, ExtI|ExtM|ExtA|ExtF|ExtD|ExtC|ExtZicsr|ExtZicntr)
	return p
}

// buildHandlers constructs the handler sequence in the registration
// order required by the CSR-before-base-I priority rule: Zicsr and
// Zicntr must run ahead of I so SYSTEM-opcode CSR instructions resolve
// symbolic names and pseudo-collapse before I's bare ecall/ebreak-only
// SYSTEM handling is reached. Disabled extensions still get a handler
// instance; each handler checks its own bit in p.Extensions and returns
// Unhandled for every input when that bit is off.
func buildHandlers(p *Profile) []extension {
	return []extension{
		newZicsrExt(p),
		newZicntrExt(p),
		newIExt(p),
		newMExt(p),
		newAExt(p),
		newFExt(p),
		newDExt(p),
		newCExt(p),
		newXTheadCondMovExt(p),
	}
}
