package riscv

import "fmt"

// intRegNames is the ABI name table for x0..x31.
var intRegNames = [32]string{
	"zero", "ra", "sp", "gp", "tp", "t0", "t1", "t2",
	"s0", "s1", "a0", "a1", "a2", "a3", "a4", "a5",
	"a6", "a7", "s2", "s3", "s4", "s5", "s6", "s7",
	"s8", "s9", "s10", "s11", "t3", "t4", "t5", "t6",
}

// fpRegNames is the ABI name table for f0..f31.
var fpRegNames = [32]string{
	"ft0", "ft1", "ft2", "ft3", "ft4", "ft5", "ft6", "ft7",
	"fs0", "fs1", "fa0", "fa1", "fa2", "fa3", "fa4", "fa5",
	"fa6", "fa7", "fs2", "fs3", "fs4", "fs5", "fs6", "fs7",
	"fs8", "fs9", "fs10", "fs11", "ft8", "ft9", "ft10", "ft11",
}

// intRegName returns the ABI name for an integer register, "invalid" for
// anything outside 0..31.
func intRegName(r uint8) string {
	if int(r) >= len(intRegNames) {
		return "invalid"
	}
	return intRegNames[r]
}

// fpRegName returns the ABI name for a floating-point register.
func fpRegName(r uint8) string {
	if int(r) >= len(fpRegNames) {
		return "invalid"
	}
	return fpRegNames[r]
}

// csrNames maps CSR addresses to symbolic names across the RISC-V
// privileged machine/supervisor/user/debug/counter groups, using the
// standard privileged-architecture address assignments.
var csrNames = map[uint32]string{
	0x000: "ustatus",
	0x001: "fflags",
	0x002: "frm",
	0x003: "fcsr",
	0x100: "sstatus",
	0x102: "sedeleg",
	0x103: "sideleg",
	0x104: "sie",
	0x105: "stvec",
	0x106: "scounteren",
	0x140: "sscratch",
	0x141: "sepc",
	0x142: "scause",
	0x143: "stval",
	0x144: "sip",
	0x180: "satp",
	0x300: "mstatus",
	0x301: "misa",
	0x302: "medeleg",
	0x303: "mideleg",
	0x304: "mie",
	0x305: "mtvec",
	0x306: "mcounteren",
	0x320: "mcountinhibit",
	0x321: "mhpmevent3",
	0x340: "mscratch",
	0x341: "mepc",
	0x342: "mcause",
	0x343: "mtval",
	0x344: "mip",
	0x34A: "mtinst",
	0x34B: "mtval2",
	0x7A0: "tselect",
	0x7A1: "tdata1",
	0x7A2: "tdata2",
	0x7A3: "tdata3",
	0x7B0: "dcsr",
	0x7B1: "dpc",
	0x7B2: "dscratch0",
	0x7B3: "dscratch1",
	0xC00: "cycle",
	0xC01: "time",
	0xC02: "instret",
	0xC80: "cycleh",
	0xC81: "timeh",
	0xC82: "instreth",
	// Unprivileged-mode shadows of the base counters.
	0x800: "cycle",
	0x801: "time",
	0x802: "instret",
	0x880: "cycleh",
	0x881: "timeh",
	0x882: "instreth",
	0xF11: "mvendorid",
	0xF12: "marchid",
	0xF13: "mimpid",
	0xF14: "mhartid",
}

// counterCSRs is the subset Zicntr exposes even without full Zicsr.
var counterCSRs = map[uint32]bool{
	0xC00: true, 0xC01: true, 0xC02: true,
	0xC80: true, 0xC81: true, 0xC82: true,
}

// RegisterName returns the integer ABI name for register id r (0..31).
// Operand.Reg does not carry which register file it was drawn from, so
// callers inspecting operand_details outside the riscv package (the
// browser's detail pane) use this for a best-effort display
// name; FP-only consumers should call FPRegisterName directly instead.
func RegisterName(r uint8) string { return intRegName(r) }

// FPRegisterName returns the floating-point ABI name for register id r.
func FPRegisterName(r uint8) string { return fpRegName(r) }

// csrName resolves a 12-bit CSR address to its symbolic name, falling
// back to a hex literal for anything not in the table.
func csrName(addr uint32) string {
	if name, ok := csrNames[addr]; ok {
		return name
	}
	return fmt.Sprintf("0x%03x", addr&0xFFF)
}

func isCounterCSR(addr uint32) bool {
	return counterCSRs[addr]
}
