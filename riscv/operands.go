package riscv

import "fmt"

// formatImmediate renders a signed immediate per the Capstone-compatible
// threshold rule: zero as "0", |v| < 16 as decimal, otherwise hex with a
// sign-preserving "0x"/"-0x" prefix. Branch/jump displacements use
// formatOffset instead, which is always hex.
func formatImmediate(v int64) string {
	if v == 0 {
		return "0"
	}
	abs := v
	if abs < 0 {
		abs = -abs
	}
	if abs < 16 {
		return fmt.Sprintf("%d", v)
	}
	if v < 0 {
		return fmt.Sprintf("-0x%x", -v)
	}
	return fmt.Sprintf("0x%x", v)
}

// formatOffset renders a J-type/B-type branch or jump displacement: always
// hex with a sign-preserving "0x"/"-0x" prefix, even for magnitudes under
// 16 where formatImmediate would fall back to decimal.
func formatOffset(v int64) string {
	if v < 0 {
		return fmt.Sprintf("-0x%x", -v)
	}
	return fmt.Sprintf("0x%x", v)
}

// formatMem renders a load/store memory operand as disp(base); a zero
// displacement still prints as "0(base)". Atomics, whose encoding has
// no displacement field at all, use formatMemBare instead.
func formatMem(base uint8, disp int64) string {
	return fmt.Sprintf("%s(%s)", formatImmediate(disp), intRegName(base))
}

// formatMemBare renders the displacement-free "(base)" form used by the
// AMO family.
func formatMemBare(base uint8) string {
	return fmt.Sprintf("(%s)", intRegName(base))
}

// rType formats a three-register arithmetic instruction and returns both
// the display string and the structured operands (rd write, rs1/rs2
// read).
func rType(rd, rs1, rs2 uint8) (string, []Operand) {
	s := fmt.Sprintf("%s, %s, %s", intRegName(rd), intRegName(rs1), intRegName(rs2))
	return s, []Operand{
		RegOperand(rd, Access{Write: true}),
		RegOperand(rs1, Access{Read: true}),
		RegOperand(rs2, Access{Read: true}),
	}
}

// r4TypeFP formats a four-register FP fused multiply-add family
// instruction (rd write, rs1/rs2/rs3 read), using the FP register table.
func r4TypeFP(rd, rs1, rs2, rs3 uint8) (string, []Operand) {
	s := fmt.Sprintf("%s, %s, %s, %s", fpRegName(rd), fpRegName(rs1), fpRegName(rs2), fpRegName(rs3))
	return s, []Operand{
		RegOperand(rd, Access{Write: true}),
		RegOperand(rs1, Access{Read: true}),
		RegOperand(rs2, Access{Read: true}),
		RegOperand(rs3, Access{Read: true}),
	}
}

// iType formats a destination-and-one-source-plus-immediate instruction
// (addi, slli, ...), both integer register names.
func iType(rd, rs1 uint8, imm int64) (string, []Operand) {
	s := fmt.Sprintf("%s, %s, %s", intRegName(rd), intRegName(rs1), formatImmediate(imm))
	return s, []Operand{
		RegOperand(rd, Access{Write: true}),
		RegOperand(rs1, Access{Read: true}),
		ImmOperand(imm),
	}
}

// loadType formats rd, disp(rs1) for integer loads.
func loadType(rd, rs1 uint8, imm int64) (string, []Operand) {
	s := fmt.Sprintf("%s, %s", intRegName(rd), formatMem(rs1, imm))
	return s, []Operand{
		RegOperand(rd, Access{Write: true}),
		MemOperand(rs1, imm),
	}
}

// fLoadType formats an FP load, rd from the FP table.
func fLoadType(rd, rs1 uint8, imm int64) (string, []Operand) {
	s := fmt.Sprintf("%s, %s", fpRegName(rd), formatMem(rs1, imm))
	return s, []Operand{
		RegOperand(rd, Access{Write: true}),
		MemOperand(rs1, imm),
	}
}

// sType formats rs2, disp(rs1) for integer stores (rs2 read, memory
// written — represented structurally as rs2 read + a read-tagged memory
// operand, per the data model's "direction lives on the other operand"
// rule).
func sType(rs1, rs2 uint8, imm int64) (string, []Operand) {
	s := fmt.Sprintf("%s, %s", intRegName(rs2), formatMem(rs1, imm))
	return s, []Operand{
		RegOperand(rs2, Access{Read: true}),
		MemOperand(rs1, imm),
	}
}

// fStoreType formats an FP store, rs2 from the FP table.
func fStoreType(rs1, rs2 uint8, imm int64) (string, []Operand) {
	s := fmt.Sprintf("%s, %s", fpRegName(rs2), formatMem(rs1, imm))
	return s, []Operand{
		RegOperand(rs2, Access{Read: true}),
		MemOperand(rs1, imm),
	}
}

// bType formats a branch, with the beqz/bnez pseudo collapse when rs2 is
// x0 and the caller passed pseudo=true.
func bType(rs1, rs2 uint8, imm int64, pseudo bool) (string, []Operand) {
	if pseudo {
		s := fmt.Sprintf("%s, %s", intRegName(rs1), formatOffset(imm))
		return s, []Operand{
			RegOperand(rs1, Access{Read: true}),
			ImmOperand(imm),
		}
	}
	s := fmt.Sprintf("%s, %s, %s", intRegName(rs1), intRegName(rs2), formatOffset(imm))
	return s, []Operand{
		RegOperand(rs1, Access{Read: true}),
		RegOperand(rs2, Access{Read: true}),
		ImmOperand(imm),
	}
}

// uType formats lui/auipc: the destination plus the upper-20-bits value
// shown in hex (0 renders as "0"). A negative upper value displays as
// its 20-bit field pattern (e.g. -1 as 0xfffff); the structured operand
// keeps the signed value.
func uType(rd uint8, imm int64) (string, []Operand) {
	upper := imm >> 12
	var s string
	if upper == 0 {
		s = fmt.Sprintf("%s, 0", intRegName(rd))
	} else {
		s = fmt.Sprintf("%s, 0x%x", intRegName(rd), uint64(upper)&0xFFFFF)
	}
	return s, []Operand{
		RegOperand(rd, Access{Write: true}),
		ImmOperand(upper),
	}
}

// jType formats jal. When pseudo is true (rd is x0 or x1, collapsed to
// j/jal), the destination register is omitted entirely from both the
// display string and the operand list.
func jType(rd uint8, imm int64, pseudo bool) (string, []Operand) {
	if pseudo {
		return formatOffset(imm), []Operand{ImmOperand(imm)}
	}
	s := fmt.Sprintf("%s, %s", intRegName(rd), formatOffset(imm))
	return s, []Operand{
		RegOperand(rd, Access{Write: true}),
		ImmOperand(imm),
	}
}

// csrType formats a register-form CSR instruction. When collapsed is true
// (the callers set it for csrrw/csrrs/csrrc with rs1 == x0) it emits the
// csrw/csrr/csrc pseudo shape "rd, csr" with rs1 dropped.
func csrType(mnemonic string, rd uint8, csr uint32, rs1 uint8, collapsed bool) (string, []Operand) {
	name := csrName(csr)
	if collapsed {
		s := fmt.Sprintf("%s, %s", intRegName(rd), name)
		return s, []Operand{
			RegOperand(rd, Access{Write: true}),
			ImmOperand(int64(csr)),
		}
	}
	s := fmt.Sprintf("%s, %s, %s", intRegName(rd), name, intRegName(rs1))
	return s, []Operand{
		RegOperand(rd, Access{Write: true}),
		ImmOperand(int64(csr)),
		RegOperand(rs1, Access{Read: true}),
	}
}

// csrImmType formats an immediate-form CSR instruction (csrrwi/rsi/rci),
// collapsing to csrwi/csrri/csrci when the caller determines rd is x0.
func csrImmType(rd uint8, csr uint32, zimm uint32, collapsed bool) (string, []Operand) {
	name := csrName(csr)
	if collapsed {
		s := fmt.Sprintf("%s, %d", name, zimm)
		return s, []Operand{
			ImmOperand(int64(csr)),
			ImmOperand(int64(zimm)),
		}
	}
	s := fmt.Sprintf("%s, %s, %d", intRegName(rd), name, zimm)
	return s, []Operand{
		RegOperand(rd, Access{Write: true}),
		ImmOperand(int64(csr)),
		ImmOperand(int64(zimm)),
	}
}

// unknownRecord builds the well-formed "could not classify" record for a
// word no handler claimed. Not an error: unclassified words are valid
// disassembly output when reading corrupt or mixed code/data input.
func unknownRecord(mnemonic string, bytesConsumed []byte, addr uint64, size int, raw uint32) Record {
	return Record{
		Address:  addr,
		Bytes:    bytesConsumed,
		Mnemonic: mnemonic,
		Operands: fmt.Sprintf("0x%x", raw),
		Size:     size,
		Format:   FormatUnknown,
		Details:  nil,
	}
}
