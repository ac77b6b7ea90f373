package riscv

import "fmt"

type cExt struct{ p *Profile }

func newCExt(p *Profile) *cExt { return &cExt{p: p} }

func (x *cExt) name() string { return "C" }

func (x *cExt) tryDecodeStandard(f fields, p *Profile) (Record, outcome, *DecodeError) {
	return Record{}, outcomeUnhandled, nil
}

// tryDecodeCompressed dispatches every 16-bit word by (opcode_c, funct3_c).
// Quadrant/funct3 combinations the base RVC subset does not define (the
// compressed floating-point loads/stores, mostly) are left Unhandled so
// the stream decoder falls back to its own "c.unknown" record.
func (x *cExt) tryDecodeCompressed(c cfields, p *Profile) (Record, outcome, *DecodeError) {
	if !p.Extensions.has(ExtC) {
		return Record{}, outcomeUnhandled, nil
	}

	switch c.opcode {
	case 0b00:
		switch c.funct3 {
		case 0b000:
			return x.decodeAddi4spn(c)
		case 0b010:
			return x.decodeLw(c)
		case 0b110:
			return x.decodeSw(c)
		}
	case 0b01:
		switch c.funct3 {
		case 0b000:
			return x.decodeAddi(c)
		case 0b001:
			return x.decodeJal(c, p)
		case 0b010:
			return x.decodeLi(c)
		case 0b011:
			return x.decodeAddi16spOrLui(c)
		case 0b100:
			return x.decodeAlu(c)
		case 0b101:
			return x.decodeJ(c)
		case 0b110:
			return x.decodeBranch("c.beqz", c)
		case 0b111:
			return x.decodeBranch("c.bnez", c)
		}
	case 0b10:
		switch c.funct3 {
		case 0b000:
			return x.decodeSlli(c)
		case 0b010:
			return x.decodeLwsp(c)
		case 0b100:
			return x.decodeCR(c)
		case 0b110:
			return x.decodeSwsp(c)
		}
	}
	return Record{}, outcomeUnhandled, nil
}

func (x *cExt) decodeAddi4spn(c cfields) (Record, outcome, *DecodeError) {
	uimm := c.uimmCIW()
	if uimm == 0 {
		return rec("c.unimp", FormatCIW, "", nil)
	}
	rd := c.rs2Prime()
	operands := fmt.Sprintf("%s, sp, %s", intRegName(rd), formatImmediate(int64(uimm)))
	details := []Operand{
		RegOperand(rd, Access{Write: true}),
		RegOperand(2, Access{Read: true}),
		ImmOperand(int64(uimm)),
	}
	return rec("c.addi4spn", FormatCIW, operands, details)
}

func (x *cExt) decodeLw(c cfields) (Record, outcome, *DecodeError) {
	rd := c.rs2Prime()
	rs1 := c.rdPrime()
	uimm := int64(c.uimmCL())
	operands, details := loadType(rd, rs1, uimm)
	return rec("c.lw", FormatCL, operands, details)
}

func (x *cExt) decodeSw(c cfields) (Record, outcome, *DecodeError) {
	rs2 := c.rs2Prime()
	rs1 := c.rdPrime()
	uimm := int64(c.uimmCS())
	operands, details := sType(rs1, rs2, uimm)
	return rec("c.sw", FormatCS, operands, details)
}

func (x *cExt) decodeAddi(c cfields) (Record, outcome, *DecodeError) {
	rd := uint8(c.rdFull)
	imm := c.immCI()
	if rd == 0 && imm == 0 {
		return rec("c.nop", FormatCI, "", nil)
	}
	operands := fmt.Sprintf("%s, %s", intRegName(rd), formatImmediate(imm))
	details := []Operand{RegOperand(rd, Access{Read: true, Write: true}), ImmOperand(imm)}
	return rec("c.addi", FormatCI, operands, details)
}

func (x *cExt) decodeJal(c cfields, p *Profile) (Record, outcome, *DecodeError) {
	if p.XLEN != 32 {
		return Record{}, outcomeUnhandled, nil
	}
	imm := c.immCJ()
	return rec("c.jal", FormatCJ, formatOffset(imm), []Operand{ImmOperand(imm)})
}

func (x *cExt) decodeLi(c cfields) (Record, outcome, *DecodeError) {
	rd := uint8(c.rdFull)
	imm := c.immCI()
	operands := fmt.Sprintf("%s, %s", intRegName(rd), formatImmediate(imm))
	details := []Operand{RegOperand(rd, Access{Write: true}), ImmOperand(imm)}
	return rec("c.li", FormatCI, operands, details)
}

func (x *cExt) decodeAddi16spOrLui(c cfields) (Record, outcome, *DecodeError) {
	rd := uint8(c.rdFull)
	if rd == 2 {
		imm := c.immCADDI16SP()
		operands := fmt.Sprintf("%s, %s", intRegName(rd), formatImmediate(imm))
		details := []Operand{RegOperand(rd, Access{Read: true, Write: true}), ImmOperand(imm)}
		return rec("c.addi16sp", FormatCI, operands, details)
	}
	imm := c.immCLUI()
	operands, details := uType(rd, imm)
	return rec("c.lui", FormatCI, operands, details)
}

// decodeAlu implements the quadrant-1 funct3==100 ALU family, keyed on
// bits[11:10] (funct6 & 0b11) and, for the register-register subgroup,
// bit 12 and bits[6:5] (funct2).
func (x *cExt) decodeAlu(c cfields) (Record, outcome, *DecodeError) {
	w := uint32(c.raw)
	rd := c.rdPrime()
	group := (w >> 10) & 0x3

	switch group {
	case 0b00:
		shamt := c.uimmCIShamt()
		operands := fmt.Sprintf("%s, %d", intRegName(rd), shamt)
		details := []Operand{RegOperand(rd, Access{Read: true, Write: true}), ImmOperand(int64(shamt))}
		return rec("c.srli", FormatCB, operands, details)
	case 0b01:
		shamt := c.uimmCIShamt()
		operands := fmt.Sprintf("%s, %d", intRegName(rd), shamt)
		details := []Operand{RegOperand(rd, Access{Read: true, Write: true}), ImmOperand(int64(shamt))}
		return rec("c.srai", FormatCB, operands, details)
	case 0b10:
		imm := c.immCI()
		operands := fmt.Sprintf("%s, %s", intRegName(rd), formatImmediate(imm))
		details := []Operand{RegOperand(rd, Access{Read: true, Write: true}), ImmOperand(imm)}
		return rec("c.andi", FormatCB, operands, details)
	case 0b11:
		if (w>>12)&1 != 0 {
			return Record{}, outcomeError, &DecodeError{Kind: ErrInvalidEncoding, Message: "reserved compressed ALU encoding (W-variant)"}
		}
		rs2 := c.rs2Prime()
		names := map[uint32]string{0: "c.sub", 1: "c.xor", 2: "c.or", 3: "c.and"}
		mnemonic := names[(w>>5)&0x3]
		operands := fmt.Sprintf("%s, %s", intRegName(rd), intRegName(rs2))
		details := []Operand{RegOperand(rd, Access{Read: true, Write: true}), RegOperand(rs2, Access{Read: true})}
		return rec(mnemonic, FormatCA, operands, details)
	}
	return Record{}, outcomeError, &DecodeError{Kind: ErrInvalidEncoding, Message: "unreachable compressed ALU group"}
}

func (x *cExt) decodeJ(c cfields) (Record, outcome, *DecodeError) {
	imm := c.immCJ()
	return rec("c.j", FormatCJ, formatOffset(imm), []Operand{ImmOperand(imm)})
}

func (x *cExt) decodeBranch(mnemonic string, c cfields) (Record, outcome, *DecodeError) {
	rs1 := c.rdPrime()
	imm := c.immCB()
	operands := fmt.Sprintf("%s, %s", intRegName(rs1), formatOffset(imm))
	details := []Operand{RegOperand(rs1, Access{Read: true}), ImmOperand(imm)}
	return rec(mnemonic, FormatCB, operands, details)
}

func (x *cExt) decodeSlli(c cfields) (Record, outcome, *DecodeError) {
	rd := uint8(c.rdFull)
	shamt := c.uimmCIShamt()
	operands := fmt.Sprintf("%s, %d", intRegName(rd), shamt)
	details := []Operand{RegOperand(rd, Access{Read: true, Write: true}), ImmOperand(int64(shamt))}
	return rec("c.slli", FormatCI, operands, details)
}

func (x *cExt) decodeLwsp(c cfields) (Record, outcome, *DecodeError) {
	rd := uint8(c.rdFull)
	uimm := int64(c.uimmCLSP())
	operands, details := loadType(rd, 2, uimm)
	return rec("c.lwsp", FormatCI, operands, details)
}

func (x *cExt) decodeSwsp(c cfields) (Record, outcome, *DecodeError) {
	rs2 := uint8(c.rs2Full)
	uimm := int64(c.uimmCSSP())
	operands, details := sType(2, rs2, uimm)
	return rec("c.swsp", FormatCSS, operands, details)
}

// decodeCR implements the quadrant-2 funct3==100 group: bit 12 (funct4's
// low bit) and (rd_full, rs2_full) distinguish c.jr, c.jalr, c.mv, c.add
// and c.ebreak.
func (x *cExt) decodeCR(c cfields) (Record, outcome, *DecodeError) {
	w := uint32(c.raw)
	bit12 := (w >> 12) & 1
	rd := uint8(c.rdFull)
	rs2 := uint8(c.rs2Full)

	if bit12 == 0 {
		if rs2 == 0 {
			if rd == 0 {
				return Record{}, outcomeError, &DecodeError{Kind: ErrInvalidEncoding, Message: "reserved compressed encoding (rd=0, rs2=0, bit12=0)"}
			}
			return rec("c.jr", FormatCR, intRegName(rd), []Operand{RegOperand(rd, Access{Read: true})})
		}
		operands := fmt.Sprintf("%s, %s", intRegName(rd), intRegName(rs2))
		details := []Operand{RegOperand(rd, Access{Write: true}), RegOperand(rs2, Access{Read: true})}
		return rec("c.mv", FormatCR, operands, details)
	}

	if rs2 == 0 {
		if rd == 0 {
			return rec("c.ebreak", FormatCR, "", nil)
		}
		return rec("c.jalr", FormatCR, intRegName(rd), []Operand{RegOperand(rd, Access{Read: true})})
	}
	operands := fmt.Sprintf("%s, %s", intRegName(rd), intRegName(rs2))
	details := []Operand{RegOperand(rd, Access{Read: true, Write: true}), RegOperand(rs2, Access{Read: true})}
	return rec("c.add", FormatCR, operands, details)
}
