package riscv

const funct5CrossPrecision = 0b01000

type dExt struct{ p *Profile }

func newDExt(p *Profile) *dExt { return &dExt{p: p} }

func (x *dExt) name() string { return "D" }

func (x *dExt) tryDecodeStandard(f fields, p *Profile) (Record, outcome, *DecodeError) {
	if !p.Extensions.has(ExtD) {
		return Record{}, outcomeUnhandled, nil
	}

	switch f.opcode {
	case opLoadFP:
		if f.funct3 != 0b011 {
			return Record{}, outcomeUnhandled, nil
		}
		operands, details := fLoadType(uint8(f.rd), uint8(f.rs1), f.immI())
		return rec("fld", FormatI, operands, details)
	case opStoreFP:
		if f.funct3 != 0b011 {
			return Record{}, outcomeUnhandled, nil
		}
		operands, details := fStoreType(uint8(f.rs1), uint8(f.rs2), f.immS())
		return rec("fsd", FormatS, operands, details)
	case opFMADD, opFMSUB, opFNMSUB, opFNMADD:
		if f.fmt != 0b01 {
			return Record{}, outcomeUnhandled, nil
		}
		return x.decodeFMA(f)
	case opFP:
		return x.decodeOPFP(f, p)
	}
	return Record{}, outcomeUnhandled, nil
}

func (x *dExt) decodeFMA(f fields) (Record, outcome, *DecodeError) {
	rs3 := uint8((f.raw >> 27) & 0x1F)
	mnemonic := fmaNames[f.opcode] + ".d"
	operands, details := r4TypeFP(uint8(f.rd), uint8(f.rs1), uint8(f.rs2), rs3)
	return rec(mnemonic, FormatR4, operands, details)
}

// decodeOPFP claims the cross-precision conversions fcvt.d.s/fcvt.s.d
// ahead of (and regardless of) the fmt check, since their real encoding
// disagrees on fmt between the two directions; the rest of D's table
// requires fmt==01 (F has already declined with fmt==00).
func (x *dExt) decodeOPFP(f fields, p *Profile) (Record, outcome, *DecodeError) {
	funct5 := f.funct7 >> 2
	if funct5 == funct5CrossPrecision {
		switch f.funct3 {
		case 0:
			s := fpRegName(uint8(f.rd)) + ", " + fpRegName(uint8(f.rs1))
			details := []Operand{RegOperand(uint8(f.rd), Access{Write: true}), RegOperand(uint8(f.rs1), Access{Read: true})}
			return rec("fcvt.d.s", FormatR, s, details)
		case 1:
			s := fpRegName(uint8(f.rd)) + ", " + fpRegName(uint8(f.rs1))
			details := []Operand{RegOperand(uint8(f.rd), Access{Write: true}), RegOperand(uint8(f.rs1), Access{Read: true})}
			return rec("fcvt.s.d", FormatR, s, details)
		}
		return Record{}, outcomeError, &DecodeError{Kind: ErrInvalidEncoding, Message: "reserved fcvt.d.s/fcvt.s.d funct3"}
	}

	if f.fmt != 0b01 {
		return Record{}, outcomeUnhandled, nil
	}
	return decodeFP(f, p, "d")
}

func (x *dExt) tryDecodeCompressed(c cfields, p *Profile) (Record, outcome, *DecodeError) {
	return Record{}, outcomeUnhandled, nil
}
