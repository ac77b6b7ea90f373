package riscv

import "fmt"

const (
	opLoadFP  = 0b0000111
	opStoreFP = 0b0100111
	opFMADD   = 0b1000011
	opFMSUB   = 0b1000111
	opFNMSUB  = 0b1001011
	opFNMADD  = 0b1001111
	opFP      = 0b1010011
)

type fExt struct{ p *Profile }

func newFExt(p *Profile) *fExt { return &fExt{p: p} }

func (x *fExt) name() string { return "F" }

func (x *fExt) tryDecodeStandard(f fields, p *Profile) (Record, outcome, *DecodeError) {
	if !p.Extensions.has(ExtF) {
		return Record{}, outcomeUnhandled, nil
	}

	switch f.opcode {
	case opLoadFP:
		if f.funct3 != 0b010 {
			return Record{}, outcomeUnhandled, nil
		}
		operands, details := fLoadType(uint8(f.rd), uint8(f.rs1), f.immI())
		return rec("flw", FormatI, operands, details)
	case opStoreFP:
		if f.funct3 != 0b010 {
			return Record{}, outcomeUnhandled, nil
		}
		operands, details := fStoreType(uint8(f.rs1), uint8(f.rs2), f.immS())
		return rec("fsw", FormatS, operands, details)
	case opFMADD, opFMSUB, opFNMSUB, opFNMADD:
		if f.fmt != 0b00 {
			return Record{}, outcomeUnhandled, nil
		}
		return x.decodeFMA(f)
	case opFP:
		if f.fmt != 0b00 {
			return Record{}, outcomeUnhandled, nil
		}
		return decodeFP(f, p, "s")
	}
	return Record{}, outcomeUnhandled, nil
}

var fmaNames = map[uint32]string{opFMADD: "fmadd", opFMSUB: "fmsub", opFNMSUB: "fnmsub", opFNMADD: "fnmadd"}

func (x *fExt) decodeFMA(f fields) (Record, outcome, *DecodeError) {
	rs3 := uint8((f.raw >> 27) & 0x1F)
	mnemonic := fmaNames[f.opcode] + ".s"
	operands, details := r4TypeFP(uint8(f.rd), uint8(f.rs1), uint8(f.rs2), rs3)
	return rec(mnemonic, FormatR4, operands, details)
}

// decodeFP implements the OP-FP (funct5,funct3) dispatch table shared in
// shape by F ("s" suffix) and, via the D handler, "d". The register table
// for each operand is chosen per mnemonic: comparisons, fclass, fmv.x.*
// and fcvt.w/.wu/.l/.lu.* write an integer destination, while fmv.*.x
// and fcvt.*.w/.wu/.l/.lu read an integer source.
//
// funct5 0b01000 (cross-precision fcvt.d.s/fcvt.s.d) is never resolved
// here: the D handler claims it regardless of fmt before this table is
// reached, so this function returns Unhandled for that group, leaving it
// available for D even when called from F's fmt==00 path.
func decodeFP(f fields, p *Profile, suffix string) (Record, outcome, *DecodeError) {
	funct5 := f.funct7 >> 2

	switch funct5 {
	case 0b01000:
		return Record{}, outcomeUnhandled, nil
	case 0b00000:
		return fpArith("fadd."+suffix, f)
	case 0b00001:
		return fpArith("fsub."+suffix, f)
	case 0b00010:
		return fpArith("fmul."+suffix, f)
	case 0b00011:
		return fpArith("fdiv."+suffix, f)
	case 0b01011:
		if f.rs2 != 0 {
			return Record{}, outcomeError, &DecodeError{Kind: ErrInvalidEncoding, Message: "fsqrt: rs2 must be 0"}
		}
		return fpSqrt("fsqrt."+suffix, f)
	case 0b00100:
		switch f.funct3 {
		case 0b000:
			return fpArith("fsgnj."+suffix, f)
		case 0b001:
			return fpArith("fsgnjn."+suffix, f)
		case 0b010:
			return fpArith("fsgnjx."+suffix, f)
		}
	case 0b00101:
		switch f.funct3 {
		case 0b000:
			return fpArith("fmin."+suffix, f)
		case 0b001:
			return fpArith("fmax."+suffix, f)
		}
	case 0b10100:
		switch f.funct3 {
		case 0b010:
			return fpCompare("feq."+suffix, f)
		case 0b001:
			return fpCompare("flt."+suffix, f)
		case 0b000:
			return fpCompare("fle."+suffix, f)
		}
	case 0b11100:
		switch f.funct3 {
		case 0b001:
			return fpClass("fclass."+suffix, f)
		case 0b000:
			if suffix == "d" {
				if p.XLEN != 64 {
					return Record{}, outcomeError, &DecodeError{Kind: ErrInvalidEncoding, Message: "fmv.x.d requires XLEN=64"}
				}
				return fpMove("fmv.x.d", f, true)
			}
			return fpMove("fmv.x.w", f, true)
		}
	case 0b11110:
		if f.funct3 == 0b000 {
			if suffix == "d" {
				if p.XLEN != 64 {
					return Record{}, outcomeError, &DecodeError{Kind: ErrInvalidEncoding, Message: "fmv.d.x requires XLEN=64"}
				}
				return fpMove("fmv.d.x", f, false)
			}
			return fpMove("fmv.w.x", f, false)
		}
	case 0b11000:
		// rs2 selects the integer width: w, wu, l, lu.
		switch f.rs2 {
		case 0:
			return fpToInt("fcvt.w."+suffix, f, p, false)
		case 1:
			return fpToInt("fcvt.wu."+suffix, f, p, false)
		case 2:
			return fpToInt("fcvt.l."+suffix, f, p, true)
		case 3:
			return fpToInt("fcvt.lu."+suffix, f, p, true)
		}
		return Record{}, outcomeError, &DecodeError{Kind: ErrInvalidEncoding, Message: "reserved fcvt integer width"}
	case 0b11010:
		switch f.rs2 {
		case 0:
			return intToFP("fcvt."+suffix+".w", f, p, false)
		case 1:
			return intToFP("fcvt."+suffix+".wu", f, p, false)
		case 2:
			return intToFP("fcvt."+suffix+".l", f, p, true)
		case 3:
			return intToFP("fcvt."+suffix+".lu", f, p, true)
		}
		return Record{}, outcomeError, &DecodeError{Kind: ErrInvalidEncoding, Message: "reserved fcvt integer width"}
	}
	return Record{}, outcomeError, &DecodeError{Kind: ErrInvalidEncoding, Message: fmt.Sprintf("unrecognized OP-FP encoding funct5=%05b funct3=%03b", funct5, f.funct3)}
}

func fpArith(mnemonic string, f fields) (Record, outcome, *DecodeError) {
	operands, details := rTypeFP(uint8(f.rd), uint8(f.rs1), uint8(f.rs2))
	return rec(mnemonic, FormatR, operands, details)
}

func fpSqrt(mnemonic string, f fields) (Record, outcome, *DecodeError) {
	s := fmt.Sprintf("%s, %s", fpRegName(uint8(f.rd)), fpRegName(uint8(f.rs1)))
	details := []Operand{RegOperand(uint8(f.rd), Access{Write: true}), RegOperand(uint8(f.rs1), Access{Read: true})}
	return rec(mnemonic, FormatR, s, details)
}

func fpCompare(mnemonic string, f fields) (Record, outcome, *DecodeError) {
	s := fmt.Sprintf("%s, %s, %s", intRegName(uint8(f.rd)), fpRegName(uint8(f.rs1)), fpRegName(uint8(f.rs2)))
	details := []Operand{
		RegOperand(uint8(f.rd), Access{Write: true}),
		RegOperand(uint8(f.rs1), Access{Read: true}),
		RegOperand(uint8(f.rs2), Access{Read: true}),
	}
	return rec(mnemonic, FormatR, s, details)
}

func fpClass(mnemonic string, f fields) (Record, outcome, *DecodeError) {
	s := fmt.Sprintf("%s, %s", intRegName(uint8(f.rd)), fpRegName(uint8(f.rs1)))
	details := []Operand{RegOperand(uint8(f.rd), Access{Write: true}), RegOperand(uint8(f.rs1), Access{Read: true})}
	return rec(mnemonic, FormatR, s, details)
}

func fpMove(mnemonic string, f fields, toInt bool) (Record, outcome, *DecodeError) {
	if toInt {
		s := fmt.Sprintf("%s, %s", intRegName(uint8(f.rd)), fpRegName(uint8(f.rs1)))
		details := []Operand{RegOperand(uint8(f.rd), Access{Write: true}), RegOperand(uint8(f.rs1), Access{Read: true})}
		return rec(mnemonic, FormatR, s, details)
	}
	s := fmt.Sprintf("%s, %s", fpRegName(uint8(f.rd)), intRegName(uint8(f.rs1)))
	details := []Operand{RegOperand(uint8(f.rd), Access{Write: true}), RegOperand(uint8(f.rs1), Access{Read: true})}
	return rec(mnemonic, FormatR, s, details)
}

func fpToInt(mnemonic string, f fields, p *Profile, needs64 bool) (Record, outcome, *DecodeError) {
	if needs64 && p.XLEN != 64 {
		return Record{}, outcomeError, &DecodeError{Kind: ErrInvalidEncoding, Message: mnemonic + " requires XLEN=64"}
	}
	s := fmt.Sprintf("%s, %s", intRegName(uint8(f.rd)), fpRegName(uint8(f.rs1)))
	details := []Operand{RegOperand(uint8(f.rd), Access{Write: true}), RegOperand(uint8(f.rs1), Access{Read: true})}
	return rec(mnemonic, FormatR, s, details)
}

func intToFP(mnemonic string, f fields, p *Profile, needs64 bool) (Record, outcome, *DecodeError) {
	if needs64 && p.XLEN != 64 {
		return Record{}, outcomeError, &DecodeError{Kind: ErrInvalidEncoding, Message: mnemonic + " requires XLEN=64"}
	}
	s := fmt.Sprintf("%s, %s", fpRegName(uint8(f.rd)), intRegName(uint8(f.rs1)))
	details := []Operand{RegOperand(uint8(f.rd), Access{Write: true}), RegOperand(uint8(f.rs1), Access{Read: true})}
	return rec(mnemonic, FormatR, s, details)
}

func rTypeFP(rd, rs1, rs2 uint8) (string, []Operand) {
	s := fmt.Sprintf("%s, %s, %s", fpRegName(rd), fpRegName(rs1), fpRegName(rs2))
	return s, []Operand{
		RegOperand(rd, Access{Write: true}),
		RegOperand(rs1, Access{Read: true}),
		RegOperand(rs2, Access{Read: true}),
	}
}

func (x *fExt) tryDecodeCompressed(c cfields, p *Profile) (Record, outcome, *DecodeError) {
	return Record{}, outcomeUnhandled, nil
}
