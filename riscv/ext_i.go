package riscv

const (
	opLUI      = 0b0110111
	opAUIPC    = 0b0010111
	opJAL      = 0b1101111
	opJALR     = 0b1100111
	opBranch   = 0b1100011
	opLoad     = 0b0000011
	opStore    = 0b0100011
	opOPImm    = 0b0010011
	opOP       = 0b0110011
	opMiscMem  = 0b0001111
	opSystem   = 0b1110011
	opOPImm32  = 0b0011011
	opOP32     = 0b0111011
)

const funct7MulDiv = 0b0000001

type iExt struct{ p *Profile }

func newIExt(p *Profile) *iExt { return &iExt{p: p} }

func (x *iExt) name() string { return "I" }

func (x *iExt) enabled() bool { return x.p.Extensions.has(ExtI) }

func (x *iExt) tryDecodeStandard(f fields, p *Profile) (Record, outcome, *DecodeError) {
	if !x.enabled() {
		return Record{}, outcomeUnhandled, nil
	}

	switch f.opcode {
	case opLUI:
		operands, details := uType(uint8(f.rd), f.immU())
		return rec("lui", FormatU, operands, details)
	case opAUIPC:
		operands, details := uType(uint8(f.rd), f.immU())
		return rec("auipc", FormatU, operands, details)
	case opJAL:
		imm := f.immJ()
		pseudo := f.rd == 0 || f.rd == 1
		mnemonic := "jal"
		if f.rd == 0 {
			mnemonic = "j"
		}
		operands, details := jType(uint8(f.rd), imm, pseudo)
		return rec(mnemonic, FormatJ, operands, details)
	case opJALR:
		if f.funct3 != 0 {
			return Record{}, outcomeError, &DecodeError{Kind: ErrInvalidEncoding, Message: "jalr: funct3 must be 0"}
		}
		operands, details := iType(uint8(f.rd), uint8(f.rs1), f.immI())
		return rec("jalr", FormatI, operands, details)
	case opBranch:
		return x.decodeBranch(f)
	case opLoad:
		return x.decodeLoad(f, p)
	case opStore:
		return x.decodeStore(f, p)
	case opOPImm:
		return x.decodeOPImm(f, p)
	case opOPImm32:
		if p.XLEN != 64 {
			return Record{}, outcomeUnhandled, nil
		}
		return x.decodeOPImm32(f)
	case opOP:
		if f.funct7 == funct7MulDiv {
			return Record{}, outcomeUnhandled, nil
		}
		return x.decodeOP(f)
	case opOP32:
		if p.XLEN != 64 {
			return Record{}, outcomeUnhandled, nil
		}
		if f.funct7 == funct7MulDiv {
			return Record{}, outcomeUnhandled, nil
		}
		return x.decodeOP32(f)
	case opMiscMem:
		return x.decodeMiscMem(f)
	case opSystem:
		if f.funct3 != 0 {
			return Record{}, outcomeUnhandled, nil
		}
		return x.decodeSystem(f)
	}
	return Record{}, outcomeUnhandled, nil
}

func (x *iExt) decodeBranch(f fields) (Record, outcome, *DecodeError) {
	names := map[uint32]string{0b000: "beq", 0b001: "bne", 0b100: "blt", 0b101: "bge", 0b110: "bltu", 0b111: "bgeu"}
	name, ok := names[f.funct3]
	if !ok {
		return Record{}, outcomeError, &DecodeError{Kind: ErrInvalidEncoding, Message: "reserved branch funct3"}
	}
	imm := f.immB()
	pseudo := f.rs2 == 0 && (name == "beq" || name == "bne")
	mnemonic := name
	if pseudo {
		if name == "beq" {
			mnemonic = "beqz"
		} else {
			mnemonic = "bnez"
		}
	}
	operands, details := bType(uint8(f.rs1), uint8(f.rs2), imm, pseudo)
	return rec(mnemonic, FormatB, operands, details)
}

func (x *iExt) decodeLoad(f fields, p *Profile) (Record, outcome, *DecodeError) {
	names := map[uint32]string{0b000: "lb", 0b001: "lh", 0b010: "lw", 0b011: "ld", 0b100: "lbu", 0b101: "lhu", 0b110: "lwu"}
	name, ok := names[f.funct3]
	if !ok {
		return Record{}, outcomeError, &DecodeError{Kind: ErrInvalidEncoding, Message: "reserved load funct3"}
	}
	if (name == "ld" || name == "lwu") && p.XLEN != 64 {
		return Record{}, outcomeError, &DecodeError{Kind: ErrInvalidEncoding, Message: name + " requires XLEN=64"}
	}
	operands, details := loadType(uint8(f.rd), uint8(f.rs1), f.immI())
	return rec(name, FormatI, operands, details)
}

func (x *iExt) decodeStore(f fields, p *Profile) (Record, outcome, *DecodeError) {
	names := map[uint32]string{0b000: "sb", 0b001: "sh", 0b010: "sw", 0b011: "sd"}
	name, ok := names[f.funct3]
	if !ok {
		return Record{}, outcomeError, &DecodeError{Kind: ErrInvalidEncoding, Message: "reserved store funct3"}
	}
	if name == "sd" && p.XLEN != 64 {
		return Record{}, outcomeError, &DecodeError{Kind: ErrInvalidEncoding, Message: "sd requires XLEN=64"}
	}
	operands, details := sType(uint8(f.rs1), uint8(f.rs2), f.immS())
	return rec(name, FormatS, operands, details)
}

func (x *iExt) decodeOPImm(f fields, p *Profile) (Record, outcome, *DecodeError) {
	switch f.funct3 {
	case 0b000:
		operands, details := iType(uint8(f.rd), uint8(f.rs1), f.immI())
		return rec("addi", FormatI, operands, details)
	case 0b010:
		operands, details := iType(uint8(f.rd), uint8(f.rs1), f.immI())
		return rec("slti", FormatI, operands, details)
	case 0b011:
		operands, details := iType(uint8(f.rd), uint8(f.rs1), f.immI())
		return rec("sltiu", FormatI, operands, details)
	case 0b100:
		operands, details := iType(uint8(f.rd), uint8(f.rs1), f.immI())
		return rec("xori", FormatI, operands, details)
	case 0b110:
		operands, details := iType(uint8(f.rd), uint8(f.rs1), f.immI())
		return rec("ori", FormatI, operands, details)
	case 0b111:
		operands, details := iType(uint8(f.rd), uint8(f.rs1), f.immI())
		return rec("andi", FormatI, operands, details)
	case 0b001:
		// On RV64 the low funct7 bit is shamt[5], not part of the check.
		f7 := f.funct7
		if p.XLEN == 64 {
			f7 &^= 1
		}
		if f7 != 0b0000000 {
			return Record{}, outcomeError, &DecodeError{Kind: ErrInvalidEncoding, Message: "slli: reserved funct7"}
		}
		operands, details := iType(uint8(f.rd), uint8(f.rs1), int64(f.shamt(p.XLEN)))
		return rec("slli", FormatI, operands, details)
	case 0b101:
		f7 := f.funct7
		if p.XLEN == 64 {
			f7 &^= 1
		}
		if f7&^0b0100000 != 0 {
			return Record{}, outcomeError, &DecodeError{Kind: ErrInvalidEncoding, Message: "srli/srai: reserved funct7"}
		}
		operands, details := iType(uint8(f.rd), uint8(f.rs1), int64(f.shamt(p.XLEN)))
		if f7&0b0100000 != 0 {
			return rec("srai", FormatI, operands, details)
		}
		return rec("srli", FormatI, operands, details)
	}
	return Record{}, outcomeError, &DecodeError{Kind: ErrInvalidEncoding, Message: "unreachable OP-IMM funct3"}
}

func (x *iExt) decodeOPImm32(f fields) (Record, outcome, *DecodeError) {
	switch f.funct3 {
	case 0b000:
		operands, details := iType(uint8(f.rd), uint8(f.rs1), f.immI())
		return rec("addiw", FormatI, operands, details)
	case 0b001:
		if f.funct7 != 0 {
			return Record{}, outcomeError, &DecodeError{Kind: ErrInvalidEncoding, Message: "slliw: reserved funct7"}
		}
		operands, details := iType(uint8(f.rd), uint8(f.rs1), int64((f.raw>>20)&0x1F))
		return rec("slliw", FormatI, operands, details)
	case 0b101:
		operands, details := iType(uint8(f.rd), uint8(f.rs1), int64((f.raw>>20)&0x1F))
		if f.funct7 == 0b0100000 {
			return rec("sraiw", FormatI, operands, details)
		}
		if f.funct7 == 0 {
			return rec("srliw", FormatI, operands, details)
		}
		return Record{}, outcomeError, &DecodeError{Kind: ErrInvalidEncoding, Message: "srliw/sraiw: reserved funct7"}
	}
	return Record{}, outcomeError, &DecodeError{Kind: ErrInvalidEncoding, Message: "reserved OP-IMM-32 funct3"}
}

func (x *iExt) decodeOP(f fields) (Record, outcome, *DecodeError) {
	type key struct {
		funct3 uint32
		funct7 uint32
	}
	names := map[key]string{
		{0b000, 0}: "add", {0b000, 0b0100000}: "sub",
		{0b001, 0}: "sll", {0b010, 0}: "slt", {0b011, 0}: "sltu",
		{0b100, 0}: "xor", {0b101, 0}: "srl", {0b101, 0b0100000}: "sra",
		{0b110, 0}: "or", {0b111, 0}: "and",
	}
	name, ok := names[key{f.funct3, f.funct7}]
	if !ok {
		return Record{}, outcomeError, &DecodeError{Kind: ErrInvalidEncoding, Message: "reserved OP funct3/funct7"}
	}
	operands, details := rType(uint8(f.rd), uint8(f.rs1), uint8(f.rs2))
	return rec(name, FormatR, operands, details)
}

func (x *iExt) decodeOP32(f fields) (Record, outcome, *DecodeError) {
	type key struct {
		funct3 uint32
		funct7 uint32
	}
	names := map[key]string{
		{0b000, 0}: "addw", {0b000, 0b0100000}: "subw",
		{0b001, 0}: "sllw", {0b101, 0}: "srlw", {0b101, 0b0100000}: "sraw",
	}
	name, ok := names[key{f.funct3, f.funct7}]
	if !ok {
		return Record{}, outcomeError, &DecodeError{Kind: ErrInvalidEncoding, Message: "reserved OP-32 funct3/funct7"}
	}
	operands, details := rType(uint8(f.rd), uint8(f.rs1), uint8(f.rs2))
	return rec(name, FormatR, operands, details)
}

func (x *iExt) decodeMiscMem(f fields) (Record, outcome, *DecodeError) {
	switch f.funct3 {
	case 0b000:
		return rec("fence", FormatI, "", nil)
	case 0b001:
		return rec("fence.i", FormatI, "", nil)
	}
	return Record{}, outcomeError, &DecodeError{Kind: ErrInvalidEncoding, Message: "reserved MISC-MEM funct3"}
}

func (x *iExt) decodeSystem(f fields) (Record, outcome, *DecodeError) {
	switch f.funct12 {
	case 0:
		return rec("ecall", FormatI, "", nil)
	case 1:
		return rec("ebreak", FormatI, "", nil)
	}
	return Record{}, outcomeUnhandled, nil
}

func (x *iExt) tryDecodeCompressed(c cfields, p *Profile) (Record, outcome, *DecodeError) {
	return Record{}, outcomeUnhandled, nil
}

func rec(mnemonic string, format Format, operands string, details []Operand) (Record, outcome, *DecodeError) {
	return Record{Mnemonic: mnemonic, Operands: operands, Format: format, Size: sizeFor(format), Details: details}, outcomeHandled, nil
}

func sizeFor(f Format) int {
	switch f {
	case FormatCR, FormatCI, FormatCSS, FormatCIW, FormatCL, FormatCS, FormatCA, FormatCB, FormatCJ:
		return 2
	default:
		return 4
	}
}
