package riscv

// csrFunct3Names maps the SYSTEM opcode's funct3 to the six CSR
// instruction mnemonics Zicsr owns; funct3 0b000 belongs to base-I
// (ecall/ebreak) and 0b100 is reserved, so both are absent from this
// table.
var csrFunct3Names = map[uint32]string{
	0b001: "csrrw", 0b010: "csrrs", 0b011: "csrrc",
	0b101: "csrrwi", 0b110: "csrrsi", 0b111: "csrrci",
}

type zicsrExt struct{ p *Profile }

func newZicsrExt(p *Profile) *zicsrExt { return &zicsrExt{p: p} }

func (x *zicsrExt) name() string { return "Zicsr" }

// tryDecodeStandard overlays the SYSTEM opcode Zicsr shares with base-I,
// claiming every funct3 except 0b000 (ecall/ebreak, which I retains) and
// 0b100 (reserved).
func (x *zicsrExt) tryDecodeStandard(f fields, p *Profile) (Record, outcome, *DecodeError) {
	if !p.Extensions.has(ExtZicsr) {
		return Record{}, outcomeUnhandled, nil
	}
	if f.opcode != opSystem {
		return Record{}, outcomeUnhandled, nil
	}
	name, ok := csrFunct3Names[f.funct3]
	if !ok {
		return Record{}, outcomeUnhandled, nil
	}

	csr := f.funct12
	rd := uint8(f.rd)

	switch name {
	case "csrrw", "csrrs", "csrrc":
		rs1 := uint8(f.rs1)
		collapsed := f.rs1 == 0
		mnemonic := name
		if collapsed {
			mnemonic = map[string]string{"csrrw": "csrw", "csrrs": "csrr", "csrrc": "csrc"}[name]
		}
		operands, details := csrType(mnemonic, rd, csr, rs1, collapsed)
		return rec(mnemonic, FormatI, operands, details)
	default: // csrrwi, csrrsi, csrrci
		zimm := f.rs1
		collapsed := f.rd == 0
		mnemonic := name
		if collapsed {
			mnemonic = map[string]string{"csrrwi": "csrwi", "csrrsi": "csrri", "csrrci": "csrci"}[name]
		}
		operands, details := csrImmType(rd, csr, zimm, collapsed)
		return rec(mnemonic, FormatI, operands, details)
	}
}

func (x *zicsrExt) tryDecodeCompressed(c cfields, p *Profile) (Record, outcome, *DecodeError) {
	return Record{}, outcomeUnhandled, nil
}
