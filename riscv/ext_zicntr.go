package riscv

// zicntrExt is a narrower specialization of Zicsr: it exposes only the
// six read-only counter CSRs (cycle, time, instret, cycleh, timeh,
// instreth) for profiles that want counter access without pulling in
// general-purpose CSR decoding. It defers to Zicsr whenever Zicsr is
// also enabled, since Zicsr's table is a strict superset.
type zicntrExt struct{ p *Profile }

func newZicntrExt(p *Profile) *zicntrExt { return &zicntrExt{p: p} }

func (x *zicntrExt) name() string { return "Zicntr" }

func (x *zicntrExt) tryDecodeStandard(f fields, p *Profile) (Record, outcome, *DecodeError) {
	if !p.Extensions.has(ExtZicntr) || p.Extensions.has(ExtZicsr) {
		return Record{}, outcomeUnhandled, nil
	}
	if f.opcode != opSystem {
		return Record{}, outcomeUnhandled, nil
	}
	name, ok := csrFunct3Names[f.funct3]
	if !ok {
		return Record{}, outcomeUnhandled, nil
	}
	if !isCounterCSR(f.funct12) {
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

func (x *zicntrExt) tryDecodeCompressed(c cfields, p *Profile) (Record, outcome, *DecodeError) {
	return Record{}, outcomeUnhandled, nil
}
