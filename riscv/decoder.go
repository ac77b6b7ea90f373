package riscv

import "fmt"

// extension is the interface every ISA extension handler implements.
// Handlers are polled in registration order; the first Handled result
// wins, Unhandled defers to the next handler, and Error is terminal for
// the current position.
type extension interface {
	name() string
	tryDecodeStandard(f fields, p *Profile) (Record, outcome, *DecodeError)
	tryDecodeCompressed(c cfields, p *Profile) (Record, outcome, *DecodeError)
}

// DecodeOne decodes exactly one instruction at the given address from
// the front of buf. It returns the record, the number of bytes
// consumed, and an error. buf must have at least 2 bytes; a standard
// (32-bit) instruction additionally requires 4.
func DecodeOne(p *Profile, buf []byte, address uint64) (Record, int, error) {
	if len(buf) == 0 {
		return Record{}, 0, &DecodeError{Kind: ErrIncomplete, Address: address, Message: "empty input"}
	}
	if len(buf) < 2 {
		return Record{}, 0, &DecodeError{Kind: ErrIncomplete, Address: address, Message: "fewer than 2 bytes remain"}
	}

	low16 := uint16(buf[0]) | uint16(buf[1])<<8

	if low16&0x3 != 0x3 {
		c := decodeCFields(low16)
		for _, h := range p.handlers {
			rec, out, err := h.tryDecodeCompressed(c, p)
			switch out {
			case outcomeHandled:
				if rec.Size == 0 {
					return Record{}, 0, &DecodeError{Kind: ErrZeroLengthDecode, Address: address, Message: fmt.Sprintf("%s returned a zero-length compressed record", h.name())}
				}
				rec.Address = address
				rec.Bytes = append([]byte(nil), buf[:rec.Size]...)
				return rec, rec.Size, nil
			case outcomeError:
				err.Address = address
				return Record{}, 0, err
			}
		}
		rec := unknownRecord("c.unknown", append([]byte(nil), buf[:2]...), address, 2, uint32(low16))
		return rec, 2, nil
	}

	if len(buf) < 4 {
		return Record{}, 0, &DecodeError{Kind: ErrIncomplete, Address: address, Message: "fewer than 4 bytes remain for a standard-width instruction"}
	}
	word := uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16 | uint32(buf[3])<<24
	f := decodeFields(word)
	for _, h := range p.handlers {
		rec, out, err := h.tryDecodeStandard(f, p)
		switch out {
		case outcomeHandled:
			if rec.Size == 0 {
				return Record{}, 0, &DecodeError{Kind: ErrZeroLengthDecode, Address: address, Message: fmt.Sprintf("%s returned a zero-length standard record", h.name())}
			}
			rec.Address = address
			rec.Bytes = append([]byte(nil), buf[:rec.Size]...)
			return rec, rec.Size, nil
		case outcomeError:
			err.Address = address
			return Record{}, 0, err
		}
	}
	rec := unknownRecord("unknown", append([]byte(nil), buf[:4]...), address, 4, word)
	return rec, 4, nil
}
