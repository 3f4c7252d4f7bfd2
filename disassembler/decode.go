package disassembler

import (
	"github.com/Urethramancer/nesdis/cpu"
)

// Instruction is one decoded instruction.
type Instruction struct {
	Opcode   byte
	Mnemonic cpu.Mnemonic
	// Operand is nil for instructions without one.
	Operand *Operand
}

// Size returns the encoded length including the opcode byte.
func (in Instruction) Size() int {
	if in.Operand == nil {
		return 1
	}
	return 1 + in.Operand.Size()
}

// String renders the mnemonic and operand, e.g. "LDA   #$42".
func (in Instruction) String() string {
	if in.Operand == nil {
		return in.Mnemonic.String()
	}
	return in.Mnemonic.String() + "   " + in.Operand.String()
}

type decoderState int

const (
	awaitingOpcode decoderState = iota
	awaitingOperand
	done
	failed
)

// Decoder reads instructions one at a time from a byte slice.
type Decoder struct {
	code  []byte
	limit int
	end   int
	pos   int

	state decoderState
	err   error
	modes cpu.ModeSet
}

// NewDecoder decodes code up to limit bytes. Reads never go past the end of
// code, so a limit larger than the data ends in an unexpected end of stream.
func NewDecoder(code []byte, limit int) *Decoder {
	if limit < 0 {
		limit = 0
	}
	end := limit
	if end > len(code) {
		end = len(code)
	}
	return &Decoder{code: code, limit: limit, end: end}
}

// More reports whether the cursor is still short of the limit and the
// decoder has not failed.
func (d *Decoder) More() bool {
	return d.state != failed && d.pos < d.limit
}

// Offset returns the cursor position.
func (d *Decoder) Offset() int {
	return d.pos
}

// Err returns the error that stopped the decoder, if any.
func (d *Decoder) Err() error {
	return d.err
}

// Next decodes the instruction at the cursor and advances past it. After a
// failure every call returns the same error.
func (d *Decoder) Next() (Instruction, error) {
	if d.state == failed {
		return Instruction{}, d.err
	}

	var in Instruction
	d.state = awaitingOpcode
	for {
		switch d.state {
		case awaitingOpcode:
			if d.pos >= d.end {
				return d.fail(&UnexpectedEndError{Position: d.pos, Needed: 1})
			}
			in.Opcode = d.code[d.pos]
			d.pos++
			in.Mnemonic, d.modes = cpu.Lookup(in.Opcode)
			if d.modes.Empty() {
				d.state = done
			} else {
				d.state = awaitingOperand
			}

		case awaitingOperand:
			o, n, err := decodeOperand(in.Opcode, d.modes, d.code, d.pos, d.end)
			if err != nil {
				return d.fail(err)
			}
			d.pos += n
			in.Operand = &o
			d.state = done

		case done:
			return in, nil

		default:
			return Instruction{}, d.err
		}
	}
}

func (d *Decoder) fail(err error) (Instruction, error) {
	d.state = failed
	d.err = err
	return Instruction{}, err
}
