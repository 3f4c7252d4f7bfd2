package disassembler

import (
	"fmt"

	"github.com/Urethramancer/nesdis/cpu"
)

// Operand is a decoded addressing mode with its payload. 8-bit payloads are
// held in the low byte of Value.
type Operand struct {
	Mode  cpu.Mode
	Value uint16
}

// Size returns the number of bytes the operand occupies after the opcode.
func (o Operand) Size() int {
	return o.Mode.Size()
}

// String renders the operand in canonical assembler syntax.
func (o Operand) String() string {
	lo := uint8(o.Value)
	switch o.Mode {
	case cpu.Accumulator:
		return "A"
	case cpu.Absolute:
		return fmt.Sprintf("$%04x", o.Value)
	case cpu.AbsoluteX:
		return fmt.Sprintf("$%04x,X", o.Value)
	case cpu.AbsoluteY:
		return fmt.Sprintf("$%04x,Y", o.Value)
	case cpu.Immediate:
		return fmt.Sprintf("#$%02x", lo)
	case cpu.Indirect:
		return fmt.Sprintf("($%04x)", o.Value)
	case cpu.IndirectX:
		return fmt.Sprintf("($%02x,X)", lo)
	case cpu.IndirectY:
		return fmt.Sprintf("($%02x),Y", lo)
	case cpu.Relative, cpu.ZeroPage:
		return fmt.Sprintf("$%02x", lo)
	case cpu.ZeroPageX:
		return fmt.Sprintf("$%02x,X", lo)
	case cpu.ZeroPageY:
		return fmt.Sprintf("$%02x,Y", lo)
	}
	return ""
}

// decodeOperand picks the addressing mode for opcode op out of allowed and
// reads its payload from code at pos. It returns the operand and the number
// of bytes consumed. end is the first offset that may not be read.
func decodeOperand(op byte, allowed cpu.ModeSet, code []byte, pos, end int) (Operand, int, error) {
	mode, ok := allowed.Resolve(op)
	if !ok {
		return Operand{}, 0, &InvalidEncodingError{Opcode: op, Position: pos - 1, Allowed: allowed}
	}

	size := mode.Size()
	if pos+size > end {
		return Operand{}, 0, &UnexpectedEndError{Position: pos, Needed: pos + size - end}
	}

	o := Operand{Mode: mode}
	switch size {
	case 1:
		o.Value = uint16(code[pos])
	case 2:
		o.Value = cpu.Word(code[pos:])
	}
	return o, size, nil
}
