package disassembler

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/Urethramancer/nesdis/cpu"
)

// Sentinels for errors.Is. The concrete errors below carry the details.
var (
	ErrInvalidEncoding = errors.New("invalid encoding")
	ErrUnexpectedEnd   = errors.New("unexpected end of stream")
)

// InvalidEncodingError means an opcode matched none of the addressing modes
// its instruction accepts. The opcode table and the mode rules disagree.
type InvalidEncodingError struct {
	Opcode   byte
	Position int
	Allowed  cpu.ModeSet
}

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("invalid encoding: opcode $%02x (%s) at offset $%04x matches none of %v",
		e.Opcode, cpu.Opcodes[e.Opcode], e.Position, e.Allowed.Modes())
}

// Is matches ErrInvalidEncoding.
func (e *InvalidEncodingError) Is(target error) bool {
	return target == ErrInvalidEncoding
}

// UnexpectedEndError means an instruction runs past the end of the data.
type UnexpectedEndError struct {
	Position int
	Needed   int
}

func (e *UnexpectedEndError) Error() string {
	return fmt.Sprintf("unexpected end of stream at offset $%04x: %d more byte(s) needed", e.Position, e.Needed)
}

// Is matches ErrUnexpectedEnd.
func (e *UnexpectedEndError) Is(target error) bool {
	return target == ErrUnexpectedEnd
}
