package disassembler

import (
	"errors"
	"testing"

	"github.com/Urethramancer/nesdis/cpu"
)

func TestDecodeOperandInvalidEncoding(t *testing.T) {
	// LDA immediate checked against a set that cannot hold it.
	code := []byte{0xA9, 0x42}
	_, n, err := decodeOperand(0xA9, cpu.ModesSTX, code, 1, len(code))
	if n != 0 {
		t.Errorf("consumed %d bytes on failure", n)
	}
	if !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("expected invalid encoding, got %v", err)
	}
	var inv *InvalidEncodingError
	if !errors.As(err, &inv) {
		t.Fatalf("expected *InvalidEncodingError, got %T", err)
	}
	if inv.Opcode != 0xA9 || inv.Position != 0 {
		t.Errorf("got opcode $%02x at %d, want $a9 at 0", inv.Opcode, inv.Position)
	}
	if errors.Is(err, ErrUnexpectedEnd) {
		t.Errorf("invalid encoding must not match ErrUnexpectedEnd")
	}
}

func TestDecodeOperandSizes(t *testing.T) {
	code := []byte{0x8D, 0x00, 0x20, 0xFF}
	o, n, err := decodeOperand(0x8D, cpu.NoZeroPageYNoImmediate, code, 1, len(code))
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 || o.Mode != cpu.Absolute || o.Value != 0x2000 {
		t.Errorf("got %s $%04x (%d bytes), want Absolute $2000 (2 bytes)", o.Mode, o.Value, n)
	}

	o, n, err = decodeOperand(0x0A, cpu.SimpleXAccumulator, code, 1, len(code))
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 || o.Mode != cpu.Accumulator {
		t.Errorf("got %s (%d bytes), want Accumulator (0 bytes)", o.Mode, n)
	}
}

func TestOperandString(t *testing.T) {
	tests := []struct {
		o    Operand
		want string
	}{
		{Operand{cpu.Accumulator, 0}, "A"},
		{Operand{cpu.Implied, 0}, ""},
		{Operand{cpu.Immediate, 0x12}, "#$12"},
		{Operand{cpu.ZeroPage, 0x12}, "$12"},
		{Operand{cpu.ZeroPageX, 0x12}, "$12,X"},
		{Operand{cpu.ZeroPageY, 0x12}, "$12,Y"},
		{Operand{cpu.IndirectX, 0x12}, "($12,X)"},
		{Operand{cpu.IndirectY, 0x12}, "($12),Y"},
		{Operand{cpu.Relative, 0x80}, "$80"},
		{Operand{cpu.Absolute, 0x1234}, "$1234"},
		{Operand{cpu.AbsoluteX, 0x1234}, "$1234,X"},
		{Operand{cpu.AbsoluteY, 0x1234}, "$1234,Y"},
		{Operand{cpu.Indirect, 0x1234}, "($1234)"},
	}
	for _, tt := range tests {
		if got := tt.o.String(); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.o.Mode, got, tt.want)
		}
	}
}
