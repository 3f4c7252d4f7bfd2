package disassembler_test

import (
	"errors"
	"testing"

	"github.com/Urethramancer/nesdis/cpu"
	"github.com/Urethramancer/nesdis/disassembler"
)

// decodeOne decodes a single instruction from code.
func decodeOne(t *testing.T, code ...byte) disassembler.Instruction {
	t.Helper()
	d := disassembler.NewDecoder(code, len(code))
	in, err := d.Next()
	if err != nil {
		t.Fatalf("decode % x: %v", code, err)
	}
	return in
}

func TestDecodeScenarios(t *testing.T) {
	tests := []struct {
		code    []byte
		mn      cpu.Mnemonic
		mode    cpu.Mode
		operand bool
		value   uint16
		text    string
	}{
		{[]byte{0x00}, cpu.BRK, 0, false, 0, "BRK"},
		{[]byte{0x02}, cpu.STP, 0, false, 0, "STP"},
		{[]byte{0xEA}, cpu.NOP, 0, false, 0, "NOP"},
		{[]byte{0xA9, 0x42}, cpu.LDA, cpu.Immediate, true, 0x42, "LDA   #$42"},
		{[]byte{0x4C, 0x00, 0x90}, cpu.JMP, cpu.Absolute, true, 0x9000, "JMP   $9000"},
		{[]byte{0x6C, 0xFC, 0xFF}, cpu.JMP, cpu.Indirect, true, 0xFFFC, "JMP   ($fffc)"},
		{[]byte{0x20, 0x34, 0x12}, cpu.JSR, cpu.Absolute, true, 0x1234, "JSR   $1234"},
		{[]byte{0x0A}, cpu.ASL, cpu.Accumulator, true, 0, "ASL   A"},
		{[]byte{0xB5, 0x12}, cpu.LDA, cpu.ZeroPageX, true, 0x12, "LDA   $12,X"},
		{[]byte{0xB6, 0x12}, cpu.LDX, cpu.ZeroPageY, true, 0x12, "LDX   $12,Y"},
		{[]byte{0xB1, 0x12}, cpu.LDA, cpu.IndirectY, true, 0x12, "LDA   ($12),Y"},
		{[]byte{0xA1, 0x12}, cpu.LDA, cpu.IndirectX, true, 0x12, "LDA   ($12,X)"},
		{[]byte{0xBD, 0x00, 0x02}, cpu.LDA, cpu.AbsoluteX, true, 0x0200, "LDA   $0200,X"},
		{[]byte{0xBE, 0x00, 0x02}, cpu.LDX, cpu.AbsoluteY, true, 0x0200, "LDX   $0200,Y"},
		{[]byte{0xD0, 0xFE}, cpu.BNE, cpu.Relative, true, 0xFE, "BNE   $fe"},
		{[]byte{0x87, 0x10}, cpu.SAX, cpu.ZeroPage, true, 0x10, "SAX   $10"},
		{[]byte{0x97, 0x10}, cpu.SAX, cpu.ZeroPageY, true, 0x10, "SAX   $10,Y"},
		{[]byte{0x9F, 0x00, 0x03}, cpu.AHX, cpu.AbsoluteY, true, 0x0300, "AHX   $0300,Y"},
		{[]byte{0xCB, 0x01}, cpu.AXS, cpu.Immediate, true, 0x01, "AXS   #$01"},
	}
	for _, tt := range tests {
		in := decodeOne(t, tt.code...)
		if in.Mnemonic != tt.mn {
			t.Errorf("% x: got mnemonic %s, want %s", tt.code, in.Mnemonic, tt.mn)
		}
		if (in.Operand != nil) != tt.operand {
			t.Errorf("% x: operand presence is %t, want %t", tt.code, in.Operand != nil, tt.operand)
			continue
		}
		if in.Operand != nil {
			if in.Operand.Mode != tt.mode {
				t.Errorf("% x: got mode %s, want %s", tt.code, in.Operand.Mode, tt.mode)
			}
			if in.Operand.Value != tt.value {
				t.Errorf("% x: got value $%04x, want $%04x", tt.code, in.Operand.Value, tt.value)
			}
		}
		if in.String() != tt.text {
			t.Errorf("% x: got %q, want %q", tt.code, in.String(), tt.text)
		}
		if in.Size() != len(tt.code) {
			t.Errorf("% x: got size %d, want %d", tt.code, in.Size(), len(tt.code))
		}
	}
}

// Every opcode decodes without error when followed by enough padding, and
// consumes exactly the bytes its size claims.
func TestDecodeAllOpcodes(t *testing.T) {
	for op := 0; op < 256; op++ {
		code := []byte{byte(op), 0x00, 0x00}
		d := disassembler.NewDecoder(code, len(code))
		in, err := d.Next()
		if err != nil {
			t.Errorf("opcode $%02x: %v", op, err)
			continue
		}
		mn, modes := cpu.Lookup(byte(op))
		if in.Mnemonic != mn {
			t.Errorf("opcode $%02x: got %s, want %s", op, in.Mnemonic, mn)
		}
		if modes.Empty() != (in.Operand == nil) {
			t.Errorf("opcode $%02x (%s): operand presence does not match its modes", op, mn)
		}
		if in.Operand != nil && !modes.Has(in.Operand.Mode) {
			t.Errorf("opcode $%02x (%s): mode %s is not allowed", op, mn, in.Operand.Mode)
		}
		if d.Offset() != in.Size() {
			t.Errorf("opcode $%02x (%s): consumed %d bytes, size is %d", op, mn, d.Offset(), in.Size())
		}
	}
}

func TestDecodeBoundary(t *testing.T) {
	// LDA $1234 fits exactly.
	d := disassembler.NewDecoder([]byte{0xAD, 0x34, 0x12}, 3)
	if _, err := d.Next(); err != nil {
		t.Fatalf("exact fit failed: %v", err)
	}
	if d.More() {
		t.Errorf("decoder should be at the limit")
	}

	// One byte short of the operand.
	d = disassembler.NewDecoder([]byte{0xAD, 0x34, 0x12}, 2)
	_, err := d.Next()
	if !errors.Is(err, disassembler.ErrUnexpectedEnd) {
		t.Fatalf("expected unexpected end, got %v", err)
	}
	var end *disassembler.UnexpectedEndError
	if !errors.As(err, &end) {
		t.Fatalf("expected *UnexpectedEndError, got %T", err)
	}
	if end.Position != 1 || end.Needed != 1 {
		t.Errorf("got position %d needed %d, want 1 and 1", end.Position, end.Needed)
	}

	// The failure sticks.
	if _, again := d.Next(); again != err {
		t.Errorf("second call returned %v, want %v", again, err)
	}
	if d.More() || d.Err() != err {
		t.Errorf("failed decoder still reports more input")
	}
}

func TestDecodeLimitBeyondData(t *testing.T) {
	d := disassembler.NewDecoder([]byte{0xEA}, 2)
	if _, err := d.Next(); err != nil {
		t.Fatalf("first instruction: %v", err)
	}
	if !d.More() {
		t.Fatalf("decoder should still be short of the limit")
	}
	_, err := d.Next()
	if !errors.Is(err, disassembler.ErrUnexpectedEnd) {
		t.Errorf("expected unexpected end, got %v", err)
	}
}
