package disassembler

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/pkg/errors"

	"github.com/Urethramancer/nesdis/logger"
)

// BaseAddress is where PRG-ROM is mapped in the CPU address space.
const BaseAddress = 0x8000

const logTag = "disassembler"

// Program is a decoded PRG-ROM in byte order.
type Program struct {
	Instructions []Instruction
	// Size is the declared byte length the program was decoded from.
	Size int
}

// Line is one row of a listing.
type Line struct {
	Address int
	Instruction
}

// DecodeProgram decodes code from offset 0 until limit bytes have been
// consumed. The last instruction may end exactly on the limit. Any decode
// error aborts the whole program and nothing is returned.
func DecodeProgram(code []byte, limit int) (*Program, error) {
	d := NewDecoder(code, limit)
	p := &Program{Size: d.limit}
	undocumented := 0
	for d.More() {
		at := d.Offset()
		in, err := d.Next()
		if err != nil {
			return nil, errors.Wrapf(err, "instruction %d at $%04x", len(p.Instructions), BaseAddress+at)
		}
		if in.Mnemonic.Undocumented() {
			undocumented++
		}
		p.Instructions = append(p.Instructions, in)
	}

	logger.Logf(logTag, "decoded %d instructions (%d undocumented) from %d bytes",
		len(p.Instructions), undocumented, p.Size)
	return p, nil
}

// AddressWidth is the number of hex digits needed for the highest address
// the program reaches.
func (p *Program) AddressWidth() int {
	return int(math.Ceil(math.Log2(float64(p.Size+BaseAddress)) / 4))
}

// Lines pairs each instruction with its address, starting at BaseAddress.
func (p *Program) Lines() []Line {
	lines := make([]Line, 0, len(p.Instructions))
	addr := BaseAddress
	for _, in := range p.Instructions {
		lines = append(lines, Line{Address: addr, Instruction: in})
		addr += in.Size()
	}
	return lines
}

// Render returns the listing, one instruction per line, without a trailing
// newline.
func (p *Program) Render() string {
	width := p.AddressWidth()
	lines := p.Lines()
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = fmt.Sprintf("$%0*x    %s", width, l.Address, l.Instruction)
	}
	return strings.Join(out, "\n")
}

// WriteTo writes the listing followed by a newline.
func (p *Program) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, p.Render()+"\n")
	return int64(n), err
}

// Disassemble decodes all of code and returns the listing.
func Disassemble(code []byte) (string, error) {
	if len(code) == 0 {
		return "", nil
	}
	p, err := DecodeProgram(code, len(code))
	if err != nil {
		return "", err
	}
	return p.Render(), nil
}
