package cpu

// Mode is an addressing mode tag: the shape of the operand that follows an
// opcode byte.
type Mode uint8

// Addressing modes, in the order they are tried when resolving an opcode.
const (
	// Accumulator - operand is the A register: ASL A
	Accumulator Mode = iota
	// Absolute - 16-bit address: $hhll
	Absolute
	// AbsoluteX - 16-bit address indexed by X: $hhll,X
	AbsoluteX
	// AbsoluteY - 16-bit address indexed by Y: $hhll,Y
	AbsoluteY
	// Immediate - 8-bit value: #$nn
	Immediate
	// Implied - no operand.
	Implied
	// Indirect - 16-bit pointer, JMP only: ($hhll)
	Indirect
	// IndirectX - zero-page pointer indexed by X: ($ll,X)
	IndirectX
	// IndirectY - zero-page pointer, result indexed by Y: ($ll),Y
	IndirectY
	// Relative - signed branch offset: $bb
	Relative
	// ZeroPage - 8-bit address: $ll
	ZeroPage
	// ZeroPageX - 8-bit address indexed by X: $ll,X
	ZeroPageX
	// ZeroPageY - 8-bit address indexed by Y: $ll,Y
	ZeroPageY

	modeCount
)

var modeNames = [modeCount]string{
	"Accumulator", "Absolute", "AbsoluteX", "AbsoluteY", "Immediate",
	"Implied", "Indirect", "IndirectX", "IndirectY", "Relative",
	"ZeroPage", "ZeroPageX", "ZeroPageY",
}

func (m Mode) String() string {
	if m >= modeCount {
		return "Invalid"
	}
	return modeNames[m]
}

// Size returns the number of operand bytes following the opcode.
func (m Mode) Size() int {
	switch m {
	case Accumulator, Implied:
		return 0
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		return 2
	case Immediate, IndirectX, IndirectY, Relative, ZeroPage, ZeroPageX, ZeroPageY:
		return 1
	}
	return 0
}

// Matches reports whether the opcode byte op encodes this addressing mode.
// The low five bits of an opcode select a column of the opcode matrix, which
// mostly decides the mode; the range lists cover the columns that split.
func (m Mode) Matches(op byte) bool {
	switch m {
	case Accumulator:
		return op == 0x0A || op == 0x2A || op == 0x4A || op == 0x6A
	case Absolute:
		// JSR is the odd one out in an otherwise implied column.
		if op == 0x20 {
			return true
		}
		return inRanges(op, absoluteRanges)
	case AbsoluteX:
		return inRanges(op, absoluteXRanges)
	case AbsoluteY:
		return op&0x1D == 0x19 || op&0xDE == 0x9E
	case Immediate:
		return op&0x1D == 0x09 || op&0x9D == 0x80
	case Implied:
		switch op & 0x1F {
		case 0x08, 0x0A, 0x12, 0x18:
			return true
		}
		return op&0x9F == 0x02 || (op&0x9F == 0x00 && op != 0x20)
	case Indirect:
		return op == 0x6C
	case IndirectX:
		return op&0x1D == 0x01
	case IndirectY:
		return op&0x1D == 0x11
	case Relative:
		return op&0x1F == 0x10
	case ZeroPage:
		return op&0x1C == 0x04
	case ZeroPageX:
		return inRanges(op, zeroPageXRanges)
	case ZeroPageY:
		return op == 0x96 || op == 0x97 || op == 0xB6 || op == 0xB7
	}
	return false
}

// byteRange is an inclusive range of opcode bytes.
type byteRange struct {
	lo, hi byte
}

var (
	// 0x6C is Indirect, so its row starts one late.
	absoluteRanges = []byteRange{
		{0x0C, 0x0F}, {0x2C, 0x2F}, {0x4C, 0x4F}, {0x6D, 0x6F},
		{0x8C, 0x8F}, {0xAC, 0xAF}, {0xCC, 0xCF}, {0xEC, 0xEF},
	}
	absoluteXRanges = []byteRange{
		{0x1C, 0x1F}, {0x3C, 0x3F}, {0x5C, 0x5F}, {0x7D, 0x7F},
		{0x9C, 0x9D}, {0xBC, 0xBD}, {0xDC, 0xDF}, {0xFC, 0xFF},
	}
	zeroPageXRanges = []byteRange{
		{0x14, 0x17}, {0x34, 0x37}, {0x54, 0x57}, {0x74, 0x77},
		{0x94, 0x95}, {0xB4, 0xB5}, {0xD4, 0xD7}, {0xF4, 0xF7},
	}
)

func inRanges(op byte, ranges []byteRange) bool {
	for _, r := range ranges {
		if op >= r.lo && op <= r.hi {
			return true
		}
	}
	return false
}

// ModeSet is a set of addressing modes an instruction may legally take.
type ModeSet uint16

// NewModeSet builds a set from the given modes.
func NewModeSet(modes ...Mode) ModeSet {
	var s ModeSet
	for _, m := range modes {
		s |= 1 << m
	}
	return s
}

// Has reports whether m is in the set.
func (s ModeSet) Has(m Mode) bool {
	return m < modeCount && s&(1<<m) != 0
}

// Empty reports whether the set has no modes, i.e. the instruction takes no
// operand at all.
func (s ModeSet) Empty() bool {
	return s == 0
}

// Modes lists the members in resolution order.
func (s ModeSet) Modes() []Mode {
	var list []Mode
	for m := Accumulator; m < modeCount; m++ {
		if s.Has(m) {
			list = append(list, m)
		}
	}
	return list
}

// Resolve picks the first mode in the set whose rule matches op.
func (s ModeSet) Resolve(op byte) (Mode, bool) {
	for m := Accumulator; m < modeCount; m++ {
		if s.Has(m) && m.Matches(op) {
			return m, true
		}
	}
	return Implied, false
}

// Restricted mode sets shared by instruction families.
var (
	NoModes = ModeSet(0)

	NoZeroPageY = NewModeSet(Absolute, AbsoluteX, AbsoluteY, Immediate,
		IndirectX, IndirectY, ZeroPage, ZeroPageX)
	NoZeroPageYNoImmediate = NewModeSet(Absolute, AbsoluteX, AbsoluteY,
		IndirectX, IndirectY, ZeroPage, ZeroPageX)
	SimpleXAccumulator = NewModeSet(Accumulator, Absolute, AbsoluteX, ZeroPage, ZeroPageX)
	RelativeOnly       = NewModeSet(Relative)
	Simple             = NewModeSet(Absolute, ZeroPage)
	SimpleOrImmediate  = NewModeSet(Absolute, Immediate, ZeroPage)
	SimpleX            = NewModeSet(Absolute, AbsoluteX, ZeroPage, ZeroPageX)
	AbsoluteIndirect   = NewModeSet(Absolute, Indirect)
	AbsoluteOnly       = NewModeSet(Absolute)
	SimpleYImmediate   = NewModeSet(Absolute, AbsoluteY, Immediate, ZeroPage, ZeroPageY)
	SimpleXImmediate   = NewModeSet(Absolute, AbsoluteX, Immediate, ZeroPage, ZeroPageX)
	ImmediateOnly      = NewModeSet(Immediate)
	AbsoluteXOnly      = NewModeSet(AbsoluteX)
	AbsoluteYOnly      = NewModeSet(AbsoluteY)

	// Store and load families with their own carve-outs.
	ModesSAX = NewModeSet(Absolute, IndirectX, ZeroPage, ZeroPageY)
	ModesSTX = NewModeSet(Absolute, ZeroPage, ZeroPageY)
	ModesSTY = NewModeSet(Absolute, ZeroPage, ZeroPageX)
	ModesAHX = NewModeSet(AbsoluteY, IndirectY)
	ModesLAX = NewModeSet(Absolute, AbsoluteY, IndirectX, IndirectY, ZeroPage, ZeroPageY)
)
