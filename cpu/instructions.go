package cpu

// Mnemonic is the symbolic name of an instruction.
type Mnemonic uint8

// Documented instructions.
const (
	ADC Mnemonic = iota // add with carry
	AND                 // and with accumulator
	ASL                 // arithmetic shift left
	BCC                 // branch on carry clear
	BCS                 // branch on carry set
	BEQ                 // branch on equal
	BIT                 // bit test
	BMI                 // branch on minus
	BNE                 // branch on not equal
	BPL                 // branch on plus
	BRK                 // break
	BVC                 // branch on overflow clear
	BVS                 // branch on overflow set
	CLC                 // clear carry
	CLD                 // clear decimal
	CLI                 // clear interrupt disable
	CLV                 // clear overflow
	CMP                 // compare with accumulator
	CPX                 // compare with X
	CPY                 // compare with Y
	DEC                 // decrement
	DEX                 // decrement X
	DEY                 // decrement Y
	EOR                 // exclusive or with accumulator
	INC                 // increment
	INX                 // increment X
	INY                 // increment Y
	JMP                 // jump
	JSR                 // jump to subroutine
	LDA                 // load accumulator
	LDX                 // load X
	LDY                 // load Y
	LSR                 // logical shift right
	NOP                 // no operation
	ORA                 // or with accumulator
	PHA                 // push accumulator
	PHP                 // push processor status
	PLA                 // pull accumulator
	PLP                 // pull processor status
	ROL                 // rotate left
	ROR                 // rotate right
	RTI                 // return from interrupt
	RTS                 // return from subroutine
	SBC                 // subtract with carry
	SEC                 // set carry
	SED                 // set decimal
	SEI                 // set interrupt disable
	STA                 // store accumulator
	STX                 // store X
	STY                 // store Y
	TAX                 // transfer A to X
	TAY                 // transfer A to Y
	TSX                 // transfer stack pointer to X
	TXA                 // transfer X to A
	TXS                 // transfer X to stack pointer
	TYA                 // transfer Y to A
)

// Undocumented instructions.
const (
	AHX Mnemonic = iota + TYA + 1 // a.k.a. SHA: A AND X AND (H+1) -> M
	ALR                           // AND then LSR
	ANC                           // AND, bit 7 -> carry
	ARR                           // AND then ROR
	AXS                           // a.k.a. SBX: (A AND X) - oper -> X
	DCP                           // DEC then CMP
	ISC                           // INC then SBC
	LAS                           // M AND SP -> A, X, SP
	LAX                           // LDA then LDX
	LXA                           // (A OR CONST) AND oper -> A -> X
	RLA                           // ROL then AND
	RRA                           // ROR then ADC
	SAX                           // A AND X -> M
	SHX                           // X AND (H+1) -> M
	SHY                           // Y AND (H+1) -> M
	SLO                           // ASL then ORA
	SRE                           // LSR then EOR
	TAS                           // A AND X -> SP, A AND X AND (H+1) -> M
	XAA                           // a.k.a. ANE: (A OR CONST) AND X AND oper -> A

	// STP jams the processor. Every unassigned opcode decodes to it.
	STP

	mnemonicCount
)

type mnemonicInfo struct {
	name  string
	modes ModeSet
}

var mnemonics = [mnemonicCount]mnemonicInfo{
	ADC: {"ADC", NoZeroPageY},
	AND: {"AND", NoZeroPageY},
	ASL: {"ASL", SimpleXAccumulator},
	BCC: {"BCC", RelativeOnly},
	BCS: {"BCS", RelativeOnly},
	BEQ: {"BEQ", RelativeOnly},
	BIT: {"BIT", Simple},
	BMI: {"BMI", RelativeOnly},
	BNE: {"BNE", RelativeOnly},
	BPL: {"BPL", RelativeOnly},
	BRK: {"BRK", NoModes},
	BVC: {"BVC", RelativeOnly},
	BVS: {"BVS", RelativeOnly},
	CLC: {"CLC", NoModes},
	CLD: {"CLD", NoModes},
	CLI: {"CLI", NoModes},
	CLV: {"CLV", NoModes},
	CMP: {"CMP", NoZeroPageY},
	CPX: {"CPX", SimpleOrImmediate},
	CPY: {"CPY", SimpleOrImmediate},
	DEC: {"DEC", SimpleX},
	DEX: {"DEX", NoModes},
	DEY: {"DEY", NoModes},
	EOR: {"EOR", NoZeroPageY},
	INC: {"INC", SimpleX},
	INX: {"INX", NoModes},
	INY: {"INY", NoModes},
	JMP: {"JMP", AbsoluteIndirect},
	JSR: {"JSR", AbsoluteOnly},
	LDA: {"LDA", NoZeroPageY},
	LDX: {"LDX", SimpleYImmediate},
	LDY: {"LDY", SimpleXImmediate},
	LSR: {"LSR", SimpleXAccumulator},
	NOP: {"NOP", NoModes},
	ORA: {"ORA", NoZeroPageY},
	PHA: {"PHA", NoModes},
	PHP: {"PHP", NoModes},
	PLA: {"PLA", NoModes},
	PLP: {"PLP", NoModes},
	ROL: {"ROL", SimpleXAccumulator},
	ROR: {"ROR", SimpleXAccumulator},
	RTI: {"RTI", NoModes},
	RTS: {"RTS", NoModes},
	SBC: {"SBC", NoZeroPageY},
	SEC: {"SEC", NoModes},
	SED: {"SED", NoModes},
	SEI: {"SEI", NoModes},
	STA: {"STA", NoZeroPageYNoImmediate},
	STX: {"STX", ModesSTX},
	STY: {"STY", ModesSTY},
	TAX: {"TAX", NoModes},
	TAY: {"TAY", NoModes},
	TSX: {"TSX", NoModes},
	TXA: {"TXA", NoModes},
	TXS: {"TXS", NoModes},
	TYA: {"TYA", NoModes},

	AHX: {"AHX", ModesAHX},
	ALR: {"ALR", ImmediateOnly},
	ANC: {"ANC", ImmediateOnly},
	ARR: {"ARR", ImmediateOnly},
	AXS: {"AXS", ImmediateOnly},
	DCP: {"DCP", NoZeroPageYNoImmediate},
	ISC: {"ISC", NoZeroPageYNoImmediate},
	LAS: {"LAS", AbsoluteYOnly},
	LAX: {"LAX", ModesLAX},
	LXA: {"LXA", ImmediateOnly},
	RLA: {"RLA", NoZeroPageYNoImmediate},
	RRA: {"RRA", NoZeroPageYNoImmediate},
	SAX: {"SAX", ModesSAX},
	SHX: {"SHX", AbsoluteYOnly},
	SHY: {"SHY", AbsoluteXOnly},
	SLO: {"SLO", NoZeroPageYNoImmediate},
	SRE: {"SRE", NoZeroPageYNoImmediate},
	TAS: {"TAS", AbsoluteYOnly},
	XAA: {"XAA", ImmediateOnly},

	STP: {"STP", NoModes},
}

func (mn Mnemonic) String() string {
	if mn >= mnemonicCount {
		return "???"
	}
	return mnemonics[mn].name
}

// Modes returns the addressing modes the instruction accepts. An empty set
// means the instruction has no operand.
func (mn Mnemonic) Modes() ModeSet {
	if mn >= mnemonicCount {
		return NoModes
	}
	return mnemonics[mn].modes
}

// Undocumented reports whether the instruction is outside the official
// instruction set.
func (mn Mnemonic) Undocumented() bool {
	return mn > TYA && mn < mnemonicCount
}

// Opcodes maps every opcode byte to its mnemonic.
var Opcodes = [256]Mnemonic{
	BRK, ORA, STP, SLO, NOP, ORA, ASL, SLO, PHP, ORA, ASL, ANC, NOP, ORA, ASL, SLO, // 00
	BPL, ORA, STP, SLO, NOP, ORA, ASL, SLO, CLC, ORA, NOP, SLO, NOP, ORA, ASL, SLO, // 10
	JSR, AND, STP, RLA, BIT, AND, ROL, RLA, PLP, AND, ROL, ANC, BIT, AND, ROL, RLA, // 20
	BMI, AND, STP, RLA, NOP, AND, ROL, RLA, SEC, AND, NOP, RLA, NOP, AND, ROL, RLA, // 30
	RTI, EOR, STP, SRE, NOP, EOR, LSR, SRE, PHA, EOR, LSR, ALR, JMP, EOR, LSR, SRE, // 40
	BVC, EOR, STP, SRE, NOP, EOR, LSR, SRE, CLI, EOR, NOP, SRE, NOP, EOR, LSR, SRE, // 50
	RTS, ADC, STP, RRA, NOP, ADC, ROR, RRA, PLA, ADC, ROR, ARR, JMP, ADC, ROR, RRA, // 60
	BVS, ADC, STP, RRA, NOP, ADC, ROR, RRA, SEI, ADC, NOP, RRA, NOP, ADC, ROR, RRA, // 70
	NOP, STA, NOP, SAX, STY, STA, STX, SAX, DEY, NOP, TXA, XAA, STY, STA, STX, SAX, // 80
	BCC, STA, STP, AHX, STY, STA, STX, SAX, TYA, STA, TXS, TAS, SHY, STA, SHX, AHX, // 90
	LDY, LDA, LDX, LAX, LDY, LDA, LDX, LAX, TAY, LDA, TAX, LXA, LDY, LDA, LDX, LAX, // A0
	BCS, LDA, STP, LAX, LDY, LDA, LDX, LAX, CLV, LDA, TSX, LAS, LDY, LDA, LDX, LAX, // B0
	CPY, CMP, NOP, DCP, CPY, CMP, DEC, DCP, INY, CMP, DEX, AXS, CPY, CMP, DEC, DCP, // C0
	BNE, CMP, STP, DCP, NOP, CMP, DEC, DCP, CLD, CMP, NOP, DCP, NOP, CMP, DEC, DCP, // D0
	CPX, SBC, NOP, ISC, CPX, SBC, INC, ISC, INX, SBC, NOP, SBC, CPX, SBC, INC, ISC, // E0
	BEQ, SBC, STP, ISC, NOP, SBC, INC, ISC, SED, SBC, NOP, ISC, NOP, SBC, INC, ISC, // F0
}

// Lookup returns the mnemonic for an opcode byte and the addressing modes
// it may take.
func Lookup(op byte) (Mnemonic, ModeSet) {
	mn := Opcodes[op]
	return mn, mn.Modes()
}
