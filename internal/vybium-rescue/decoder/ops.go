package decoder

import "fmt"

// CFOp is a control-flow operation (cf_ops field).
type CFOp uint8

// Control-flow operations
const (
	// Noop advances the cycle without touching the context stack
	CFNoop CFOp = iota

	// Begin opens a new program block
	Begin

	// Tend closes a block entered through its true branch
	Tend

	// Fend closes a block entered through its false branch
	Fend

	// Loop enters a loop body
	Loop

	// Wrap repeats the loop body
	Wrap

	// Break leaves the loop
	Break

	// Void pads the cycle
	Void
)

var cfOpNames = [NumCFOps]string{
	"noop", "begin", "tend", "fend", "loop", "wrap", "break", "void",
}

func (op CFOp) String() string {
	if uint64(op) < NumCFOps {
		return cfOpNames[op]
	}
	return fmt.Sprintf("CFOp(%d)", uint8(op))
}

// LDOp is a low-degree stack operation (ld_ops field).
type LDOp uint8

// Low-degree stack operations
const (
	LDNoop LDOp = iota
	Assert
	AssertEq
	Drop
	Drop4
	Read
	Read2
	Dup
	Dup2
	Dup4
	Pad2
	Swap
	Swap2
	Swap4
	Roll4
	Roll8
	Choose
	Choose2
	CSwap2
	Add
	Mul
	And
	Or
	Inv
	Neg
	Not
	Eq
	Incr
	Sub
	Lt
	Gt
	Halt
)

var ldOpNames = [NumLDOps]string{
	"noop", "assert", "asserteq", "drop", "drop4", "read", "read2", "dup",
	"dup2", "dup4", "pad2", "swap", "swap2", "swap4", "roll4", "roll8",
	"choose", "choose2", "cswap2", "add", "mul", "and", "or", "inv",
	"neg", "not", "eq", "incr", "sub", "lt", "gt", "halt",
}

func (op LDOp) String() string {
	if uint64(op) < NumLDOps {
		return ldOpNames[op]
	}
	return fmt.Sprintf("LDOp(%d)", uint8(op))
}

// HDOp is a high-degree operation (hd_ops field), including the
// hash-domain round.
type HDOp uint8

// High-degree operations
const (
	HDNoop HDOp = iota
	Push
	Cmp
	RescR
)

var hdOpNames = [NumHDOps]string{"noop", "push", "cmp", "rescr"}

func (op HDOp) String() string {
	if uint64(op) < NumHDOps {
		return hdOpNames[op]
	}
	return fmt.Sprintf("HDOp(%d)", uint8(op))
}

// Every enumerated opcode has a name.
var (
	_ = [1]struct{}{}[int(Void)+1-NumCFOps]
	_ = [1]struct{}{}[int(Halt)+1-NumLDOps]
	_ = [1]struct{}{}[int(RescR)+1-NumHDOps]
)
