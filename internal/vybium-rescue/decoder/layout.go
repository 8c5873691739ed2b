// Package decoder defines the bit-field layout of the VM decoder register.
//
// The decoder register is a single 64-bit word sampled once per VM cycle:
//
//	 ctr ╒═════ sponge ══════╕╒═══ cf_ops ══╕╒═══════ ld_ops ═══════╕╒═ hd_ops ╕╒═ ctx ══╕╒═ loop ═╕╒ reserved ╕
//	  0    1    2    3    4    5    6    7    8    9    10   11   12   13   14   15 .. 19  20 .. 23  24 .. 63
//	├────┴────┴────┴────┴────┴────┴────┴────┴────┴────┴────┴────┴────┴────┴────┴─────────┴─────────┴──────────┤
//
// Every relation between the constants below is asserted at compile time;
// a layout edit that breaks one of them does not build.
package decoder

// System-wide sizing bounds
const (
	MaxContextDepth    = 16
	MaxLoopDepth       = 8
	MinTraceLength     = 16
	MaxRegisterCount   = 128
	MinExtensionFactor = 16
	BaseCycleLength    = 16

	MinStackDepth   = 8
	MinContextDepth = 1
	MinLoopDepth    = 1
)

// Push operation
const PushOpAlignment = 8

// Hash operation
const (
	HashStateRate     = 4
	HashStateCapacity = 2
	HashStateWidth    = HashStateRate + HashStateCapacity
	HashNumRounds     = 10
	HashDigestSize    = 2
)

// Operation sponge
const (
	SpongeWidth       = 4
	ProgramDigestSize = 2
	HaccNumRounds     = 14
)

// Stack layout: MaxStackDepth user registers, each one field element.
const (
	MaxPublicInputs = 8
	MaxOutputs      = MaxPublicInputs
	MaxStackDepth   = 32
)

// RegisterWidth is the width of the decoder register in bits.
const RegisterWidth = 64

// Opcode field widths and operation counts
const (
	NumCFOpBits = 3
	NumLDOpBits = 5
	NumHDOpBits = 2

	NumCFOps = 8
	NumLDOps = 32
	NumHDOps = 4
)

// Field boundaries, half-open [Start, End)
const (
	OpCounterIdx = 0

	spongeStart = 1
	spongeEnd   = 5

	cfOpStart = 5
	cfOpEnd   = 8

	ldOpStart = 8
	ldOpEnd   = 13

	hdOpStart = 13
	hdOpEnd   = 15

	ctxDepthStart = 15
	ctxDepthEnd   = 20

	loopDepthStart = 20
	loopDepthEnd   = 24

	reservedStart = loopDepthEnd
)

var (
	OpCounterRange = BitRange{Start: OpCounterIdx, End: OpCounterIdx + 1}
	SpongeRange    = BitRange{Start: spongeStart, End: spongeEnd}
	CFOpBitsRange  = BitRange{Start: cfOpStart, End: cfOpEnd}
	LDOpBitsRange  = BitRange{Start: ldOpStart, End: ldOpEnd}
	HDOpBitsRange  = BitRange{Start: hdOpStart, End: hdOpEnd}
	CtxDepthRange  = BitRange{Start: ctxDepthStart, End: ctxDepthEnd}
	LoopDepthRange = BitRange{Start: loopDepthStart, End: loopDepthEnd}
	ReservedRange  = BitRange{Start: reservedStart, End: RegisterWidth}
)

// Compile-time layout checks. [1]struct{}{}[x] builds only when x == 0 and
// [x]struct{}{} builds only when x >= 0.
var (
	// opcode counts exactly fill their bits
	_ = [1]struct{}{}[NumCFOps-(1<<NumCFOpBits)]
	_ = [1]struct{}{}[NumLDOps-(1<<NumLDOpBits)]
	_ = [1]struct{}{}[NumHDOps-(1<<NumHDOpBits)]

	// range widths match the declared bit counts
	_ = [1]struct{}{}[(cfOpEnd-cfOpStart)-NumCFOpBits]
	_ = [1]struct{}{}[(ldOpEnd-ldOpStart)-NumLDOpBits]
	_ = [1]struct{}{}[(hdOpEnd-hdOpStart)-NumHDOpBits]
	_ = [1]struct{}{}[(spongeEnd-spongeStart)-SpongeWidth]

	// ranges are contiguous, so none overlap
	_ = [1]struct{}{}[spongeStart-(OpCounterIdx+1)]
	_ = [1]struct{}{}[cfOpStart-spongeEnd]
	_ = [1]struct{}{}[ldOpStart-cfOpEnd]
	_ = [1]struct{}{}[hdOpStart-ldOpEnd]
	_ = [1]struct{}{}[ctxDepthStart-hdOpEnd]
	_ = [1]struct{}{}[loopDepthStart-ctxDepthEnd]

	// the declared fields fit in the register
	_ = [RegisterWidth - reservedStart]struct{}{}

	// depth counters fit their ranges
	_ = [(1 << (ctxDepthEnd - ctxDepthStart)) - MaxContextDepth - 1]struct{}{}
	_ = [(1 << (loopDepthEnd - loopDepthStart)) - MaxLoopDepth - 1]struct{}{}

	// sponge and stack relations
	_ = [1]struct{}{}[HashStateWidth-(HashStateRate+HashStateCapacity)]
	_ = [1]struct{}{}[SpongeWidth-HashStateRate]
	_ = [1]struct{}{}[MaxOutputs-MaxPublicInputs]
	_ = [MaxStackDepth - MinStackDepth]struct{}{}
)
