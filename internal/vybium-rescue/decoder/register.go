package decoder

import (
	"errors"
	"fmt"
)

var (
	// ErrReservedBits is returned when a register has bits set outside all declared fields
	ErrReservedBits = errors.New("reserved register bits are set")

	// ErrOpcodeRange is returned when an opcode is not below its operation count
	ErrOpcodeRange = errors.New("opcode out of range")

	// ErrFieldOverflow is returned when a value does not fit its bit range
	ErrFieldOverflow = errors.New("value does not fit bit range")

	// ErrDepthRange is returned when a context or loop depth exceeds its maximum
	ErrDepthRange = errors.New("depth out of range")
)

// Register is one decoder register word.
type Register uint64

// BitRange is a half-open range of bit positions [Start, End).
type BitRange struct {
	Start uint
	End   uint
}

// Width returns the number of bits in the range.
func (r BitRange) Width() uint {
	return r.End - r.Start
}

// Max returns the largest value the range can hold.
func (r BitRange) Max() uint64 {
	if r.Width() >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << r.Width()) - 1
}

// Mask returns the in-place mask of the range.
func (r BitRange) Mask() Register {
	return Register(r.Max() << r.Start)
}

// Overlaps reports whether two ranges share a bit.
func (r BitRange) Overlaps(other BitRange) bool {
	return r.Start < other.End && other.Start < r.End
}

// Extract returns the value stored in the range.
func (r BitRange) Extract(reg Register) uint64 {
	return (uint64(reg) >> r.Start) & r.Max()
}

// Insert returns reg with the range overwritten by v.
func (r BitRange) Insert(reg Register, v uint64) (Register, error) {
	if v > r.Max() {
		return reg, fmt.Errorf("%w: %d needs more than %d bits", ErrFieldOverflow, v, r.Width())
	}
	return (reg &^ r.Mask()) | Register(v<<r.Start), nil
}

func (r BitRange) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// Fields is the decoded content of a Register.
type Fields struct {
	OpCounter bool
	Sponge    uint8
	CFOp      CFOp
	LDOp      LDOp
	HDOp      HDOp
	CtxDepth  uint8
	LoopDepth uint8
}

// Encode packs f into a register word.
func Encode(f Fields) (Register, error) {
	if uint64(f.CFOp) >= NumCFOps {
		return 0, fmt.Errorf("%w: cf op %d >= %d", ErrOpcodeRange, f.CFOp, NumCFOps)
	}
	if uint64(f.LDOp) >= NumLDOps {
		return 0, fmt.Errorf("%w: ld op %d >= %d", ErrOpcodeRange, f.LDOp, NumLDOps)
	}
	if uint64(f.HDOp) >= NumHDOps {
		return 0, fmt.Errorf("%w: hd op %d >= %d", ErrOpcodeRange, f.HDOp, NumHDOps)
	}
	if f.CtxDepth > MaxContextDepth {
		return 0, fmt.Errorf("%w: context depth %d > %d", ErrDepthRange, f.CtxDepth, MaxContextDepth)
	}
	if f.LoopDepth > MaxLoopDepth {
		return 0, fmt.Errorf("%w: loop depth %d > %d", ErrDepthRange, f.LoopDepth, MaxLoopDepth)
	}

	var counter uint64
	if f.OpCounter {
		counter = 1
	}

	fields := []struct {
		name  string
		rng   BitRange
		value uint64
	}{
		{"op counter", OpCounterRange, counter},
		{"sponge", SpongeRange, uint64(f.Sponge)},
		{"cf op", CFOpBitsRange, uint64(f.CFOp)},
		{"ld op", LDOpBitsRange, uint64(f.LDOp)},
		{"hd op", HDOpBitsRange, uint64(f.HDOp)},
		{"context depth", CtxDepthRange, uint64(f.CtxDepth)},
		{"loop depth", LoopDepthRange, uint64(f.LoopDepth)},
	}

	var reg Register
	for _, fld := range fields {
		var err error
		reg, err = fld.rng.Insert(reg, fld.value)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", fld.name, err)
		}
	}
	return reg, nil
}

// Decode unpacks a register word, rejecting words with reserved bits set or
// with field values outside their enumerated ranges.
func Decode(reg Register) (Fields, error) {
	if reg&ReservedRange.Mask() != 0 {
		return Fields{}, fmt.Errorf("%w: %#x", ErrReservedBits, uint64(reg&ReservedRange.Mask()))
	}

	f := Fields{
		OpCounter: OpCounterRange.Extract(reg) == 1,
		Sponge:    uint8(SpongeRange.Extract(reg)),
		CFOp:      CFOp(CFOpBitsRange.Extract(reg)),
		LDOp:      LDOp(LDOpBitsRange.Extract(reg)),
		HDOp:      HDOp(HDOpBitsRange.Extract(reg)),
		CtxDepth:  uint8(CtxDepthRange.Extract(reg)),
		LoopDepth: uint8(LoopDepthRange.Extract(reg)),
	}

	// Opcode fields are exactly filled today; these guard future layouts
	// where a count is not a power of two.
	if uint64(f.CFOp) >= NumCFOps {
		return Fields{}, fmt.Errorf("%w: cf op %d", ErrOpcodeRange, f.CFOp)
	}
	if uint64(f.LDOp) >= NumLDOps {
		return Fields{}, fmt.Errorf("%w: ld op %d", ErrOpcodeRange, f.LDOp)
	}
	if uint64(f.HDOp) >= NumHDOps {
		return Fields{}, fmt.Errorf("%w: hd op %d", ErrOpcodeRange, f.HDOp)
	}
	if f.CtxDepth > MaxContextDepth {
		return Fields{}, fmt.Errorf("%w: context depth %d", ErrDepthRange, f.CtxDepth)
	}
	if f.LoopDepth > MaxLoopDepth {
		return Fields{}, fmt.Errorf("%w: loop depth %d", ErrDepthRange, f.LoopDepth)
	}
	return f, nil
}

// FieldSpec describes one named field of the register.
type FieldSpec struct {
	Name    string
	Range   BitRange
	Meaning string
}

// Layout lists the register fields in bit order, reserved padding last.
func Layout() []FieldSpec {
	return []FieldSpec{
		{"op_counter", OpCounterRange, "cycle counter flag"},
		{"sponge", SpongeRange, "operation sponge state slot"},
		{"cf_ops", CFOpBitsRange, fmt.Sprintf("control-flow opcode (%d ops)", NumCFOps)},
		{"ld_ops", LDOpBitsRange, fmt.Sprintf("low-degree stack opcode (%d ops)", NumLDOps)},
		{"hd_ops", HDOpBitsRange, fmt.Sprintf("high-degree / hash-domain opcode (%d ops)", NumHDOps)},
		{"ctx_depth", CtxDepthRange, fmt.Sprintf("context depth (max %d)", MaxContextDepth)},
		{"loop_depth", LoopDepthRange, fmt.Sprintf("loop depth (max %d)", MaxLoopDepth)},
		{"reserved", ReservedRange, "must be zero"},
	}
}
