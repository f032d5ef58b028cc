package cpu

import "github.com/vaelen/v6502/mask"

// StatusFlag names one bit of the status register. SR is kept as a single
// byte rather than seven booleans because programs observe it bit-for-bit
// through PHP/PLP/BRK/RTI.
type StatusFlag byte

const (
	FlagCarry            StatusFlag = 1 << 0
	FlagZero             StatusFlag = 1 << 1
	FlagInterruptDisable StatusFlag = 1 << 2
	FlagDecimal          StatusFlag = 1 << 3
	FlagBreak            StatusFlag = 1 << 4
	FlagUnused           StatusFlag = 1 << 5
	FlagOverflow         StatusFlag = 1 << 6
	FlagNegative         StatusFlag = 1 << 7
)

// Flag reports whether f is set in SR, reading the bit through mask's
// MSB-first accessor (FlagNegative is mask.I1, FlagCarry is mask.I8).
func (p *Processor) Flag(f StatusFlag) bool {
	switch f {
	case FlagNegative:
		return mask.IsSet(p.SR, mask.I1)
	case FlagOverflow:
		return mask.IsSet(p.SR, mask.I2)
	case FlagUnused:
		return mask.IsSet(p.SR, mask.I3)
	case FlagBreak:
		return mask.IsSet(p.SR, mask.I4)
	case FlagDecimal:
		return mask.IsSet(p.SR, mask.I5)
	case FlagInterruptDisable:
		return mask.IsSet(p.SR, mask.I6)
	case FlagZero:
		return mask.IsSet(p.SR, mask.I7)
	default: // FlagCarry
		return mask.IsSet(p.SR, mask.I8)
	}
}

// SetFlag sets or clears f in SR, through mask.Set/mask.Unset.
func (p *Processor) SetFlag(f StatusFlag, set bool) {
	switch f {
	case FlagNegative:
		p.SR = setOrClear(p.SR, mask.I1, set)
	case FlagOverflow:
		p.SR = setOrClear(p.SR, mask.I2, set)
	case FlagUnused:
		p.SR = setOrClear(p.SR, mask.I3, set)
	case FlagBreak:
		p.SR = setOrClear(p.SR, mask.I4, set)
	case FlagDecimal:
		p.SR = setOrClear(p.SR, mask.I5, set)
	case FlagInterruptDisable:
		p.SR = setOrClear(p.SR, mask.I6, set)
	case FlagZero:
		p.SR = setOrClear(p.SR, mask.I7, set)
	default: // FlagCarry
		p.SR = setOrClear(p.SR, mask.I8, set)
	}
}

func setOrClear(b byte, pos mask.I, set bool) byte {
	if set {
		return mask.Set(b, pos, 1)
	}
	return mask.Unset(b, pos, pos)
}

// updateNZ sets Z and N from v, the shared tail of every instruction that
// defines them.
func (p *Processor) updateNZ(v byte) {
	p.SetFlag(FlagZero, v == 0)
	p.SetFlag(FlagNegative, v&0x80 != 0)
}
