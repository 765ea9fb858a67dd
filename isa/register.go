package isa

// Register is a 2-bit register index.
type Register uint8

const (
	REG_R0 = Register(0)
	REG_R1 = Register(1)
	REG_R2 = Register(2)
	REG_R3 = Register(3)
)

// registerMap maps register names and their aliases to indexes.
// Names are case sensitive.
var registerMap = map[string]Register{
	"R0": REG_R0,
	"A":  REG_R0,
	"R1": REG_R1,
	"B":  REG_R1,
	"R2": REG_R2,
	"C":  REG_R2,
	"R3": REG_R3,
	"D":  REG_R3,
}

// LookupRegister returns the register index for a name.
func LookupRegister(name string) (reg Register, ok bool) {
	reg, ok = registerMap[name]
	return
}
