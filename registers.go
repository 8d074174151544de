package pca963x

// registers is the register layout of one part in the family. The two
// variants share the model but place the group, output-mode and address
// registers after their differing number of PWM registers.
type registers struct {
	mode1      uint8
	mode2      uint8
	pwm0       uint8 // first per-channel duty register, one per channel
	grpPWM     uint8
	grpFreq    uint8
	ledOut0    uint8 // first output-mode register, 4 channels per register
	subAdr1    uint8
	subAdr2    uint8
	subAdr3    uint8
	allCallAdr uint8
}

var (
	pca9633Regs = registers{
		mode1:      0x00,
		mode2:      0x01,
		pwm0:       0x02,
		grpPWM:     0x06,
		grpFreq:    0x07,
		ledOut0:    0x08,
		subAdr1:    0x09,
		subAdr2:    0x0a,
		subAdr3:    0x0b,
		allCallAdr: 0x0c,
	}

	pca9634Regs = registers{
		mode1:      0x00,
		mode2:      0x01,
		pwm0:       0x02,
		grpPWM:     0x0a,
		grpFreq:    0x0b,
		ledOut0:    0x0c,
		subAdr1:    0x0e,
		subAdr2:    0x0f,
		subAdr3:    0x10,
		allCallAdr: 0x11,
	}
)

// Auto-increment codes, OR'd into the register byte of a multi-byte write to
// select which registers the following bytes land in.
const (
	aiNone         = 0b0000_0000 // every byte goes to the addressed register
	aiAll          = 0b1000_0000 // all registers, wrapping at the end of the map
	aiBrightness   = 0b1010_0000 // individual brightness registers only
	aiGlobal       = 0b1100_0000 // global control registers only
	aiGlobalBright = 0b1110_0000 // individual and global brightness registers
)
