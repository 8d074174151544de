package pca963x

// Mode1 is the bit set held in the MODE1 register: oscillator sleep and the
// enables for the three sub-addresses and the all-call address.
type Mode1 uint8

// MODE1 register bits.
const (
	Mode1Sleep   Mode1 = 0b0001_0000
	Mode1Sub1    Mode1 = 0b0000_1000
	Mode1Sub2    Mode1 = 0b0000_0100
	Mode1Sub3    Mode1 = 0b0000_0010
	Mode1AllCall Mode1 = 0b0000_0001
)

// Has reports whether all bits of f are set.
func (m Mode1) Has(f Mode1) bool { return m&f == f }

// Mode2 is the bit set held in the MODE2 register: group dimming/blinking
// selection, output inversion, output latch timing, output structure and the
// paired OUTNE bits.
type Mode2 uint8

// MODE2 register bits. Mode2OutNE1 and Mode2OutNE0 jointly encode the idle
// output state and are only ever written as a pair through Config.OutNE.
const (
	Mode2DmBlink Mode2 = 0b0010_0000
	Mode2Invert  Mode2 = 0b0001_0000
	Mode2Och     Mode2 = 0b0000_1000
	Mode2OutDrv  Mode2 = 0b0000_0100
	Mode2OutNE1  Mode2 = 0b0000_0010
	Mode2OutNE0  Mode2 = 0b0000_0001
)

// Has reports whether all bits of f are set.
func (m Mode2) Has(f Mode2) bool { return m&f == f }

// OutputChange selects when the outputs latch a written value.
type OutputChange uint8

const (
	// ChangeOnStop latches outputs on the bus STOP condition.
	ChangeOnStop OutputChange = iota
	// ChangeOnACK latches outputs on each register ACK.
	ChangeOnACK
)

// OutputDrive selects the output stage structure.
type OutputDrive uint8

const (
	// OpenDrain configures the outputs as open-drain.
	OpenDrain OutputDrive = iota
	// TotemPole configures the outputs as totem pole.
	TotemPole
)

// IdleOutput is the state the outputs assume while output enable is
// deasserted. The fourth bit combination of the OUTNE pair is reserved by the
// chip and cannot be expressed.
type IdleOutput uint8

const (
	// IdleLow drives the outputs low.
	IdleLow IdleOutput = iota
	// IdleHigh drives the outputs high when the stage is totem pole, and
	// leaves them high-impedance when it is open-drain.
	IdleHigh
	// IdleHighZ leaves the outputs high-impedance.
	IdleHighZ
)

// Config holds the two mode bytes a device boots from. The zero value is not
// meaningful; start from DefaultConfig. Setters take and return Config by
// value so a configuration is built as a chain:
//
//	cfg := pca963x.DefaultConfig().Sleep(false).Blink(true)
//
// Applying the same setter with the same argument twice is a no-op, and
// setters for distinct flags can be chained in any order.
type Config struct {
	mode1 Mode1
	mode2 Mode2
}

// DefaultConfig returns the power-on reset state of the chip: oscillator in
// sleep, all-call enabled, open-drain bit set and idle output high.
func DefaultConfig() Config {
	return Config{
		mode1: Mode1Sleep | Mode1AllCall,
		mode2: Mode2OutDrv | Mode2OutNE0,
	}
}

// Mode1 returns the MODE1 byte of the configuration.
func (c Config) Mode1() Mode1 { return c.mode1 }

// Mode2 returns the MODE2 byte of the configuration.
func (c Config) Mode2() Mode2 { return c.mode2 }

func (c Config) with1(f Mode1, on bool) Config {
	if on {
		c.mode1 |= f
	} else {
		c.mode1 &^= f
	}
	return c
}

func (c Config) with2(f Mode2, on bool) Config {
	if on {
		c.mode2 |= f
	} else {
		c.mode2 &^= f
	}
	return c
}

// Sub1 enables or disables response to sub-address 1.
func (c Config) Sub1(enable bool) Config { return c.with1(Mode1Sub1, enable) }

// Sub2 enables or disables response to sub-address 2.
func (c Config) Sub2(enable bool) Config { return c.with1(Mode1Sub2, enable) }

// Sub3 enables or disables response to sub-address 3.
func (c Config) Sub3(enable bool) Config { return c.with1(Mode1Sub3, enable) }

// AllCall enables or disables response to the all-call address.
func (c Config) AllCall(enable bool) Config { return c.with1(Mode1AllCall, enable) }

// Sleep stops or starts the internal oscillator. All outputs are off while
// the oscillator is stopped.
func (c Config) Sleep(enable bool) Config { return c.with1(Mode1Sleep, enable) }

// Blink selects whether the group registers control blinking (true) or
// dimming (false).
func (c Config) Blink(enable bool) Config { return c.with2(Mode2DmBlink, enable) }

// Invert inverts the output logic state. Use when an external driver stage
// inverts the signal.
func (c Config) Invert(enable bool) Config { return c.with2(Mode2Invert, enable) }

// Och selects when written output values take effect on the pins.
func (c Config) Och(m OutputChange) Config { return c.with2(Mode2Och, m == ChangeOnACK) }

// OutDrv selects the output stage structure.
func (c Config) OutDrv(m OutputDrive) Config { return c.with2(Mode2OutDrv, m == TotemPole) }

// OutNE sets the idle output state. Both OUTNE bits are replaced in one step;
// the pair has no meaningful intermediate values and is deliberately not
// settable bit by bit.
func (c Config) OutNE(m IdleOutput) Config {
	c.mode2 &^= Mode2OutNE1 | Mode2OutNE0
	switch m {
	case IdleHigh:
		c.mode2 |= Mode2OutNE0
	case IdleHighZ:
		c.mode2 |= Mode2OutNE1
	}
	return c
}
