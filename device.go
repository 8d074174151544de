package pca963x

import (
	"github.com/qleds/go-pca963x/i2cdriver"
)

// OutputMode is the 2-bit output mode of a single channel, packed four
// channels per LEDOUT register.
type OutputMode uint8

const (
	FullyOff OutputMode = iota // output held off
	FullyOn                    // output held on
	PWM                        // brightness from the channel's duty register
	PWMGroup                   // duty further modulated by the group duty/blink registers
)

// Dev is a single PCA963x device on a bus. The channel type parameter binds
// the device to the channel set of its variant.
//
// Dev holds no chip state beyond the bus and address: every operation that
// needs current register contents reads them from the chip. Operations are
// synchronous and perform no retries; a transport error aborts the operation
// and is returned unchanged. WriteOut is a read-modify-write across two bus
// transactions, so concurrent use of one device, or of two devices bound to
// the same chip, needs external serialization.
type Dev[C Channel] struct {
	bus  i2cdriver.I2C
	addr uint16
	regs registers

	// Scratch for tx and rx, so steady-state operation does not allocate.
	buf [3]byte
}

// NewPCA9633 returns a driver for the 4-channel part at the given package
// address. No bus traffic is issued.
func NewPCA9633(bus i2cdriver.I2C, addr Address) *Dev[Channel4] {
	return &Dev[Channel4]{bus: bus, addr: uint16(addr.Resolve()), regs: pca9633Regs}
}

// NewPCA9633WithConfig is NewPCA9633 followed by one WriteConfig.
func NewPCA9633WithConfig(bus i2cdriver.I2C, addr Address, cfg Config) (*Dev[Channel4], error) {
	d := NewPCA9633(bus, addr)
	if err := d.WriteConfig(cfg); err != nil {
		return nil, err
	}
	return d, nil
}

// NewPCA9634 returns a driver for the 8-channel part at the given package
// address. No bus traffic is issued.
func NewPCA9634(bus i2cdriver.I2C, addr Address) *Dev[Channel8] {
	return &Dev[Channel8]{bus: bus, addr: uint16(addr.Resolve()), regs: pca9634Regs}
}

// NewPCA9634WithConfig is NewPCA9634 followed by one WriteConfig.
func NewPCA9634WithConfig(bus i2cdriver.I2C, addr Address, cfg Config) (*Dev[Channel8], error) {
	d := NewPCA9634(bus, addr)
	if err := d.WriteConfig(cfg); err != nil {
		return nil, err
	}
	return d, nil
}

// ReadRegister reads one register: a bus write of the register address
// followed by a one byte bus read.
func (d *Dev[C]) ReadRegister(reg uint8) (uint8, error) {
	d.buf[0] = reg
	if err := d.bus.Tx(d.addr, d.buf[:1], d.buf[1:2]); err != nil {
		return 0, err
	}
	return d.buf[1], nil
}

// WriteRegister writes one register in a single bus write.
func (d *Dev[C]) WriteRegister(reg, value uint8) error {
	d.buf[0] = reg
	d.buf[1] = value
	return d.bus.Tx(d.addr, d.buf[:2], nil)
}

// WriteConfig writes both mode registers in one bus transaction, using the
// chip's auto-increment addressing so MODE1 and MODE2 take effect together.
// Writing them as two transactions would expose an intermediate state with
// only one mode byte applied.
func (d *Dev[C]) WriteConfig(cfg Config) error {
	d.buf[0] = aiAll | d.regs.mode1
	d.buf[1] = uint8(cfg.mode1)
	d.buf[2] = uint8(cfg.mode2)
	return d.bus.Tx(d.addr, d.buf[:3], nil)
}

// WriteDuty writes the channel's individual PWM duty register.
func (d *Dev[C]) WriteDuty(ch C, value uint8) error {
	return d.WriteRegister(d.regs.pwm0+ch.offset(), value)
}

// ReadDuty reads the channel's individual PWM duty register.
func (d *Dev[C]) ReadDuty(ch C) (uint8, error) {
	return d.ReadRegister(d.regs.pwm0 + ch.offset())
}

// WriteOut sets the channel's output mode. Each LEDOUT register packs four
// channels at two bits each, so this reads the covering register, replaces
// the channel's field and writes it back. If the read fails no write is
// attempted.
func (d *Dev[C]) WriteOut(ch C, mode OutputMode) error {
	offs := ch.offset()
	reg := d.regs.ledOut0 + offs/4
	v, err := d.ReadRegister(reg)
	if err != nil {
		return err
	}
	shift := (offs % 4) * 2
	v &^= 0x03 << shift
	v |= uint8(mode&0x03) << shift
	return d.WriteRegister(reg, v)
}

// WriteGroupDuty writes the group duty register, which dims all channels in
// PWMGroup mode, or sets their blink duty when blinking is selected in MODE2.
func (d *Dev[C]) WriteGroupDuty(value uint8) error {
	return d.WriteRegister(d.regs.grpPWM, value)
}

// WriteGroupFreq writes the group frequency register. The chip only uses it
// when blinking is selected in MODE2; this is not checked here.
func (d *Dev[C]) WriteGroupFreq(value uint8) error {
	return d.WriteRegister(d.regs.grpFreq, value)
}

// WriteSubAddress1 sets the 7-bit sub-address 1. The chip only responds to it
// once Sub1 is enabled in the active configuration.
func (d *Dev[C]) WriteSubAddress1(addr uint8) error {
	return d.WriteRegister(d.regs.subAdr1, addr<<1)
}

// WriteSubAddress2 sets the 7-bit sub-address 2. The chip only responds to it
// once Sub2 is enabled in the active configuration.
func (d *Dev[C]) WriteSubAddress2(addr uint8) error {
	return d.WriteRegister(d.regs.subAdr2, addr<<1)
}

// WriteSubAddress3 sets the 7-bit sub-address 3. The chip only responds to it
// once Sub3 is enabled in the active configuration.
func (d *Dev[C]) WriteSubAddress3(addr uint8) error {
	return d.WriteRegister(d.regs.subAdr3, addr<<1)
}

// WriteAllCallAddress sets the 7-bit all-call address. The chip only responds
// to it once AllCall is enabled in the active configuration.
func (d *Dev[C]) WriteAllCallAddress(addr uint8) error {
	return d.WriteRegister(d.regs.allCallAdr, addr<<1)
}
