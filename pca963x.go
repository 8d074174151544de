// Package pca963x implements a driver for the NXP PCA963x family of I2C LED
// controllers, covering the 4-channel and 8-channel parts which share one
// register model. The driver translates channel, configuration and group
// settings into register transactions on an I2C bus supplied by the caller;
// it keeps no mirror of chip state and issues no bus traffic beyond what each
// call requires.
package pca963x

// Address yields the 7-bit bus address a device responds to, derived from the
// wiring of its package. Resolution is pure bit composition: address pins are
// physical strap levels, not validated input, so every combination resolves
// to some address.
type Address interface {
	Resolve() uint8
}

// Addr8Pin is the 8-pin package, which has no address pins and always
// responds at 0x62.
type Addr8Pin struct{}

// Resolve implements Address.
func (Addr8Pin) Resolve() uint8 { return 0x62 }

// Addr10Pin is the 10-pin package with two address straps on base 0x60.
type Addr10Pin struct {
	A1, A0 bool
}

// Resolve implements Address.
func (a Addr10Pin) Resolve() uint8 {
	addr := uint8(0x60)
	if a.A0 {
		addr |= 1 << 0
	}
	if a.A1 {
		addr |= 1 << 1
	}
	return addr
}

// Addr16Pin is the 16-pin package with seven address straps forming the whole
// 7-bit address.
type Addr16Pin struct {
	A6, A5, A4, A3, A2, A1, A0 bool
}

// Resolve implements Address.
func (a Addr16Pin) Resolve() uint8 {
	var addr uint8
	for i, pin := range [7]bool{a.A0, a.A1, a.A2, a.A3, a.A4, a.A5, a.A6} {
		if pin {
			addr |= 1 << i
		}
	}
	return addr
}

// AddrCustom is a caller-supplied bus address, used when the device sits
// behind non-standard wiring or a bus mux. Only the low 7 bits are
// significant.
type AddrCustom uint8

// Resolve implements Address.
func (a AddrCustom) Resolve() uint8 { return uint8(a) & 0x7f }
