package pca963x

// Channel is the constraint satisfied by the channel enumeration of each
// device variant. Binding it as a type parameter on Dev ties a device to the
// channels its part actually has; an 8-channel selector does not compile
// against a 4-channel device.
type Channel interface {
	offset() uint8
}

// Channel4 selects one LED output of a 4-channel part.
type Channel4 uint8

// LED outputs of the 4-channel parts.
const (
	CH1 Channel4 = iota
	CH2
	CH3
	CH4
)

func (c Channel4) offset() uint8 { return uint8(c) & 0x03 }

// Channel8 selects one LED output of an 8-channel part.
type Channel8 uint8

// LED outputs of the 8-channel parts.
const (
	LED1 Channel8 = iota
	LED2
	LED3
	LED4
	LED5
	LED6
	LED7
	LED8
)

func (c Channel8) offset() uint8 { return uint8(c) & 0x07 }
