// Package i2cdriver defines the bus interface the PCA963x driver consumes,
// along with helpers for instrumenting a bus.
package i2cdriver

// I2C is the minimum interface to I2C hardware the driver needs: a single Tx
// method covering write, read and combined write-then-read transfers. The
// signature matches both periph.io's i2c.Bus and TinyGo's machine.I2C, so
// either can be passed in directly on their respective platforms.
//
// The driver never interprets errors returned by Tx; they surface unchanged
// from every operation.
type I2C interface {

	// Tx performs a write of w followed by a read into r against the device at
	// the given 7-bit address. A nil w or r skips the corresponding phase.
	Tx(addr uint16, w, r []byte) error
}
