package i2cdriver

import (
	"encoding/hex"

	"github.com/sirupsen/logrus"
)

// Tracer wraps an I2C bus and logs every transaction passing through it,
// including failed ones. It is intended for bring-up and debugging; wrap the
// bus before handing it to the driver:
//
//	dev := pca963x.NewPCA9633(i2cdriver.NewTracer(bus, logger), addr)
type Tracer struct {
	bus I2C
	log *logrus.Entry
}

// NewTracer returns a Tracer logging to log. A nil log uses the logrus
// standard logger.
func NewTracer(bus I2C, log *logrus.Entry) *Tracer {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Tracer{bus: bus, log: log}
}

// Tx implements I2C.
func (t *Tracer) Tx(addr uint16, w, r []byte) error {
	err := t.bus.Tx(addr, w, r)
	fields := logrus.Fields{
		"addr": addr,
		"w":    hex.EncodeToString(w),
	}
	if err != nil {
		t.log.WithFields(fields).WithError(err).Error("i2c tx failed")
		return err
	}
	if r != nil {
		fields["r"] = hex.EncodeToString(r)
	}
	t.log.WithFields(fields).Debug("i2c tx")
	return nil
}
