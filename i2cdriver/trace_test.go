package i2cdriver

import (
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingBus struct {
	addr uint16
	w    []byte
	fill byte
	err  error
}

func (b *recordingBus) Tx(addr uint16, w, r []byte) error {
	b.addr = addr
	b.w = append([]byte(nil), w...)
	for i := range r {
		r[i] = b.fill
	}
	return b.err
}

func quietLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func TestTracerForwardsTransfers(t *testing.T) {
	bus := &recordingBus{fill: 0xa5}
	tr := NewTracer(bus, quietLogger())

	r := make([]byte, 2)
	require.NoError(t, tr.Tx(0x62, []byte{0x02, 0x7f}, r))
	assert.Equal(t, uint16(0x62), bus.addr)
	assert.Equal(t, []byte{0x02, 0x7f}, bus.w)
	assert.Equal(t, []byte{0xa5, 0xa5}, r)
}

func TestTracerForwardsErrors(t *testing.T) {
	errDown := errors.New("bus down")
	tr := NewTracer(&recordingBus{err: errDown}, quietLogger())
	require.ErrorIs(t, tr.Tx(0x62, []byte{0x00}, nil), errDown)
}
