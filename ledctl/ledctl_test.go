package ledctl_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/i2c/i2ctest"

	pca963x "github.com/qleds/go-pca963x"
	"github.com/qleds/go-pca963x/ledctl"
)

func playback(t *testing.T, ops []i2ctest.IO) *i2ctest.Playback {
	t.Helper()
	pb := &i2ctest.Playback{Ops: ops, DontPanic: true}
	t.Cleanup(func() {
		if err := pb.Close(); err != nil {
			t.Error(err)
		}
	})
	return pb
}

// awake is the configuration the tests assume was already written to the
// chip: reset defaults with the oscillator running.
func awake() pca963x.Config {
	return pca963x.DefaultConfig().Sleep(false)
}

func controller(t *testing.T, ops []i2ctest.IO) *ledctl.Controller[pca963x.Channel4] {
	pb := playback(t, ops)
	return ledctl.New(pca963x.NewPCA9633(pb, pca963x.Addr8Pin{}), awake())
}

func TestSetBrightness(t *testing.T) {
	t.Run("full off skips the duty register", func(t *testing.T) {
		c := controller(t, []i2ctest.IO{
			{Addr: 0x62, W: []byte{0x08}, R: []byte{0x00}},
			{Addr: 0x62, W: []byte{0x08, 0x00}},
		})
		require.NoError(t, c.SetBrightness(pca963x.CH1, 0))
	})

	t.Run("full on skips the duty register", func(t *testing.T) {
		c := controller(t, []i2ctest.IO{
			{Addr: 0x62, W: []byte{0x08}, R: []byte{0x00}},
			{Addr: 0x62, W: []byte{0x08, 0x01 << 2}},
		})
		require.NoError(t, c.SetBrightness(pca963x.CH2, 0xff))
	})

	t.Run("intermediate writes duty then pwm mode", func(t *testing.T) {
		c := controller(t, []i2ctest.IO{
			{Addr: 0x62, W: []byte{0x02, 0x40}},
			{Addr: 0x62, W: []byte{0x08}, R: []byte{0x00}},
			{Addr: 0x62, W: []byte{0x08, 0x02}},
		})
		require.NoError(t, c.SetBrightness(pca963x.CH1, 0x40))
	})
}

func TestSetGroupBrightness(t *testing.T) {
	c := controller(t, []i2ctest.IO{
		{Addr: 0x62, W: []byte{0x05, 0x10}},
		{Addr: 0x62, W: []byte{0x08}, R: []byte{0x00}},
		{Addr: 0x62, W: []byte{0x08, 0x03 << 6}},
	})
	require.NoError(t, c.SetGroupBrightness(pca963x.CH4, 0x10))
}

func TestBlink(t *testing.T) {
	// First blink flips DMBLNK on in one config transaction, then programs
	// frequency and duty; a second blink with the flag already on only
	// touches the group registers.
	c := controller(t, []i2ctest.IO{
		{Addr: 0x62, W: []byte{0x80, 0x01, 0x25}},
		{Addr: 0x62, W: []byte{0x07, 23}},
		{Addr: 0x62, W: []byte{0x06, 0x80}},
		{Addr: 0x62, W: []byte{0x07, 5}},
		{Addr: 0x62, W: []byte{0x06, 0x80}},
	})
	require.NoError(t, c.Blink(0x80, time.Second))
	require.NoError(t, c.Blink(0x80, 250*time.Millisecond))
}

func TestBlinkPeriodClamping(t *testing.T) {
	c := controller(t, []i2ctest.IO{
		{Addr: 0x62, W: []byte{0x80, 0x01, 0x25}},
		{Addr: 0x62, W: []byte{0x07, 0}},
		{Addr: 0x62, W: []byte{0x06, 0x11}},
		{Addr: 0x62, W: []byte{0x07, 255}},
		{Addr: 0x62, W: []byte{0x06, 0x11}},
	})
	require.NoError(t, c.Blink(0x11, 0))
	require.NoError(t, c.Blink(0x11, time.Hour))
}

func TestDimAfterBlinkRestoresDimming(t *testing.T) {
	c := controller(t, []i2ctest.IO{
		{Addr: 0x62, W: []byte{0x80, 0x01, 0x25}},
		{Addr: 0x62, W: []byte{0x07, 23}},
		{Addr: 0x62, W: []byte{0x06, 0x80}},
		{Addr: 0x62, W: []byte{0x80, 0x01, 0x05}},
		{Addr: 0x62, W: []byte{0x06, 0x40}},
	})
	require.NoError(t, c.Blink(0x80, time.Second))
	require.NoError(t, c.Dim(0x40))
}

func TestDimWhileDimmingSkipsConfig(t *testing.T) {
	c := controller(t, []i2ctest.IO{
		{Addr: 0x62, W: []byte{0x06, 0x40}},
	})
	require.NoError(t, c.Dim(0x40))
}

func TestSleepWake(t *testing.T) {
	c := controller(t, []i2ctest.IO{
		{Addr: 0x62, W: []byte{0x80, 0x11, 0x05}},
		{Addr: 0x62, W: []byte{0x80, 0x01, 0x05}},
	})
	require.NoError(t, c.Sleep())
	require.NoError(t, c.Wake())
}

func TestBlinkKeepsLocalConfigOnFailure(t *testing.T) {
	// The config write fails, so the controller must still consider the chip
	// to be dimming and retry the config transaction on the next call.
	pb := playback(t, []i2ctest.IO{
		{Addr: 0x62, W: []byte{0x80, 0x01, 0x25}},
		{Addr: 0x62, W: []byte{0x07, 23}},
		{Addr: 0x62, W: []byte{0x06, 0x80}},
	})
	broken := &failFirst{bus: pb}
	c := ledctl.New(pca963x.NewPCA9633(broken, pca963x.Addr8Pin{}), awake())

	assert.Error(t, c.Blink(0x80, time.Second))
	require.NoError(t, c.Blink(0x80, time.Second))
}

// failFirst fails the first transaction and forwards the rest.
type failFirst struct {
	bus    *i2ctest.Playback
	failed bool
}

func (f *failFirst) Tx(addr uint16, w, r []byte) error {
	if !f.failed {
		f.failed = true
		return errFailFirst
	}
	return f.bus.Tx(addr, w, r)
}

var errFailFirst = errors.New("injected bus error")
