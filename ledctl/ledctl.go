// Package ledctl layers user-level brightness, dimming and blink control on
// top of the raw pca963x register driver.
package ledctl

import (
	"time"

	pca963x "github.com/qleds/go-pca963x"
)

// blinkPeriodStep is the group frequency prescaler step: the chip divides a
// 24 Hz clock, giving periods of (GFRQ+1)/24 s.
const blinkPeriodStep = time.Second / 24

// Controller drives one device. Unlike the register driver it owns a copy of
// the device configuration, which it rewrites when switching between group
// dimming and blinking or when sleeping, so the chip and the controller must
// not be reconfigured behind its back.
type Controller[C pca963x.Channel] struct {
	dev *pca963x.Dev[C]
	cfg pca963x.Config
}

// New returns a controller for dev, which must already have been configured
// with cfg.
func New[C pca963x.Channel](dev *pca963x.Dev[C], cfg pca963x.Config) *Controller[C] {
	return &Controller[C]{dev: dev, cfg: cfg}
}

// SetBrightness sets one channel's brightness. Zero switches the output
// fully off and 255 fully on, bypassing the PWM; anything in between writes
// the duty register and puts the channel in individual PWM mode.
func (c *Controller[C]) SetBrightness(ch C, value uint8) error {
	switch value {
	case 0:
		return c.dev.WriteOut(ch, pca963x.FullyOff)
	case 0xff:
		return c.dev.WriteOut(ch, pca963x.FullyOn)
	}
	if err := c.dev.WriteDuty(ch, value); err != nil {
		return err
	}
	return c.dev.WriteOut(ch, pca963x.PWM)
}

// SetGroupBrightness is like SetBrightness but leaves the channel subject to
// the group duty/blink registers.
func (c *Controller[C]) SetGroupBrightness(ch C, value uint8) error {
	if err := c.dev.WriteDuty(ch, value); err != nil {
		return err
	}
	return c.dev.WriteOut(ch, pca963x.PWMGroup)
}

// Dim applies group dimming at the given duty to all channels in group PWM
// mode, switching the group registers to dimming if they were blinking.
func (c *Controller[C]) Dim(duty uint8) error {
	if err := c.setBlink(false); err != nil {
		return err
	}
	return c.dev.WriteGroupDuty(duty)
}

// Blink blinks all channels in group PWM mode with the given on-duty and
// period. Periods are quantized to the chip's 24 Hz prescaler and clamped to
// its range of one step up to 256 steps (about 10.7 s).
func (c *Controller[C]) Blink(duty uint8, period time.Duration) error {
	steps := int64(period / blinkPeriodStep)
	if steps < 1 {
		steps = 1
	} else if steps > 256 {
		steps = 256
	}
	if err := c.setBlink(true); err != nil {
		return err
	}
	if err := c.dev.WriteGroupFreq(uint8(steps - 1)); err != nil {
		return err
	}
	return c.dev.WriteGroupDuty(duty)
}

// Sleep stops the chip's oscillator, turning all outputs off while retaining
// register contents.
func (c *Controller[C]) Sleep() error {
	return c.writeConfig(c.cfg.Sleep(true))
}

// Wake restarts the oscillator.
func (c *Controller[C]) Wake() error {
	return c.writeConfig(c.cfg.Sleep(false))
}

func (c *Controller[C]) setBlink(on bool) error {
	cfg := c.cfg.Blink(on)
	if cfg == c.cfg {
		return nil
	}
	return c.writeConfig(cfg)
}

func (c *Controller[C]) writeConfig(cfg pca963x.Config) error {
	if err := c.dev.WriteConfig(cfg); err != nil {
		return err
	}
	c.cfg = cfg
	return nil
}
