package pca963x

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChannelOffsets(t *testing.T) {
	for i, ch := range []Channel4{CH1, CH2, CH3, CH4} {
		assert.Equal(t, uint8(i), ch.offset())
	}
	for i, ch := range []Channel8{LED1, LED2, LED3, LED4, LED5, LED6, LED7, LED8} {
		assert.Equal(t, uint8(i), ch.offset())
	}
}

func TestChannelOffsetsStayOnRegisterMap(t *testing.T) {
	// Raw values beyond the channel count wrap instead of walking into
	// neighboring registers.
	assert.Equal(t, uint8(1), Channel4(5).offset())
	assert.Equal(t, uint8(1), Channel8(9).offset())
}
