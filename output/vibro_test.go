package output

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mklimuk/modulino"
)

func TestVibro_On(t *testing.T) {
	bus := new(modulino.MockBus)
	// default 1000 Hz drive, 500 ms, medium power, all words little-endian
	bus.On("WriteToAddr", mock.Anything, byte(modulino.VibroAddress),
		[]byte{0xE8, 0x03, 0x00, 0x00, 0xF4, 0x01, 0x00, 0x00, 0x2D, 0x00, 0x00, 0x00}).
		Return(nil).Once()

	vibro := NewVibro(bus)
	err := vibro.On(context.Background(), 500, PowerMedium)

	assert.NoError(t, err)
	bus.AssertExpectations(t)
}

func TestVibro_OnPowerAboveLimit(t *testing.T) {
	bus := new(modulino.MockBus)

	vibro := NewVibro(bus)
	err := vibro.On(context.Background(), 500, 101)

	assert.ErrorIs(t, err, modulino.ErrOutOfRange)
	bus.AssertNotCalled(t, "WriteToAddr", mock.Anything, mock.Anything, mock.Anything)
}

func TestVibro_SetFrequency(t *testing.T) {
	bus := new(modulino.MockBus)
	bus.On("WriteToAddr", mock.Anything, byte(modulino.VibroAddress),
		[]byte{0x2C, 0x01, 0x00, 0x00, 0x64, 0x00, 0x00, 0x00, 0x19, 0x00, 0x00, 0x00}).
		Return(nil).Once()

	vibro := NewVibro(bus)
	vibro.SetFrequency(300)
	assert.NoError(t, vibro.On(context.Background(), 100, PowerGentle))
	bus.AssertExpectations(t)
}

func TestVibro_Off(t *testing.T) {
	bus := new(modulino.MockBus)
	bus.On("WriteToAddr", mock.Anything, byte(modulino.VibroAddress), make([]byte, 12)).
		Return(nil).Once()

	vibro := NewVibro(bus)
	assert.NoError(t, vibro.Off(context.Background()))
	bus.AssertExpectations(t)
}
