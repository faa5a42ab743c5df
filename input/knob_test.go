package input

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mklimuk/modulino"
)

func knobResponse(value int16, pressed bool) []byte {
	buf := []byte{modulino.KnobPinstraps[0], byte(value), byte(uint16(value) >> 8), 0x00}
	if pressed {
		buf[3] = 0x01
	}
	return buf
}

func TestKnob_Update(t *testing.T) {
	tests := []struct {
		name     string
		response []byte
		value    int16
		pressed  bool
		changed  bool
	}{
		{
			name:     "initial zero is no change",
			response: knobResponse(0, false),
			value:    0,
			pressed:  false,
			changed:  false,
		},
		{
			name:     "positive rotation",
			response: knobResponse(42, false),
			value:    42,
			pressed:  false,
			changed:  true,
		},
		{
			name:     "negative rotation with press",
			response: knobResponse(-5, true),
			value:    -5,
			pressed:  true,
			changed:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bus := new(modulino.MockBus)
			bus.On("ReadFromAddr", mock.Anything, modulino.KnobAddresses[0], mock.Anything).
				Return(tt.response, nil).Once()

			knob := NewKnob(bus)
			changed, err := knob.Update(context.Background())

			assert.NoError(t, err)
			assert.Equal(t, tt.changed, changed)
			assert.Equal(t, tt.value, knob.Value())
			assert.Equal(t, tt.pressed, knob.Pressed())
			bus.AssertExpectations(t)
		})
	}
}

func TestKnob_RangeClampWritesBack(t *testing.T) {
	bus := new(modulino.MockBus)
	bus.On("ReadFromAddr", mock.Anything, modulino.KnobAddresses[0], mock.Anything).
		Return(knobResponse(20, false), nil).Once()
	bus.On("WriteToAddr", mock.Anything, modulino.KnobAddresses[0], []byte{0x0A, 0x00, 0x00, 0x00}).
		Return(nil).Once()

	knob := NewKnob(bus)
	knob.SetRange(0, 10)

	changed, err := knob.Update(context.Background())

	assert.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, int16(10), knob.Value())
	bus.AssertExpectations(t)
}

func TestKnob_SetValue(t *testing.T) {
	bus := new(modulino.MockBus)
	bus.On("WriteToAddr", mock.Anything, modulino.KnobAddresses[0], []byte{0xFB, 0xFF, 0x00, 0x00}).
		Return(nil).Once()

	knob := NewKnob(bus)
	err := knob.SetValue(context.Background(), -5)

	assert.NoError(t, err)
	assert.Equal(t, int16(-5), knob.Value())
	bus.AssertExpectations(t)
}

func TestKnob_SetValueOutsideRange(t *testing.T) {
	bus := new(modulino.MockBus)

	knob := NewKnob(bus)
	knob.SetRange(-10, 10)

	err := knob.SetValue(context.Background(), 100)

	assert.ErrorIs(t, err, modulino.ErrOutOfRange)
	// nothing may reach the bus
	bus.AssertNotCalled(t, "WriteToAddr", mock.Anything, mock.Anything, mock.Anything)
}

func TestKnob_Reset(t *testing.T) {
	bus := new(modulino.MockBus)
	bus.On("WriteToAddr", mock.Anything, modulino.KnobAddresses[0], []byte{0x00, 0x00, 0x00, 0x00}).
		Return(nil).Once()

	knob := NewKnob(bus)
	assert.NoError(t, knob.Reset(context.Background()))
	bus.AssertExpectations(t)
}

func TestKnob_UpdateError(t *testing.T) {
	bus := new(modulino.MockBus)
	bus.On("ReadFromAddr", mock.Anything, modulino.KnobAddresses[0], mock.Anything).
		Return(nil, errors.New("i2c read failed")).Once()

	knob := NewKnob(bus)
	_, err := knob.Update(context.Background())

	assert.ErrorContains(t, err, "knob: read failed")
	bus.AssertExpectations(t)
}
