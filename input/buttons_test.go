package input

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mklimuk/modulino"
)

func TestButtons_Read(t *testing.T) {
	tests := []struct {
		name     string
		response []byte
		expected ButtonState
	}{
		{
			name:     "none pressed",
			response: []byte{modulino.ButtonsPinstrap, 0x00, 0x00, 0x00},
			expected: ButtonState{},
		},
		{
			name:     "A pressed",
			response: []byte{modulino.ButtonsPinstrap, 0x01, 0x00, 0x00},
			expected: ButtonState{A: true},
		},
		{
			name:     "all pressed",
			response: []byte{modulino.ButtonsPinstrap, 0x01, 0x01, 0x01},
			expected: ButtonState{A: true, B: true, C: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bus := new(modulino.MockBus)
			bus.On("ReadFromAddr", mock.Anything, byte(modulino.ButtonsAddress), mock.Anything).
				Return(tt.response, nil).Once()

			buttons := NewButtons(bus)
			state, err := buttons.Read(context.Background())

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, state)
			assert.Equal(t, tt.expected, buttons.State())
			bus.AssertExpectations(t)
		})
	}
}

func TestButtons_ReadError(t *testing.T) {
	bus := new(modulino.MockBus)
	bus.On("ReadFromAddr", mock.Anything, byte(modulino.ButtonsAddress), mock.Anything).
		Return(nil, errors.New("i2c read failed")).Once()

	buttons := NewButtons(bus)
	_, err := buttons.Read(context.Background())

	assert.ErrorContains(t, err, "buttons: read failed")
	bus.AssertExpectations(t)
}

func TestButtons_SetLeds(t *testing.T) {
	bus := new(modulino.MockBus)
	bus.On("WriteToAddr", mock.Anything, byte(modulino.ButtonsAddress), []byte{0x01, 0x00, 0x01}).
		Return(nil).Once()

	buttons := NewButtons(bus)
	err := buttons.SetLeds(context.Background(), true, false, true)

	assert.NoError(t, err)
	bus.AssertExpectations(t)
}

func TestButtons_AllLeds(t *testing.T) {
	bus := new(modulino.MockBus)
	bus.On("WriteToAddr", mock.Anything, byte(modulino.ButtonsAddress), []byte{0x01, 0x01, 0x01}).
		Return(nil).Once()
	bus.On("WriteToAddr", mock.Anything, byte(modulino.ButtonsAddress), []byte{0x00, 0x00, 0x00}).
		Return(nil).Once()

	buttons := NewButtons(bus)
	assert.NoError(t, buttons.AllLedsOn(context.Background()))
	assert.NoError(t, buttons.AllLedsOff(context.Background()))
	bus.AssertExpectations(t)
}

func TestButtons_CustomAddress(t *testing.T) {
	bus := new(modulino.MockBus)
	buttons := NewButtons(bus, WithButtonsAddress(0x42))
	assert.Equal(t, byte(0x42), buttons.Address())
}

func TestButtonState_Helpers(t *testing.T) {
	assert.False(t, ButtonState{}.AnyPressed())
	assert.True(t, ButtonState{B: true}.AnyPressed())
	assert.False(t, ButtonState{A: true, B: true}.AllPressed())
	assert.True(t, ButtonState{A: true, B: true, C: true}.AllPressed())
}
