package input

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mklimuk/modulino"
)

func TestJoystick_Update(t *testing.T) {
	tests := []struct {
		name     string
		response []byte
		x, y     int8
		pressed  bool
		centered bool
	}{
		{
			name:     "centered",
			response: []byte{modulino.JoystickPinstrap, 128, 128, 0x00},
			centered: true,
		},
		{
			name:     "within deadzone snaps to center",
			response: []byte{modulino.JoystickPinstrap, 133, 124, 0x00},
			centered: true,
		},
		{
			name:     "full deflection",
			response: []byte{modulino.JoystickPinstrap, 255, 0, 0x00},
			x:        127,
			y:        -128,
		},
		{
			name:     "pressed at center",
			response: []byte{modulino.JoystickPinstrap, 128, 128, 0x01},
			pressed:  true,
			centered: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bus := new(modulino.MockBus)
			bus.On("ReadFromAddr", mock.Anything, byte(modulino.JoystickAddress), mock.Anything).
				Return(tt.response, nil).Once()

			joystick := NewJoystick(bus)
			_, err := joystick.Update(context.Background())

			assert.NoError(t, err)
			assert.Equal(t, tt.x, joystick.X())
			assert.Equal(t, tt.y, joystick.Y())
			assert.Equal(t, tt.pressed, joystick.Pressed())
			assert.Equal(t, tt.centered, joystick.Centered())
			bus.AssertExpectations(t)
		})
	}
}

func TestJoystick_ChangeDetection(t *testing.T) {
	bus := new(modulino.MockBus)
	bus.On("ReadFromAddr", mock.Anything, byte(modulino.JoystickAddress), mock.Anything).
		Return([]byte{modulino.JoystickPinstrap, 200, 128, 0x00}, nil).Twice()

	joystick := NewJoystick(bus)
	ctx := context.Background()

	changed, err := joystick.Update(ctx)
	assert.NoError(t, err)
	assert.True(t, changed)

	// same reading again
	changed, err = joystick.Update(ctx)
	assert.NoError(t, err)
	assert.False(t, changed)
	bus.AssertExpectations(t)
}

func TestJoystick_CustomDeadzone(t *testing.T) {
	bus := new(modulino.MockBus)
	bus.On("ReadFromAddr", mock.Anything, byte(modulino.JoystickAddress), mock.Anything).
		Return([]byte{modulino.JoystickPinstrap, 133, 128, 0x00}, nil).Twice()

	joystick := NewJoystick(bus, WithDeadzone(2))
	ctx := context.Background()

	_, err := joystick.Update(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int8(5), joystick.X())

	joystick.SetDeadzone(20)
	_, err = joystick.Update(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int8(0), joystick.X())
	bus.AssertExpectations(t)
}
