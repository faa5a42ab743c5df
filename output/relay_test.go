package output

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mklimuk/modulino"
)

func TestLatchRelay_OnOff(t *testing.T) {
	bus := new(modulino.MockBus)
	bus.On("WriteToAddr", mock.Anything, byte(modulino.LatchRelayAddress), []byte{0x01, 0x00, 0x00}).
		Return(nil).Once()
	bus.On("WriteToAddr", mock.Anything, byte(modulino.LatchRelayAddress), []byte{0x00, 0x00, 0x00}).
		Return(nil).Once()

	relay := NewLatchRelay(bus)
	ctx := context.Background()

	assert.NoError(t, relay.On(ctx))
	assert.NoError(t, relay.Off(ctx))
	bus.AssertExpectations(t)
}

func TestLatchRelay_State(t *testing.T) {
	tests := []struct {
		name     string
		response []byte
		expected RelayState
	}{
		{
			name:     "unknown after power up",
			response: []byte{modulino.LatchRelayPinstrap, 0x00, 0x00, 0x00},
			expected: RelayUnknown,
		},
		{
			name:     "off",
			response: []byte{modulino.LatchRelayPinstrap, 0x01, 0x00, 0x00},
			expected: RelayOff,
		},
		{
			name:     "on",
			response: []byte{modulino.LatchRelayPinstrap, 0x00, 0x01, 0x00},
			expected: RelayOn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bus := new(modulino.MockBus)
			bus.On("ReadFromAddr", mock.Anything, byte(modulino.LatchRelayAddress), mock.Anything).
				Return(tt.response, nil).Once()

			relay := NewLatchRelay(bus)
			state, err := relay.State(context.Background())

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, state)
			bus.AssertExpectations(t)
		})
	}
}

func TestLatchRelay_Toggle(t *testing.T) {
	bus := new(modulino.MockBus)
	bus.On("ReadFromAddr", mock.Anything, byte(modulino.LatchRelayAddress), mock.Anything).
		Return([]byte{modulino.LatchRelayPinstrap, 0x00, 0x01, 0x00}, nil).Once()
	bus.On("WriteToAddr", mock.Anything, byte(modulino.LatchRelayAddress), []byte{0x00, 0x00, 0x00}).
		Return(nil).Once()

	relay := NewLatchRelay(bus)
	assert.NoError(t, relay.Toggle(context.Background()))
	bus.AssertExpectations(t)
}

func TestLatchRelay_ToggleUnknownGoesOn(t *testing.T) {
	bus := new(modulino.MockBus)
	bus.On("ReadFromAddr", mock.Anything, byte(modulino.LatchRelayAddress), mock.Anything).
		Return([]byte{modulino.LatchRelayPinstrap, 0x00, 0x00, 0x00}, nil).Once()
	bus.On("WriteToAddr", mock.Anything, byte(modulino.LatchRelayAddress), []byte{0x01, 0x00, 0x00}).
		Return(nil).Once()

	relay := NewLatchRelay(bus)
	assert.NoError(t, relay.Toggle(context.Background()))
	bus.AssertExpectations(t)
}

func TestLatchRelay_StateError(t *testing.T) {
	bus := new(modulino.MockBus)
	bus.On("ReadFromAddr", mock.Anything, byte(modulino.LatchRelayAddress), mock.Anything).
		Return(nil, errors.New("i2c read failed")).Once()

	relay := NewLatchRelay(bus)
	_, err := relay.State(context.Background())

	assert.ErrorContains(t, err, "relay: state read failed")
	bus.AssertExpectations(t)
}

func TestRelayState_String(t *testing.T) {
	assert.Equal(t, "on", RelayOn.String())
	assert.Equal(t, "off", RelayOff.String())
	assert.Equal(t, "unknown", RelayUnknown.String())
}
