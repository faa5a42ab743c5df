package modulino

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDevice_Reg8Layout(t *testing.T) {
	bus := new(MockBus)
	dev := NewDevice(bus, 0x3E)
	ctx := context.Background()

	bus.On("WriteToAddr", mock.Anything, byte(0x3E), []byte{0x10, 0xAB}).Return(nil).Once()
	assert.NoError(t, dev.WriteReg8(ctx, 0x10, 0xAB))

	bus.On("WriteReadFromAddr", mock.Anything, byte(0x3E), []byte{0x10}, mock.Anything).
		Return([]byte{0x42}, nil).Once()
	val, err := dev.ReadReg8(ctx, 0x10)
	assert.NoError(t, err)
	assert.Equal(t, byte(0x42), val)

	bus.AssertExpectations(t)
}

func TestDevice_Reg16Layout(t *testing.T) {
	bus := new(MockBus)
	dev := NewDevice(bus, 0x29)
	ctx := context.Background()

	// register index big-endian, value big-endian, concatenated
	bus.On("WriteToAddr", mock.Anything, byte(0x29), []byte{0x00, 0x87, 0x40}).Return(nil).Once()
	assert.NoError(t, dev.WriteReg16U8(ctx, 0x0087, 0x40))

	bus.On("WriteToAddr", mock.Anything, byte(0x29), []byte{0x00, 0x5E, 0x00, 0x0B}).Return(nil).Once()
	assert.NoError(t, dev.WriteReg16U16(ctx, 0x005E, 0x000B))

	bus.On("WriteToAddr", mock.Anything, byte(0x29), []byte{0x00, 0x6C, 0x00, 0x00, 0x0C, 0x80}).Return(nil).Once()
	assert.NoError(t, dev.WriteReg16U32(ctx, 0x006C, 3200))

	bus.AssertExpectations(t)
}

// Round-trip: a 16-bit value written through the 16-bit register path reads
// back identical through the corresponding read path.
func TestDevice_Reg16RoundTrip(t *testing.T) {
	bus := new(MockBus)
	dev := NewDevice(bus, 0x29)
	ctx := context.Background()

	var stored [2]byte
	bus.On("WriteToAddr", mock.Anything, byte(0x29), mock.Anything).
		Run(func(args mock.Arguments) {
			payload := args.Get(2).([]byte)
			copy(stored[:], payload[2:4])
		}).Return(nil).Once()
	bus.On("WriteReadFromAddr", mock.Anything, byte(0x29), []byte{0x00, 0x5E}, mock.Anything).
		Run(func(args mock.Arguments) {
			copy(args.Get(3).([]byte), stored[:])
		}).Return(nil, nil).Once()

	assert.NoError(t, dev.WriteReg16U16(ctx, 0x005E, 0x0BCD))
	val, err := dev.ReadReg16U16(ctx, 0x005E)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x0BCD), val)

	bus.AssertExpectations(t)
}

func TestDevice_Release(t *testing.T) {
	bus := new(MockBus)
	dev := NewDevice(bus, 0x29)
	ctx := context.Background()

	bus.On("Release", mock.Anything).Return(nil).Once()
	transport, err := dev.Release(ctx)
	assert.NoError(t, err)
	assert.Same(t, bus, transport)

	_, err = dev.Release(ctx)
	assert.Error(t, err)

	bus.AssertExpectations(t)
}
