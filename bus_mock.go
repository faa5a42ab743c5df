package modulino

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockBus is a testify-based mock implementation of I2CBus that can be used
// to test any of the module drivers without hardware attached.
//
// Read expectations return the bytes to copy into the caller's buffer as the
// first return value:
//
//	bus.On("ReadFromAddr", mock.Anything, byte(0x3E), mock.Anything).
//		Return([]byte{0x7C, 0x00, 0x01, 0x00}, nil).Once()
//
// WriteReadFromAddr expectations match on the written bytes and return the
// read payload the same way.
type MockBus struct {
	mock.Mock
}

func (m *MockBus) WriteToAddr(ctx context.Context, address byte, buffer []byte) error {
	args := m.Called(ctx, address, buffer)
	return args.Error(0)
}

func (m *MockBus) ReadFromAddr(ctx context.Context, address byte, buffer []byte) error {
	args := m.Called(ctx, address, buffer)
	if data, ok := args.Get(0).([]byte); ok && len(data) <= len(buffer) {
		copy(buffer, data)
	}
	return args.Error(1)
}

func (m *MockBus) WriteReadFromAddr(ctx context.Context, address byte, w, r []byte) error {
	args := m.Called(ctx, address, w, r)
	if data, ok := args.Get(0).([]byte); ok && len(data) <= len(r) {
		copy(r, data)
	}
	return args.Error(1)
}

func (m *MockBus) Release(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
