package adapter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gobot.io/x/gobot/v2/drivers/i2c"
)

type mockConnector struct {
	mock.Mock
}

func (m *mockConnector) GetI2cConnection(address int, busNr int) (i2c.Connection, error) {
	args := m.Called(address, busNr)
	conn, _ := args.Get(0).(i2c.Connection)
	return conn, args.Error(1)
}

func (m *mockConnector) DefaultI2cBus() int {
	return m.Called().Int(0)
}

// mockConnection mirrors MockBus for the gobot connection: read expectations
// return the bytes to copy into the caller's buffer as the first return value.
type mockConnection struct {
	mock.Mock
}

func (m *mockConnection) Read(b []byte) (int, error) {
	args := m.Called(len(b))
	data, _ := args.Get(0).([]byte)
	copy(b, data)
	return len(data), args.Error(1)
}

func (m *mockConnection) Write(b []byte) (int, error) {
	args := m.Called(b)
	return len(b), args.Error(0)
}

func (m *mockConnection) Close() error {
	return m.Called().Error(0)
}

func (m *mockConnection) ReadByte() (byte, error) {
	args := m.Called()
	return byte(args.Int(0)), args.Error(1)
}

func (m *mockConnection) ReadByteData(reg uint8) (byte, error) {
	args := m.Called(reg)
	return byte(args.Int(0)), args.Error(1)
}

func (m *mockConnection) ReadWordData(reg uint8) (uint16, error) {
	args := m.Called(reg)
	return uint16(args.Int(0)), args.Error(1)
}

func (m *mockConnection) ReadBlockData(reg uint8, b []byte) error {
	return m.Called(reg, b).Error(0)
}

func (m *mockConnection) WriteByte(val byte) error {
	return m.Called(val).Error(0)
}

func (m *mockConnection) WriteByteData(reg uint8, val byte) error {
	return m.Called(reg, val).Error(0)
}

func (m *mockConnection) WriteWordData(reg uint8, val uint16) error {
	return m.Called(reg, val).Error(0)
}

func (m *mockConnection) WriteBlockData(reg uint8, b []byte) error {
	return m.Called(reg, b).Error(0)
}

func (m *mockConnection) WriteBytes(b []byte) error {
	return m.Called(b).Error(0)
}

func gobotFixture() (*mockConnector, *mockConnection) {
	conn := &mockConnection{}
	connector := &mockConnector{}
	connector.On("DefaultI2cBus").Return(0).Maybe()
	return connector, conn
}

func TestGobotWriteRead(t *testing.T) {
	connector, conn := gobotFixture()
	connector.On("GetI2cConnection", 0x3C, 2).Return(conn, nil).Once()
	conn.On("Write", []byte{0x0F}).Return(nil).Once()
	conn.On("Read", 1).Return([]byte{0x6C}, nil).Once()
	bus := NewGobot(connector, 2)
	buffer := make([]byte, 1)
	err := bus.WriteReadFromAddr(context.Background(), 0x3C, []byte{0x0F}, buffer)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x6C}, buffer)
	connector.AssertExpectations(t)
	conn.AssertExpectations(t)
}

func TestGobotDriverReuse(t *testing.T) {
	connector, conn := gobotFixture()
	// one driver per address, started on first use
	connector.On("GetI2cConnection", 0x30, 2).Return(conn, nil).Once()
	conn.On("Write", []byte{0xB8, 0x01}).Return(nil).Twice()
	bus := NewGobot(connector, 2)
	err := bus.WriteToAddr(context.Background(), 0x30, []byte{0xB8, 0x01})
	assert.NoError(t, err)
	err = bus.WriteToAddr(context.Background(), 0x30, []byte{0xB8, 0x01})
	assert.NoError(t, err)
	connector.AssertExpectations(t)
	conn.AssertExpectations(t)
}

func TestGobotRead(t *testing.T) {
	connector, conn := gobotFixture()
	connector.On("GetI2cConnection", 0x3E, 1).Return(conn, nil).Once()
	conn.On("Read", 4).Return([]byte{0x7C, 0x00, 0x01, 0x00}, nil).Once()
	bus := NewGobot(connector, 1)
	buffer := make([]byte, 4)
	err := bus.ReadFromAddr(context.Background(), 0x3E, buffer)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x7C, 0x00, 0x01, 0x00}, buffer)
	connector.AssertExpectations(t)
	conn.AssertExpectations(t)
}

func TestGobotRelease(t *testing.T) {
	connector, conn := gobotFixture()
	connector.On("GetI2cConnection", 0x30, 2).Return(conn, nil).Once()
	conn.On("Write", mock.Anything).Return(nil).Once()
	conn.On("Close").Return(nil).Once()
	bus := NewGobot(connector, 2)
	err := bus.WriteToAddr(context.Background(), 0x30, []byte{0x00})
	assert.NoError(t, err)
	err = bus.Release(context.Background())
	assert.NoError(t, err)
	conn.AssertExpectations(t)
}

func TestGobotConnectionError(t *testing.T) {
	connector, _ := gobotFixture()
	connector.On("GetI2cConnection", 0x29, 2).Return(nil, assert.AnError)
	bus := NewGobot(connector, 2)
	err := bus.WriteToAddr(context.Background(), 0x29, []byte{0x00})
	assert.Error(t, err)
}
