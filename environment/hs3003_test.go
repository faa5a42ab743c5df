package environment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mklimuk/modulino"
)

func TestHS3003_GetTempAndHum(t *testing.T) {
	bus := new(modulino.MockBus)
	bus.On("WriteToAddr", mock.Anything, byte(modulino.ThermoAddress), []byte{}).
		Return(nil).Once()
	// 0x1FFF humidity counts is half scale, 6454 temperature counts is 25C
	bus.On("ReadFromAddr", mock.Anything, byte(modulino.ThermoAddress), mock.Anything).
		Return([]byte{0x1F, 0xFF, 0x64, 0xD8}, nil).Once()

	sensor := NewHS3003(bus)
	temp, hum, err := sensor.GetTempAndHum(context.Background())

	assert.NoError(t, err)
	assert.InDelta(t, 25.0, temp, 0.01)
	assert.InDelta(t, 50.0, hum, 0.01)
	bus.AssertExpectations(t)
}

func TestHS3003_StaleData(t *testing.T) {
	bus := new(modulino.MockBus)
	bus.On("WriteToAddr", mock.Anything, byte(modulino.ThermoAddress), []byte{}).
		Return(nil).Once()
	bus.On("ReadFromAddr", mock.Anything, byte(modulino.ThermoAddress), mock.Anything).
		Return([]byte{0x40, 0x00, 0x00, 0x00}, nil).Once()

	sensor := NewHS3003(bus)
	_, err := sensor.GetTemperature(context.Background())

	assert.ErrorIs(t, err, ErrStaleData)
	bus.AssertExpectations(t)
}

func TestHS3003_CommandMode(t *testing.T) {
	bus := new(modulino.MockBus)
	bus.On("WriteToAddr", mock.Anything, byte(modulino.ThermoAddress), []byte{}).
		Return(nil).Once()
	bus.On("ReadFromAddr", mock.Anything, byte(modulino.ThermoAddress), mock.Anything).
		Return([]byte{0x80, 0x00, 0x00, 0x00}, nil).Once()

	sensor := NewHS3003(bus)
	_, err := sensor.GetHumidity(context.Background())

	assert.ErrorIs(t, err, ErrCommandMode)
	bus.AssertExpectations(t)
}

func TestHS3003_RequestError(t *testing.T) {
	bus := new(modulino.MockBus)
	bus.On("WriteToAddr", mock.Anything, byte(modulino.ThermoAddress), []byte{}).
		Return(errors.New("i2c write failed")).Once()

	sensor := NewHS3003(bus)
	_, _, err := sensor.GetTempAndHum(context.Background())

	assert.ErrorContains(t, err, "hs3003: measurement request failed")
	bus.AssertExpectations(t)
}

func TestConvertHumidity(t *testing.T) {
	assert.InDelta(t, 0.0, convertHumidity([]byte{0x00, 0x00}), 0.001)
	assert.InDelta(t, 100.0, convertHumidity([]byte{0x3F, 0xFF}), 0.001)
	// status bits must not leak into the value
	assert.InDelta(t, 0.0, convertHumidity([]byte{0xC0, 0x00}), 0.001)
}

func TestConvertTemperature(t *testing.T) {
	// zero counts is the -40C floor
	assert.InDelta(t, -40.0, convertTemperature([]byte{0x00, 0x00}), 0.001)
	// full scale is +125C
	assert.InDelta(t, 125.0, convertTemperature([]byte{0xFF, 0xFC}), 0.001)
}
