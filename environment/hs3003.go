package environment

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/mklimuk/modulino"
)

var divider = float32(1<<14 - 1)

var ErrStaleData = fmt.Errorf("stale data")
var ErrCommandMode = fmt.Errorf("device in command mode")

// HS3003 represents the Renesas HS3003 humidity/temperature sensor found on
// the Modulino Thermo board. A measurement is requested with an empty write;
// the 4-byte response carries a 14-bit humidity word and a left-aligned
// 14-bit temperature word, with status flags in the two top bits.
type HS3003 struct {
	dev      *modulino.Device
	lastTemp float32
	lastHum  float32
}

type HS3003Opts struct {
	Address byte
}

type HS3003Opt func(*HS3003Opts)

func WithHS3003Address(address byte) HS3003Opt {
	return func(o *HS3003Opts) {
		o.Address = address
	}
}

func NewHS3003(transport modulino.I2CBus, opts ...HS3003Opt) *HS3003 {
	config := HS3003Opts{Address: modulino.ThermoAddress}
	for _, opt := range opts {
		opt(&config)
	}
	return &HS3003{dev: modulino.NewDevice(transport, config.Address)}
}

func (s *HS3003) Address() byte {
	return s.dev.Address()
}

// GetTemperature performs a single measurement and returns temperature in Celsius.
func (s *HS3003) GetTemperature(ctx context.Context) (float32, error) {
	if err := s.measure(ctx); err != nil {
		return 0, err
	}
	return s.lastTemp, nil
}

// GetHumidity performs a single measurement and returns relative humidity in %RH.
func (s *HS3003) GetHumidity(ctx context.Context) (float32, error) {
	if err := s.measure(ctx); err != nil {
		return 0, err
	}
	return s.lastHum, nil
}

// GetTempAndHum performs a single measurement and returns temperature and humidity.
func (s *HS3003) GetTempAndHum(ctx context.Context) (float32, float32, error) {
	if err := s.measure(ctx); err != nil {
		return 0, 0, err
	}
	return s.lastTemp, s.lastHum, nil
}

func (s *HS3003) measure(ctx context.Context) error {
	err := s.dev.Write(ctx, []byte{})
	if err != nil {
		return fmt.Errorf("hs3003: measurement request failed: %w", err)
	}
	// conversion takes up to 33.9ms for 14-bit resolution
	time.Sleep(40 * time.Millisecond)
	resp := make([]byte, 4)
	err = s.dev.Read(ctx, resp)
	if err != nil {
		return fmt.Errorf("hs3003: measurement read failed: %w", err)
	}
	// check the oldest bit
	if resp[0]&0x80 > 0 {
		return ErrCommandMode
	}
	// check the second oldest bit
	if resp[0]&0x40 > 0 {
		// data has already been fetched since the last measurement
		return ErrStaleData
	}
	s.lastHum = convertHumidity(resp[0:2])
	s.lastTemp = convertTemperature(resp[2:4])
	return nil
}

func convertHumidity(resp []byte) float32 {
	hum := float32(binary.BigEndian.Uint16(resp)&0x3FFF) / divider * 100
	if hum > 100.00 {
		return 100.00
	}
	return hum
}

func convertTemperature(resp []byte) float32 {
	// temperature occupies the upper 14 bits of the word
	raw := binary.BigEndian.Uint16(resp) >> 2
	return float32(raw)/divider*165 - 40
}

func (s *HS3003) Release(ctx context.Context) (modulino.I2CBus, error) {
	return s.dev.Release(ctx)
}
