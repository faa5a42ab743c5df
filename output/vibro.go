package output

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/mklimuk/modulino"
)

// DefaultVibroFrequency is the drive frequency used unless changed with
// SetFrequency.
const DefaultVibroFrequency = 1000

// Predefined vibration power levels (percent of drive strength).
const (
	PowerStop     uint8 = 0
	PowerGentle   uint8 = 25
	PowerModerate uint8 = 35
	PowerMedium   uint8 = 45
	PowerIntense  uint8 = 55
	PowerPowerful uint8 = 65
	PowerMaximum  uint8 = 75
)

// Vibro represents the Modulino Vibro board, a vibration motor. Each command
// is a single 12-byte write: little-endian u32 frequency, u32 duration in
// milliseconds and u32 power.
type Vibro struct {
	dev       *modulino.Device
	frequency uint32
}

type VibroOpts struct {
	Address byte
}

type VibroOpt func(*VibroOpts)

func WithVibroAddress(address byte) VibroOpt {
	return func(o *VibroOpts) {
		o.Address = address
	}
}

func NewVibro(transport modulino.I2CBus, opts ...VibroOpt) *Vibro {
	config := VibroOpts{Address: modulino.VibroAddress}
	for _, opt := range opts {
		opt(&config)
	}
	return &Vibro{
		dev:       modulino.NewDevice(transport, config.Address),
		frequency: DefaultVibroFrequency,
	}
}

func (v *Vibro) Address() byte {
	return v.dev.Address()
}

// SetFrequency changes the drive frequency used by subsequent On calls.
func (v *Vibro) SetFrequency(frequency uint32) {
	v.frequency = frequency
}

// On runs the motor for durationMS milliseconds (0xFFFF for indefinite) at
// the given power (0-100).
func (v *Vibro) On(ctx context.Context, durationMS uint16, power uint8) error {
	if power > 100 {
		return fmt.Errorf("vibro: power %d above 100: %w", power, modulino.ErrOutOfRange)
	}
	out := make([]byte, 12)
	binary.LittleEndian.PutUint32(out[0:4], v.frequency)
	binary.LittleEndian.PutUint32(out[4:8], uint32(durationMS))
	binary.LittleEndian.PutUint32(out[8:12], uint32(power))
	err := v.dev.Write(ctx, out)
	if err != nil {
		return fmt.Errorf("vibro: command write failed: %w", err)
	}
	return nil
}

// Off stops the motor.
func (v *Vibro) Off(ctx context.Context) error {
	err := v.dev.Write(ctx, make([]byte, 12))
	if err != nil {
		return fmt.Errorf("vibro: stop write failed: %w", err)
	}
	return nil
}

func (v *Vibro) Release(ctx context.Context) (modulino.I2CBus, error) {
	return v.dev.Release(ctx)
}
