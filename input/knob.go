package input

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/mklimuk/modulino"
)

// Knob represents the Modulino Knob board, a rotary encoder with a push
// button. Reads return the pinstrap byte, a little-endian signed 16-bit
// position and one button byte. The position can be constrained to a
// configured range; when the device reports a value outside of it the driver
// writes the clamped value back so the hardware counter stays in range.
type Knob struct {
	dev      *modulino.Device
	value    int16
	pressed  bool
	hasRange bool
	min, max int16
}

type KnobOpts struct {
	Address byte
}

type KnobOpt func(*KnobOpts)

func WithKnobAddress(address byte) KnobOpt {
	return func(o *KnobOpts) {
		o.Address = address
	}
}

func NewKnob(transport modulino.I2CBus, opts ...KnobOpt) *Knob {
	config := KnobOpts{Address: modulino.KnobAddresses[0]}
	for _, opt := range opts {
		opt(&config)
	}
	return &Knob{dev: modulino.NewDevice(transport, config.Address)}
}

func (k *Knob) Address() byte {
	return k.dev.Address()
}

// Update reads the current encoder state. It reports whether position or
// button changed since the previous update.
func (k *Knob) Update(ctx context.Context) (bool, error) {
	previousValue := k.value
	previousPressed := k.pressed

	buf := make([]byte, 4) // 1 pinstrap + 2 encoder + 1 button
	err := k.dev.Read(ctx, buf)
	if err != nil {
		return false, fmt.Errorf("knob: read failed: %w", err)
	}
	value := int16(binary.LittleEndian.Uint16(buf[1:3]))
	pressed := buf[3] != 0

	if k.hasRange {
		if value < k.min {
			value = k.min
			err = k.writeValue(ctx, value)
		} else if value > k.max {
			value = k.max
			err = k.writeValue(ctx, value)
		}
		if err != nil {
			return false, err
		}
	}

	k.value = value
	k.pressed = pressed
	return value != previousValue || pressed != previousPressed, nil
}

// Value returns the last read encoder position.
func (k *Knob) Value() int16 {
	return k.value
}

// Pressed returns the last read button state.
func (k *Knob) Pressed() bool {
	return k.pressed
}

// SetValue writes a new encoder position to the device. Values outside a
// configured range are rejected before any bus traffic.
func (k *Knob) SetValue(ctx context.Context, value int16) error {
	if k.hasRange && (value < k.min || value > k.max) {
		return fmt.Errorf("knob: value %d outside [%d, %d]: %w", value, k.min, k.max, modulino.ErrOutOfRange)
	}
	err := k.writeValue(ctx, value)
	if err != nil {
		return err
	}
	k.value = value
	return nil
}

// Reset sets the encoder position back to zero.
func (k *Knob) Reset(ctx context.Context) error {
	return k.SetValue(ctx, 0)
}

// SetRange constrains the encoder position to [min, max].
func (k *Knob) SetRange(min, max int16) {
	k.hasRange = true
	k.min, k.max = min, max
	if k.value < min {
		k.value = min
	} else if k.value > max {
		k.value = max
	}
}

// ClearRange removes the range constraint.
func (k *Knob) ClearRange() {
	k.hasRange = false
}

func (k *Knob) writeValue(ctx context.Context, value int16) error {
	out := make([]byte, 4)
	binary.LittleEndian.PutUint16(out[0:2], uint16(value))
	err := k.dev.Write(ctx, out)
	if err != nil {
		return fmt.Errorf("knob: value write failed: %w", err)
	}
	return nil
}

func (k *Knob) Release(ctx context.Context) (modulino.I2CBus, error) {
	return k.dev.Release(ctx)
}
