package input

import (
	"context"
	"fmt"

	"github.com/mklimuk/modulino"
)

// DefaultDeadzone is the displacement from center below which axis values
// are reported as zero.
const DefaultDeadzone = 10

// Joystick represents the Modulino Joystick board: two analog axes and a
// push button. Raw axes arrive as unsigned bytes centered on 128 and are
// normalized to -128..127 with a configurable deadzone around center.
type Joystick struct {
	dev      *modulino.Device
	x, y     int8
	pressed  bool
	deadzone uint8
}

type JoystickOpts struct {
	Address  byte
	Deadzone uint8
}

type JoystickOpt func(*JoystickOpts)

func WithJoystickAddress(address byte) JoystickOpt {
	return func(o *JoystickOpts) {
		o.Address = address
	}
}

func WithDeadzone(deadzone uint8) JoystickOpt {
	return func(o *JoystickOpts) {
		o.Deadzone = deadzone
	}
}

func NewJoystick(transport modulino.I2CBus, opts ...JoystickOpt) *Joystick {
	config := JoystickOpts{
		Address:  modulino.JoystickAddress,
		Deadzone: DefaultDeadzone,
	}
	for _, opt := range opts {
		opt(&config)
	}
	return &Joystick{
		dev:      modulino.NewDevice(transport, config.Address),
		deadzone: config.Deadzone,
	}
}

func (j *Joystick) Address() byte {
	return j.dev.Address()
}

// Update reads the current joystick state. It reports whether any axis or
// the button changed since the previous update.
func (j *Joystick) Update(ctx context.Context) (bool, error) {
	previousX, previousY := j.x, j.y
	previousPressed := j.pressed

	buf := make([]byte, 4) // 1 pinstrap + 2 axes + 1 button
	err := j.dev.Read(ctx, buf)
	if err != nil {
		return false, fmt.Errorf("joystick: read failed: %w", err)
	}
	j.x = j.normalize(buf[1])
	j.y = j.normalize(buf[2])
	j.pressed = buf[3] != 0

	return j.x != previousX || j.y != previousY || j.pressed != previousPressed, nil
}

// normalize recenters a raw 0..255 axis value on zero and applies the
// deadzone.
func (j *Joystick) normalize(raw byte) int8 {
	centered := int16(raw) - 128
	if centered > -int16(j.deadzone) && centered < int16(j.deadzone) {
		return 0
	}
	return int8(centered)
}

func (j *Joystick) X() int8 {
	return j.x
}

func (j *Joystick) Y() int8 {
	return j.y
}

func (j *Joystick) Position() (int8, int8) {
	return j.x, j.y
}

func (j *Joystick) Pressed() bool {
	return j.pressed
}

func (j *Joystick) Centered() bool {
	return j.x == 0 && j.y == 0
}

func (j *Joystick) SetDeadzone(deadzone uint8) {
	j.deadzone = deadzone
}

func (j *Joystick) Release(ctx context.Context) (modulino.I2CBus, error) {
	return j.dev.Release(ctx)
}
