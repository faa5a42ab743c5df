package input

import (
	"context"
	"fmt"

	"github.com/mklimuk/modulino"
)

// ButtonState holds the pressed state of the three buttons.
type ButtonState struct {
	A bool
	B bool
	C bool
}

func (s ButtonState) AnyPressed() bool {
	return s.A || s.B || s.C
}

func (s ButtonState) AllPressed() bool {
	return s.A && s.B && s.C
}

// Buttons represents the Modulino Buttons board: three buttons, each with an
// associated LED. Reads return one pinstrap byte followed by the three
// button bytes; LED writes push the three LED bytes in one transaction.
// Typical usage:
//
//	b := input.NewButtons(bus)
//	state, err := b.Read(ctx)
//	err = b.SetLeds(ctx, state.A, state.B, state.C)
type Buttons struct {
	dev   *modulino.Device
	state ButtonState
	leds  [3]bool
}

type ButtonsOpts struct {
	Address byte
}

type ButtonsOpt func(*ButtonsOpts)

func WithButtonsAddress(address byte) ButtonsOpt {
	return func(o *ButtonsOpts) {
		o.Address = address
	}
}

func NewButtons(transport modulino.I2CBus, opts ...ButtonsOpt) *Buttons {
	config := ButtonsOpts{Address: modulino.ButtonsAddress}
	for _, opt := range opts {
		opt(&config)
	}
	return &Buttons{dev: modulino.NewDevice(transport, config.Address)}
}

func (b *Buttons) Address() byte {
	return b.dev.Address()
}

// Read fetches the current button states from the board.
func (b *Buttons) Read(ctx context.Context) (ButtonState, error) {
	buf := make([]byte, 4) // 1 pinstrap + 3 button states
	err := b.dev.Read(ctx, buf)
	if err != nil {
		return ButtonState{}, fmt.Errorf("buttons: read failed: %w", err)
	}
	b.state = ButtonState{
		A: buf[1] != 0,
		B: buf[2] != 0,
		C: buf[3] != 0,
	}
	return b.state, nil
}

// State returns the last read button state without bus traffic.
func (b *Buttons) State() ButtonState {
	return b.state
}

// SetLeds sets all three LEDs and pushes the state to the board.
func (b *Buttons) SetLeds(ctx context.Context, a, bb, c bool) error {
	b.leds = [3]bool{a, bb, c}
	return b.UpdateLeds(ctx)
}

// UpdateLeds writes the current LED states to the board.
func (b *Buttons) UpdateLeds(ctx context.Context) error {
	out := make([]byte, 3)
	for i, on := range b.leds {
		if on {
			out[i] = 1
		}
	}
	err := b.dev.Write(ctx, out)
	if err != nil {
		return fmt.Errorf("buttons: LED update failed: %w", err)
	}
	return nil
}

func (b *Buttons) AllLedsOn(ctx context.Context) error {
	return b.SetLeds(ctx, true, true, true)
}

func (b *Buttons) AllLedsOff(ctx context.Context) error {
	return b.SetLeds(ctx, false, false, false)
}

func (b *Buttons) Release(ctx context.Context) (modulino.I2CBus, error) {
	return b.dev.Release(ctx)
}
