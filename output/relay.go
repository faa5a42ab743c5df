package output

import (
	"context"
	"fmt"

	"github.com/mklimuk/modulino"
)

// RelayState is the reported state of the latching relay. A latching relay
// keeps its contact position without power, so right after power-up the
// board cannot tell which position the contact is in and reports unknown
// until the first switch command.
type RelayState int

const (
	RelayUnknown RelayState = iota
	RelayOff
	RelayOn
)

func (s RelayState) String() string {
	switch s {
	case RelayOn:
		return "on"
	case RelayOff:
		return "off"
	default:
		return "unknown"
	}
}

// LatchRelay represents the Modulino Latch Relay board.
type LatchRelay struct {
	dev *modulino.Device
}

type LatchRelayOpts struct {
	Address byte
}

type LatchRelayOpt func(*LatchRelayOpts)

func WithLatchRelayAddress(address byte) LatchRelayOpt {
	return func(o *LatchRelayOpts) {
		o.Address = address
	}
}

func NewLatchRelay(transport modulino.I2CBus, opts ...LatchRelayOpt) *LatchRelay {
	config := LatchRelayOpts{Address: modulino.LatchRelayAddress}
	for _, opt := range opts {
		opt(&config)
	}
	return &LatchRelay{dev: modulino.NewDevice(transport, config.Address)}
}

func (r *LatchRelay) Address() byte {
	return r.dev.Address()
}

func (r *LatchRelay) On(ctx context.Context) error {
	return r.set(ctx, 1)
}

func (r *LatchRelay) Off(ctx context.Context) error {
	return r.set(ctx, 0)
}

func (r *LatchRelay) Set(ctx context.Context, on bool) error {
	if on {
		return r.On(ctx)
	}
	return r.Off(ctx)
}

// Toggle switches the relay to the opposite position. An unknown state
// toggles to on.
func (r *LatchRelay) Toggle(ctx context.Context) error {
	state, err := r.State(ctx)
	if err != nil {
		return err
	}
	if state == RelayOn {
		return r.Off(ctx)
	}
	return r.On(ctx)
}

func (r *LatchRelay) set(ctx context.Context, value byte) error {
	err := r.dev.Write(ctx, []byte{value, 0, 0})
	if err != nil {
		return fmt.Errorf("relay: switch write failed: %w", err)
	}
	return nil
}

// State reads back the relay position.
func (r *LatchRelay) State(ctx context.Context) (RelayState, error) {
	buf := make([]byte, 4) // 1 pinstrap + 3 status
	err := r.dev.Read(ctx, buf)
	if err != nil {
		return RelayUnknown, fmt.Errorf("relay: state read failed: %w", err)
	}
	switch {
	case buf[1] == 0 && buf[2] == 0:
		return RelayUnknown, nil
	case buf[1] == 1:
		return RelayOff, nil
	default:
		return RelayOn, nil
	}
}

func (r *LatchRelay) Release(ctx context.Context) (modulino.I2CBus, error) {
	return r.dev.Release(ctx)
}
