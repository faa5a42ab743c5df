package output

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/mklimuk/modulino"
)

// MinFrequency is the lowest tone the buzzer hardware can produce; anything
// below it (except 0, silence) is rejected.
const MinFrequency = 180

// ToneForever plays a tone until explicitly stopped.
const ToneForever = 0xFFFF

// Note frequencies in Hz, standard tuning (A4 = 440).
const (
	NoteC4 uint16 = 262
	NoteD4 uint16 = 294
	NoteE4 uint16 = 330
	NoteF4 uint16 = 349
	NoteG4 uint16 = 392
	NoteA4 uint16 = 440
	NoteB4 uint16 = 494
	NoteC5 uint16 = 523
	NoteD5 uint16 = 587
	NoteE5 uint16 = 659
	NoteF5 uint16 = 698
	NoteG5 uint16 = 784
	NoteA5 uint16 = 880
	NoteB5 uint16 = 988
	NoteC6 uint16 = 1047
)

// Buzzer represents the Modulino Buzzer board, a piezo speaker. Each command
// is a single 8-byte write: little-endian u32 frequency followed by
// little-endian u32 duration in milliseconds.
type Buzzer struct {
	dev *modulino.Device
}

type BuzzerOpts struct {
	Address byte
}

type BuzzerOpt func(*BuzzerOpts)

func WithBuzzerAddress(address byte) BuzzerOpt {
	return func(o *BuzzerOpts) {
		o.Address = address
	}
}

func NewBuzzer(transport modulino.I2CBus, opts ...BuzzerOpt) *Buzzer {
	config := BuzzerOpts{Address: modulino.BuzzerAddress}
	for _, opt := range opts {
		opt(&config)
	}
	return &Buzzer{dev: modulino.NewDevice(transport, config.Address)}
}

func (b *Buzzer) Address() byte {
	return b.dev.Address()
}

// Tone plays a tone at the given frequency for durationMS milliseconds
// (ToneForever for indefinite). Frequency 0 is silence.
func (b *Buzzer) Tone(ctx context.Context, frequency, durationMS uint16) error {
	if frequency != 0 && frequency < MinFrequency {
		return fmt.Errorf("buzzer: frequency %d below %d Hz: %w", frequency, MinFrequency, modulino.ErrInvalidParameter)
	}
	out := make([]byte, 8)
	binary.LittleEndian.PutUint32(out[0:4], uint32(frequency))
	binary.LittleEndian.PutUint32(out[4:8], uint32(durationMS))
	err := b.dev.Write(ctx, out)
	if err != nil {
		return fmt.Errorf("buzzer: tone write failed: %w", err)
	}
	return nil
}

// NoTone stops any playing tone.
func (b *Buzzer) NoTone(ctx context.Context) error {
	err := b.dev.Write(ctx, make([]byte, 8))
	if err != nil {
		return fmt.Errorf("buzzer: stop write failed: %w", err)
	}
	return nil
}

func (b *Buzzer) Release(ctx context.Context) (modulino.I2CBus, error) {
	return b.dev.Release(ctx)
}
