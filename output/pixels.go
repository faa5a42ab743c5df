package output

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/mklimuk/modulino"
)

// NumLeds is the number of RGB LEDs on the Pixels board.
const NumLeds = 8

// Pixels represents the Modulino Pixels board: 8 APA102-compatible RGB LEDs.
// Color and brightness changes are staged in a local frame buffer; Show
// pushes the whole 32-byte frame in a single transaction. Each LED occupies
// a little-endian 32-bit word whose low byte is 0xE0 | 5-bit brightness.
// Typical usage:
//
//	p := output.NewPixels(bus)
//	err := p.SetColor(0, output.Red, 50)
//	err = p.Show(ctx)
type Pixels struct {
	dev  *modulino.Device
	data [NumLeds * 4]byte
}

type PixelsOpts struct {
	Address byte
}

type PixelsOpt func(*PixelsOpts)

func WithPixelsAddress(address byte) PixelsOpt {
	return func(o *PixelsOpts) {
		o.Address = address
	}
}

func NewPixels(transport modulino.I2CBus, opts ...PixelsOpt) *Pixels {
	config := PixelsOpts{Address: modulino.PixelsAddress}
	for _, opt := range opts {
		opt(&config)
	}
	p := &Pixels{dev: modulino.NewDevice(transport, config.Address)}
	p.ClearAll()
	return p
}

func (p *Pixels) Address() byte {
	return p.dev.Address()
}

// mapBrightness scales 0-100 to the 5-bit APA102 brightness field.
func mapBrightness(brightness uint8) uint8 {
	if brightness > 100 {
		brightness = 100
	}
	return uint8(uint16(brightness) * 31 / 100)
}

// SetColor stages a color and brightness (0-100) for one LED. The index is
// validated before anything touches the wire.
func (p *Pixels) SetColor(index int, color Color, brightness uint8) error {
	if index < 0 || index >= NumLeds {
		return fmt.Errorf("pixels: index %d: %w", index, modulino.ErrOutOfRange)
	}
	word := color.apa102() | uint32(mapBrightness(brightness)) | 0xE0
	binary.LittleEndian.PutUint32(p.data[index*4:index*4+4], word)
	return nil
}

// SetBrightness changes one LED's brightness without touching its color.
func (p *Pixels) SetBrightness(index int, brightness uint8) error {
	if index < 0 || index >= NumLeds {
		return fmt.Errorf("pixels: index %d: %w", index, modulino.ErrOutOfRange)
	}
	p.data[index*4] = mapBrightness(brightness) | 0xE0
	return nil
}

// SetAll stages the same color on every LED.
func (p *Pixels) SetAll(color Color, brightness uint8) {
	for i := 0; i < NumLeds; i++ {
		_ = p.SetColor(i, color, brightness)
	}
}

// SetRange stages a color on LEDs from..to inclusive; to is clamped.
func (p *Pixels) SetRange(from, to int, color Color, brightness uint8) {
	if from < 0 {
		from = 0
	}
	if to >= NumLeds {
		to = NumLeds - 1
	}
	for i := from; i <= to; i++ {
		_ = p.SetColor(i, color, brightness)
	}
}

// Clear stages one LED off.
func (p *Pixels) Clear(index int) error {
	return p.SetColor(index, Black, 0)
}

// ClearAll stages every LED off.
func (p *Pixels) ClearAll() {
	p.SetAll(Black, 0)
}

// Show pushes the staged frame to the board.
func (p *Pixels) Show(ctx context.Context) error {
	err := p.dev.Write(ctx, p.data[:])
	if err != nil {
		return fmt.Errorf("pixels: frame write failed: %w", err)
	}
	return nil
}

func (p *Pixels) Release(ctx context.Context) (modulino.I2CBus, error) {
	return p.dev.Release(ctx)
}
