package adapter

import (
	"context"
	"fmt"
	"sync"

	"gobot.io/x/gobot/v2/drivers/i2c"
)

// Gobot drives Modulino boards through any gobot platform adaptor with an
// I2C connector (Raspberry Pi, NanoPi...). A generic driver is started
// lazily per board address and halted on Release.
//
// The gobot connection has no combined write-read primitive, so
// WriteReadFromAddr issues two transactions with a stop condition in
// between. The microcontroller based Modulino boards tolerate this; the
// ranging sensor should go through an adapter with true repeated start when
// possible.
type Gobot struct {
	mx      sync.Mutex
	adaptor i2c.Connector
	bus     int
	boards  map[byte]*i2c.GenericDriver
}

func NewGobot(adaptor i2c.Connector, bus int) *Gobot {
	return &Gobot{
		adaptor: adaptor,
		bus:     bus,
		boards:  make(map[byte]*i2c.GenericDriver),
	}
}

func (g *Gobot) board(address byte) (*i2c.GenericDriver, error) {
	if board, ok := g.boards[address]; ok {
		return board, nil
	}
	board := i2c.NewGenericDriver(g.adaptor, "modulino", int(address), func(c i2c.Config) {
		c.SetBus(g.bus)
	})
	err := board.Start()
	if err != nil {
		return nil, fmt.Errorf("could not start driver for address %#x: %w", address, err)
	}
	g.boards[address] = board
	return board, nil
}

func (g *Gobot) WriteToAddr(_ context.Context, address byte, buffer []byte) error {
	g.mx.Lock()
	defer g.mx.Unlock()
	board, err := g.board(address)
	if err != nil {
		return err
	}
	err = board.Write(buffer)
	if err != nil {
		return fmt.Errorf("write to %#x failed: %w", address, err)
	}
	return nil
}

func (g *Gobot) ReadFromAddr(_ context.Context, address byte, buffer []byte) error {
	g.mx.Lock()
	defer g.mx.Unlock()
	board, err := g.board(address)
	if err != nil {
		return err
	}
	err = board.Read(buffer)
	if err != nil {
		return fmt.Errorf("read from %#x failed: %w", address, err)
	}
	return nil
}

func (g *Gobot) WriteReadFromAddr(_ context.Context, address byte, w, r []byte) error {
	g.mx.Lock()
	defer g.mx.Unlock()
	board, err := g.board(address)
	if err != nil {
		return err
	}
	err = board.Write(w)
	if err != nil {
		return fmt.Errorf("write phase to %#x failed: %w", address, err)
	}
	err = board.Read(r)
	if err != nil {
		return fmt.Errorf("read phase from %#x failed: %w", address, err)
	}
	return nil
}

func (g *Gobot) Release(_ context.Context) error {
	g.mx.Lock()
	defer g.mx.Unlock()
	var first error
	for address, board := range g.boards {
		err := board.Halt()
		if err != nil && first == nil {
			first = fmt.Errorf("could not halt driver for address %#x: %w", address, err)
		}
		delete(g.boards, address)
	}
	return first
}
