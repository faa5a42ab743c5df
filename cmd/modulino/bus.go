package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"
	"gobot.io/x/gobot/v2/platforms/friendlyelec/nanopi"
	"gobot.io/x/gobot/v2/platforms/raspi"

	"github.com/mklimuk/modulino"
	"github.com/mklimuk/modulino/adapter"
	"github.com/mklimuk/modulino/cmd/modulino/console"
	"github.com/mklimuk/modulino/i2c"
	"github.com/mklimuk/modulino/pkg/config"
)

func adapterFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "adapter",
			Aliases: []string{"a"},
			Usage:   "mcp2221, generic, nanopi or raspi",
			Value:   "mcp2221",
		},
		&cli.StringFlag{
			Name:    "device",
			Aliases: []string{"d"},
			Usage:   "bus device path for the generic adapter",
			Value:   "/dev/i2c-1",
		},
		&cli.IntFlag{
			Name:    "bus",
			Aliases: []string{"b"},
			Usage:   "bus number for the nanopi and raspi adapters",
			Value:   2,
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "optional yaml configuration file",
		},
		&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}},
	}
}

func loadConfig(c *cli.Context) (config.Config, error) {
	if path := c.String("config"); path != "" {
		return config.Load(path)
	}
	cfg := config.Default()
	if c.IsSet("adapter") {
		cfg.Adapter = c.String("adapter")
	}
	if c.IsSet("device") {
		cfg.Device = c.String("device")
	}
	if c.IsSet("bus") {
		cfg.Bus = c.Int("bus")
	}
	return cfg, nil
}

// openBus builds the transport selected by the flags or the config file.
// The returned cleanup func must be called once the command is done.
func openBus(c *cli.Context) (modulino.I2CBus, config.Config, func(), error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, cfg, nil, err
	}
	switch cfg.Adapter {
	case "generic":
		bus, err := i2c.NewGenericBus(cfg.Device)
		if err != nil {
			return nil, cfg, nil, err
		}
		cleanup := func() {
			err := bus.Close()
			if err != nil {
				console.Errorf("error closing bus: %s", console.Red(err))
			}
		}
		return bus, cfg, cleanup, nil
	case "nanopi":
		npi := nanopi.NewNeoAdaptor()
		err := npi.I2cBusAdaptor.Connect()
		if err != nil {
			return nil, cfg, nil, fmt.Errorf("adaptor connect error: %w", err)
		}
		bus := adapter.NewGobot(npi, cfg.Bus)
		return bus, cfg, gobotCleanup(bus, npi.I2cBusAdaptor.Finalize), nil
	case "raspi":
		rpi := raspi.NewAdaptor()
		err := rpi.Connect()
		if err != nil {
			return nil, cfg, nil, fmt.Errorf("adaptor connect error: %w", err)
		}
		bus := adapter.NewGobot(rpi, cfg.Bus)
		return bus, cfg, gobotCleanup(bus, rpi.Finalize), nil
	default:
		ad := adapter.NewMCP2221()
		err := ad.Init()
		if err != nil {
			return nil, cfg, nil, err
		}
		return ad, cfg, func() {}, nil
	}
}

// gobotCleanup halts the per-board drivers before finalizing the platform
// adaptor they run on.
func gobotCleanup(bus *adapter.Gobot, finalize func() error) func() {
	return func() {
		err := bus.Release(context.Background())
		if err != nil {
			console.Errorf("error releasing bus: %s", console.Red(err))
		}
		err = finalize()
		if err != nil {
			console.Errorf("error finalizing adaptor: %s", console.Red(err))
		}
	}
}
