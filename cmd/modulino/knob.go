package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/modulino"
	"github.com/mklimuk/modulino/cmd/modulino/console"
	"github.com/mklimuk/modulino/input"
)

var knobCmd = cli.Command{
	Name: "knob",
	Subcommands: cli.Commands{
		&knobReadCmd,
		&knobSetCmd,
		&knobResetCmd,
	},
}

var knobReadCmd = cli.Command{
	Name:    "read",
	Aliases: []string{"rd"},
	Flags:   adapterFlags(),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		bus, cfg, cleanup, err := openBus(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}
		defer cleanup()

		k := input.NewKnob(bus, input.WithKnobAddress(cfg.Address("knob", modulino.KnobAddresses[0])))
		_, err = k.Update(ctx)
		if err != nil {
			return console.Exit(1, "error reading knob: %s", console.Red(err))
		}
		console.PInfof(console.PictoKnob, "position %s pressed %s", console.White(k.Value()), console.White(k.Pressed()))
		return nil
	},
}

var knobSetCmd = cli.Command{
	Name: "set",
	Flags: append(adapterFlags(),
		&cli.IntFlag{
			Name:     "value",
			Usage:    "encoder position to set",
			Required: true,
		},
	),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		bus, cfg, cleanup, err := openBus(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}
		defer cleanup()

		k := input.NewKnob(bus, input.WithKnobAddress(cfg.Address("knob", modulino.KnobAddresses[0])))
		err = k.SetValue(ctx, int16(c.Int("value")))
		if err != nil {
			return console.Exit(1, "error setting knob position: %s", console.Red(err))
		}
		return nil
	},
}

var knobResetCmd = cli.Command{
	Name:  "reset",
	Flags: adapterFlags(),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		bus, cfg, cleanup, err := openBus(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}
		defer cleanup()

		k := input.NewKnob(bus, input.WithKnobAddress(cfg.Address("knob", modulino.KnobAddresses[0])))
		err = k.Reset(ctx)
		if err != nil {
			return console.Exit(1, "error resetting knob: %s", console.Red(err))
		}
		return nil
	},
}
