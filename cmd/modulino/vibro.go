package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/modulino"
	"github.com/mklimuk/modulino/cmd/modulino/console"
	"github.com/mklimuk/modulino/output"
)

var vibroCmd = cli.Command{
	Name: "vibro",
	Subcommands: cli.Commands{
		&vibroOnCmd,
		&vibroOffCmd,
	},
}

var vibroOnCmd = cli.Command{
	Name: "on",
	Flags: append(adapterFlags(),
		&cli.UintFlag{
			Name:  "duration",
			Usage: "vibration duration in milliseconds",
			Value: 500,
		},
		&cli.UintFlag{
			Name:  "power",
			Usage: "vibration power from 0 to 100",
			Value: uint(output.PowerMedium),
		},
	),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		bus, cfg, cleanup, err := openBus(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}
		defer cleanup()

		v := output.NewVibro(bus, output.WithVibroAddress(cfg.Address("vibro", modulino.VibroAddress)))
		err = v.On(ctx, uint16(c.Uint("duration")), uint8(c.Uint("power")))
		if err != nil {
			return console.Exit(1, "error starting vibration: %s", console.Red(err))
		}
		return nil
	},
}

var vibroOffCmd = cli.Command{
	Name:  "off",
	Flags: adapterFlags(),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		bus, cfg, cleanup, err := openBus(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}
		defer cleanup()

		v := output.NewVibro(bus, output.WithVibroAddress(cfg.Address("vibro", modulino.VibroAddress)))
		err = v.Off(ctx)
		if err != nil {
			return console.Exit(1, "error stopping vibration: %s", console.Red(err))
		}
		return nil
	},
}
