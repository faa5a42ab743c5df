package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/modulino"
	"github.com/mklimuk/modulino/cmd/modulino/console"
	"github.com/mklimuk/modulino/output"
)

var buzzerCmd = cli.Command{
	Name: "buzzer",
	Subcommands: cli.Commands{
		&buzzerToneCmd,
		&buzzerStopCmd,
	},
}

var buzzerToneCmd = cli.Command{
	Name: "tone",
	Flags: append(adapterFlags(),
		&cli.UintFlag{
			Name:    "frequency",
			Aliases: []string{"f"},
			Usage:   "tone frequency in Hz",
			Value:   440,
		},
		&cli.UintFlag{
			Name:  "duration",
			Usage: "tone duration in milliseconds",
			Value: 1000,
		},
	),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		bus, cfg, cleanup, err := openBus(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}
		defer cleanup()

		b := output.NewBuzzer(bus, output.WithBuzzerAddress(cfg.Address("buzzer", modulino.BuzzerAddress)))
		err = b.Tone(ctx, uint16(c.Uint("frequency")), uint16(c.Uint("duration")))
		if err != nil {
			return console.Exit(1, "error playing tone: %s", console.Red(err))
		}
		console.PInfof(console.PictoBell, "%s Hz for %s ms", console.White(c.Uint("frequency")), console.White(c.Uint("duration")))
		return nil
	},
}

var buzzerStopCmd = cli.Command{
	Name:  "stop",
	Flags: adapterFlags(),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		bus, cfg, cleanup, err := openBus(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}
		defer cleanup()

		b := output.NewBuzzer(bus, output.WithBuzzerAddress(cfg.Address("buzzer", modulino.BuzzerAddress)))
		err = b.NoTone(ctx)
		if err != nil {
			return console.Exit(1, "error stopping tone: %s", console.Red(err))
		}
		return nil
	},
}
