package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/modulino"
	"github.com/mklimuk/modulino/cmd/modulino/console"
	"github.com/mklimuk/modulino/input"
)

var buttonsCmd = cli.Command{
	Name: "buttons",
	Subcommands: cli.Commands{
		&buttonsReadCmd,
		&buttonsLedsCmd,
	},
}

var buttonsReadCmd = cli.Command{
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

		b := input.NewButtons(bus, input.WithButtonsAddress(cfg.Address("buttons", modulino.ButtonsAddress)))
		state, err := b.Read(ctx)
		if err != nil {
			return console.Exit(1, "error reading buttons: %s", console.Red(err))
		}
		console.Printf("A: %s B: %s C: %s\n", pressed(state.A), pressed(state.B), pressed(state.C))
		return nil
	},
}

var buttonsLedsCmd = cli.Command{
	Name: "leds",
	Flags: append(adapterFlags(),
		&cli.BoolFlag{Name: "a"},
		&cli.BoolFlag{Name: "b"},
		&cli.BoolFlag{Name: "c"},
	),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		bus, cfg, cleanup, err := openBus(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}
		defer cleanup()

		b := input.NewButtons(bus, input.WithButtonsAddress(cfg.Address("buttons", modulino.ButtonsAddress)))
		err = b.SetLeds(ctx, c.Bool("a"), c.Bool("b"), c.Bool("c"))
		if err != nil {
			return console.Exit(1, "error setting LEDs: %s", console.Red(err))
		}
		return nil
	},
}

func pressed(on bool) string {
	if on {
		return console.Green("pressed")
	}
	return console.White("released")
}
