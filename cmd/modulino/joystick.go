package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/modulino"
	"github.com/mklimuk/modulino/cmd/modulino/console"
	"github.com/mklimuk/modulino/input"
)

var joystickCmd = cli.Command{
	Name: "joystick",
	Subcommands: cli.Commands{
		&joystickReadCmd,
	},
}

var joystickReadCmd = cli.Command{
	Name:    "read",
	Aliases: []string{"rd"},
	Flags: append(adapterFlags(),
		&cli.UintFlag{
			Name:  "deadzone",
			Usage: "axis deadzone around center",
			Value: uint(input.DefaultDeadzone),
		},
	),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		bus, cfg, cleanup, err := openBus(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}
		defer cleanup()

		j := input.NewJoystick(bus,
			input.WithJoystickAddress(cfg.Address("joystick", modulino.JoystickAddress)),
			input.WithDeadzone(uint8(c.Uint("deadzone"))),
		)
		_, err = j.Update(ctx)
		if err != nil {
			return console.Exit(1, "error reading joystick: %s", console.Red(err))
		}
		x, y := j.Position()
		console.PInfof(console.PictoJoystick, "x %s y %s pressed %s", console.White(x), console.White(y), console.White(j.Pressed()))
		return nil
	},
}
