package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/modulino"
	"github.com/mklimuk/modulino/cmd/modulino/console"
	"github.com/mklimuk/modulino/output"
)

var relayCmd = cli.Command{
	Name: "relay",
	Subcommands: cli.Commands{
		&relayOnCmd,
		&relayOffCmd,
		&relayToggleCmd,
		&relayStatusCmd,
	},
}

func newRelay(c *cli.Context) (*output.LatchRelay, func(), error) {
	bus, cfg, cleanup, err := openBus(c)
	if err != nil {
		return nil, nil, err
	}
	relay := output.NewLatchRelay(bus, output.WithLatchRelayAddress(cfg.Address("relay", modulino.LatchRelayAddress)))
	return relay, cleanup, nil
}

var relayOnCmd = cli.Command{
	Name:  "on",
	Flags: adapterFlags(),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		relay, cleanup, err := newRelay(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}
		defer cleanup()
		err = relay.On(ctx)
		if err != nil {
			return console.Exit(1, "error switching relay: %s", console.Red(err))
		}
		console.PInfof(console.PictoPlug, "relay %s", console.Green("on"))
		return nil
	},
}

var relayOffCmd = cli.Command{
	Name:  "off",
	Flags: adapterFlags(),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		relay, cleanup, err := newRelay(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}
		defer cleanup()
		err = relay.Off(ctx)
		if err != nil {
			return console.Exit(1, "error switching relay: %s", console.Red(err))
		}
		console.PInfof(console.PictoPlug, "relay %s", console.White("off"))
		return nil
	},
}

var relayToggleCmd = cli.Command{
	Name: "toggle",
	Flags: append(adapterFlags(),
		&cli.BoolFlag{
			Name:  "yes",
			Usage: "skip the confirmation prompt",
		},
	),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		if !c.Bool("yes") {
			answer, err := console.YesOrNo("toggle the relay?")
			if err != nil {
				return console.Exit(1, "prompt error: %s", console.Red(err))
			}
			if answer != console.Yes {
				return nil
			}
		}
		relay, cleanup, err := newRelay(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}
		defer cleanup()
		err = relay.Toggle(ctx)
		if err != nil {
			return console.Exit(1, "error toggling relay: %s", console.Red(err))
		}
		state, err := relay.State(ctx)
		if err != nil {
			return console.Exit(1, "error reading relay state: %s", console.Red(err))
		}
		console.PInfof(console.PictoPlug, "relay %s", console.White(state))
		return nil
	},
}

var relayStatusCmd = cli.Command{
	Name:  "status",
	Flags: adapterFlags(),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		relay, cleanup, err := newRelay(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}
		defer cleanup()
		state, err := relay.State(ctx)
		if err != nil {
			return console.Exit(1, "error reading relay state: %s", console.Red(err))
		}
		console.PInfof(console.PictoPlug, "relay %s", console.White(state))
		return nil
	},
}
