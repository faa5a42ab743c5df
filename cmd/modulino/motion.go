package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/modulino"
	"github.com/mklimuk/modulino/cmd/modulino/console"
	"github.com/mklimuk/modulino/motion"
)

var motionCmd = cli.Command{
	Name: "motion",
	Subcommands: cli.Commands{
		&motionReadCmd,
	},
}

var motionReadCmd = cli.Command{
	Name:    "read",
	Aliases: []string{"rd"},
	Flags: append(adapterFlags(),
		&cli.BoolFlag{
			Name:  "alt",
			Usage: "use the alternate board address",
		},
	),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		bus, cfg, cleanup, err := openBus(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}
		defer cleanup()

		addr := modulino.MovementAddresses[0]
		if c.Bool("alt") {
			addr = modulino.MovementAddresses[1]
		}
		imu := motion.NewLSM6DSOX(bus, motion.WithLSM6DSOXAddress(cfg.Address("movement", addr)))
		err = imu.Init(ctx)
		if err != nil {
			return console.Exit(1, "sensor initialization error: %s", console.Red(err))
		}
		accel, err := imu.Acceleration(ctx)
		if err != nil {
			return console.Exit(1, "error reading acceleration: %s", console.Red(err))
		}
		gyro, err := imu.AngularVelocity(ctx)
		if err != nil {
			return console.Exit(1, "error reading angular velocity: %s", console.Red(err))
		}
		console.PInfof(console.PictoCompass, "accel [g]   x %s y %s z %s", console.White(accel.X), console.White(accel.Y), console.White(accel.Z))
		console.PInfof(console.PictoCompass, "gyro  [dps] x %s y %s z %s", console.White(gyro.X), console.White(gyro.Y), console.White(gyro.Z))
		return nil
	},
}
