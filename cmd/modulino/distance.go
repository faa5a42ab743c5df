package main

import (
	"context"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/modulino"
	"github.com/mklimuk/modulino/cmd/modulino/console"
	"github.com/mklimuk/modulino/distance"
)

var distanceCmd = cli.Command{
	Name:    "distance",
	Aliases: []string{"dist"},
	Subcommands: cli.Commands{
		&distanceReadCmd,
		&distanceStreamCmd,
	},
}

var distanceReadCmd = cli.Command{
	Name:    "read",
	Aliases: []string{"rd"},
	Flags: append(adapterFlags(),
		&cli.UintFlag{
			Name:  "budget",
			Usage: "ranging timing budget in milliseconds",
			Value: 20,
		},
	),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		bus, cfg, cleanup, err := openBus(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}
		defer cleanup()

		s := distance.NewVL53L4CD(bus, distance.WithAddress(cfg.Address("distance", modulino.DistanceAddress)))
		err = s.Init(ctx)
		if err != nil {
			return console.Exit(1, "sensor initialization error: %s", console.Red(err))
		}
		err = s.SetTimingBudget(ctx, uint16(c.Uint("budget")))
		if err != nil {
			return console.Exit(1, "could not set timing budget: %s", console.Red(err))
		}
		err = s.StartRanging(ctx)
		if err != nil {
			return console.Exit(1, "could not start ranging: %s", console.Red(err))
		}
		defer func() {
			err := s.StopRanging(ctx)
			if err != nil {
				console.Errorf("could not stop ranging: %s", console.Red(err))
			}
		}()
		m, err := s.ReadBlocking(ctx)
		if err != nil {
			return console.Exit(1, "ranging error: %s", console.Red(err))
		}
		printMeasurement(m)
		return nil
	},
}

var distanceStreamCmd = cli.Command{
	Name: "stream",
	Flags: append(adapterFlags(),
		&cli.IntFlag{
			Name:  "count",
			Usage: "number of measurements to take (0 for unlimited)",
			Value: 10,
		},
		&cli.UintFlag{
			Name:  "interval",
			Usage: "inter-measurement period in milliseconds",
			Value: 100,
		},
	),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		bus, cfg, cleanup, err := openBus(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}
		defer cleanup()

		s := distance.NewVL53L4CD(bus, distance.WithAddress(cfg.Address("distance", modulino.DistanceAddress)))
		err = s.Init(ctx)
		if err != nil {
			return console.Exit(1, "sensor initialization error: %s", console.Red(err))
		}
		err = s.SetInterMeasurement(ctx, uint32(c.Uint("interval")))
		if err != nil {
			return console.Exit(1, "could not set measurement interval: %s", console.Red(err))
		}
		err = s.StartRanging(ctx)
		if err != nil {
			return console.Exit(1, "could not start ranging: %s", console.Red(err))
		}
		defer func() {
			err := s.StopRanging(ctx)
			if err != nil {
				console.Errorf("could not stop ranging: %s", console.Red(err))
			}
		}()
		count := c.Int("count")
		for i := 0; count == 0 || i < count; i++ {
			m, err := s.ReadBlocking(ctx)
			if err != nil {
				return console.Exit(1, "ranging error: %s", console.Red(err))
			}
			printMeasurement(m)
			time.Sleep(time.Duration(c.Uint("interval")) * time.Millisecond)
		}
		return nil
	},
}

func printMeasurement(m distance.Measurement) {
	if m.Valid() {
		console.PInfof(console.PictoRuler, "%s mm", console.White(m.DistanceMM))
		return
	}
	console.PInfof(console.PictoRuler, "%s mm (status %s)", console.Yellow(m.DistanceMM), console.Yellow(m.RangeStatus))
}
