package main

import (
	"context"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/modulino"
	"github.com/mklimuk/modulino/cmd/modulino/console"
	"github.com/mklimuk/modulino/output"
)

var pixelsCmd = cli.Command{
	Name: "pixels",
	Subcommands: cli.Commands{
		&pixelsSetCmd,
		&pixelsOffCmd,
	},
}

var namedColors = map[string]output.Color{
	"black":   output.Black,
	"red":     output.Red,
	"green":   output.Green,
	"blue":    output.Blue,
	"yellow":  output.Yellow,
	"cyan":    output.Cyan,
	"magenta": output.Magenta,
	"white":   output.White,
	"orange":  output.Orange,
	"violet":  output.Violet,
}

var pixelsSetCmd = cli.Command{
	Name: "set",
	Flags: append(adapterFlags(),
		&cli.IntFlag{
			Name:  "index",
			Usage: "LED index, -1 for all",
			Value: -1,
		},
		&cli.StringFlag{
			Name:  "color",
			Value: "white",
		},
		&cli.UintFlag{
			Name:  "brightness",
			Usage: "brightness from 0 to 100",
			Value: 100,
		},
	),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		col, ok := namedColors[strings.ToLower(c.String("color"))]
		if !ok {
			return console.Exit(1, "unknown color: %s", console.Red(c.String("color")))
		}
		bus, cfg, cleanup, err := openBus(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}
		defer cleanup()

		p := output.NewPixels(bus, output.WithPixelsAddress(cfg.Address("pixels", modulino.PixelsAddress)))
		index := c.Int("index")
		brightness := uint8(c.Uint("brightness"))
		if index < 0 {
			p.SetAll(col, brightness)
		} else {
			err = p.SetColor(index, col, brightness)
			if err != nil {
				return console.Exit(1, "invalid LED index: %s", console.Red(err))
			}
		}
		err = p.Show(ctx)
		if err != nil {
			return console.Exit(1, "error updating pixels: %s", console.Red(err))
		}
		return nil
	},
}

var pixelsOffCmd = cli.Command{
	Name:  "off",
	Flags: adapterFlags(),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		bus, cfg, cleanup, err := openBus(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}
		defer cleanup()

		p := output.NewPixels(bus, output.WithPixelsAddress(cfg.Address("pixels", modulino.PixelsAddress)))
		err = p.Show(ctx)
		if err != nil {
			return console.Exit(1, "error updating pixels: %s", console.Red(err))
		}
		return nil
	},
}
