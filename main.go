package main

import (
	"fmt"
	"os"

	"github.com/achilleasa/mblurbvh/cmd"
	"github.com/achilleasa/mblurbvh/log"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "mblurbvh"
	app.Usage = "build motion-blur SAH BVH trees over point clouds"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Before = func(c *cli.Context) error {
		log.SetSink(os.Stderr)
		switch {
		case c.GlobalBool("vv"):
			log.SetLevel(log.Debug)
		case c.GlobalBool("v"):
			log.SetLevel(log.Info)
		default:
			log.SetLevel(log.Warning)
		}
		return nil
	}
	app.Commands = []cli.Command{
		{
			Name:  "build",
			Usage: "build a BVH over a synthetic motion-blurred point cloud and print stats",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "prims", Value: 100000, Usage: "number of primitives to generate"},
				cli.IntFlag{Name: "keyframes", Value: 2, Usage: "number of motion keyframes per primitive"},
				cli.IntFlag{Name: "seed", Value: 1, Usage: "PRNG seed for the synthetic scene"},
				cli.IntFlag{Name: "branching-factor", Value: 2, Usage: "BVH node branching factor"},
				cli.IntFlag{Name: "max-leaf-size", Value: 4, Usage: "maximum primitives per leaf"},
			},
			Action: cmd.BuildDemo,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
