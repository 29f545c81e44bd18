package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/llehouerou/encore/internal/errmsg"
)

func main() {
	cmd := &cli.Command{
		Name:   "encore",
		Usage:  "Terminal music player",
		Action: runPlayer,
		Commands: []*cli.Command{
			{
				Name:  "catalog",
				Usage: "Inspect or build music catalogs",
				Commands: []*cli.Command{
					{
						Name:   "show",
						Usage:  "Print a summary of the configured catalog",
						Action: showCatalog,
					},
					{
						Name:      "scan",
						Usage:     "Build a TOML catalog from the audio files in DIR",
						ArgsUsage: "DIR",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:    "output",
								Aliases: []string{"o"},
								Usage:   "Write the catalog to `FILE` instead of stdout",
							},
						},
						Action: scanCatalog,
					},
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpInitialize, err))
		os.Exit(1)
	}
}
