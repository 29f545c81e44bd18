package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/llehouerou/encore/internal/catalog"
	"github.com/llehouerou/encore/internal/config"
	"github.com/llehouerou/encore/internal/errmsg"
	"github.com/llehouerou/encore/internal/ui/render"
)

func showCatalog(_ context.Context, cmd *cli.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	source := cfg.Catalog
	if source == "" {
		source = "built-in sample"
	}
	w := cmd.Root().Writer
	if w == nil {
		w = os.Stdout
	}
	return printCatalog(w, source, cat)
}

func printCatalog(w io.Writer, source string, cat *catalog.Catalog) error {
	tracks := cat.Tracks()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Catalog:\t%s\n", source)
	fmt.Fprintf(tw, "Tracks:\t%d (%s)\n", len(tracks), render.FormatDuration(catalog.TotalDuration(tracks)))
	fmt.Fprintf(tw, "Albums:\t%d\n", len(cat.Albums()))
	fmt.Fprintf(tw, "Artists:\t%d\n", len(cat.Artists()))
	fmt.Fprintf(tw, "Playlists:\t%d\n", len(cat.Playlists()))
	for _, p := range cat.Playlists() {
		fmt.Fprintf(tw, "  %s\t%s\n", p.Name, render.FormatCount(len(p.Tracks))+" songs")
	}
	return tw.Flush()
}

func scanCatalog(_ context.Context, cmd *cli.Command) error {
	dir := cmd.Args().First()
	if dir == "" {
		return errors.New("scan: missing DIR")
	}

	cat, skipped, err := catalog.Scan(dir)
	if err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpCatalogScan, dir, err))
	}
	for _, path := range skipped {
		fmt.Fprintf(os.Stderr, "skipped %s\n", path)
	}

	out := io.Writer(os.Stdout)
	if path := cmd.String("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	if err := catalog.Encode(out, cat); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	fmt.Fprintf(os.Stderr, "%d tracks, %d albums, %d artists\n",
		len(cat.Tracks()), len(cat.Albums()), len(cat.Artists()))
	return nil
}
