// SPDX-License-Identifier: GPL-2.0-or-later

// Command w3dinfo decodes W3D files from directories and BIG archives and prints
// what they contain.
//
//	w3dinfo [flags] [name ...]
//
// Names are looked up in the mounted archives and directories first, then on disk.
// Without names every file of a known format in the mounted sources is decoded.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/pkg/errors"

	"github.com/ClementJ18/finalBIGv2-sub000/batch"
	"github.com/ClementJ18/finalBIGv2-sub000/commandline"
	"github.com/ClementJ18/finalBIGv2-sub000/config"
	"github.com/ClementJ18/finalBIGv2-sub000/conlog"
	"github.com/ClementJ18/finalBIGv2-sub000/filesystem"
	"github.com/ClementJ18/finalBIGv2-sub000/model"
	"github.com/ClementJ18/finalBIGv2-sub000/texture"
)

import (
	// register the model loaders
	_ "github.com/ClementJ18/finalBIGv2-sub000/w3d"
)

func main() {
	flag.Parse()
	log.SetFlags(0)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	failed, err := run(ctx, flag.Args(), os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func settings() (config.Config, error) {
	var cfg config.Config
	if name := commandline.ConfigFile(); name != "" {
		var err error
		if cfg, err = config.Load(name); err != nil {
			return cfg, err
		}
	}
	cfg.Resolve(config.Flags{
		Archives:   commandline.Archives(),
		TextureDir: commandline.TextureDir(),
		Workers:    commandline.Workers(),
		Validate:   commandline.Validate(),
		JSON:       commandline.JSON(),
		Textures:   commandline.Textures(),
		Verbose:    commandline.Verbose(),
	})
	return cfg, nil
}

func mount(name string) error {
	fi, err := os.Stat(name)
	if err != nil {
		return err
	}
	if fi.IsDir() {
		return filesystem.UseDir(name)
	}
	return filesystem.UseArchive(name)
}

// run returns the number of files that failed to decode.
func run(ctx context.Context, args []string, w io.Writer) (int, error) {
	cfg, err := settings()
	if err != nil {
		return 0, err
	}
	conlog.SetVerbose(cfg.Verbose)

	defer filesystem.Reset()
	for _, a := range cfg.Archives {
		if err := mount(a); err != nil {
			return 0, errors.Wrapf(err, "mount %s", a)
		}
		conlog.DPrintf("mounted %s", a)
	}
	if cfg.TextureDir != "" {
		if err := filesystem.UseDir(cfg.TextureDir); err != nil {
			return 0, errors.Wrapf(err, "mount %s", cfg.TextureDir)
		}
	}

	names := args
	if len(names) == 0 {
		for _, n := range filesystem.Names() {
			if model.Supported(n) {
				names = append(names, n)
			}
		}
	}
	if len(names) == 0 {
		return 0, errors.Errorf("nothing to decode, supported formats are %v", model.Formats())
	}

	results := batch.Run(ctx, batch.Config{
		Read:    filesystem.ReadFile,
		Workers: cfg.Workers,
	}, names)

	var idx *texture.Index
	if cfg.Textures {
		idx = texture.NewIndex(filesystem.Names())
		conlog.DPrintf("indexed %d textures", idx.Len())
	}

	reports := make([]*fileReport, 0, len(results))
	for _, r := range results {
		rep := newReport(r, idx, cfg.Validate)
		rep.log()
		reports = append(reports, rep)
	}
	if cfg.JSON {
		err = writeJSON(w, reports)
	} else {
		err = writeText(w, reports)
	}
	if err != nil {
		return 0, err
	}
	failed := len(batch.Failed(results))
	if failed > 0 {
		conlog.Printf("%d of %d files failed", failed, len(results))
	}
	return failed, nil
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [name ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
}
