/*
 * main.go, part of chemview.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/rmera/chemview/embed"
	"github.com/rmera/chemview/internal/config"
	"github.com/rmera/chemview/internal/logger"
	"github.com/rmera/chemview/internal/pipeline"
	"github.com/rmera/chemview/internal/server"
	"github.com/rmera/chemview/pubchem"
)

const usage = `Usage:
  chemview [serve] [-config file]              start the web server
  chemview show [-config file] [-o out.mol] [-xyz out.xyz] [-json out.json] NAME
                                               look NAME up and print its properties
  chemview depict [-o out.png] FILE            draw the structure in FILE (.mol or .json)
`

func main() {
	args := os.Args[1:]
	cmd := "serve"
	if len(args) > 0 && (args[0] == "serve" || args[0] == "show" || args[0] == "depict") {
		cmd, args = args[0], args[1:]
	}

	var err error
	switch cmd {
	case "serve":
		err = serve(args)
	case "show":
		err = show(args)
	case "depict":
		err = depict(args)
	}
	if err != nil {
		color.Red("Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := logger.Setup(cfg.Log.Level, cfg.Log.Format); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newPipeline(cfg *config.Config) *pipeline.Pipeline {
	client := pubchem.NewClient(pubchem.Config{
		BaseURL:   cfg.PubChem.BaseURL,
		RateLimit: cfg.PubChem.RateLimit,
		Timeout:   cfg.PubChem.Timeout,
		UserAgent: cfg.PubChem.UserAgent,
	})
	return pipeline.New(client, pipeline.Options{
		Width:       cfg.Viewer.Width,
		Height:      cfg.Viewer.Height,
		ColorScheme: cfg.Viewer.ColorScheme,
		ScriptURL:   cfg.Viewer.ScriptURL,
		Embed: embed.Options{
			Seed:          cfg.Embed.Seed,
			MaxIterations: cfg.Embed.MaxIterations,
		},
	})
}

func serve(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	configPath := fs.String("config", "", "path to the configuration file")
	fs.Parse(args)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.New(cfg, newPipeline(cfg)).Run(ctx); err != nil {
		return err
	}
	logrus.Info("Server stopped")
	return nil
}
