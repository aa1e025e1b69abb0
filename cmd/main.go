package main

import (
	"errors"
	"flag"
	"os"

	"github.com/brettbedarf/dirforest"
	"github.com/brettbedarf/dirforest/config"
	"github.com/brettbedarf/dirforest/internal/util"
	"github.com/brettbedarf/dirforest/requests"
	"github.com/brettbedarf/dirforest/shell"
	"github.com/hashicorp/go-multierror"
	"github.com/mattn/go-isatty"
)

func main() {
	// Parse command line arguments
	var (
		configPath string
		seedPath   string
		verbose    int
		noBanner   bool
	)
	flag.StringVar(&configPath, "config", "", "Path to a YAML or JSON config file")
	flag.StringVar(&configPath, "c", "", "--config (shorthand)")
	flag.StringVar(&seedPath, "seed", "", "Path to a YAML or JSON file of requests applied before the shell starts")
	flag.StringVar(&seedPath, "s", "", "--seed (shorthand)")
	flag.IntVar(&verbose, "verbose", 0, "Log verbosity level between 1 (error) and 5 (trace). Default is 2 (warn).")
	flag.IntVar(&verbose, "v", 0, "--verbose (shorthand)")
	flag.BoolVar(&noBanner, "no-banner", false, "Do not print the welcome banner")
	flag.Parse()

	// Load config; flags win over file values
	cfg := config.NewDefaultConfig()
	var cfgErr error
	if configPath != "" {
		cfg, cfgErr = config.NewConfigFromFile(configPath)
		if cfgErr != nil {
			cfg = config.NewDefaultConfig()
		}
	}
	override := &config.ConfigOverride{}
	if verbose != 0 {
		override.LogLvl = &verbose
	}
	if noBanner {
		override.Banner = util.Pointer(false)
	}
	cfg.Merge(override)

	// Initialize logger
	util.InitializeLogger(cfg.LogLvl)
	logger := util.GetLogger("main")
	if cfgErr != nil {
		logger.Fatal().Err(cfgErr).Str("config", configPath).Msg("Failed to load config file")
	}

	out := shell.NewOutput(os.Stdout)
	engine := dirforest.New(out)
	sh := shell.New(engine, out, cfg)
	logger.Debug().Str("session", engine.Session()).Str("seed", seedPath).Msg("dirforest initializing")

	// Load seed requests
	if seedPath != "" {
		reqs, err := requests.LoadFile(seedPath)
		if err != nil {
			// Invalid entries come back as a multierror next to the valid ones;
			// anything else means the file itself could not be read or decoded.
			var invalid *multierror.Error
			if !errors.As(err, &invalid) {
				logger.Fatal().Err(err).Str("seed", seedPath).Msg("Failed to load seed file")
			}
			logger.Warn().Err(err).Str("seed", seedPath).Msg("Skipped invalid seed requests")
		}
		applied, err := requests.Apply(engine, reqs)
		if err != nil {
			logger.Warn().Err(err).Msg("Some seed requests failed")
		}
		logger.Info().Int("applied", applied).Int("total", len(reqs)).Msg("Applied seed requests")
	}

	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	if interactive {
		if cfg.Banner {
			out.Println(sh.Banner())
		}
		if err := sh.RunInteractive(); err != nil {
			logger.Fatal().Err(err).Msg("Shell exited with error")
		}
		return
	}

	if err := sh.RunScript(os.Stdin); err != nil {
		logger.Fatal().Err(err).Msg("Failed to read commands")
	}
}
