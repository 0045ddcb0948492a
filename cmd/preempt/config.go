package main

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/preempt/solver"
)

// fileConfig is the optional TOML configuration supplying defaults for
// the solve flags; explicitly set flags win over the file.
//
//	[solver]
//	name = "ours"          # ours | bruteforce
//	setting = "offline"    # offline | online
//	time_limit = "30s"
type fileConfig struct {
	Solver struct {
		Name      string `toml:"name"`
		Setting   string `toml:"setting"`
		TimeLimit string `toml:"time_limit"`
	} `toml:"solver"`
}

// defaultFileConfig mirrors solver.DefaultOptions.
func defaultFileConfig() fileConfig {
	var cfg fileConfig
	cfg.Solver.Name = nameOurs
	cfg.Solver.Setting = settingOffline
	cfg.Solver.TimeLimit = ""

	return cfg
}

// loadConfig reads the TOML file when a path is given.
func loadConfig(path string) (fileConfig, error) {
	cfg := defaultFileConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

const (
	nameOurs       = "ours"
	nameBruteforce = "bruteforce"

	settingOffline = "offline"
	settingOnline  = "online"
)

// solverOptions maps the textual configuration onto solver.Options.
func solverOptions(name, setting, timeLimit string) (solver.Options, error) {
	opts := solver.DefaultOptions()

	switch name {
	case nameOurs:
		opts.Strategy = solver.BranchBound
	case nameBruteforce:
		opts.Strategy = solver.Exhaustive
	default:
		return opts, fmt.Errorf("unknown solver name %q (want %s or %s)", name, nameOurs, nameBruteforce)
	}

	switch setting {
	case settingOffline:
		opts.Setting = solver.Offline
	case settingOnline:
		opts.Setting = solver.Online
	default:
		return opts, fmt.Errorf("unknown setting %q (want %s or %s)", setting, settingOffline, settingOnline)
	}

	if timeLimit != "" {
		d, err := time.ParseDuration(timeLimit)
		if err != nil {
			return opts, fmt.Errorf("time limit: %w", err)
		}
		opts.TimeLimit = d
	}

	return opts, nil
}
