// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package main

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/jessevdk/go-flags"
	"github.com/spf13/pflag"

	"github.com/BoostyLabs/reddid/reddcoin"
	"github.com/BoostyLabs/reddid/reddcoin/txbuilder"
)

const (
	defaultNetwork    = "mainnet"
	defaultDebugLevel = "info"
)

// config defines command line and config file options.
type config struct {
	ConfigFile    string `long:"configfile" no-ini:"true"`
	Network       string `long:"network"`
	DebugLevel    string `long:"debuglevel"`
	MaxPayload    int    `long:"maxpayload"`
	DustThreshold uint64 `long:"dustthreshold"`
}

func defaultConfig() config {
	policy := txbuilder.DefaultPolicy()

	return config{
		Network:       defaultNetwork,
		DebugLevel:    defaultDebugLevel,
		MaxPayload:    policy.MaxPayloadSize,
		DustThreshold: policy.DustThreshold,
	}
}

// bindFlags registers persistent flags backed by cfg.
func (cfg *config) bindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&cfg.ConfigFile, "configfile", "C", "", "Path to INI configuration file")
	fs.StringVarP(&cfg.Network, "network", "n", cfg.Network, "Reddcoin network: mainnet, testnet or regtest")
	fs.StringVarP(&cfg.DebugLevel, "debuglevel", "d", cfg.DebugLevel, "Logging level: trace, debug, info, warn, error, critical or off")
	fs.IntVar(&cfg.MaxPayload, "maxpayload", cfg.MaxPayload, "Maximum OP_RETURN payload size in bytes")
	fs.Uint64Var(&cfg.DustThreshold, "dustthreshold", cfg.DustThreshold, "Minimum change output value")
}

// load applies config file values to options not set on the command line.
func (cfg *config) load(fs *pflag.FlagSet) error {
	if cfg.ConfigFile == "" {
		return nil
	}

	fileCfg := defaultConfig()
	parser := flags.NewParser(&fileCfg, flags.IgnoreUnknown)
	if err := flags.NewIniParser(parser).ParseFile(cfg.ConfigFile); err != nil {
		return fmt.Errorf("could not parse config file %s: %w", cfg.ConfigFile, err)
	}

	if !fs.Changed("network") {
		cfg.Network = fileCfg.Network
	}
	if !fs.Changed("debuglevel") {
		cfg.DebugLevel = fileCfg.DebugLevel
	}
	if !fs.Changed("maxpayload") {
		cfg.MaxPayload = fileCfg.MaxPayload
	}
	if !fs.Changed("dustthreshold") {
		cfg.DustThreshold = fileCfg.DustThreshold
	}

	return nil
}

func (cfg *config) networkParams() (*chaincfg.Params, error) {
	return reddcoin.ParamsByName(cfg.Network)
}

func (cfg *config) policy() txbuilder.Policy {
	return txbuilder.Policy{
		MaxPayloadSize: cfg.MaxPayload,
		DustThreshold:  cfg.DustThreshold,
	}
}
