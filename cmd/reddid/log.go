// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package main

import (
	"fmt"
	"io"

	"github.com/btcsuite/btclog"
)

// Subsystem tags.
const (
	subsystemEngine    = "RDID"
	subsystemTxBuilder = "TXBL"
	subsystemSigner    = "SIGN"
)

// loggers holds subsystem loggers sharing one backend.
type loggers struct {
	engine    btclog.Logger
	txBuilder btclog.Logger
	signer    btclog.Logger
}

func newLoggers(w io.Writer, debugLevel string) (loggers, error) {
	level, ok := btclog.LevelFromString(debugLevel)
	if !ok {
		return loggers{}, fmt.Errorf("invalid debug level: %s", debugLevel)
	}

	backend := btclog.NewBackend(w)
	l := loggers{
		engine:    backend.Logger(subsystemEngine),
		txBuilder: backend.Logger(subsystemTxBuilder),
		signer:    backend.Logger(subsystemSigner),
	}
	for _, logger := range []btclog.Logger{l.engine, l.txBuilder, l.signer} {
		logger.SetLevel(level)
	}

	return l, nil
}
