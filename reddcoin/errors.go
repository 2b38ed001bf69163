// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package reddcoin

import (
	"errors"
)

// ErrInvalidInput defines malformed or empty input, bad UTF-8 or oversized payload.
var ErrInvalidInput = errors.New("invalid input")

// ErrInvalidAddress defines address checksum, network or format failure.
var ErrInvalidAddress = errors.New("invalid address")

// ErrInsufficientFunds defines that utxo amount does not cover fee and non-dust change.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrSigning defines bad key material or signing failure.
var ErrSigning = errors.New("signing error")

// ErrSerialization defines internal invariant violation during transaction assembly.
var ErrSerialization = errors.New("serialization error")

// ErrVault defines encryption or decryption failure.
var ErrVault = errors.New("vault error")
