// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package txbuilder

import (
	"fmt"

	"github.com/btcsuite/btcd/txscript"

	"github.com/BoostyLabs/reddid/reddcoin/reddid"
)

// DefaultDustThreshold defines the smallest change output value in redds.
const DefaultDustThreshold uint64 = 546

// Policy defines limits applied to built transactions.
type Policy struct {
	MaxPayloadSize int    // max OP_RETURN data size in bytes.
	DustThreshold  uint64 // min change output value in redds.
}

// DefaultPolicy returns standard relay policy.
func DefaultPolicy() Policy {
	return Policy{
		MaxPayloadSize: reddid.MaxPayloadSize,
		DustThreshold:  DefaultDustThreshold,
	}
}

// Validate checks that policy produces standard transactions.
func (p Policy) Validate() error {
	if p.MaxPayloadSize <= 0 || p.MaxPayloadSize > txscript.MaxDataCarrierSize {
		return fmt.Errorf("max payload size must be in range [1, %d], got %d", txscript.MaxDataCarrierSize, p.MaxPayloadSize)
	}

	return nil
}
