// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package reddcoin

// UTXO describes unspent transaction output data.
type UTXO struct {
	TxHash string // display (big-endian) hex, 64 chars.
	Index  uint32 // output index in transaction outputs.
	Amount uint64 // in redds (1e-8 RDD).
}

// TxVersion defines version of transactions built by this module.
const TxVersion int32 = 1
