// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package utils

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"

	"github.com/BoostyLabs/reddid/reddcoin"
)

// NewUnspendableScript builds provably unspendable script (e.g. OP_RETURN) with optional data added after.
// INFO: Def: https://en.bitcoin.it/wiki/OP_RETURN.
func NewUnspendableScript(msg ...byte) ([]byte, error) {
	scriptBuilder := txscript.NewScriptBuilder().AddOp(txscript.OP_RETURN)
	if len(msg) > 0 {
		scriptBuilder.AddData(msg)
	}

	return scriptBuilder.Script()
}

// MustUnspendableScript uses NewUnspendableScript, panics in case of error.
func MustUnspendableScript(msg ...byte) []byte {
	script, err := NewUnspendableScript(msg...)
	if err != nil {
		panic(err)
	}

	return script
}

// NewP2PKHScript builds pay-to-pubkey-hash locking script.
// INFO: Script has the next format: {OP_DUP OP_HASH160 <20 bytes hash> OP_EQUALVERIFY OP_CHECKSIG}.
func NewP2PKHScript(address *btcutil.AddressPubKeyHash) ([]byte, error) {
	if address == nil {
		return nil, fmt.Errorf("%w: address is nil", reddcoin.ErrInvalidAddress)
	}

	return txscript.PayToAddrScript(address)
}

// NewP2PKHScriptFromPubKey builds pay-to-pubkey-hash locking script for hash160 of compressed public key.
func NewP2PKHScriptFromPubKey(pubKey *btcec.PublicKey, chainParams *chaincfg.Params) ([]byte, error) {
	address, err := btcutil.NewAddressPubKeyHash(btcutil.Hash160(pubKey.SerializeCompressed()), chainParams)
	if err != nil {
		return nil, err
	}

	return NewP2PKHScript(address)
}

// MustP2PKHScriptFromPubKey uses NewP2PKHScriptFromPubKey, panics in case of error.
func MustP2PKHScriptFromPubKey(pubKey *btcec.PublicKey, chainParams *chaincfg.Params) []byte {
	script, err := NewP2PKHScriptFromPubKey(pubKey, chainParams)
	if err != nil {
		panic(err)
	}

	return script
}
