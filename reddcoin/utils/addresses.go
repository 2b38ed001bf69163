// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package utils

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/BoostyLabs/reddid/reddcoin"
)

// DecodeP2PKHAddress decodes base58 P2PKH address for provided network.
// Hex encoded public key is accepted as well and turned into its P2PKH address.
func DecodeP2PKHAddress(address string, chainParams *chaincfg.Params) (*btcutil.AddressPubKeyHash, error) {
	if address == "" {
		return nil, fmt.Errorf("%w: address cannot be empty", reddcoin.ErrInvalidAddress)
	}

	decoded, err := btcutil.DecodeAddress(address, chainParams)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", reddcoin.ErrInvalidAddress, address, err)
	}

	var pubKeyHash *btcutil.AddressPubKeyHash
	switch addr := decoded.(type) {
	case *btcutil.AddressPubKeyHash:
		pubKeyHash = addr
	case *btcutil.AddressPubKey:
		pubKeyHash = addr.AddressPubKeyHash()
	default:
		return nil, fmt.Errorf("%w: %s: only P2PKH addresses are supported", reddcoin.ErrInvalidAddress, address)
	}

	if !pubKeyHash.IsForNet(chainParams) {
		return nil, fmt.Errorf("%w: %s: address is not for %s network", reddcoin.ErrInvalidAddress, address, chainParams.Name)
	}

	return pubKeyHash, nil
}

// MustP2PKHAddress uses DecodeP2PKHAddress, panics in case of error.
func MustP2PKHAddress(address string, chainParams *chaincfg.Params) *btcutil.AddressPubKeyHash {
	addr, err := DecodeP2PKHAddress(address, chainParams)
	if err != nil {
		panic(err)
	}

	return addr
}
