// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package reddcoin_test

import (
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/require"

	"github.com/BoostyLabs/reddid/reddcoin"
)

func TestParamsByName(t *testing.T) {
	for name, expected := range map[string]*chaincfg.Params{
		"":        &reddcoin.MainNetParams,
		"mainnet": &reddcoin.MainNetParams,
		"testnet": &reddcoin.TestNetParams,
		"regtest": &reddcoin.RegTestParams,
	} {
		params, err := reddcoin.ParamsByName(name)
		require.NoError(t, err)
		require.Same(t, expected, params)
	}

	_, err := reddcoin.ParamsByName("simnet")
	require.Error(t, err)
}

func TestMainNetAddressPrefix(t *testing.T) {
	hash, err := hex.DecodeString("751e76e8199196d454941c45d1b3a323f1433bd6")
	require.NoError(t, err)

	addr, err := btcutil.NewAddressPubKeyHash(hash, &reddcoin.MainNetParams)
	require.NoError(t, err)
	require.Equal(t, byte('R'), addr.EncodeAddress()[0])
}
