// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package utils_test

import (
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/txscript"
	"github.com/stretchr/testify/require"

	"github.com/BoostyLabs/reddid/reddcoin"
	"github.com/BoostyLabs/reddid/reddcoin/utils"
)

// pubKeyOne is compressed public key of private key 1.
const pubKeyOne = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"

func TestScripts(t *testing.T) {
	t.Run("unspendable", func(t *testing.T) {
		script, err := utils.NewUnspendableScript([]byte("RDD\x01a\x00b")...)
		require.NoError(t, err)
		require.Equal(t, "6a0752444401610062", hex.EncodeToString(script))
		require.Equal(t, txscript.NullDataTy, txscript.GetScriptClass(script))

		script, err = utils.NewUnspendableScript()
		require.NoError(t, err)
		require.Equal(t, []byte{txscript.OP_RETURN}, script)
	})

	t.Run("p2pkh from pub key", func(t *testing.T) {
		pubKeyBytes, err := hex.DecodeString(pubKeyOne)
		require.NoError(t, err)
		pubKey, err := btcec.ParsePubKey(pubKeyBytes)
		require.NoError(t, err)

		script := utils.MustP2PKHScriptFromPubKey(pubKey, &reddcoin.MainNetParams)
		require.Equal(t, "76a914751e76e8199196d454941c45d1b3a323f1433bd688ac", hex.EncodeToString(script))
		require.Equal(t, txscript.PubKeyHashTy, txscript.GetScriptClass(script))
	})

	t.Run("nil address", func(t *testing.T) {
		_, err := utils.NewP2PKHScript(nil)
		require.ErrorIs(t, err, reddcoin.ErrInvalidAddress)
	})
}

func TestDecodeP2PKHAddress(t *testing.T) {
	hash, err := hex.DecodeString("751e76e8199196d454941c45d1b3a323f1433bd6")
	require.NoError(t, err)

	mainAddr, err := btcutil.NewAddressPubKeyHash(hash, &reddcoin.MainNetParams)
	require.NoError(t, err)
	encoded := mainAddr.EncodeAddress()
	require.Equal(t, byte('R'), encoded[0])

	t.Run("valid", func(t *testing.T) {
		addr, err := utils.DecodeP2PKHAddress(encoded, &reddcoin.MainNetParams)
		require.NoError(t, err)
		require.Equal(t, hash, addr.ScriptAddress())

		script, err := utils.NewP2PKHScript(addr)
		require.NoError(t, err)
		require.Equal(t, "76a914751e76e8199196d454941c45d1b3a323f1433bd688ac", hex.EncodeToString(script))
	})

	t.Run("hex public key", func(t *testing.T) {
		addr := utils.MustP2PKHAddress(pubKeyOne, &reddcoin.MainNetParams)
		require.Equal(t, hash, addr.ScriptAddress())
		require.Equal(t, encoded, addr.EncodeAddress())
	})

	t.Run("testnet", func(t *testing.T) {
		testAddr, err := btcutil.NewAddressPubKeyHash(hash, &reddcoin.TestNetParams)
		require.NoError(t, err)

		addr, err := utils.DecodeP2PKHAddress(testAddr.EncodeAddress(), &reddcoin.TestNetParams)
		require.NoError(t, err)
		require.Equal(t, hash, addr.ScriptAddress())

		_, err = utils.DecodeP2PKHAddress(testAddr.EncodeAddress(), &reddcoin.MainNetParams)
		require.ErrorIs(t, err, reddcoin.ErrInvalidAddress)
	})

	checksumBroken := []byte(encoded)
	if checksumBroken[len(checksumBroken)-1] == 'z' {
		checksumBroken[len(checksumBroken)-1] = 'y'
	} else {
		checksumBroken[len(checksumBroken)-1] = 'z'
	}

	p2sh, err := btcutil.NewAddressScriptHashFromHash(hash, &reddcoin.MainNetParams)
	require.NoError(t, err)

	invalid := []struct {
		name    string
		address string
	}{
		{"empty", ""},
		{"bitcoin mainnet", "1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH"},
		{"checksum", string(checksumBroken)},
		{"wrong length", base58.CheckEncode(make([]byte, 21), reddcoin.MainNetParams.PubKeyHashAddrID)},
		{"p2sh", p2sh.EncodeAddress()},
		{"garbage", "not-an-address"},
	}
	for _, test := range invalid {
		t.Run(test.name, func(t *testing.T) {
			addr, err := utils.DecodeP2PKHAddress(test.address, &reddcoin.MainNetParams)
			require.ErrorIs(t, err, reddcoin.ErrInvalidAddress)
			require.Nil(t, addr)
		})
	}
}
