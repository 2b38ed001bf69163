// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BoostyLabs/reddid/reddcoin/boundary"
)

func ptr(s string) *string {
	return &s
}

func TestGeneratePayload(t *testing.T) {
	require.Equal(t, "OK:524444016e73626964007465636861646570742e72656464", generatePayload(ptr("nsbid"), ptr("techadept.redd")))
	require.Equal(t, "ERR:invalid input: command pointer is null", generatePayload(nil, ptr("techadept.redd")))
	require.Equal(t, "ERR:invalid input: identifier pointer is null", generatePayload(ptr("nsbid"), nil))
	require.Equal(t, "ERR:invalid input: command is not valid UTF-8", generatePayload(ptr("ns\xffbid"), ptr("techadept.redd")))
}

func TestSignTransaction(t *testing.T) {
	const (
		key     = "e8f32e723decf4051aefac8e2c93c9c5b214313817cdb01a1494b917c8436b35"
		txID    = "5aa4e4e957b467d07413aa75cdab5e4ce9ff2b714cd81b6af0e90bfee5ff070c"
		payload = "524444016e73626964007465636861646570742e72656464"
	)

	tests := []struct {
		name     string
		key      *string
		txID     *string
		payload  *string
		address  *string
		expected string
	}{
		{"key", nil, ptr(txID), ptr(payload), ptr("addr"), "private_key_hex pointer is null"},
		{"txid", ptr(key), nil, ptr(payload), ptr("addr"), "utxo_txid pointer is null"},
		{"payload", ptr(key), ptr(txID), nil, ptr("addr"), "op_return_payload pointer is null"},
		{"address", ptr(key), ptr(txID), ptr(payload), nil, "change_address pointer is null"},
		{"address utf-8", ptr(key), ptr(txID), ptr(payload), ptr("R\xff"), "change_address is not valid UTF-8"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := signTransaction(test.key, test.txID, 0, 100000, test.payload, test.address, 1000)
			require.True(t, strings.HasPrefix(result, boundary.ErrPrefix))
			require.Contains(t, result, test.expected)
		})
	}

	t.Run("fee exceeds amount", func(t *testing.T) {
		result := signTransaction(ptr(key), ptr(txID), 0, 500, ptr(payload), ptr("addr"), 1000)
		require.True(t, strings.HasPrefix(result, boundary.ErrPrefix))
	})
}

func TestVault(t *testing.T) {
	const keyHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

	require.Contains(t, vaultEncrypt(nil, ptr(keyHex)), "plaintext pointer is null")
	require.Contains(t, vaultEncrypt(ptr("seed"), nil), "key_hex pointer is null")
	require.Contains(t, vaultDecrypt(nil, ptr(keyHex)), "packed_b64 pointer is null")
	require.Equal(t, "ERR:invalid input: plaintext is not valid UTF-8", vaultEncrypt(ptr("seed\xff"), ptr(keyHex)))
	require.Equal(t, "ERR:invalid input: key_hex is not valid UTF-8", vaultDecrypt(ptr("a:b"), ptr("\xc3")))

	encrypted := vaultEncrypt(ptr("seed"), ptr(keyHex))
	require.True(t, strings.HasPrefix(encrypted, boundary.OKPrefix))
	require.Equal(t, "OK:seed", vaultDecrypt(ptr(strings.TrimPrefix(encrypted, boundary.OKPrefix)), ptr(keyHex)))
}
