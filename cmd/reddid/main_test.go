// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	testKey     = "e8f32e723decf4051aefac8e2c93c9c5b214313817cdb01a1494b917c8436b35"
	testTxID    = "5aa4e4e957b467d07413aa75cdab5e4ce9ff2b714cd81b6af0e90bfee5ff070c"
	testPayload = "524444016e73626964007465636861646570742e72656464"
	keyOnePub   = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCommand(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return strings.TrimSpace(stdout.String()), err
}

func TestPayloadCommand(t *testing.T) {
	out, err := execute(t, "payload", "nsbid", "techadept.redd")
	require.NoError(t, err)
	require.Equal(t, "OK:"+testPayload, out)

	out, err = execute(t, "payload", "nsbid", "")
	require.ErrorIs(t, err, errFailed)
	require.True(t, strings.HasPrefix(out, "ERR:"))
}

func TestSignAndDecodeCommands(t *testing.T) {
	out, err := execute(t, "sign",
		"--key", testKey,
		"--txid", testTxID,
		"--amount", "100000",
		"--command", "nsbid",
		"--identifier", "techadept.redd",
		"--change", keyOnePub,
		"--fee", "1000",
	)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "OK:"), out)

	withPayload, err := execute(t, "sign",
		"--key", testKey,
		"--txid", testTxID,
		"--amount", "100000",
		"--payload", testPayload,
		"--change", keyOnePub,
		"--fee", "1000",
	)
	require.NoError(t, err)
	require.Equal(t, out, withPayload)

	decoded, err := execute(t, "decode", "--tx", strings.TrimPrefix(out, "OK:"))
	require.NoError(t, err)
	require.Contains(t, decoded, "command=nsbid identifier=techadept.redd")

	decoded, err = execute(t, "decode", testPayload)
	require.NoError(t, err)
	require.Equal(t, "OK:command=nsbid identifier=techadept.redd", decoded)

	out, err = execute(t, "sign", "--key", testKey, "--txid", testTxID, "--amount", "500",
		"--payload", testPayload, "--change", keyOnePub, "--fee", "1000")
	require.ErrorIs(t, err, errFailed)
	require.True(t, strings.HasPrefix(out, "ERR:"))
}

func TestSignCommand_PrivateKeyFromEnv(t *testing.T) {
	t.Setenv(envPrivateKey, testKey)

	out, err := execute(t, "sign", "--txid", testTxID, "--amount", "100000",
		"--payload", testPayload, "--change", keyOnePub, "--fee", "1000")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "OK:"), out)
}

func TestVaultCommands(t *testing.T) {
	const keyHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

	encrypted, err := execute(t, "encrypt", "--key", keyHex, "seed words")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(encrypted, "OK:"))

	t.Setenv(envVaultKey, keyHex)
	decrypted, err := execute(t, "decrypt", strings.TrimPrefix(encrypted, "OK:"))
	require.NoError(t, err)
	require.Equal(t, "OK:seed words", decrypted)
}

func TestConfig(t *testing.T) {
	t.Run("unknown network", func(t *testing.T) {
		_, err := execute(t, "--network", "simnet", "payload", "nsbid", "techadept.redd")
		require.Error(t, err)
		require.NotErrorIs(t, err, errFailed)
	})

	t.Run("invalid debug level", func(t *testing.T) {
		_, err := execute(t, "--debuglevel", "loud", "payload", "nsbid", "techadept.redd")
		require.Error(t, err)
	})

	t.Run("config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "reddid.conf")
		require.NoError(t, os.WriteFile(path, []byte("[Application Options]\nmaxpayload=10\n"), 0o600))

		out, err := execute(t, "--configfile", path, "sign", "--key", testKey, "--txid", testTxID,
			"--amount", "100000", "--payload", testPayload, "--change", keyOnePub, "--fee", "1000")
		require.ErrorIs(t, err, errFailed)
		require.Contains(t, out, "too large")
	})

	t.Run("max payload applies to payload command", func(t *testing.T) {
		out, err := execute(t, "--maxpayload", "10", "payload", "nsbid", "techadept.redd")
		require.ErrorIs(t, err, errFailed)
		require.Contains(t, out, "too large")
	})

	t.Run("command line overrides config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "reddid.conf")
		require.NoError(t, os.WriteFile(path, []byte("[Application Options]\nnetwork=simnet\n"), 0o600))

		out, err := execute(t, "--configfile", path, "--network", "testnet", "payload", "nsbid", "techadept.redd")
		require.NoError(t, err)
		require.Equal(t, "OK:"+testPayload, out)
	})
}
