// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/BoostyLabs/reddid/reddcoin"
	"github.com/BoostyLabs/reddid/reddcoin/boundary"
)

// engine is shared by all exported calls, it holds no mutable state.
var engine = mustEngine()

func mustEngine() *boundary.Engine {
	e, err := boundary.New(boundary.DefaultConfig())
	if err != nil {
		panic(err)
	}

	return e
}

// argument validates C string argument named field.
func argument(field string, s *string) (string, error) {
	switch {
	case s == nil:
		return "", fmt.Errorf("%w: %s pointer is null", reddcoin.ErrInvalidInput, field)
	case !utf8.ValidString(*s):
		return "", fmt.Errorf("%w: %s is not valid UTF-8", reddcoin.ErrInvalidInput, field)
	}

	return *s, nil
}

// arguments validates C string arguments in order, first failure is returned.
func arguments(fields []string, values ...*string) ([]string, error) {
	args := make([]string, len(values))
	for i, value := range values {
		arg, err := argument(fields[i], value)
		if err != nil {
			return nil, err
		}
		args[i] = arg
	}

	return args, nil
}

func failed(err error) string {
	return boundary.Result{Err: err}.String()
}

func generatePayload(command, identifier *string) string {
	args, err := arguments([]string{"command", "identifier"}, command, identifier)
	if err != nil {
		return failed(err)
	}

	return engine.EncodePayload(args[0], args[1])
}

func signTransaction(privateKeyHex, utxoTxID *string, utxoVout uint32, utxoAmount uint64,
	opReturnPayloadHex, changeAddress *string, networkFee uint64) string {
	args, err := arguments(
		[]string{"private_key_hex", "utxo_txid", "op_return_payload", "change_address"},
		privateKeyHex, utxoTxID, opReturnPayloadHex, changeAddress,
	)
	if err != nil {
		return failed(err)
	}

	return engine.BuildAndSignTransaction(args[0], args[1], utxoVout, utxoAmount, args[2], args[3], networkFee)
}

func vaultEncrypt(plaintext, keyHex *string) string {
	args, err := arguments([]string{"plaintext", "key_hex"}, plaintext, keyHex)
	if err != nil {
		return failed(err)
	}

	return engine.VaultEncrypt(args[0], args[1])
}

func vaultDecrypt(packed, keyHex *string) string {
	args, err := arguments([]string{"packed_b64", "key_hex"}, packed, keyHex)
	if err != nil {
		return failed(err)
	}

	return engine.VaultDecrypt(args[0], args[1])
}
