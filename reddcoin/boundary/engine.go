// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package boundary

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btclog"

	"github.com/BoostyLabs/reddid/reddcoin"
	"github.com/BoostyLabs/reddid/reddcoin/reddid"
	"github.com/BoostyLabs/reddid/reddcoin/signer"
	"github.com/BoostyLabs/reddid/reddcoin/txbuilder"
	"github.com/BoostyLabs/reddid/reddcoin/vault"
)

// Config defines Engine configuration.
type Config struct {
	NetworkParams *chaincfg.Params
	Policy        txbuilder.Policy

	Log          btclog.Logger
	TxBuilderLog btclog.Logger
	SignerLog    btclog.Logger
}

// DefaultConfig returns mainnet configuration with standard policy and disabled logging.
func DefaultConfig() Config {
	return Config{
		NetworkParams: &reddcoin.MainNetParams,
		Policy:        txbuilder.DefaultPolicy(),
	}
}

// SignParams describes raw inputs of BuildAndSignTransaction.
type SignParams struct {
	PrivateKeyHex      string
	UTXOTxID           string
	UTXOVout           uint32
	UTXOAmount         uint64
	OpReturnPayloadHex string
	ChangeAddress      string
	NetworkFee         uint64
}

// Engine drives payload encoding and transaction signing pipelines.
// Engine holds no mutable state and is safe for concurrent use.
type Engine struct {
	txBuilder *txbuilder.TxBuilder
	signer    *signer.Signer
	vault     *vault.Vault
	policy    txbuilder.Policy
	log       btclog.Logger
}

// New is a constructor for Engine.
func New(config Config) (*Engine, error) {
	if config.NetworkParams == nil {
		return nil, fmt.Errorf("%w: network params are not set", reddcoin.ErrInvalidInput)
	}
	if err := config.Policy.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", reddcoin.ErrInvalidInput, err)
	}

	log := config.Log
	if log == nil {
		log = btclog.Disabled
	}

	return &Engine{
		txBuilder: txbuilder.NewTxBuilder(config.NetworkParams, config.Policy, config.TxBuilderLog),
		signer:    signer.NewSigner(config.NetworkParams, config.SignerLog),
		vault:     vault.New(),
		policy:    config.Policy,
		log:       log,
	}, nil
}

// EncodePayload returns "OK:<payload hex>" or "ERR:<message>".
func (e *Engine) EncodePayload(command, identifier string) string {
	return tag(func() (string, error) {
		return e.BuildPayload(command, identifier)
	})
}

// BuildAndSignTransaction returns "OK:<raw tx hex>" or "ERR:<message>".
func (e *Engine) BuildAndSignTransaction(privateKeyHex, utxoTxID string, utxoVout uint32, utxoAmount uint64,
	opReturnPayloadHex, changeAddress string, networkFee uint64) string {
	return tag(func() (string, error) {
		return e.SignTransaction(SignParams{
			PrivateKeyHex:      privateKeyHex,
			UTXOTxID:           utxoTxID,
			UTXOVout:           utxoVout,
			UTXOAmount:         utxoAmount,
			OpReturnPayloadHex: opReturnPayloadHex,
			ChangeAddress:      changeAddress,
			NetworkFee:         networkFee,
		})
	})
}

// VaultEncrypt returns "OK:<ciphertext_b64>:<nonce_b64>" or "ERR:<message>".
func (e *Engine) VaultEncrypt(plaintext, keyHex string) string {
	return tag(func() (string, error) {
		return e.vault.Encrypt(plaintext, keyHex)
	})
}

// VaultDecrypt returns "OK:<plaintext>" or "ERR:<message>".
func (e *Engine) VaultDecrypt(packed, keyHex string) string {
	return tag(func() (string, error) {
		return e.vault.Decrypt(packed, keyHex)
	})
}

// BuildPayload returns lowercase hex of ReddID payload.
// Payload is limited by policy MaxPayloadSize, so it is always accepted by SignTransaction.
func (e *Engine) BuildPayload(command, identifier string) (string, error) {
	payload, err := reddid.Encode(command, identifier)
	if err != nil {
		e.log.Debugf("Payload encoding failed: %v", err)
		return "", err
	}
	if len(payload) > e.policy.MaxPayloadSize {
		return "", fmt.Errorf("%w: payload too large: %d bytes (max %d)",
			reddcoin.ErrInvalidInput, len(payload), e.policy.MaxPayloadSize)
	}

	return hex.EncodeToString(payload), nil
}

// SignTransaction builds, signs and serializes ReddID transaction, returns raw tx hex.
func (e *Engine) SignTransaction(params SignParams) (string, error) {
	key, err := signer.ParsePrivateKeyHex(params.PrivateKeyHex)
	if err != nil {
		return "", err
	}
	defer key.Zero()

	payload, err := decodePayloadHex(params.OpReturnPayloadHex)
	if err != nil {
		return "", err
	}

	draft, err := e.txBuilder.BuildOpReturnTx(txbuilder.OpReturnTxParams{
		UTXO: reddcoin.UTXO{
			TxHash: params.UTXOTxID,
			Index:  params.UTXOVout,
			Amount: params.UTXOAmount,
		},
		Payload:       payload,
		ChangeAddress: params.ChangeAddress,
		NetworkFee:    params.NetworkFee,
	})
	if err != nil {
		e.log.Debugf("Transaction building failed: %v", err)
		return "", err
	}

	if err = e.signer.SignP2PKH(draft, key); err != nil {
		e.log.Debugf("Transaction signing failed: %v", err)
		return "", err
	}

	rawHex, err := draft.Hex()
	if err != nil {
		return "", err
	}

	txHash := draft.TxHash()
	e.log.Infof("Signed ReddID transaction %s", txHash.String())

	return rawHex, nil
}

// decodePayloadHex decodes non-empty hex payload.
func decodePayloadHex(payloadHex string) ([]byte, error) {
	if payloadHex == "" {
		return nil, fmt.Errorf("%w: op_return_payload must be a non-empty hex string", reddcoin.ErrInvalidInput)
	}

	payload, err := hex.DecodeString(payloadHex)
	if err != nil {
		return nil, fmt.Errorf("%w: op_return_payload must be a non-empty hex string", reddcoin.ErrInvalidInput)
	}

	return payload, nil
}
