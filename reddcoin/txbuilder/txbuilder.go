// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package txbuilder

import (
	"encoding/hex"
	"fmt"
	"math"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/btcsuite/btclog"

	"github.com/BoostyLabs/reddid/internal/numbers"
	"github.com/BoostyLabs/reddid/internal/reverse"
	"github.com/BoostyLabs/reddid/reddcoin"
	"github.com/BoostyLabs/reddid/reddcoin/utils"
)

const (
	// opReturnOutput defines index of the payload output.
	opReturnOutput = 0
	// changeOutput defines index of the change output.
	changeOutput = 1
)

// OpReturnTxParams describes data needed to build ReddID transaction.
type OpReturnTxParams struct {
	UTXO          reddcoin.UTXO // funding output, the only input.
	Payload       []byte        // OP_RETURN data.
	ChangeAddress string        // P2PKH address receiving amount minus fee.
	NetworkFee    uint64        // in redds.
}

// TxBuilder provides transaction building related logic.
type TxBuilder struct {
	networkParams *chaincfg.Params
	policy        Policy
	log           btclog.Logger
}

// NewTxBuilder is a constructor for TxBuilder.
func NewTxBuilder(networkParams *chaincfg.Params, policy Policy, log btclog.Logger) *TxBuilder {
	if log == nil {
		log = btclog.Disabled
	}

	return &TxBuilder{
		networkParams: networkParams,
		policy:        policy,
		log:           log,
	}
}

// BuildOpReturnTx constructs unsigned transaction which stores payload in OP_RETURN
// and sends the rest of funds back to change address.
//
//	Tx struct
//	inputs:
//	┌─────────┬──────────────┬────────────────────────────────────────┐
//	│  index  │     type     │             description                │
//	├=========┼==============┼========================================┤
//	│       0 │ p2pkh input  │ funding utxo, scriptSig empty until    │
//	│         │              │ signed, sequence 0xffffffff.           │
//	└─────────┴──────────────┴────────────────────────────────────────┘
//
//	outputs:
//	┌─────────┬──────────────┬────────────────────────────────────────┐
//	│  index  │     type     │             description                │
//	├=========┼==============┼========================================┤
//	│       0 │ OP_RETURN    │ payload, value 0.                      │
//	├─────────┼──────────────┼────────────────────────────────────────┤
//	│       1 │ p2pkh output │ change, utxo amount minus network fee. │
//	└─────────┴──────────────┴────────────────────────────────────────┘
func (b *TxBuilder) BuildOpReturnTx(params OpReturnTxParams) (*Draft, error) {
	utxoHash, err := ParseTxHash(params.UTXO.TxHash)
	if err != nil {
		return nil, err
	}

	switch {
	case len(params.Payload) == 0:
		return nil, fmt.Errorf("%w: op_return payload cannot be empty", reddcoin.ErrInvalidInput)
	case len(params.Payload) > b.policy.MaxPayloadSize:
		return nil, fmt.Errorf("%w: op_return payload too large: %d bytes (max %d)",
			reddcoin.ErrInvalidInput, len(params.Payload), b.policy.MaxPayloadSize)
	}

	changeAmount, err := b.changeAmount(params.UTXO.Amount, params.NetworkFee)
	if err != nil {
		return nil, err
	}

	changeAddress, err := utils.DecodeP2PKHAddress(params.ChangeAddress, b.networkParams)
	if err != nil {
		return nil, err
	}

	changeScript, err := utils.NewP2PKHScript(changeAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", reddcoin.ErrInvalidAddress, err)
	}

	opReturnScript, err := utils.NewUnspendableScript(params.Payload...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", reddcoin.ErrInvalidInput, err)
	}

	tx := wire.NewMsgTx(reddcoin.TxVersion)
	tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(utxoHash, params.UTXO.Index), nil, nil))

	// payload output (#0).
	tx.AddTxOut(wire.NewTxOut(0, opReturnScript))

	// change output (#1).
	tx.AddTxOut(wire.NewTxOut(changeAmount, changeScript))

	if err = checkValueConservation(tx, params.UTXO.Amount, params.NetworkFee); err != nil {
		return nil, err
	}

	b.log.Debugf("Built unsigned tx spending %s:%d, change %d to %s, fee %d",
		params.UTXO.TxHash, params.UTXO.Index, changeAmount, changeAddress.EncodeAddress(), params.NetworkFee)

	return &Draft{
		tx:         tx,
		utxo:       params.UTXO,
		networkFee: params.NetworkFee,
		state:      StateUnsigned,
	}, nil
}

// ParseTxHash parses 64 hex chars transaction ID in display order into internal byte order.
func ParseTxHash(txHash string) (*chainhash.Hash, error) {
	if len(txHash) != chainhash.MaxHashStringSize {
		return nil, fmt.Errorf("%w: utxo_txid must be exactly %d hex characters", reddcoin.ErrInvalidInput, chainhash.MaxHashStringSize)
	}

	raw, err := hex.DecodeString(txHash)
	if err != nil {
		return nil, fmt.Errorf("%w: utxo_txid contains non-hex characters", reddcoin.ErrInvalidInput)
	}

	hash, err := chainhash.NewHash(reverse.Bytes(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", reddcoin.ErrInvalidInput, err)
	}

	return hash, nil
}

// changeAmount returns change value left after fee, checks it against policy.
func (b *TxBuilder) changeAmount(amount, fee uint64) (int64, error) {
	if amount <= fee {
		return 0, NewInsufficientError(saturatingAdd(fee, 1), amount, CauserFee)
	}

	change, _ := numbers.SubUint64(amount, fee) // amount > fee is checked above.
	if change < b.policy.DustThreshold {
		return 0, NewInsufficientError(saturatingAdd(fee, b.policy.DustThreshold), amount, CauserDust)
	}

	value, ok := numbers.ToInt64(change)
	if !ok {
		return 0, fmt.Errorf("%w: change amount %d exceeds max output value", reddcoin.ErrInvalidInput, change)
	}

	return value, nil
}

// checkValueConservation ensures no value is created or destroyed by the transaction.
func checkValueConservation(tx *wire.MsgTx, amount, fee uint64) error {
	if len(tx.TxIn) != 1 || len(tx.TxOut) != 2 {
		return fmt.Errorf("%w: expected 1 input and 2 outputs, got %d and %d", reddcoin.ErrSerialization, len(tx.TxIn), len(tx.TxOut))
	}
	if tx.TxOut[opReturnOutput].Value != 0 {
		return fmt.Errorf("%w: op_return output carries value", reddcoin.ErrSerialization)
	}

	spent, ok := numbers.AddUint64(uint64(tx.TxOut[changeOutput].Value), fee)
	if tx.TxOut[changeOutput].Value < 0 || !ok || spent != amount {
		return fmt.Errorf("%w: outputs and fee do not sum up to utxo amount", reddcoin.ErrSerialization)
	}

	return nil
}

// saturatingAdd returns a + b or max uint64 on overflow.
func saturatingAdd(a, b uint64) uint64 {
	sum, ok := numbers.AddUint64(a, b)
	if !ok {
		return math.MaxUint64
	}

	return sum
}
