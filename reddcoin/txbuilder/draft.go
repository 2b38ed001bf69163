// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package txbuilder

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/BoostyLabs/reddid/reddcoin"
)

// State defines signing state of the Draft.
type State byte

const (
	// StateUnsigned defines Draft with empty input scriptSig.
	StateUnsigned State = 0
	// StateSigned defines Draft with populated input scriptSig.
	StateSigned State = 1
)

// String returns State name.
func (s State) String() string {
	switch s {
	case StateUnsigned:
		return "unsigned"
	case StateSigned:
		return "signed"
	}

	return fmt.Sprintf("unknown(%d)", byte(s))
}

// Draft wraps single input transaction on its way from unsigned to signed state.
type Draft struct {
	tx         *wire.MsgTx
	utxo       reddcoin.UTXO
	networkFee uint64
	state      State
}

// State returns current Draft state.
func (d *Draft) State() State {
	return d.state
}

// UTXO returns spent output.
func (d *Draft) UTXO() reddcoin.UTXO {
	return d.utxo
}

// NetworkFee returns fee paid by the transaction in redds.
func (d *Draft) NetworkFee() uint64 {
	return d.networkFee
}

// MsgTx returns deep copy of the underlying transaction.
func (d *Draft) MsgTx() *wire.MsgTx {
	return d.tx.Copy()
}

// TxHash returns transaction ID.
func (d *Draft) TxHash() chainhash.Hash {
	return d.tx.TxHash()
}

// Finalize sets scriptSig of the single input and moves Draft to the signed state.
// Could be done only once.
func (d *Draft) Finalize(signatureScript []byte) error {
	if d.state != StateUnsigned {
		return fmt.Errorf("%w: transaction is already %s", reddcoin.ErrSigning, d.state)
	}
	if len(signatureScript) == 0 {
		return fmt.Errorf("%w: empty signature script", reddcoin.ErrSigning)
	}
	if len(d.tx.TxIn) != 1 {
		return fmt.Errorf("%w: expected 1 input, got %d", reddcoin.ErrSerialization, len(d.tx.TxIn))
	}

	d.tx.TxIn[0].SignatureScript = bytes.Clone(signatureScript)
	d.state = StateSigned

	return nil
}

// Serialize returns canonical raw transaction bytes.
//
//	version (4 LE) | inputs count (varint) | inputs | outputs count (varint) | outputs | locktime (4 LE)
//	input:  txid (32, reversed) | vout (4 LE) | scriptSig (varint + bytes) | sequence (4 LE)
//	output: value (8 LE) | scriptPubKey (varint + bytes)
func (d *Draft) Serialize() ([]byte, error) {
	w := bytes.NewBuffer(make([]byte, 0, d.tx.SerializeSizeStripped()))
	if err := d.tx.SerializeNoWitness(w); err != nil {
		return nil, fmt.Errorf("%w: %v", reddcoin.ErrSerialization, err)
	}

	return w.Bytes(), nil
}

// Hex returns canonical raw transaction as lowercase hex.
func (d *Draft) Hex() (string, error) {
	raw, err := d.Serialize()
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(raw), nil
}

// DecodeTx parses raw transaction hex.
func DecodeTx(rawHex string) (*wire.MsgTx, error) {
	raw, err := hex.DecodeString(rawHex)
	if err != nil {
		return nil, fmt.Errorf("%w: raw transaction is not valid hex", reddcoin.ErrInvalidInput)
	}

	tx := new(wire.MsgTx)
	if err = tx.DeserializeNoWitness(bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("%w: %v", reddcoin.ErrInvalidInput, err)
	}

	return tx, nil
}
