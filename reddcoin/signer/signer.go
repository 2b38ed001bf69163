// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package signer

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btclog"

	"github.com/BoostyLabs/reddid/reddcoin"
	"github.com/BoostyLabs/reddid/reddcoin/txbuilder"
	"github.com/BoostyLabs/reddid/reddcoin/utils"
)

const (
	// signHashType define signature hash type for input signing.
	signHashType = txscript.SigHashAll
	// signedInput defines index of the only input.
	signedInput = 0
)

// Signer provides transaction signing related logic.
type Signer struct {
	networkParams *chaincfg.Params
	log           btclog.Logger
}

// NewSigner is a constructor for Signer.
func NewSigner(networkParams *chaincfg.Params, log btclog.Logger) *Signer {
	if log == nil {
		log = btclog.Disabled
	}

	return &Signer{
		networkParams: networkParams,
		log:           log,
	}
}

// Digest returns legacy signature hash of the only draft input, spent output is
// expected to be locked by P2PKH script of the key.
// Input scriptSig is replaced by that script, 4 bytes sighash type is appended, the result is double SHA-256 hashed.
func (signer *Signer) Digest(draft *txbuilder.Draft, key *KeyPair) ([]byte, error) {
	subScript, err := utils.NewP2PKHScriptFromPubKey(key.PublicKey(), signer.networkParams)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", reddcoin.ErrSigning, err)
	}

	digest, err := txscript.CalcSignatureHash(subScript, signHashType, draft.MsgTx(), signedInput)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", reddcoin.ErrSigning, err)
	}

	return digest, nil
}

// SignP2PKH signs the only draft input with SIGHASH_ALL and moves draft into signed state.
// INFO: scriptSig has the next format: {<DER signature + sighash type byte> <33 bytes compressed public key>}.
func (signer *Signer) SignP2PKH(draft *txbuilder.Draft, key *KeyPair) error {
	if draft.State() != txbuilder.StateUnsigned {
		return fmt.Errorf("%w: transaction is already %s", reddcoin.ErrSigning, draft.State())
	}
	if key == nil || key.IsZero() {
		return fmt.Errorf("%w: private key is not set", reddcoin.ErrSigning)
	}

	digest, err := signer.Digest(draft, key)
	if err != nil {
		return err
	}

	sig := ecdsa.Sign(key.privateKey, digest)
	if !sig.Verify(digest, key.PublicKey()) {
		return fmt.Errorf("%w: produced signature does not verify", reddcoin.ErrSigning)
	}

	signatureScript, err := txscript.NewScriptBuilder().
		AddData(append(sig.Serialize(), byte(signHashType))).
		AddData(key.SerializedPublicKey()).
		Script()
	if err != nil {
		return fmt.Errorf("%w: %v", reddcoin.ErrSigning, err)
	}

	if err = draft.Finalize(signatureScript); err != nil {
		return err
	}

	txHash := draft.TxHash()
	signer.log.Debugf("Signed input %d of tx %s", signedInput, txHash.String())

	return nil
}
