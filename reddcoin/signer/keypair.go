// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package signer

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/BoostyLabs/reddid/reddcoin"
)

// PrivateKeyHexLen defines length of hex encoded 32 bytes private key.
const PrivateKeyHexLen = 64

// KeyPair holds private scalar and derived public key.
// Call Zero once the pair is not needed anymore.
type KeyPair struct {
	privateKey *btcec.PrivateKey
	publicKey  *btcec.PublicKey
}

// ParsePrivateKeyHex parses 64 hex chars private key.
// Scalar must be in range [1, n-1], where n is secp256k1 group order.
func ParsePrivateKeyHex(keyHex string) (*KeyPair, error) {
	if len(keyHex) != PrivateKeyHexLen {
		return nil, fmt.Errorf("%w: private_key_hex must be exactly %d hex characters", reddcoin.ErrSigning, PrivateKeyHexLen)
	}

	var raw [32]byte
	defer clear(raw[:])

	if _, err := hex.Decode(raw[:], []byte(keyHex)); err != nil {
		return nil, fmt.Errorf("%w: private_key_hex contains non-hex characters", reddcoin.ErrSigning)
	}

	return NewKeyPair(raw[:])
}

// NewKeyPair creates KeyPair from 32 bytes big-endian scalar.
func NewKeyPair(raw []byte) (*KeyPair, error) {
	if len(raw) != 32 {
		return nil, fmt.Errorf("%w: private key must be 32 bytes, got %d", reddcoin.ErrSigning, len(raw))
	}

	var scalar secp256k1.ModNScalar
	defer scalar.Zero()

	overflow := scalar.SetByteSlice(raw)
	if overflow || scalar.IsZero() {
		return nil, fmt.Errorf("%w: private key is out of range [1, n-1]", reddcoin.ErrSigning)
	}

	privateKey := secp256k1.NewPrivateKey(&scalar)

	return &KeyPair{
		privateKey: privateKey,
		publicKey:  privateKey.PubKey(),
	}, nil
}

// PublicKey returns public key.
func (kp *KeyPair) PublicKey() *btcec.PublicKey {
	return kp.publicKey
}

// SerializedPublicKey returns 33 bytes compressed public key.
func (kp *KeyPair) SerializedPublicKey() []byte {
	return kp.publicKey.SerializeCompressed()
}

// IsZero returns true if private key was zeroized.
func (kp *KeyPair) IsZero() bool {
	return kp.privateKey == nil || kp.privateKey.Key.IsZero()
}

// Zero clears private scalar from memory.
func (kp *KeyPair) Zero() {
	if kp.privateKey != nil {
		kp.privateKey.Zero()
	}
}
