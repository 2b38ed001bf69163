// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/BoostyLabs/reddid/reddcoin"
)

const (
	// KeySize defines AES-256 key size in bytes.
	KeySize = 32
	// NonceSize defines AES-GCM nonce size in bytes.
	NonceSize = 12
	// packSeparator defines separator between ciphertext and nonce.
	packSeparator = ":"
)

// Vault encrypts and decrypts secrets with AES-256-GCM.
// Packed format is base64(ciphertext) + ":" + base64(nonce).
type Vault struct {
	random io.Reader
}

// New is a constructor for Vault.
func New() *Vault {
	return &Vault{random: rand.Reader}
}

// NewWithRandom returns Vault reading nonces from provided source.
func NewWithRandom(random io.Reader) *Vault {
	return &Vault{random: random}
}

// Encrypt encrypts plaintext with 64 hex chars key, returns packed ciphertext.
func (v *Vault) Encrypt(plaintext, keyHex string) (string, error) {
	aead, err := newAEAD(keyHex)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, NonceSize)
	if _, err = io.ReadFull(v.random, nonce); err != nil {
		return "", fmt.Errorf("%w: nonce generation failed: %v", reddcoin.ErrVault, err)
	}

	ciphertext := aead.Seal(nil, nonce, []byte(plaintext), nil)

	return base64.StdEncoding.EncodeToString(ciphertext) + packSeparator + base64.StdEncoding.EncodeToString(nonce), nil
}

// Decrypt decrypts packed ciphertext with 64 hex chars key.
func (v *Vault) Decrypt(packed, keyHex string) (string, error) {
	ciphertextB64, nonceB64, ok := strings.Cut(packed, packSeparator)
	if !ok {
		return "", fmt.Errorf("%w: packed_b64 must be in `<ciphertext_b64>:<nonce_b64>` format", reddcoin.ErrInvalidInput)
	}
	if ciphertextB64 == "" || nonceB64 == "" {
		return "", fmt.Errorf("%w: packed_b64 has empty ciphertext or nonce segment", reddcoin.ErrInvalidInput)
	}

	aead, err := newAEAD(keyHex)
	if err != nil {
		return "", err
	}

	ciphertext, err := base64.StdEncoding.DecodeString(ciphertextB64)
	if err != nil {
		return "", fmt.Errorf("%w: ciphertext base64 decode failed: %v", reddcoin.ErrInvalidInput, err)
	}

	nonce, err := base64.StdEncoding.DecodeString(nonceB64)
	if err != nil {
		return "", fmt.Errorf("%w: nonce base64 decode failed: %v", reddcoin.ErrInvalidInput, err)
	}
	if len(nonce) != NonceSize {
		return "", fmt.Errorf("%w: nonce must decode to %d bytes for AES-GCM", reddcoin.ErrInvalidInput, NonceSize)
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: decryption failed: %v", reddcoin.ErrVault, err)
	}
	if !utf8.Valid(plaintext) {
		return "", fmt.Errorf("%w: decrypted data is not valid UTF-8", reddcoin.ErrInvalidInput)
	}

	return string(plaintext), nil
}

// newAEAD parses key and returns AES-256-GCM cipher, key bytes are cleared after use.
func newAEAD(keyHex string) (cipher.AEAD, error) {
	if len(keyHex) != KeySize*2 {
		return nil, fmt.Errorf("%w: key_hex must be exactly %d hex characters (%d bytes)", reddcoin.ErrInvalidInput, KeySize*2, KeySize)
	}

	var key [KeySize]byte
	defer clear(key[:])

	if _, err := hex.Decode(key[:], []byte(keyHex)); err != nil {
		return nil, fmt.Errorf("%w: key_hex decode failed (expected valid %d-char hex)", reddcoin.ErrInvalidInput, KeySize*2)
	}

	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid key: %v", reddcoin.ErrInvalidInput, err)
	}

	return cipher.NewGCM(block)
}
