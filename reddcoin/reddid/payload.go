// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package reddid

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/btcsuite/btcd/txscript"

	"github.com/BoostyLabs/reddid/internal/sequencereader"
	"github.com/BoostyLabs/reddid/reddcoin"
)

const (
	// Version defines ReddID payload format version.
	Version byte = 0x01
	// Separator defines byte between command and identifier.
	Separator byte = 0x00
	// MaxPayloadSize defines standard relay limit for OP_RETURN data in bytes, prefix included.
	MaxPayloadSize = 80
)

// Marker defines protocol marker bytes at the beginning of each payload.
var Marker = []byte("RDD")

// prefix is Marker followed by Version.
var prefix = append(bytes.Clone(Marker), Version)

// Payload describes ReddID command/identifier pair.
//
//	Layout:
//	┌────────┬─────────┬────────────┬───────────┬──────────────┐
//	│ "RDD"  │  0x01   │  command   │   0x00    │  identifier  │
//	│ 3 bytes│ version │ UTF-8, 1+  │ separator │  UTF-8, 1+   │
//	└────────┴─────────┴────────────┴───────────┴──────────────┘
type Payload struct {
	Command    string
	Identifier string
}

// Encode validates and encodes command and identifier into payload bytes.
func Encode(command, identifier string) ([]byte, error) {
	payload := Payload{Command: command, Identifier: identifier}

	return payload.Bytes()
}

// EncodeHex does Encode, returns lowercase hex.
func EncodeHex(command, identifier string) (string, error) {
	data, err := Encode(command, identifier)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(data), nil
}

// Bytes returns validated payload bytes.
func (p Payload) Bytes() ([]byte, error) {
	if err := validateField("command", p.Command); err != nil {
		return nil, err
	}
	if err := validateField("identifier", p.Identifier); err != nil {
		return nil, err
	}

	size := len(prefix) + len(p.Command) + 1 + len(p.Identifier)
	if size > MaxPayloadSize {
		return nil, fmt.Errorf("%w: payload too large: %d bytes (max %d)", reddcoin.ErrInvalidInput, size, MaxPayloadSize)
	}

	data := make([]byte, 0, size)
	data = append(data, prefix...)
	data = append(data, p.Command...)
	data = append(data, Separator)
	data = append(data, p.Identifier...)

	return data, nil
}

// Decode parses payload bytes produced by Encode.
func Decode(data []byte) (*Payload, error) {
	if len(data) > MaxPayloadSize {
		return nil, fmt.Errorf("%w: payload too large: %d bytes (max %d)", reddcoin.ErrInvalidInput, len(data), MaxPayloadSize)
	}

	sr := sequencereader.New(data)
	head, err := sr.NextN(len(prefix))
	if err != nil {
		return nil, fmt.Errorf("%w: payload is truncated", reddcoin.ErrInvalidInput)
	}
	if !bytes.Equal(head[:len(Marker)], Marker) {
		return nil, fmt.Errorf("%w: missing RDD marker", reddcoin.ErrInvalidInput)
	}
	if head[len(Marker)] != Version {
		return nil, fmt.Errorf("%w: unsupported payload version %d", reddcoin.ErrInvalidInput, head[len(Marker)])
	}

	command, ok := sr.NextUntil(Separator)
	if !ok {
		return nil, fmt.Errorf("%w: missing separator", reddcoin.ErrInvalidInput)
	}

	payload := &Payload{
		Command:    string(command),
		Identifier: string(sr.Rest()),
	}
	if err = validateField("command", payload.Command); err != nil {
		return nil, err
	}
	if err = validateField("identifier", payload.Identifier); err != nil {
		return nil, err
	}

	return payload, nil
}

// DecodeHex parses hex encoded payload.
func DecodeHex(payloadHex string) (*Payload, error) {
	data, err := hex.DecodeString(payloadHex)
	if err != nil {
		return nil, fmt.Errorf("%w: payload is not valid hex", reddcoin.ErrInvalidInput)
	}

	return Decode(data)
}

// FromScript extracts Payload from OP_RETURN script.
func FromScript(script []byte) (*Payload, error) {
	if txscript.GetScriptClass(script) != txscript.NullDataTy {
		return nil, fmt.Errorf("%w: not an OP_RETURN script", reddcoin.ErrInvalidInput)
	}

	pushes, err := txscript.PushedData(script)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", reddcoin.ErrInvalidInput, err)
	}
	if len(pushes) != 1 {
		return nil, fmt.Errorf("%w: expected 1 data push, got %d", reddcoin.ErrInvalidInput, len(pushes))
	}

	return Decode(pushes[0])
}

// validateField checks that field is non-blank UTF-8 without separator bytes.
func validateField(name, value string) error {
	switch {
	case strings.TrimSpace(value) == "":
		return fmt.Errorf("%w: %s cannot be empty", reddcoin.ErrInvalidInput, name)
	case !utf8.ValidString(value):
		return fmt.Errorf("%w: %s is not valid UTF-8", reddcoin.ErrInvalidInput, name)
	case strings.IndexByte(value, Separator) >= 0:
		return fmt.Errorf("%w: %s cannot contain null byte (0x00)", reddcoin.ErrInvalidInput, name)
	}

	return nil
}
