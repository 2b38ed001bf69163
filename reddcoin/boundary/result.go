// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package boundary

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BoostyLabs/reddid/reddcoin"
)

const (
	// OKPrefix defines prefix of successful result.
	OKPrefix = "OK:"
	// ErrPrefix defines prefix of failed result.
	ErrPrefix = "ERR:"
)

// Result describes outcome of a boundary call.
type Result struct {
	Value string
	Err   error
}

// String returns Result tagged with OK or ERR prefix. Error message is kept single-line.
func (r Result) String() string {
	if r.Err != nil {
		return ErrPrefix + singleLine(r.Err.Error())
	}

	return OKPrefix + r.Value
}

// ParseResult parses tagged string back into Result.
func ParseResult(tagged string) (Result, error) {
	if value, ok := strings.CutPrefix(tagged, OKPrefix); ok {
		return Result{Value: value}, nil
	}
	if message, ok := strings.CutPrefix(tagged, ErrPrefix); ok {
		return Result{Err: errors.New(message)}, nil
	}

	return Result{}, fmt.Errorf("%w: result is not tagged: %q", reddcoin.ErrInvalidInput, tagged)
}

// tag runs fn and tags its outcome, panics are reported as serialization errors.
func tag(fn func() (string, error)) (tagged string) {
	defer func() {
		if r := recover(); r != nil {
			tagged = Result{Err: fmt.Errorf("%w: internal failure: %v", reddcoin.ErrSerialization, r)}.String()
		}
	}()

	value, err := fn()

	return Result{Value: value, Err: err}.String()
}

// singleLine replaces line breaks with spaces.
func singleLine(message string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(message)
}
