// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package txbuilder

import (
	"fmt"

	"github.com/BoostyLabs/reddid/reddcoin"
)

type causerSign string

const (
	// CauserFee defines that network fee does not fit into utxo amount.
	CauserFee causerSign = "fee"
	// CauserDust defines that change left after fee is below dust threshold.
	CauserDust causerSign = "dust"
)

// InsufficientError is the error type to describe insufficient balance errors with details.
type InsufficientError struct {
	Need   uint64
	Have   uint64
	Causer causerSign
}

// NewInsufficientError is a constructor for InsufficientError.
func NewInsufficientError(need, have uint64, causer causerSign) *InsufficientError {
	return &InsufficientError{need, have, causer}
}

// Error returns error description.
func (e *InsufficientError) Error() string {
	var errMsg = fmt.Sprintf("%s: need %d, have %d", reddcoin.ErrInsufficientFunds, e.Need, e.Have)

	if e.Causer != "" {
		errMsg += " (" + string(e.Causer) + ")"
	}

	return errMsg
}

// Is implements comparator method for [errors] package.
func (e *InsufficientError) Is(target error) bool {
	if target == reddcoin.ErrInsufficientFunds {
		return true
	}

	other, ok := target.(*InsufficientError)
	return ok && *other == *e
}
