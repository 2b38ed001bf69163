// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package reddcoin

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/wire"
)

// Reddcoin network magic values (pchMessageStart read as little-endian uint32).
const (
	MainNet wire.BitcoinNet = 0xdbb6c0fb
	TestNet wire.BitcoinNet = 0xdeb9c3fe
	RegTest wire.BitcoinNet = 0xdab5bffa
)

// MainNetParams defines Reddcoin main network parameters.
// Only fields used for address encoding and key handling are filled.
var MainNetParams = chaincfg.Params{
	Name:        "mainnet",
	Net:         MainNet,
	DefaultPort: "45444",

	Bech32HRPSegwit: "rdd",

	PubKeyHashAddrID: 0x3d, // starts with R
	ScriptHashAddrID: 0x05,
	PrivateKeyID:     0xbd,

	HDPrivateKeyID: [4]byte{0x04, 0x88, 0xad, 0xe4},
	HDPublicKeyID:  [4]byte{0x04, 0x88, 0xb2, 0x1e},
	HDCoinType:     4,
}

// TestNetParams defines Reddcoin test network parameters.
var TestNetParams = chaincfg.Params{
	Name:        "testnet",
	Net:         TestNet,
	DefaultPort: "55444",

	Bech32HRPSegwit: "trdd",

	PubKeyHashAddrID: 0x6f,
	ScriptHashAddrID: 0xc4,
	PrivateKeyID:     0xef,

	HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94},
	HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf},
	HDCoinType:     1,
}

// RegTestParams defines Reddcoin regression test network parameters.
var RegTestParams = chaincfg.Params{
	Name:        "regtest",
	Net:         RegTest,
	DefaultPort: "56444",

	Bech32HRPSegwit: "rrdd",

	PubKeyHashAddrID: 0x6f,
	ScriptHashAddrID: 0xc4,
	PrivateKeyID:     0xef,

	HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94},
	HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf},
	HDCoinType:     1,
}

// ParamsByName returns network parameters by network name.
func ParamsByName(name string) (*chaincfg.Params, error) {
	switch name {
	case MainNetParams.Name, "":
		return &MainNetParams, nil
	case TestNetParams.Name:
		return &TestNetParams, nil
	case RegTestParams.Name:
		return &RegTestParams, nil
	}

	return nil, fmt.Errorf("unknown network: %s", name)
}
