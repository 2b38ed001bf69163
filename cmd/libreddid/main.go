// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

// Command libreddid builds a C shared library exposing ReddID payload
// encoding, transaction signing and vault encryption.
//
//	go build -buildmode=c-shared -o libreddid.so ./cmd/libreddid
//
// Every exported function returns a newly allocated NUL-terminated string
// prefixed with "OK:" or "ERR:". The caller owns it and must release it
// with vault_string_free exactly once. Releasing NULL is a no-op. Releasing
// the same pointer twice, or a pointer not returned by this library, is
// undefined behavior.
package main

/*
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"
)

func main() {}

// goString converts C string to Go string, nil pointer stays nil.
func goString(s *C.char) *string {
	if s == nil {
		return nil
	}

	str := C.GoString(s)
	return &str
}

//export generate_reddid_payload_ffi
func generate_reddid_payload_ffi(command, identifier *C.char) *C.char {
	return C.CString(generatePayload(goString(command), goString(identifier)))
}

//export sign_opreturn_transaction_ffi
func sign_opreturn_transaction_ffi(privateKeyHex, utxoTxID *C.char, utxoVout C.uint32_t, utxoAmount C.uint64_t,
	opReturnPayload, changeAddress *C.char, networkFee C.uint64_t) *C.char {
	return C.CString(signTransaction(
		goString(privateKeyHex), goString(utxoTxID), uint32(utxoVout), uint64(utxoAmount),
		goString(opReturnPayload), goString(changeAddress), uint64(networkFee),
	))
}

//export vault_encrypt
func vault_encrypt(plaintext, keyHex *C.char) *C.char {
	return C.CString(vaultEncrypt(goString(plaintext), goString(keyHex)))
}

//export vault_decrypt
func vault_decrypt(encrypted, keyHex *C.char) *C.char {
	return C.CString(vaultDecrypt(goString(encrypted), goString(keyHex)))
}

// vault_string_free releases string returned by any exported function.
//
//export vault_string_free
func vault_string_free(s *C.char) {
	if s == nil {
		return
	}

	C.free(unsafe.Pointer(s))
}
