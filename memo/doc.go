// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package memo - private transfer memos
//
// A memo starting with # is encrypted with AES-256-CBC using a key
// derived from the ECDH secret of sender and recipient and a per
// memo nonce.  The result is # followed by base58 of the packed
// EncryptedMemo structure.  Either party can decrypt it.
package memo
