// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package memo

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"strings"
	"sync"

	"github.com/mr-tron/base58"

	"github.com/mahdiyari/hive-tx-go/account"
	"github.com/mahdiyari/hive-tx-go/bytebuffer"
	"github.com/mahdiyari/hive-tx-go/fault"
	"github.com/mahdiyari/hive-tx-go/transactionrecord"
)

// Sentinel - only memos starting with this are encrypted
const Sentinel = "#"

// split of the sha512 key material
const (
	keyLength = 32
	ivLength  = aes.BlockSize
)

// fixed data for the one time round trip check
const (
	selfTestWIF       = "5JdeC9P7Pbd1uGdFVEsJ41EkEnADbbHGq6p1BwFxm6txNBsQnsw"
	selfTestPublicKey = "STM8m5UgaFAAYQRuaNejYdS8FVLVp9Ss3K1qAVk5de6F8s3HnVbvA"
	selfTestMemo      = "#memo爱"
)

var selfTest struct {
	once sync.Once
	ok   bool
}

// Encode - encrypt a "#…" memo from the sender to the recipient
//
// text without the leading # is returned unchanged
func Encode(privateKey *account.PrivateKey, publicKey *account.PublicKey, memo string) (string, error) {
	if !strings.HasPrefix(memo, Sentinel) {
		return memo, nil
	}
	if err := checkEnvironment(); nil != err {
		return "", err
	}
	return encode(privateKey, publicKey, memo, uniqueNonce())
}

// EncodeWithNonce - as Encode with a caller supplied nonce
//
// a nonce must never be reused with the same pair of keys
func EncodeWithNonce(privateKey *account.PrivateKey, publicKey *account.PublicKey, memo string, nonce uint64) (string, error) {
	if !strings.HasPrefix(memo, Sentinel) {
		return memo, nil
	}
	if err := checkEnvironment(); nil != err {
		return "", err
	}
	return encode(privateKey, publicKey, memo, nonce)
}

// Decode - decrypt a "#…" memo with the key of either party
//
// text without the leading # is returned unchanged
func Decode(privateKey *account.PrivateKey, memo string) (string, error) {
	if !strings.HasPrefix(memo, Sentinel) {
		return memo, nil
	}
	if err := checkEnvironment(); nil != err {
		return "", err
	}
	return decode(privateKey, memo)
}

// run the round trip once per process
func checkEnvironment() error {
	selfTest.once.Do(func() {
		selfTest.ok = nil == roundTrip()
	})
	if !selfTest.ok {
		return fault.ErrEncryptionUnsupported
	}
	return nil
}

func roundTrip() error {
	privateKey, err := account.PrivateKeyFromWIF(selfTestWIF)
	if nil != err {
		return err
	}
	publicKey, err := account.PublicKeyFromString(selfTestPublicKey)
	if nil != err {
		return err
	}
	encoded, err := encode(privateKey, publicKey, selfTestMemo, uniqueNonce())
	if nil != err {
		return err
	}
	decoded, err := decode(privateKey, encoded)
	if nil != err {
		return err
	}
	if selfTestMemo != decoded {
		return fault.ErrEncryptionUnsupported
	}
	return nil
}

func encode(privateKey *account.PrivateKey, publicKey *account.PublicKey, memo string, nonce uint64) (string, error) {
	buffer := bytebuffer.New(0, bytebuffer.LittleEndian, false)
	if err := buffer.WriteVString(strings.TrimPrefix(memo, Sentinel)); nil != err {
		return "", err
	}
	buffer.Flip()

	km, err := keyMaterial(privateKey, publicKey, nonce)
	if nil != err {
		return "", err
	}
	encrypted, err := encrypt(km, buffer.Bytes())
	if nil != err {
		return "", err
	}

	m := &transactionrecord.EncryptedMemo{
		From:      privateKey.PublicKey(),
		To:        publicKey,
		Nonce:     nonce,
		Check:     checksum(km),
		Encrypted: encrypted,
	}
	packed, err := transactionrecord.PackEncryptedMemo(m)
	if nil != err {
		return "", err
	}
	return Sentinel + base58.Encode(packed), nil
}

func decode(privateKey *account.PrivateKey, memo string) (string, error) {
	packed, err := base58.Decode(strings.TrimPrefix(memo, Sentinel))
	if nil != err || 0 == len(packed) {
		return "", fault.ErrInvalidMemo
	}
	m, err := transactionrecord.UnpackEncryptedMemo(bytebuffer.Wrap(packed, bytebuffer.LittleEndian))
	if nil != err {
		return "", err
	}

	// the other party of the exchange
	peer := m.From
	if privateKey.PublicKey().String() == m.From.String() {
		peer = m.To
	}

	km, err := keyMaterial(privateKey, peer, m.Nonce)
	if nil != err {
		return "", err
	}
	if checksum(km) != m.Check {
		return "", fault.ErrInvalidKey
	}

	plain, err := decrypt(km, m.Encrypted)
	if nil != err {
		return "", err
	}
	text, err := bytebuffer.Wrap(plain, bytebuffer.LittleEndian).ReadVString()
	if nil != err {
		return "", err
	}
	return Sentinel + text, nil
}

// sha512(nonce ‖ shared secret)
func keyMaterial(privateKey *account.PrivateKey, publicKey *account.PublicKey, nonce uint64) ([]byte, error) {
	secret, err := privateKey.SharedSecret(publicKey)
	if nil != err {
		return nil, err
	}
	b := make([]byte, 8, 8+len(secret))
	binary.LittleEndian.PutUint64(b, nonce)
	b = append(b, secret[:]...)
	km := sha512.Sum512(b)
	return km[:], nil
}

// first four bytes of sha256 of the key material
func checksum(km []byte) uint32 {
	digest := sha256.Sum256(km)
	return binary.LittleEndian.Uint32(digest[:4])
}

func encrypt(km []byte, plain []byte) ([]byte, error) {
	block, err := aes.NewCipher(km[:keyLength])
	if nil != err {
		return nil, err
	}
	padded := pad(plain)
	result := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, km[keyLength:keyLength+ivLength]).CryptBlocks(result, padded)
	return result, nil
}

func decrypt(km []byte, encrypted []byte) ([]byte, error) {
	if 0 == len(encrypted) || 0 != len(encrypted)%aes.BlockSize {
		return nil, fault.ErrInvalidMemo
	}
	block, err := aes.NewCipher(km[:keyLength])
	if nil != err {
		return nil, err
	}
	result := make([]byte, len(encrypted))
	cipher.NewCBCDecrypter(block, km[keyLength:keyLength+ivLength]).CryptBlocks(result, encrypted)
	return unpad(result)
}

// PKCS#7
func pad(b []byte) []byte {
	n := aes.BlockSize - len(b)%aes.BlockSize
	return append(append([]byte{}, b...), bytes.Repeat([]byte{byte(n)}, n)...)
}

func unpad(b []byte) ([]byte, error) {
	n := int(b[len(b)-1])
	if 0 == n || n > aes.BlockSize || n > len(b) {
		return nil, fault.ErrInvalidMemo
	}
	for _, c := range b[len(b)-n:] {
		if int(c) != n {
			return nil, fault.ErrInvalidMemo
		}
	}
	return b[:len(b)-n], nil
}
