// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/mahdiyari/hive-tx-go/account"
	"github.com/mahdiyari/hive-tx-go/asset"
	"github.com/mahdiyari/hive-tx-go/fault"
)

// DateLayout - text form of dates, always UTC
const DateLayout = "2006-01-02T15:04:05"

// Date - second resolution time, packed as uint32 seconds
type Date struct {
	time.Time
}

// ParseDate - convert "2006-01-02T15:04:05" text, a trailing Z is
// permitted
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSuffix(s, "Z"), time.UTC)
	if nil != err {
		return Date{}, fault.ErrInvalidDate
	}
	return Date{Time: t}, nil
}

// NewDate - truncate a time to whole seconds
func NewDate(t time.Time) Date {
	return Date{Time: t.UTC().Truncate(time.Second)}
}

// String - text form of a date
func (d Date) String() string {
	return d.UTC().Format(DateLayout)
}

// MarshalText - convert date to text
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText - convert text into a date
func (d *Date) UnmarshalText(s []byte) error {
	v, err := ParseDate(string(s))
	if nil != err {
		return err
	}
	*d = v
	return nil
}

// MarshalJSON - replaces the RFC3339 form of the embedded time
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON - replaces the RFC3339 form of the embedded time
func (d *Date) UnmarshalJSON(s []byte) error {
	var text string
	if err := json.Unmarshal(s, &text); nil != err {
		return err
	}
	return d.UnmarshalText([]byte(text))
}

// Binary - raw bytes with a hex text form
type Binary []byte

// MarshalText - convert bytes to hex
func (b Binary) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(b))
	buffer := make([]byte, size)
	hex.Encode(buffer, b)
	return buffer, nil
}

// UnmarshalText - convert hex into bytes
func (b *Binary) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	*b = buffer[:byteCount]
	return nil
}

// AccountAuth - account name with weight
type AccountAuth struct {
	Account string
	Weight  uint16
}

// KeyAuth - public key with weight
type KeyAuth struct {
	Key    *account.PublicKey
	Weight uint16
}

// Authority - weighted multi-signature authority
//
// the auth lists keep the order given, the chain expects them sorted
type Authority struct {
	WeightThreshold uint32        `json:"weight_threshold"`
	AccountAuths    []AccountAuth `json:"account_auths"`
	KeyAuths        []KeyAuth     `json:"key_auths"`
}

// MarshalJSON - as the pair [name, weight]
func (a AccountAuth) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{a.Account, a.Weight})
}

// UnmarshalJSON - from the pair [name, weight]
func (a *AccountAuth) UnmarshalJSON(s []byte) error {
	return unmarshalPair(s, &a.Account, &a.Weight)
}

// MarshalJSON - as the pair [key, weight]
func (k KeyAuth) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{k.Key, k.Weight})
}

// UnmarshalJSON - from the pair [key, weight]
func (k *KeyAuth) UnmarshalJSON(s []byte) error {
	k.Key = &account.PublicKey{}
	return unmarshalPair(s, k.Key, &k.Weight)
}

func unmarshalPair(s []byte, first interface{}, second interface{}) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(s, &pair); nil != err {
		return err
	}
	if 2 != len(pair) {
		return fault.ErrInvalidCount
	}
	if err := json.Unmarshal(pair[0], first); nil != err {
		return err
	}
	return json.Unmarshal(pair[1], second)
}

// Price - exchange rate between two assets
type Price struct {
	Base  asset.Asset `json:"base"`
	Quote asset.Asset `json:"quote"`
}

// ChainProperties - witness voted chain parameters
type ChainProperties struct {
	AccountCreationFee asset.Asset `json:"account_creation_fee"`
	MaximumBlockSize   uint32      `json:"maximum_block_size"`
	HBDInterestRate    uint16      `json:"hbd_interest_rate"`
}

// Beneficiary - share of comment rewards
type Beneficiary struct {
	Account string `json:"account"`
	Weight  uint16 `json:"weight"`
}

// SignedBlockHeader - as carried in report_over_production
type SignedBlockHeader struct {
	Previous              Binary           `json:"previous"`
	Timestamp             Date             `json:"timestamp"`
	Witness               string           `json:"witness"`
	TransactionMerkleRoot Binary           `json:"transaction_merkle_root"`
	Extensions            FutureExtensions `json:"extensions"`
	WitnessSignature      Binary           `json:"witness_signature"`
}

// POW - legacy proof of work
type POW struct {
	Worker    *account.PublicKey `json:"worker"`
	Input     Binary             `json:"input"`
	Signature Binary             `json:"signature"`
	Work      Binary             `json:"work"`
}

// POW2Input - input of both pow2 variants
type POW2Input struct {
	WorkerAccount string `json:"worker_account"`
	PrevBlock     Binary `json:"prev_block"`
	Nonce         uint64 `json:"nonce"`
}

// POW2 - variant 0 of pow2 work
type POW2 struct {
	Input      POW2Input `json:"input"`
	PowSummary uint32    `json:"pow_summary"`
}

// EquihashProof - solution of an equihash puzzle
type EquihashProof struct {
	N      uint32   `json:"n"`
	K      uint32   `json:"k"`
	Seed   Binary   `json:"seed"`
	Inputs []uint32 `json:"inputs"`
}

// EquihashPOW - variant 1 of pow2 work
type EquihashPOW struct {
	Input      POW2Input     `json:"input"`
	Proof      EquihashProof `json:"proof"`
	PrevBlock  Binary        `json:"prev_block"`
	PowSummary uint32        `json:"pow_summary"`
}

// FutureExtensions - extension slots reserved by the chain that no
// operation may use yet, only an empty list can be packed
type FutureExtensions []json.RawMessage

// MarshalJSON - always a list
func (f FutureExtensions) MarshalJSON() ([]byte, error) {
	if nil == f {
		return []byte("[]"), nil
	}
	return json.Marshal([]json.RawMessage(f))
}
