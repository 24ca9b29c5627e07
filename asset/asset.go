// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mahdiyari/hive-tx-go/fault"
)

// symbols
const (
	HIVE  = "HIVE"
	HBD   = "HBD"
	VESTS = "VESTS"
	TESTS = "TESTS"
	TBD   = "TBD"
	STEEM = "STEEM"
	SBD   = "SBD"
)

// MaximumSymbolLength - the symbol occupies this many bytes on the wire
const MaximumSymbolLength = 7

// decimal places for each known symbol
var precisions = map[string]uint8{
	HIVE:  3,
	HBD:   3,
	TESTS: 3,
	TBD:   3,
	STEEM: 3,
	SBD:   3,
	VESTS: 6,
}

// Asset - an amount in the smallest unit of a symbol
//
// 1.000 HIVE is Amount: 1000, Precision: 3, Symbol: "HIVE"
type Asset struct {
	Amount    int64
	Precision uint8
	Symbol    string
}

// Precision - decimal places used by a symbol
func Precision(symbol string) (uint8, error) {
	p, ok := precisions[symbol]
	if !ok {
		return 0, fault.ErrInvalidAssetSymbol
	}
	return p, nil
}

// New - asset from an amount already scaled to the symbol's precision
func New(amount int64, symbol string) (Asset, error) {
	p, err := Precision(symbol)
	if nil != err {
		return Asset{}, err
	}
	return Asset{
		Amount:    amount,
		Precision: p,
		Symbol:    symbol,
	}, nil
}

// Parse - convert text of the form "1.000 HIVE"
//
// the amount is scaled to the precision of the symbol, surplus
// decimal places are rounded half up
func Parse(text string) (Asset, error) {
	parts := strings.Fields(text)
	if 2 != len(parts) {
		return Asset{}, fault.ErrInvalidAsset
	}
	p, err := Precision(parts[1])
	if nil != err {
		return Asset{}, err
	}
	amount, err := scale(parts[0], p)
	if nil != err {
		return Asset{}, err
	}
	return Asset{
		Amount:    amount,
		Precision: p,
		Symbol:    parts[1],
	}, nil
}

// decimal text to integer in units of 10^-precision
func scale(text string, precision uint8) (int64, error) {
	negative := false
	switch {
	case strings.HasPrefix(text, "-"):
		negative = true
		text = text[1:]
	case strings.HasPrefix(text, "+"):
		text = text[1:]
	}

	whole, fraction := text, ""
	if i := strings.IndexByte(text, '.'); i >= 0 {
		whole, fraction = text[:i], text[i+1:]
	}
	if "" == whole && "" == fraction {
		return 0, fault.ErrInvalidAsset
	}
	if "" == whole {
		whole = "0"
	}
	for _, s := range []string{whole, fraction} {
		for _, c := range s {
			if c < '0' || c > '9' {
				return 0, fault.ErrInvalidAsset
			}
		}
	}

	// split fraction into kept digits and the rounding tail
	tail := ""
	if len(fraction) > int(precision) {
		fraction, tail = fraction[:precision], fraction[precision:]
	}
	fraction += strings.Repeat("0", int(precision)-len(fraction))

	magnitude, err := strconv.ParseUint(whole+fraction, 10, 64)
	if nil != err {
		return 0, fault.ErrAssetAmountOverflow
	}

	if "" != tail {
		roundUp := tail[0] > '5'
		if '5' == tail[0] {
			// exact half goes towards positive infinity
			roundUp = !negative || strings.Trim(tail[1:], "0") != ""
		}
		if roundUp {
			magnitude += 1
		}
	}

	if negative {
		if magnitude > math.MaxInt64+1 {
			return 0, fault.ErrAssetAmountOverflow
		}
		return -int64(magnitude), nil
	}
	if magnitude > math.MaxInt64 {
		return 0, fault.ErrAssetAmountOverflow
	}
	return int64(magnitude), nil
}

// String - text form with all decimal places "0.001 HBD"
func (a Asset) String() string {
	sign := ""
	magnitude := uint64(a.Amount)
	if a.Amount < 0 {
		sign = "-"
		magnitude = uint64(-a.Amount)
	}
	if 0 == a.Precision {
		return fmt.Sprintf("%s%d %s", sign, magnitude, a.Symbol)
	}
	divisor := uint64(1)
	for i := uint8(0); i < a.Precision; i += 1 {
		divisor *= 10
	}
	return fmt.Sprintf("%s%d.%0*d %s", sign, magnitude/divisor, int(a.Precision), magnitude%divisor, a.Symbol)
}

// SymbolBytes - symbol as its fixed width wire field, zero padded
func (a Asset) SymbolBytes() ([]byte, error) {
	if len(a.Symbol) > MaximumSymbolLength {
		return nil, fault.ErrInvalidAssetSymbol
	}
	b := make([]byte, MaximumSymbolLength)
	copy(b, a.Symbol)
	return b, nil
}

// MarshalText - convert asset to text
func (a Asset) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert text into an asset
func (a *Asset) UnmarshalText(s []byte) error {
	v, err := Parse(string(s))
	if nil != err {
		return err
	}
	*a = v
	return nil
}
