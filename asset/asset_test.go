// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mahdiyari/hive-tx-go/asset"
	"github.com/mahdiyari/hive-tx-go/fault"
)

func TestParse(t *testing.T) {
	items := []struct {
		text      string
		amount    int64
		precision uint8
		symbol    string
		formatted string
	}{
		{"1.000 HIVE", 1000, 3, "HIVE", "1.000 HIVE"},
		{"0.001 HBD", 1, 3, "HBD", "0.001 HBD"},
		{"1 HIVE", 1000, 3, "HIVE", "1.000 HIVE"},
		{"1.5 TESTS", 1500, 3, "TESTS", "1.500 TESTS"},
		{"123.456789 VESTS", 123456789, 6, "VESTS", "123.456789 VESTS"},
		{"0.0005 HIVE", 1, 3, "HIVE", "0.001 HIVE"},
		{"0.0004 HIVE", 0, 3, "HIVE", "0.000 HIVE"},
		{"-1.250 HBD", -1250, 3, "HBD", "-1.250 HBD"},
		{"-0.0005 HBD", 0, 3, "HBD", "0.000 HBD"},
		{"-0.0006 HBD", -1, 3, "HBD", "-0.001 HBD"},
		{".5 TBD", 500, 3, "TBD", "0.500 TBD"},
		{"10.000 STEEM", 10000, 3, "STEEM", "10.000 STEEM"},
		{"2.000 SBD", 2000, 3, "SBD", "2.000 SBD"},
	}

	for i, item := range items {
		a, err := asset.Parse(item.text)
		if nil != err {
			t.Errorf("%d: %q error: %s", i, item.text, err)
			continue
		}
		if a.Amount != item.amount || a.Precision != item.precision || a.Symbol != item.symbol {
			t.Errorf("%d: %q -> %+v", i, item.text, a)
		}
		if s := a.String(); s != item.formatted {
			t.Errorf("%d: string: %q  expected: %q", i, s, item.formatted)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	items := []struct {
		text string
		err  error
	}{
		{"", fault.ErrInvalidAsset},
		{"1.000", fault.ErrInvalidAsset},
		{"1.000 HIVE extra", fault.ErrInvalidAsset},
		{"1.000 DOGE", fault.ErrInvalidAssetSymbol},
		{"1,000 HIVE", fault.ErrInvalidAsset},
		{". HIVE", fault.ErrInvalidAsset},
		{"abc HIVE", fault.ErrInvalidAsset},
		{"99999999999999999999 HIVE", fault.ErrAssetAmountOverflow},
	}

	for i, item := range items {
		_, err := asset.Parse(item.text)
		if err != item.err {
			t.Errorf("%d: %q error: %v  expected: %s", i, item.text, err, item.err)
		}
	}
}

func TestSymbolBytes(t *testing.T) {
	a, err := asset.New(1000, asset.HIVE)
	assert.Nil(t, err)

	b, err := a.SymbolBytes()
	assert.Nil(t, err)
	assert.Equal(t, []byte{'H', 'I', 'V', 'E', 0, 0, 0}, b)

	_, err = asset.Asset{Symbol: "TOOLONGX"}.SymbolBytes()
	assert.Equal(t, fault.ErrInvalidAssetSymbol, err)
}

func TestJSON(t *testing.T) {
	type item struct {
		Amount asset.Asset `json:"amount"`
	}
	var v item
	err := json.Unmarshal([]byte(`{"amount":"0.100 HBD"}`), &v)
	assert.Nil(t, err)
	assert.Equal(t, int64(100), v.Amount.Amount)

	b, err := json.Marshal(v)
	assert.Nil(t, err)
	assert.Equal(t, `{"amount":"0.100 HBD"}`, string(b))
}
