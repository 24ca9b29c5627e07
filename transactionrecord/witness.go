// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/json"
	"math"
	"sort"

	"github.com/pkg/errors"

	"github.com/mahdiyari/hive-tx-go/account"
	"github.com/mahdiyari/hive-tx-go/asset"
	"github.com/mahdiyari/hive-tx-go/bytebuffer"
	"github.com/mahdiyari/hive-tx-go/fault"
)

// WitnessProperty - a property name with its already packed value
type WitnessProperty struct {
	Key   string
	Value Binary
}

// MarshalJSON - as the pair [name, hex]
func (p WitnessProperty) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{p.Key, p.Value})
}

// UnmarshalJSON - from the pair [name, hex]
func (p *WitnessProperty) UnmarshalJSON(s []byte) error {
	return unmarshalPair(s, &p.Key, &p.Value)
}

// how each witness property value is packed
var witnessPropertyCodecs = map[string]func(*bytebuffer.Buffer, interface{}) error{
	"account_creation_fee":   packAssetProperty,
	"account_subsidy_budget": packInt32Property,
	"account_subsidy_decay":  packUint32Property,
	"maximum_block_size":     packUint32Property,
	"hbd_interest_rate":      packUint16Property,
	"hbd_exchange_rate":      packPriceProperty,
	"url":                    packStringProperty,
	"new_signing_key":        packPublicKeyProperty,
	"key":                    packPublicKeyProperty,
}

// BuildWitnessSetProperties - pack each property with its own codec and
// produce the operation, properties are ordered by name
//
// values may be the Go types (asset.Asset, Price, *account.PublicKey,
// integers, string) or their decoded JSON forms
func BuildWitnessSetProperties(owner string, props map[string]interface{}) (*WitnessSetPropertiesOperation, error) {
	keys := make([]string, 0, len(props))
	for key := range props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	op := &WitnessSetPropertiesOperation{
		Owner:      owner,
		Props:      make([]WitnessProperty, 0, len(keys)),
		Extensions: FutureExtensions{},
	}
	for _, key := range keys {
		codec, ok := witnessPropertyCodecs[key]
		if !ok {
			return nil, errors.Wrap(fault.ErrUnknownWitnessProperty, key)
		}
		buffer := bytebuffer.New(0, bytebuffer.LittleEndian, false)
		if err := codec(buffer, props[key]); nil != err {
			return nil, errors.Wrap(err, key)
		}
		buffer.Flip()
		op.Props = append(op.Props, WitnessProperty{
			Key:   key,
			Value: buffer.Bytes(),
		})
	}
	return op, nil
}

func packAssetProperty(buffer *bytebuffer.Buffer, value interface{}) error {
	switch v := value.(type) {
	case asset.Asset:
		return packAsset(buffer, v)
	case string:
		a, err := asset.Parse(v)
		if nil != err {
			return err
		}
		return packAsset(buffer, a)
	default:
		return fault.ErrInvalidWitnessProperty
	}
}

func packPriceProperty(buffer *bytebuffer.Buffer, value interface{}) error {
	switch v := value.(type) {
	case Price:
		return packPrice(buffer, v)
	case map[string]interface{}:
		base, ok1 := v["base"].(string)
		quote, ok2 := v["quote"].(string)
		if !ok1 || !ok2 {
			return fault.ErrInvalidWitnessProperty
		}
		p := Price{}
		var err error
		if p.Base, err = asset.Parse(base); nil != err {
			return errors.Wrap(err, "base")
		}
		if p.Quote, err = asset.Parse(quote); nil != err {
			return errors.Wrap(err, "quote")
		}
		return packPrice(buffer, p)
	default:
		return fault.ErrInvalidWitnessProperty
	}
}

func packPublicKeyProperty(buffer *bytebuffer.Buffer, value interface{}) error {
	switch v := value.(type) {
	case *account.PublicKey:
		return packPublicKey(buffer, v)
	case string:
		key, err := account.PublicKeyFromString(v)
		if nil != err {
			return err
		}
		return packPublicKey(buffer, key)
	default:
		return fault.ErrInvalidWitnessProperty
	}
}

func packStringProperty(buffer *bytebuffer.Buffer, value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return fault.ErrInvalidWitnessProperty
	}
	return buffer.WriteVString(s)
}

func packInt32Property(buffer *bytebuffer.Buffer, value interface{}) error {
	n, err := integerProperty(value, math.MinInt32, math.MaxInt32)
	if nil != err {
		return err
	}
	buffer.WriteInt32(int32(n))
	return nil
}

func packUint32Property(buffer *bytebuffer.Buffer, value interface{}) error {
	n, err := integerProperty(value, 0, math.MaxUint32)
	if nil != err {
		return err
	}
	buffer.WriteUint32(uint32(n))
	return nil
}

func packUint16Property(buffer *bytebuffer.Buffer, value interface{}) error {
	n, err := integerProperty(value, 0, math.MaxUint16)
	if nil != err {
		return err
	}
	buffer.WriteUint16(uint16(n))
	return nil
}

// accept any Go integer or a whole JSON number within range
func integerProperty(value interface{}, minimum int64, maximum int64) (int64, error) {
	var n int64
	switch v := value.(type) {
	case int:
		n = int64(v)
	case int16:
		n = int64(v)
	case int32:
		n = int64(v)
	case int64:
		n = v
	case uint16:
		n = int64(v)
	case uint32:
		n = int64(v)
	case float64:
		if v != math.Trunc(v) {
			return 0, fault.ErrInvalidWitnessProperty
		}
		if v < float64(minimum) || v > float64(maximum) {
			return 0, fault.ErrInvalidWitnessProperty
		}
		n = int64(v)
	case json.Number:
		i, err := v.Int64()
		if nil != err {
			return 0, fault.ErrInvalidWitnessProperty
		}
		n = i
	default:
		return 0, fault.ErrInvalidWitnessProperty
	}
	if n < minimum || n > maximum {
		return 0, fault.ErrInvalidWitnessProperty
	}
	return n, nil
}
