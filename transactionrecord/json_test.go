// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/mahdiyari/hive-tx-go/fault"
	"github.com/mahdiyari/hive-tx-go/transactionrecord"
)

const transactionJSON = `{
  "ref_block_num": 4660,
  "ref_block_prefix": 3735928559,
  "expiration": "2020-01-01T00:00:00",
  "operations": [
    ["transfer", {"from": "alice", "to": "bob", "amount": "1.000 HIVE", "memo": ""}]
  ],
  "extensions": [],
  "signatures": []
}`

func TestParseTransaction(t *testing.T) {
	tx, err := transactionrecord.ParseTransaction([]byte(transactionJSON))
	if nil != err {
		t.Fatalf("parse error: %s", err)
	}
	assert.Equal(t, uint16(4660), tx.RefBlockNum)
	assert.Equal(t, uint32(0xdeadbeef), tx.RefBlockPrefix)
	assert.Equal(t, "2020-01-01T00:00:00", tx.Expiration.String())
	assert.Equal(t, 1, len(tx.Operations))

	transfer, ok := tx.Operations[0].(*transactionrecord.TransferOperation)
	if !ok {
		t.Fatalf("not a transfer: %T", tx.Operations[0])
	}
	assert.Equal(t, "alice", transfer.From)
	assert.Equal(t, "1.000 HIVE", transfer.Amount.String())

	packed, err := tx.Pack()
	assert.Nil(t, err)
	assert.Equal(t, "3412efbeadde00e10b5e010205616c69636503626f62e80300000000000003484956450000000000", hex.EncodeToString(packed))
}

func TestTransactionJSONRoundTrip(t *testing.T) {
	tx, err := transactionrecord.ParseTransaction([]byte(transactionJSON))
	assert.Nil(t, err)

	b, err := json.Marshal(tx)
	assert.Nil(t, err)

	expected := `{"ref_block_num":4660,"ref_block_prefix":3735928559,"expiration":"2020-01-01T00:00:00",` +
		`"operations":[["transfer",{"from":"alice","to":"bob","amount":"1.000 HIVE","memo":""}]],` +
		`"extensions":[],"signatures":[]}`
	assert.Equal(t, expected, string(b))
}

func TestParseOperationErrors(t *testing.T) {
	items := []struct {
		json  string
		cause error
	}{
		{`["no_such_op", {}]`, fault.ErrUnknownOperation},
		{`["fill_order", {}]`, fault.ErrUnknownOperation},
		{`["vote"]`, fault.ErrInvalidCount},
		{`["vote", {}, {}]`, fault.ErrInvalidCount},
	}
	for i, item := range items {
		_, err := transactionrecord.ParseOperation([]byte(item.json))
		if item.cause != errors.Cause(err) {
			t.Errorf("%d: error: %v  expected: %s", i, err, item.cause)
		}
	}

	_, err := transactionrecord.ParseOperation([]byte(`["transfer", {"amount": "1.000 NOPE"}]`))
	assert.NotNil(t, err, "invalid asset accepted")
}

func TestStaticVariantTagNames(t *testing.T) {
	op, err := transactionrecord.ParseOperation([]byte(`["update_proposal", {
		"proposal_id": 3, "creator": "alice", "daily_pay": "1.000 HBD",
		"subject": "s", "permlink": "p",
		"extensions": [["update_proposal_end_date", {"end_date": "2020-01-01T00:00:00"}]]
	}]`))
	if nil != err {
		t.Fatalf("parse error: %s", err)
	}
	update := op.(*transactionrecord.UpdateProposalOperation)
	assert.Equal(t, uint32(1), update.Extensions[0].Tag)
	assert.Equal(t, "2020-01-01T00:00:00", update.Extensions[0].EndDate.String())

	// any other name is variant zero
	op, err = transactionrecord.ParseOperation([]byte(`["comment_options", {
		"author": "alice", "permlink": "p", "max_accepted_payout": "1000.000 HBD",
		"percent_hbd": 10000, "allow_votes": true, "allow_curation_rewards": true,
		"extensions": [["comment_payout_beneficiaries", {"beneficiaries": [{"account": "bob", "weight": 100}]}]]
	}]`))
	if nil != err {
		t.Fatalf("parse error: %s", err)
	}
	options := op.(*transactionrecord.CommentOptionsOperation)
	assert.Equal(t, uint32(0), options.Extensions[0].Tag)
	assert.Equal(t, "bob", options.Extensions[0].Beneficiaries[0].Account)

	// numeric tags are kept
	op, err = transactionrecord.ParseOperation([]byte(`["recurrent_transfer", {
		"from": "alice", "to": "bob", "amount": "1.000 HIVE", "memo": "",
		"recurrence": 24, "executions": 2, "extensions": [[0, {"pair_id": 4}]]
	}]`))
	if nil != err {
		t.Fatalf("parse error: %s", err)
	}
	recurrent := op.(*transactionrecord.RecurrentTransferOperation)
	assert.Equal(t, uint32(0), recurrent.Extensions[0].Tag)
	assert.Equal(t, uint8(4), recurrent.Extensions[0].PairID)

	_, err = transactionrecord.ParseOperation([]byte(`["recurrent_transfer", {"extensions": [[true, {}]]}]`))
	assert.Equal(t, fault.ErrInvalidStaticVariant, errors.Cause(err))
}

func TestAuthorityJSON(t *testing.T) {
	text := `{"weight_threshold":1,"account_auths":[["bob",1]],"key_auths":[["` + testPublicKey + `",1]]}`
	var a transactionrecord.Authority
	err := json.Unmarshal([]byte(text), &a)
	if nil != err {
		t.Fatalf("unmarshal error: %s", err)
	}
	assert.Equal(t, "bob", a.AccountAuths[0].Account)
	assert.Equal(t, testPublicKey, a.KeyAuths[0].Key.String())

	b, err := json.Marshal(a)
	assert.Nil(t, err)
	assert.Equal(t, text, string(b))
}

func TestBinaryAndDateJSON(t *testing.T) {
	item := struct {
		Data transactionrecord.Binary `json:"data"`
		When transactionrecord.Date   `json:"when"`
	}{}
	err := json.Unmarshal([]byte(`{"data":"00ff10","when":"2021-06-30T12:00:00Z"}`), &item)
	assert.Nil(t, err)
	assert.Equal(t, transactionrecord.Binary{0x00, 0xff, 0x10}, item.Data)
	assert.Equal(t, int64(1625054400), item.When.Unix())

	b, err := json.Marshal(item)
	assert.Nil(t, err)
	assert.Equal(t, `{"data":"00ff10","when":"2021-06-30T12:00:00"}`, string(b))

	_, err = transactionrecord.ParseDate("yesterday")
	assert.Equal(t, fault.ErrInvalidDate, err)
}
