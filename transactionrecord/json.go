// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/mahdiyari/hive-tx-go/fault"
)

// Operations - list of operations in [name, {body}] form
type Operations []Operation

// OperationEnvelope - a single [name, {body}] pair
type OperationEnvelope struct {
	Operation Operation
}

// MarshalJSON - as [name, {body}]
func (e OperationEnvelope) MarshalJSON() ([]byte, error) {
	if nil == e.Operation {
		return nil, fault.ErrMissingOperation
	}
	return json.Marshal([]interface{}{e.Operation.Tag().String(), e.Operation})
}

// UnmarshalJSON - from [name, {body}]
func (e *OperationEnvelope) UnmarshalJSON(s []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(s, &pair); nil != err {
		return err
	}
	if 2 != len(pair) {
		return fault.ErrInvalidCount
	}

	var name string
	if err := json.Unmarshal(pair[0], &name); nil != err {
		return err
	}
	op, err := NewOperation(name)
	if nil != err {
		return err
	}
	if err := json.Unmarshal(pair[1], op); nil != err {
		return errors.Wrap(err, name)
	}
	e.Operation = op
	return nil
}

// MarshalJSON - list of envelopes, never null
func (ops Operations) MarshalJSON() ([]byte, error) {
	envelopes := make([]OperationEnvelope, len(ops))
	for i, op := range ops {
		envelopes[i].Operation = op
	}
	return json.Marshal(envelopes)
}

// UnmarshalJSON - from a list of envelopes
func (ops *Operations) UnmarshalJSON(s []byte) error {
	var envelopes []OperationEnvelope
	if err := json.Unmarshal(s, &envelopes); nil != err {
		return err
	}
	result := make(Operations, len(envelopes))
	for i, e := range envelopes {
		result[i] = e.Operation
	}
	*ops = result
	return nil
}

// NewOperation - empty operation structure for a name
//
// virtual operations have no structure and are rejected
func NewOperation(name string) (Operation, error) {
	tag, err := TagFromName(name)
	if nil != err {
		return nil, err
	}
	if tag.IsVirtual() {
		return nil, errors.Wrap(fault.ErrUnknownOperation, name)
	}
	return newOperation(tag), nil
}

// ParseOperation - decode a single [name, {body}] pair
func ParseOperation(s []byte) (Operation, error) {
	var e OperationEnvelope
	if err := json.Unmarshal(s, &e); nil != err {
		return nil, err
	}
	return e.Operation, nil
}

// ParseTransaction - decode a transaction from its JSON form
func ParseTransaction(s []byte) (*Transaction, error) {
	tx := &Transaction{}
	if err := json.Unmarshal(s, tx); nil != err {
		return nil, err
	}
	return tx, nil
}
