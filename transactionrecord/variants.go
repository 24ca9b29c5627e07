// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/json"

	"github.com/mahdiyari/hive-tx-go/fault"
)

// static variant tags may be given as a number or as a descriptive
// string, only one string has ever mapped anywhere but zero
const updateProposalEndDateName = "update_proposal_end_date"

// normalise the tag half of a [tag, value] pair
func variantTag(raw json.RawMessage) (uint32, error) {
	var name string
	if err := json.Unmarshal(raw, &name); nil == err {
		if updateProposalEndDateName == name {
			return 1, nil
		}
		return 0, nil
	}
	var tag uint32
	if err := json.Unmarshal(raw, &tag); nil != err {
		return 0, fault.ErrInvalidStaticVariant
	}
	return tag, nil
}

// split a [tag, value] pair
func unmarshalVariant(s []byte) (uint32, json.RawMessage, error) {
	var pair []json.RawMessage
	if err := json.Unmarshal(s, &pair); nil != err {
		return 0, nil, err
	}
	if 2 != len(pair) {
		return 0, nil, fault.ErrInvalidStaticVariant
	}
	tag, err := variantTag(pair[0])
	if nil != err {
		return 0, nil, err
	}
	return tag, pair[1], nil
}

// CommentOptionsExtension - variant 0: comment payout beneficiaries
type CommentOptionsExtension struct {
	Tag           uint32        `json:"-"`
	Beneficiaries []Beneficiary `json:"beneficiaries"`
}

// MarshalJSON - as [tag, {beneficiaries}]
func (e CommentOptionsExtension) MarshalJSON() ([]byte, error) {
	type body CommentOptionsExtension
	return json.Marshal([]interface{}{e.Tag, body(e)})
}

// UnmarshalJSON - from [tag, {beneficiaries}]
func (e *CommentOptionsExtension) UnmarshalJSON(s []byte) error {
	tag, value, err := unmarshalVariant(s)
	if nil != err {
		return err
	}
	type body CommentOptionsExtension
	var b body
	if err := json.Unmarshal(value, &b); nil != err {
		return err
	}
	*e = CommentOptionsExtension(b)
	e.Tag = tag
	return nil
}

// UpdateProposalExtension - variant 0 is reserved, variant 1 moves the
// end date
type UpdateProposalExtension struct {
	Tag     uint32 `json:"-"`
	EndDate Date   `json:"end_date"`
}

// MarshalJSON - as [tag, {end_date}]
func (e UpdateProposalExtension) MarshalJSON() ([]byte, error) {
	if 0 == e.Tag {
		return json.Marshal([]interface{}{e.Tag, struct{}{}})
	}
	type body UpdateProposalExtension
	return json.Marshal([]interface{}{e.Tag, body(e)})
}

// UnmarshalJSON - from [tag, {end_date}]
func (e *UpdateProposalExtension) UnmarshalJSON(s []byte) error {
	tag, value, err := unmarshalVariant(s)
	if nil != err {
		return err
	}
	*e = UpdateProposalExtension{Tag: tag}
	if 0 == tag {
		return nil
	}
	type body UpdateProposalExtension
	var b body
	if err := json.Unmarshal(value, &b); nil != err {
		return err
	}
	e.EndDate = b.EndDate
	return nil
}

// RecurrentTransferExtension - variant 0: pair id allowing several
// recurrent transfers between the same accounts
type RecurrentTransferExtension struct {
	Tag    uint32 `json:"-"`
	PairID uint8  `json:"pair_id"`
}

// MarshalJSON - as [tag, {pair_id}]
func (e RecurrentTransferExtension) MarshalJSON() ([]byte, error) {
	type body RecurrentTransferExtension
	return json.Marshal([]interface{}{e.Tag, body(e)})
}

// UnmarshalJSON - from [tag, {pair_id}]
func (e *RecurrentTransferExtension) UnmarshalJSON(s []byte) error {
	tag, value, err := unmarshalVariant(s)
	if nil != err {
		return err
	}
	type body RecurrentTransferExtension
	var b body
	if err := json.Unmarshal(value, &b); nil != err {
		return err
	}
	*e = RecurrentTransferExtension(b)
	e.Tag = tag
	return nil
}

// POW2Work - variant 0 is POW2, variant 1 is EquihashPOW
type POW2Work struct {
	Tag      uint32
	POW2     *POW2
	Equihash *EquihashPOW
}

// MarshalJSON - as [tag, work]
func (w POW2Work) MarshalJSON() ([]byte, error) {
	if 0 == w.Tag {
		return json.Marshal([]interface{}{w.Tag, w.POW2})
	}
	return json.Marshal([]interface{}{w.Tag, w.Equihash})
}

// UnmarshalJSON - from [tag, work]
func (w *POW2Work) UnmarshalJSON(s []byte) error {
	tag, value, err := unmarshalVariant(s)
	if nil != err {
		return err
	}
	*w = POW2Work{Tag: tag}
	switch tag {
	case 0:
		w.POW2 = &POW2{}
		return json.Unmarshal(value, w.POW2)
	case 1:
		w.Equihash = &EquihashPOW{}
		return json.Unmarshal(value, w.Equihash)
	default:
		return fault.ErrInvalidStaticVariant
	}
}
