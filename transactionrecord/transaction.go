// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/pkg/errors"

	"github.com/mahdiyari/hive-tx-go/account"
	"github.com/mahdiyari/hive-tx-go/bytebuffer"
	"github.com/mahdiyari/hive-tx-go/fault"
)

// TagType - type code for operations
type TagType uint32

// enumerate the possible operation types
// this is encoded as a Varint32 at the start of every operation
const (
	VoteTag                        = TagType(iota) // 0
	CommentTag                     = TagType(iota)
	TransferTag                    = TagType(iota)
	TransferToVestingTag           = TagType(iota)
	WithdrawVestingTag             = TagType(iota)
	LimitOrderCreateTag            = TagType(iota)
	LimitOrderCancelTag            = TagType(iota)
	FeedPublishTag                 = TagType(iota)
	ConvertTag                     = TagType(iota)
	AccountCreateTag               = TagType(iota)
	AccountUpdateTag               = TagType(iota) // 10
	WitnessUpdateTag               = TagType(iota)
	AccountWitnessVoteTag          = TagType(iota)
	AccountWitnessProxyTag         = TagType(iota)
	POWTag                         = TagType(iota)
	CustomTag                      = TagType(iota)
	ReportOverProductionTag        = TagType(iota)
	DeleteCommentTag               = TagType(iota)
	CustomJSONTag                  = TagType(iota)
	CommentOptionsTag              = TagType(iota)
	SetWithdrawVestingRouteTag     = TagType(iota) // 20
	LimitOrderCreate2Tag           = TagType(iota)
	ClaimAccountTag                = TagType(iota)
	CreateClaimedAccountTag        = TagType(iota)
	RequestAccountRecoveryTag      = TagType(iota)
	RecoverAccountTag              = TagType(iota)
	ChangeRecoveryAccountTag       = TagType(iota)
	EscrowTransferTag              = TagType(iota)
	EscrowDisputeTag               = TagType(iota)
	EscrowReleaseTag               = TagType(iota)
	POW2Tag                        = TagType(iota) // 30
	EscrowApproveTag               = TagType(iota)
	TransferToSavingsTag           = TagType(iota)
	TransferFromSavingsTag         = TagType(iota)
	CancelTransferFromSavingsTag   = TagType(iota)
	CustomBinaryTag                = TagType(iota)
	DeclineVotingRightsTag         = TagType(iota)
	ResetAccountTag                = TagType(iota)
	SetResetAccountTag             = TagType(iota)
	ClaimRewardBalanceTag          = TagType(iota)
	DelegateVestingSharesTag       = TagType(iota) // 40
	AccountCreateWithDelegationTag = TagType(iota)
	WitnessSetPropertiesTag        = TagType(iota)
	AccountUpdate2Tag              = TagType(iota)
	CreateProposalTag              = TagType(iota)
	UpdateProposalVotesTag         = TagType(iota)
	RemoveProposalTag              = TagType(iota)
	UpdateProposalTag              = TagType(iota)
	CollateralizedConvertTag       = TagType(iota)
	RecurrentTransferTag           = TagType(iota) // 49

	// virtual operations are produced by the chain and can never be
	// packed, their tags exist only for history filtering
	FirstVirtualTag = TagType(iota)
)

// names of the real operations indexed by tag
var operationNames = [FirstVirtualTag]string{
	"vote",
	"comment",
	"transfer",
	"transfer_to_vesting",
	"withdraw_vesting",
	"limit_order_create",
	"limit_order_cancel",
	"feed_publish",
	"convert",
	"account_create",
	"account_update",
	"witness_update",
	"account_witness_vote",
	"account_witness_proxy",
	"pow",
	"custom",
	"report_over_production",
	"delete_comment",
	"custom_json",
	"comment_options",
	"set_withdraw_vesting_route",
	"limit_order_create2",
	"claim_account",
	"create_claimed_account",
	"request_account_recovery",
	"recover_account",
	"change_recovery_account",
	"escrow_transfer",
	"escrow_dispute",
	"escrow_release",
	"pow2",
	"escrow_approve",
	"transfer_to_savings",
	"transfer_from_savings",
	"cancel_transfer_from_savings",
	"custom_binary",
	"decline_voting_rights",
	"reset_account",
	"set_reset_account",
	"claim_reward_balance",
	"delegate_vesting_shares",
	"account_create_with_delegation",
	"witness_set_properties",
	"account_update2",
	"create_proposal",
	"update_proposal_votes",
	"remove_proposal",
	"update_proposal",
	"collateralized_convert",
	"recurrent_transfer",
}

// names of the virtual operations, the first has tag FirstVirtualTag
var virtualOperationNames = []string{
	"fill_convert_request",
	"author_reward",
	"curation_reward",
	"comment_reward",
	"liquidity_reward",
	"interest",
	"fill_vesting_withdraw",
	"fill_order",
	"shutdown_witness",
	"fill_transfer_from_savings",
	"hardfork",
	"comment_payout_update",
	"return_vesting_delegation",
	"comment_benefactor_reward",
	"producer_reward",
	"clear_null_account_balance",
	"proposal_pay",
	"dhf_funding",
	"hardfork_hive",
	"hardfork_hive_restore",
	"delayed_voting",
	"consolidate_treasury_balance",
	"effective_comment_vote",
	"ineffective_delete_comment",
	"dhf_conversion",
	"expired_account_notification",
	"changed_recovery_account",
	"transfer_to_vesting_completed",
	"pow_reward",
	"vesting_shares_split",
	"account_created",
	"fill_collateralized_convert_request",
	"system_warning",
	"fill_recurrent_transfer",
	"failed_recurrent_transfer",
	"limit_order_cancelled",
	"producer_missed",
	"proposal_fee",
	"collateralized_convert_immediate_conversion",
	"escrow_approved",
	"escrow_rejected",
	"proxy_cleared",
	"declined_voting_rights",
}

// lookup for names, both real and virtual
var tagsByName = func() map[string]TagType {
	m := make(map[string]TagType, len(operationNames)+len(virtualOperationNames))
	for i, name := range operationNames {
		m[name] = TagType(i)
	}
	for i, name := range virtualOperationNames {
		m[name] = FirstVirtualTag + TagType(i)
	}
	return m
}()

// MaximumTag - one greater than the last virtual operation tag
var MaximumTag = FirstVirtualTag + TagType(len(virtualOperationNames))

// String - operation name of a tag
func (tag TagType) String() string {
	switch {
	case tag < FirstVirtualTag:
		return operationNames[tag]
	case tag < MaximumTag:
		return virtualOperationNames[tag-FirstVirtualTag]
	default:
		return "*unknown*"
	}
}

// IsVirtual - true for chain generated operations
func (tag TagType) IsVirtual() bool {
	return tag >= FirstVirtualTag && tag < MaximumTag
}

// TagFromName - tag of a real or virtual operation name
func TagFromName(name string) (TagType, error) {
	tag, ok := tagsByName[name]
	if !ok {
		return 0, errors.Wrap(fault.ErrUnknownOperation, name)
	}
	return tag, nil
}

// Operation - one of the concrete operation structures below
type Operation interface {
	Tag() TagType
	pack(buffer *bytebuffer.Buffer) error
}

// Transaction - the unpacked transaction structure
//
// signatures are carried for broadcast but are not part of the
// packed bytes
type Transaction struct {
	RefBlockNum    uint16              `json:"ref_block_num"`
	RefBlockPrefix uint32              `json:"ref_block_prefix"`
	Expiration     Date                `json:"expiration"`
	Operations     Operations          `json:"operations"`
	Extensions     []string            `json:"extensions"`
	Signatures     []account.Signature `json:"signatures"`
}

// EncryptedMemo - the packed form of a private memo
type EncryptedMemo struct {
	From      *account.PublicKey `json:"from"`
	To        *account.PublicKey `json:"to"`
	Nonce     uint64             `json:"nonce"`
	Check     uint32             `json:"check"`
	Encrypted Binary             `json:"encrypted"`
}
