// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/mahdiyari/hive-tx-go/account"
	"github.com/mahdiyari/hive-tx-go/asset"
)

// the unpacked operation structures, fields are listed in wire order

// VoteOperation - vote
type VoteOperation struct {
	Voter    string `json:"voter"`
	Author   string `json:"author"`
	Permlink string `json:"permlink"`
	Weight   int16  `json:"weight"`
}

// CommentOperation - comment
type CommentOperation struct {
	ParentAuthor   string `json:"parent_author"`
	ParentPermlink string `json:"parent_permlink"`
	Author         string `json:"author"`
	Permlink       string `json:"permlink"`
	Title          string `json:"title"`
	Body           string `json:"body"`
	JSONMetadata   string `json:"json_metadata"`
}

// TransferOperation - transfer
type TransferOperation struct {
	From   string      `json:"from"`
	To     string      `json:"to"`
	Amount asset.Asset `json:"amount"`
	Memo   string      `json:"memo"`
}

// TransferToVestingOperation - transfer_to_vesting
type TransferToVestingOperation struct {
	From   string      `json:"from"`
	To     string      `json:"to"`
	Amount asset.Asset `json:"amount"`
}

// WithdrawVestingOperation - withdraw_vesting
type WithdrawVestingOperation struct {
	Account       string      `json:"account"`
	VestingShares asset.Asset `json:"vesting_shares"`
}

// LimitOrderCreateOperation - limit_order_create
type LimitOrderCreateOperation struct {
	Owner        string      `json:"owner"`
	OrderID      uint32      `json:"orderid"`
	AmountToSell asset.Asset `json:"amount_to_sell"`
	MinToReceive asset.Asset `json:"min_to_receive"`
	FillOrKill   bool        `json:"fill_or_kill"`
	Expiration   Date        `json:"expiration"`
}

// LimitOrderCancelOperation - limit_order_cancel
type LimitOrderCancelOperation struct {
	Owner   string `json:"owner"`
	OrderID uint32 `json:"orderid"`
}

// FeedPublishOperation - feed_publish
type FeedPublishOperation struct {
	Publisher    string `json:"publisher"`
	ExchangeRate Price  `json:"exchange_rate"`
}

// ConvertOperation - convert
type ConvertOperation struct {
	Owner     string      `json:"owner"`
	RequestID uint32      `json:"requestid"`
	Amount    asset.Asset `json:"amount"`
}

// AccountCreateOperation - account_create
type AccountCreateOperation struct {
	Fee            asset.Asset        `json:"fee"`
	Creator        string             `json:"creator"`
	NewAccountName string             `json:"new_account_name"`
	Owner          Authority          `json:"owner"`
	Active         Authority          `json:"active"`
	Posting        Authority          `json:"posting"`
	MemoKey        *account.PublicKey `json:"memo_key"`
	JSONMetadata   string             `json:"json_metadata"`
}

// AccountUpdateOperation - account_update
type AccountUpdateOperation struct {
	Account      string             `json:"account"`
	Owner        *Authority         `json:"owner,omitempty"`
	Active       *Authority         `json:"active,omitempty"`
	Posting      *Authority         `json:"posting,omitempty"`
	MemoKey      *account.PublicKey `json:"memo_key"`
	JSONMetadata string             `json:"json_metadata"`
}

// WitnessUpdateOperation - witness_update
type WitnessUpdateOperation struct {
	Owner           string             `json:"owner"`
	URL             string             `json:"url"`
	BlockSigningKey *account.PublicKey `json:"block_signing_key"`
	Props           ChainProperties    `json:"props"`
	Fee             asset.Asset        `json:"fee"`
}

// AccountWitnessVoteOperation - account_witness_vote
type AccountWitnessVoteOperation struct {
	Account string `json:"account"`
	Witness string `json:"witness"`
	Approve bool   `json:"approve"`
}

// AccountWitnessProxyOperation - account_witness_proxy
type AccountWitnessProxyOperation struct {
	Account string `json:"account"`
	Proxy   string `json:"proxy"`
}

// POWOperation - pow
type POWOperation struct {
	WorkerAccount string          `json:"worker_account"`
	BlockID       Binary          `json:"block_id"`
	Nonce         uint64          `json:"nonce"`
	Work          POW             `json:"work"`
	Props         ChainProperties `json:"props"`
}

// CustomOperation - custom
type CustomOperation struct {
	RequiredAuths []string `json:"required_auths"`
	ID            uint16   `json:"id"`
	Data          Binary   `json:"data"`
}

// ReportOverProductionOperation - report_over_production
type ReportOverProductionOperation struct {
	Reporter    string            `json:"reporter"`
	FirstBlock  SignedBlockHeader `json:"first_block"`
	SecondBlock SignedBlockHeader `json:"second_block"`
}

// DeleteCommentOperation - delete_comment
type DeleteCommentOperation struct {
	Author   string `json:"author"`
	Permlink string `json:"permlink"`
}

// CustomJSONOperation - custom_json
type CustomJSONOperation struct {
	RequiredAuths        []string `json:"required_auths"`
	RequiredPostingAuths []string `json:"required_posting_auths"`
	ID                   string   `json:"id"`
	JSON                 string   `json:"json"`
}

// CommentOptionsOperation - comment_options
type CommentOptionsOperation struct {
	Author               string                    `json:"author"`
	Permlink             string                    `json:"permlink"`
	MaxAcceptedPayout    asset.Asset               `json:"max_accepted_payout"`
	PercentHBD           uint16                    `json:"percent_hbd"`
	AllowVotes           bool                      `json:"allow_votes"`
	AllowCurationRewards bool                      `json:"allow_curation_rewards"`
	Extensions           []CommentOptionsExtension `json:"extensions"`
}

// SetWithdrawVestingRouteOperation - set_withdraw_vesting_route
type SetWithdrawVestingRouteOperation struct {
	FromAccount string `json:"from_account"`
	ToAccount   string `json:"to_account"`
	Percent     uint16 `json:"percent"`
	AutoVest    bool   `json:"auto_vest"`
}

// LimitOrderCreate2Operation - limit_order_create2
type LimitOrderCreate2Operation struct {
	Owner        string      `json:"owner"`
	OrderID      uint32      `json:"orderid"`
	AmountToSell asset.Asset `json:"amount_to_sell"`
	ExchangeRate Price       `json:"exchange_rate"`
	FillOrKill   bool        `json:"fill_or_kill"`
	Expiration   Date        `json:"expiration"`
}

// ClaimAccountOperation - claim_account
type ClaimAccountOperation struct {
	Creator    string           `json:"creator"`
	Fee        asset.Asset      `json:"fee"`
	Extensions FutureExtensions `json:"extensions"`
}

// CreateClaimedAccountOperation - create_claimed_account
type CreateClaimedAccountOperation struct {
	Creator        string             `json:"creator"`
	NewAccountName string             `json:"new_account_name"`
	Owner          Authority          `json:"owner"`
	Active         Authority          `json:"active"`
	Posting        Authority          `json:"posting"`
	MemoKey        *account.PublicKey `json:"memo_key"`
	JSONMetadata   string             `json:"json_metadata"`
	Extensions     FutureExtensions   `json:"extensions"`
}

// RequestAccountRecoveryOperation - request_account_recovery
type RequestAccountRecoveryOperation struct {
	RecoveryAccount   string           `json:"recovery_account"`
	AccountToRecover  string           `json:"account_to_recover"`
	NewOwnerAuthority Authority        `json:"new_owner_authority"`
	Extensions        FutureExtensions `json:"extensions"`
}

// RecoverAccountOperation - recover_account
type RecoverAccountOperation struct {
	AccountToRecover     string           `json:"account_to_recover"`
	NewOwnerAuthority    Authority        `json:"new_owner_authority"`
	RecentOwnerAuthority Authority        `json:"recent_owner_authority"`
	Extensions           FutureExtensions `json:"extensions"`
}

// ChangeRecoveryAccountOperation - change_recovery_account
type ChangeRecoveryAccountOperation struct {
	AccountToRecover   string           `json:"account_to_recover"`
	NewRecoveryAccount string           `json:"new_recovery_account"`
	Extensions         FutureExtensions `json:"extensions"`
}

// EscrowTransferOperation - escrow_transfer
type EscrowTransferOperation struct {
	From                 string      `json:"from"`
	To                   string      `json:"to"`
	HBDAmount            asset.Asset `json:"hbd_amount"`
	HiveAmount           asset.Asset `json:"hive_amount"`
	EscrowID             uint32      `json:"escrow_id"`
	Agent                string      `json:"agent"`
	Fee                  asset.Asset `json:"fee"`
	JSONMeta             string      `json:"json_meta"`
	RatificationDeadline Date        `json:"ratification_deadline"`
	EscrowExpiration     Date        `json:"escrow_expiration"`
}

// EscrowDisputeOperation - escrow_dispute
type EscrowDisputeOperation struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Agent    string `json:"agent"`
	Who      string `json:"who"`
	EscrowID uint32 `json:"escrow_id"`
}

// EscrowReleaseOperation - escrow_release
type EscrowReleaseOperation struct {
	From       string      `json:"from"`
	To         string      `json:"to"`
	Agent      string      `json:"agent"`
	Who        string      `json:"who"`
	Receiver   string      `json:"receiver"`
	EscrowID   uint32      `json:"escrow_id"`
	HBDAmount  asset.Asset `json:"hbd_amount"`
	HiveAmount asset.Asset `json:"hive_amount"`
}

// POW2Operation - pow2
type POW2Operation struct {
	Work        POW2Work           `json:"work"`
	NewOwnerKey *account.PublicKey `json:"new_owner_key,omitempty"`
	Props       ChainProperties    `json:"props"`
}

// EscrowApproveOperation - escrow_approve
type EscrowApproveOperation struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Agent    string `json:"agent"`
	Who      string `json:"who"`
	EscrowID uint32 `json:"escrow_id"`
	Approve  bool   `json:"approve"`
}

// TransferToSavingsOperation - transfer_to_savings
type TransferToSavingsOperation struct {
	From   string      `json:"from"`
	To     string      `json:"to"`
	Amount asset.Asset `json:"amount"`
	Memo   string      `json:"memo"`
}

// TransferFromSavingsOperation - transfer_from_savings
type TransferFromSavingsOperation struct {
	From      string      `json:"from"`
	RequestID uint32      `json:"request_id"`
	To        string      `json:"to"`
	Amount    asset.Asset `json:"amount"`
	Memo      string      `json:"memo"`
}

// CancelTransferFromSavingsOperation - cancel_transfer_from_savings
type CancelTransferFromSavingsOperation struct {
	From      string `json:"from"`
	RequestID uint32 `json:"request_id"`
}

// CustomBinaryOperation - custom_binary
type CustomBinaryOperation struct {
	RequiredOwnerAuths   []string    `json:"required_owner_auths"`
	RequiredActiveAuths  []string    `json:"required_active_auths"`
	RequiredPostingAuths []string    `json:"required_posting_auths"`
	RequiredAuths        []Authority `json:"required_auths"`
	ID                   string      `json:"id"`
	Data                 Binary      `json:"data"`
}

// DeclineVotingRightsOperation - decline_voting_rights
type DeclineVotingRightsOperation struct {
	Account string `json:"account"`
	Decline bool   `json:"decline"`
}

// ResetAccountOperation - reset_account
type ResetAccountOperation struct {
	ResetAccount      string    `json:"reset_account"`
	AccountToReset    string    `json:"account_to_reset"`
	NewOwnerAuthority Authority `json:"new_owner_authority"`
}

// SetResetAccountOperation - set_reset_account
type SetResetAccountOperation struct {
	Account             string `json:"account"`
	CurrentResetAccount string `json:"current_reset_account"`
	ResetAccount        string `json:"reset_account"`
}

// ClaimRewardBalanceOperation - claim_reward_balance
type ClaimRewardBalanceOperation struct {
	Account     string      `json:"account"`
	RewardHive  asset.Asset `json:"reward_hive"`
	RewardHBD   asset.Asset `json:"reward_hbd"`
	RewardVests asset.Asset `json:"reward_vests"`
}

// DelegateVestingSharesOperation - delegate_vesting_shares
type DelegateVestingSharesOperation struct {
	Delegator     string      `json:"delegator"`
	Delegatee     string      `json:"delegatee"`
	VestingShares asset.Asset `json:"vesting_shares"`
}

// AccountCreateWithDelegationOperation - account_create_with_delegation
type AccountCreateWithDelegationOperation struct {
	Fee            asset.Asset        `json:"fee"`
	Delegation     asset.Asset        `json:"delegation"`
	Creator        string             `json:"creator"`
	NewAccountName string             `json:"new_account_name"`
	Owner          Authority          `json:"owner"`
	Active         Authority          `json:"active"`
	Posting        Authority          `json:"posting"`
	MemoKey        *account.PublicKey `json:"memo_key"`
	JSONMetadata   string             `json:"json_metadata"`
	Extensions     FutureExtensions   `json:"extensions"`
}

// WitnessSetPropertiesOperation - witness_set_properties
//
// each property value is already packed by its own codec, see
// BuildWitnessSetProperties
type WitnessSetPropertiesOperation struct {
	Owner      string            `json:"owner"`
	Props      []WitnessProperty `json:"props"`
	Extensions FutureExtensions  `json:"extensions"`
}

// AccountUpdate2Operation - account_update2
type AccountUpdate2Operation struct {
	Account             string             `json:"account"`
	Owner               *Authority         `json:"owner,omitempty"`
	Active              *Authority         `json:"active,omitempty"`
	Posting             *Authority         `json:"posting,omitempty"`
	MemoKey             *account.PublicKey `json:"memo_key,omitempty"`
	JSONMetadata        string             `json:"json_metadata"`
	PostingJSONMetadata string             `json:"posting_json_metadata"`
	Extensions          FutureExtensions   `json:"extensions"`
}

// CreateProposalOperation - create_proposal
type CreateProposalOperation struct {
	Creator    string           `json:"creator"`
	Receiver   string           `json:"receiver"`
	StartDate  Date             `json:"start_date"`
	EndDate    Date             `json:"end_date"`
	DailyPay   asset.Asset      `json:"daily_pay"`
	Subject    string           `json:"subject"`
	Permlink   string           `json:"permlink"`
	Extensions FutureExtensions `json:"extensions"`
}

// UpdateProposalVotesOperation - update_proposal_votes
type UpdateProposalVotesOperation struct {
	Voter       string           `json:"voter"`
	ProposalIDs []int64          `json:"proposal_ids"`
	Approve     bool             `json:"approve"`
	Extensions  FutureExtensions `json:"extensions"`
}

// RemoveProposalOperation - remove_proposal
type RemoveProposalOperation struct {
	ProposalOwner string           `json:"proposal_owner"`
	ProposalIDs   []int64          `json:"proposal_ids"`
	Extensions    FutureExtensions `json:"extensions"`
}

// UpdateProposalOperation - update_proposal
type UpdateProposalOperation struct {
	ProposalID uint64                    `json:"proposal_id"`
	Creator    string                    `json:"creator"`
	DailyPay   asset.Asset               `json:"daily_pay"`
	Subject    string                    `json:"subject"`
	Permlink   string                    `json:"permlink"`
	Extensions []UpdateProposalExtension `json:"extensions"`
}

// CollateralizedConvertOperation - collateralized_convert
type CollateralizedConvertOperation struct {
	Owner     string      `json:"owner"`
	RequestID uint32      `json:"requestid"`
	Amount    asset.Asset `json:"amount"`
}

// RecurrentTransferOperation - recurrent_transfer
type RecurrentTransferOperation struct {
	From       string                       `json:"from"`
	To         string                       `json:"to"`
	Amount     asset.Asset                  `json:"amount"`
	Memo       string                       `json:"memo"`
	Recurrence uint16                       `json:"recurrence"`
	Executions uint16                       `json:"executions"`
	Extensions []RecurrentTransferExtension `json:"extensions"`
}

// tags
func (*VoteOperation) Tag() TagType                        { return VoteTag }
func (*CommentOperation) Tag() TagType                     { return CommentTag }
func (*TransferOperation) Tag() TagType                    { return TransferTag }
func (*TransferToVestingOperation) Tag() TagType           { return TransferToVestingTag }
func (*WithdrawVestingOperation) Tag() TagType             { return WithdrawVestingTag }
func (*LimitOrderCreateOperation) Tag() TagType            { return LimitOrderCreateTag }
func (*LimitOrderCancelOperation) Tag() TagType            { return LimitOrderCancelTag }
func (*FeedPublishOperation) Tag() TagType                 { return FeedPublishTag }
func (*ConvertOperation) Tag() TagType                     { return ConvertTag }
func (*AccountCreateOperation) Tag() TagType               { return AccountCreateTag }
func (*AccountUpdateOperation) Tag() TagType               { return AccountUpdateTag }
func (*WitnessUpdateOperation) Tag() TagType               { return WitnessUpdateTag }
func (*AccountWitnessVoteOperation) Tag() TagType          { return AccountWitnessVoteTag }
func (*AccountWitnessProxyOperation) Tag() TagType         { return AccountWitnessProxyTag }
func (*POWOperation) Tag() TagType                         { return POWTag }
func (*CustomOperation) Tag() TagType                      { return CustomTag }
func (*ReportOverProductionOperation) Tag() TagType        { return ReportOverProductionTag }
func (*DeleteCommentOperation) Tag() TagType               { return DeleteCommentTag }
func (*CustomJSONOperation) Tag() TagType                  { return CustomJSONTag }
func (*CommentOptionsOperation) Tag() TagType              { return CommentOptionsTag }
func (*SetWithdrawVestingRouteOperation) Tag() TagType     { return SetWithdrawVestingRouteTag }
func (*LimitOrderCreate2Operation) Tag() TagType           { return LimitOrderCreate2Tag }
func (*ClaimAccountOperation) Tag() TagType                { return ClaimAccountTag }
func (*CreateClaimedAccountOperation) Tag() TagType        { return CreateClaimedAccountTag }
func (*RequestAccountRecoveryOperation) Tag() TagType      { return RequestAccountRecoveryTag }
func (*RecoverAccountOperation) Tag() TagType              { return RecoverAccountTag }
func (*ChangeRecoveryAccountOperation) Tag() TagType       { return ChangeRecoveryAccountTag }
func (*EscrowTransferOperation) Tag() TagType              { return EscrowTransferTag }
func (*EscrowDisputeOperation) Tag() TagType               { return EscrowDisputeTag }
func (*EscrowReleaseOperation) Tag() TagType               { return EscrowReleaseTag }
func (*POW2Operation) Tag() TagType                        { return POW2Tag }
func (*EscrowApproveOperation) Tag() TagType               { return EscrowApproveTag }
func (*TransferToSavingsOperation) Tag() TagType           { return TransferToSavingsTag }
func (*TransferFromSavingsOperation) Tag() TagType         { return TransferFromSavingsTag }
func (*CancelTransferFromSavingsOperation) Tag() TagType   { return CancelTransferFromSavingsTag }
func (*CustomBinaryOperation) Tag() TagType                { return CustomBinaryTag }
func (*DeclineVotingRightsOperation) Tag() TagType         { return DeclineVotingRightsTag }
func (*ResetAccountOperation) Tag() TagType                { return ResetAccountTag }
func (*SetResetAccountOperation) Tag() TagType             { return SetResetAccountTag }
func (*ClaimRewardBalanceOperation) Tag() TagType          { return ClaimRewardBalanceTag }
func (*DelegateVestingSharesOperation) Tag() TagType       { return DelegateVestingSharesTag }
func (*AccountCreateWithDelegationOperation) Tag() TagType { return AccountCreateWithDelegationTag }
func (*WitnessSetPropertiesOperation) Tag() TagType        { return WitnessSetPropertiesTag }
func (*AccountUpdate2Operation) Tag() TagType              { return AccountUpdate2Tag }
func (*CreateProposalOperation) Tag() TagType              { return CreateProposalTag }
func (*UpdateProposalVotesOperation) Tag() TagType         { return UpdateProposalVotesTag }
func (*RemoveProposalOperation) Tag() TagType              { return RemoveProposalTag }
func (*UpdateProposalOperation) Tag() TagType              { return UpdateProposalTag }
func (*CollateralizedConvertOperation) Tag() TagType       { return CollateralizedConvertTag }
func (*RecurrentTransferOperation) Tag() TagType           { return RecurrentTransferTag }

// empty operation structure for a tag
func newOperation(tag TagType) Operation {
	switch tag {
	case VoteTag:
		return &VoteOperation{}
	case CommentTag:
		return &CommentOperation{}
	case TransferTag:
		return &TransferOperation{}
	case TransferToVestingTag:
		return &TransferToVestingOperation{}
	case WithdrawVestingTag:
		return &WithdrawVestingOperation{}
	case LimitOrderCreateTag:
		return &LimitOrderCreateOperation{}
	case LimitOrderCancelTag:
		return &LimitOrderCancelOperation{}
	case FeedPublishTag:
		return &FeedPublishOperation{}
	case ConvertTag:
		return &ConvertOperation{}
	case AccountCreateTag:
		return &AccountCreateOperation{}
	case AccountUpdateTag:
		return &AccountUpdateOperation{}
	case WitnessUpdateTag:
		return &WitnessUpdateOperation{}
	case AccountWitnessVoteTag:
		return &AccountWitnessVoteOperation{}
	case AccountWitnessProxyTag:
		return &AccountWitnessProxyOperation{}
	case POWTag:
		return &POWOperation{}
	case CustomTag:
		return &CustomOperation{}
	case ReportOverProductionTag:
		return &ReportOverProductionOperation{}
	case DeleteCommentTag:
		return &DeleteCommentOperation{}
	case CustomJSONTag:
		return &CustomJSONOperation{}
	case CommentOptionsTag:
		return &CommentOptionsOperation{}
	case SetWithdrawVestingRouteTag:
		return &SetWithdrawVestingRouteOperation{}
	case LimitOrderCreate2Tag:
		return &LimitOrderCreate2Operation{}
	case ClaimAccountTag:
		return &ClaimAccountOperation{}
	case CreateClaimedAccountTag:
		return &CreateClaimedAccountOperation{}
	case RequestAccountRecoveryTag:
		return &RequestAccountRecoveryOperation{}
	case RecoverAccountTag:
		return &RecoverAccountOperation{}
	case ChangeRecoveryAccountTag:
		return &ChangeRecoveryAccountOperation{}
	case EscrowTransferTag:
		return &EscrowTransferOperation{}
	case EscrowDisputeTag:
		return &EscrowDisputeOperation{}
	case EscrowReleaseTag:
		return &EscrowReleaseOperation{}
	case POW2Tag:
		return &POW2Operation{}
	case EscrowApproveTag:
		return &EscrowApproveOperation{}
	case TransferToSavingsTag:
		return &TransferToSavingsOperation{}
	case TransferFromSavingsTag:
		return &TransferFromSavingsOperation{}
	case CancelTransferFromSavingsTag:
		return &CancelTransferFromSavingsOperation{}
	case CustomBinaryTag:
		return &CustomBinaryOperation{}
	case DeclineVotingRightsTag:
		return &DeclineVotingRightsOperation{}
	case ResetAccountTag:
		return &ResetAccountOperation{}
	case SetResetAccountTag:
		return &SetResetAccountOperation{}
	case ClaimRewardBalanceTag:
		return &ClaimRewardBalanceOperation{}
	case DelegateVestingSharesTag:
		return &DelegateVestingSharesOperation{}
	case AccountCreateWithDelegationTag:
		return &AccountCreateWithDelegationOperation{}
	case WitnessSetPropertiesTag:
		return &WitnessSetPropertiesOperation{}
	case AccountUpdate2Tag:
		return &AccountUpdate2Operation{}
	case CreateProposalTag:
		return &CreateProposalOperation{}
	case UpdateProposalVotesTag:
		return &UpdateProposalVotesOperation{}
	case RemoveProposalTag:
		return &RemoveProposalOperation{}
	case UpdateProposalTag:
		return &UpdateProposalOperation{}
	case CollateralizedConvertTag:
		return &CollateralizedConvertOperation{}
	case RecurrentTransferTag:
		return &RecurrentTransferOperation{}
	default:
		return nil
	}
}
