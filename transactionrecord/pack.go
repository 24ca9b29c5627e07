// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/pkg/errors"

	"github.com/mahdiyari/hive-tx-go/bytebuffer"
	"github.com/mahdiyari/hive-tx-go/fault"
)

// fixed widths of binary fields
const (
	blockIDLength      = 20
	digestLength       = 32
	compactSigLength   = 65
	initialPackedBytes = 256
)

// Packed - packed representation of a transaction
type Packed []byte

// Pack - turn a transaction into its binary form for signing
//
// signatures are not included
func (tx *Transaction) Pack() (Packed, error) {
	buffer := bytebuffer.New(initialPackedBytes, bytebuffer.LittleEndian, false)
	err := packFields(buffer,
		u16("ref_block_num", tx.RefBlockNum),
		u32("ref_block_prefix", tx.RefBlockPrefix),
		date("expiration", tx.Expiration),
		array("operations", tx.Operations, PackOperation),
		stringArray("extensions", tx.Extensions),
	)
	if nil != err {
		return nil, err
	}
	buffer.Flip()
	return buffer.Bytes(), nil
}

// PackOperation - write the tag then the body of an operation
func PackOperation(buffer *bytebuffer.Buffer, op Operation) error {
	if nil == op {
		return fault.ErrMissingOperation
	}
	tag := op.Tag()
	if tag >= FirstVirtualTag {
		return errors.Wrap(fault.ErrUnknownOperation, tag.String())
	}
	buffer.WriteVarint32(uint32(tag))
	if err := op.pack(buffer); nil != err {
		return errors.Wrap(err, tag.String())
	}
	return nil
}

func (op *VoteOperation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		str("voter", op.Voter),
		str("author", op.Author),
		str("permlink", op.Permlink),
		i16("weight", op.Weight),
	)
}

func (op *CommentOperation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		str("parent_author", op.ParentAuthor),
		str("parent_permlink", op.ParentPermlink),
		str("author", op.Author),
		str("permlink", op.Permlink),
		str("title", op.Title),
		str("body", op.Body),
		str("json_metadata", op.JSONMetadata),
	)
}

func (op *TransferOperation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		str("from", op.From),
		str("to", op.To),
		amount("amount", op.Amount),
		str("memo", op.Memo),
	)
}

func (op *TransferToVestingOperation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		str("from", op.From),
		str("to", op.To),
		amount("amount", op.Amount),
	)
}

func (op *WithdrawVestingOperation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		str("account", op.Account),
		amount("vesting_shares", op.VestingShares),
	)
}

func (op *LimitOrderCreateOperation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		str("owner", op.Owner),
		u32("orderid", op.OrderID),
		amount("amount_to_sell", op.AmountToSell),
		amount("min_to_receive", op.MinToReceive),
		boolean("fill_or_kill", op.FillOrKill),
		date("expiration", op.Expiration),
	)
}

func (op *LimitOrderCancelOperation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		str("owner", op.Owner),
		u32("orderid", op.OrderID),
	)
}

func (op *FeedPublishOperation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		str("publisher", op.Publisher),
		price("exchange_rate", op.ExchangeRate),
	)
}

func (op *ConvertOperation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		str("owner", op.Owner),
		u32("requestid", op.RequestID),
		amount("amount", op.Amount),
	)
}

func (op *AccountCreateOperation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		amount("fee", op.Fee),
		str("creator", op.Creator),
		str("new_account_name", op.NewAccountName),
		authority("owner", op.Owner),
		authority("active", op.Active),
		authority("posting", op.Posting),
		publicKey("memo_key", op.MemoKey),
		str("json_metadata", op.JSONMetadata),
	)
}

func (op *AccountUpdateOperation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		str("account", op.Account),
		optionalAuthority("owner", op.Owner),
		optionalAuthority("active", op.Active),
		optionalAuthority("posting", op.Posting),
		publicKey("memo_key", op.MemoKey),
		str("json_metadata", op.JSONMetadata),
	)
}

func (op *WitnessUpdateOperation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		str("owner", op.Owner),
		str("url", op.URL),
		publicKey("block_signing_key", op.BlockSigningKey),
		chainProperties("props", op.Props),
		amount("fee", op.Fee),
	)
}

func (op *AccountWitnessVoteOperation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		str("account", op.Account),
		str("witness", op.Witness),
		boolean("approve", op.Approve),
	)
}

func (op *AccountWitnessProxyOperation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		str("account", op.Account),
		str("proxy", op.Proxy),
	)
}

func (op *POWOperation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		str("worker_account", op.WorkerAccount),
		fixedBinary("block_id", blockIDLength, op.BlockID),
		u64("nonce", op.Nonce),
		object("work", func(buffer *bytebuffer.Buffer) error {
			return packFields(buffer,
				publicKey("worker", op.Work.Worker),
				fixedBinary("input", digestLength, op.Work.Input),
				fixedBinary("signature", compactSigLength, op.Work.Signature),
				fixedBinary("work", digestLength, op.Work.Work),
			)
		}),
		chainProperties("props", op.Props),
	)
}

func (op *CustomOperation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		stringArray("required_auths", op.RequiredAuths),
		u16("id", op.ID),
		blob("data", op.Data),
	)
}

func packSignedBlockHeader(buffer *bytebuffer.Buffer, h SignedBlockHeader) error {
	return packFields(buffer,
		fixedBinary("previous", blockIDLength, h.Previous),
		date("timestamp", h.Timestamp),
		str("witness", h.Witness),
		fixedBinary("transaction_merkle_root", blockIDLength, h.TransactionMerkleRoot),
		futureExtensions("extensions", h.Extensions),
		fixedBinary("witness_signature", compactSigLength, h.WitnessSignature),
	)
}

func (op *ReportOverProductionOperation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		str("reporter", op.Reporter),
		object("first_block", func(buffer *bytebuffer.Buffer) error {
			return packSignedBlockHeader(buffer, op.FirstBlock)
		}),
		object("second_block", func(buffer *bytebuffer.Buffer) error {
			return packSignedBlockHeader(buffer, op.SecondBlock)
		}),
	)
}

func (op *DeleteCommentOperation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		str("author", op.Author),
		str("permlink", op.Permlink),
	)
}

func (op *CustomJSONOperation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		stringArray("required_auths", op.RequiredAuths),
		stringArray("required_posting_auths", op.RequiredPostingAuths),
		str("id", op.ID),
		str("json", op.JSON),
	)
}

func packCommentOptionsExtension(buffer *bytebuffer.Buffer, e CommentOptionsExtension) error {
	if 0 != e.Tag {
		return fault.ErrInvalidStaticVariant
	}
	buffer.WriteVarint32(e.Tag)
	return packArray(buffer, e.Beneficiaries, func(buffer *bytebuffer.Buffer, b Beneficiary) error {
		return packFields(buffer,
			str("account", b.Account),
			u16("weight", b.Weight),
		)
	})
}

func (op *CommentOptionsOperation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		str("author", op.Author),
		str("permlink", op.Permlink),
		amount("max_accepted_payout", op.MaxAcceptedPayout),
		u16("percent_hbd", op.PercentHBD),
		boolean("allow_votes", op.AllowVotes),
		boolean("allow_curation_rewards", op.AllowCurationRewards),
		array("extensions", op.Extensions, packCommentOptionsExtension),
	)
}

func (op *SetWithdrawVestingRouteOperation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		str("from_account", op.FromAccount),
		str("to_account", op.ToAccount),
		u16("percent", op.Percent),
		boolean("auto_vest", op.AutoVest),
	)
}

func (op *LimitOrderCreate2Operation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		str("owner", op.Owner),
		u32("orderid", op.OrderID),
		amount("amount_to_sell", op.AmountToSell),
		price("exchange_rate", op.ExchangeRate),
		boolean("fill_or_kill", op.FillOrKill),
		date("expiration", op.Expiration),
	)
}

func (op *ClaimAccountOperation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		str("creator", op.Creator),
		amount("fee", op.Fee),
		futureExtensions("extensions", op.Extensions),
	)
}

func (op *CreateClaimedAccountOperation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		str("creator", op.Creator),
		str("new_account_name", op.NewAccountName),
		authority("owner", op.Owner),
		authority("active", op.Active),
		authority("posting", op.Posting),
		publicKey("memo_key", op.MemoKey),
		str("json_metadata", op.JSONMetadata),
		futureExtensions("extensions", op.Extensions),
	)
}

func (op *RequestAccountRecoveryOperation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		str("recovery_account", op.RecoveryAccount),
		str("account_to_recover", op.AccountToRecover),
		authority("new_owner_authority", op.NewOwnerAuthority),
		futureExtensions("extensions", op.Extensions),
	)
}

func (op *RecoverAccountOperation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		str("account_to_recover", op.AccountToRecover),
		authority("new_owner_authority", op.NewOwnerAuthority),
		authority("recent_owner_authority", op.RecentOwnerAuthority),
		futureExtensions("extensions", op.Extensions),
	)
}

func (op *ChangeRecoveryAccountOperation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		str("account_to_recover", op.AccountToRecover),
		str("new_recovery_account", op.NewRecoveryAccount),
		futureExtensions("extensions", op.Extensions),
	)
}

func (op *EscrowTransferOperation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		str("from", op.From),
		str("to", op.To),
		amount("hbd_amount", op.HBDAmount),
		amount("hive_amount", op.HiveAmount),
		u32("escrow_id", op.EscrowID),
		str("agent", op.Agent),
		amount("fee", op.Fee),
		str("json_meta", op.JSONMeta),
		date("ratification_deadline", op.RatificationDeadline),
		date("escrow_expiration", op.EscrowExpiration),
	)
}

func (op *EscrowDisputeOperation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		str("from", op.From),
		str("to", op.To),
		str("agent", op.Agent),
		str("who", op.Who),
		u32("escrow_id", op.EscrowID),
	)
}

func (op *EscrowReleaseOperation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		str("from", op.From),
		str("to", op.To),
		str("agent", op.Agent),
		str("who", op.Who),
		str("receiver", op.Receiver),
		u32("escrow_id", op.EscrowID),
		amount("hbd_amount", op.HBDAmount),
		amount("hive_amount", op.HiveAmount),
	)
}

func packPOW2Input(buffer *bytebuffer.Buffer, in POW2Input) error {
	return packFields(buffer,
		str("worker_account", in.WorkerAccount),
		fixedBinary("prev_block", blockIDLength, in.PrevBlock),
		u64("nonce", in.Nonce),
	)
}

func packPOW2Work(buffer *bytebuffer.Buffer, w POW2Work) error {
	switch w.Tag {
	case 0:
		if nil == w.POW2 {
			return fault.ErrInvalidStaticVariant
		}
		buffer.WriteVarint32(w.Tag)
		return packFields(buffer,
			object("input", func(buffer *bytebuffer.Buffer) error {
				return packPOW2Input(buffer, w.POW2.Input)
			}),
			u32("pow_summary", w.POW2.PowSummary),
		)
	case 1:
		if nil == w.Equihash {
			return fault.ErrInvalidStaticVariant
		}
		e := w.Equihash
		buffer.WriteVarint32(w.Tag)
		return packFields(buffer,
			object("input", func(buffer *bytebuffer.Buffer) error {
				return packPOW2Input(buffer, e.Input)
			}),
			object("proof", func(buffer *bytebuffer.Buffer) error {
				return packFields(buffer,
					u32("n", e.Proof.N),
					u32("k", e.Proof.K),
					fixedBinary("seed", digestLength, e.Proof.Seed),
					array("inputs", e.Proof.Inputs, func(buffer *bytebuffer.Buffer, v uint32) error {
						buffer.WriteUint32(v)
						return nil
					}),
				)
			}),
			fixedBinary("prev_block", blockIDLength, e.PrevBlock),
			u32("pow_summary", e.PowSummary),
		)
	default:
		return fault.ErrInvalidStaticVariant
	}
}

func (op *POW2Operation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		object("work", func(buffer *bytebuffer.Buffer) error {
			return packPOW2Work(buffer, op.Work)
		}),
		optionalPublicKey("new_owner_key", op.NewOwnerKey),
		chainProperties("props", op.Props),
	)
}

func (op *EscrowApproveOperation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		str("from", op.From),
		str("to", op.To),
		str("agent", op.Agent),
		str("who", op.Who),
		u32("escrow_id", op.EscrowID),
		boolean("approve", op.Approve),
	)
}

func (op *TransferToSavingsOperation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		str("from", op.From),
		str("to", op.To),
		amount("amount", op.Amount),
		str("memo", op.Memo),
	)
}

func (op *TransferFromSavingsOperation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		str("from", op.From),
		u32("request_id", op.RequestID),
		str("to", op.To),
		amount("amount", op.Amount),
		str("memo", op.Memo),
	)
}

func (op *CancelTransferFromSavingsOperation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		str("from", op.From),
		u32("request_id", op.RequestID),
	)
}

func (op *CustomBinaryOperation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		stringArray("required_owner_auths", op.RequiredOwnerAuths),
		stringArray("required_active_auths", op.RequiredActiveAuths),
		stringArray("required_posting_auths", op.RequiredPostingAuths),
		array("required_auths", op.RequiredAuths, packAuthority),
		str("id", op.ID),
		blob("data", op.Data),
	)
}

func (op *DeclineVotingRightsOperation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		str("account", op.Account),
		boolean("decline", op.Decline),
	)
}

func (op *ResetAccountOperation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		str("reset_account", op.ResetAccount),
		str("account_to_reset", op.AccountToReset),
		authority("new_owner_authority", op.NewOwnerAuthority),
	)
}

func (op *SetResetAccountOperation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		str("account", op.Account),
		str("current_reset_account", op.CurrentResetAccount),
		str("reset_account", op.ResetAccount),
	)
}

func (op *ClaimRewardBalanceOperation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		str("account", op.Account),
		amount("reward_hive", op.RewardHive),
		amount("reward_hbd", op.RewardHBD),
		amount("reward_vests", op.RewardVests),
	)
}

func (op *DelegateVestingSharesOperation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		str("delegator", op.Delegator),
		str("delegatee", op.Delegatee),
		amount("vesting_shares", op.VestingShares),
	)
}

func (op *AccountCreateWithDelegationOperation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		amount("fee", op.Fee),
		amount("delegation", op.Delegation),
		str("creator", op.Creator),
		str("new_account_name", op.NewAccountName),
		authority("owner", op.Owner),
		authority("active", op.Active),
		authority("posting", op.Posting),
		publicKey("memo_key", op.MemoKey),
		str("json_metadata", op.JSONMetadata),
		futureExtensions("extensions", op.Extensions),
	)
}

// props is a flat map of name to packed bytes
func (op *WitnessSetPropertiesOperation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		str("owner", op.Owner),
		array("props", op.Props, func(buffer *bytebuffer.Buffer, p WitnessProperty) error {
			if err := buffer.WriteVString(p.Key); nil != err {
				return err
			}
			buffer.WriteVarint32(uint32(len(p.Value)))
			buffer.AppendBytes(p.Value)
			return nil
		}),
		futureExtensions("extensions", op.Extensions),
	)
}

func (op *AccountUpdate2Operation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		str("account", op.Account),
		optionalAuthority("owner", op.Owner),
		optionalAuthority("active", op.Active),
		optionalAuthority("posting", op.Posting),
		optionalPublicKey("memo_key", op.MemoKey),
		str("json_metadata", op.JSONMetadata),
		str("posting_json_metadata", op.PostingJSONMetadata),
		futureExtensions("extensions", op.Extensions),
	)
}

func (op *CreateProposalOperation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		str("creator", op.Creator),
		str("receiver", op.Receiver),
		date("start_date", op.StartDate),
		date("end_date", op.EndDate),
		amount("daily_pay", op.DailyPay),
		str("subject", op.Subject),
		str("permlink", op.Permlink),
		futureExtensions("extensions", op.Extensions),
	)
}

func packProposalID(buffer *bytebuffer.Buffer, id int64) error {
	buffer.WriteInt64(id)
	return nil
}

func (op *UpdateProposalVotesOperation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		str("voter", op.Voter),
		array("proposal_ids", op.ProposalIDs, packProposalID),
		boolean("approve", op.Approve),
		futureExtensions("extensions", op.Extensions),
	)
}

func (op *RemoveProposalOperation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		str("proposal_owner", op.ProposalOwner),
		array("proposal_ids", op.ProposalIDs, packProposalID),
		futureExtensions("extensions", op.Extensions),
	)
}

// variant 0 is void and cannot be packed
func packUpdateProposalExtension(buffer *bytebuffer.Buffer, e UpdateProposalExtension) error {
	switch e.Tag {
	case 0:
		return fault.ErrUnsupportedCodec
	case 1:
		buffer.WriteVarint32(e.Tag)
		return packFields(buffer, date("end_date", e.EndDate))
	default:
		return fault.ErrInvalidStaticVariant
	}
}

func (op *UpdateProposalOperation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		u64("proposal_id", op.ProposalID),
		str("creator", op.Creator),
		amount("daily_pay", op.DailyPay),
		str("subject", op.Subject),
		str("permlink", op.Permlink),
		array("extensions", op.Extensions, packUpdateProposalExtension),
	)
}

func (op *CollateralizedConvertOperation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		str("owner", op.Owner),
		u32("requestid", op.RequestID),
		amount("amount", op.Amount),
	)
}

func packRecurrentTransferExtension(buffer *bytebuffer.Buffer, e RecurrentTransferExtension) error {
	if 0 != e.Tag {
		return fault.ErrInvalidStaticVariant
	}
	buffer.WriteVarint32(e.Tag)
	return packFields(buffer, u8("pair_id", e.PairID))
}

func (op *RecurrentTransferOperation) pack(buffer *bytebuffer.Buffer) error {
	return packFields(buffer,
		str("from", op.From),
		str("to", op.To),
		amount("amount", op.Amount),
		str("memo", op.Memo),
		u16("recurrence", op.Recurrence),
		u16("executions", op.Executions),
		array("extensions", op.Extensions, packRecurrentTransferExtension),
	)
}
