// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"

	"github.com/pkg/errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type ProgrammerError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised     = ProcessError("already initialised")
	ErrAssetAmountOverflow    = InvalidError("asset amount overflows int64")
	ErrBinarySizeMismatch     = InvalidError("binary size mismatch")
	ErrCannotDecodePrivateKey = InvalidError("cannot decode private key")
	ErrCannotDecodePublicKey  = InvalidError("cannot decode public key")
	ErrCannotDecodeSignature  = InvalidError("cannot decode signature")
	ErrEncryptionUnsupported  = ProcessError("this environment does not support encryption")
	ErrIllegalCapacity        = ProgrammerError("illegal capacity")
	ErrIllegalOffset          = ProgrammerError("illegal offset")
	ErrIllegalValue           = ProgrammerError("illegal value")
	ErrInvalidAsset           = InvalidError("invalid asset")
	ErrInvalidAssetSymbol     = InvalidError("invalid asset symbol")
	ErrInvalidChain           = InvalidError("invalid chain")
	ErrInvalidChainID         = InvalidError("invalid chain id")
	ErrInvalidConfiguration   = InvalidError("configuration did not return a table")
	ErrInvalidCount           = InvalidError("invalid count")
	ErrInvalidDate            = InvalidError("invalid date")
	ErrInvalidDigest          = InvalidError("expected a valid sha256 hash as message")
	ErrInvalidHeadBlockID     = InvalidError("invalid head block id")
	ErrInvalidKey             = ProcessError("invalid key")
	ErrInvalidLoggerChannel   = ProcessError("invalid logger channel")
	ErrInvalidMemo            = InvalidError("invalid memo")
	ErrInvalidNodeURL         = InvalidError("invalid rpc node url")
	ErrInvalidPrivateKey      = InvalidError("invalid private key")
	ErrInvalidPublicKey       = InvalidError("invalid public key")
	ErrInvalidRecoveryID      = InvalidError("invalid recovery id")
	ErrInvalidSignature       = InvalidError("invalid signature")
	ErrInvalidSignatureLength = InvalidError("signature must be 130 characters long")
	ErrInvalidStaticVariant   = InvalidError("invalid static variant tag")
	ErrInvalidStructPointer   = InvalidError("invalid struct pointer")
	ErrInvalidUTF16           = InvalidError("invalid utf-16 sequence")
	ErrInvalidUTF8            = InvalidError("invalid utf-8 sequence")
	ErrInvalidUsername        = InvalidError("invalid account name")
	ErrInvalidWitnessProperty = InvalidError("invalid witness property")
	ErrMissingOperation       = InvalidError("missing operation")
	ErrNoNodes                = InvalidError("no rpc nodes configured")
	ErrNotInitialised         = ProcessError("not initialised")
	ErrPrivateKeyChecksum     = InvalidError("private key checksum mismatch")
	ErrPrivateKeyNetworkID    = InvalidError("private key network id mismatch")
	ErrRateLimiting           = ProcessError("rate limit exceeded")
	ErrRPCAllNodesFailed      = ProcessError("all rpc nodes failed")
	ErrRPCBadStatus           = ProcessError("rpc node returned bad http status")
	ErrRPCEmptyResponse       = ProcessError("empty rpc response")
	ErrSigningFailed          = ProcessError("signing failed")
	ErrTransactionNotCreated  = InvalidError("transaction has not been created")
	ErrTransactionNotSigned   = InvalidError("transaction has not been signed")
	ErrTruncated              = LengthError("index out of range")
	ErrUnknownOperation       = NotFoundError("no serializer for operation")
	ErrUnknownWitnessProperty = NotFoundError("unknown witness property")
	ErrUnsupportedCodec       = ProgrammerError("void can not be serialized")
	ErrVarint32TooLong        = InvalidError("varint32 is longer than 5 bytes")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string    { return string(e) }
func (e LengthError) Error() string     { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e ProcessError) Error() string    { return string(e) }
func (e ProgrammerError) Error() string { return string(e) }

// TruncatedError - a read ran past the limit of a buffer
//
// carries the offset at which the read started and any bytes that
// were consumed before the data ran out
type TruncatedError struct {
	Offset  int
	Partial []byte
}

func (e *TruncatedError) Error() string {
	if 0 == len(e.Partial) {
		return fmt.Sprintf("%s: offset %d", ErrTruncated, e.Offset)
	}
	return fmt.Sprintf("%s: offset %d partial: %x", ErrTruncated, e.Offset, e.Partial)
}

// Cause - allows errors.Cause to find the class instance
func (e *TruncatedError) Cause() error {
	return ErrTruncated
}

// determine the class of an error, looking through any wrapping
func IsErrInvalid(e error) bool    { _, ok := errors.Cause(e).(InvalidError); return ok }
func IsErrLength(e error) bool     { _, ok := errors.Cause(e).(LengthError); return ok }
func IsErrNotFound(e error) bool   { _, ok := errors.Cause(e).(NotFoundError); return ok }
func IsErrProcess(e error) bool    { _, ok := errors.Cause(e).(ProcessError); return ok }
func IsErrProgrammer(e error) bool { _, ok := errors.Cause(e).(ProgrammerError); return ok }
