// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"
)

func runSign(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	privateKey, err := checkPrivateKey(c.String("key"))
	if nil != err {
		return err
	}
	digest, err := checkDigest(c.String("digest"))
	if nil != err {
		return err
	}

	signature, err := privateKey.Sign(digest)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "digest: %x\n", digest)
		fmt.Fprintf(m.e, "signer: %s\n", privateKey.PublicKey())
	}

	out := struct {
		Digest    string `json:"digest"`
		Signature string `json:"signature"`
	}{
		Digest:    hex.EncodeToString(digest),
		Signature: signature.String(),
	}
	return printJson(m.w, out)
}

func runVerify(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	publicKey, err := checkPublicKey(c.String("public"))
	if nil != err {
		return err
	}
	digest, err := checkDigest(c.String("digest"))
	if nil != err {
		return err
	}
	signature, err := checkSignature(c.String("signature"))
	if nil != err {
		return err
	}

	ok := publicKey.Verify(digest, signature)
	if m.verbose {
		fmt.Fprintf(m.e, "verified: %t\n", ok)
	}

	out := struct {
		PublicKey string `json:"public_key"`
		Verified  bool   `json:"verified"`
	}{
		PublicKey: publicKey.String(),
		Verified:  ok,
	}
	return printJson(m.w, out)
}

func runRecover(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	digest, err := checkDigest(c.String("digest"))
	if nil != err {
		return err
	}
	signature, err := checkSignature(c.String("signature"))
	if nil != err {
		return err
	}

	publicKey, err := signature.RecoverPublicKey(digest)
	if nil != err {
		return err
	}

	out := struct {
		PublicKey string `json:"public_key"`
	}{
		PublicKey: publicKey.String(),
	}
	return printJson(m.w, out)
}
