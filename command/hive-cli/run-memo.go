// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/mahdiyari/hive-tx-go/memo"
)

func runEncodeMemo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	privateKey, err := checkPrivateKey(c.String("key"))
	if nil != err {
		return err
	}
	publicKey, err := checkPublicKey(c.String("public"))
	if nil != err {
		return err
	}
	text, err := checkMemo(c.String("memo"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "from: %s\n", privateKey.PublicKey())
		fmt.Fprintf(m.e, "to: %s\n", publicKey)
	}

	encoded, err := memo.Encode(privateKey, publicKey, text)
	if nil != err {
		return err
	}

	out := struct {
		Memo string `json:"memo"`
	}{
		Memo: encoded,
	}
	return printJson(m.w, out)
}

func runDecodeMemo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	privateKey, err := checkPrivateKey(c.String("key"))
	if nil != err {
		return err
	}
	text, err := checkMemo(c.String("memo"))
	if nil != err {
		return err
	}

	decoded, err := memo.Decode(privateKey, text)
	if nil != err {
		return err
	}

	out := struct {
		Memo string `json:"memo"`
	}{
		Memo: decoded,
	}
	return printJson(m.w, out)
}
