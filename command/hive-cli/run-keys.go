// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/mahdiyari/hive-tx-go/keypair"
	"github.com/mahdiyari/hive-tx-go/transactionrecord"
)

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	rawKeyPair, _, err := keypair.MakeRawKeyPair()
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "public key: %s\n", rawKeyPair.PublicKey)
	}

	return printJson(m.w, rawKeyPair)
}

func runLogin(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	username := c.String("username")
	if "" == username {
		return ErrRequiredUsername
	}
	err := transactionrecord.ValidateUsername(username)
	if nil != err {
		return err
	}
	password := c.String("password")
	if "" == password {
		return ErrRequiredPassword
	}
	roles := c.StringSlice("role")

	if m.verbose {
		fmt.Fprintf(m.e, "username: %s\n", username)
		fmt.Fprintf(m.e, "roles: %v\n", roles)
	}

	keys, err := keypair.MakeLoginKeyPairs(username, password, roles)
	if nil != err {
		return err
	}
	return printJson(m.w, keys)
}

func runPublic(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	wif := c.String("key")
	if "" == wif {
		return ErrRequiredPrivateKey
	}
	rawKeyPair, _, err := keypair.MakeRawKeyPairFromWIF(wif)
	if nil != err {
		return err
	}

	out := struct {
		PublicKey string `json:"public_key"`
	}{
		PublicKey: rawKeyPair.PublicKey,
	}
	return printJson(m.w, out)
}
