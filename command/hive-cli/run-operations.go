// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/urfave/cli"

	"github.com/mahdiyari/hive-tx-go/transactionrecord"
)

func runWitnessProperties(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner := c.String("owner")
	if "" == owner {
		return ErrRequiredOwner
	}
	text := c.String("properties")
	if "" == text {
		return ErrRequiredProperties
	}

	// numbers are kept exact for the integer properties
	decoder := json.NewDecoder(bytes.NewReader([]byte(text)))
	decoder.UseNumber()
	properties := map[string]interface{}{}
	err := decoder.Decode(&properties)
	if nil != err {
		return err
	}

	op, err := transactionrecord.BuildWitnessSetProperties(owner, properties)
	if nil != err {
		return err
	}
	return printJson(m.w, transactionrecord.OperationEnvelope{Operation: op})
}

func runFilter(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	low, high, err := transactionrecord.OperationFilter(c.Args()...)
	if nil != err {
		return err
	}

	// as strings, the values exceed the safe integer range of JSON
	out := struct {
		Low  string `json:"operation_filter_low"`
		High string `json:"operation_filter_high"`
	}{
		Low:  strconv.FormatUint(low, 10),
		High: strconv.FormatUint(high, 10),
	}
	return printJson(m.w, out)
}

func runUsername(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	type result struct {
		Name  string `json:"name"`
		Valid bool   `json:"valid"`
		Error string `json:"error,omitempty"`
	}

	names := c.Args()
	if 0 == len(names) {
		return ErrRequiredUsername
	}

	out := make([]result, 0, len(names))
	for _, name := range names {
		r := result{
			Name:  name,
			Valid: true,
		}
		if err := transactionrecord.ValidateUsername(name); nil != err {
			r.Valid = false
			r.Error = err.Error()
		}
		out = append(out, r)
	}
	return printJson(m.w, out)
}
