// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/mahdiyari/hive-tx-go/fault"
	"github.com/mahdiyari/hive-tx-go/mode"
)

type metadata struct {
	command string
	file    string
	config  *Configuration
	verbose bool
	log     *logger.L
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "hive-cli"
	app.Usage = "build, sign and broadcast hive transactions"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " Lua configuration `FILE`",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: "",
			Usage: " use hive `NETWORK` [hive|testnet] overriding the configuration",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a random key pair",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "login",
			Usage:     "derive the key pairs of a password login",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "username, u",
					Value: "",
					Usage: "*account `NAME`",
				},
				cli.StringFlag{
					Name:  "password, p",
					Value: "",
					Usage: "*master `PASSWORD`",
				},
				cli.StringSliceFlag{
					Name:  "role, r",
					Usage: " key `ROLE` [owner|active|posting|memo] may be repeated, default active",
				},
			},
			Action: runLogin,
		},
		{
			Name:      "public",
			Usage:     "public key of a private key",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: "*private key `WIF`",
				},
			},
			Action: runPublic,
		},
		{
			Name:      "sign",
			Usage:     "sign a 32 byte digest",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: "*private key `WIF`",
				},
				cli.StringFlag{
					Name:  "digest, d",
					Value: "",
					Usage: "*sha256 `HEX` digest",
				},
			},
			Action: runSign,
		},
		{
			Name:      "verify",
			Usage:     "verify the signature of a digest",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "public, K",
					Value: "",
					Usage: "*signer public `KEY`",
				},
				cli.StringFlag{
					Name:  "digest, d",
					Value: "",
					Usage: "*sha256 `HEX` digest",
				},
				cli.StringFlag{
					Name:  "signature, s",
					Value: "",
					Usage: "*signature `HEX`",
				},
			},
			Action: runVerify,
		},
		{
			Name:      "recover",
			Usage:     "recover the signer of a digest",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "digest, d",
					Value: "",
					Usage: "*sha256 `HEX` digest",
				},
				cli.StringFlag{
					Name:  "signature, s",
					Value: "",
					Usage: "*signature `HEX`",
				},
			},
			Action: runRecover,
		},
		{
			Name:      "encode-memo",
			Usage:     "encrypt a memo starting with #",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: "*sender memo `WIF`",
				},
				cli.StringFlag{
					Name:  "public, K",
					Value: "",
					Usage: "*recipient public memo `KEY`",
				},
				cli.StringFlag{
					Name:  "memo, m",
					Value: "",
					Usage: "*memo `TEXT`",
				},
			},
			Action: runEncodeMemo,
		},
		{
			Name:      "decode-memo",
			Usage:     "decrypt a memo as sender or recipient",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: "*memo `WIF` of either party",
				},
				cli.StringFlag{
					Name:  "memo, m",
					Value: "",
					Usage: "*encrypted memo `TEXT`",
				},
			},
			Action: runDecodeMemo,
		},
		{
			Name:      "create",
			Usage:     "create an unsigned transaction on the current head block",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "*JSON list of operations `FILE`",
				},
				cli.DurationFlag{
					Name:  "expiration, e",
					Value: 0,
					Usage: " transaction lifetime `DURATION` [default 60s]",
				},
			},
			Action: runCreate,
		},
		{
			Name:      "serialize",
			Usage:     "binary form, digest and id of a transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "*transaction JSON `FILE`",
				},
			},
			Action: runSerialize,
		},
		{
			Name:      "sign-tx",
			Usage:     "add signatures to a transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "*transaction JSON `FILE`",
				},
				cli.StringSliceFlag{
					Name:  "key, k",
					Usage: "*private key `WIF` may be repeated",
				},
				cli.StringSliceFlag{
					Name:  "signature, s",
					Usage: " existing signature `HEX` may be repeated",
				},
			},
			Action: runSignTransaction,
		},
		{
			Name:      "broadcast",
			Usage:     "broadcast a signed transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "*signed transaction JSON `FILE`",
				},
			},
			Action: runBroadcast,
		},
		{
			Name:      "witness-properties",
			Usage:     "build a witness_set_properties operation",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*witness account `NAME`",
				},
				cli.StringFlag{
					Name:  "properties, p",
					Value: "",
					Usage: "*JSON object of `PROPERTIES`",
				},
			},
			Action: runWitnessProperties,
		},
		{
			Name:      "filter",
			Usage:     "history filter of operation names",
			ArgsUsage: "NAME…",
			Flags:     []cli.Flag{},
			Action:    runFilter,
		},
		{
			Name:      "username",
			Usage:     "check an account name",
			ArgsUsage: "NAME…",
			Flags:     []cli.Flag{},
			Action:    runUsername,
		},
		{
			Name:      "call",
			Usage:     "raw JSON-RPC call",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "method, m",
					Value: "",
					Usage: "*API `METHOD` e.g. condenser_api.get_accounts",
				},
				cli.StringFlag{
					Name:  "arguments, a",
					Value: "[]",
					Usage: " JSON `PARAMS`",
				},
			},
			Action: runCall,
		},
		{
			Name:      "nodes",
			Usage:     "probe every configured node",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.DurationFlag{
					Name:  "watch, w",
					Value: 0,
					Usage: " keep probing in the background for `DURATION`",
				},
			},
			Action: runNodes,
		},
		{
			Name: "version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command || "" == command || "help" == command {
			return nil
		}

		file := c.GlobalString("config")
		if verbose && "" != file {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		configuration, err := getConfiguration(file, c.GlobalString("network"))
		if nil != err {
			return err
		}

		err = logger.Initialise(configuration.Logging)
		if nil != err {
			return err
		}

		err = fault.Initialise()
		if nil != err {
			return err
		}

		log := logger.New("main")
		log.Infof("chain: %s  nodes: %v", configuration.Chain, configuration.Nodes)

		c.App.Metadata["config"] = &metadata{
			command: command,
			file:    file,
			config:  configuration,
			verbose: verbose,
			log:     log,
			e:       e,
			w:       w,
		}

		err = mode.Initialise(configuration.Chain)
		if nil != err {
			return err
		}
		return mode.Override(configuration.AddressPrefix, configuration.ChainID)
	}

	err := app.Run(os.Args)

	// shut down the subsystems started by Before
	if m, ok := app.Metadata["config"].(*metadata); ok {
		if nil != err {
			fault.Criticalf("%s terminated with error: %s", m.command, err)
		}
		_ = mode.Finalise()
		m.log.Info("finished")
		fault.Finalise()
		logger.Finalise()
	}

	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}
